package ingestion

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelector lists elements whose text is never prose.
const noiseSelector = "nav, footer, header, script, style, noscript, aside, form, .ad, .advertisement, .sidebar, .cookie-banner"

// contentSelectors are tried in order; the first match is the main content.
var contentSelectors = []string{
	"main",
	"article",
	".content",
	"#content",
	".main-content",
	"#main-content",
}

// ExtractText parses HTML and returns the prose of its main content, one
// trimmed line per text line. If no content selector matches, it falls back to the body.
func ExtractText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", &InputError{Source: SourceHTML, Message: "failed to parse HTML", Cause: err}
	}

	doc.Find(noiseSelector).Remove()

	var mainContent *goquery.Selection
	for _, selector := range contentSelectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			mainContent = selection.First()
			break
		}
	}
	if mainContent == nil {
		mainContent = doc.Find("body")
	}

	return cleanWhitespace(mainContent.Text()), nil
}

// cleanWhitespace trims every line and drops the blank ones.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
