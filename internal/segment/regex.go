package segment

import (
	"fmt"
	"regexp"
)

// terminatorPattern matches a run of sentence-ending punctuation, any closing
// quotes or brackets, and the whitespace that separates it from the next sentence.
const terminatorPattern = `[.!?]+["'’”)\]]*\s+`

// Regex segments sentences on terminal punctuation followed by whitespace.
// It knows nothing about abbreviations; "Dr. Smith" is two sentences.
type Regex struct {
	terminator *regexp.Regexp
}

// NewRegex compiles the terminator pattern.
func NewRegex() (*Regex, error) {
	re, err := regexp.Compile(terminatorPattern)
	if err != nil {
		return nil, fmt.Errorf("failed to compile sentence terminator: %w", err)
	}
	return &Regex{terminator: re}, nil
}

// Sentences implements Segmenter.
func (r *Regex) Sentences(text string) []string {
	var sentences []string

	start := 0
	for _, loc := range r.terminator.FindAllStringIndex(text, -1) {
		if span := text[start:loc[1]]; !isBlank(span) {
			sentences = append(sentences, span)
		}
		start = loc[1]
	}
	if span := text[start:]; !isBlank(span) {
		sentences = append(sentences, span)
	}

	return sentences
}

// Words implements Segmenter.
func (r *Regex) Words(sentence string) []string {
	return fields(sentence)
}
