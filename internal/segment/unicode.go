package segment

import (
	"github.com/rivo/uniseg"
)

// Unicode segments sentences with the UAX #29 sentence boundary rules.
// Each returned sentence keeps its trailing whitespace.
type Unicode struct{}

// Sentences implements Segmenter.
func (Unicode) Sentences(text string) []string {
	var sentences []string

	state := -1
	rest := text
	for len(rest) > 0 {
		var sentence string
		sentence, rest, state = uniseg.FirstSentenceInString(rest, state)
		if isBlank(sentence) {
			continue
		}
		sentences = append(sentences, sentence)
	}

	return sentences
}

// Words implements Segmenter.
func (Unicode) Words(sentence string) []string {
	return fields(sentence)
}
