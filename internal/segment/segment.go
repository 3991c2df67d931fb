// Package segment splits text into sentences and sentences into words.
//
// The transformation passes only depend on the Segmenter interface, so the
// boundary detector can be swapped without touching them.
package segment

import (
	"sort"
	"strings"
)

const (
	// NameUnicode selects the UAX #29 sentence segmenter.
	NameUnicode = "unicode"
	// NameRegex selects the punctuation-based segmenter.
	NameRegex = "regex"
)

// Segmenter is the only contract the humanizer has with a sentence boundary detector.
type Segmenter interface {
	// Sentences returns the sentences of text in order. Blank spans are never returned.
	Sentences(text string) []string
	// Words returns the whitespace-delimited tokens of a sentence.
	Words(sentence string) []string
}

var constructors = map[string]func() (Segmenter, error){
	NameUnicode: func() (Segmenter, error) { return Unicode{}, nil },
	NameRegex:   func() (Segmenter, error) { return NewRegex() },
}

// New resolves a segmenter by name. An empty name selects the unicode segmenter.
func New(name string) (Segmenter, error) {
	if name == "" {
		name = NameUnicode
	}

	ctor, ok := constructors[name]
	if !ok {
		return nil, &UnavailableError{Name: name, Cause: ErrUnknownSegmenter}
	}

	seg, err := ctor()
	if err != nil {
		return nil, &UnavailableError{Name: name, Cause: err}
	}
	return seg, nil
}

// Names lists the registered segmenter names in sorted order.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// fields is the shared word tokenizer: whitespace-delimited, like str.split().
func fields(sentence string) []string {
	return strings.Fields(sentence)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
