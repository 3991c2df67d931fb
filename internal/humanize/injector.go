package humanize

import (
	"strings"

	"github.com/jonathan/humanizer/internal/segment"
)

// Injector swaps formal transition openers for casual ones and sprinkles filler words.
type Injector struct {
	seg segment.Segmenter
	rng Rand
}

// NewInjector creates an Injector drawing from rng.
func NewInjector(seg segment.Segmenter, rng Rand) *Injector {
	return &Injector{seg: seg, rng: rng}
}

// Inject rewrites each sentence independently and rejoins them with single spaces.
// Original inter-sentence whitespace is not preserved.
func (in *Injector) Inject(text string) string {
	sentences := in.seg.Sentences(text)
	modified := make([]string, 0, len(sentences))

	for _, sentence := range sentences {
		s := strings.TrimSpace(sentence)
		s = in.substituteTransition(s)
		s = in.insertFiller(s)
		modified = append(modified, s)
	}

	return strings.Join(modified, " ")
}

// substituteTransition replaces a leading formal opener. Only the first
// matching category applies.
func (in *Injector) substituteTransition(sentence string) string {
	for _, rule := range openerRules {
		loc := rule.pattern.FindStringIndex(sentence)
		if loc == nil {
			continue
		}
		variant := choose(in.rng, TransitionVariants[rule.category])
		return variant + " " + sentence[loc[1]:]
	}
	return sentence
}

// insertFiller draws the coin for every sentence, then inserts only when the
// sentence is long enough. The insertion index is in [1, n-1].
func (in *Injector) insertFiller(sentence string) string {
	if in.rng.Float64() >= FillerProbability {
		return sentence
	}

	words := in.seg.Words(sentence)
	if len(words) <= FillerMinWords {
		return sentence
	}

	idx := 1 + in.rng.IntN(len(words)-1)
	filler := choose(in.rng, Fillers)

	out := make([]string, 0, len(words)+1)
	out = append(out, words[:idx]...)
	out = append(out, filler)
	out = append(out, words[idx:]...)
	return strings.Join(out, " ")
}
