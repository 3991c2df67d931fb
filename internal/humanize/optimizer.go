package humanize

import (
	"strings"

	"github.com/jonathan/humanizer/internal/segment"
)

// Optimizer merges adjacent short sentences to vary sentence rhythm.
type Optimizer struct {
	seg segment.Segmenter
	rng Rand
}

// NewOptimizer creates an Optimizer drawing from rng.
func NewOptimizer(seg segment.Segmenter, rng Rand) *Optimizer {
	return &Optimizer{seg: seg, rng: rng}
}

// Optimize scans sentences left to right and merges some short pairs.
// Text with fewer than two sentences is returned unchanged. A merged pair
// is never merged again in the same pass.
func (o *Optimizer) Optimize(text string) string {
	sentences := o.seg.Sentences(text)
	if len(sentences) < 2 {
		return text
	}

	units := make([]string, 0, len(sentences))
	for i := 0; i < len(sentences); {
		curr := strings.TrimSpace(sentences[i])
		if i+1 < len(sentences) && o.shouldMerge(curr, sentences[i+1]) {
			merged := strings.TrimRight(curr, ".") + mergeJoiner + strings.TrimSpace(sentences[i+1])
			units = append(units, merged)
			i += 2
			continue
		}
		units = append(units, curr)
		i++
	}

	return strings.Join(units, " ")
}

// shouldMerge only draws the coin when both sentences are short.
func (o *Optimizer) shouldMerge(curr, next string) bool {
	if len(o.seg.Words(curr)) >= MergeMaxWords {
		return false
	}
	if len(o.seg.Words(next)) >= MergeMaxWords {
		return false
	}
	return o.rng.Float64() < MergeProbability
}
