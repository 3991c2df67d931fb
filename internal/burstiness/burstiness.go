// Package burstiness measures how much sentence lengths vary across a text.
//
// Burstiness is the population variance of per-sentence word counts. Uniform,
// machine-like prose scores near zero; prose that mixes short and long
// sentences scores higher.
package burstiness

import (
	"math"

	"github.com/jonathan/humanizer/internal/segment"
)

// Stats describes the sentence-length distribution of a text.
type Stats struct {
	Sentences  int     `json:"sentences"`
	WordCounts []int   `json:"word_counts"`
	MeanWords  float64 `json:"mean_words"`
	Burstiness float64 `json:"burstiness"`
}

// Analyze returns the burstiness of text. A text with no sentences scores 0.
func Analyze(seg segment.Segmenter, text string) float64 {
	return PopulationVariance(WordCounts(seg, text))
}

// Summarize returns the full sentence-length distribution of text.
func Summarize(seg segment.Segmenter, text string) Stats {
	counts := WordCounts(seg, text)
	return Stats{
		Sentences:  len(counts),
		WordCounts: counts,
		MeanWords:  mean(counts),
		Burstiness: PopulationVariance(counts),
	}
}

// WordCounts returns the number of whitespace-delimited words in each sentence.
// The result is never nil.
func WordCounts(seg segment.Segmenter, text string) []int {
	sentences := seg.Sentences(text)
	counts := make([]int, 0, len(sentences))
	for _, sentence := range sentences {
		counts = append(counts, len(seg.Words(sentence)))
	}
	return counts
}

// PopulationVariance divides by N, not N-1. An empty sequence has variance 0.
func PopulationVariance(counts []int) float64 {
	if len(counts) == 0 {
		return 0.0
	}

	m := mean(counts)
	var sum float64
	for _, c := range counts {
		d := float64(c) - m
		sum += d * d
	}
	return sum / float64(len(counts))
}

func mean(counts []int) float64 {
	if len(counts) == 0 {
		return 0.0
	}
	var total int
	for _, c := range counts {
		total += c
	}
	return float64(total) / float64(len(counts))
}

// Round2 rounds half away from zero to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Rounded returns a copy of s with the float fields rounded to two decimals.
func (s Stats) Rounded() Stats {
	s.MeanWords = Round2(s.MeanWords)
	s.Burstiness = Round2(s.Burstiness)
	return s
}
