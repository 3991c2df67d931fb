package humanize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	nineWordsA = "One two three four five six seven eight nine."
	nineWordsB = "Alpha beta gamma delta epsilon zeta eta theta iota."
	tenWordsA  = "One two three four five six seven eight nine ten."
	tenWordsB  = "Alpha beta gamma delta epsilon zeta eta theta iota kappa."
)

func TestOptimize_SingleSentenceIsNoOp(t *testing.T) {
	tests := []string{
		"",
		"Just one sentence here.",
		"  Just one sentence here.  ",
		"No terminator at all",
	}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			rng := &scriptedRand{floats: []float64{0.0}}
			assert.Equal(t, text, NewOptimizer(unicodeSegmenter(t), rng).Optimize(text))
			assert.Equal(t, 0, rng.floatCalls)
		})
	}
}

func TestOptimize_MergeThreshold(t *testing.T) {
	t.Run("Nine words each merges", func(t *testing.T) {
		rng := &scriptedRand{floats: []float64{0.0}}
		got := NewOptimizer(unicodeSegmenter(t), rng).Optimize(nineWordsA + " " + nineWordsB)
		assert.Equal(t, "One two three four five six seven eight nine, and "+nineWordsB, got)
	})

	t.Run("Ten words each never merges", func(t *testing.T) {
		rng := &scriptedRand{floats: []float64{0.0, 0.0}}
		got := NewOptimizer(unicodeSegmenter(t), rng).Optimize(tenWordsA + " " + tenWordsB)
		assert.Equal(t, tenWordsA+" "+tenWordsB, got)
		assert.Equal(t, 0, rng.floatCalls)
	})

	t.Run("One long neighbour blocks the pair", func(t *testing.T) {
		rng := &scriptedRand{floats: []float64{0.0}}
		got := NewOptimizer(unicodeSegmenter(t), rng).Optimize(nineWordsA + " " + tenWordsB)
		assert.Equal(t, nineWordsA+" "+tenWordsB, got)
		assert.Equal(t, 0, rng.floatCalls)
	})

	t.Run("Ten words never merges for any seed", func(t *testing.T) {
		seg := unicodeSegmenter(t)
		text := tenWordsA + " " + tenWordsB
		for seed := uint64(0); seed < 200; seed++ {
			assert.Equal(t, text, NewOptimizer(seg, NewRand(seed)).Optimize(text))
		}
	})
}

func TestOptimize_Coin(t *testing.T) {
	text := "The cat sat. The dog ran."

	tests := []struct {
		name     string
		coin     float64
		expected string
	}{
		{"Below probability", 0.29, "The cat sat, and The dog ran."},
		{"At probability", MergeProbability, text},
		{"Above probability", 0.8, text},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := &scriptedRand{floats: []float64{tt.coin}}
			assert.Equal(t, tt.expected, NewOptimizer(unicodeSegmenter(t), rng).Optimize(text))
		})
	}
}

func TestOptimize_NonRecursive(t *testing.T) {
	t.Run("Three sentences", func(t *testing.T) {
		rng := &scriptedRand{floats: []float64{0.0, 0.0, 0.0}}
		got := NewOptimizer(unicodeSegmenter(t), rng).Optimize("A cat. A dog. A cow.")
		assert.Equal(t, "A cat, and A dog. A cow.", got)
		assert.Equal(t, 1, rng.floatCalls)
	})

	t.Run("Four sentences", func(t *testing.T) {
		rng := &scriptedRand{floats: []float64{0.0, 0.0}}
		got := NewOptimizer(unicodeSegmenter(t), rng).Optimize("A cat. A dog. A cow. A hen.")
		assert.Equal(t, "A cat, and A dog. A cow, and A hen.", got)
		assert.Equal(t, 2, rng.floatCalls)
	})

	t.Run("Skipped pair advances by one", func(t *testing.T) {
		rng := &scriptedRand{floats: []float64{0.9, 0.0}}
		got := NewOptimizer(unicodeSegmenter(t), rng).Optimize("A cat. A dog. A cow.")
		assert.Equal(t, "A cat. A dog, and A cow.", got)
	})
}

func TestOptimize_StripsAllTrailingPeriods(t *testing.T) {
	rng := &scriptedRand{floats: []float64{0.0}}
	got := NewOptimizer(unicodeSegmenter(t), rng).Optimize("Wait... Go now.")
	assert.Equal(t, "Wait, and Go now.", got)
}

func TestOptimize_KeepsOtherTerminators(t *testing.T) {
	rng := &scriptedRand{floats: []float64{0.0}}
	got := NewOptimizer(unicodeSegmenter(t), rng).Optimize("Really? Yes.")
	assert.Equal(t, "Really?, and Yes.", got)
}

func TestOptimize_NormalizesSeparators(t *testing.T) {
	got := NewOptimizer(unicodeSegmenter(t), &scriptedRand{}).Optimize("First one.\n\nSecond one.   Third one.")
	assert.Equal(t, "First one. Second one. Third one.", got)
	assert.False(t, strings.Contains(got, "\n"))
}
