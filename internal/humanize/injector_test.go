package humanize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInject_TransitionSubstitution(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		ints     []int
		expected string
	}{
		{"Addition with comma", "Furthermore, this matters. The cat sat.", []int{2}, "On top of that, this matters. The cat sat."},
		{"Addition without comma", "Moreover the dog barked.", []int{0}, "Plus, the dog barked."},
		{"Additionally", "Additionally, we shipped it.", []int{3}, "Not to mention, we shipped it."},
		{"Contrast", "However, it failed.", []int{0}, "But honestly, it failed."},
		{"Contrast without comma", "However it failed.", []int{1}, "Though, it failed."},
		{"Mid-sentence opener untouched", "It is, however, fine.", nil, "It is, however, fine."},
		{"Lowercase opener untouched", "It ran. furthermore, it won.", nil, "It ran. furthermore, it won."},
		{"Second sentence opener", "It ran. However, it lost.", []int{3}, "It ran. On the flip side, it lost."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := &scriptedRand{ints: tt.ints}
			got := NewInjector(unicodeSegmenter(t), rng).Inject(tt.text)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestInject_AnchoringPicksAdditionVariant(t *testing.T) {
	seg := unicodeSegmenter(t)
	for seed := uint64(0); seed < 50; seed++ {
		rng := noFillerRand{NewRand(seed)}
		got := NewInjector(seg, rng).Inject("Furthermore, this matters. The cat sat.")

		require.True(t, strings.HasSuffix(got, " this matters. The cat sat."), "seed %d: %q", seed, got)
		prefix := strings.TrimSuffix(got, " this matters. The cat sat.")
		assert.Contains(t, TransitionVariants[Addition], prefix, "seed %d", seed)
	}
}

func TestInject_FillerInsertion(t *testing.T) {
	sentence := "The quick brown fox jumps over dogs."

	t.Run("Inserted at drawn index", func(t *testing.T) {
		// Coin fires, index draw 2 maps to position 3, filler draw picks "honestly".
		rng := &scriptedRand{floats: []float64{0.05}, ints: []int{2, 3}}
		got := NewInjector(unicodeSegmenter(t), rng).Inject(sentence)
		assert.Equal(t, "The quick brown honestly fox jumps over dogs.", got)
		assert.Equal(t, []int{6, len(Fillers)}, rng.intCalls)
	})

	t.Run("Never before first word", func(t *testing.T) {
		rng := &scriptedRand{floats: []float64{0.0}, ints: []int{0, 0}}
		got := NewInjector(unicodeSegmenter(t), rng).Inject(sentence)
		assert.Equal(t, "The literally quick brown fox jumps over dogs.", got)
	})

	t.Run("Last possible position", func(t *testing.T) {
		rng := &scriptedRand{floats: []float64{0.0}, ints: []int{5, 6}}
		got := NewInjector(unicodeSegmenter(t), rng).Inject(sentence)
		assert.Equal(t, "The quick brown fox jumps over just dogs.", got)
	})

	t.Run("Coin at threshold does not fire", func(t *testing.T) {
		rng := &scriptedRand{floats: []float64{FillerProbability}}
		got := NewInjector(unicodeSegmenter(t), rng).Inject(sentence)
		assert.Equal(t, sentence, got)
		assert.Empty(t, rng.intCalls)
	})

	t.Run("Five words is too short", func(t *testing.T) {
		rng := &scriptedRand{floats: []float64{0.0}}
		got := NewInjector(unicodeSegmenter(t), rng).Inject("One two three four five.")
		assert.Equal(t, "One two three four five.", got)
		assert.Equal(t, 1, rng.floatCalls)
		assert.Empty(t, rng.intCalls)
	})

	t.Run("Combined with substitution", func(t *testing.T) {
		rng := &scriptedRand{floats: []float64{0.0}, ints: []int{1, 0, 6}}
		got := NewInjector(unicodeSegmenter(t), rng).Inject("However, the plan was simple and cheap.")
		assert.Equal(t, "Though, just the plan was simple and cheap.", got)
	})
}

func TestInject_FillerNeverFirstWord(t *testing.T) {
	seg := unicodeSegmenter(t)
	sentence := "Alpha beta gamma delta epsilon zeta eta theta."
	fired := 0

	for seed := uint64(0); seed < 500; seed++ {
		got := NewInjector(seg, NewRand(seed)).Inject(sentence)
		if got == sentence {
			continue
		}
		fired++
		words := strings.Fields(got)
		assert.Equal(t, "Alpha", words[0], "seed %d: %q", seed, got)
		assert.Equal(t, "theta.", words[len(words)-1], "seed %d: %q", seed, got)
	}

	assert.Greater(t, fired, 0, "filler insertion should fire for some seed")
}

func TestInject_FlattensWhitespace(t *testing.T) {
	got := NewInjector(unicodeSegmenter(t), &scriptedRand{}).Inject("First one.\n\n   Second one.\tThird one.  ")
	assert.Equal(t, "First one. Second one. Third one.", got)
}

func TestInject_Empty(t *testing.T) {
	rng := &scriptedRand{}
	assert.Equal(t, "", NewInjector(unicodeSegmenter(t), rng).Inject(""))
	assert.Equal(t, 0, rng.floatCalls)
}
