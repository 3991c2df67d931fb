// Package humanize perturbs text to raise its burstiness.
package humanize

import (
	"regexp"
	"strings"
)

// Tuning values. They have no derivation; changing any of them changes output.
const (
	// FillerProbability is the per-sentence chance of a filler insertion attempt.
	FillerProbability = 0.1
	// FillerMinWords is exclusive: a sentence needs more than this many words to take a filler.
	FillerMinWords = 5
	// MergeProbability is the per-pair chance that two short sentences are merged.
	MergeProbability = 0.3
	// MergeMaxWords is exclusive: both sentences need fewer than this many words to merge.
	MergeMaxWords = 10
	// mergeJoiner replaces the period between two merged sentences.
	mergeJoiner = ", and "
)

// Category groups transition phrases by their logical relation.
type Category string

const (
	Addition   Category = "addition"
	Contrast   Category = "contrast"
	Conclusion Category = "conclusion"
	Example    Category = "example"
)

// TransitionVariants are the casual replacements for each category.
var TransitionVariants = map[Category][]string{
	Addition:   {"Plus,", "And also,", "On top of that,", "Not to mention,"},
	Contrast:   {"But honestly,", "Though,", "Still,", "On the flip side,"},
	Conclusion: {"Basically,", "So yeah,", "In short,", "All in all,"},
	Example:    {"Like,", "For instance,", "Say,"},
}

// TransitionOpeners are the formal sentence openers that get replaced.
// Conclusion and example have variants but no openers, so they never fire.
var TransitionOpeners = map[Category][]string{
	Addition: {"Furthermore", "Moreover", "Additionally"},
	Contrast: {"However"},
}

// substitutionOrder is the order categories are tried; the first match wins.
var substitutionOrder = []Category{Addition, Contrast}

// Fillers are the low-information words inserted mid-sentence.
var Fillers = []string{"literally", "basically", "actually", "honestly", "kind of", "sort of", "just"}

// openerRule replaces a matching sentence prefix with a random variant.
type openerRule struct {
	category Category
	pattern  *regexp.Regexp
}

var openerRules = compileOpenerRules()

// compileOpenerRules builds one anchored, case-sensitive pattern per category:
// the opener, an optional comma, and any following whitespace.
func compileOpenerRules() []openerRule {
	rules := make([]openerRule, 0, len(substitutionOrder))
	for _, category := range substitutionOrder {
		openers := TransitionOpeners[category]
		quoted := make([]string, len(openers))
		for i, opener := range openers {
			quoted[i] = regexp.QuoteMeta(opener)
		}
		rules = append(rules, openerRule{
			category: category,
			pattern:  regexp.MustCompile(`^(?:` + strings.Join(quoted, "|") + `),?\s*`),
		})
	}
	return rules
}
