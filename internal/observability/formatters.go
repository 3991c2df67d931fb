// Package observability provides formatted output utilities for the --report flag.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/humanizer/internal/burstiness"
	"github.com/jonathan/humanizer/internal/humanize"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
	// barScale is the number of words one bar character stands for
	barScale = 2
)

// Printer handles formatted output for report mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines on rune boundaries; bars are multi-byte
		if runes := []rune(line); len(runes) > boxWidth-4 {
			line = string(runes[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintStats outputs the sentence-length distribution of one text.
func (p *Printer) PrintStats(title string, stats *burstiness.Stats) {
	if stats == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Sentences:   %d\n", stats.Sentences))
	sb.WriteString(fmt.Sprintf("Mean words:  %.2f\n", stats.MeanWords))
	sb.WriteString(fmt.Sprintf("Burstiness:  %.2f\n", stats.Burstiness))

	if len(stats.WordCounts) > 0 {
		sb.WriteString("\nWords per sentence:\n")
		count := min(len(stats.WordCounts), maxItemsToShow)
		for i := 0; i < count; i++ {
			n := stats.WordCounts[i]
			sb.WriteString(fmt.Sprintf("  #%-3d %3d %s\n", i+1, n, strings.Repeat("▇", (n+barScale-1)/barScale)))
		}
		if len(stats.WordCounts) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(stats.WordCounts)-maxItemsToShow))
		}
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMetrics outputs the before/after burstiness comparison.
func (p *Printer) PrintMetrics(metrics *humanize.Metrics) {
	if metrics == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Initial burstiness:  %.2f\n", metrics.InitialBurstiness))
	sb.WriteString(fmt.Sprintf("Final burstiness:    %.2f\n", metrics.FinalBurstiness))
	sb.WriteString(fmt.Sprintf("Improvement:         %+.2f", metrics.Improvement))

	p.printBox("BURSTINESS", sb.String())
}
