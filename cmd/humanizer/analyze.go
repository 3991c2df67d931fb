package main

import (
	"github.com/jonathan/humanizer/internal/burstiness"
	"github.com/jonathan/humanizer/internal/schemas"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newAnalyzeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [text]",
		Short: "Report sentence-length statistics without changing the text",
		Long:  "Analyze segments the text and reports per-sentence word counts, their mean, and burstiness (population variance).",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args, opts)
		},
	}
}

func runAnalyze(cmd *cobra.Command, args []string, opts *rootOptions) error {
	rc, err := setup(cmd, opts)
	if err != nil {
		return err
	}
	defer func() { _ = rc.logger.Sync() }()

	text, err := readText(cmd, args, opts, rc)
	if err != nil {
		return err
	}

	stats := burstiness.Summarize(rc.seg, text).Rounded()
	rc.logger.Debug("analyzed", zap.Int("sentences", stats.Sentences), zap.Float64("burstiness", stats.Burstiness))

	return writeJSON(cmd.OutOrStdout(), stats, schemas.ValidateAnalysis)
}
