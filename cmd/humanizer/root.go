package main

import (
	"fmt"
	"time"

	"github.com/jonathan/humanizer/internal/burstiness"
	"github.com/jonathan/humanizer/internal/config"
	"github.com/jonathan/humanizer/internal/humanize"
	"github.com/jonathan/humanizer/internal/ingestion"
	"github.com/jonathan/humanizer/internal/logging"
	"github.com/jonathan/humanizer/internal/observability"
	"github.com/jonathan/humanizer/internal/schemas"
	"github.com/jonathan/humanizer/internal/segment"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootOptions holds flag values shared by every subcommand.
type rootOptions struct {
	configPath string
	inputFile  string
	segmenter  string
	html       bool
	verbose    bool

	seed   int64
	report bool

	lookupEnv func(string) (string, bool)
}

// runContext is everything a command needs once flags, config and env are merged.
type runContext struct {
	cfg    config.Config
	seg    segment.Segmenter
	logger *zap.Logger
}

func newRootCmd(lookupEnv func(string) (string, bool)) *cobra.Command {
	opts := &rootOptions{lookupEnv: lookupEnv}

	rootCmd := &cobra.Command{
		Use:   "humanizer [text]",
		Short: "Raise the burstiness of machine-like text",
		Long: "Humanizer swaps formal transitions for casual ones, sprinkles filler words and merges short sentences " +
			"to vary sentence length. Text comes from the argument, --input, or stdin; one JSON line is written to stdout.\n\n" +
			"Text that starts with a dash is taken as text. To humanize text that is exactly a subcommand name, " +
			"pass it after --, as in: humanizer -- version",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcess(cmd, args, opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVarP(&opts.inputFile, "input", "i", "", "Read text from this file instead of stdin")
	rootCmd.PersistentFlags().StringVar(&opts.segmenter, "segmenter", config.DefaultSegmenter, fmt.Sprintf("Sentence segmenter %v", segment.Names()))
	rootCmd.PersistentFlags().BoolVar(&opts.html, "html", false, "Treat input as HTML and humanize its main text")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Debug logging on stderr")

	rootCmd.Flags().Int64Var(&opts.seed, "seed", 0, "Random seed for reproducible output (default: clock)")
	rootCmd.Flags().BoolVar(&opts.report, "report", false, "Print before/after sentence statistics to stderr")

	rootCmd.AddCommand(newAnalyzeCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func runProcess(cmd *cobra.Command, args []string, opts *rootOptions) error {
	rc, err := setup(cmd, opts)
	if err != nil {
		return err
	}
	defer func() { _ = rc.logger.Sync() }()

	text, err := readText(cmd, args, opts, rc)
	if err != nil {
		return err
	}

	var seed uint64
	if rc.cfg.Seed != nil {
		seed = uint64(*rc.cfg.Seed)
	} else {
		seed = uint64(time.Now().UnixNano())
	}
	rc.logger.Debug("random source ready", zap.Uint64("seed", seed), zap.Bool("fixed", rc.cfg.Seed != nil))

	engine := humanize.NewEngine(rc.seg, humanize.NewRand(seed), humanize.WithLogger(rc.logger))
	result := engine.Process(text)

	if rc.cfg.Report {
		before := burstiness.Summarize(rc.seg, text)
		after := burstiness.Summarize(rc.seg, result.Humanized)
		printer := observability.NewPrinter(cmd.ErrOrStderr())
		printer.PrintStats("BEFORE", &before)
		printer.PrintStats("AFTER", &after)
		printer.PrintMetrics(&result.Metrics)
	}

	return writeJSON(cmd.OutOrStdout(), result, schemas.ValidateResult)
}

// setup merges config file, environment and flags, then builds the logger and segmenter.
func setup(cmd *cobra.Command, opts *rootOptions) (*runContext, error) {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return nil, err
	}

	logger, _ := logging.WithRun(logging.New(cmd.ErrOrStderr(), cfg.Verbose))
	logger = logger.With(zap.String("command", cmd.Name()))

	seg, err := segment.New(cfg.Segmenter)
	if err != nil {
		logger.Debug("segmenter unavailable", zap.String("segmenter", cfg.Segmenter), zap.Error(err))
		return nil, err
	}
	logger.Debug("segmenter ready", zap.String("segmenter", cfg.Segmenter))

	return &runContext{cfg: cfg, seg: seg, logger: logger}, nil
}

// resolveConfig applies, in increasing priority: defaults, config file,
// environment, explicitly set flags.
func resolveConfig(cmd *cobra.Command, opts *rootOptions) (config.Config, error) {
	cfg := &config.Config{}
	if opts.configPath != "" {
		loaded, err := config.LoadConfig(opts.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	if opts.lookupEnv != nil {
		if err := cfg.ApplyEnv(opts.lookupEnv); err != nil {
			return config.Config{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		seed := opts.seed
		cfg.Seed = &seed
	}
	if flags.Changed("segmenter") {
		cfg.Segmenter = opts.segmenter
	}
	if flags.Changed("html") {
		cfg.HTML = opts.html
	}
	if flags.Changed("verbose") {
		cfg.Verbose = opts.verbose
	}
	if flags.Changed("report") {
		cfg.Report = opts.report
	}

	merged := cfg.MergeWithDefaults(config.Config{Segmenter: config.DefaultSegmenter})
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

func readText(cmd *cobra.Command, args []string, opts *rootOptions, rc *runContext) (string, error) {
	text, source, err := ingestion.ReadInput(args, opts.inputFile, cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	rc.logger.Debug("input read", zap.String("source", string(source)), zap.Int("bytes", len(text)))

	if rc.cfg.HTML {
		text, err = ingestion.ExtractText(text)
		if err != nil {
			return "", err
		}
		rc.logger.Debug("html text extracted", zap.Int("bytes", len(text)))
	}
	return text, nil
}
