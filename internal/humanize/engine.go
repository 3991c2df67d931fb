package humanize

import (
	"github.com/jonathan/humanizer/internal/burstiness"
	"github.com/jonathan/humanizer/internal/segment"
	"go.uber.org/zap"
)

// Metrics compares burstiness before and after humanizing. Values are rounded
// to two decimals.
type Metrics struct {
	InitialBurstiness float64 `json:"initial_burstiness"`
	FinalBurstiness   float64 `json:"final_burstiness"`
	Improvement       float64 `json:"improvement"`
}

// Result is the single artifact of a humanizer run.
type Result struct {
	Humanized string  `json:"humanized"`
	Metrics   Metrics `json:"metrics"`
}

// Engine runs analyze, inject, optimize, analyze in sequence.
// It is not safe for concurrent use; the passes share one random source.
type Engine struct {
	seg       segment.Segmenter
	injector  *Injector
	optimizer *Optimizer
	logger    *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for per-stage debug output.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an Engine whose passes share rng.
func NewEngine(seg segment.Segmenter, rng Rand, opts ...Option) *Engine {
	e := &Engine{
		seg:       seg,
		injector:  NewInjector(seg, rng),
		optimizer: NewOptimizer(seg, rng),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Process humanizes text and reports the change in burstiness.
// Improvement is the difference of the rounded scores, so it always equals
// FinalBurstiness - InitialBurstiness.
func (e *Engine) Process(text string) *Result {
	initial := burstiness.Analyze(e.seg, text)
	e.logger.Debug("analyzed input",
		zap.Int("chars", len(text)),
		zap.Float64("burstiness", initial))

	processed := e.injector.Inject(text)
	e.logger.Debug("injected noise", zap.Int("chars", len(processed)))

	processed = e.optimizer.Optimize(processed)
	e.logger.Debug("optimized rhythm", zap.Int("chars", len(processed)))

	final := burstiness.Analyze(e.seg, processed)
	e.logger.Debug("analyzed output", zap.Float64("burstiness", final))

	initialRounded := burstiness.Round2(initial)
	finalRounded := burstiness.Round2(final)
	return &Result{
		Humanized: processed,
		Metrics: Metrics{
			InitialBurstiness: initialRounded,
			FinalBurstiness:   finalRounded,
			Improvement:       burstiness.Round2(finalRounded - initialRounded),
		},
	}
}
