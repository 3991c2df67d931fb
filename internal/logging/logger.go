// Package logging builds the structured logger used by the CLI.
//
// Stdout carries exactly one JSON line per run, so every log sink is stderr.
package logging

import (
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a production JSON logger writing to w, normally the command's
// stderr. Verbose lowers the level to debug; otherwise only warnings and
// errors are written.
func New(w io.Writer, verbose bool) *zap.Logger {
	level := zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	sink := zapcore.Lock(zapcore.AddSync(w))
	core := zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), sink, level)
	return zap.New(core, zap.AddCaller(), zap.ErrorOutput(sink))
}

// WithRun tags logger with a fresh run ID and returns both.
func WithRun(logger *zap.Logger) (*zap.Logger, string) {
	runID := uuid.NewString()
	return logger.With(zap.String("run_id", runID)), runID
}
