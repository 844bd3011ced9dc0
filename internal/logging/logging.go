// Package logging builds the zap loggers used by the CLI and the experiment
// runner. Library packages never construct loggers themselves; they accept
// an injected *zap.Logger and default to zap.NewNop.
package logging

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Environment names.
const (
	Development = "development"
	Production  = "production"
)

// ErrUnknownEnvironment indicates an environment other than Development or
// Production.
var ErrUnknownEnvironment = errors.New("logging: unknown environment")

// New returns a JSON logger for Production and a colored console logger for
// Development. An empty level keeps the environment default (info in
// production, debug in development). Output goes to stderr so stdout stays
// free for reports.
func New(environment, level string) (*zap.Logger, error) {
	var cfg zap.Config
	switch environment {
	case Production:
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		cfg.Sampling = &zap.SamplingConfig{Initial: 100, Thereafter: 100}
	case Development, "":
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	default:
		return nil, fmt.Errorf("New(%q): %w", environment, ErrUnknownEnvironment)
	}

	if level != "" {
		lvl, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return nil, fmt.Errorf("New: level %q: %w", level, err)
		}
		cfg.Level = lvl
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build(zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
	if err != nil {
		return nil, fmt.Errorf("New: build: %w", err)
	}

	return logger, nil
}
