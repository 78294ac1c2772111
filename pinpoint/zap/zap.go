package zap

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/LerianStudio/lib-pinpoint/pinpoint/log"
)

const callerSkipFrames = 1

// Environment controls the baseline logger profile.
type Environment string

const (
	EnvironmentProduction  Environment = "production"
	EnvironmentStaging     Environment = "staging"
	EnvironmentDevelopment Environment = "development"
	EnvironmentLocal       Environment = "local"
)

// Config contains all required logger initialization inputs.
type Config struct {
	Environment Environment
	Level       string
}

func (c Config) validate() error {
	switch c.Environment {
	case EnvironmentProduction, EnvironmentStaging, EnvironmentDevelopment, EnvironmentLocal:
		return nil
	default:
		return fmt.Errorf("invalid environment %q", c.Environment)
	}
}

// Logger adapts a zap logger to the log.Logger interface.
type Logger struct {
	zl *zap.Logger
}

// New creates a structured logger and returns it with a runtime-adjustable
// level handle.
func New(cfg Config) (*Logger, zap.AtomicLevel, error) {
	if err := cfg.validate(); err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("invalid zap config: %w", err)
	}

	level := zapcore.InfoLevel
	if cfg.Level != "" {
		parsed, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, zap.AtomicLevel{}, fmt.Errorf("invalid zap level: %w", err)
		}

		level = parsed
	}

	atomic := zap.NewAtomicLevelAt(level)

	zapCfg := zap.NewProductionConfig()
	if cfg.Environment == EnvironmentDevelopment || cfg.Environment == EnvironmentLocal {
		zapCfg = zap.NewDevelopmentConfig()
	}

	zapCfg.Level = atomic

	zl, err := zapCfg.Build(zap.AddCallerSkip(callerSkipFrames))
	if err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("build zap logger: %w", err)
	}

	return &Logger{zl: zl}, atomic, nil
}

// FromZap wraps an existing zap logger. Useful for embedding into an
// application that already configured its own cores.
func FromZap(zl *zap.Logger) *Logger {
	return &Logger{zl: zl}
}

// Log implements the log.Logger interface.
func (l *Logger) Log(_ context.Context, level log.Level, msg string, fields ...log.Field) {
	l.zl.Log(toZapLevel(level), msg, toZapFields(fields)...)
}

// With returns a logger that includes the given fields on every entry.
//
//nolint:ireturn
func (l *Logger) With(fields ...log.Field) log.Logger {
	return &Logger{zl: l.zl.With(toZapFields(fields)...)}
}

// WithGroup returns a logger namespacing subsequent field keys under name.
//
//nolint:ireturn
func (l *Logger) WithGroup(name string) log.Logger {
	if name == "" {
		return l
	}

	return &Logger{zl: l.zl.With(zap.Namespace(name))}
}

// Enabled reports whether entries at the given level would be emitted.
func (l *Logger) Enabled(level log.Level) bool {
	return l.zl.Core().Enabled(toZapLevel(level))
}

// Sync flushes buffered log entries.
func (l *Logger) Sync(_ context.Context) error {
	if err := l.zl.Sync(); err != nil {
		return fmt.Errorf("sync zap logger: %w", err)
	}

	return nil
}

func toZapLevel(level log.Level) zapcore.Level {
	switch level {
	case log.LevelDebug:
		return zapcore.DebugLevel
	case log.LevelInfo:
		return zapcore.InfoLevel
	case log.LevelWarn:
		return zapcore.WarnLevel
	case log.LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func toZapFields(fields []log.Field) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))

	for _, field := range fields {
		if err, ok := field.Value.(error); ok && field.Key == "error" {
			zapFields = append(zapFields, zap.Error(err))
			continue
		}

		zapFields = append(zapFields, zap.Any(field.Key, field.Value))
	}

	return zapFields
}
