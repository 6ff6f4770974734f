// Package oaslog defines the structured logging interface used by oasmeta.
//
// Registration and introspection are setup-time work, so logging is sparse: the
// introspection helpers log a warning whenever they degrade a value (for example a
// default-value callable that fails), and the registry logs at debug level.
//
// Use [NewSlogAdapter] for log/slog or [NewZapAdapter] for zap:
//
//	logger := oaslog.NewSlogAdapter(slog.New(slog.NewJSONHandler(os.Stderr, nil)))
//	reg := override.NewRegistry(override.WithLogger(logger))
package oaslog

import (
	"log/slog"

	"go.uber.org/zap"
)

// Logger is the interface that oasmeta uses for structured logging.
//
// Implementations should treat attrs as alternating key-value pairs, following
// the same convention as log/slog:
//
//	logger.Warn("default not set", "field", "price", "error", err)
type Logger interface {
	// Debug logs at debug level.
	Debug(msg string, attrs ...any)

	// Info logs at info level.
	Info(msg string, attrs ...any)

	// Warn logs at warn level. Degraded introspection results are reported here.
	Warn(msg string, attrs ...any)

	// Error logs at error level.
	Error(msg string, attrs ...any)

	// With returns a new Logger with the given attributes prepended to every log.
	With(attrs ...any) Logger
}

// NopLogger is a no-op logger that discards all output.
// It is the default logger used when no logger is configured.
type NopLogger struct{}

// Debug implements Logger.
func (NopLogger) Debug(_ string, _ ...any) {}

// Info implements Logger.
func (NopLogger) Info(_ string, _ ...any) {}

// Warn implements Logger.
func (NopLogger) Warn(_ string, _ ...any) {}

// Error implements Logger.
func (NopLogger) Error(_ string, _ ...any) {}

// With implements Logger.
func (n NopLogger) With(_ ...any) Logger { return n }

var _ Logger = NopLogger{}

// OrNop returns l, or a NopLogger when l is nil.
func OrNop(l Logger) Logger {
	if l == nil {
		return NopLogger{}
	}
	return l
}

// SlogAdapter wraps a *slog.Logger to implement the Logger interface.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter from a *slog.Logger.
// If logger is nil, slog.Default() is used.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

// Debug implements Logger.
func (s *SlogAdapter) Debug(msg string, attrs ...any) { s.logger.Debug(msg, attrs...) }

// Info implements Logger.
func (s *SlogAdapter) Info(msg string, attrs ...any) { s.logger.Info(msg, attrs...) }

// Warn implements Logger.
func (s *SlogAdapter) Warn(msg string, attrs ...any) { s.logger.Warn(msg, attrs...) }

// Error implements Logger.
func (s *SlogAdapter) Error(msg string, attrs ...any) { s.logger.Error(msg, attrs...) }

// With implements Logger.
func (s *SlogAdapter) With(attrs ...any) Logger {
	return &SlogAdapter{logger: s.logger.With(attrs...)}
}

var _ Logger = (*SlogAdapter)(nil)

// ZapAdapter wraps a *zap.SugaredLogger to implement the Logger interface.
type ZapAdapter struct {
	logger *zap.SugaredLogger
}

// NewZapAdapter creates a ZapAdapter from a *zap.Logger.
// If logger is nil, a no-op zap logger is used.
func NewZapAdapter(logger *zap.Logger) *ZapAdapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapAdapter{logger: logger.Sugar()}
}

// NewDevelopmentZapAdapter builds a zap development logger, falling back to a no-op
// logger if zap cannot be initialized.
func NewDevelopmentZapAdapter() *ZapAdapter {
	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		zapLogger = zap.NewNop()
	}
	return NewZapAdapter(zapLogger)
}

// Debug implements Logger.
func (z *ZapAdapter) Debug(msg string, attrs ...any) { z.logger.Debugw(msg, attrs...) }

// Info implements Logger.
func (z *ZapAdapter) Info(msg string, attrs ...any) { z.logger.Infow(msg, attrs...) }

// Warn implements Logger.
func (z *ZapAdapter) Warn(msg string, attrs ...any) { z.logger.Warnw(msg, attrs...) }

// Error implements Logger.
func (z *ZapAdapter) Error(msg string, attrs ...any) { z.logger.Errorw(msg, attrs...) }

// With implements Logger.
func (z *ZapAdapter) With(attrs ...any) Logger {
	return &ZapAdapter{logger: z.logger.With(attrs...)}
}

// Sync flushes any buffered log entries.
func (z *ZapAdapter) Sync() error {
	return z.logger.Sync()
}

var _ Logger = (*ZapAdapter)(nil)
