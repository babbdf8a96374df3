package logger

import (
	"io"
	"os"

	"github.com/baditaflorin/go_format_normalizer/internal/ports"
	"github.com/baditaflorin/l"
)

// StdLogger adapts the l.Logger to the ports.Logger interface. Level
// filtering is done by l; only CRITICAL, which l has no level for, is
// handled here.
type StdLogger struct {
	logger l.Logger
	silent bool
}

// Options configures NewStdLogger.
type Options struct {
	Output io.Writer
	Level  Level
	JSON   bool
}

// NewStdLogger creates a logger writing to stderr at info level.
func NewStdLogger() (ports.Logger, error) {
	return NewCustomStdLogger(Options{Output: os.Stderr, Level: LevelInfo})
}

// NewCustomStdLogger creates a standard logger with custom output, level
// and encoding.
func NewCustomStdLogger(opts Options) (ports.Logger, error) {
	if opts.Output == nil {
		opts.Output = os.Stderr
	}
	logger, err := l.NewStandardFactory().CreateLogger(l.Config{
		// l closes an io.Closer output on Close; the caller owns it.
		Output:      struct{ io.Writer }{opts.Output},
		Level:       opts.Level.slogLevel(),
		MinLevel:    opts.Level.slogLevel(),
		JsonFormat:  opts.JSON,
		AsyncWrite:  true,
		BufferSize:  64 * 1024,        // 64KB buffer
		MaxFileSize: 10 * 1024 * 1024, // 10MB max file size
		MaxBackups:  5,
		AddSource:   false,
		Metrics:     false,
	})
	if err != nil {
		return nil, err
	}

	return &StdLogger{logger: logger, silent: opts.Level >= LevelCritical}, nil
}

// FromExisting creates a new StdLogger from an existing l.Logger. Filtering
// is left to the wrapped logger.
func FromExisting(logger l.Logger) ports.Logger {
	return &StdLogger{logger: logger}
}

// Debug logs a debug message.
func (s *StdLogger) Debug(msg string, keysAndValues ...interface{}) {
	if !s.silent {
		s.logger.Debug(msg, keysAndValues...)
	}
}

// Info logs an info message.
func (s *StdLogger) Info(msg string, keysAndValues ...interface{}) {
	if !s.silent {
		s.logger.Info(msg, keysAndValues...)
	}
}

// Warn logs a warning message.
func (s *StdLogger) Warn(msg string, keysAndValues ...interface{}) {
	if !s.silent {
		s.logger.Warn(msg, keysAndValues...)
	}
}

// Error logs an error message.
func (s *StdLogger) Error(msg string, keysAndValues ...interface{}) {
	if !s.silent {
		s.logger.Error(msg, keysAndValues...)
	}
}

// Close flushes pending writes and closes the logger.
func (s *StdLogger) Close() error {
	return s.logger.Close()
}

// Nop discards everything.
type Nop struct{}

// NewNop returns a logger that discards every message.
func NewNop() ports.Logger { return Nop{} }

func (Nop) Debug(string, ...interface{}) {}
func (Nop) Info(string, ...interface{})  {}
func (Nop) Warn(string, ...interface{})  {}
func (Nop) Error(string, ...interface{}) {}
func (Nop) Close() error                 { return nil }
