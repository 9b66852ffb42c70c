package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"
)

// SlogLogger adapts egrn.Logger to log/slog. Output is rendered by tint,
// coloured only when the destination is a terminal.
type SlogLogger struct {
	logger *slog.Logger
}

// SlogConfig configures a SlogLogger.
type SlogConfig struct {
	// Writer receives log lines. Defaults to os.Stderr.
	Writer io.Writer

	// Verbose enables debug level, which Verbose() logs at.
	Verbose bool

	// NoColor forces plain output even on a terminal.
	NoColor bool
}

// NewSlogLogger creates a SlogLogger from cfg.
func NewSlogLogger(cfg SlogConfig) *SlogLogger {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}

	handler := tint.NewHandler(cfg.Writer, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    cfg.NoColor || !isTerminal(cfg.Writer),
	})
	return &SlogLogger{logger: slog.New(handler)}
}

// Slog exposes the underlying structured logger.
func (l *SlogLogger) Slog() *slog.Logger {
	return l.logger
}

// Verbose logs at debug level.
func (l *SlogLogger) Verbose(format string, args ...interface{}) {
	l.logger.Debug(sprintf(format, args))
}

// Info logs at info level.
func (l *SlogLogger) Info(format string, args ...interface{}) {
	l.logger.Info(sprintf(format, args))
}

// Error logs at error level.
func (l *SlogLogger) Error(format string, args ...interface{}) {
	l.logger.Error(sprintf(format, args))
}

func sprintf(format string, args []interface{}) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
