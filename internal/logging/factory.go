package logging

import (
	"fmt"
	"strings"

	"github.com/vvka-141/egrn/pkg/egrn"
)

// Log output formats accepted by New.
const (
	FormatText = "text"
	FormatSlog = "slog"
)

// Formats lists the accepted log formats.
var Formats = []string{FormatText, FormatSlog}

// New returns the logger for the named format. An empty format selects text.
func New(format string, verbose bool) (egrn.Logger, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatText:
		return NewConsoleLogger(verbose), nil
	case FormatSlog:
		return NewSlogLogger(SlogConfig{Verbose: verbose}), nil
	}
	return nil, fmt.Errorf("unknown log format %q (want text or slog): %w", format, egrn.ErrInvalidConfig)
}
