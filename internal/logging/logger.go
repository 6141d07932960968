// Package logging configures the zerolog logger used across locconv.
//
// Diagnostics go to stderr so they never mix with converted output. The
// console format is colored only when stderr is a terminal; the json format
// emits one zerolog event per line for machine parsing.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"codeberg.org/snonux/locconv/internal/translation"
)

// SetDefault provides an ok log output format before configuration is read
func SetDefault() {
	log.Logger = zerolog.New(ConsoleWriter(os.Stderr)).With().Timestamp().Logger()
}

// Setup replaces the global logger according to level and format
func Setup(level, format string) error {
	logger, err := New(os.Stderr, level, format)
	if err != nil {
		return err
	}

	log.Logger = logger
	return nil
}

// New builds a logger writing to f.
//
// Level values: "debug", "info", "warn", "error" (default: "info")
// Format values: "console", "json" (default: "console")
func New(f *os.File, level, format string) (zerolog.Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	var w io.Writer
	switch strings.ToLower(format) {
	case "", "console", "text":
		w = ConsoleWriter(f)
	case "json":
		w = f
	default:
		return zerolog.Nop(), fmt.Errorf("%w: unknown log format %q", translation.ErrUsage, format)
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

func parseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(level) {
	case "":
		return zerolog.InfoLevel, nil
	case "warning":
		return zerolog.WarnLevel, nil
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.InfoLevel, fmt.Errorf("%w: unknown log level %q", translation.ErrUsage, level)
	}
	return lvl, nil
}

// ConsoleWriter returns a human-readable writer that uses colors only when
// f is a terminal
func ConsoleWriter(f *os.File) io.Writer {
	noColor := !isatty.IsTerminal(f.Fd())

	return zerolog.ConsoleWriter{Out: f, NoColor: noColor, TimeFormat: time.TimeOnly}
}
