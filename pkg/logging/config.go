package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/podium/pkg/constants"
)

// Config describes how the podium CLI builds its logger.
type Config struct {
	// Level is the minimum level written: trace, debug, info, warn, error
	// or off.
	Level string

	// Format is json, console or auto. Auto picks console on a terminal.
	Format string

	// Output is stderr, stdout, discard or a file path opened for append.
	Output string

	// TimeFormat is kitchen, rfc3339 or a Go layout for console output.
	TimeFormat string

	NoColor bool

	// AddCaller annotates each event with file:line.
	AddCaller bool
}

// NewLoggerFromConfig builds a logger from cfg and sets the global level to
// match. A nil cfg logs info and above to stderr.
func NewLoggerFromConfig(cfg *Config) zerolog.Logger {
	if cfg == nil {
		cfg = &Config{Level: "info", Format: "auto", Output: "stderr"}
	}

	level := parseLevel(cfg.Level)
	zerolog.SetGlobalLevel(level)

	logger := zerolog.New(newWriter(cfg)).Level(level).With().Timestamp().Logger()
	if cfg.AddCaller || level <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}
	return logger
}

func newWriter(cfg *Config) io.Writer {
	out := openOutput(cfg.Output)

	format := strings.ToLower(cfg.Format)
	if format == "" || format == "auto" {
		format = "json"
		if out == os.Stderr && stderrIsTerminal() {
			format = "console"
		}
	}
	if format != "console" && format != "pretty" {
		return out
	}
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: parseTimeFormat(cfg.TimeFormat),
		NoColor:    cfg.NoColor,
	}
}

// openOutput falls back to stderr when a log file cannot be opened.
func openOutput(dest string) io.Writer {
	switch strings.ToLower(dest) {
	case "", "stderr":
		return os.Stderr
	case "stdout":
		return os.Stdout
	case "discard", "none":
		return io.Discard
	}
	file, err := os.OpenFile(dest, os.O_CREATE|os.O_APPEND|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return os.Stderr
	}
	return file
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "warning":
		return zerolog.WarnLevel
	case "off", "none":
		return zerolog.Disabled
	}
	l, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}
	return l
}

func parseTimeFormat(format string) string {
	switch strings.ToLower(format) {
	case "", "kitchen":
		return time.Kitchen
	case "rfc3339":
		return time.RFC3339
	}
	if strings.Contains(format, "2006") || strings.Contains(format, "15:04") {
		return format
	}
	return time.Kitchen
}
