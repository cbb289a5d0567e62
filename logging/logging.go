package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/0xalexb/hjarta-config/config"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Format selects the slog handler.
type Format int

const (
	FormatJSON Format = iota
	FormatText
)

const megabyte = 1 << 20

// FormatCodec converts Format to and from its document names.
var FormatCodec = config.Enum(
	config.Case("json", FormatJSON),
	config.Case("text", FormatText),
)

// LoggerConfig holds configuration for the logger.
type LoggerConfig struct {
	Level  string
	Format Format
	// File enables the rotating file sink when set.
	File string
	// MaxSize is the size in bytes at which File is rotated.
	MaxSize uint64
}

// Schema loads a LoggerConfig. Every field is optional.
var Schema = config.Define("logging",
	config.Bind("level", config.String(), config.Literal("info"),
		func(c *LoggerConfig) *string { return &c.Level }),
	config.Bind("format", FormatCodec, config.Literal(FormatJSON),
		func(c *LoggerConfig) *Format { return &c.Format }),
	config.Bind("file", config.String(), config.Literal(""),
		func(c *LoggerConfig) *string { return &c.File }),
	config.Bind("max_size", config.ByteSize(), config.Literal[uint64](10*1000*1000),
		func(c *LoggerConfig) *uint64 { return &c.MaxSize }),
)

// NewLogger creates a new slog.Logger writing to w in the configured format.
// The level is parsed from the config; defaults to INFO if invalid or empty.
func NewLogger(cfg LoggerConfig, w io.Writer) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{
		AddSource:   false,
		Level:       parseLevel(cfg.Level),
		ReplaceAttr: nil,
	}

	var handler slog.Handler
	if cfg.Format == FormatText {
		handler = slog.NewTextHandler(w, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(w, handlerOpts)
	}

	return slog.New(handler)
}

// Open returns the log output for cfg: a size-rotated file when File is set,
// fallback otherwise. Closing the fallback is a no-op.
func Open(cfg LoggerConfig, fallback io.Writer) io.WriteCloser {
	if cfg.File == "" {
		return nopCloser{Writer: fallback}
	}

	return &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    maxSizeMegabytes(cfg.MaxSize),
		MaxAge:     0,
		MaxBackups: 0,
		LocalTime:  false,
		Compress:   false,
	}
}

// maxSizeMegabytes rounds up to whole megabytes, lumberjack's unit. Zero keeps
// lumberjack's own default.
func maxSizeMegabytes(size uint64) int {
	if size == 0 {
		return 0
	}

	return int((size + megabyte - 1) / megabyte)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
