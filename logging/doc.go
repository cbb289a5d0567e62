// Package logging provides structured logging using Go's standard library log/slog.
// It outputs logs in JSON or text format, optionally to a size-rotated file, and its
// LoggerConfig can be loaded as part of a configuration document through Schema.
package logging
