package hjarta

import (
	"fmt"
	"log/slog"

	"github.com/0xalexb/hjarta-config/config"
	"github.com/0xalexb/hjarta-config/logging"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules  []fx.Option
	LogLevel string
	// Logging replaces the default logger configuration when set. LogLevel still
	// overrides its level.
	Logging *logging.LoggerConfig
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogging sets the whole logger configuration, typically the logging section of
// a loaded configuration.
func WithLogging(cfg logging.LoggerConfig) Option {
	return func(opts *Options) {
		opts.Logging = &cfg
	}
}

// WithConfig provides *S to the container, loaded from the file at path with schema.
// Fields that are missing or invalid in the file take their defaults; only an
// unreadable or unparsable root file fails the application start.
// Call multiple times with different schemas to provide several configurations.
func WithConfig[S any](schema *config.Schema[S], path string, opts ...config.LoaderOption) Option {
	provide := func(logger *slog.Logger) (*S, error) {
		loaderOpts := append([]config.LoaderOption{config.WithLogger(logger)}, opts...)

		value, err := config.NewLoader(schema, loaderOpts...).Load(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s config: %w", schema.Name(), err)
		}

		return &value, nil
	}

	return func(o *Options) {
		o.Modules = append(o.Modules, fx.Provide(provide))
	}
}

func (opts *Options) loggerConfig() logging.LoggerConfig {
	cfg := logging.LoggerConfig{Level: opts.LogLevel}

	if opts.Logging != nil {
		cfg = *opts.Logging

		if opts.LogLevel != "" {
			cfg.Level = opts.LogLevel
		}
	}

	return cfg
}
