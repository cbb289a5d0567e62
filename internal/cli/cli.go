package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	hjarta "github.com/0xalexb/hjarta-config"
	"github.com/0xalexb/hjarta-config/config"
	"github.com/0xalexb/hjarta-config/internal/appconfig"
	"github.com/0xalexb/hjarta-config/logging"

	"go.uber.org/fx"
)

// ExitError is an error carrying the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Options are the parsed command line.
type Options struct {
	ConfigPath string
	WritePath  string
	LogLevel   string
	Diff       bool
	Strict     bool
	Report     bool
	Defaults   bool
	Version    bool
}

// Parse processes command-line arguments. It returns the options, whether the
// program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*Options, bool, error) {
	flagSet := flag.NewFlagSet("hjarta-config", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
hjarta-config - Load a configuration tree, filling every missing or invalid field with its default.

Usage:
  hjarta-config [options] [CONFIG_PATH]

Arguments:
  CONFIG_PATH
    Path to the root .yml/.yaml file. Fields set to "extern" are read from
    <field>/config.yml or <field>.yml next to it.

Options:
`)
		flagSet.PrintDefaults()
	}

	opts := &Options{}

	flagSet.StringVar(&opts.ConfigPath, "config", "", "Path to the root configuration file.")
	flagSet.StringVar(&opts.WritePath, "write", "", "Write the effective configuration as one file to this path.")
	flagSet.StringVar(&opts.LogLevel, "log-level", "warn", "Logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flagSet.BoolVar(&opts.Diff, "diff", false, "Print the effective configuration as a diff against the defaults.")
	flagSet.BoolVar(&opts.Strict, "strict", false, "Fail when a present field was invalid and fell back to its default.")
	flagSet.BoolVar(&opts.Report, "report", false, "List the fields that fell back to their defaults.")
	flagSet.BoolVar(&opts.Defaults, "defaults", false, "Print the default configuration and exit.")
	flagSet.BoolVar(&opts.Version, "version", false, "Print the version and exit.")

	err := flagSet.Parse(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}

		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if opts.ConfigPath == "" && flagSet.NArg() > 0 {
		opts.ConfigPath = flagSet.Arg(0)
	}

	opts.LogLevel = strings.ToLower(opts.LogLevel)
	switch opts.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if opts.ConfigPath == "" && !opts.Defaults && !opts.Version {
		flagSet.Usage()

		return nil, true, nil
	}

	return opts, false, nil
}

// Run executes opts, writing documents to output.
func Run(opts *Options, output io.Writer) error {
	if opts.Version {
		fmt.Fprintf(output, "hjarta-config %s (compiled %s)\n", hjarta.Version, hjarta.CompiledAt)

		return nil
	}

	if opts.Defaults {
		data, err := appconfig.NewLoader().Marshal(appconfig.Schema.Default())
		if err != nil {
			return err
		}

		_, err = output.Write(data)

		return err
	}

	report := &config.Report{}

	loaderOpts := []config.LoaderOption{config.WithReport(report)}
	if opts.Strict {
		loaderOpts = append(loaderOpts, config.WithStrict())
	}

	app := hjarta.NewApp(
		hjarta.WithLogging(logging.LoggerConfig{Level: opts.LogLevel, Format: logging.FormatText}),
		hjarta.WithConfig(appconfig.Schema, opts.ConfigPath, loaderOpts...),
		hjarta.WithModules(fx.Invoke(func(cfg *appconfig.Config, logger *slog.Logger) error {
			return present(opts, *cfg, report, logger, output)
		})),
	)

	err := app.Start()
	if err != nil {
		return &ExitError{Code: 1, Message: err.Error()}
	}

	return app.Stop()
}

func present(opts *Options, cfg appconfig.Config, report *config.Report, logger *slog.Logger, output io.Writer) error {
	loader := appconfig.NewLoader(config.WithLogger(logger))

	effective, err := loader.Marshal(cfg)
	if err != nil {
		return err
	}

	if opts.Diff {
		defaults, marshalErr := loader.Marshal(loader.Default())
		if marshalErr != nil {
			return marshalErr
		}

		fmt.Fprint(output, LineDiff(string(defaults), string(effective)))
	} else {
		_, err = output.Write(effective)
		if err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}

	if opts.Report {
		for _, problem := range report.Problems() {
			fmt.Fprintf(output, "# defaulted %s\n", problem)
		}
	}

	if opts.WritePath != "" {
		err = loader.Write(opts.WritePath, cfg)
		if err != nil {
			return fmt.Errorf("writing %s: %w", opts.WritePath, err)
		}

		logger.Info("configuration written", slog.String("file", opts.WritePath))
	}

	return nil
}
