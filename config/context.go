package config

import (
	"errors"
	"log/slog"
	"slices"
	"strings"

	"github.com/0xalexb/hjarta-config/config/node"
	yamlparser "github.com/0xalexb/hjarta-config/config/parser/yaml"
)

// LoadContext carries per-load state down the recursion: the directory extern files
// resolve against and the field path walked so far. It is a value; extending it never
// affects the caller's copy.
type LoadContext struct {
	BaseDir string
	Path    []string

	env *environment
}

type environment struct {
	resolver Resolver
	logger   *slog.Logger
	report   *Report
}

// NewLoadContext returns a root context resolving extern files against baseDir with the
// YAML file resolver and the default logger.
func NewLoadContext(baseDir string) LoadContext {
	return LoadContext{BaseDir: baseDir, Path: nil, env: nil}
}

// Child returns the context for the named field below lc.
func (lc LoadContext) Child(name string) LoadContext {
	lc.Path = slices.Concat(lc.Path, []string{name})

	return lc
}

// WithBaseDir returns lc with extern lookups redirected to dir.
func (lc LoadContext) WithBaseDir(dir string) LoadContext {
	lc.BaseDir = dir

	return lc
}

// String returns the dotted field path.
func (lc LoadContext) String() string {
	return strings.Join(lc.Path, ".")
}

// Logger returns the logger of the running load.
func (lc LoadContext) Logger() *slog.Logger {
	return lc.environment().logger
}

func (lc LoadContext) environment() *environment {
	if lc.env != nil {
		return lc.env
	}

	return &environment{
		resolver: NewFileResolver(yamlparser.NewParser()),
		logger:   slog.Default(),
		report:   nil,
	}
}

func (lc LoadContext) resolve(name string) (*node.Node, string, error) {
	return lc.environment().resolver.Resolve(lc, name)
}

// record notes that the field lc points at fell back to its default.
func (lc LoadContext) record(err error) {
	var convErr *ConversionError
	if !errors.As(err, &convErr) {
		convErr = NewConversionError(lc, KindMalformed, err)
	}

	env := lc.environment()

	env.logger.Debug("field defaulted",
		slog.String("field", convErr.Path),
		slog.String("kind", convErr.Kind.String()),
		slog.Any("error", err),
	)

	if env.report != nil {
		env.report.add(convErr)
	}
}
