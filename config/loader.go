package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"

	"github.com/0xalexb/hjarta-config/config/fetcher/file"
	"github.com/0xalexb/hjarta-config/config/node"
	yamlparser "github.com/0xalexb/hjarta-config/config/parser/yaml"
)

// LoaderOption configures a Loader.
type LoaderOption func(*loaderOptions)

type loaderOptions struct {
	parser   Parser
	renderer Renderer
	resolver Resolver
	logger   *slog.Logger
	section  string
	strict   bool
	report   *Report
}

// WithParser sets the document parser. When parser also implements Renderer it is
// used for writing too.
func WithParser(parser Parser) LoaderOption {
	return func(opts *loaderOptions) {
		opts.parser = parser

		if renderer, ok := parser.(Renderer); ok {
			opts.renderer = renderer
		}
	}
}

// WithRenderer sets the renderer used by Marshal and Write.
func WithRenderer(renderer Renderer) LoaderOption {
	return func(opts *loaderOptions) {
		opts.renderer = renderer
	}
}

// WithResolver replaces the extern file resolver.
func WithResolver(resolver Resolver) LoaderOption {
	return func(opts *loaderOptions) {
		opts.resolver = resolver
	}
}

// WithLogger sets the logger; slog.Default() is used otherwise.
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(opts *loaderOptions) {
		opts.logger = logger
	}
}

// WithSection loads the schema from a section of the document instead of its root.
// The path uses colon (:) as separator, e.g. "services:api". A missing section
// loads defaults.
func WithSection(path string) LoaderOption {
	return func(opts *loaderOptions) {
		opts.section = path
	}
}

// WithStrict makes loads return ErrStrict when any field fell back to its default
// for a reason other than being absent. The defaulted value is still returned.
func WithStrict() LoaderOption {
	return func(opts *loaderOptions) {
		opts.strict = true
	}
}

// WithReport appends the conversion errors of every load to report.
func WithReport(report *Report) LoaderOption {
	return func(opts *loaderOptions) {
		opts.report = report
	}
}

// Loader loads and writes values of a schema.
type Loader[S any] struct {
	schema *Schema[S]
	opts   loaderOptions
}

// NewLoader returns a loader for schema reading YAML documents by default.
func NewLoader[S any](schema *Schema[S], opts ...LoaderOption) *Loader[S] {
	var options loaderOptions

	for _, apply := range opts {
		apply(&options)
	}

	if options.parser == nil {
		parser := yamlparser.NewParser()
		options.parser = parser

		if options.renderer == nil {
			options.renderer = parser
		}
	}

	if options.renderer == nil {
		options.renderer = yamlparser.NewParser()
	}

	if options.resolver == nil {
		options.resolver = NewFileResolver(options.parser)
	}

	if options.logger == nil {
		options.logger = slog.Default()
	}

	return &Loader[S]{schema: schema, opts: options}
}

// Default returns the schema defaults.
func (l *Loader[S]) Default() S {
	return l.schema.Default()
}

// Load reads the document at path. Extern files resolve relative to its directory.
// Only a root file that cannot be read or parsed is an error; bad fields take their
// defaults.
func (l *Loader[S]) Load(path string) (S, error) {
	fetcher, err := file.NewFetcher(path)()
	if err != nil {
		var zero S

		return zero, fmt.Errorf("reading data error: %w", err)
	}

	data, err := fetcher.Fetch()
	if err != nil {
		var zero S

		return zero, fmt.Errorf("reading data error: %w", err)
	}

	l.opts.logger.Info("loading configuration",
		slog.String("schema", l.schema.Name()),
		slog.String("file", fetcher.Path()),
	)

	return l.LoadBytes(data, fetcher.Dir())
}

// LoadBytes loads a document held in memory. Extern files resolve against baseDir.
// Empty or blank data loads defaults.
func (l *Loader[S]) LoadBytes(data []byte, baseDir string) (S, error) {
	doc, err := l.parse(data)
	if err != nil {
		var zero S

		return zero, err
	}

	report := &Report{}
	lc := LoadContext{
		BaseDir: baseDir,
		Path:    nil,
		env: &environment{
			resolver: l.opts.resolver,
			logger:   l.opts.logger,
			report:   report,
		},
	}

	value, err := l.schema.FromNode(lc, doc)
	if err != nil {
		lc.record(err)

		value = l.schema.Default()
	}

	if l.opts.report != nil {
		l.opts.report.issues = append(l.opts.report.issues, report.issues...)
	}

	problems := report.Problems()
	if len(problems) > 0 {
		l.opts.logger.Info("defaults applied",
			slog.String("schema", l.schema.Name()),
			slog.Int("fields", len(problems)),
		)
	}

	if l.opts.strict {
		strictErr := report.Err()
		if strictErr != nil {
			return value, fmt.Errorf("%w: %w", ErrStrict, strictErr)
		}
	}

	return value, nil
}

func (l *Loader[S]) parse(data []byte) (*node.Node, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	doc, err := l.opts.parser.Parse(data, l.opts.section)
	if err != nil {
		if errors.Is(err, yamlparser.ErrPathNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	return doc, nil
}

// Marshal renders value as one consolidated document. Fields that were loaded from
// extern files are written inline.
func (l *Loader[S]) Marshal(value S) ([]byte, error) {
	data, err := l.opts.renderer.Render(l.schema.ToNode(value))
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", l.schema.Name(), err)
	}

	return data, nil
}

// Write replaces the file at path with the consolidated document for value.
func (l *Loader[S]) Write(path string, value S) error {
	data, err := l.Marshal(value)
	if err != nil {
		return err
	}

	return file.Write(path, data)
}
