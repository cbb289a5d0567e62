package config

import (
	"bytes"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/0xalexb/hjarta-config/config/fetcher/file"
	"github.com/0xalexb/hjarta-config/config/node"
)

// Resolver finds the document for a field marked extern.
//
// Resolve returns the document, which may be nil for an empty file, and the directory
// nested extern lookups resolve against. Errors should be *ConversionError values.
type Resolver interface {
	Resolve(lc LoadContext, name string) (*node.Node, string, error)
}

// ExternFileName is the file looked for inside a directory named after a field.
const ExternFileName = "config"

// ExternExtensions are the recognized document extensions, in lookup order.
var ExternExtensions = []string{".yml", ".yaml"} //nolint:gochecknoglobals // fixed lookup contract

// ExternCandidates lists the files tried for field name below baseDir, in order:
// the field directory form first, then the sibling file form.
func ExternCandidates(baseDir, name string) []string {
	candidates := make([]string, 0, 2*len(ExternExtensions))

	for _, ext := range ExternExtensions {
		candidates = append(candidates, filepath.Join(baseDir, name, ExternFileName+ext))
	}

	for _, ext := range ExternExtensions {
		candidates = append(candidates, filepath.Join(baseDir, name+ext))
	}

	return candidates
}

// FileResolver resolves extern fields from files next to the current document.
type FileResolver struct {
	parser Parser
}

// NewFileResolver returns a resolver parsing extern files with parser.
func NewFileResolver(parser Parser) *FileResolver {
	return &FileResolver{parser: parser}
}

// Resolve implements Resolver. The first existing candidate wins; its directory
// becomes the base for lookups inside the loaded document.
func (r *FileResolver) Resolve(lc LoadContext, name string) (*node.Node, string, error) {
	fieldCtx := lc.Child(name)
	candidates := ExternCandidates(lc.BaseDir, name)

	for _, candidate := range candidates {
		fetcher, err := file.NewFetcher(candidate)()
		if err != nil {
			if file.IsMissing(err) {
				continue
			}

			return nil, "", NewConversionError(fieldCtx, KindIO, err)
		}

		data, err := fetcher.Fetch()
		if err != nil {
			return nil, "", NewConversionError(fieldCtx, KindIO, err)
		}

		lc.Logger().Debug("loading extern file", slog.String("field", fieldCtx.String()), slog.String("file", fetcher.Path()))

		if len(bytes.TrimSpace(data)) == 0 {
			return nil, fetcher.Dir(), nil
		}

		doc, err := r.parser.Parse(data, "")
		if err != nil {
			return nil, "", NewConversionError(fieldCtx, KindMalformed, fmt.Errorf("%s: %w", fetcher.Path(), err))
		}

		return doc, fetcher.Dir(), nil
	}

	return nil, "", NewConversionError(fieldCtx, KindExternNotFound,
		fmt.Errorf("searched %s", strings.Join(candidates, ", ")))
}
