package config

import (
	"fmt"

	"github.com/0xalexb/hjarta-config/config/node"
)

// Parser defines an interface for parsing configuration data into a document tree.
//
// The path parameter specifies a navigation path within the configuration data
// using colon (:) as the separator for nested keys. For example:
//   - "api:permissions" navigates to config["api"]["permissions"]
//   - "database:connection:timeout" navigates three levels deep
//   - "" (empty path) means parse the entire document
//
// Parser implementations are responsible for path navigation internally.
// See config/parser/yaml for an example using goccy/go-yaml PathString.
type Parser interface {
	Parse(data []byte, path string) (*node.Node, error)
}

// Renderer defines an interface for serializing a document tree.
type Renderer interface {
	Render(doc *node.Node) ([]byte, error)
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Locator is implemented by fetchers that know where their data lives.
// Extern files resolve relative to Dir.
type Locator interface {
	Dir() string
}

// Provider returns a function that reads and parses configuration data, then builds
// the schema value with per-field defaults. The shape fits fx.Provide.
func Provider[S any](schema *Schema[S], path string) func(Parser, DataFetcher) (*S, error) {
	return func(parser Parser, dataSourcer DataFetcher) (*S, error) {
		data, err := dataSourcer.Fetch()
		if err != nil {
			return nil, fmt.Errorf("reading data error: %w", err)
		}

		baseDir := "."
		if locator, ok := dataSourcer.(Locator); ok {
			baseDir = locator.Dir()
		}

		loader := NewLoader(schema, WithParser(parser), WithSection(path))

		value, err := loader.LoadBytes(data, baseDir)
		if err != nil {
			return nil, err
		}

		return &value, nil
	}
}
