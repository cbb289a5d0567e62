package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/0xalexb/hjarta-config/config/node"

	"github.com/goccy/go-yaml"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrPathNotFound is returned when the specified path is not found in the YAML document.
var ErrPathNotFound = errors.New("path not found")

// Parser implements config.Parser and config.Renderer for YAML documents.
// It uses goccy/go-yaml ordered maps so mapping keys keep their document order.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses YAML data into a document tree.
// The path parameter specifies a navigation path using colon (:) as separator.
// Empty path parses the entire document. A document holding only comments or
// null yields a nil tree.
func (p *Parser) Parse(data []byte, path string) (*node.Node, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	var raw any

	if path == "" {
		err := yaml.UnmarshalWithOptions(data, &raw, yaml.UseOrderedMap())
		if err != nil {
			return nil, fmt.Errorf("unmarshal error: %w", err)
		}

		return toNode(raw)
	}

	yamlPath := convertToYAMLPath(path)

	pathObj, err := yaml.PathString(yamlPath)
	if err != nil {
		return nil, fmt.Errorf("invalid path %q: %w", path, err)
	}

	found, err := pathObj.ReadNode(bytes.NewReader(data))
	if err != nil {
		if isKeyNotFoundError(err) {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		return nil, fmt.Errorf("reading path %q: %w", path, err)
	}

	err = yaml.NodeToValue(found, &raw, yaml.UseOrderedMap())
	if err != nil {
		return nil, fmt.Errorf("decoding path %q: %w", path, err)
	}

	return toNode(raw)
}

// Render serializes a document tree to YAML, keeping mapping order.
// A nil tree renders as an empty mapping.
func (p *Parser) Render(doc *node.Node) ([]byte, error) {
	if doc == nil {
		doc = node.Mapping()
	}

	data, err := yaml.MarshalWithOptions(fromNode(doc), yaml.Indent(2), yaml.IndentSequence(true))
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}

	return data, nil
}

// toNode converts goccy decoded values into a tree. Ordered maps come back as
// yaml.MapSlice. Scalars the tree cannot hold, such as timestamps, are kept as strings.
func toNode(raw any) (*node.Node, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case yaml.MapSlice:
		pairs := make([]node.Pair, 0, len(v))

		for _, item := range v {
			key := fmt.Sprint(item.Key)

			child, err := toNode(item.Value)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", key, err)
			}

			pairs = append(pairs, node.Pair{Key: key, Value: child})
		}

		return node.Mapping(pairs...), nil
	case []any:
		items := make([]*node.Node, 0, len(v))

		for i, item := range v {
			child, err := toNode(item)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}

			items = append(items, child)
		}

		return node.Sequence(items...), nil
	case time.Time:
		return node.String(v.Format(time.RFC3339Nano)), nil
	default:
		scalar, err := node.ScalarOf(raw)
		if errors.Is(err, node.ErrUnsupportedValue) {
			return node.String(fmt.Sprint(raw)), nil
		}

		return scalar, err
	}
}

func fromNode(doc *node.Node) any {
	switch doc.Kind() {
	case node.KindMapping:
		pairs := doc.Pairs()
		out := make(yaml.MapSlice, 0, len(pairs))

		for _, pair := range pairs {
			out = append(out, yaml.MapItem{Key: pair.Key, Value: fromNode(pair.Value)})
		}

		return out
	case node.KindSequence:
		items := doc.Items()
		out := make([]any, 0, len(items))

		for _, item := range items {
			out = append(out, fromNode(item))
		}

		return out
	default:
		value, _ := doc.Scalar()

		return value
	}
}

// convertToYAMLPath converts a colon-separated path to goccy/go-yaml PathString format.
// Examples:
//   - "key" -> "$.key"
//   - "api:permissions" -> "$.api.permissions"
func convertToYAMLPath(path string) string {
	parts := strings.Split(path, ":")

	return "$." + strings.Join(parts, ".")
}

// isKeyNotFoundError checks if the error indicates a key was not found.
func isKeyNotFoundError(err error) bool {
	return yaml.IsNotFoundNodeError(err)
}
