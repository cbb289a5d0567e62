// Package yaml provides the YAML parser and renderer for the config package.
//
// This package uses github.com/goccy/go-yaml with ordered maps, so the produced
// node.Node trees keep mapping keys in document order and rendering writes them
// back in the same order. Path navigation uses goccy PathString; colon-separated
// paths (e.g., "api:permissions") are converted to YAML path format
// (e.g., "$.api.permissions") internally.
//
// Usage:
//
//	parser := yaml.NewParser()
//	doc, err := parser.Parse(data, "api:permissions")
//	out, err := parser.Render(doc)
//
// Path Conversion:
//   - Empty path "" -> entire document
//   - Single key "key" -> "$.key"
//   - Nested path "api:permissions" -> "$.api.permissions"
package yaml
