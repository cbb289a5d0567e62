package config

import (
	"fmt"
	"strings"

	"github.com/0xalexb/hjarta-config/config/node"
)

// Variant pairs an enumeration value with the name it has in documents.
type Variant[E comparable] struct {
	Name  string
	Value E
}

// Case is shorthand for a Variant literal.
func Case[E comparable](name string, value E) Variant[E] {
	return Variant[E]{Name: name, Value: value}
}

// EnumCodec converts a closed set of values to and from their names.
type EnumCodec[E comparable] struct {
	variants []Variant[E]
}

// Enum returns the codec for the given variants. Names match case-sensitively.
// It panics on empty or duplicate names and on duplicate values.
func Enum[E comparable](variants ...Variant[E]) *EnumCodec[E] {
	names := make(map[string]struct{}, len(variants))
	values := make(map[E]struct{}, len(variants))

	for _, variant := range variants {
		if variant.Name == "" {
			panic("config: Enum: empty variant name")
		}

		if _, dup := names[variant.Name]; dup {
			panic(fmt.Sprintf("config: Enum: duplicate variant name %q", variant.Name))
		}

		if _, dup := values[variant.Value]; dup {
			panic(fmt.Sprintf("config: Enum: duplicate value for variant %q", variant.Name))
		}

		names[variant.Name] = struct{}{}
		values[variant.Value] = struct{}{}
	}

	return &EnumCodec[E]{variants: variants}
}

// Names returns the variant names in declaration order.
func (c *EnumCodec[E]) Names() []string {
	out := make([]string, len(c.variants))
	for i, variant := range c.variants {
		out[i] = variant.Name
	}

	return out
}

// Name returns the document name of value.
func (c *EnumCodec[E]) Name(value E) (string, bool) {
	for _, variant := range c.variants {
		if variant.Value == value {
			return variant.Name, true
		}
	}

	return "", false
}

// Parse returns the value named name.
func (c *EnumCodec[E]) Parse(name string) (E, bool) {
	for _, variant := range c.variants {
		if variant.Name == name {
			return variant.Value, true
		}
	}

	var zero E

	return zero, false
}

// FromNode implements Codec.
func (c *EnumCodec[E]) FromNode(lc LoadContext, n *node.Node) (E, error) {
	var zero E

	if n == nil {
		return zero, missing(lc)
	}

	name, ok := n.AsString()
	if !ok {
		return zero, mismatch(lc, n, "string")
	}

	value, ok := c.Parse(name)
	if !ok {
		return zero, NewConversionError(lc, KindTypeMismatch,
			fmt.Errorf("unknown variant %q, want one of %s", name, strings.Join(c.Names(), ", ")))
	}

	return value, nil
}

// ToNode implements Codec. Values outside the declared set render with fmt.
func (c *EnumCodec[E]) ToNode(value E) *node.Node {
	if name, ok := c.Name(value); ok {
		return node.String(name)
	}

	return node.String(fmt.Sprint(value))
}
