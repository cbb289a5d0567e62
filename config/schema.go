package config

import (
	"fmt"

	"github.com/0xalexb/hjarta-config/config/node"
)

// Field is one named, typed, defaulted entry of a Schema over S. Build fields with
// Bind or Nested.
type Field[S any] interface {
	Name() string

	reset(dst *S)
	load(lc LoadContext, doc *node.Node, dst *S)
	encode(src *S) *node.Node
}

type binding[S, T any] struct {
	name  string
	codec Codec[T]
	def   func() T
	ref   func(*S) *T
}

// Bind declares the field name, converted by codec, defaulting to def(), and stored
// in the struct member ref points at.
//
//	config.Bind("brightness", config.Float[float64](), config.Literal(1.0),
//	    func(c *DisplayConfig) *float64 { return &c.Brightness })
func Bind[S, T any](name string, codec Codec[T], def func() T, ref func(*S) *T) Field[S] {
	if name == "" {
		panic("config: Bind: empty field name")
	}

	if codec == nil || def == nil || ref == nil {
		panic(fmt.Sprintf("config: Bind: field %q needs a codec, a default and a reference", name))
	}

	return &binding[S, T]{name: name, codec: codec, def: def, ref: ref}
}

// Nested declares a field holding another schema, defaulting to that schema's defaults.
func Nested[S, T any](name string, schema *Schema[T], ref func(*S) *T) Field[S] {
	return Bind[S, T](name, schema, schema.Default, ref)
}

func (b *binding[S, T]) Name() string {
	return b.name
}

func (b *binding[S, T]) reset(dst *S) {
	*b.ref(dst) = b.def()
}

// load converts the entry of doc named after the field, following an extern marker
// first. Any conversion failure leaves the field at its default.
func (b *binding[S, T]) load(lc LoadContext, doc *node.Node, dst *S) {
	child := doc.Get(b.name)
	childCtx := lc.Child(b.name)
	externFailed := false

	if child.IsExtern() {
		resolved, dir, err := lc.resolve(b.name)
		if err != nil {
			childCtx.record(err)

			child = nil
			externFailed = true
		} else {
			child = resolved
			childCtx = childCtx.WithBaseDir(dir)
		}
	}

	value, err := b.codec.FromNode(childCtx, child)
	if err != nil {
		if !externFailed {
			childCtx.record(err)
		}

		value = b.def()
	}

	*b.ref(dst) = value
}

func (b *binding[S, T]) encode(src *S) *node.Node {
	return b.codec.ToNode(*b.ref(src))
}

// Schema is an ordered list of fields describing the compound type S. A Schema is a
// Codec[S], so schemas nest. Members of S that no field references keep their zero value.
type Schema[S any] struct {
	name   string
	fields []Field[S]
}

// Define declares a schema. It panics on duplicate field names.
func Define[S any](name string, fields ...Field[S]) *Schema[S] {
	seen := make(map[string]struct{}, len(fields))

	for _, field := range fields {
		if _, dup := seen[field.Name()]; dup {
			panic(fmt.Sprintf("config: Define %s: duplicate field %q", name, field.Name()))
		}

		seen[field.Name()] = struct{}{}
	}

	return &Schema[S]{name: name, fields: fields}
}

// Name returns the schema name used in logs.
func (s *Schema[S]) Name() string {
	return s.name
}

// Fields returns the field names in declaration order.
func (s *Schema[S]) Fields() []string {
	out := make([]string, len(s.fields))
	for i, field := range s.fields {
		out[i] = field.Name()
	}

	return out
}

// Default returns a value with every field at its declared default.
func (s *Schema[S]) Default() S {
	var out S

	for _, field := range s.fields {
		field.reset(&out)
	}

	return out
}

// FromNode builds S from a mapping. An absent node yields Default; any other
// non-mapping node is a type mismatch. Individual fields never fail the result.
func (s *Schema[S]) FromNode(lc LoadContext, n *node.Node) (S, error) {
	if n == nil {
		return s.Default(), nil
	}

	if n.Kind() != node.KindMapping {
		var zero S

		return zero, mismatch(lc, n, "mapping")
	}

	var out S

	for _, field := range s.fields {
		field.load(lc, n, &out)
	}

	return out, nil
}

// ToNode renders value as a mapping in field declaration order.
func (s *Schema[S]) ToNode(value S) *node.Node {
	pairs := make([]node.Pair, 0, len(s.fields))

	for _, field := range s.fields {
		pairs = append(pairs, node.Pair{Key: field.Name(), Value: field.encode(&value)})
	}

	return node.Mapping(pairs...)
}
