package config

import (
	"github.com/0xalexb/hjarta-config/config/node"
)

// Codec converts values of type T to and from document nodes.
//
// FromNode receives a nil node when the value is absent and should report
// KindMissingField for it, unless absence has a meaning of its own (a Schema
// builds its per-field defaults). ToNode must produce a node FromNode accepts.
type Codec[T any] interface {
	FromNode(lc LoadContext, n *node.Node) (T, error)
	ToNode(value T) *node.Node
}

// Element is implemented by types that convert themselves. Use ElementOf to
// place such a type in a schema.
type Element interface {
	FromNode(lc LoadContext, n *node.Node) error
	ToNode() *node.Node
}

type elementPtr[T any] interface {
	*T
	Element
}

type elementCodec[T any, P elementPtr[T]] struct{}

// ElementOf returns the codec for a type whose pointer implements Element.
//
//	config.ElementOf[Point]()
func ElementOf[T any, P elementPtr[T]]() Codec[T] {
	return elementCodec[T, P]{}
}

func (elementCodec[T, P]) FromNode(lc LoadContext, n *node.Node) (T, error) {
	var value T

	err := P(&value).FromNode(lc, n)
	if err != nil {
		var zero T

		return zero, err
	}

	return value, nil
}

func (elementCodec[T, P]) ToNode(value T) *node.Node {
	return P(&value).ToNode()
}

// Literal returns a default factory yielding value. Values of reference types
// (slices, maps, pointers) are shared between calls; write a factory that
// allocates when loaded configurations must not alias each other.
func Literal[T any](value T) func() T {
	return func() T {
		return value
	}
}
