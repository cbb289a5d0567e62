package node

import (
	"fmt"
	"math"
	"slices"
)

// ExternMarker is the scalar value that redirects a mapping entry to a separate file.
const ExternMarker = "extern"

// Kind identifies the shape of a Node.
type Kind int

const (
	KindScalar Kind = iota + 1
	KindSequence
	KindMapping
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Pair is a single mapping entry.
type Pair struct {
	Key   string
	Value *Node
}

// Node is an immutable document tree value.
//
// Scalars hold one of string, int64, uint64, float64, bool or nil (null).
// Mapping keys are unique and keep their document order.
// A nil *Node stands for an absent value and is safe to call methods on.
type Node struct {
	kind   Kind
	scalar any
	items  []*Node
	pairs  []Pair
}

// String returns a string scalar.
func String(s string) *Node {
	return &Node{kind: KindScalar, scalar: s}
}

// Int returns a signed integer scalar.
func Int(i int64) *Node {
	return &Node{kind: KindScalar, scalar: i}
}

// Uint returns an unsigned integer scalar.
func Uint(u uint64) *Node {
	return &Node{kind: KindScalar, scalar: u}
}

// Float returns a floating point scalar.
func Float(f float64) *Node {
	return &Node{kind: KindScalar, scalar: f}
}

// Bool returns a boolean scalar.
func Bool(b bool) *Node {
	return &Node{kind: KindScalar, scalar: b}
}

// Null returns the null scalar.
func Null() *Node {
	return &Node{kind: KindScalar, scalar: nil}
}

// Sequence returns a sequence of the given items. Nil items are stored as null scalars.
func Sequence(items ...*Node) *Node {
	out := make([]*Node, len(items))

	for i, item := range items {
		if item == nil {
			item = Null()
		}

		out[i] = item
	}

	return &Node{kind: KindSequence, items: out}
}

// Mapping returns a mapping of the given pairs.
// A repeated key replaces the earlier value in place, so keys stay unique.
func Mapping(pairs ...Pair) *Node {
	out := make([]Pair, 0, len(pairs))
	index := make(map[string]int, len(pairs))

	for _, pair := range pairs {
		value := pair.Value
		if value == nil {
			value = Null()
		}

		if i, seen := index[pair.Key]; seen {
			out[i].Value = value

			continue
		}

		index[pair.Key] = len(out)
		out = append(out, Pair{Key: pair.Key, Value: value})
	}

	return &Node{kind: KindMapping, pairs: out}
}

// Kind returns the node kind, or zero for an absent node.
func (n *Node) Kind() Kind {
	if n == nil {
		return 0
	}

	return n.kind
}

// Scalar returns the raw scalar value. ok is false when n is not a scalar.
func (n *Node) Scalar() (value any, ok bool) {
	if n.Kind() != KindScalar {
		return nil, false
	}

	return n.scalar, true
}

// IsNull reports whether n is the null scalar.
func (n *Node) IsNull() bool {
	return n.Kind() == KindScalar && n.scalar == nil
}

// AsString returns the value of a string scalar.
func (n *Node) AsString() (string, bool) {
	s, ok := n.rawScalar().(string)

	return s, ok
}

// AsBool returns the value of a boolean scalar.
func (n *Node) AsBool() (bool, bool) {
	b, ok := n.rawScalar().(bool)

	return b, ok
}

// AsInt64 returns the value of an integer scalar that fits into int64.
func (n *Node) AsInt64() (int64, bool) {
	switch v := n.rawScalar().(type) {
	case int64:
		return v, true
	case uint64:
		if v > math.MaxInt64 {
			return 0, false
		}

		return int64(v), true
	default:
		return 0, false
	}
}

// AsUint64 returns the value of a non-negative integer scalar.
func (n *Node) AsUint64() (uint64, bool) {
	switch v := n.rawScalar().(type) {
	case uint64:
		return v, true
	case int64:
		if v < 0 {
			return 0, false
		}

		return uint64(v), true
	default:
		return 0, false
	}
}

// AsFloat64 returns the value of a numeric scalar. Integers are widened.
func (n *Node) AsFloat64() (float64, bool) {
	switch v := n.rawScalar().(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}

// IsExtern reports whether n is the extern indirection marker.
func (n *Node) IsExtern() bool {
	s, ok := n.AsString()

	return ok && s == ExternMarker
}

// Len returns the number of sequence items or mapping pairs.
func (n *Node) Len() int {
	switch n.Kind() {
	case KindSequence:
		return len(n.items)
	case KindMapping:
		return len(n.pairs)
	default:
		return 0
	}
}

// Items returns a copy of the sequence items.
func (n *Node) Items() []*Node {
	if n.Kind() != KindSequence {
		return nil
	}

	return slices.Clone(n.items)
}

// Pairs returns a copy of the mapping entries in document order.
func (n *Node) Pairs() []Pair {
	if n.Kind() != KindMapping {
		return nil
	}

	return slices.Clone(n.pairs)
}

// Get returns the mapping value stored under key, or nil when the key is missing
// or n is not a mapping.
func (n *Node) Get(key string) *Node {
	if n.Kind() != KindMapping {
		return nil
	}

	for _, pair := range n.pairs {
		if pair.Key == key {
			return pair.Value
		}
	}

	return nil
}

// Equal reports whether both trees hold the same values.
// Integers compare by value regardless of signedness.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == nil && other == nil
	}

	if n.kind != other.kind {
		return false
	}

	switch n.kind {
	case KindSequence:
		return slices.EqualFunc(n.items, other.items, (*Node).Equal)
	case KindMapping:
		return slices.EqualFunc(n.pairs, other.pairs, func(a, b Pair) bool {
			return a.Key == b.Key && a.Value.Equal(b.Value)
		})
	default:
		return scalarEqual(n.scalar, other.scalar)
	}
}

// String renders a short debugging form of the node.
func (n *Node) String() string {
	if n == nil {
		return "<absent>"
	}

	return fmt.Sprintf("%v", n.Value())
}

func (n *Node) rawScalar() any {
	if n.Kind() != KindScalar {
		return nil
	}

	return n.scalar
}

func scalarEqual(a, b any) bool {
	if ai, ok := asInteger(a); ok {
		bi, ok := asInteger(b)

		return ok && ai == bi
	}

	return a == b
}

type integer struct {
	negative bool
	abs      uint64
}

func asInteger(v any) (integer, bool) {
	switch x := v.(type) {
	case int64:
		if x < 0 {
			return integer{negative: true, abs: uint64(-(x + 1)) + 1}, true
		}

		return integer{abs: uint64(x)}, true
	case uint64:
		return integer{abs: x}, true
	default:
		return integer{}, false
	}
}
