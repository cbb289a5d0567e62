package node

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// ErrUnsupportedValue is returned when a Go value has no document representation.
var ErrUnsupportedValue = errors.New("unsupported value")

// FromValue builds a tree from plain Go values: nil, strings, booleans, integers,
// floats, []any, map[string]any and map[any]any. Keys of Go maps are sorted since
// their iteration order is random.
func FromValue(value any) (*Node, error) {
	switch v := value.(type) {
	case *Node:
		return v, nil
	case []any:
		items := make([]*Node, 0, len(v))

		for i, item := range v {
			child, err := FromValue(item)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}

			items = append(items, child)
		}

		return Sequence(items...), nil
	case map[string]any:
		return fromMap(v, func(k string) string { return k })
	case map[any]any:
		return fromMap(v, func(k any) string { return fmt.Sprint(k) })
	default:
		return ScalarOf(value)
	}
}

// ScalarOf wraps a Go scalar, normalizing numbers to int64, uint64 or float64.
func ScalarOf(value any) (*Node, error) {
	switch v := value.(type) {
	case nil:
		return Null(), nil
	case string:
		return String(v), nil
	case bool:
		return Bool(v), nil
	case int:
		return Int(int64(v)), nil
	case int8:
		return Int(int64(v)), nil
	case int16:
		return Int(int64(v)), nil
	case int32:
		return Int(int64(v)), nil
	case int64:
		return Int(v), nil
	case uint:
		return Uint(uint64(v)), nil
	case uint8:
		return Uint(uint64(v)), nil
	case uint16:
		return Uint(uint64(v)), nil
	case uint32:
		return Uint(uint64(v)), nil
	case uint64:
		return Uint(v), nil
	case float32:
		return Float(float64(v)), nil
	case float64:
		return Float(v), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, value)
	}
}

// Value converts the tree back to plain Go values. Mappings become map[string]any,
// so use Pairs when order matters.
func (n *Node) Value() any {
	switch n.Kind() {
	case KindScalar:
		return n.scalar
	case KindSequence:
		out := make([]any, len(n.items))
		for i, item := range n.items {
			out[i] = item.Value()
		}

		return out
	case KindMapping:
		out := make(map[string]any, len(n.pairs))
		for _, pair := range n.pairs {
			out[pair.Key] = pair.Value.Value()
		}

		return out
	default:
		return nil
	}
}

func fromMap[K comparable](m map[K]any, keyOf func(K) string) (*Node, error) {
	pairs := make([]Pair, 0, len(m))

	for k, item := range m {
		child, err := FromValue(item)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", keyOf(k), err)
		}

		pairs = append(pairs, Pair{Key: keyOf(k), Value: child})
	}

	slices.SortFunc(pairs, func(a, b Pair) int { return cmp.Compare(a.Key, b.Key) })

	return Mapping(pairs...), nil
}
