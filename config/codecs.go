package config

import (
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/0xalexb/hjarta-config/config/node"

	"github.com/dustin/go-humanize"
)

// Signed lists the signed integer types accepted by Int.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned lists the unsigned integer types accepted by Uint.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Floating lists the floating point types accepted by Float.
type Floating interface {
	~float32 | ~float64
}

type intCodec[T Signed] struct{}

// Int returns the codec for signed integers. Values that do not fit T are a type mismatch.
func Int[T Signed]() Codec[T] {
	return intCodec[T]{}
}

func (intCodec[T]) FromNode(lc LoadContext, n *node.Node) (T, error) {
	if n == nil {
		return 0, missing(lc)
	}

	raw, ok := n.AsInt64()
	if !ok {
		return 0, mismatch(lc, n, "integer")
	}

	value := T(raw)
	if int64(value) != raw {
		return 0, NewConversionError(lc, KindTypeMismatch, fmt.Errorf("%d overflows %T", raw, value))
	}

	return value, nil
}

func (intCodec[T]) ToNode(value T) *node.Node {
	return node.Int(int64(value))
}

type uintCodec[T Unsigned] struct{}

// Uint returns the codec for unsigned integers. Negative values and values that do
// not fit T are a type mismatch.
func Uint[T Unsigned]() Codec[T] {
	return uintCodec[T]{}
}

func (uintCodec[T]) FromNode(lc LoadContext, n *node.Node) (T, error) {
	if n == nil {
		return 0, missing(lc)
	}

	raw, ok := n.AsUint64()
	if !ok {
		return 0, mismatch(lc, n, "unsigned integer")
	}

	value := T(raw)
	if uint64(value) != raw {
		return 0, NewConversionError(lc, KindTypeMismatch, fmt.Errorf("%d overflows %T", raw, value))
	}

	return value, nil
}

func (uintCodec[T]) ToNode(value T) *node.Node {
	return node.Uint(uint64(value))
}

type floatCodec[T Floating] struct{}

// Float returns the codec for floating point numbers. Integer scalars are accepted.
func Float[T Floating]() Codec[T] {
	return floatCodec[T]{}
}

func (floatCodec[T]) FromNode(lc LoadContext, n *node.Node) (T, error) {
	if n == nil {
		return 0, missing(lc)
	}

	raw, ok := n.AsFloat64()
	if !ok {
		return 0, mismatch(lc, n, "number")
	}

	return T(raw), nil
}

func (floatCodec[T]) ToNode(value T) *node.Node {
	return node.Float(float64(value))
}

type boolCodec struct{}

// Bool returns the codec for booleans.
func Bool() Codec[bool] {
	return boolCodec{}
}

func (boolCodec) FromNode(lc LoadContext, n *node.Node) (bool, error) {
	if n == nil {
		return false, missing(lc)
	}

	value, ok := n.AsBool()
	if !ok {
		return false, mismatch(lc, n, "bool")
	}

	return value, nil
}

func (boolCodec) ToNode(value bool) *node.Node {
	return node.Bool(value)
}

type stringCodec struct{}

// String returns the codec for strings. Only string scalars convert; numbers and
// booleans are a type mismatch.
func String() Codec[string] {
	return stringCodec{}
}

func (stringCodec) FromNode(lc LoadContext, n *node.Node) (string, error) {
	if n == nil {
		return "", missing(lc)
	}

	value, ok := n.AsString()
	if !ok {
		return "", mismatch(lc, n, "string")
	}

	return value, nil
}

func (stringCodec) ToNode(value string) *node.Node {
	return node.String(value)
}

type durationCodec struct{}

// Duration returns the codec for time.Duration written as a Go duration string ("1m30s").
func Duration() Codec[time.Duration] {
	return durationCodec{}
}

func (durationCodec) FromNode(lc LoadContext, n *node.Node) (time.Duration, error) {
	if n == nil {
		return 0, missing(lc)
	}

	raw, ok := n.AsString()
	if !ok {
		return 0, mismatch(lc, n, "duration string")
	}

	value, err := time.ParseDuration(raw)
	if err != nil {
		return 0, NewConversionError(lc, KindMalformed, err)
	}

	return value, nil
}

func (durationCodec) ToNode(value time.Duration) *node.Node {
	return node.String(value.String())
}

type byteSizeCodec struct{}

// ByteSize returns the codec for byte counts. Documents may hold a plain integer or
// a human readable size such as "10 MB" or "4KiB".
func ByteSize() Codec[uint64] {
	return byteSizeCodec{}
}

func (byteSizeCodec) FromNode(lc LoadContext, n *node.Node) (uint64, error) {
	if n == nil {
		return 0, missing(lc)
	}

	if value, ok := n.AsUint64(); ok {
		return value, nil
	}

	raw, ok := n.AsString()
	if !ok {
		return 0, mismatch(lc, n, "byte size")
	}

	value, err := humanize.ParseBytes(raw)
	if err != nil {
		return 0, NewConversionError(lc, KindMalformed, err)
	}

	return value, nil
}

// ToNode writes the human readable form when it parses back to the same count,
// the exact integer otherwise.
func (byteSizeCodec) ToNode(value uint64) *node.Node {
	text := humanize.Bytes(value)

	back, err := humanize.ParseBytes(text)
	if err == nil && back == value {
		return node.String(text)
	}

	return node.Uint(value)
}

type arrayCodec[A, E any] struct {
	elem   Codec[E]
	length int
}

// Array returns the codec for the fixed-size array type A with elements of type E.
// The document sequence must have exactly len(A) items; any element failure fails
// the whole array. It panics if A is not an array of E.
//
//	config.Array[[2]uint16](config.Uint[uint16]())
func Array[A, E any](elem Codec[E]) Codec[A] {
	arrayType := reflect.TypeFor[A]()
	elemType := reflect.TypeFor[E]()

	if arrayType.Kind() != reflect.Array || arrayType.Elem() != elemType {
		panic(fmt.Sprintf("config: Array: %s is not an array of %s", arrayType, elemType))
	}

	return arrayCodec[A, E]{elem: elem, length: arrayType.Len()}
}

func (c arrayCodec[A, E]) FromNode(lc LoadContext, n *node.Node) (A, error) {
	var out A

	if n == nil {
		return out, missing(lc)
	}

	if n.Kind() != node.KindSequence {
		return out, mismatch(lc, n, "sequence")
	}

	if n.Len() != c.length {
		return out, malformed(lc, "expected %d items, got %d", c.length, n.Len())
	}

	target := reflect.ValueOf(&out).Elem()

	for i, item := range n.Items() {
		value, err := c.elem.FromNode(lc.Child(strconv.Itoa(i)), item)
		if err != nil {
			var zero A

			return zero, err
		}

		target.Index(i).Set(reflect.ValueOf(&value).Elem())
	}

	return out, nil
}

func (c arrayCodec[A, E]) ToNode(value A) *node.Node {
	source := reflect.ValueOf(&value).Elem()
	items := make([]*node.Node, c.length)

	for i := range c.length {
		var elem E

		reflect.ValueOf(&elem).Elem().Set(source.Index(i))
		items[i] = c.elem.ToNode(elem)
	}

	return node.Sequence(items...)
}

type listCodec[E any] struct {
	elem Codec[E]
}

// List returns the codec for sequences of any length. Any element failure fails the
// whole list.
func List[E any](elem Codec[E]) Codec[[]E] {
	return listCodec[E]{elem: elem}
}

func (c listCodec[E]) FromNode(lc LoadContext, n *node.Node) ([]E, error) {
	if n == nil {
		return nil, missing(lc)
	}

	if n.Kind() != node.KindSequence {
		return nil, mismatch(lc, n, "sequence")
	}

	out := make([]E, 0, n.Len())

	for i, item := range n.Items() {
		value, err := c.elem.FromNode(lc.Child(strconv.Itoa(i)), item)
		if err != nil {
			return nil, err
		}

		out = append(out, value)
	}

	return out, nil
}

func (c listCodec[E]) ToNode(value []E) *node.Node {
	items := make([]*node.Node, 0, len(value))

	for _, elem := range value {
		items = append(items, c.elem.ToNode(elem))
	}

	return node.Sequence(items...)
}
