package config_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/0xalexb/hjarta-config/config"
	"github.com/0xalexb/hjarta-config/config/node"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt_FromNode(t *testing.T) {
	t.Parallel()

	lc := config.NewLoadContext(".").Child("value")

	testCases := []struct {
		name     string
		input    *node.Node
		expected int8
		kind     error
	}{
		{name: "negative", input: node.Int(-5), expected: -5},
		{name: "positive unsigned scalar", input: node.Uint(100), expected: 100},
		{name: "overflow", input: node.Int(300), kind: config.ErrTypeMismatch},
		{name: "float", input: node.Float(1.5), kind: config.ErrTypeMismatch},
		{name: "string", input: node.String("7"), kind: config.ErrTypeMismatch},
		{name: "absent", input: nil, kind: config.ErrMissingField},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			value, err := config.Int[int8]().FromNode(lc, testCase.input)
			if testCase.kind != nil {
				require.ErrorIs(t, err, testCase.kind)
				assert.Contains(t, err.Error(), "value")

				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.expected, value)
		})
	}
}

func TestUint_FromNode(t *testing.T) {
	t.Parallel()

	lc := config.NewLoadContext(".")
	codec := config.Uint[uint16]()

	value, err := codec.FromNode(lc, node.Int(65535))
	require.NoError(t, err)
	assert.Equal(t, uint16(65535), value)

	_, err = codec.FromNode(lc, node.Int(65536))
	require.ErrorIs(t, err, config.ErrTypeMismatch)

	_, err = codec.FromNode(lc, node.Int(-1))
	require.ErrorIs(t, err, config.ErrTypeMismatch)
}

func TestFloat_FromNode_AcceptsIntegers(t *testing.T) {
	t.Parallel()

	lc := config.NewLoadContext(".")

	value, err := config.Float[float32]().FromNode(lc, node.Int(2))
	require.NoError(t, err)
	assert.InDelta(t, 2.0, value, 0.0001)

	_, err = config.Float[float64]().FromNode(lc, node.Bool(true))
	require.ErrorIs(t, err, config.ErrTypeMismatch)
}

func TestBoolAndString_FromNode(t *testing.T) {
	t.Parallel()

	lc := config.NewLoadContext(".")

	flag, err := config.Bool().FromNode(lc, node.Bool(true))
	require.NoError(t, err)
	assert.True(t, flag)

	_, err = config.Bool().FromNode(lc, node.String("yes"))
	require.ErrorIs(t, err, config.ErrTypeMismatch)

	text, err := config.String().FromNode(lc, node.String("hello"))
	require.NoError(t, err)
	assert.Equal(t, "hello", text)

	_, err = config.String().FromNode(lc, node.Int(1))
	require.ErrorIs(t, err, config.ErrTypeMismatch)

	_, err = config.String().FromNode(lc, node.Null())
	require.ErrorIs(t, err, config.ErrTypeMismatch)
	assert.Contains(t, err.Error(), "got null")
}

func TestDuration(t *testing.T) {
	t.Parallel()

	lc := config.NewLoadContext(".")
	codec := config.Duration()

	value, err := codec.FromNode(lc, node.String("2h15m"))
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour+15*time.Minute, value)

	_, err = codec.FromNode(lc, node.String("later"))
	require.ErrorIs(t, err, config.ErrMalformed)

	_, err = codec.FromNode(lc, node.Int(5))
	require.ErrorIs(t, err, config.ErrTypeMismatch)

	text, ok := codec.ToNode(90 * time.Second).AsString()
	require.True(t, ok)
	assert.Equal(t, "1m30s", text)
}

func TestByteSize(t *testing.T) {
	t.Parallel()

	lc := config.NewLoadContext(".")
	codec := config.ByteSize()

	testCases := []struct {
		name     string
		input    *node.Node
		expected uint64
	}{
		{name: "plain integer", input: node.Uint(2048), expected: 2048},
		{name: "decimal units", input: node.String("10 MB"), expected: 10_000_000},
		{name: "binary units", input: node.String("4KiB"), expected: 4096},
		{name: "bare number string", input: node.String("512"), expected: 512},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			value, err := codec.FromNode(lc, testCase.input)
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, value)
		})
	}

	_, err := codec.FromNode(lc, node.String("lots"))
	require.ErrorIs(t, err, config.ErrMalformed)

	_, err = codec.FromNode(lc, node.Int(-1))
	require.ErrorIs(t, err, config.ErrTypeMismatch)
}

func TestByteSize_ToNode(t *testing.T) {
	t.Parallel()

	codec := config.ByteSize()

	text, ok := codec.ToNode(10_000_000).AsString()
	require.True(t, ok)
	assert.Equal(t, "10 MB", text)

	exact, ok := codec.ToNode(1234567).AsUint64()
	require.True(t, ok, "lossy human form falls back to the integer")
	assert.Equal(t, uint64(1234567), exact)
}

func TestList(t *testing.T) {
	t.Parallel()

	lc := config.NewLoadContext(".").Child("ports")
	codec := config.List(config.Uint[uint16]())

	value, err := codec.FromNode(lc, node.Sequence(node.Uint(80), node.Uint(443)))
	require.NoError(t, err)
	assert.Equal(t, []uint16{80, 443}, value)

	value, err = codec.FromNode(lc, node.Sequence())
	require.NoError(t, err)
	assert.Empty(t, value)

	_, err = codec.FromNode(lc, nil)
	require.ErrorIs(t, err, config.ErrMissingField)

	_, err = codec.FromNode(lc, node.Sequence(node.Uint(80), node.String("https")))
	require.ErrorIs(t, err, config.ErrTypeMismatch)

	var convErr *config.ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, "ports.1", convErr.Path)

	_, err = codec.FromNode(lc, node.Mapping())
	require.ErrorIs(t, err, config.ErrTypeMismatch)
}

func TestArray_PanicsOnNonArrayType(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		config.Array[[]uint16](config.Uint[uint16]())
	})
	assert.Panics(t, func() {
		config.Array[[2]int](config.Uint[uint16]())
	})
}

func TestArray_ToNode(t *testing.T) {
	t.Parallel()

	codec := config.Array[[3]string](config.String())

	doc := codec.ToNode([3]string{"a", "b", "c"})

	require.Equal(t, node.KindSequence, doc.Kind())
	assert.True(t, doc.Equal(node.Sequence(node.String("a"), node.String("b"), node.String("c"))))
}

type point struct {
	X, Y int
}

func (p *point) FromNode(lc config.LoadContext, n *node.Node) error {
	text, ok := n.AsString()
	if !ok {
		return config.NewConversionError(lc, config.KindTypeMismatch, errors.New("expected \"x,y\""))
	}

	_, err := fmt.Sscanf(text, "%d,%d", &p.X, &p.Y)
	if err != nil {
		return config.NewConversionError(lc, config.KindMalformed, err)
	}

	return nil
}

func (p *point) ToNode() *node.Node {
	return node.String(fmt.Sprintf("%d,%d", p.X, p.Y))
}

func TestElementOf(t *testing.T) {
	t.Parallel()

	type spawn struct {
		At point
	}

	schema := config.Define("spawn",
		config.Bind("at", config.ElementOf[point](), config.Literal(point{X: 1, Y: 1}),
			func(s *spawn) *point { return &s.At }),
	)

	lc := config.NewLoadContext(".")

	value, err := schema.FromNode(lc, parseDoc(t, "at: \"3,4\"\n"))
	require.NoError(t, err)
	assert.Equal(t, point{X: 3, Y: 4}, value.At)

	value, err = schema.FromNode(lc, parseDoc(t, "at: nowhere\n"))
	require.NoError(t, err)
	assert.Equal(t, point{X: 1, Y: 1}, value.At)

	text, ok := schema.ToNode(spawn{At: point{X: -2, Y: 5}}).Get("at").AsString()
	require.True(t, ok)
	assert.Equal(t, "-2,5", text)
}
