package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/0xalexb/hjarta-config/config"
	"github.com/0xalexb/hjarta-config/config/node"
	yamlparser "github.com/0xalexb/hjarta-config/config/parser/yaml"

	"github.com/stretchr/testify/require"
)

type Mode int

const (
	ModeWindowed Mode = iota
	ModeBorderless
	ModeExclusive
)

var modeCodec = config.Enum(
	config.Case("Windowed", ModeWindowed),
	config.Case("Borderless", ModeBorderless),
	config.Case("Exclusive", ModeExclusive),
)

type displayConfig struct {
	Brightness float64
	Fullscreen bool
	Size       [2]uint16
	Mode       Mode
}

var displaySchema = config.Define("display",
	config.Bind("brightness", config.Float[float64](), config.Literal(1.0),
		func(c *displayConfig) *float64 { return &c.Brightness }),
	config.Bind("fullscreen", config.Bool(), config.Literal(false),
		func(c *displayConfig) *bool { return &c.Fullscreen }),
	config.Bind("size", config.Array[[2]uint16](config.Uint[uint16]()), config.Literal([2]uint16{1024, 768}),
		func(c *displayConfig) *[2]uint16 { return &c.Size }),
	config.Bind("mode", modeCodec, config.Literal(ModeBorderless),
		func(c *displayConfig) *Mode { return &c.Mode }),
)

type innerInnerConfig struct {
	Field uint64
}

var innerInnerSchema = config.Define("inner_inner",
	config.Bind("field", config.Uint[uint64](), config.Literal[uint64](58123),
		func(c *innerInnerConfig) *uint64 { return &c.Field }),
)

type innerConfig struct {
	InnerInner innerInnerConfig
	Tags       []string
}

var innerSchema = config.Define("inner",
	config.Nested("inner_inner", innerInnerSchema,
		func(c *innerConfig) *innerInnerConfig { return &c.InnerInner }),
	config.Bind("tags", config.List(config.String()), func() []string { return []string{"alpha", "beta"} },
		func(c *innerConfig) *[]string { return &c.Tags }),
)

type rootConfig struct {
	Title   string
	Display displayConfig
	Inner   innerConfig
	Retries int32
	Timeout time.Duration
	Cache   uint64
}

var rootSchema = config.Define("root",
	config.Bind("title", config.String(), config.Literal("Amethyst game"),
		func(c *rootConfig) *string { return &c.Title }),
	config.Nested("display", displaySchema,
		func(c *rootConfig) *displayConfig { return &c.Display }),
	config.Nested("inner", innerSchema,
		func(c *rootConfig) *innerConfig { return &c.Inner }),
	config.Bind("retries", config.Int[int32](), config.Literal[int32](3),
		func(c *rootConfig) *int32 { return &c.Retries }),
	config.Bind("timeout", config.Duration(), config.Literal(30*time.Second),
		func(c *rootConfig) *time.Duration { return &c.Timeout }),
	config.Bind("cache", config.ByteSize(), config.Literal[uint64](10_000_000),
		func(c *rootConfig) *uint64 { return &c.Cache }),
)

func parseDoc(t *testing.T, text string) *node.Node {
	t.Helper()

	doc, err := yamlparser.NewParser().Parse([]byte(text), "")
	require.NoError(t, err)

	return doc
}

func writeFile(t *testing.T, dir, rel, content string) string {
	t.Helper()

	path := filepath.Join(dir, rel)

	err := os.MkdirAll(filepath.Dir(path), 0o750)
	require.NoError(t, err)

	err = os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, err)

	return path
}

func loadFromText(t *testing.T, text string, opts ...config.LoaderOption) (rootConfig, *config.Report) {
	t.Helper()

	report := &config.Report{}
	opts = append(opts, config.WithReport(report))

	cfg, err := config.NewLoader(rootSchema, opts...).LoadBytes([]byte(text), t.TempDir())
	require.NoError(t, err)

	return cfg, report
}
