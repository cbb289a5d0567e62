// Package appconfig declares the configuration tree loaded by the hjarta-config tool.
package appconfig

import (
	"fmt"

	"github.com/0xalexb/hjarta-config/config"
	"github.com/0xalexb/hjarta-config/logging"
)

// Variant is a closed set of options selectable by name.
type Variant int

const (
	Option1 Variant = iota
	Option2
	Option3
)

// VariantCodec converts Variant values to and from their names.
var VariantCodec = config.Enum(
	config.Case("Option1", Option1),
	config.Case("Option2", Option2),
	config.Case("Option3", Option3),
)

func (v Variant) String() string {
	name, ok := VariantCodec.Name(v)
	if !ok {
		return fmt.Sprintf("Variant(%d)", int(v))
	}

	return name
}

type DisplayConfig struct {
	Brightness float64
	Fullscreen bool
	Size       [2]uint16
}

var DisplaySchema = config.Define("display",
	config.Bind("brightness", config.Float[float64](), config.Literal(1.0),
		func(c *DisplayConfig) *float64 { return &c.Brightness }),
	config.Bind("fullscreen", config.Bool(), config.Literal(false),
		func(c *DisplayConfig) *bool { return &c.Fullscreen }),
	config.Bind("size", config.Array[[2]uint16](config.Uint[uint16]()), config.Literal([2]uint16{1024, 768}),
		func(c *DisplayConfig) *[2]uint16 { return &c.Size }),
)

type InnerInnerConfig struct {
	Field uint64
}

var InnerInnerSchema = config.Define("inner_inner",
	config.Bind("field", config.Uint[uint64](), config.Literal[uint64](58123),
		func(c *InnerInnerConfig) *uint64 { return &c.Field }),
)

type InnerConfig struct {
	InnerInner InnerInnerConfig
}

var InnerSchema = config.Define("inner",
	config.Nested("inner_inner", InnerInnerSchema,
		func(c *InnerConfig) *InnerInnerConfig { return &c.InnerInner }),
)

// Config is the root of the tree.
type Config struct {
	Title      string
	En         Variant
	Display    DisplayConfig
	Logging    logging.LoggerConfig
	Inner      InnerConfig
	InnerInner InnerInnerConfig
}

// Schema is the root schema. Every field is optional and may be moved to an extern file.
var Schema = config.Define("config",
	config.Bind("title", config.String(), config.Literal("Amethyst game"),
		func(c *Config) *string { return &c.Title }),
	config.Bind("en", VariantCodec, config.Literal(Option1),
		func(c *Config) *Variant { return &c.En }),
	config.Nested("display", DisplaySchema,
		func(c *Config) *DisplayConfig { return &c.Display }),
	config.Nested("logging", logging.Schema,
		func(c *Config) *logging.LoggerConfig { return &c.Logging }),
	config.Nested("inner", InnerSchema,
		func(c *Config) *InnerConfig { return &c.Inner }),
	config.Nested("inner_inner", InnerInnerSchema,
		func(c *Config) *InnerInnerConfig { return &c.InnerInner }),
)

// NewLoader returns a loader for Schema.
func NewLoader(opts ...config.LoaderOption) *config.Loader[Config] {
	return config.NewLoader(Schema, opts...)
}
