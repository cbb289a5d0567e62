// Package config loads strongly typed configuration from YAML documents using
// declared schemas, falling back to declared defaults field by field.
//
// A schema is an ordered list of fields, each with a name, a Codec for its type
// and a default factory:
//
//	type DisplayConfig struct {
//	    Brightness float64
//	    Fullscreen bool
//	    Size       [2]uint16
//	}
//
//	var DisplaySchema = config.Define("display",
//	    config.Bind("brightness", config.Float[float64](), config.Literal(1.0),
//	        func(c *DisplayConfig) *float64 { return &c.Brightness }),
//	    config.Bind("fullscreen", config.Bool(), config.Literal(false),
//	        func(c *DisplayConfig) *bool { return &c.Fullscreen }),
//	    config.Bind("size", config.Array[[2]uint16](config.Uint[uint16]()), config.Literal([2]uint16{1024, 768}),
//	        func(c *DisplayConfig) *[2]uint16 { return &c.Size }),
//	)
//
// A *Schema is itself a Codec, so Nested places one schema inside another.
//
// # Loading
//
// For every field, in declaration order, the loader looks up the key in the
// current mapping, converts it, and on any failure (absent key, wrong type, wrong
// array length, unknown enum name) keeps the field default. A bad field never fails
// the load; only an unreadable or unparsable root document does.
//
//	cfg, err := config.NewLoader(DisplaySchema).Load("config.yml")
//
// Pass WithReport to learn which fields were defaulted, or WithStrict to turn
// conversion problems into an error.
//
// # Extern files
//
// A field whose value is the string "extern" is loaded from another file. For a
// field named display the loader tries, in order:
//
//	<dir>/display/config.yml
//	<dir>/display/config.yaml
//	<dir>/display.yml
//	<dir>/display.yaml
//
// where <dir> is the directory of the document holding the marker. Lookups inside
// the loaded file are relative to its own directory. When no file exists, the field
// is treated as absent.
//
// Writing always produces one consolidated document; extern files are not re-split.
//
// # Path Navigation
//
// WithSection and Provider accept a colon separated path selecting a section of the
// document:
//
//	"api:permissions"           -> config["api"]["permissions"]
//	""                          -> entire document
package config
