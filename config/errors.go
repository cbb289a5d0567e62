package config

import (
	"errors"
	"fmt"

	"github.com/0xalexb/hjarta-config/config/node"
)

// ErrorKind classifies why a field could not be converted.
type ErrorKind int

const (
	KindTypeMismatch ErrorKind = iota + 1
	KindMissingField
	KindExternNotFound
	KindMalformed
	KindIO
)

var (
	// ErrTypeMismatch is matched by conversion errors for values of the wrong shape or type.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrMissingField is matched by conversion errors for absent values.
	ErrMissingField = errors.New("missing field")
	// ErrExternNotFound is matched when no extern file exists for a field marked extern.
	ErrExternNotFound = errors.New("extern file not found")
	// ErrMalformed is matched by conversion errors for values with the right type but unusable content.
	ErrMalformed = errors.New("malformed value")
	// ErrIO is matched by conversion errors caused by failing file access during extern resolution.
	ErrIO = errors.New("i/o failure")

	// ErrParse is returned by a load when the root document cannot be parsed.
	ErrParse = errors.New("parsing error")
	// ErrStrict is returned by a strict load when any field fell back to its default for a reason
	// other than being absent.
	ErrStrict = errors.New("fields defaulted")
)

// String returns the name of the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindTypeMismatch:
		return "TypeMismatch"
	case KindMissingField:
		return "MissingField"
	case KindExternNotFound:
		return "ExternNotFound"
	case KindMalformed:
		return "Malformed"
	case KindIO:
		return "Io"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindTypeMismatch:
		return ErrTypeMismatch
	case KindMissingField:
		return ErrMissingField
	case KindExternNotFound:
		return ErrExternNotFound
	case KindIO:
		return ErrIO
	default:
		return ErrMalformed
	}
}

// ConversionError describes a field-level failure. The schema engine recovers from it by
// using the field default; it only reaches callers through a Report or a strict load.
type ConversionError struct {
	Kind ErrorKind
	// Path is the dotted field path, empty for the document root.
	Path string
	Err  error
}

// NewConversionError returns a conversion error for the field lc points at.
func NewConversionError(lc LoadContext, kind ErrorKind, err error) *ConversionError {
	return &ConversionError{
		Kind: kind,
		Path: lc.String(),
		Err:  err,
	}
}

func (e *ConversionError) Error() string {
	path := e.Path
	if path == "" {
		path = "(root)"
	}

	if e.Err == nil {
		return fmt.Sprintf("%s: %v", path, e.Kind.sentinel())
	}

	return fmt.Sprintf("%s: %v: %v", path, e.Kind.sentinel(), e.Err)
}

// Unwrap exposes the kind sentinel and the cause to errors.Is and errors.As.
func (e *ConversionError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind.sentinel()}
	}

	return []error{e.Kind.sentinel(), e.Err}
}

func missing(lc LoadContext) error {
	return NewConversionError(lc, KindMissingField, nil)
}

func mismatch(lc LoadContext, n *node.Node, want string) error {
	return NewConversionError(lc, KindTypeMismatch, fmt.Errorf("expected %s, got %s", want, describe(n)))
}

func malformed(lc LoadContext, format string, args ...any) error {
	return NewConversionError(lc, KindMalformed, fmt.Errorf(format, args...))
}

func describe(n *node.Node) string {
	value, ok := n.Scalar()
	if !ok {
		return n.Kind().String()
	}

	switch value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "bool"
	case float64:
		return "float"
	default:
		return "integer"
	}
}
