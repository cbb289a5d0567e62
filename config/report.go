package config

import (
	"slices"

	"go.uber.org/multierr"
)

// Report collects the fields that fell back to their defaults during loads.
// It is not safe for concurrent use.
type Report struct {
	issues []*ConversionError
}

func (r *Report) add(err *ConversionError) {
	r.issues = append(r.issues, err)
}

// Issues returns every recorded conversion error in load order.
func (r *Report) Issues() []*ConversionError {
	return slices.Clone(r.issues)
}

// Problems returns the recorded errors except absent fields, which are the normal
// way of asking for a default.
func (r *Report) Problems() []*ConversionError {
	var out []*ConversionError

	for _, issue := range r.issues {
		if issue.Kind != KindMissingField {
			out = append(out, issue)
		}
	}

	return out
}

// Defaulted returns the paths of fields that fell back to a default, in load order.
func (r *Report) Defaulted() []string {
	out := make([]string, 0, len(r.issues))

	for _, issue := range r.issues {
		if !slices.Contains(out, issue.Path) {
			out = append(out, issue.Path)
		}
	}

	return out
}

// Err combines Problems into one error, or returns nil when there are none.
func (r *Report) Err() error {
	var err error

	for _, issue := range r.Problems() {
		err = multierr.Append(err, issue)
	}

	return err
}
