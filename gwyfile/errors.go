// Package gwyfile provides a pure Go implementation for reading and writing
// Gwyddion GWY files: the container object graph, typed item access, and
// codecs for the scientific entities stored inside (data fields, selections,
// graphs, channels).
package gwyfile

import "github.com/cockroachdb/errors"

// Error kinds. Errors returned by this package wrap one of these sentinels;
// use errors.Is to classify a failure.
var (
	// ErrNotFound indicates a required key or file is absent: a channel
	// without its data field, a graph model without ncurves, a load of a
	// path that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrFormat indicates the store rejected structural validation of an
	// object. The wrapping message preserves the underlying diagnostic
	// verbatim.
	ErrFormat = errors.New("malformed gwy object")

	// ErrValidation indicates a domain invariant is violated: a data field
	// whose buffer does not match its resolution, a graph model whose curve
	// count disagrees with ncurves.
	ErrValidation = errors.New("invariant violated")

	// ErrWrongType indicates a value of the wrong type was supplied for a
	// typed field, or a typed get found an item of a different wire type.
	ErrWrongType = errors.New("wrong value type")
)

// notFoundf builds an ErrNotFound-marked error.
func notFoundf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrNotFound)
}

// formatf builds an ErrFormat-marked error.
func formatf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrFormat)
}

// formatWrap marks err as ErrFormat, preserving its message verbatim.
func formatWrap(err error) error {
	return errors.Mark(err, ErrFormat)
}

// validationf builds an ErrValidation-marked error.
func validationf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrValidation)
}

// wrongTypef builds an ErrWrongType-marked error.
func wrongTypef(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrWrongType)
}

// wrapCurve annotates a curve codec error with the curve's position in the
// model's curves array.
func wrapCurve(err error, index int) error {
	return errors.Wrapf(err, "curve %d", index)
}
