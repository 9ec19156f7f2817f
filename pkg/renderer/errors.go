package renderer

import "errors"

var (
	// ErrEmptyResult marks a view in which no pixel intersects any surface.
	// The view still renders, as an all-zero image.
	ErrEmptyResult = errors.New("empty result: no surface covers any pixel of the view")

	// ErrDegenerateNormalization marks a view whose maximum sample is zero or
	// not a number. NormalizationEpsilon is used instead, giving a black image.
	ErrDegenerateNormalization = errors.New("degenerate normalization: maximum sample is not positive")
)

// IsRecoverable reports whether err only marks a degenerate but valid render
func IsRecoverable(err error) bool {
	if err == nil {
		return true
	}
	for _, e := range unwrapAll(err) {
		if e != ErrEmptyResult && e != ErrDegenerateNormalization {
			return false
		}
	}
	return true
}

// unwrapAll flattens wrapped and joined errors into their leaves
func unwrapAll(err error) []error {
	switch e := err.(type) {
	case interface{ Unwrap() []error }:
		var leaves []error
		for _, inner := range e.Unwrap() {
			leaves = append(leaves, unwrapAll(inner)...)
		}
		return leaves
	case interface{ Unwrap() error }:
		if inner := e.Unwrap(); inner != nil {
			return unwrapAll(inner)
		}
	}
	return []error{err}
}
