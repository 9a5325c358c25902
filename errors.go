package concepts

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidContext is matched (via errors.Is) by every context
	// construction failure.
	ErrInvalidContext = errors.New("concepts: invalid context")

	// ErrNotFound is matched (via errors.Is) by every failed lookup:
	// unknown labels, out-of-range concept indices, and queries for
	// concepts a lattice does not contain.
	ErrNotFound = errors.New("concepts: not found")
)

const (
	kindObject   = "object"
	kindProperty = "property"
)

// DuplicateLabelError reports a label occurring more than once within
// one namespace.
//
// It unwraps to ErrInvalidContext.
type DuplicateLabelError struct {
	Kind  string // "object" or "property"
	Label string
}

func (e *DuplicateLabelError) Error() string {
	return fmt.Sprintf("duplicate %s label %q", e.Kind, e.Label)
}

func (e *DuplicateLabelError) Unwrap() error { return ErrInvalidContext }

// LabelOverlapError reports a label declared both as an object and as a
// property. The two namespaces must stay disjoint so that lookups by
// label are unambiguous.
//
// It unwraps to ErrInvalidContext.
type LabelOverlapError struct {
	Label string
}

func (e *LabelOverlapError) Error() string {
	return fmt.Sprintf("label %q declared as both object and property", e.Label)
}

func (e *LabelOverlapError) Unwrap() error { return ErrInvalidContext }

// MatrixShapeError reports an incidence matrix whose shape does not
// match the declared label counts.
//
// It unwraps to ErrInvalidContext and to the underlying shape error.
type MatrixShapeError struct {
	Objects    int
	Properties int
	cause      error
}

func (e *MatrixShapeError) Error() string {
	return fmt.Sprintf("incidence matrix must be %d x %d: %v", e.Objects, e.Properties, e.cause)
}

func (e *MatrixShapeError) Unwrap() []error { return []error{ErrInvalidContext, e.cause} }

// UnknownLabelError reports a lookup by a label the context does not
// declare.
//
// It unwraps to ErrNotFound.
type UnknownLabelError struct {
	Kind  string // "object" or "property"
	Label string
}

func (e *UnknownLabelError) Error() string {
	return fmt.Sprintf("unknown %s label %q", e.Kind, e.Label)
}

func (e *UnknownLabelError) Unwrap() error { return ErrNotFound }

// ConceptIndexError reports a concept index outside the lattice's
// canonical order.
//
// It unwraps to ErrNotFound.
type ConceptIndexError struct {
	Index int
	Len   int
}

func (e *ConceptIndexError) Error() string {
	return fmt.Sprintf("concept index %d out of range [0, %d)", e.Index, e.Len)
}

func (e *ConceptIndexError) Unwrap() error { return ErrNotFound }

// invariant reports a fatal implementation bug: a state the builder and
// lattice guarantee can never be reached from validated input. The panic
// value is a plain string, not an error.
func invariant(format string, args ...any) {
	panic(fmt.Sprintf("concepts: internal invariant violation: "+format, args...))
}
