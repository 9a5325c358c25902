// Package bitvec provides fixed-width bit vectors and binary relations
// built on Roaring Bitmaps.
//
// A Vector is a set of indices drawn from a fixed universe [0, width).
// All Vector operations are pure: operands are never mutated and results
// are fresh values, so Vectors can be shared freely across goroutines
// once constructed.
//
// A Relation is an immutable rows × cols boolean matrix stored twice: as
// one Vector per row and, transposed, as one Vector per column. The
// derivation operators PrimeRows and PrimeCols intersect the vectors
// selected by an index set; their compositions (DoublePrimeRows,
// DoublePrimeCols) are closure operators.
//
// Width mismatches between operands are programming errors and panic
// with ErrWidthMismatch rather than silently truncating or padding.
package bitvec
