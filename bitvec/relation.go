package bitvec

import (
	"errors"
	"fmt"
)

// ErrShape is returned by NewRelation when the cell matrix does not
// match the declared dimensions.
var ErrShape = errors.New("bitvec: relation shape mismatch")

// Relation is an immutable binary relation between numRows row indices
// and numCols column indices. The incidence is stored twice, row-major
// and column-major, so the prime operators in either direction reduce
// to plain bitmap intersections.
type Relation struct {
	numRows int
	numCols int
	rows    []Vector // rows[i] holds the columns related to row i, width numCols
	cols    []Vector // cols[j] holds the rows related to column j, width numRows
}

// NewRelation builds a relation from a dense cell matrix. cells must
// hold exactly numRows slices of numCols booleans each; dimensions may
// be zero. A mismatch yields an error wrapping ErrShape.
func NewRelation(numRows, numCols int, cells [][]bool) (*Relation, error) {
	if numRows < 0 || numCols < 0 {
		return nil, fmt.Errorf("%w: negative dimensions %dx%d", ErrShape, numRows, numCols)
	}
	if len(cells) != numRows {
		return nil, fmt.Errorf("%w: got %d rows, want %d", ErrShape, len(cells), numRows)
	}

	rows := make([]Vector, numRows)
	colBits := make([][]uint32, numCols)
	for i, row := range cells {
		if len(row) != numCols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrShape, i, len(row), numCols)
		}
		rows[i] = FromBools(row)
		for j, set := range row {
			if set {
				colBits[j] = append(colBits[j], uint32(i))
			}
		}
	}

	cols := make([]Vector, numCols)
	for j, bits := range colBits {
		cols[j] = FromIndices(numRows, bits)
	}

	return &Relation{numRows: numRows, numCols: numCols, rows: rows, cols: cols}, nil
}

// NumRows returns the number of rows.
func (r *Relation) NumRows() int { return r.numRows }

// NumCols returns the number of columns.
func (r *Relation) NumCols() int { return r.numCols }

// Contains reports whether row i is related to column j.
// It panics with ErrIndexRange if either index is out of range.
func (r *Relation) Contains(i, j uint32) bool {
	checkIndex(r.numRows, i)
	checkIndex(r.numCols, j)
	return r.rows[i].Contains(j)
}

// Row returns the set of columns related to row i, width NumCols.
func (r *Relation) Row(i uint32) Vector {
	checkIndex(r.numRows, i)
	return r.rows[i]
}

// Col returns the set of rows related to column j, width NumRows.
func (r *Relation) Col(j uint32) Vector {
	checkIndex(r.numCols, j)
	return r.cols[j]
}

// Bools returns the dense boolean form of the relation, row-major.
func (r *Relation) Bools() [][]bool {
	cells := make([][]bool, r.numRows)
	for i, row := range r.rows {
		cells[i] = row.Bools()
	}
	return cells
}

// Equal reports whether both relations have the same dimensions and
// incidence.
func (r *Relation) Equal(o *Relation) bool {
	if r.numRows != o.numRows || r.numCols != o.numCols {
		return false
	}
	for i, row := range r.rows {
		if !row.Equal(o.rows[i]) {
			return false
		}
	}
	return true
}

// PrimeRows returns the columns common to every row in the given set.
// The empty set maps to the full column universe.
func (r *Relation) PrimeRows(rows Vector) Vector {
	rows.mustWidth(r.numRows)
	vs := make([]Vector, 0, rows.Count())
	for i := range rows.Iterator() {
		vs = append(vs, r.rows[i])
	}
	return Intersect(r.numCols, vs...)
}

// PrimeCols returns the rows common to every column in the given set.
// The empty set maps to the full row universe.
func (r *Relation) PrimeCols(cols Vector) Vector {
	cols.mustWidth(r.numCols)
	vs := make([]Vector, 0, cols.Count())
	for j := range cols.Iterator() {
		vs = append(vs, r.cols[j])
	}
	return Intersect(r.numRows, vs...)
}

// DoublePrimeRows applies both primes to a row set and returns the
// closure together with the intermediate column set. The closure is the
// smallest closed row set containing rows; closed row sets are exactly
// the fixed points of this map.
func (r *Relation) DoublePrimeRows(rows Vector) (closed, common Vector) {
	common = r.PrimeRows(rows)
	return r.PrimeCols(common), common
}

// DoublePrimeCols applies both primes to a column set and returns the
// closure together with the intermediate row set.
func (r *Relation) DoublePrimeCols(cols Vector) (closed, common Vector) {
	common = r.PrimeCols(cols)
	return r.PrimeRows(common), common
}
