package bitvec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
)

var (
	// ErrWidthMismatch is the panic value (wrapped with the offending
	// widths) raised when two operands of a set operation do not share
	// the same universe width.
	ErrWidthMismatch = errors.New("bitvec: vector width mismatch")

	// ErrIndexRange is the panic value (wrapped with the offending
	// index) raised when a constructor receives an index outside the
	// vector's universe.
	ErrIndexRange = errors.New("bitvec: index out of range")
)

// emptyBits backs the zero Vector. It is shared and never mutated; every
// mutating step inside this package operates on clones.
var emptyBits = roaring.New()

// Vector is a fixed-width bit set over the universe [0, width).
//
// The zero value is an empty vector of width 0. Vectors are cheap to
// copy (a pointer and an int) and safe to share: no method mutates its
// receiver or arguments.
type Vector struct {
	rb    *roaring.Bitmap
	width int
}

// New returns an empty vector of the given width.
func New(width int) Vector {
	return Vector{rb: roaring.New(), width: width}
}

// Full returns the vector of the given width with every bit set.
func Full(width int) Vector {
	rb := roaring.New()
	rb.AddRange(0, uint64(width))
	return Vector{rb: rb, width: width}
}

// Atom returns the single-member vector {i} of the given width.
// It panics with ErrIndexRange if i is outside the universe.
func Atom(width int, i uint32) Vector {
	checkIndex(width, i)
	rb := roaring.New()
	rb.Add(i)
	return Vector{rb: rb, width: width}
}

// FromIndices returns the vector of the given width containing exactly
// the given indices. It panics with ErrIndexRange if any index is
// outside the universe.
func FromIndices(width int, indices []uint32) Vector {
	rb := roaring.New()
	for _, i := range indices {
		checkIndex(width, i)
		rb.Add(i)
	}
	return Vector{rb: rb, width: width}
}

// FromBools returns the vector whose width is len(bools) and whose
// members are the indices holding true.
func FromBools(bools []bool) Vector {
	rb := roaring.New()
	for i, b := range bools {
		if b {
			rb.Add(uint32(i))
		}
	}
	return Vector{rb: rb, width: len(bools)}
}

func checkIndex(width int, i uint32) {
	if i >= uint32(width) {
		panic(fmt.Errorf("%w: %d not in [0, %d)", ErrIndexRange, i, width))
	}
}

// roar returns the backing bitmap, substituting the shared empty bitmap
// for the zero value. Callers must not mutate the result.
func (v Vector) roar() *roaring.Bitmap {
	if v.rb == nil {
		return emptyBits
	}
	return v.rb
}

func (v Vector) mustMatch(o Vector) {
	if v.width != o.width {
		panic(fmt.Errorf("%w: %d != %d", ErrWidthMismatch, v.width, o.width))
	}
}

func (v Vector) mustWidth(width int) {
	if v.width != width {
		panic(fmt.Errorf("%w: %d != %d", ErrWidthMismatch, v.width, width))
	}
}

// Width returns the size of the universe.
func (v Vector) Width() int { return v.width }

// Count returns the number of members.
func (v Vector) Count() int { return int(v.roar().GetCardinality()) }

// IsEmpty reports whether the vector has no members.
func (v Vector) IsEmpty() bool { return v.roar().IsEmpty() }

// Contains reports whether index i is a member.
func (v Vector) Contains(i uint32) bool { return v.roar().Contains(i) }

// Equal reports whether both vectors have the same width and members.
func (v Vector) Equal(o Vector) bool {
	return v.width == o.width && v.roar().Equals(o.roar())
}

// IsSubsetOf reports whether every member of v is a member of o.
func (v Vector) IsSubsetOf(o Vector) bool {
	v.mustMatch(o)
	return v.roar().AndCardinality(o.roar()) == v.roar().GetCardinality()
}

// Intersects reports whether v and o share at least one member.
func (v Vector) Intersects(o Vector) bool {
	v.mustMatch(o)
	return v.roar().Intersects(o.roar())
}

// And returns the intersection of v and o.
func (v Vector) And(o Vector) Vector {
	v.mustMatch(o)
	rb := v.roar().Clone()
	rb.And(o.roar())
	return Vector{rb: rb, width: v.width}
}

// Or returns the union of v and o.
func (v Vector) Or(o Vector) Vector {
	v.mustMatch(o)
	rb := v.roar().Clone()
	rb.Or(o.roar())
	return Vector{rb: rb, width: v.width}
}

// AndNot returns the difference v \ o.
func (v Vector) AndNot(o Vector) Vector {
	v.mustMatch(o)
	rb := v.roar().Clone()
	rb.AndNot(o.roar())
	return Vector{rb: rb, width: v.width}
}

// Complement returns the complement of v relative to its width.
func (v Vector) Complement() Vector {
	rb := v.roar().Clone()
	rb.Flip(0, uint64(v.width))
	return Vector{rb: rb, width: v.width}
}

// Min returns the smallest member, or ok == false when v is empty.
func (v Vector) Min() (uint32, bool) {
	if v.IsEmpty() {
		return 0, false
	}
	return v.roar().Minimum(), true
}

// Max returns the largest member, or ok == false when v is empty.
func (v Vector) Max() (uint32, bool) {
	if v.IsEmpty() {
		return 0, false
	}
	return v.roar().Maximum(), true
}

// Members returns the members in ascending order.
func (v Vector) Members() []uint32 { return v.roar().ToArray() }

// Iterator returns an iterator over the members in ascending order.
// The sequence is restartable: each range starts a fresh pass.
func (v Vector) Iterator() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		it := v.roar().Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// Bools returns the dense boolean form of the vector.
func (v Vector) Bools() []bool {
	bools := make([]bool, v.width)
	for i := range v.Iterator() {
		bools[i] = true
	}
	return bools
}

// Key returns a canonical string key for use in maps. It is derived
// from the member sequence, not the bitmap's internal encoding, so
// equal vectors always share a key.
func (v Vector) Key() string {
	members := v.Members()
	buf := make([]byte, 4*(len(members)+1))
	binary.LittleEndian.PutUint32(buf, uint32(v.width))
	for i, m := range members {
		binary.LittleEndian.PutUint32(buf[4*(i+1):], m)
	}
	return string(buf)
}

// String renders the members as "{1, 3, 5}".
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for i := range v.Iterator() {
		if !first {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatUint(uint64(i), 10))
		first = false
	}
	sb.WriteByte('}')
	return sb.String()
}

// Intersect returns the intersection of all given vectors, each of
// which must have the given width. The empty intersection is the full
// universe (the identity element).
func Intersect(width int, vs ...Vector) Vector {
	switch len(vs) {
	case 0:
		return Full(width)
	case 1:
		vs[0].mustWidth(width)
		return Vector{rb: vs[0].roar().Clone(), width: width}
	}
	bitmaps := make([]*roaring.Bitmap, len(vs))
	for i, v := range vs {
		v.mustWidth(width)
		bitmaps[i] = v.roar()
	}
	return Vector{rb: roaring.FastAnd(bitmaps...), width: width}
}

// Union returns the union of all given vectors, each of which must have
// the given width. The empty union is the empty vector (the identity
// element).
func Union(width int, vs ...Vector) Vector {
	switch len(vs) {
	case 0:
		return New(width)
	case 1:
		vs[0].mustWidth(width)
		return Vector{rb: vs[0].roar().Clone(), width: width}
	}
	bitmaps := make([]*roaring.Bitmap, len(vs))
	for i, v := range vs {
		v.mustWidth(width)
		bitmaps[i] = v.roar()
	}
	return Vector{rb: roaring.FastOr(bitmaps...), width: width}
}

// CompareLonglex orders vectors by descending cardinality, breaking
// ties by ascending lexicographic comparison of the member sequences.
// Under this order the full universe sorts first and the empty vector
// last among vectors of one width.
func CompareLonglex(a, b Vector) int {
	if ca, cb := a.Count(), b.Count(); ca != cb {
		if ca > cb {
			return -1
		}
		return 1
	}
	return slices.Compare(a.Members(), b.Members())
}
