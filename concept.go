package concepts

import (
	"container/heap"
	"iter"
	"slices"
	"strings"

	"github.com/iSTB/concepts/bitvec"
)

// Concept is one formal concept of a lattice: a closed pair of an
// object set (extent) and a property set (intent), each determining the
// other. Concepts are created by lattice construction and always carry
// their position in the canonical order plus their covering neighbors.
type Concept struct {
	lattice *Lattice
	index   int
	extent  bitvec.Vector
	intent  bitvec.Vector
	upper   []int
	lower   []int

	objects    []string // labels whose object concept is this concept
	properties []string // labels whose property concept is this concept
}

// Index returns the concept's position in the canonical order.
func (c *Concept) Index() int { return c.index }

// Lattice returns the lattice the concept belongs to.
func (c *Concept) Lattice() *Lattice { return c.lattice }

// Extent returns the labels of the objects in the concept's extent.
func (c *Concept) Extent() []string {
	return c.lattice.context.ObjectLabels(c.extent)
}

// Intent returns the labels of the properties in the concept's intent.
func (c *Concept) Intent() []string {
	return c.lattice.context.PropertyLabels(c.intent)
}

// ExtentSet returns the extent as a bit vector over object indices.
func (c *Concept) ExtentSet() bitvec.Vector { return c.extent }

// IntentSet returns the intent as a bit vector over property indices.
func (c *Concept) IntentSet() bitvec.Vector { return c.intent }

// Objects returns the labels introduced at this concept: the objects
// whose object concept it is. Most concepts introduce none.
func (c *Concept) Objects() []string { return slices.Clone(c.objects) }

// Properties returns the labels introduced at this concept: the
// properties whose property concept it is.
func (c *Concept) Properties() []string { return slices.Clone(c.properties) }

// UpperNeighbors returns the concepts covering this one, in canonical
// order.
func (c *Concept) UpperNeighbors() []*Concept {
	return c.lattice.conceptsAt(c.upper)
}

// LowerNeighbors returns the concepts this one covers, in canonical
// order.
func (c *Concept) LowerNeighbors() []*Concept {
	return c.lattice.conceptsAt(c.lower)
}

// Upset yields the concept itself and everything above it, up to the
// supremum. Concepts appear in descending index order, each exactly
// once; the sequence is restartable.
func (c *Concept) Upset() iter.Seq[*Concept] {
	return c.spread(true, func(o *Concept) []int { return o.upper })
}

// Downset yields the concept itself and everything below it, down to
// the infimum. Concepts appear in ascending index order, each exactly
// once; the sequence is restartable.
func (c *Concept) Downset() iter.Seq[*Concept] {
	return c.spread(false, func(o *Concept) []int { return o.lower })
}

// spread walks the covering relation in one direction. Upper neighbors
// always have strictly smaller indices than the concepts they cover, so
// a max-heap pops the upset in nonincreasing index order and duplicate
// discoveries of the same concept surface consecutively; a min-heap
// does the same for the downset. A single watermark then suffices to
// deduplicate.
func (c *Concept) spread(max bool, next func(*Concept) []int) iter.Seq[*Concept] {
	return func(yield func(*Concept) bool) {
		h := &indexHeap{max: max, indices: []int{c.index}}
		prev := -1
		for h.Len() > 0 {
			idx := heap.Pop(h).(int)
			if idx == prev {
				continue
			}
			prev = idx
			concept := c.lattice.concepts[idx]
			if !yield(concept) {
				return
			}
			for _, n := range next(concept) {
				heap.Push(h, n)
			}
		}
	}
}

// Join returns the least upper bound of this concept and the others.
func (c *Concept) Join(others ...*Concept) *Concept {
	return c.lattice.Join(append([]*Concept{c}, others...)...)
}

// Meet returns the greatest lower bound of this concept and the others.
func (c *Concept) Meet(others ...*Concept) *Concept {
	return c.lattice.Meet(append([]*Concept{c}, others...)...)
}

// Implies reports whether this concept lies below or at o: every object
// of c then has every property of o.
func (c *Concept) Implies(o *Concept) bool {
	return c.extent.IsSubsetOf(o.extent)
}

// Subsumes reports whether this concept lies above or at o.
func (c *Concept) Subsumes(o *Concept) bool {
	return o.extent.IsSubsetOf(c.extent)
}

// ProperlyImplies reports whether this concept lies strictly below o.
func (c *Concept) ProperlyImplies(o *Concept) bool {
	return c.extent.IsSubsetOf(o.extent) && !c.extent.Equal(o.extent)
}

// ProperlySubsumes reports whether this concept lies strictly above o.
func (c *Concept) ProperlySubsumes(o *Concept) bool {
	return o.extent.IsSubsetOf(c.extent) && !o.extent.Equal(c.extent)
}

// MinimalObjects returns the smallest object subset of the extent that
// generates this concept: priming it yields exactly the intent.
// Subsets are tried smallest first, ties in ascending member order, so
// the result is deterministic.
func (c *Concept) MinimalObjects() []string {
	r := c.lattice.context.relation
	members := c.extent.Members()
	var minimal bitvec.Vector
	powerset(members, func(combo []uint32) bool {
		candidate := bitvec.FromIndices(r.NumRows(), combo)
		if r.PrimeRows(candidate).Equal(c.intent) {
			minimal = candidate
			return false
		}
		return true
	})
	return c.lattice.context.ObjectLabels(minimal)
}

// MinimalProperties returns the smallest property subset of the intent
// that generates this concept: priming it yields exactly the extent.
func (c *Concept) MinimalProperties() []string {
	r := c.lattice.context.relation
	members := c.intent.Members()
	var minimal bitvec.Vector
	powerset(members, func(combo []uint32) bool {
		candidate := bitvec.FromIndices(r.NumCols(), combo)
		if r.PrimeCols(candidate).Equal(c.extent) {
			minimal = candidate
			return false
		}
		return true
	})
	return c.lattice.context.PropertyLabels(minimal)
}

// GeneratingProperties yields every property subset of the intent whose
// extension is exactly the extent, smallest first. The first subset
// yielded equals MinimalProperties.
func (c *Concept) GeneratingProperties() iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		r := c.lattice.context.relation
		members := c.intent.Members()
		powerset(members, func(combo []uint32) bool {
			candidate := bitvec.FromIndices(r.NumCols(), combo)
			if !r.PrimeCols(candidate).Equal(c.extent) {
				return true
			}
			return yield(c.lattice.context.PropertyLabels(candidate))
		})
	}
}

func (c *Concept) String() string {
	var b strings.Builder
	b.WriteString("{")
	b.WriteString(strings.Join(c.Extent(), ", "))
	b.WriteString("} <-> [")
	b.WriteString(strings.Join(c.Intent(), " "))
	b.WriteString("]")
	if len(c.objects) > 0 {
		b.WriteString(" <=> ")
		b.WriteString(strings.Join(c.objects, " "))
	}
	if len(c.properties) > 0 {
		b.WriteString(" <=> ")
		b.WriteString(strings.Join(c.properties, " "))
	}
	return b.String()
}

// indexHeap orders concept indices for order traversal: a max-heap for
// the upset, a min-heap for the downset.
type indexHeap struct {
	max     bool
	indices []int
}

var _ heap.Interface = (*indexHeap)(nil)

func (h *indexHeap) Len() int { return len(h.indices) }

func (h *indexHeap) Less(i, j int) bool {
	if h.max {
		return h.indices[i] > h.indices[j]
	}
	return h.indices[i] < h.indices[j]
}

func (h *indexHeap) Swap(i, j int) {
	h.indices[i], h.indices[j] = h.indices[j], h.indices[i]
}

func (h *indexHeap) Push(x any) {
	h.indices = append(h.indices, x.(int))
}

func (h *indexHeap) Pop() any {
	old := h.indices
	n := len(old)
	item := old[n-1]
	h.indices = old[:n-1]
	return item
}

// powerset visits every subset of members in shortlex order: sizes
// ascending, equal sizes in lexicographic member order. Visiting stops
// when visit returns false. The combo slice is reused between calls.
func powerset(members []uint32, visit func(combo []uint32) bool) {
	for k := 0; k <= len(members); k++ {
		if !combinations(members, k, visit) {
			return
		}
	}
}

// combinations visits every k-subset of members in lexicographic order,
// reporting whether the enumeration ran to completion.
func combinations(members []uint32, k int, visit func(combo []uint32) bool) bool {
	if k == 0 {
		return visit(nil)
	}
	if k > len(members) {
		return true
	}
	pos := make([]int, k)
	for i := range pos {
		pos[i] = i
	}
	combo := make([]uint32, k)
	for {
		for i, p := range pos {
			combo[i] = members[p]
		}
		if !visit(combo) {
			return false
		}
		// Advance the rightmost position that can still move.
		i := k - 1
		for i >= 0 && pos[i] == len(members)-k+i {
			i--
		}
		if i < 0 {
			return true
		}
		pos[i]++
		for j := i + 1; j < k; j++ {
			pos[j] = pos[j-1] + 1
		}
	}
}
