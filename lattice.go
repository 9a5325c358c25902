package concepts

import (
	"fmt"
	"iter"
	"slices"

	"github.com/iSTB/concepts/bitvec"
)

// Lattice is the concept lattice of a context: every formal concept in
// canonical longlex order (descending extent size, ties broken by
// ascending member indices) plus the covering relation between them.
// Index 0 is the supremum, the last index the infimum.
//
// A Lattice is immutable and safe to share across any number of
// concurrent readers without synchronization.
type Lattice struct {
	context         *Context
	concepts        []*Concept
	byExtent        map[string]*Concept
	byIntent        map[string]*Concept
	objectConcept   []*Concept // object index -> smallest concept containing it
	propertyConcept []*Concept // property index -> largest concept requiring it
}

// Len returns the number of concepts.
func (l *Lattice) Len() int { return len(l.concepts) }

// At returns the concept at position i of the canonical order.
func (l *Lattice) At(i int) (*Concept, error) {
	if i < 0 || i >= len(l.concepts) {
		return nil, &ConceptIndexError{Index: i, Len: len(l.concepts)}
	}
	return l.concepts[i], nil
}

// Iterator yields every concept in canonical order. The sequence is
// restartable: each range starts a fresh pass.
func (l *Lattice) Iterator() iter.Seq[*Concept] {
	return func(yield func(*Concept) bool) {
		for _, c := range l.concepts {
			if !yield(c) {
				return
			}
		}
	}
}

// Supremum returns the top concept: its extent holds every object.
func (l *Lattice) Supremum() *Concept { return l.concepts[0] }

// Infimum returns the bottom concept. For an unrestricted build its
// intent holds every property shared by nothing less; supremum and
// infimum coincide when the lattice has a single concept.
func (l *Lattice) Infimum() *Concept { return l.concepts[len(l.concepts)-1] }

// Atoms returns the upper neighbors of the infimum.
func (l *Lattice) Atoms() []*Concept { return l.Infimum().UpperNeighbors() }

// Context returns the context the lattice was built from.
func (l *Lattice) Context() *Context { return l.context }

// ConceptForObjects returns the smallest concept whose extent contains
// all given objects: the closure of the query, which always names an
// existing concept in an unrestricted lattice.
func (l *Lattice) ConceptForObjects(objects ...string) (*Concept, error) {
	set, err := l.context.ObjectSet(objects...)
	if err != nil {
		return nil, err
	}
	closed, _ := l.context.relation.DoublePrimeRows(set)
	concept, ok := l.byExtent[closed.Key()]
	if !ok {
		return nil, fmt.Errorf("%w: no concept for objects %v in this lattice", ErrNotFound, objects)
	}
	return concept, nil
}

// ConceptForProperties returns the largest concept whose intent
// contains all given properties: the closure of the query.
func (l *Lattice) ConceptForProperties(properties ...string) (*Concept, error) {
	set, err := l.context.PropertySet(properties...)
	if err != nil {
		return nil, err
	}
	closed, _ := l.context.relation.DoublePrimeCols(set)
	concept, ok := l.byIntent[closed.Key()]
	if !ok {
		return nil, fmt.Errorf("%w: no concept for properties %v in this lattice", ErrNotFound, properties)
	}
	return concept, nil
}

// ByExtent returns the concept whose extent is exactly the given object
// set, or an ErrNotFound error when that set is not closed.
func (l *Lattice) ByExtent(objects ...string) (*Concept, error) {
	set, err := l.context.ObjectSet(objects...)
	if err != nil {
		return nil, err
	}
	concept, ok := l.byExtent[set.Key()]
	if !ok {
		return nil, fmt.Errorf("%w: %v is not a concept extent", ErrNotFound, objects)
	}
	return concept, nil
}

// ByIntent returns the concept whose intent is exactly the given
// property set, or an ErrNotFound error when that set is not closed.
func (l *Lattice) ByIntent(properties ...string) (*Concept, error) {
	set, err := l.context.PropertySet(properties...)
	if err != nil {
		return nil, err
	}
	concept, ok := l.byIntent[set.Key()]
	if !ok {
		return nil, fmt.Errorf("%w: %v is not a concept intent", ErrNotFound, properties)
	}
	return concept, nil
}

// ObjectConcept returns the object concept of the given label: the
// smallest concept whose extent contains the object.
func (l *Lattice) ObjectConcept(object string) (*Concept, error) {
	i, ok := l.context.objectIdx[object]
	if !ok {
		return nil, &UnknownLabelError{Kind: kindObject, Label: object}
	}
	concept := l.objectConcept[i]
	if concept == nil {
		return nil, fmt.Errorf("%w: object concept of %q is outside this lattice", ErrNotFound, object)
	}
	return concept, nil
}

// PropertyConcept returns the property concept of the given label: the
// largest concept whose intent contains the property.
func (l *Lattice) PropertyConcept(property string) (*Concept, error) {
	j, ok := l.context.propertyIdx[property]
	if !ok {
		return nil, &UnknownLabelError{Kind: kindProperty, Label: property}
	}
	concept := l.propertyConcept[j]
	if concept == nil {
		return nil, fmt.Errorf("%w: property concept of %q is outside this lattice", ErrNotFound, property)
	}
	return concept, nil
}

// Join returns the least upper bound of the given concepts: the concept
// whose extent is the closure of the union of their extents. The empty
// join is the infimum. All concepts must belong to this lattice.
func (l *Lattice) Join(cs ...*Concept) *Concept {
	if len(cs) == 0 {
		return l.Infimum()
	}
	r := l.context.relation
	extents := make([]bitvec.Vector, len(cs))
	for i, c := range cs {
		extents[i] = c.extent
	}
	closed, _ := r.DoublePrimeRows(bitvec.Union(r.NumRows(), extents...))
	concept, ok := l.byExtent[closed.Key()]
	if !ok {
		invariant("join closure %v is not a concept of this lattice", closed)
	}
	return concept
}

// Meet returns the greatest lower bound of the given concepts: the
// concept whose extent is the intersection of their extents, which is
// already closed. The empty meet is the supremum. All concepts must
// belong to this lattice.
func (l *Lattice) Meet(cs ...*Concept) *Concept {
	if len(cs) == 0 {
		return l.Supremum()
	}
	r := l.context.relation
	extents := make([]bitvec.Vector, len(cs))
	for i, c := range cs {
		extents[i] = c.extent
	}
	common := bitvec.Intersect(r.NumRows(), extents...)
	concept, ok := l.byExtent[common.Key()]
	if !ok {
		invariant("meet extent %v is not a concept of this lattice", common)
	}
	return concept
}

// Equal reports whether both lattices were built from equal contexts
// and hold the same concept set.
func (l *Lattice) Equal(o *Lattice) bool {
	return l.context.Equal(o.context) &&
		len(l.concepts) == len(o.concepts) &&
		l.Infimum().extent.Equal(o.Infimum().extent)
}

// ConceptRecord is the export row for one concept: label sequences plus
// the neighbor indices into the canonical order. Records carry no
// pointers, so a collaborator can render or persist the DAG and rebuild
// links by index.
type ConceptRecord struct {
	Extent []string `json:"extent"`
	Intent []string `json:"intent"`
	Upper  []int    `json:"upper"`
	Lower  []int    `json:"lower"`
}

// Records exports every concept in canonical order.
func (l *Lattice) Records() []ConceptRecord {
	records := make([]ConceptRecord, len(l.concepts))
	for i, c := range l.concepts {
		records[i] = ConceptRecord{
			Extent: c.Extent(),
			Intent: c.Intent(),
			Upper:  slices.Clone(c.upper),
			Lower:  slices.Clone(c.lower),
		}
	}
	return records
}

func (l *Lattice) String() string {
	return fmt.Sprintf("<Lattice of %d concepts over %s>", len(l.concepts), l.context)
}

func (l *Lattice) conceptsAt(indices []int) []*Concept {
	cs := make([]*Concept, len(indices))
	for i, idx := range indices {
		cs[i] = l.concepts[idx]
	}
	return cs
}
