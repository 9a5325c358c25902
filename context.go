package concepts

import (
	"fmt"
	"slices"

	"github.com/iSTB/concepts/bitvec"
)

// Context is a formal context: an ordered object label sequence, an
// ordered property label sequence, and a binary incidence relation
// telling which object has which property.
//
// A Context is immutable after construction and safe to share across
// any number of concurrent readers.
type Context struct {
	objects     []string
	properties  []string
	objectIdx   map[string]uint32
	propertyIdx map[string]uint32
	relation    *bitvec.Relation
}

// NewContext validates the labels and the incidence matrix and builds a
// context. Labels must be unique within their namespace and the two
// namespaces must be disjoint; matrix must hold one row per object and
// one column per property. Construction is all-or-nothing: on error no
// partial context is returned.
//
// Zero objects and/or zero properties are legal; the resulting lattice
// degenerates to a single concept.
func NewContext(objects, properties []string, matrix [][]bool) (*Context, error) {
	objects = slices.Clone(objects)
	properties = slices.Clone(properties)

	objectIdx := make(map[string]uint32, len(objects))
	for i, label := range objects {
		if _, ok := objectIdx[label]; ok {
			return nil, &DuplicateLabelError{Kind: kindObject, Label: label}
		}
		objectIdx[label] = uint32(i)
	}

	propertyIdx := make(map[string]uint32, len(properties))
	for i, label := range properties {
		if _, ok := propertyIdx[label]; ok {
			return nil, &DuplicateLabelError{Kind: kindProperty, Label: label}
		}
		if _, ok := objectIdx[label]; ok {
			return nil, &LabelOverlapError{Label: label}
		}
		propertyIdx[label] = uint32(i)
	}

	relation, err := bitvec.NewRelation(len(objects), len(properties), matrix)
	if err != nil {
		return nil, &MatrixShapeError{Objects: len(objects), Properties: len(properties), cause: err}
	}

	return &Context{
		objects:     objects,
		properties:  properties,
		objectIdx:   objectIdx,
		propertyIdx: propertyIdx,
		relation:    relation,
	}, nil
}

// Objects returns the object labels in declared order.
func (c *Context) Objects() []string { return slices.Clone(c.objects) }

// Properties returns the property labels in declared order.
func (c *Context) Properties() []string { return slices.Clone(c.properties) }

// Bools returns the incidence matrix, row-major.
func (c *Context) Bools() [][]bool { return c.relation.Bools() }

// Relation returns the raw bit-vector relation backing the context.
func (c *Context) Relation() *bitvec.Relation { return c.relation }

// Equal reports whether both contexts declare the same labels in the
// same order and the same incidence.
func (c *Context) Equal(o *Context) bool {
	return slices.Equal(c.objects, o.objects) &&
		slices.Equal(c.properties, o.properties) &&
		c.relation.Equal(o.relation)
}

func (c *Context) String() string {
	return fmt.Sprintf("<Context mapping %d objects to %d properties>", len(c.objects), len(c.properties))
}

// ObjectSet resolves object labels to their index set.
func (c *Context) ObjectSet(objects ...string) (bitvec.Vector, error) {
	indices := make([]uint32, len(objects))
	for i, label := range objects {
		idx, ok := c.objectIdx[label]
		if !ok {
			return bitvec.Vector{}, &UnknownLabelError{Kind: kindObject, Label: label}
		}
		indices[i] = idx
	}
	return bitvec.FromIndices(len(c.objects), indices), nil
}

// PropertySet resolves property labels to their index set.
func (c *Context) PropertySet(properties ...string) (bitvec.Vector, error) {
	indices := make([]uint32, len(properties))
	for i, label := range properties {
		idx, ok := c.propertyIdx[label]
		if !ok {
			return bitvec.Vector{}, &UnknownLabelError{Kind: kindProperty, Label: label}
		}
		indices[i] = idx
	}
	return bitvec.FromIndices(len(c.properties), indices), nil
}

// ObjectLabels translates an object index set back to labels, declared
// order restricted to the membership. The vector must have object width.
func (c *Context) ObjectLabels(v bitvec.Vector) []string {
	if v.Width() != len(c.objects) {
		panic(fmt.Errorf("%w: %d != %d", bitvec.ErrWidthMismatch, v.Width(), len(c.objects)))
	}
	labels := make([]string, 0, v.Count())
	for i := range v.Iterator() {
		labels = append(labels, c.objects[i])
	}
	return labels
}

// PropertyLabels translates a property index set back to labels,
// declared order restricted to the membership. The vector must have
// property width.
func (c *Context) PropertyLabels(v bitvec.Vector) []string {
	if v.Width() != len(c.properties) {
		panic(fmt.Errorf("%w: %d != %d", bitvec.ErrWidthMismatch, v.Width(), len(c.properties)))
	}
	labels := make([]string, 0, v.Count())
	for i := range v.Iterator() {
		labels = append(labels, c.properties[i])
	}
	return labels
}

// Intension returns the properties shared by all given objects. The
// empty query yields every property.
func (c *Context) Intension(objects ...string) ([]string, error) {
	set, err := c.ObjectSet(objects...)
	if err != nil {
		return nil, err
	}
	return c.PropertyLabels(c.relation.PrimeRows(set)), nil
}

// Extension returns the objects sharing all given properties. The empty
// query yields every object.
func (c *Context) Extension(properties ...string) ([]string, error) {
	set, err := c.PropertySet(properties...)
	if err != nil {
		return nil, err
	}
	return c.ObjectLabels(c.relation.PrimeCols(set)), nil
}

// DoublePrimeObjects closes the given object set and returns the
// resulting concept pair: the closure as extent and the shared
// properties as intent.
func (c *Context) DoublePrimeObjects(objects ...string) (extent, intent []string, err error) {
	set, err := c.ObjectSet(objects...)
	if err != nil {
		return nil, nil, err
	}
	closed, common := c.relation.DoublePrimeRows(set)
	return c.ObjectLabels(closed), c.PropertyLabels(common), nil
}

// DoublePrimeProperties closes the given property set and returns the
// resulting concept pair: the shared objects as extent and the closure
// as intent.
func (c *Context) DoublePrimeProperties(properties ...string) (extent, intent []string, err error) {
	set, err := c.PropertySet(properties...)
	if err != nil {
		return nil, nil, err
	}
	closed, common := c.relation.DoublePrimeCols(set)
	return c.ObjectLabels(common), c.PropertyLabels(closed), nil
}

// ClosedPair is one (extent, intent) concept pair in label form.
type ClosedPair struct {
	Extent []string
	Intent []string
}

// Neighbors returns the upper neighbors of the concept generated by the
// given objects, without building a lattice. The query is closed first,
// so it need not be a concept extent itself.
func (c *Context) Neighbors(objects ...string) ([]ClosedPair, error) {
	set, err := c.ObjectSet(objects...)
	if err != nil {
		return nil, err
	}
	closed, _ := c.relation.DoublePrimeRows(set)
	pairs := upperNeighbors(c.relation, closed, NoopMetricsCollector{})
	out := make([]ClosedPair, len(pairs))
	for i, p := range pairs {
		out[i] = ClosedPair{
			Extent: c.ObjectLabels(p.extent),
			Intent: c.PropertyLabels(p.intent),
		}
	}
	return out, nil
}
