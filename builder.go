package concepts

import (
	"container/heap"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/iSTB/concepts/bitvec"
)

// NewLattice computes the concept lattice of the given context: every
// closed (extent, intent) pair together with the covering relation,
// ordered by longlex of the extents (supremum first, infimum last).
//
// Construction follows Lindig's neighbor generation: starting from the
// closure of the empty object set, the upper neighbors of each pending
// concept are generated and deduplicated until the frontier is
// exhausted. Build time and memory grow with the concept count, which
// is exponential in min(objects, properties) in the worst case; ctx
// cancellation aborts a runaway build.
func NewLattice(ctx context.Context, c *Context, optFns ...Option) (*Lattice, error) {
	o := applyOptions(optFns)

	seed := bitvec.New(c.relation.NumRows())
	if len(o.infimumObjects) > 0 {
		var err error
		if seed, err = c.ObjectSet(o.infimumObjects...); err != nil {
			return nil, err
		}
	}

	start := time.Now()
	b := &builder{
		context: c,
		logger:  o.logger,
		metrics: o.metricsCollector,
		mapping: make(map[string]*node),
	}

	lattice, err := b.run(ctx, seed)
	duration := time.Since(start)
	o.metricsCollector.RecordBuild(len(b.mapping), duration, err)
	o.logger.LogBuild(ctx, len(b.mapping), duration, err)
	if err != nil {
		return nil, err
	}
	return lattice, nil
}

// node is a concept under construction: the closed pair plus the
// neighbor links accumulated during generation. Links become index
// slices once the canonical order is fixed.
type node struct {
	extent bitvec.Vector
	intent bitvec.Vector
	upper  []*node
	lower  []*node
	index  int
}

type builder struct {
	context *Context
	logger  *Logger
	metrics MetricsCollector
	mapping map[string]*node // extent key -> node, the global dedup set
}

func (b *builder) run(ctx context.Context, seed bitvec.Vector) (*Lattice, error) {
	r := b.context.relation
	b.logger.DebugContext(ctx, "lattice build started",
		"objects", r.NumRows(),
		"properties", r.NumCols(),
	)

	extent, intent := r.DoublePrimeRows(seed)
	b.metrics.RecordClosure()

	first := &node{extent: extent, intent: intent}
	b.mapping[extent.Key()] = first

	f := &frontier{nodes: []*node{first}}
	for f.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("concepts: lattice build canceled: %w", err)
		}

		current := heap.Pop(f).(*node)
		for _, candidate := range upperNeighbors(r, current.extent, b.metrics) {
			key := candidate.extent.Key()
			neighbor, ok := b.mapping[key]
			if !ok {
				neighbor = &node{extent: candidate.extent, intent: candidate.intent}
				b.mapping[key] = neighbor
				heap.Push(f, neighbor)
			} else if !neighbor.intent.Equal(candidate.intent) {
				invariant("extent %v closed to conflicting intents %v and %v",
					candidate.extent, neighbor.intent, candidate.intent)
			}
			current.upper = append(current.upper, neighbor)
			neighbor.lower = append(neighbor.lower, current)
		}
	}

	b.logger.DebugContext(ctx, "frontier exhausted", "concepts", len(b.mapping))
	return b.canonicalize(), nil
}

// canonicalize sorts the discovered nodes into longlex order, assigns
// indices, and freezes them into the read-only lattice view.
func (b *builder) canonicalize() *Lattice {
	nodes := make([]*node, 0, len(b.mapping))
	for _, n := range b.mapping {
		nodes = append(nodes, n)
	}
	slices.SortFunc(nodes, func(a, z *node) int {
		return bitvec.CompareLonglex(a.extent, z.extent)
	})
	for i, n := range nodes {
		n.index = i
	}

	l := &Lattice{
		context:         b.context,
		concepts:        make([]*Concept, len(nodes)),
		byExtent:        make(map[string]*Concept, len(nodes)),
		byIntent:        make(map[string]*Concept, len(nodes)),
		objectConcept:   make([]*Concept, len(b.context.objects)),
		propertyConcept: make([]*Concept, len(b.context.properties)),
	}
	for i, n := range nodes {
		concept := &Concept{
			lattice: l,
			index:   i,
			extent:  n.extent,
			intent:  n.intent,
			upper:   neighborIndices(n.upper),
			lower:   neighborIndices(n.lower),
		}
		l.concepts[i] = concept
		l.byExtent[n.extent.Key()] = concept
		l.byIntent[n.intent.Key()] = concept
	}

	b.annotate(l)
	return l
}

// annotate links every object to its object concept (the smallest
// concept whose extent contains it) and every property to its property
// concept, and records the introduced labels on each concept. The
// object concept of o is the concept whose intent is o's property row;
// the property concept of p is the concept whose extent is p's object
// column. In a lattice restricted by WithInfimumObjects, labels whose
// generating concept falls outside the filter stay unannotated.
func (b *builder) annotate(l *Lattice) {
	r := b.context.relation
	for i, label := range b.context.objects {
		concept, ok := l.byIntent[r.Row(uint32(i)).Key()]
		if !ok {
			continue
		}
		l.objectConcept[i] = concept
		concept.objects = append(concept.objects, label)
	}
	for j, label := range b.context.properties {
		concept, ok := l.byExtent[r.Col(uint32(j)).Key()]
		if !ok {
			continue
		}
		l.propertyConcept[j] = concept
		concept.properties = append(concept.properties, label)
	}
}

func neighborIndices(nodes []*node) []int {
	indices := make([]int, len(nodes))
	for i, n := range nodes {
		indices[i] = n.index
	}
	slices.Sort(indices)
	return indices
}

// pair is a closed (extent, intent) bit-vector pair.
type pair struct {
	extent bitvec.Vector
	intent bitvec.Vector
}

// upperNeighbors generates the immediate upper neighbors of the concept
// with the given closed extent (cf. C. Lindig. 2000. Fast Concept
// Analysis). For every object outside the extent, ascending, the
// extended set is closed; a candidate closure that pulls in an object
// still marked minimal is not a cover and is rejected, clearing the
// added object from the minimal mask.
func upperNeighbors(r *bitvec.Relation, extent bitvec.Vector, metrics MetricsCollector) []pair {
	width := r.NumRows()
	minimal := extent.Complement()

	var out []pair
	for _, add := range minimal.Members() {
		atom := bitvec.Atom(width, add)
		extended := extent.Or(atom)
		closed, common := r.DoublePrimeRows(extended)
		metrics.RecordClosure()

		if closed.AndNot(extended).Intersects(minimal) {
			minimal = minimal.AndNot(atom)
			metrics.RecordCandidate(false)
		} else {
			out = append(out, pair{extent: closed, intent: common})
			metrics.RecordCandidate(true)
		}
	}
	return out
}

// Compile time check to ensure frontier satisfies the heap interface.
var _ heap.Interface = (*frontier)(nil)

// frontier holds the concepts whose upper neighbors are still pending,
// prioritized by the longlex order of their extents.
type frontier struct {
	nodes []*node
}

func (f *frontier) Len() int { return len(f.nodes) }

func (f *frontier) Less(i, j int) bool {
	return bitvec.CompareLonglex(f.nodes[i].extent, f.nodes[j].extent) < 0
}

func (f *frontier) Swap(i, j int) { f.nodes[i], f.nodes[j] = f.nodes[j], f.nodes[i] }

func (f *frontier) Push(x any) { f.nodes = append(f.nodes, x.(*node)) }

func (f *frontier) Pop() any {
	old := f.nodes
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // Avoid memory leak
	f.nodes = old[:n-1]
	return item
}
