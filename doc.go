// Package concepts implements Formal Concept Analysis for Go.
//
// A formal context is a binary relation telling which objects carry
// which properties. Given one, the package derives shared-property and
// shared-object queries, computes formal concepts (maximal rectangles
// of the relation), and assembles them into a navigable concept
// lattice.
//
// # Quick Start
//
// Define a context and build its lattice:
//
//	ctx := context.Background()
//	c, _ := concepts.NewContext(
//	    []string{"King Arthur", "Sir Robin", "holy grail"},
//	    []string{"human", "knight", "king", "mysterious"},
//	    [][]bool{
//	        {true, true, true, false},
//	        {true, true, false, false},
//	        {false, false, false, true},
//	    },
//	)
//	l, _ := concepts.NewLattice(ctx, c)
//	for concept := range l.Iterator() {
//	    fmt.Println(concept)
//	}
//
// # Derivation
//
// Contexts answer derivation queries without building the lattice:
//
//	c.Intension("King Arthur", "Sir Robin")  // properties common to both
//	c.Extension("knight", "king")            // objects carrying both
//
// # Navigation
//
// The lattice is a DAG ordered from the supremum (all objects) down to
// the infimum. Concepts link to the neighbors covering them and the
// neighbors they cover:
//
//	top := l.Supremum()
//	for _, lower := range top.LowerNeighbors() {
//	    fmt.Println(lower.Extent(), lower.Intent())
//	}
//	kc, _ := l.ObjectConcept("King Arthur")
//	for concept := range kc.Upset() {
//	    fmt.Println(concept)
//	}
//
// # Key Features
//
//   - Roaring-bitmap bit vectors for extents, intents, and closures
//   - Neighbor-generation lattice construction with candidate pruning
//   - Canonical concept order: supremum first, infimum last
//   - Object and property concepts annotated during the build
//   - Minimal generating subsets and property implication analysis
//   - Optional metrics collection and structured logging
package concepts
