package concepts_test

import (
	"context"
	"fmt"
	"log"

	"github.com/iSTB/concepts"
)

// Example_derivation demonstrates shared-property and shared-object
// queries on a formal context.
func Example_derivation() {
	c, err := concepts.NewContext(
		[]string{"King Arthur", "Sir Robin", "holy grail"},
		[]string{"human", "knight", "king", "mysterious"},
		[][]bool{
			{true, true, true, false},
			{true, true, false, false},
			{false, false, false, true},
		},
	)
	if err != nil {
		log.Fatal(err)
	}

	intent, _ := c.Intension("King Arthur", "Sir Robin")
	extent, _ := c.Extension("knight", "king")

	fmt.Println(intent)
	fmt.Println(extent)
	// Output:
	// [human knight]
	// [King Arthur]
}

// Example_lattice demonstrates building a concept lattice and walking
// its canonical order.
func Example_lattice() {
	c, err := concepts.NewContext(
		[]string{"King Arthur", "Sir Robin", "holy grail"},
		[]string{"human", "knight", "king", "mysterious"},
		[][]bool{
			{true, true, true, false},
			{true, true, false, false},
			{false, false, false, true},
		},
	)
	if err != nil {
		log.Fatal(err)
	}

	l, err := concepts.NewLattice(context.Background(), c)
	if err != nil {
		log.Fatal(err)
	}

	for concept := range l.Iterator() {
		fmt.Println(concept)
	}
	// Output:
	// {King Arthur, Sir Robin, holy grail} <-> []
	// {King Arthur, Sir Robin} <-> [human knight] <=> Sir Robin <=> human knight
	// {King Arthur} <-> [human knight king] <=> King Arthur <=> king
	// {holy grail} <-> [mysterious] <=> holy grail <=> mysterious
	// {} <-> [human knight king mysterious]
}

// Example_navigation demonstrates moving from an object concept up to
// the supremum.
func Example_navigation() {
	c, err := concepts.NewContext(
		[]string{"King Arthur", "Sir Robin", "holy grail"},
		[]string{"human", "knight", "king", "mysterious"},
		[][]bool{
			{true, true, true, false},
			{true, true, false, false},
			{false, false, false, true},
		},
	)
	if err != nil {
		log.Fatal(err)
	}

	l, err := concepts.NewLattice(context.Background(), c)
	if err != nil {
		log.Fatal(err)
	}

	arthur, err := l.ObjectConcept("King Arthur")
	if err != nil {
		log.Fatal(err)
	}

	for concept := range arthur.Upset() {
		fmt.Println(concept.Extent())
	}
	// Output:
	// [King Arthur]
	// [King Arthur Sir Robin]
	// [King Arthur Sir Robin holy grail]
}

// Example_propertyRelations demonstrates the pairwise logical relations
// between context properties.
func Example_propertyRelations() {
	c, err := concepts.NewContext(
		[]string{"King Arthur", "Sir Robin", "holy grail"},
		[]string{"human", "knight", "king", "mysterious"},
		[][]bool{
			{true, true, true, false},
			{true, true, false, false},
			{false, false, false, true},
		},
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(c.PropertyRelations())
	// Output:
	// human  equivalent   knight
	// human  complement   mysterious
	// knight complement   mysterious
	// king   incompatible mysterious
	// king   implication  human
	// king   implication  knight
}
