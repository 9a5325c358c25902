package concepts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConceptAccessors(t *testing.T) {
	l := kingArthurLattice(t)

	c, err := l.At(1)
	require.NoError(t, err)

	assert.Equal(t, 1, c.Index())
	assert.Same(t, l, c.Lattice())
	assert.Equal(t, []string{"King Arthur", "Sir Robin"}, c.Extent())
	assert.Equal(t, []string{"human", "knight"}, c.Intent())
	assert.Equal(t, []uint32{0, 1}, c.ExtentSet().Members())
	assert.Equal(t, 3, c.ExtentSet().Width())
	assert.Equal(t, []uint32{0, 1}, c.IntentSet().Members())
	assert.Equal(t, 4, c.IntentSet().Width())

	assert.Equal(t, []string{"Sir Robin"}, c.Objects())
	assert.Equal(t, []string{"human", "knight"}, c.Properties())

	// Returned slices are copies.
	objects := c.Objects()
	objects[0] = "mutated"
	assert.Equal(t, []string{"Sir Robin"}, c.Objects())
}

func TestConceptNeighbors(t *testing.T) {
	l := kingArthurLattice(t)

	wantUpper := [][]int{0: {}, 1: {0}, 2: {1}, 3: {0}, 4: {2, 3}}
	wantLower := [][]int{0: {1, 3}, 1: {2}, 2: {4}, 3: {4}, 4: {}}

	for concept := range l.Iterator() {
		var upper []int
		for _, n := range concept.UpperNeighbors() {
			upper = append(upper, n.Index())
		}
		assert.ElementsMatch(t, wantUpper[concept.Index()], upper,
			"upper neighbors of concept %d", concept.Index())

		var lower []int
		for _, n := range concept.LowerNeighbors() {
			lower = append(lower, n.Index())
		}
		assert.ElementsMatch(t, wantLower[concept.Index()], lower,
			"lower neighbors of concept %d", concept.Index())
	}
}

func TestConceptUpsetDownset(t *testing.T) {
	l := kingArthurLattice(t)

	collect := func(t *testing.T, i int, up bool) []int {
		t.Helper()
		c, err := l.At(i)
		require.NoError(t, err)
		seq := c.Downset()
		if up {
			seq = c.Upset()
		}
		var out []int
		for concept := range seq {
			out = append(out, concept.Index())
		}
		return out
	}

	t.Run("Upset", func(t *testing.T) {
		assert.Equal(t, []int{4, 3, 2, 1, 0}, collect(t, 4, true))
		assert.Equal(t, []int{2, 1, 0}, collect(t, 2, true))
		assert.Equal(t, []int{3, 0}, collect(t, 3, true))
		assert.Equal(t, []int{0}, collect(t, 0, true))
	})

	t.Run("Downset", func(t *testing.T) {
		assert.Equal(t, []int{0, 1, 2, 3, 4}, collect(t, 0, false))
		assert.Equal(t, []int{1, 2, 4}, collect(t, 1, false))
		assert.Equal(t, []int{3, 4}, collect(t, 3, false))
		assert.Equal(t, []int{4}, collect(t, 4, false))
	})

	t.Run("Restartable", func(t *testing.T) {
		c, err := l.At(4)
		require.NoError(t, err)

		seq := c.Upset()
		for range seq {
			break
		}

		var out []int
		for concept := range seq {
			out = append(out, concept.Index())
		}
		assert.Equal(t, []int{4, 3, 2, 1, 0}, out)
	})
}

func TestConceptOrder(t *testing.T) {
	l := kingArthurLattice(t)

	robin, err := l.ObjectConcept("Sir Robin") // index 1
	require.NoError(t, err)
	arthur, err := l.ObjectConcept("King Arthur") // index 2
	require.NoError(t, err)
	grail, err := l.ObjectConcept("holy grail") // index 3
	require.NoError(t, err)

	assert.True(t, arthur.Implies(robin))
	assert.True(t, robin.Subsumes(arthur))
	assert.False(t, arthur.Implies(grail))
	assert.False(t, grail.Subsumes(arthur))

	assert.True(t, arthur.ProperlyImplies(robin))
	assert.True(t, robin.ProperlySubsumes(arthur))

	// The order is reflexive, proper comparison is not.
	assert.True(t, robin.Implies(robin))
	assert.True(t, robin.Subsumes(robin))
	assert.False(t, robin.ProperlyImplies(robin))
	assert.False(t, robin.ProperlySubsumes(robin))

	for concept := range l.Iterator() {
		assert.True(t, concept.Implies(l.Supremum()))
		assert.True(t, concept.Subsumes(l.Infimum()))
	}
}

func TestConceptMinimalGenerators(t *testing.T) {
	l := kingArthurLattice(t)

	wantObjects := [][]string{
		0: {"King Arthur", "holy grail"},
		1: {"Sir Robin"},
		2: {"King Arthur"},
		3: {"holy grail"},
		4: {}, // priming the empty set already yields every property
	}
	wantProperties := [][]string{
		0: {}, // every object carries the empty property set
		1: {"human"},
		2: {"king"},
		3: {"mysterious"},
		4: {"human", "mysterious"},
	}

	for concept := range l.Iterator() {
		assert.Equal(t, wantObjects[concept.Index()], concept.MinimalObjects(),
			"minimal objects of concept %d", concept.Index())
		assert.Equal(t, wantProperties[concept.Index()], concept.MinimalProperties(),
			"minimal properties of concept %d", concept.Index())
	}
}

func TestConceptGeneratingProperties(t *testing.T) {
	l := kingArthurLattice(t)

	c, err := l.At(1)
	require.NoError(t, err)

	var subsets [][]string
	for subset := range c.GeneratingProperties() {
		subsets = append(subsets, subset)
	}
	assert.Equal(t, [][]string{
		{"human"},
		{"knight"},
		{"human", "knight"},
	}, subsets)

	// The smallest generating subset comes first.
	for got := range c.GeneratingProperties() {
		assert.Equal(t, c.MinimalProperties(), got)
		break
	}

	infimum := l.Infimum()
	for got := range infimum.GeneratingProperties() {
		assert.Equal(t, []string{"human", "mysterious"}, got)
		break
	}
}

func TestConceptString(t *testing.T) {
	l := kingArthurLattice(t)

	want := []string{
		"{King Arthur, Sir Robin, holy grail} <-> []",
		"{King Arthur, Sir Robin} <-> [human knight] <=> Sir Robin <=> human knight",
		"{King Arthur} <-> [human knight king] <=> King Arthur <=> king",
		"{holy grail} <-> [mysterious] <=> holy grail <=> mysterious",
		"{} <-> [human knight king mysterious]",
	}
	for concept := range l.Iterator() {
		assert.Equal(t, want[concept.Index()], concept.String())
	}
}
