package concepts

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const linguisticRelationsTable = `+sg equivalent   -pl
+pl equivalent   -sg
+1  complement   -1
+2  complement   -2
+3  complement   -3
+sg complement   +pl
+sg complement   -sg
+pl complement   -pl
-sg complement   -pl
+1  incompatible +2
+1  incompatible +3
+2  incompatible +3
+1  implication  -2
+1  implication  -3
+2  implication  -1
+3  implication  -1
+2  implication  -3
+3  implication  -2
-1  subcontrary  -2
-1  subcontrary  -3
-2  subcontrary  -3`

func TestPropertyRelationsLinguistic(t *testing.T) {
	c := linguisticContext(t)
	rs := c.PropertyRelations()

	// 10 properties make 45 pairs; the orthogonal ones stay in the
	// slice but are left out of the rendering.
	assert.Len(t, rs, 45)
	assert.Equal(t, linguisticRelationsTable, rs.String())

	orthogonal := 0
	for _, r := range rs {
		if r.Kind == Orthogonal {
			orthogonal++
		}
	}
	assert.Equal(t, 24, orthogonal)

	assert.True(t, slices.IsSortedFunc(rs, func(a, b PropertyRelation) int {
		return int(a.Kind) - int(b.Kind)
	}))
}

func TestPropertyRelationsKingArthur(t *testing.T) {
	c := kingArthurContext(t)
	rs := c.PropertyRelations()

	require.Len(t, rs, 6)
	assert.Equal(t, Relations{
		{Kind: Equivalent, Left: "human", Right: "knight"},
		{Kind: Complement, Left: "human", Right: "mysterious"},
		{Kind: Complement, Left: "knight", Right: "mysterious"},
		{Kind: Incompatible, Left: "king", Right: "mysterious"},
		{Kind: Implication, Left: "king", Right: "human"},
		{Kind: Implication, Left: "king", Right: "knight"},
	}, rs)
}

func TestPropertyRelationsImplicationDirection(t *testing.T) {
	c := linguisticContext(t)

	for _, r := range c.PropertyRelations() {
		if r.Kind != Implication {
			continue
		}
		left, err := c.Extension(r.Left)
		require.NoError(t, err)
		right, err := c.Extension(r.Right)
		require.NoError(t, err)

		leftSet, err := c.ObjectSet(left...)
		require.NoError(t, err)
		rightSet, err := c.ObjectSet(right...)
		require.NoError(t, err)

		assert.True(t, leftSet.IsSubsetOf(rightSet),
			"%s implies %s, but its objects are no subset", r.Left, r.Right)
		assert.False(t, leftSet.Equal(rightSet),
			"%s and %s would be equivalent, not an implication", r.Left, r.Right)
	}
}

func TestJunctorString(t *testing.T) {
	assert.Equal(t, "equivalent", Equivalent.String())
	assert.Equal(t, "complement", Complement.String())
	assert.Equal(t, "incompatible", Incompatible.String())
	assert.Equal(t, "implication", Implication.String())
	assert.Equal(t, "subcontrary", Subcontrary.String())
	assert.Equal(t, "orthogonal", Orthogonal.String())
	assert.Equal(t, "Junctor(99)", Junctor(99).String())
}
