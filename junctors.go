package concepts

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Junctor classifies the logical relation between two properties,
// judged by which of the four object quadrants (both, left only, right
// only, neither) are inhabited.
type Junctor int

const (
	// Equivalent properties hold for exactly the same objects.
	Equivalent Junctor = iota
	// Complement properties partition the objects: every object has
	// exactly one of the two.
	Complement
	// Incompatible properties never hold together, but some object
	// lacks both.
	Incompatible
	// Implication means every object with the left property also has
	// the right one, and the converse fails.
	Implication
	// Subcontrary properties cover all objects, and some object has
	// both.
	Subcontrary
	// Orthogonal properties inhabit all four quadrants.
	Orthogonal
)

var junctorNames = [...]string{
	Equivalent:   "equivalent",
	Complement:   "complement",
	Incompatible: "incompatible",
	Implication:  "implication",
	Subcontrary:  "subcontrary",
	Orthogonal:   "orthogonal",
}

func (j Junctor) String() string {
	if j < 0 || int(j) >= len(junctorNames) {
		return fmt.Sprintf("Junctor(%d)", int(j))
	}
	return junctorNames[j]
}

// PropertyRelation is the classified relation between one property
// pair. For Implication, Left implies Right; all other kinds are
// symmetric and keep the properties in context order.
type PropertyRelation struct {
	Kind  Junctor
	Left  string
	Right string
}

// Relations is the classification of every property pair of a context,
// grouped by junctor.
type Relations []PropertyRelation

// PropertyRelations classifies all property pairs of the context. Pairs
// are generated in context order and stably sorted by junctor, so equal
// kinds keep their pair order.
func (c *Context) PropertyRelations() Relations {
	n := c.relation.NumCols()
	m := c.relation.NumRows()
	relations := make(Relations, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		a := c.relation.Col(uint32(i))
		for j := i + 1; j < n; j++ {
			b := c.relation.Col(uint32(j))
			both := a.Intersects(b)
			aOnly := !a.IsSubsetOf(b)
			bOnly := !b.IsSubsetOf(a)
			neither := a.Or(b).Count() != m

			left, right := c.properties[i], c.properties[j]
			var kind Junctor
			switch {
			case !aOnly && !bOnly:
				kind = Equivalent
			case !both && !neither:
				kind = Complement
			case !aOnly:
				kind = Implication
			case !bOnly:
				kind = Implication
				left, right = right, left
			case !both:
				kind = Incompatible
			case !neither:
				kind = Subcontrary
			default:
				kind = Orthogonal
			}
			relations = append(relations, PropertyRelation{Kind: kind, Left: left, Right: right})
		}
	}
	slices.SortStableFunc(relations, func(a, b PropertyRelation) int {
		return cmp.Compare(a.Kind, b.Kind)
	})
	return relations
}

// String renders one aligned line per non-orthogonal relation.
func (rs Relations) String() string {
	var leftWidth, kindWidth int
	for _, r := range rs {
		if r.Kind == Orthogonal {
			continue
		}
		leftWidth = max(leftWidth, len(r.Left))
		kindWidth = max(kindWidth, len(r.Kind.String()))
	}
	lines := make([]string, 0, len(rs))
	for _, r := range rs {
		if r.Kind == Orthogonal {
			continue
		}
		lines = append(lines, fmt.Sprintf("%-*s %-*s %s",
			leftWidth, r.Left, kindWidth, r.Kind, r.Right))
	}
	return strings.Join(lines, "\n")
}
