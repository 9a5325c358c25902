package testutil

import (
	"fmt"
	"math/rand"
	"strconv"
	"sync"

	"github.com/iSTB/concepts"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns, as a float64, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// IncidenceMatrix generates a random objects x properties incidence matrix
// where each cell is true with the given density.
// Uses a single backing array for efficiency.
func (r *RNG) IncidenceMatrix(objects, properties int, density float64) [][]bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]bool, objects*properties)
	matrix := make([][]bool, objects)

	for i := range objects {
		row := data[i*properties : (i+1)*properties]
		for j := range row {
			row[j] = r.rand.Float64() < density
		}
		matrix[i] = row
	}

	return matrix
}

// FormalContext generates a random formal context with synthetic labels
// ("g0", "g1", ... for objects and "m0", "m1", ... for properties) and a
// random incidence matrix of the given density.
func (r *RNG) FormalContext(objects, properties int, density float64) *concepts.Context {
	matrix := r.IncidenceMatrix(objects, properties, density)

	c, err := concepts.NewContext(labels("g", objects), labels("m", properties), matrix)
	if err != nil {
		panic(fmt.Sprintf("testutil: random context: %v", err))
	}

	return c
}

func labels(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = prefix + strconv.Itoa(i)
	}

	return out
}

// KingArthur returns the small canonical context used throughout the
// documentation: three objects of Arthurian legend described by four
// properties. Its lattice has exactly five concepts.
func KingArthur() *concepts.Context {
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
		panic(fmt.Sprintf("testutil: king arthur context: %v", err))
	}

	return c
}

// Linguistic returns the person/number agreement context from the
// linguistics literature: six pronoun forms described by ten privative
// features. Its 45 property pairs cover every junctor class, which makes
// it the standard fixture for property relation tables.
func Linguistic() *concepts.Context {
	c, err := concepts.NewContext(
		[]string{"1sg", "1pl", "2sg", "2pl", "3sg", "3pl"},
		[]string{"+1", "-1", "+2", "-2", "+3", "-3", "+sg", "+pl", "-sg", "-pl"},
		[][]bool{
			{true, false, false, true, false, true, true, false, false, true},
			{true, false, false, true, false, true, false, true, true, false},
			{false, true, true, false, false, true, true, false, false, true},
			{false, true, true, false, false, true, false, true, true, false},
			{false, true, false, true, true, false, true, false, false, true},
			{false, true, false, true, true, false, false, true, true, false},
		},
	)
	if err != nil {
		panic(fmt.Sprintf("testutil: linguistic context: %v", err))
	}

	return c
}
