package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/iSTB/concepts"
	"github.com/iSTB/concepts/testutil"
)

func main() {
	seed := int64(4711)
	objects := 64
	properties := 24
	density := 0.15

	rng := testutil.NewRNG(seed)
	fc := rng.FormalContext(objects, properties, density)

	fmt.Println("--- Build ---")
	fmt.Println("Objects:", objects)
	fmt.Println("Properties:", properties)
	fmt.Printf("Density: %.0f%%\n", density*100)

	metrics := &concepts.BasicMetricsCollector{}

	start := time.Now()

	lattice, err := concepts.NewLattice(context.Background(), fc, concepts.WithMetricsCollector(metrics))
	if err != nil {
		log.Fatal(err)
	}

	end := time.Since(start)

	fmt.Printf("Seconds: %.3f\n", end.Seconds())
	fmt.Println("Concepts:", lattice.Len())

	stats := metrics.GetStats()
	fmt.Printf("Closures: %d (candidates kept %d, rejected %d)\n\n", stats.ClosureCount, stats.CandidatesKept, stats.CandidatesRejected)

	fmt.Println("--- Query ---")

	start = time.Now()

	for _, o := range fc.Objects()[:3] {
		c, err := lattice.ConceptForObjects(o)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s -> concept %d (%d objects, %d properties)\n", o, c.Index(), len(c.Extent()), len(c.Intent()))
	}

	end = time.Since(start)

	fmt.Printf("Seconds: %.6f\n\n", end.Seconds())

	fmt.Println("--- Navigation ---")
	fmt.Println("Atoms:", len(lattice.Atoms()))

	visited := 0
	for range lattice.Supremum().Downset() {
		visited++
	}

	fmt.Println("Downset of supremum:", visited)
}
