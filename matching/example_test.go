package matching_test

import (
	"fmt"

	"github.com/katalvlaran/swisspair/matching"
	"github.com/katalvlaran/swisspair/wideint"
)

// ExampleGraph_ComputeMatching builds a four-vertex instance with two
// heavy edges (0-1, 2-3) and two light cross edges (0-2, 1-3) and prints
// the resulting pairs.
func ExampleGraph_ComputeMatching() {
	g := matching.NewGraph[wideint.Dynamic]()
	for i := 0; i < 4; i++ {
		g.AddVertex()
	}
	_ = g.SetEdgeWeight(0, 1, wideint.FromUint64(10))
	_ = g.SetEdgeWeight(2, 3, wideint.FromUint64(10))
	_ = g.SetEdgeWeight(0, 2, wideint.FromUint64(1))
	_ = g.SetEdgeWeight(1, 3, wideint.FromUint64(1))

	g.ComputeMatching()
	m := g.GetMatching()
	fmt.Println(m[0], m[1], m[2], m[3])
	// Output: 1 0 3 2
}
