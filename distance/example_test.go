// File: distance/example_test.go
package distance_test

import (
	"fmt"

	"github.com/katalvlaran/dahu/distance"
	"github.com/katalvlaran/dahu/gridgraph"
	"github.com/katalvlaran/dahu/immersion"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Dahu
////////////////////////////////////////////////////////////////////////////////

// ExampleDahu seeds the left end of a 1×3 ramp [1 1 9].
// Scenario:
//
//   - The two left pixels form a flat zone connected to the seed: distance 0.
//   - Reaching the bright pixel crosses one level line of contrast 8.
//
// Complexity: O(N), Memory: O(N) with N = 5 immersed elements.
func ExampleDahu() {
	img, _ := gridgraph.FromRows([][]uint8{{1, 1, 9}})
	m, M, _ := immersion.Immerse(img)

	out, _ := distance.Dahu(m, M, []gridgraph.Point{{Row: 0, Col: 0}})
	fmt.Println("dahu:", out.Data)
	// Output:
	// dahu: [0 0 0 0 8]
}

////////////////////////////////////////////////////////////////////////////////
// Example: LevelLines
////////////////////////////////////////////////////////////////////////////////

// ExampleLevelLines shows the propagated signal and the cumulative distance
// on a 2×2 image where only the top-left pixel is dark.
func ExampleLevelLines() {
	img, _ := gridgraph.FromRows([][]uint8{
		{0, 10},
		{10, 10},
	})
	m, M, _ := immersion.Immerse(img)

	F, D, _ := distance.LevelLines(m, M, immersion.PixelSeeds(gridgraph.Point{}))
	for r := 0; r < D.Height; r++ {
		fmt.Println(F.Rows()[r], D.Rows()[r])
	}
	// Output:
	// [0 0 10] [0 0 10]
	// [0 0 10] [0 0 10]
	// [10 10 10] [10 10 10]
}
