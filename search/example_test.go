// File: search/example_test.go
package search_test

import (
	"fmt"

	"github.com/katalvlaran/beaconzone/parse"
	"github.com/katalvlaran/beaconzone/search"
)

////////////////////////////////////////////////////////////////////////////////
// Example: ExactCount
////////////////////////////////////////////////////////////////////////////////

// ExampleExactCount counts the cells of row 10 that cannot hold the hidden
// beacon in the fourteen-sensor worked example. The only beacon on that row,
// (2,10), is not counted.
func ExampleExactCount() {
	pairs, _ := parse.File("../testdata/example.txt")
	fmt.Println(search.ExactCount(pairs, 10))
	// Output:
	// 26
}

////////////////////////////////////////////////////////////////////////////////
// Example: GapSearch
////////////////////////////////////////////////////////////////////////////////

// ExampleGapSearch locates the one uncovered cell in [0,20]×[0,20].
func ExampleGapSearch() {
	pairs, _ := parse.File("../testdata/example.txt")
	res, err := search.GapSearch(pairs, 20)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Point, res.Frequency)
	// Output:
	// (14,11) 56000011
}

// ExampleGapSearch_parallel runs the same search on four goroutines with
// the interval-based slow path.
func ExampleGapSearch_parallel() {
	pairs, _ := parse.File("../testdata/example.txt")
	res, _ := search.GapSearch(pairs, 20,
		search.WithWorkers(4),
		search.WithScanMode(search.ScanIntervals),
		search.WithMerge(search.MergeSweep),
	)
	fmt.Println(res.Point)
	// Output:
	// (14,11)
}
