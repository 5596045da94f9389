// Package search locates the hidden distress beacon from a static list of
// sensor/beacon pairs.
//
// 🚀 What it answers:
//
//	ExactCount   — how many cells on one row cannot hold the hidden beacon.
//	GapSearch    — the single cell of [0,size]×[0,size] no sensor covers,
//	               and its tuning frequency x*M + y.
//
// ✨ How:
//
//   - ExactCount fills an occupancy.Row from every pair's sensor, beacon and
//     row-restricted coverage, then counts cells not holding a beacon.
//     CountByIntervals gives the same answer from merged row ranges.
//   - GapSearch walks rows in increasing y. Per row it merges each pair's
//     coverage range; when the merged set is one range spanning [0,size]
//     the row is skipped (fast path). Otherwise the row is scanned for the
//     first uncovered x (slow path), which is the answer.
//
// ⚙️ Usage:
//
//	pairs, _ := parse.File("input.txt")
//	n := search.ExactCount(pairs, 2_000_000)
//	res, err := search.GapSearch(pairs, 4_000_000,
//		search.WithWorkers(runtime.NumCPU()),
//		search.WithScanMode(search.ScanIntervals),
//	)
//
// Options:
//
//   - WithContext:             cancellation, checked once per row.
//   - WithWorkers:             parallel row loop; the answer is the same.
//   - WithScanMode:            ScanCells (per-cell Covers oracle) or ScanIntervals.
//   - WithMerge:               MergeFixpoint (interval.Set) or MergeSweep (interval.Merge).
//   - WithFrequencyMultiplier: the M of x*M + y (default 4,000,000).
//   - WithLogger, WithOnSlowRow: observation hooks.
//
// Errors:
//
//   - ErrNoGap:           every cell of the domain is covered.
//   - ErrNegativeSize:    size < 0.
//   - ErrOptionViolation: an Option received an invalid value.
//
// Complexity:
//
//   - ExactCount:       O(Σ reach on the row) time and memory.
//   - CountByIntervals: O(n²) for n pairs.
//   - GapSearch:        O(size · n²) worst case with MergeFixpoint,
//     O(size · n log n) with MergeSweep, plus one O(size · n) slow-path row.
package search
