package search

import (
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/beaconzone/coverage"
	"github.com/katalvlaran/beaconzone/geom"
	"github.com/katalvlaran/beaconzone/interval"
)

// GapSearch finds the unique cell of [0,size]×[0,size] that no pair covers.
//
// Steps (per row y, increasing):
//  1. Merge RangeOnRow of every pair that reaches y.
//  2. Fast path: one merged range containing [0,size] → next row.
//  3. Slow path: find the first uncovered x in [0,size]; ScanCells tests
//     every x with Pair.Covers, ScanIntervals reads the first gap of the
//     merged ranges and confirms it with Covers. A hit is the answer.
//
// With Workers > 1 rows are handed out in increasing order to a pool of
// goroutines; the hit with the smallest y wins, so the result equals the
// sequential one.
//
// Returns ErrNoGap if the domain is fully covered, ErrNegativeSize for
// size < 0, ErrOptionViolation for bad options, or the context error.
func GapSearch(pairs []coverage.Pair, size int, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}
	if size < 0 {
		return Result{}, fmt.Errorf("%w (%d)", ErrNegativeSize, size)
	}

	s := &scanner{pairs: pairs, target: interval.Range{Start: 0, End: size}, opts: &o}
	var (
		pt    geom.Point
		found bool
		err   error
	)
	if o.Workers > 1 {
		pt, found, err = s.parallel(size)
	} else {
		pt, found, err = s.sequential(size)
	}
	if err != nil {
		return Result{}, err
	}
	if !found {
		return Result{}, fmt.Errorf("%w: [0,%d]x[0,%d] with %d pairs", ErrNoGap, size, size, len(pairs))
	}

	res := Result{Point: pt, Frequency: TuningFrequency(pt, o.FrequencyMultiplier)}
	o.logf("search: gap at %v, tuning frequency %d", res.Point, res.Frequency)
	return res, nil
}

// scanner holds the read-only inputs shared by every row.
type scanner struct {
	pairs  []coverage.Pair
	target interval.Range
	opts   *Options
}

func (s *scanner) sequential(size int) (geom.Point, bool, error) {
	for y := 0; y <= size; y++ {
		if err := s.opts.Ctx.Err(); err != nil {
			return geom.Point{}, false, err
		}
		if x, ok := s.row(y); ok {
			return geom.Point{X: x, Y: y}, true, nil
		}
	}
	return geom.Point{}, false, nil
}

// parallel runs the row loop on Workers goroutines. Rows are claimed in
// increasing order from a shared counter. Every claimed row below the best
// hit is finished; rows past it are never claimed.
func (s *scanner) parallel(size int) (geom.Point, bool, error) {
	var (
		next atomic.Int64
		best atomic.Int64
		mu   sync.Mutex
		hit  geom.Point
	)
	best.Store(int64(size) + 1)

	g, ctx := errgroup.WithContext(s.opts.Ctx)
	for w := 0; w < s.opts.Workers; w++ {
		g.Go(func() error {
			for {
				if err := ctx.Err(); err != nil {
					return err
				}
				y := next.Add(1) - 1
				if y > int64(size) || y > best.Load() {
					return nil
				}
				x, ok := s.row(int(y))
				if !ok {
					continue
				}
				mu.Lock()
				if y < best.Load() {
					best.Store(y)
					hit = geom.Point{X: x, Y: int(y)}
				}
				mu.Unlock()
			}
		})
	}
	if err := g.Wait(); err != nil {
		return geom.Point{}, false, err
	}
	if best.Load() > int64(size) {
		return geom.Point{}, false, nil
	}
	return hit, true, nil
}

// row returns the first uncovered x of row y within the target, if any.
func (s *scanner) row(y int) (int, bool) {
	var merged []interval.Range
	switch s.opts.Merge {
	case MergeSweep:
		rs := make([]interval.Range, 0, len(s.pairs))
		for _, p := range s.pairs {
			if r, ok := p.RangeOnRow(y); ok {
				rs = append(rs, r)
			}
		}
		merged = interval.Merge(rs)
	default:
		set := interval.NewSet(len(s.pairs))
		for _, p := range s.pairs {
			if r, ok := p.RangeOnRow(y); ok {
				set.Insert(r)
			}
		}
		merged = set.List()
	}

	if len(merged) == 1 && merged[0].Contains(s.target) {
		return 0, false
	}

	s.opts.OnSlowRow(y, merged)
	s.opts.logf("search: row %d not covered by a single range (%d ranges)", y, len(merged))

	if s.opts.Scan == ScanIntervals {
		if x, ok := s.intervalGap(merged, y); ok {
			return x, true
		}
		return 0, false
	}
	return s.cellGap(y)
}

// cellGap tests every x of the target on row y against all pairs.
func (s *scanner) cellGap(y int) (int, bool) {
	for x := s.target.Start; x <= s.target.End; x++ {
		if !coverage.AnyCovers(s.pairs, geom.Point{X: x, Y: y}) {
			return x, true
		}
	}
	return 0, false
}

// intervalGap reads the first gap off the merged ranges and confirms it
// with the Covers oracle, falling back to a cell scan on disagreement.
func (s *scanner) intervalGap(merged []interval.Range, y int) (int, bool) {
	sorted := interval.Merge(merged)
	x, ok := interval.FirstGap(sorted, s.target)
	if !ok {
		return 0, false
	}
	if !coverage.AnyCovers(s.pairs, geom.Point{X: x, Y: y}) {
		return x, true
	}
	s.opts.logf("search: row %d interval gap %d disputed by Covers, scanning cells", y, x)
	return s.cellGap(y)
}
