package search

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/katalvlaran/beaconzone/coverage"
	"github.com/katalvlaran/beaconzone/geom"
	"github.com/katalvlaran/beaconzone/interval"
)

// Sentinel errors for search execution.
var (
	// ErrNoGap is returned when every cell of the domain is covered. Inputs
	// are promised to leave exactly one gap, so this is a broken input.
	ErrNoGap = errors.New("search: no uncovered cell in domain")

	// ErrNegativeSize is returned when the domain size is below zero.
	ErrNegativeSize = errors.New("search: domain size must be non-negative")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// ScanMode selects how a row that failed the fast path is searched.
type ScanMode int

const (
	// ScanCells tests every x of the row against every pair's Covers.
	ScanCells ScanMode = iota
	// ScanIntervals takes the first gap of the merged row ranges and
	// confirms it with Covers.
	ScanIntervals
)

// String returns the mode name used on the command line.
func (m ScanMode) String() string {
	switch m {
	case ScanCells:
		return "cells"
	case ScanIntervals:
		return "intervals"
	default:
		return fmt.Sprintf("ScanMode(%d)", int(m))
	}
}

// ParseScanMode maps "cells" or "intervals" to a ScanMode.
func ParseScanMode(s string) (ScanMode, error) {
	switch s {
	case "cells":
		return ScanCells, nil
	case "intervals":
		return ScanIntervals, nil
	}
	return 0, fmt.Errorf("%w: unknown scan mode %q", ErrOptionViolation, s)
}

// MergeStrategy selects how per-row ranges are combined.
type MergeStrategy int

const (
	// MergeFixpoint inserts ranges one by one into an interval.Set.
	MergeFixpoint MergeStrategy = iota
	// MergeSweep sorts the ranges and merges them in one pass.
	MergeSweep
)

// Result is the located gap.
type Result struct {
	// Point is the uncovered cell.
	Point geom.Point
	// Frequency is Point.X*multiplier + Point.Y.
	Frequency int64
}

// Option configures GapSearch via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the parameters of GapSearch.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Workers is the number of goroutines scanning rows. 0 or 1 runs the
	// row loop on the calling goroutine.
	Workers int

	// Scan selects the slow-path strategy.
	Scan ScanMode

	// Merge selects the per-row merge strategy.
	Merge MergeStrategy

	// FrequencyMultiplier is the M in x*M + y.
	FrequencyMultiplier int64

	// Logger, if non-nil, receives one line per slow-path row and the result.
	Logger *log.Logger

	// OnSlowRow is called with the merged ranges of every row that failed
	// the fast path. With Workers > 1 it may be called concurrently.
	OnSlowRow func(y int, ranges []interval.Range)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - a single worker
//   - ScanCells and MergeFixpoint
//   - the puzzle multiplier 4,000,000
//   - no logger and a no-op OnSlowRow.
func DefaultOptions() Options {
	return Options{
		Ctx:                 context.Background(),
		Workers:             1,
		Scan:                ScanCells,
		Merge:               MergeFixpoint,
		FrequencyMultiplier: coverage.DefaultFrequencyMultiplier,
		OnSlowRow:           func(int, []interval.Range) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the number of row-scanning goroutines.
//
//	n > 1:  parallel rows
//	n == 0: same as 1
//	n < 0:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = max(n, 1)
	}
}

// WithScanMode selects the slow-path strategy.
func WithScanMode(m ScanMode) Option {
	return func(o *Options) {
		if m != ScanCells && m != ScanIntervals {
			o.err = fmt.Errorf("%w: unknown scan mode %d", ErrOptionViolation, int(m))
			return
		}
		o.Scan = m
	}
}

// WithMerge selects the per-row merge strategy.
func WithMerge(m MergeStrategy) Option {
	return func(o *Options) {
		if m != MergeFixpoint && m != MergeSweep {
			o.err = fmt.Errorf("%w: unknown merge strategy %d", ErrOptionViolation, int(m))
			return
		}
		o.Merge = m
	}
}

// WithFrequencyMultiplier sets M in the tuning frequency x*M + y.
// m must be positive.
func WithFrequencyMultiplier(m int64) Option {
	return func(o *Options) {
		if m <= 0 {
			o.err = fmt.Errorf("%w: FrequencyMultiplier must be positive (%d)", ErrOptionViolation, m)
			return
		}
		o.FrequencyMultiplier = m
	}
}

// WithLogger sets a logger for slow-path rows and the result.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithOnSlowRow registers a callback for rows that fail the fast path.
func WithOnSlowRow(fn func(y int, ranges []interval.Range)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSlowRow = fn
		}
	}
}

func (o *Options) logf(format string, args ...any) {
	if o.Logger != nil {
		o.Logger.Printf(format, args...)
	}
}

// TuningFrequency encodes p as p.X*multiplier + p.Y in int64.
func TuningFrequency(p geom.Point, multiplier int64) int64 {
	return coverage.Beacon{Point: p}.TuningFrequency(multiplier)
}
