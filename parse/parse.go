// Package parse reads sensor reports of the form
//
//	Sensor at x=2, y=18: closest beacon is at x=-2, y=15
//
// into coverage.Pair values. Blank lines are skipped; any other line that
// does not match is reported with its 1-based line number.
package parse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/beaconzone/coverage"
	"github.com/katalvlaran/beaconzone/geom"
)

// ErrMalformed indicates a line is not a sensor report.
var ErrMalformed = errors.New("parse: malformed sensor report")

const reportFormat = "Sensor at x=%d, y=%d: closest beacon is at x=%d, y=%d"

// LineError describes which input line failed and why.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("parse: line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Line parses a single sensor report.
func Line(s string) (coverage.Pair, error) {
	r := strings.NewReader(strings.TrimSpace(s))
	var sensor, beacon geom.Point
	n, err := fmt.Fscanf(r, reportFormat, &sensor.X, &sensor.Y, &beacon.X, &beacon.Y)
	if err != nil || n != 4 {
		return coverage.Pair{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	// Fscanf stops after the last verb; whatever is left is trailing text.
	if r.Len() != 0 {
		return coverage.Pair{}, fmt.Errorf("%w: unexpected text after report", ErrMalformed)
	}
	return coverage.NewPair(sensor, beacon), nil
}

// Reader parses every report in r, in order.
func Reader(r io.Reader) ([]coverage.Pair, error) {
	var pairs []coverage.Pair
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		p, err := Line(text)
		if err != nil {
			return nil, &LineError{Line: lineNo, Text: text, Err: err}
		}
		pairs = append(pairs, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parse: read input: %w", err)
	}
	return pairs, nil
}

// File parses the reports in the named file. The name "-" reads stdin.
func File(name string) ([]coverage.Pair, error) {
	if name == "-" {
		return Reader(os.Stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	defer f.Close()
	return Reader(f)
}
