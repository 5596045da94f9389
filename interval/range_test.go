package interval_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/beaconzone/interval"
)

// TestRange_Contains covers strict, equal and partial containment.
func TestRange_Contains(t *testing.T) {
	outer := interval.Range{Start: 0, End: 10}
	require.True(t, outer.Contains(interval.Range{Start: 2, End: 8}))
	require.True(t, outer.Contains(outer), "a range contains itself")
	require.False(t, outer.Contains(interval.Range{Start: -1, End: 5}))
	require.False(t, outer.Contains(interval.Range{Start: 5, End: 11}))
	require.False(t, interval.Range{Start: 2, End: 8}.Contains(outer))
}

// TestRange_Overlaps verifies the overlap relation is symmetric and that
// touching endpoints count while a gap of one does not.
func TestRange_Overlaps(t *testing.T) {
	cases := []struct {
		name string
		a, b interval.Range
		want bool
	}{
		{"Disjoint", interval.Range{Start: 0, End: 2}, interval.Range{Start: 4, End: 6}, false},
		{"Adjacent", interval.Range{Start: 0, End: 2}, interval.Range{Start: 3, End: 6}, false},
		{"Touching", interval.Range{Start: 0, End: 2}, interval.Range{Start: 2, End: 4}, true},
		{"Partial", interval.Range{Start: 0, End: 5}, interval.Range{Start: 3, End: 9}, true},
		{"Contained", interval.Range{Start: 0, End: 9}, interval.Range{Start: 3, End: 4}, true},
		{"Equal", interval.Range{Start: 1, End: 1}, interval.Range{Start: 1, End: 1}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.a.Overlaps(tc.b))
			require.Equal(t, tc.want, tc.b.Overlaps(tc.a))
		})
	}
}

// TestRange_Union checks the hull and the undefined case.
func TestRange_Union(t *testing.T) {
	u, ok := interval.Range{Start: 0, End: 5}.Union(interval.Range{Start: 3, End: 9})
	require.True(t, ok)
	require.Equal(t, interval.Range{Start: 0, End: 9}, u)

	u, ok = interval.Range{Start: -4, End: 20}.Union(interval.Range{Start: 3, End: 9})
	require.True(t, ok)
	require.Equal(t, interval.Range{Start: -4, End: 20}, u)

	_, ok = interval.Range{Start: 0, End: 2}.Union(interval.Range{Start: 4, End: 6})
	require.False(t, ok)
}

func TestRange_LenAndPoint(t *testing.T) {
	r := interval.Range{Start: -2, End: 24}
	require.Equal(t, 27, r.Len())
	require.Equal(t, 1, interval.Range{Start: 7, End: 7}.Len())
	require.Equal(t, 0, interval.Range{Start: 7, End: 6}.Len())
	require.True(t, r.ContainsPoint(-2))
	require.True(t, r.ContainsPoint(24))
	require.False(t, r.ContainsPoint(25))
	require.Equal(t, "-2→24", r.String())
}
