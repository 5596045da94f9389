package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/beaconzone/search"
)

// run executes the CLI with args and returns what it printed.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := newApp(&out).Run(context.Background(), append([]string{AppName}, args...))
	return out.String(), err
}

func TestCount(t *testing.T) {
	out, err := run(t, "count", "--input", "../../testdata/example.txt", "--row", "10")
	require.NoError(t, err)
	require.Equal(t, "26\n", out)

	out, err = run(t, "count", "--input", "../../testdata/example.txt", "--row", "10", "--intervals")
	require.NoError(t, err)
	require.Equal(t, "26\n", out)
}

func TestLocate(t *testing.T) {
	out, err := run(t, "locate", "--input", "../../testdata/example.txt", "--size", "20", "--workers", "2", "--scan", "intervals", "--sweep")
	require.NoError(t, err)
	require.Equal(t, "(14,11) 56000011\n", out)
}

func TestLocate_BadScan(t *testing.T) {
	_, err := run(t, "locate", "--input", "../../testdata/example.txt", "--size", "20", "--scan", "spiral")
	require.ErrorIs(t, err, search.ErrOptionViolation)
}

func TestLocate_MissingInput(t *testing.T) {
	_, err := run(t, "locate", "--input", "testdata/nope.txt", "--size", "20")
	require.Error(t, err)
}

func TestRender(t *testing.T) {
	out := filepath.Join(t.TempDir(), "map.svg")
	_, err := run(t, "render", "--input", "../../testdata/example.txt", "--size", "20", "--gap", "--out", out)
	require.NoError(t, err)
	require.FileExists(t, out)
}
