package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndarray"
	"github.com/born-ml/ndarray/ndio"
)

func writeText(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, argv ...string) (string, error) {
	t.Helper()
	args, err := ParseArguments(append([]string{"app"}, argv...), "test")
	require.NoError(t, err)
	var out bytes.Buffer
	err = Run(&out, "test", args)
	return out.String(), err
}

func TestShowAndTranspose(t *testing.T) {
	path := writeText(t, t.TempDir(), "a.txt", "1 2 3\n4 5 6\n")

	out, err := run(t, "show", path)
	require.NoError(t, err)
	assert.Equal(t, "[[1, 2, 3],\n [4, 5, 6]]\n", out)

	out, err = run(t, "transpose", path)
	require.NoError(t, err)
	assert.Equal(t, "[[1, 4],\n [2, 5],\n [3, 6]]\n", out)

	_, err = run(t, "transpose", "--perm", "0,0", path)
	assert.ErrorIs(t, err, ndarray.ErrInvalidPermutation)

	out, err = run(t, "--table", "show", path)
	require.NoError(t, err)
	assert.Contains(t, out, "4")
	assert.Contains(t, out, "6")
}

func TestInfo(t *testing.T) {
	path := writeText(t, t.TempDir(), "a.txt", "1 -2 3\n4 5 6\n")
	out, err := run(t, "info", path)
	require.NoError(t, err)
	assert.Equal(t, "shape: (2, 3)\nrank: 2\nlen: 6\nmin: -2\nmax: 6\nsum: 17\n", out)
}

func TestSortAndReduce(t *testing.T) {
	path := writeText(t, t.TempDir(), "a.txt", "3 1 2\n9 7 8\n")

	out, err := run(t, "sort", "--axis", "1", path)
	require.NoError(t, err)
	assert.Equal(t, "[[1, 2, 3],\n [7, 8, 9]]\n", out)

	out, err = run(t, "reduce", "--axis", "0", path)
	require.NoError(t, err)
	assert.Equal(t, "[12, 8, 10]\n", out)

	out, err = run(t, "reduce", "--axis", "1", "--op", "max", path)
	require.NoError(t, err)
	assert.Equal(t, "[3, 9]\n", out)

	out, err = run(t, "reduce", "--axis", "1", "--op", "min", path)
	require.NoError(t, err)
	assert.Equal(t, "[1, 7]\n", out)

	_, err = run(t, "reduce", "--axis", "2", path)
	assert.ErrorIs(t, err, ndarray.ErrIndexOutOfRange)
}

func TestConvertAndCompare(t *testing.T) {
	dir := t.TempDir()
	path := writeText(t, dir, "a.txt", "1.5,2\n3,4\n")

	_, err := run(t, "-d", ",", "convert", path)
	require.NoError(t, err)
	binary := filepath.Join(dir, "a"+BinaryExtension)
	a, err := ndio.LoadBinaryFile[float64](binary)
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{2, 2}, a.Shape())
	assert.Equal(t, []float64{1.5, 2, 3, 4}, a.Data())

	out, err := run(t, "-d", ",", "compare", path, binary)
	require.NoError(t, err)
	assert.Equal(t, "equal\n", out)

	other := writeText(t, dir, "b.txt", "1.5,2\n3,5\n")
	_, err = run(t, "-d", ",", "compare", path, other)
	assert.Error(t, err)

	_, err = run(t, "-o", filepath.Join(dir, "c.txt"), "convert", "--to", "bin", path)
	assert.ErrorIs(t, err, InvalidArgument)
}

func TestOutputFile(t *testing.T) {
	dir := t.TempDir()
	path := writeText(t, dir, "a.txt", "1 2\n3 4\n")
	target := filepath.Join(dir, "out.txt")

	_, err := run(t, "-o", target, "transpose", path)
	require.NoError(t, err)
	_, err = run(t, "-o", target, "--append", "sort", "--flat", path)
	require.NoError(t, err)
	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "1 3\n2 4\n1 2\n3 4\n", string(content))

	_, err = run(t, "-o", filepath.Join(dir, "out.ndar"), "--append", "transpose", path)
	assert.ErrorIs(t, err, ndio.ErrUnsupportedMode)
}

func TestRenderTableUnitEntries(t *testing.T) {
	a, err := ndarray.FromSlice([]float64{1, 2, 3, 4, 5, 6}, ndarray.Shape{2, 3, 1})
	require.NoError(t, err)
	cfg := DefaultConfig()
	cfg.Table = true

	var out bytes.Buffer
	require.NoError(t, render(&out, a, cfg))
	assert.Regexp(t, `1\s*\|\s*2\s*\|\s*3`, out.String())
	assert.Regexp(t, `4\s*\|\s*5\s*\|\s*6`, out.String())
}

func TestHelpRunsNothing(t *testing.T) {
	for _, argv := range [][]string{{"--help"}, {"help"}, {"-h"}} {
		out, err := run(t, argv...)
		assert.NoError(t, err, "%v", argv)
		assert.Empty(t, out, "%v", argv)
	}
}
