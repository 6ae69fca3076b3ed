package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommands(t *testing.T) {
	args, err := ParseArguments([]string{"app", "info", "a.txt"}, "")
	require.NoError(t, err)
	require.NotNil(t, args.Info)
	assert.Equal(t, "a.txt", args.Info.Path)

	args, err = ParseArguments([]string{"app", "transpose", "--perm", "2, 0,1", "a.txt"}, "")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 1}, args.Transpose.Perm)

	args, err = ParseArguments([]string{"app", "transpose", "a.txt"}, "")
	require.NoError(t, err)
	assert.Empty(t, args.Transpose.Perm)

	args, err = ParseArguments([]string{"app", "sort", "--axis", "1", "a.txt"}, "")
	require.NoError(t, err)
	assert.Equal(t, SortArguments{Path: "a.txt", Axis: 1}, *args.Sort)

	args, err = ParseArguments([]string{"app", "reduce", "--op", "max", "-a", "1", "a.txt"}, "")
	require.NoError(t, err)
	assert.Equal(t, ReduceArguments{Path: "a.txt", Axis: 1, Op: "max"}, *args.Reduce)

	args, err = ParseArguments([]string{"app", "convert", "--to", "txt", "a.ndar"}, "")
	require.NoError(t, err)
	assert.Equal(t, "txt", args.Convert.To)

	args, err = ParseArguments([]string{"app", "compare", "a.txt", "b.txt"}, "")
	require.NoError(t, err)
	assert.Equal(t, CompareArguments{Left: "a.txt", Right: "b.txt"}, *args.Compare)

	args, err = ParseArguments([]string{"app", "version"}, "")
	require.NoError(t, err)
	assert.True(t, args.Version)
}

func TestParseGlobalFlags(t *testing.T) {
	args, err := ParseArguments([]string{"app", "-d", ",", "-p", "3", "-o", "out.txt", "--append", "--table", "show", "a.txt"}, "")
	require.NoError(t, err)
	assert.Equal(t, ",", args.Settings.Delimiter)
	assert.Equal(t, 3, args.Settings.Precision)
	assert.True(t, args.Settings.Table)
	assert.Equal(t, "out.txt", args.Output)
	assert.True(t, args.Append)
	assert.False(t, args.Verbose)

	args, err = ParseArguments([]string{"app", "-v", "show", "a.txt"}, "")
	require.NoError(t, err)
	assert.Equal(t, "debug", args.Settings.LogLevel)
	assert.Equal(t, " ", args.Settings.Delimiter)
}

func TestParseErrors(t *testing.T) {
	_, err := ParseArguments([]string{"app"}, "")
	assert.Equal(t, MissingCommand, err)

	_, err = ParseArguments([]string{"app", "show"}, "")
	assert.Equal(t, MissingArgument, err)

	_, err = ParseArguments([]string{"app", "compare", "a.txt"}, "")
	assert.Equal(t, MissingArgument, err)

	_, err = ParseArguments([]string{"app", "transpose", "--perm", "1,x", "a.txt"}, "")
	assert.ErrorIs(t, err, InvalidArgument)

	_, err = ParseArguments([]string{"app", "reduce", "--op", "mean", "a.txt"}, "")
	assert.ErrorIs(t, err, InvalidArgument)

	_, err = ParseArguments([]string{"app", "convert", "--to", "json", "a.txt"}, "")
	assert.ErrorIs(t, err, InvalidArgument)

	_, err = ParseArguments([]string{"app", "-d", ";;", "show", "a.txt"}, "")
	assert.Error(t, err)
}

func TestFlagsOverrideConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ndarray.yaml")
	require.NoError(t, os.WriteFile(path, []byte("delimiter: \",\"\nprecision: 4\ntable: true\n"), 0o600))

	args, err := ParseArguments([]string{"app", "--config", path, "show", "a.txt"}, "")
	require.NoError(t, err)
	assert.Equal(t, ",", args.Settings.Delimiter)
	assert.Equal(t, 4, args.Settings.Precision)
	assert.True(t, args.Settings.Table)

	args, err = ParseArguments([]string{"app", "--config", path, "-d", "\t", "-p", "2", "show", "a.txt"}, "")
	require.NoError(t, err)
	assert.Equal(t, "\t", args.Settings.Delimiter)
	assert.Equal(t, 2, args.Settings.Precision)
	assert.True(t, args.Settings.Table)
}
