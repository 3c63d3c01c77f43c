package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSourcePrefersInlineOverFile(t *testing.T) {
	t.Parallel()

	src, err := readSource("inline expr", "/nonexistent")
	require.NoError(t, err)
	assert.Equal(t, "inline expr", src)
}

func TestReadSourceReadsFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "a.svgdsl")
	require.NoError(t, os.WriteFile(path, []byte("M 0 0"), 0o644))

	src, err := readSource("", path)
	require.NoError(t, err)
	assert.Equal(t, "M 0 0", src)
}

func TestReadSourceRequiresOneOption(t *testing.T) {
	t.Parallel()

	_, err := readSource("", "")
	assert.Error(t, err)
}

func TestWriteOutputToStdoutMarker(t *testing.T) {
	t.Parallel()

	assert.NoError(t, writeOutput("", "ignored"))
	assert.NoError(t, writeOutput("-", "ignored"))
}

func TestWriteOutputToFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, writeOutput(path, "M 0 0"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "M 0 0", string(data))
}

func TestApplyPresetMissingFileErrors(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(cwd) })

	var ropts renderOpts
	err = applyPreset("default", &ropts)
	assert.Error(t, err)
}

func TestApplyPresetFillsBlankFieldsOnly(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(cwd) })

	require.NoError(t, os.WriteFile(".svgdslrc.yaml", []byte("default:\n  stroke: red\n  fill: none\n"), 0o644))

	ropts := renderOpts{Stroke: "blue"}
	require.NoError(t, applyPreset("default", &ropts))
	assert.Equal(t, "blue", ropts.Stroke)
	assert.Equal(t, "none", ropts.Fill)
}
