package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPresetsMissingFileIsNotAnError(t *testing.T) {
	t.Parallel()

	pf, loaded, err := loadPresets(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.False(t, loaded)
	assert.Nil(t, pf)
}

func TestLoadPresetsParsesYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, ".svgdslrc.yaml")
	contents := "default:\n  stroke: red\n  fill: none\n  strokeWidth: \"2\"\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	pf, loaded, err := loadPresets(path)
	require.NoError(t, err)
	assert.True(t, loaded)
	require.Contains(t, pf, "default")
	assert.Equal(t, "red", pf["default"].Stroke)
	assert.Equal(t, "none", pf["default"].Fill)
	assert.Equal(t, "2", pf["default"].StrokeWidth)
}

func TestLoadPresetsRejectsMalformedYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, ".svgdslrc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("not: [valid: yaml"), 0o644))

	_, _, err := loadPresets(path)
	assert.Error(t, err)
}

func TestPresetFileResolveFound(t *testing.T) {
	t.Parallel()

	pf := presetFile{"default": Preset{Stroke: "red"}}
	p, err := pf.resolve("default")
	require.NoError(t, err)
	assert.Equal(t, "red", p.Stroke)
}

func TestPresetFileResolveUnknownListsSortedNames(t *testing.T) {
	t.Parallel()

	pf := presetFile{"zeta": Preset{}, "alpha": Preset{}}
	_, err := pf.resolve("missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[alpha zeta]")
}
