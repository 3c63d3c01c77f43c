package main

import (
	"fmt"
	"os"
	"sort"

	"golang.org/x/exp/maps" // Switch to maps when go 1.22 dropped
	"gopkg.in/yaml.v3"
)

// Preset is one named style default loadable from .svgdslrc.yaml, applied
// to the --preset flag's fields not already overridden on the command
// line.
type Preset struct {
	Stroke      string `yaml:"stroke"`
	Fill        string `yaml:"fill"`
	StrokeWidth string `yaml:"strokeWidth"`
}

// presetFile is the top-level shape of .svgdslrc.yaml: a flat map of
// preset name to its style defaults.
type presetFile map[string]Preset

// loadPresets reads path if it exists; a missing file is not an error,
// since presets are an optional convenience. loaded is false when no
// file was found.
func loadPresets(path string) (presetFile, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var pf presetFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, false, fmt.Errorf("parsing %s: %w", path, err)
	}
	return pf, true, nil
}

// resolve looks up name, returning a sorted-names error listing what was
// actually available if it isn't found.
func (pf presetFile) resolve(name string) (Preset, error) {
	p, ok := pf[name]
	if !ok {
		names := maps.Keys(pf)
		sort.Strings(names)
		return Preset{}, fmt.Errorf("unknown preset %q, available: %v", name, names)
	}
	return p, nil
}
