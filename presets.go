package dtformat

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Preset is a named formatter configuration loaded from a file.
type Preset struct {
	Locales []string      `json:"locales" yaml:"locales" toml:"locales"`
	Options FormatOptions `json:"options" yaml:"options" toml:"options"`
}

type presetFile struct {
	Presets map[string]Preset `json:"presets" yaml:"presets" toml:"presets"`
}

// Presets maps preset names to configurations.
type Presets map[string]Preset

// LoadPresets decodes preset files by extension (.json, .yaml/.yml, .toml).
// Later files override presets of the same name.
func LoadPresets(paths ...string) (Presets, error) {
	if len(paths) == 0 {
		return nil, errors.New("dtformat: no preset paths configured")
	}

	presets := make(Presets)
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("dtformat: read %s: %w", path, err)
		}
		decoded, err := decodePresetFile(path, data)
		if err != nil {
			return nil, fmt.Errorf("dtformat: decode %s: %w", path, err)
		}
		for name, preset := range decoded {
			presets[name] = preset
		}
	}
	return presets, nil
}

func decodePresetFile(path string, data []byte) (map[string]Preset, error) {
	var file presetFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, err
		}
	case ".toml":
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported preset format %q", ext)
	}
	return file.Presets, nil
}

// New builds a formatter from the preset.
func (p Preset) New(opts ...Option) (*DateTimeFormat, error) {
	return New(p.Locales, p.Options.Map(), opts...)
}

// Lookup returns the named preset.
func (p Presets) Lookup(name string) (Preset, bool) {
	preset, ok := p[name]
	return preset, ok
}
