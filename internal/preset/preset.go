package preset

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Preset is a named output resolution.
type Preset struct {
	Name   string `toml:"name"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// BuiltIn returns the presets shipped with the tool, in display order.
func BuiltIn() []Preset {
	return []Preset{
		{Name: "HDTV 720p", Width: 1280, Height: 720},
		{Name: "HDTV 1080p", Width: 1920, Height: 1080},
		{Name: "UHD 2160p", Width: 3840, Height: 2160},
		{Name: "DCI 2K", Width: 2048, Height: 1080},
		{Name: "DCI 4K", Width: 4096, Height: 2160},
		{Name: "Square 1080", Width: 1080, Height: 1080},
		{Name: "Portrait 1080x1920", Width: 1080, Height: 1920},
	}
}

type presetFile struct {
	Preset []Preset `toml:"preset"`
}

// LoadFile reads user presets from a TOML file of the form:
//
//	[[preset]]
//	name = "Cinema Scope"
//	width = 2560
//	height = 1080
func LoadFile(path string) ([]Preset, error) {
	var doc presetFile
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return nil, fmt.Errorf("parse preset file %s: %w", path, err)
	}
	for i, p := range doc.Preset {
		if err := validate(p); err != nil {
			return nil, fmt.Errorf("preset %d in %s: %w", i+1, path, err)
		}
	}
	return doc.Preset, nil
}

// Load returns the built-in presets, extended with the user file at path if
// it exists. A missing file is not an error; a malformed one is.
func Load(path string) ([]Preset, error) {
	presets := BuiltIn()
	if path == "" {
		return presets, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return presets, nil
	}
	user, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return append(presets, user...), nil
}

// Find returns the preset with the given name, searching user presets after
// built-ins.
func Find(presets []Preset, name string) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

func validate(p Preset) error {
	if p.Name == "" {
		return fmt.Errorf("preset name is required")
	}
	if p.Width < 1 {
		return fmt.Errorf("width must be at least 1, got %d", p.Width)
	}
	if p.Height < 1 {
		return fmt.Errorf("height must be at least 1, got %d", p.Height)
	}
	return nil
}
