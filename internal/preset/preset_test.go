package preset

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempPresets(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "presets.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp presets: %v", err)
	}
	return path
}

func TestBuiltInPresetsAreValid(t *testing.T) {
	for _, p := range BuiltIn() {
		if err := validate(p); err != nil {
			t.Errorf("built-in preset %q invalid: %v", p.Name, err)
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := writeTempPresets(t, `
[[preset]]
name = "Cinema Scope"
width = 2560
height = 1080

[[preset]]
name = "Banner"
width = 1500
height = 500
`)

	presets, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(presets) != 2 {
		t.Fatalf("got %d presets, want 2", len(presets))
	}
	if presets[0].Name != "Cinema Scope" || presets[0].Width != 2560 || presets[0].Height != 1080 {
		t.Errorf("first preset = %+v", presets[0])
	}
}

func TestLoadFileRejectsBadPresets(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing name", "[[preset]]\nwidth = 100\nheight = 100\n"},
		{"zero width", "[[preset]]\nname = \"x\"\nwidth = 0\nheight = 100\n"},
		{"negative height", "[[preset]]\nname = \"x\"\nwidth = 100\nheight = -2\n"},
		{"malformed toml", "[[preset]\nname ="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempPresets(t, tt.content)
			if _, err := LoadFile(path); err == nil {
				t.Error("LoadFile succeeded, want error")
			}
		})
	}
}

func TestLoadMissingFileFallsBackToBuiltIn(t *testing.T) {
	presets, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(presets) != len(BuiltIn()) {
		t.Errorf("got %d presets, want the %d built-ins", len(presets), len(BuiltIn()))
	}
}

func TestLoadAppendsUserPresets(t *testing.T) {
	path := writeTempPresets(t, "[[preset]]\nname = \"Custom\"\nwidth = 800\nheight = 600\n")

	presets, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(presets) != len(BuiltIn())+1 {
		t.Fatalf("got %d presets, want %d", len(presets), len(BuiltIn())+1)
	}
	if _, ok := Find(presets, "Custom"); !ok {
		t.Error("user preset not found after Load")
	}
}

func TestFind(t *testing.T) {
	presets := BuiltIn()
	if _, ok := Find(presets, "HDTV 1080p"); !ok {
		t.Error("HDTV 1080p not found")
	}
	if _, ok := Find(presets, "No Such Preset"); ok {
		t.Error("found a preset that does not exist")
	}
}
