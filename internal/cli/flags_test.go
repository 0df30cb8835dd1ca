package cli

import (
	"os"
	"testing"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	old := os.Args
	os.Args = append([]string{"ratiolock"}, args...)
	t.Cleanup(func() { os.Args = old })
}

func TestParseFlagsNoArgsMeansGUI(t *testing.T) {
	withArgs(t)
	cfg, err := ParseFlags()
	if err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if cfg != nil {
		t.Errorf("cfg = %+v, want nil (GUI mode)", cfg)
	}
}

func TestParseFlagsHelp(t *testing.T) {
	withArgs(t, "--help")
	cfg, err := ParseFlags()
	if err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if cfg != nil {
		t.Errorf("cfg = %+v, want nil after help", cfg)
	}
}

func TestParseFlagsWidthEdit(t *testing.T) {
	withArgs(t, "-res", "1920x1080", "-set-width", "1280", "-v")
	cfg, err := ParseFlags()
	if err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if cfg.Resolution != "1920x1080" || cfg.SetWidth != 1280 || !cfg.Verbose {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     RunnerConfig
		wantErr bool
	}{
		{"width edit", RunnerConfig{SetWidth: 1280}, false},
		{"height edit", RunnerConfig{SetHeight: 720}, false},
		{"preset", RunnerConfig{PresetName: "HDTV 1080p"}, false},
		{"list presets only", RunnerConfig{ListPresets: true}, false},
		{"no edit", RunnerConfig{}, true},
		{"width and height", RunnerConfig{SetWidth: 1, SetHeight: 1}, true},
		{"width and preset", RunnerConfig{SetWidth: 1, PresetName: "x"}, true},
		{"negative width", RunnerConfig{SetWidth: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(&tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
