package cli

import (
	"flag"
	"fmt"
	"os"
)

// RunnerConfig holds the parameters for a headless lock run.
type RunnerConfig struct {
	Resolution string // initial "WxH" pair the lock engages at
	SetWidth   int    // width edit to apply after engaging (0 = none)
	SetHeight  int    // height edit to apply after engaging (0 = none)
	PresetName string // preset to apply after engaging (both fields at once)
	PresetFile string // optional TOML file with user presets

	ListPresets bool
	OutputCSV   string
	Verbose     bool
}

// ParseFlags parses command-line arguments and returns a RunnerConfig.
// Returns nil config and prints help if no arguments or --help is provided.
func ParseFlags() (*RunnerConfig, error) {
	if len(os.Args) < 2 {
		return nil, nil // No args = use GUI
	}

	if os.Args[1] == "help" || os.Args[1] == "--help" || os.Args[1] == "-h" {
		PrintUsage()
		return nil, nil
	}

	cfg := &RunnerConfig{
		Resolution: "1920x1080",
	}

	fs := flag.NewFlagSet("ratiolock", flag.ContinueOnError)

	fs.StringVar(&cfg.Resolution, "res", cfg.Resolution, "Initial resolution as WxH")
	fs.StringVar(&cfg.Resolution, "resolution", cfg.Resolution, "Initial resolution as WxH")
	fs.IntVar(&cfg.SetWidth, "set-width", 0, "Width edit to apply with the lock engaged")
	fs.IntVar(&cfg.SetHeight, "set-height", 0, "Height edit to apply with the lock engaged")
	fs.StringVar(&cfg.PresetName, "preset", "", "Preset to apply with the lock engaged")
	fs.StringVar(&cfg.PresetFile, "preset-file", "", "TOML file with additional presets")
	fs.BoolVar(&cfg.ListPresets, "presets", false, "List available presets and exit")

	fs.StringVar(&cfg.OutputCSV, "o", "", "Output CSV file for the correction journal")
	fs.StringVar(&cfg.OutputCSV, "output", "", "Output CSV file for the correction journal")
	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, err
	}

	if err := validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		PrintUsage()
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *RunnerConfig) error {
	if cfg.ListPresets {
		return nil
	}
	edits := 0
	if cfg.SetWidth != 0 {
		edits++
	}
	if cfg.SetHeight != 0 {
		edits++
	}
	if cfg.PresetName != "" {
		edits++
	}
	if edits == 0 {
		return fmt.Errorf("must provide one of -set-width, -set-height or -preset (or -presets)")
	}
	if edits > 1 {
		return fmt.Errorf("-set-width, -set-height and -preset are mutually exclusive")
	}
	if cfg.SetWidth < 0 || cfg.SetHeight < 0 {
		return fmt.Errorf("resolution edits must be positive")
	}
	return nil
}

// PrintUsage prints the help message.
func PrintUsage() {
	fmt.Fprintf(os.Stderr, `Aspect Ratio Lock Tool

Usage: ratiolock [flags]
       ratiolock help    (show this message)

LOCK MODE:
  -res, -resolution <WxH>  Initial resolution the lock engages at (default: 1920x1080)
  -set-width <px>          Apply a width edit; height is corrected to keep the ratio
  -set-height <px>         Apply a height edit; width is corrected to keep the ratio
  -preset <name>           Apply a preset (writes both fields; width edit wins)

PRESETS:
  -presets                 List available presets and exit
  -preset-file <path>      TOML file with additional [[preset]] entries

OUTPUT:
  -o, -output <file>       Append the correction journal to a CSV file
  -v, -verbose             Print every corrective write

EXAMPLES:
  # Engage at 1920x1080 and change the width; prints the corrected pair
  ratiolock -res 1920x1080 -set-width 1280

  # Same ratio applied to a height edit, journaled to CSV
  ratiolock -res 1920x1080 -set-height 480 -o journal.csv

  # Apply a preset while locked (width takes priority, height is recomputed)
  ratiolock -res 1920x1080 -preset "DCI 4K" -v

Run without flags to open the GUI.
`)
}
