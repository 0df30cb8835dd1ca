package cli

import (
	"fmt"

	"ratiolock/internal/addon"
	"ratiolock/internal/export"
	"ratiolock/internal/format"
	"ratiolock/internal/lock"
	"ratiolock/internal/model"
	"ratiolock/internal/preset"
	"ratiolock/internal/scene"
)

// Result holds the outcome of a headless lock run.
type Result struct {
	Width   int
	Height  int
	Ratio   float64
	Records []model.ChangeRecord
}

// LockRunner builds a one-scene workspace, engages the lock at the initial
// resolution, applies the requested edit and returns the corrected pair.
func LockRunner(cfg RunnerConfig) (*Result, error) {
	w0, h0, err := format.ParseResolution(cfg.Resolution)
	if err != nil {
		return nil, err
	}

	ws := scene.NewWorkspace()
	ctrl := lock.New(nil)
	if err := addon.Register(ws, ctrl, nil); err != nil {
		return nil, err
	}

	sc := ws.NewScene("Scene")
	sc.Render().SetResolution(w0, h0)

	var records []model.ChangeRecord
	ctrl.SetRecorder(func(r model.ChangeRecord) { records = append(records, r) })
	ctrl.SetLocked(sc, true)

	switch {
	case cfg.PresetName != "":
		presets, err := preset.Load(cfg.PresetFile)
		if err != nil {
			return nil, err
		}
		p, ok := preset.Find(presets, cfg.PresetName)
		if !ok {
			return nil, fmt.Errorf("unknown preset %q", cfg.PresetName)
		}
		sc.Render().SetResolution(p.Width, p.Height)
	case cfg.SetWidth > 0:
		sc.Render().SetWidth(cfg.SetWidth)
	case cfg.SetHeight > 0:
		sc.Render().SetHeight(cfg.SetHeight)
	}

	st := lock.StateOf(sc)
	res := &Result{
		Width:   sc.Render().Width(),
		Height:  sc.Render().Height(),
		Ratio:   st.Ratio,
		Records: records,
	}

	if cfg.OutputCSV != "" && len(records) > 0 {
		if err := export.EnsureDir(cfg.OutputCSV); err != nil {
			return nil, err
		}
		if err := export.WriteCSV(cfg.OutputCSV, records); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// PrintResult prints a lock run outcome to stdout. With verbose set, every
// corrective write is listed.
func PrintResult(res *Result, verbose bool) {
	fmt.Printf("Resolution:   %s\n", format.Resolution(res.Width, res.Height))
	fmt.Printf("Locked ratio: %.4f\n", res.Ratio)
	if len(res.Records) == 0 {
		fmt.Println("No correction was needed.")
	} else if verbose {
		fmt.Println()
		fmt.Print(format.FormatJournal(res.Records))
	} else {
		fmt.Printf("Corrections:  %d\n", len(res.Records))
	}
}

// PrintPresets lists built-in and user presets to stdout.
func PrintPresets(cfg RunnerConfig) error {
	presets, err := preset.Load(cfg.PresetFile)
	if err != nil {
		return err
	}
	for _, p := range presets {
		fmt.Printf("%-22s %s\n", p.Name, format.Resolution(p.Width, p.Height))
	}
	return nil
}
