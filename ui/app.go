package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"ratiolock/internal/addon"
	"ratiolock/internal/lock"
	"ratiolock/internal/model"
	"ratiolock/internal/preset"
	"ratiolock/internal/scene"
)

// userPresetFile is picked up from the working directory when present.
const userPresetFile = "presets.toml"

// BuildMainWindow creates and configures the main application window.
func BuildMainWindow(app fyne.App) fyne.Window {
	win := app.NewWindow("Render Settings")
	win.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	ws := scene.NewWorkspace()
	ctrl := lock.New(nil)

	presets, err := preset.Load(userPresetFile)
	if err != nil {
		slog.Error("user presets ignored", "err", err)
		presets = preset.BuiltIn()
	}

	historyView := NewHistoryView()
	ctrl.SetRecorder(func(r model.ChangeRecord) { historyView.AddRecord(r) })

	panel := NewFormatPanel(ws, ctrl, presets)
	if err := addon.Register(ws, ctrl, panel); err != nil {
		slog.Error("add-on registration failed", "err", err)
	}

	sc := ws.NewScene("Scene")
	prefs := app.Preferences()
	loadPreferences(prefs, ctrl, sc)

	sceneBar := NewSceneBar(ws, panel.SetScene)
	sceneBar.Select(sc)
	controls := NewControls(historyView)

	top := container.NewVBox(sceneBar.Container(), panel.Container(), controls.Container())
	content := container.NewVSplit(top, historyView.Container())
	content.SetOffset(MainSplitOffset)

	win.SetContent(content)

	win.SetCloseIntercept(func() {
		savePreferences(prefs, sc)
		addon.Unregister(ws, ctrl, panel)
		panel.Detach()
		win.Close()
	})

	return win
}

// loadPreferences restores the startup scene's resolution and lock state
// from the host's preference store.
func loadPreferences(prefs fyne.Preferences, ctrl *lock.Controller, sc *scene.Scene) {
	w := prefs.IntWithFallback("scene.resolution_x", sc.Render().Width())
	h := prefs.IntWithFallback("scene.resolution_y", sc.Render().Height())
	sc.Render().SetResolution(w, h)
	if prefs.Bool("scene.is_locked") {
		ctrl.SetLocked(sc, true)
	}
}

// savePreferences persists the startup scene's resolution and lock state.
func savePreferences(prefs fyne.Preferences, sc *scene.Scene) {
	prefs.SetInt("scene.resolution_x", sc.Render().Width())
	prefs.SetInt("scene.resolution_y", sc.Render().Height())
	locked := false
	if st := lock.StateOf(sc); st != nil {
		locked = st.Locked
	}
	prefs.SetBool("scene.is_locked", locked)
}
