package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"ratiolock/internal/format"
	"ratiolock/internal/lock"
	"ratiolock/internal/preset"
	"ratiolock/internal/scene"
)

// FormatPanel is the output-format settings block: resolution fields, a
// preset selector and, once the add-on registers, the aspect lock row at
// the top. It tracks the active scene and reflects corrective writes made
// by the lock controller.
type FormatPanel struct {
	ws   *scene.Workspace
	ctrl *lock.Controller
	sc   *scene.Scene

	widthEntry   *numberEntry
	heightEntry  *numberEntry
	presetSelect *widget.Select
	presets      []preset.Preset

	lockCheck  *widget.Check
	ratioLabel *widget.Label
	lockRow    *fyne.Container

	box   *fyne.Container
	owner scene.Owner

	// refreshing suppresses widget callbacks while the panel mirrors
	// scene state into its widgets.
	refreshing bool
}

// NewFormatPanel creates the panel and subscribes it to resolution
// notifications so corrective writes show up in the fields.
func NewFormatPanel(ws *scene.Workspace, ctrl *lock.Controller, presets []preset.Preset) *FormatPanel {
	p := &FormatPanel{
		ws:      ws,
		ctrl:    ctrl,
		presets: presets,
		owner:   scene.NewOwner(),
	}

	p.widthEntry = newNumberEntry()
	p.widthEntry.OnCommit = func(v int) {
		if p.sc != nil && !p.refreshing {
			p.sc.Render().SetWidth(v)
		}
	}

	p.heightEntry = newNumberEntry()
	p.heightEntry.OnCommit = func(v int) {
		if p.sc != nil && !p.refreshing {
			p.sc.Render().SetHeight(v)
		}
	}

	names := make([]string, len(presets))
	for i, pr := range presets {
		names[i] = pr.Name
	}
	p.presetSelect = widget.NewSelect(names, p.onPresetSelected)
	p.presetSelect.PlaceHolder = "Preset…"

	p.lockCheck = widget.NewCheck("Lock Aspect Ratio", p.onLockToggled)
	p.ratioLabel = widget.NewLabel(format.UnlockedLabel)
	p.lockRow = container.NewHBox(p.lockCheck, p.ratioLabel)

	form := widget.NewForm(
		widget.NewFormItem("Resolution X", p.widthEntry),
		widget.NewFormItem("Resolution Y", p.heightEntry),
		widget.NewFormItem("Preset", p.presetSelect),
	)

	// The lock row is contributed by the add-on through InsertLockRow.
	p.box = container.NewVBox(widget.NewLabel("Format"), form)

	ws.Bus().Subscribe(scene.AttrResolutionX, p.owner, p.onResolutionChange)
	ws.Bus().Subscribe(scene.AttrResolutionY, p.owner, p.onResolutionChange)

	return p
}

// Container returns the panel's root container.
func (p *FormatPanel) Container() *fyne.Container {
	return p.box
}

// SetScene switches the panel to another scene and refreshes every widget
// from its state.
func (p *FormatPanel) SetScene(sc *scene.Scene) {
	p.sc = sc
	p.refresh()
}

// InsertLockRow prepends the lock toggle row to the panel. Called by the
// add-on on register.
func (p *FormatPanel) InsertLockRow() {
	for _, obj := range p.box.Objects {
		if obj == p.lockRow {
			return
		}
	}
	p.box.Objects = append([]fyne.CanvasObject{p.lockRow}, p.box.Objects...)
	p.box.Refresh()
}

// RemoveLockRow removes the lock toggle row. Called by the add-on on
// unregister.
func (p *FormatPanel) RemoveLockRow() {
	for i, obj := range p.box.Objects {
		if obj == p.lockRow {
			p.box.Objects = append(p.box.Objects[:i], p.box.Objects[i+1:]...)
			p.box.Refresh()
			return
		}
	}
}

// Detach clears the panel's bus subscriptions.
func (p *FormatPanel) Detach() {
	p.ws.Bus().ClearByOwner(p.owner)
}

func (p *FormatPanel) onLockToggled(checked bool) {
	if p.sc == nil || p.refreshing {
		return
	}
	p.ctrl.SetLocked(p.sc, checked)
	p.refresh()
}

func (p *FormatPanel) onPresetSelected(name string) {
	if p.sc == nil || p.refreshing || name == "" {
		return
	}
	pr, ok := preset.Find(p.presets, name)
	if !ok {
		return
	}
	// Both fields in one batched write; with the lock engaged the width
	// wins and the height is recomputed.
	p.sc.Render().SetResolution(pr.Width, pr.Height)
}

func (p *FormatPanel) onResolutionChange(sc *scene.Scene, _ scene.Attr) {
	if sc != p.sc {
		return
	}
	p.refresh()
}

func (p *FormatPanel) refresh() {
	if p.sc == nil {
		return
	}
	p.refreshing = true
	defer func() { p.refreshing = false }()

	r := p.sc.Render()
	p.widthEntry.SetValue(r.Width())
	p.heightEntry.SetValue(r.Height())

	st := lock.StateOf(p.sc)
	if st == nil {
		p.lockCheck.SetChecked(false)
		p.ratioLabel.SetText(format.UnlockedLabel)
		return
	}
	p.lockCheck.SetChecked(st.Locked)
	p.ratioLabel.SetText(format.RatioLabel(st.Locked, st.Ratio))
}
