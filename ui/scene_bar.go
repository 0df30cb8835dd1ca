package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"ratiolock/internal/scene"
)

// SceneBar lets the user switch between scenes and create new ones. Each
// scene carries its own lock state.
type SceneBar struct {
	ws       *scene.Workspace
	sel      *widget.Select
	addBtn   *widget.Button
	box      *fyne.Container
	onSelect func(sc *scene.Scene)
	counter  int
}

// NewSceneBar creates the bar; onSelect fires whenever the active scene
// changes, including after creating a new one.
func NewSceneBar(ws *scene.Workspace, onSelect func(sc *scene.Scene)) *SceneBar {
	sb := &SceneBar{ws: ws, onSelect: onSelect}

	sb.sel = widget.NewSelect(nil, func(name string) {
		if sc := ws.Scene(name); sc != nil && sb.onSelect != nil {
			sb.onSelect(sc)
		}
	})
	sb.addBtn = widget.NewButton("New Scene", sb.onAdd)

	sb.box = container.NewBorder(nil, nil, widget.NewLabel("Scene"), sb.addBtn, sb.sel)
	sb.Reload()
	return sb
}

// Container returns the bar's root container.
func (sb *SceneBar) Container() *fyne.Container {
	return sb.box
}

// Reload refreshes the scene list from the workspace and keeps the current
// selection when it still exists.
func (sb *SceneBar) Reload() {
	scenes := sb.ws.Scenes()
	names := make([]string, len(scenes))
	for i, sc := range scenes {
		names[i] = sc.Name()
	}
	selected := sb.sel.Selected
	sb.sel.Options = names
	if sb.ws.Scene(selected) == nil && len(names) > 0 {
		selected = names[0]
	}
	sb.sel.SetSelected(selected)
	sb.sel.Refresh()
}

// Select makes the given scene the active one.
func (sb *SceneBar) Select(sc *scene.Scene) {
	sb.sel.SetSelected(sc.Name())
}

func (sb *SceneBar) onAdd() {
	sb.counter++
	name := fmt.Sprintf("Scene.%03d", sb.counter)
	for sb.ws.Scene(name) != nil {
		sb.counter++
		name = fmt.Sprintf("Scene.%03d", sb.counter)
	}
	sc := sb.ws.NewScene(name)
	sb.Reload()
	sb.Select(sc)
}
