// Package addon wires the resolution lock into a host workspace: it installs
// the lock property type on the scene type, contributes the panel row and
// subscribes the controller to resolution notifications.
package addon

import (
	"fmt"

	"ratiolock/internal/lock"
	"ratiolock/internal/scene"
)

// PanelHook is the slice of host UI the add-on contributes a row to. The
// GUI's format panel implements it; headless callers pass nil.
type PanelHook interface {
	InsertLockRow()
	RemoveLockRow()
}

// Register installs the add-on: the lock property type first, then the
// panel row, then the bus subscriptions. A nil panel skips the UI
// contribution.
func Register(ws *scene.Workspace, ctrl *lock.Controller, panel PanelHook) error {
	if err := ws.RegisterProperty(lock.PropertyName, func() any { return lock.NewState() }); err != nil {
		return fmt.Errorf("register lock property: %w", err)
	}
	if panel != nil {
		panel.InsertLockRow()
	}
	ctrl.Subscribe(ws.Bus())
	return nil
}

// Unregister reverses Register in the opposite order: subscriptions, panel
// row, property type.
func Unregister(ws *scene.Workspace, ctrl *lock.Controller, panel PanelHook) {
	ctrl.Unsubscribe(ws.Bus())
	if panel != nil {
		panel.RemoveLockRow()
	}
	ws.UnregisterProperty(lock.PropertyName)
}
