package scene

import "fmt"

// Default resolution for newly created scenes.
const (
	DefaultWidth  = 1920
	DefaultHeight = 1080
)

// Workspace owns the open scenes, the notification bus and the set of
// property types attached to the scene type.
type Workspace struct {
	bus       *Bus
	scenes    []*Scene
	propTypes map[string]func() any
}

// NewWorkspace creates a workspace with an empty scene list.
func NewWorkspace() *Workspace {
	return &Workspace{
		bus:       NewBus(),
		propTypes: make(map[string]func() any),
	}
}

// Bus returns the workspace notification bus.
func (w *Workspace) Bus() *Bus {
	return w.bus
}

// NewScene creates a scene with default render settings. Instances of every
// registered property type are created with it.
func (w *Workspace) NewScene(name string) *Scene {
	sc := &Scene{
		name:  name,
		ws:    w,
		props: make(map[string]any),
	}
	sc.render = &RenderSettings{scene: sc, width: DefaultWidth, height: DefaultHeight}
	for propName, factory := range w.propTypes {
		sc.props[propName] = factory()
	}
	w.scenes = append(w.scenes, sc)
	return sc
}

// RemoveScene destroys sc along with its property instances.
func (w *Workspace) RemoveScene(sc *Scene) {
	for i, s := range w.scenes {
		if s == sc {
			w.scenes = append(w.scenes[:i], w.scenes[i+1:]...)
			break
		}
	}
	sc.props = nil
	sc.ws = nil
}

// Scenes returns the open scenes in creation order.
func (w *Workspace) Scenes() []*Scene {
	out := make([]*Scene, len(w.scenes))
	copy(out, w.scenes)
	return out
}

// Scene returns the scene with the given name, or nil if there is none.
func (w *Workspace) Scene(name string) *Scene {
	for _, sc := range w.scenes {
		if sc.name == name {
			return sc
		}
	}
	return nil
}

// RegisterProperty attaches a named property type to the scene type. Every
// scene, current and future, gets its own instance built by factory.
func (w *Workspace) RegisterProperty(name string, factory func() any) error {
	if _, ok := w.propTypes[name]; ok {
		return fmt.Errorf("property type %q already registered", name)
	}
	w.propTypes[name] = factory
	for _, sc := range w.scenes {
		sc.props[name] = factory()
	}
	return nil
}

// UnregisterProperty detaches a property type and removes its instances
// from all scenes. Unknown names are ignored.
func (w *Workspace) UnregisterProperty(name string) {
	delete(w.propTypes, name)
	for _, sc := range w.scenes {
		delete(sc.props, name)
	}
}

// Scene is one document in the workspace. Its render settings are watched
// through the workspace bus.
type Scene struct {
	name   string
	ws     *Workspace
	render *RenderSettings
	props  map[string]any
}

// Name returns the scene name.
func (s *Scene) Name() string {
	return s.name
}

// Render returns the scene's render settings.
func (s *Scene) Render() *RenderSettings {
	return s.render
}

// Property returns the scene's instance of a registered property type, or
// nil when no such type is attached.
func (s *Scene) Property(name string) any {
	return s.props[name]
}

// RenderSettings holds a scene's output resolution. Setters notify the
// workspace bus synchronously after the new value is applied, mirroring how
// the host fires property-change notifications.
type RenderSettings struct {
	scene  *Scene
	width  int
	height int
}

// Width returns the render width in pixels.
func (r *RenderSettings) Width() int {
	return r.width
}

// Height returns the render height in pixels.
func (r *RenderSettings) Height() int {
	return r.height
}

// SetWidth applies w and notifies resolution_x subscribers. Negative values
// are floored at zero; minimum-1 enforcement on corrections belongs to the
// lock controller, not the settings record.
func (r *RenderSettings) SetWidth(w int) {
	if w < 0 {
		w = 0
	}
	r.width = w
	r.notify(AttrResolutionX)
}

// SetHeight applies h and notifies resolution_y subscribers.
func (r *RenderSettings) SetHeight(h int) {
	if h < 0 {
		h = 0
	}
	r.height = h
	r.notify(AttrResolutionY)
}

// SetResolution applies both dimensions before either notification fires,
// the way preset application batches its writes. Width is notified first,
// so listeners that tie-break by attribute see the width edit take priority.
func (r *RenderSettings) SetResolution(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	r.width = w
	r.height = h
	r.notify(AttrResolutionX)
	r.notify(AttrResolutionY)
}

func (r *RenderSettings) notify(attr Attr) {
	if r.scene == nil || r.scene.ws == nil {
		return
	}
	r.scene.ws.bus.Notify(r.scene, attr)
}
