package lock

// PropertyName is the key under which the lock state is attached to scenes.
const PropertyName = "ratio_lock"

// State is the per-scene lock record, created and destroyed with its scene.
// It is mutated only through the Controller; the UI reads it and calls
// Controller.SetLocked, never writes fields directly.
type State struct {
	Locked bool
	// Ratio is width divided by height, captured once when the lock
	// engages.
	Ratio float64

	// Last observed pair, used to detect which field the user touched.
	prevWidth  int
	prevHeight int
}

// NewState returns an unlocked state with a 1:1 ratio baseline.
func NewState() *State {
	return &State{Ratio: 1.0}
}
