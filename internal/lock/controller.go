package lock

import (
	"log/slog"
	"math"
	"time"

	"ratiolock/internal/model"
	"ratiolock/internal/scene"
)

// Controller keeps a scene's render width and height in a fixed ratio while
// the scene's lock state is engaged. It subscribes to resolution-change
// notifications and issues at most one corrective write per external edit.
//
// The controller runs entirely on the host's event dispatch: notifications
// arrive synchronously, including the re-entrant one caused by its own
// corrective write.
type Controller struct {
	owner scene.Owner
	log   *slog.Logger

	// correcting marks a write issued by the controller itself so the
	// resulting notification is not treated as a user edit. It is scoped
	// to the controller rather than process-global; the last-observed
	// comparison remains the primary change detector.
	correcting bool

	onCorrection func(model.ChangeRecord)
}

// New creates a controller. A nil logger falls back to slog.Default.
func New(logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		owner: scene.NewOwner(),
		log:   logger,
	}
}

// Owner returns the token under which the controller's bus subscriptions
// are registered.
func (c *Controller) Owner() scene.Owner {
	return c.owner
}

// SetRecorder installs a hook that receives one record per corrective
// write. Pass nil to disable recording.
func (c *Controller) SetRecorder(fn func(model.ChangeRecord)) {
	c.onCorrection = fn
}

// Subscribe registers the controller's change handler for both resolution
// attributes under its owner token.
func (c *Controller) Subscribe(b *scene.Bus) {
	b.Subscribe(scene.AttrResolutionX, c.owner, c.onResolutionChange)
	b.Subscribe(scene.AttrResolutionY, c.owner, c.onResolutionChange)
}

// Unsubscribe clears every subscription held under the controller's owner
// token.
func (c *Controller) Unsubscribe(b *scene.Bus) {
	b.ClearByOwner(c.owner)
}

// StateOf returns the scene's lock state, or nil when the lock property
// type is not attached.
func StateOf(sc *scene.Scene) *State {
	st, _ := sc.Property(PropertyName).(*State)
	return st
}

// SetLocked toggles the lock for sc. Engaging captures the current aspect
// ratio; with a zero height the ratio defaults to 1:1 and a nonzero width
// is mirrored into the height to establish the baseline.
func (c *Controller) SetLocked(sc *scene.Scene, locked bool) {
	st := StateOf(sc)
	if st == nil || c.correcting {
		return
	}

	engaging := locked && !st.Locked
	st.Locked = locked
	r := sc.Render()

	if engaging {
		if r.Height() != 0 {
			st.Ratio = float64(r.Width()) / float64(r.Height())
		} else {
			st.Ratio = 1.0
			if r.Width() != 0 {
				c.write(func() { r.SetHeight(r.Width()) })
			}
		}
	}

	st.prevWidth, st.prevHeight = r.Width(), r.Height()
}

func (c *Controller) onResolutionChange(sc *scene.Scene, attr scene.Attr) {
	st := StateOf(sc)
	if st == nil {
		return
	}
	r := sc.Render()

	if c.correcting {
		// Write-back from our own correction, not a user edit.
		st.prevWidth, st.prevHeight = r.Width(), r.Height()
		return
	}

	if !st.Locked {
		// Keep the baseline current for a future lock-engage.
		st.prevWidth, st.prevHeight = r.Width(), r.Height()
		return
	}

	changedX := r.Width() != st.prevWidth
	changedY := r.Height() != st.prevHeight
	if !changedX && !changedY {
		return
	}

	c.correct(sc, st, changedX, attr)

	// Refresh after the correction so the next notification diffs against
	// the adjusted pair.
	st.prevWidth, st.prevHeight = r.Width(), r.Height()
}

// correct issues at most one corrective write. When both fields look
// changed in a single notification the width edit wins and only the height
// is recomputed. Failures inside the write path are logged and swallowed;
// the notification handler never propagates them.
func (c *Controller) correct(sc *scene.Scene, st *State, changedX bool, attr scene.Attr) {
	defer func() {
		if p := recover(); p != nil {
			c.log.Error("corrective resolution write failed",
				"scene", sc.Name(), "attr", string(attr), "panic", p)
		}
	}()

	r := sc.Render()
	if changedX {
		if st.Ratio == 0 {
			return
		}
		newHeight := clampDim(int(math.Round(float64(r.Width()) / st.Ratio)))
		if newHeight != r.Height() {
			c.record(sc, scene.AttrResolutionY, r.Height(), newHeight, st.Ratio)
			c.write(func() { r.SetHeight(newHeight) })
		}
		return
	}

	newWidth := clampDim(int(math.Round(float64(r.Height()) * st.Ratio)))
	if newWidth != r.Width() {
		c.record(sc, scene.AttrResolutionX, r.Width(), newWidth, st.Ratio)
		c.write(func() { r.SetWidth(newWidth) })
	}
}

// write runs fn with the internal-write flag set, so the notification the
// write triggers is recognized as the controller's own.
func (c *Controller) write(fn func()) {
	c.correcting = true
	defer func() { c.correcting = false }()
	fn()
}

func (c *Controller) record(sc *scene.Scene, attr scene.Attr, from, to int, ratio float64) {
	if c.onCorrection == nil {
		return
	}
	c.onCorrection(model.ChangeRecord{
		Timestamp: time.Now(),
		Scene:     sc.Name(),
		Attr:      string(attr),
		From:      from,
		To:        to,
		Ratio:     ratio,
	})
}

// clampDim floors a computed dimension at 1 so corrections never produce a
// degenerate resolution.
func clampDim(v int) int {
	if v < 1 {
		return 1
	}
	return v
}
