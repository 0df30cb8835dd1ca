package scene

import "github.com/google/uuid"

// Attr identifies a watched render attribute.
type Attr string

const (
	AttrResolutionX Attr = "resolution_x"
	AttrResolutionY Attr = "resolution_y"
)

// Handler is invoked synchronously after a watched attribute's value changes.
type Handler func(sc *Scene, attr Attr)

// Owner groups bus subscriptions so they can be cleared together on teardown.
type Owner = uuid.UUID

// NewOwner returns a fresh subscription owner token.
func NewOwner() Owner {
	return uuid.New()
}

type subscription struct {
	owner Owner
	fn    Handler
}

// Bus delivers attribute-change notifications on the caller's goroutine,
// after the new value has been applied. A handler that writes a watched
// attribute re-enters Notify before the outer call returns; handlers must
// tolerate that.
type Bus struct {
	subs map[Attr][]subscription
}

// NewBus creates an empty notification bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[Attr][]subscription)}
}

// Subscribe registers fn for changes to attr under the given owner token.
func (b *Bus) Subscribe(attr Attr, owner Owner, fn Handler) {
	b.subs[attr] = append(b.subs[attr], subscription{owner: owner, fn: fn})
}

// ClearByOwner removes every subscription registered under owner.
func (b *Bus) ClearByOwner(owner Owner) {
	for attr, list := range b.subs {
		kept := list[:0]
		for _, s := range list {
			if s.owner != owner {
				kept = append(kept, s)
			}
		}
		if len(kept) == 0 {
			delete(b.subs, attr)
		} else {
			b.subs[attr] = kept
		}
	}
}

// Notify calls every handler subscribed to attr. Handlers run in
// subscription order over a snapshot, so subscribing or clearing from
// inside a handler does not affect the dispatch in flight.
func (b *Bus) Notify(sc *Scene, attr Attr) {
	list := b.subs[attr]
	if len(list) == 0 {
		return
	}
	snapshot := make([]subscription, len(list))
	copy(snapshot, list)
	for _, s := range snapshot {
		s.fn(sc, attr)
	}
}
