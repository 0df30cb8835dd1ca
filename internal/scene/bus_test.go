package scene

import "testing"

func TestNotifyCallsSubscribersInOrder(t *testing.T) {
	b := NewBus()
	owner := NewOwner()
	var calls []string

	b.Subscribe(AttrResolutionX, owner, func(*Scene, Attr) { calls = append(calls, "first") })
	b.Subscribe(AttrResolutionX, owner, func(*Scene, Attr) { calls = append(calls, "second") })

	b.Notify(nil, AttrResolutionX)

	if len(calls) != 2 || calls[0] != "first" || calls[1] != "second" {
		t.Errorf("calls = %v, want [first second]", calls)
	}
}

func TestNotifyOtherAttrNotDelivered(t *testing.T) {
	b := NewBus()
	called := false
	b.Subscribe(AttrResolutionX, NewOwner(), func(*Scene, Attr) { called = true })

	b.Notify(nil, AttrResolutionY)

	if called {
		t.Error("resolution_x handler called for resolution_y notification")
	}
}

func TestClearByOwnerRemovesOnlyThatOwner(t *testing.T) {
	b := NewBus()
	mine := NewOwner()
	other := NewOwner()

	var mineCalls, otherCalls int
	b.Subscribe(AttrResolutionX, mine, func(*Scene, Attr) { mineCalls++ })
	b.Subscribe(AttrResolutionY, mine, func(*Scene, Attr) { mineCalls++ })
	b.Subscribe(AttrResolutionX, other, func(*Scene, Attr) { otherCalls++ })

	b.ClearByOwner(mine)
	b.Notify(nil, AttrResolutionX)
	b.Notify(nil, AttrResolutionY)

	if mineCalls != 0 {
		t.Errorf("cleared owner received %d calls, want 0", mineCalls)
	}
	if otherCalls != 1 {
		t.Errorf("other owner received %d calls, want 1", otherCalls)
	}
}

func TestSubscribeDuringDispatchNotInvokedInFlight(t *testing.T) {
	b := NewBus()
	owner := NewOwner()
	lateCalls := 0

	b.Subscribe(AttrResolutionX, owner, func(*Scene, Attr) {
		b.Subscribe(AttrResolutionX, owner, func(*Scene, Attr) { lateCalls++ })
	})

	b.Notify(nil, AttrResolutionX)
	if lateCalls != 0 {
		t.Errorf("late subscriber called %d times during its own registration dispatch", lateCalls)
	}

	b.Notify(nil, AttrResolutionX)
	if lateCalls != 1 {
		t.Errorf("late subscriber called %d times on next dispatch, want 1", lateCalls)
	}
}

func TestReentrantNotifyFromHandler(t *testing.T) {
	b := NewBus()
	owner := NewOwner()

	depth := 0
	var yCalls int
	b.Subscribe(AttrResolutionX, owner, func(sc *Scene, _ Attr) {
		if depth == 0 {
			depth++
			b.Notify(sc, AttrResolutionY) // corrective write-back
		}
	})
	b.Subscribe(AttrResolutionY, owner, func(*Scene, Attr) { yCalls++ })

	b.Notify(nil, AttrResolutionX)

	if yCalls != 1 {
		t.Errorf("nested notify delivered %d times, want 1", yCalls)
	}
}
