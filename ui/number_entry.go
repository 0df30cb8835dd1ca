package ui

import (
	"strconv"

	"fyne.io/fyne/v2/widget"
)

// numberEntry is an Entry that accepts only digits and commits its value on
// Enter or focus loss, the way the host's numeric fields confirm edits.
type numberEntry struct {
	widget.Entry

	// OnCommit receives the parsed value when the user confirms an edit.
	OnCommit func(v int)
}

func newNumberEntry() *numberEntry {
	e := &numberEntry{}
	e.ExtendBaseWidget(e)
	e.OnSubmitted = func(string) { e.commit() }
	return e
}

// TypedRune blocks everything but digits.
func (e *numberEntry) TypedRune(r rune) {
	if r < '0' || r > '9' {
		return
	}
	e.Entry.TypedRune(r)
}

// FocusLost commits the pending edit, matching spinner-style fields that
// apply on defocus.
func (e *numberEntry) FocusLost() {
	e.Entry.FocusLost()
	e.commit()
}

// SetValue replaces the entry text without triggering a commit.
func (e *numberEntry) SetValue(v int) {
	e.SetText(strconv.Itoa(v))
}

func (e *numberEntry) commit() {
	if e.OnCommit == nil {
		return
	}
	v, err := strconv.Atoi(e.Text)
	if err != nil {
		return
	}
	e.OnCommit(v)
}
