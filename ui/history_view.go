package ui

import (
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"ratiolock/internal/model"
)

var historyColumns = []string{"Time", "Scene", "Attribute", "From", "To", "Ratio"}

// HistoryView displays the journal of corrective writes as a table.
type HistoryView struct {
	mu      sync.Mutex
	records []model.ChangeRecord
	table   *widget.Table
}

// NewHistoryView creates an empty journal table.
func NewHistoryView() *HistoryView {
	hv := &HistoryView{}

	hv.table = widget.NewTable(
		hv.tableSize,
		hv.createCell,
		hv.updateCell,
	)

	hv.table.SetColumnWidth(0, 160) // Time
	hv.table.SetColumnWidth(1, 110) // Scene
	hv.table.SetColumnWidth(2, 110) // Attribute
	hv.table.SetColumnWidth(3, 70)  // From
	hv.table.SetColumnWidth(4, 70)  // To
	hv.table.SetColumnWidth(5, 80)  // Ratio

	return hv
}

// Container returns the table widget.
func (hv *HistoryView) Container() *widget.Table {
	return hv.table
}

// AddRecord appends a correction record to the journal.
func (hv *HistoryView) AddRecord(r model.ChangeRecord) {
	hv.mu.Lock()
	hv.records = append(hv.records, r)
	hv.mu.Unlock()
	hv.table.Refresh()
}

// Records returns a copy of all stored records.
func (hv *HistoryView) Records() []model.ChangeRecord {
	hv.mu.Lock()
	defer hv.mu.Unlock()
	out := make([]model.ChangeRecord, len(hv.records))
	copy(out, hv.records)
	return out
}

// Clear drops all stored records.
func (hv *HistoryView) Clear() {
	hv.mu.Lock()
	hv.records = nil
	hv.mu.Unlock()
	hv.table.Refresh()
}

func (hv *HistoryView) tableSize() (rows int, cols int) {
	hv.mu.Lock()
	defer hv.mu.Unlock()
	return len(hv.records) + 1, len(historyColumns) // +1 for header
}

func (hv *HistoryView) createCell() fyne.CanvasObject {
	return widget.NewLabel("")
}

func (hv *HistoryView) updateCell(id widget.TableCellID, obj fyne.CanvasObject) {
	label := obj.(*widget.Label)

	if id.Row == 0 {
		label.SetText(historyColumns[id.Col])
		label.TextStyle = fyne.TextStyle{Bold: true}
		return
	}

	hv.mu.Lock()
	defer hv.mu.Unlock()

	idx := id.Row - 1
	if idx >= len(hv.records) {
		label.SetText("")
		return
	}

	r := hv.records[idx]
	label.TextStyle = fyne.TextStyle{}

	switch id.Col {
	case 0:
		label.SetText(r.Timestamp.Format("2006-01-02 15:04:05"))
	case 1:
		label.SetText(r.Scene)
	case 2:
		label.SetText(r.Attr)
	case 3:
		label.SetText(fmt.Sprintf("%d", r.From))
	case 4:
		label.SetText(fmt.Sprintf("%d", r.To))
	case 5:
		label.SetText(fmt.Sprintf("%.4f", r.Ratio))
	}
}
