package ui

import (
	"fmt"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"ratiolock/internal/export"
)

// Controls manages the journal export and clear buttons.
type Controls struct {
	exportBtn *widget.Button
	clearBtn  *widget.Button

	historyView *HistoryView
	status      *widget.Label

	container *fyne.Container
}

// NewControls creates the journal control buttons wired to the given view.
func NewControls(hv *HistoryView) *Controls {
	c := &Controls{
		historyView: hv,
		status:      widget.NewLabel(""),
	}

	c.exportBtn = widget.NewButton("Export CSV", c.onExport)
	c.clearBtn = widget.NewButton("Clear", c.onClear)

	c.container = container.NewHBox(c.exportBtn, c.clearBtn, c.status)
	return c
}

// Container returns the controls container.
func (c *Controls) Container() *fyne.Container {
	return c.container
}

func (c *Controls) onClear() {
	c.historyView.Clear()
	c.status.SetText("")
}

func (c *Controls) onExport() {
	records := c.historyView.Records()
	if len(records) == 0 {
		c.status.SetText("No corrections to export.")
		return
	}

	wins := fyne.CurrentApp().Driver().AllWindows()
	if len(wins) == 0 {
		return
	}

	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		if exportErr := export.WriteCSV(path, records); exportErr != nil {
			c.status.SetText(fmt.Sprintf("CSV export error: %v", exportErr))
			return
		}
		c.status.SetText(fmt.Sprintf("Exported %d corrections to %s", len(records), path))

		txtPath := strings.TrimSuffix(path, ".csv") + ".txt"
		if exportErr := export.WriteTXT(txtPath, records); exportErr != nil {
			c.status.SetText(fmt.Sprintf("TXT export error: %v", exportErr))
		}
	}, wins[0])
	fd.SetFileName(export.BuildPath(JournalBaseName, ".csv", time.Now()))
	fd.Show()
}
