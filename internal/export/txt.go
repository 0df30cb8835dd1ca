package export

import (
	"fmt"
	"os"

	"ratiolock/internal/format"
	"ratiolock/internal/model"
)

// WriteTXT writes correction records to a text file using formatted output.
func WriteTXT(path string, records []model.ChangeRecord) error {
	out := format.FormatJournal(records)
	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		return fmt.Errorf("write txt file: %w", err)
	}
	return nil
}
