package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"ratiolock/internal/model"
)

var csvHeaders = []string{
	"date",
	"time",
	"scene",
	"attribute",
	"from",
	"to",
	"delta",
	"ratio",
}

// WriteCSV writes correction records to a CSV file (semicolon-separated),
// creating it with headers if it doesn't exist, or appending rows if it does.
func WriteCSV(path string, records []model.ChangeRecord) error {
	exists := fileExists(path)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = ';'
	defer w.Flush()

	if !exists {
		if err := w.Write(csvHeaders); err != nil {
			return fmt.Errorf("write csv headers: %w", err)
		}
	}

	for i := range records {
		r := &records[i]
		row := []string{
			r.Timestamp.Format("02.01.2006"),
			r.Timestamp.Format("15:04:05"),
			r.Scene,
			r.Attr,
			strconv.Itoa(r.From),
			strconv.Itoa(r.To),
			strconv.Itoa(r.Delta()),
			fmt.Sprintf("%.5f", r.Ratio),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	return nil
}
