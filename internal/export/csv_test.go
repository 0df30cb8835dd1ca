package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"ratiolock/internal/model"
)

func sampleRecords() []model.ChangeRecord {
	return []model.ChangeRecord{
		{
			Timestamp: time.Date(2026, 2, 13, 12, 0, 0, 0, time.UTC),
			Scene:     "Scene",
			Attr:      "resolution_y",
			From:      1080,
			To:        720,
			Ratio:     1920.0 / 1080.0,
		},
		{
			Timestamp: time.Date(2026, 2, 13, 12, 5, 0, 0, time.UTC),
			Scene:     "Scene.001",
			Attr:      "resolution_x",
			From:      1000,
			To:        960,
			Ratio:     1920.0 / 1080.0,
		},
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open csv: %v", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	return rows
}

func TestWriteCSVCreatesWithHeaders(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.csv")

	if err := WriteCSV(path, sampleRecords()); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	rows := readCSV(t, path)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3 (header + 2 records)", len(rows))
	}
	if rows[0][0] != "date" || rows[0][3] != "attribute" {
		t.Errorf("unexpected header row: %v", rows[0])
	}

	first := rows[1]
	want := []string{"13.02.2026", "12:00:00", "Scene", "resolution_y", "1080", "720", "-360", "1.77778"}
	for i, v := range want {
		if first[i] != v {
			t.Errorf("row[1][%d] = %q, want %q", i, first[i], v)
		}
	}
}

func TestWriteCSVAppendsWithoutDuplicateHeaders(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.csv")
	records := sampleRecords()

	if err := WriteCSV(path, records[:1]); err != nil {
		t.Fatalf("first WriteCSV: %v", err)
	}
	if err := WriteCSV(path, records[1:]); err != nil {
		t.Fatalf("second WriteCSV: %v", err)
	}

	rows := readCSV(t, path)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3 (one header + 2 records)", len(rows))
	}
	for _, row := range rows[1:] {
		if row[0] == "date" {
			t.Error("header row duplicated on append")
		}
	}
}
