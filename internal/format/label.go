package format

import (
	"fmt"
	"strconv"
	"strings"

	"ratiolock/internal/model"
)

// UnlockedLabel is shown in the panel row while the lock is disengaged.
const UnlockedLabel = "Unlocked"

// RatioLabel returns the panel status text: the locked ratio to 4 decimal
// places, or "Unlocked".
func RatioLabel(locked bool, ratio float64) string {
	if !locked {
		return UnlockedLabel
	}
	return fmt.Sprintf("Ratio: %.4f", ratio)
}

// Resolution returns a human-readable "W x H" pair.
func Resolution(w, h int) string {
	return fmt.Sprintf("%d x %d", w, h)
}

// ParseResolution parses a "WxH" pair such as "1920x1080".
func ParseResolution(s string) (w, h int, err error) {
	parts := strings.SplitN(strings.ToLower(strings.TrimSpace(s)), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("resolution must be WxH, got %q", s)
	}
	w, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid width in %q", s)
	}
	h, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid height in %q", s)
	}
	if w < 1 || h < 1 {
		return 0, 0, fmt.Errorf("resolution must be at least 1x1, got %q", s)
	}
	return w, h, nil
}

// FormatRecordHeader returns a header line for journal output.
func FormatRecordHeader() string {
	return fmt.Sprintf("%-20s %-16s %-13s %10s %10s %9s", "Time", "Scene", "Attribute", "From", "To", "Ratio")
}

// FormatRecord produces a single formatted line for a correction record.
func FormatRecord(r *model.ChangeRecord) string {
	return fmt.Sprintf("%-20s %-16s %-13s %10d %10d %9.4f",
		r.Timestamp.Format("2006-01-02 15:04:05"), r.Scene, r.Attr, r.From, r.To, r.Ratio)
}

// FormatJournal produces a formatted multi-line view of a correction
// journal, header included.
func FormatJournal(records []model.ChangeRecord) string {
	var b strings.Builder
	b.WriteString(FormatRecordHeader())
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", 82))
	b.WriteString("\n")
	for i := range records {
		b.WriteString(FormatRecord(&records[i]))
		b.WriteString("\n")
	}
	return b.String()
}
