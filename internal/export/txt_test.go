package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteTXT(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.txt")

	if err := WriteTXT(path, sampleRecords()); err != nil {
		t.Fatalf("WriteTXT: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read txt: %v", err)
	}
	out := string(data)

	for _, want := range []string{"Scene.001", "resolution_y", "1080", "720", "Attribute"} {
		if !strings.Contains(out, want) {
			t.Errorf("txt output missing %q:\n%s", want, out)
		}
	}
}
