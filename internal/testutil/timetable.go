package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/bell/internal/timetable"
)

// NewTestTimetable returns the built-in timetable.
func NewTestTimetable(t *testing.T) *timetable.Timetable {
	t.Helper()
	tt, err := timetable.Default()
	if err != nil {
		t.Fatalf("loading built-in timetable: %v", err)
	}
	return tt
}

// WriteTimetable writes YAML to a timetable file inside the test's temp dir
// and returns its path.
func WriteTimetable(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "timetable.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing timetable: %v", err)
	}
	return path
}
