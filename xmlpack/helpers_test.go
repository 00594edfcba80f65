package xmlpack

import (
	"os"
	"testing"
)

// writeTempZip writes data to a temp file and returns its path, for tests
// that exercise LoadZipFile's file-based entry point.
func writeTempZip(t *testing.T, data []byte) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "*.zip")
	if err != nil {
		t.Fatalf("create temp zip: %v", err)
	}
	defer f.Close()
	if _, err := f.Write(data); err != nil {
		t.Fatalf("write temp zip: %v", err)
	}
	return f.Name()
}
