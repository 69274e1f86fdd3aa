package parser

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

// writeContainer assembles an xlsx-shaped zip from entry name to XML body
// and returns its path.
func writeContainer(t *testing.T, entries map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fixture.xlsx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create fixture: %v", err)
	}
	zw := zip.NewWriter(f)
	for name, body := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create entry %s: %v", name, err)
		}
		if _, err := w.Write([]byte(body)); err != nil {
			t.Fatalf("write entry %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close fixture: %v", err)
	}
	return path
}

// openFixture opens a container over the given entries and closes it when
// the test ends.
func openFixture(t *testing.T, entries map[string]string) *Container {
	t.Helper()

	c, err := OpenContainer(writeContainer(t, entries))
	if err != nil {
		t.Fatalf("open fixture container: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}
