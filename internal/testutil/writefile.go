package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile drops content into dir under name and returns the full
// path. Intended for test fixtures (configs, documents, attribute
// collections).
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
