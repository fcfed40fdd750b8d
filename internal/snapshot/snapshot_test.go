package snapshot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.yaml")

	defs := []string{
		"class Animal { int legs; }",
		"class Dog : public Animal { }",
	}
	if err := Save(path, defs); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got) != len(defs) {
		t.Fatalf("got %d definitions, want %d", len(got), len(defs))
	}
	for i := range defs {
		if got[i] != defs[i] {
			t.Errorf("definition %d = %q, want %q", i, got[i], defs[i])
		}
	}
}

func TestSaveWritesHumanReadableCount(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.yaml")

	if err := Save(path, []string{"a", "b", "c"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading raw file failed: %v", err)
	}
	if !strings.Contains(string(data), "count: 3") {
		t.Errorf("expected the saved document to record count: 3, got:\n%s", data)
	}
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("expected Load on a missing file to return an error")
	}
}
