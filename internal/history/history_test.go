package history

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "history.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndRecentOrdersMostRecentFirst(t *testing.T) {
	s := openTestStore(t)

	if err := s.Record("int x = 1;", "statements", "ok", 100); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := s.Record("class Animal { }", "definition", "ok", 200); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	entries, err := s.Recent(10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Text != "class Animal { }" {
		t.Errorf("expected most recent entry first, got %q", entries[0].Text)
	}
	if entries[1].Text != "int x = 1;" {
		t.Errorf("expected oldest entry last, got %q", entries[1].Text)
	}
}

func TestRecentRespectsLimit(t *testing.T) {
	s := openTestStore(t)
	for i := 0; i < 5; i++ {
		if err := s.Record("stmt", "statements", "ok", int64(i)); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}
	entries, err := s.Recent(2)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("got %d entries, want 2", len(entries))
	}
}

func TestSearchFindsSubstringMatches(t *testing.T) {
	s := openTestStore(t)
	s.Record("class Animal { int legs; }", "definition", "ok", 1)
	s.Record("class Dog : public Animal { }", "definition", "ok", 2)
	s.Record("int x = 1;", "statements", "ok", 3)

	entries, err := s.Search("Animal")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d matches, want 2", len(entries))
	}
	for _, e := range entries {
		if !contains(e.Text, "Animal") {
			t.Errorf("entry %q does not contain the search substring", e.Text)
		}
	}
}

func TestSearchNoMatchesReturnsEmpty(t *testing.T) {
	s := openTestStore(t)
	s.Record("int x = 1;", "statements", "ok", 1)

	entries, err := s.Search("nonexistent")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d matches, want 0", len(entries))
	}
}

func TestEntryFormatLineIncludesOutcomeAndText(t *testing.T) {
	e := Entry{ID: 1, Text: "int x = 1;", Kind: "statements", Outcome: "ok", When: Now()}
	line := e.FormatLine()
	if !contains(line, "int x = 1;") || !contains(line, "ok") {
		t.Errorf("FormatLine() = %q, expected it to mention the text and outcome", line)
	}
}

func contains(haystack, needle string) bool {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return true
		}
	}
	return false
}
