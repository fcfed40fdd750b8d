package cli

import "testing"

func TestFreshCollectorIsIdle(t *testing.T) {
	c := NewCollector()
	if c.state() != Idle {
		t.Errorf("expected a fresh Collector to be Idle, got %s", c.state())
	}
}

func TestSingleCompleteStatementIsReady(t *testing.T) {
	c := NewCollector()
	got := c.Feed("int x = 1;")
	if got != Ready {
		t.Errorf("Feed(%q) = %s, want Ready", "int x = 1;", got)
	}
}

func TestOpenBraceStaysCollectingUntilClosed(t *testing.T) {
	c := NewCollector()
	if got := c.Feed("class Animal {"); got != Collecting {
		t.Fatalf("after opening a brace, got %s, want Collecting", got)
	}
	if got := c.Feed("int legs;"); got != Collecting {
		t.Fatalf("mid-block, got %s, want Collecting", got)
	}
	if got := c.Feed("}"); got != Ready {
		t.Errorf("after closing the brace, got %s, want Ready", got)
	}
}

func TestBraceInsideStringLiteralDoesNotAffectDepth(t *testing.T) {
	c := NewCollector()
	got := c.Feed(`print_string("{ not a real brace");`)
	if got != Ready {
		t.Errorf("a brace inside a string literal must not be counted, got %s", got)
	}
}

func TestBraceInsideLineCommentDoesNotAffectDepth(t *testing.T) {
	c := NewCollector()
	got := c.Feed("int x = 1; // { this comment has a brace")
	if got != Ready {
		t.Errorf("a brace inside a line comment must not be counted, got %s", got)
	}
}

func TestNestedBracesRequireAllClosed(t *testing.T) {
	c := NewCollector()
	c.Feed("class Animal {")
	c.Feed("void speak() {")
	if got := c.Feed("}"); got != Collecting {
		t.Fatalf("one closing brace out of two nested opens, got %s, want Collecting", got)
	}
	if got := c.Feed("}"); got != Ready {
		t.Errorf("both braces closed, got %s, want Ready", got)
	}
}

func TestResetReturnsToIdle(t *testing.T) {
	c := NewCollector()
	c.Feed("class Animal {")
	c.Reset()
	if c.state() != Idle {
		t.Errorf("expected Reset to return the Collector to Idle, got %s", c.state())
	}
	if c.Source() != "" {
		t.Errorf("expected Reset to clear the buffered source, got %q", c.Source())
	}
}

func TestSourceJoinsLinesWithNewline(t *testing.T) {
	c := NewCollector()
	c.Feed("int x = 1;")
	c.Feed("int y = 2;")
	want := "int x = 1;\nint y = 2;"
	if c.Source() != want {
		t.Errorf("Source() = %q, want %q", c.Source(), want)
	}
}

func TestWhitespaceOnlyInputStaysIdle(t *testing.T) {
	c := NewCollector()
	got := c.Feed("   ")
	if got != Idle {
		t.Errorf("Feed of whitespace-only input = %s, want Idle", got)
	}
}

func TestStateStringValues(t *testing.T) {
	cases := map[State]string{Idle: "idle", Collecting: "collecting", Ready: "ready"}
	for s, want := range cases {
		if s.String() != want {
			t.Errorf("State(%d).String() = %q, want %q", s, s.String(), want)
		}
	}
}
