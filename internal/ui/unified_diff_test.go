package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestUnifiedDiffEqual(t *testing.T) {
	if got := UnifiedDiff("a.html", "same\n", "same\n"); got != "" {
		t.Fatalf("expected empty diff, got %q", got)
	}
}

func TestPrintUnifiedDiff(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	PrintUnifiedDiff(&buf, styles, "out.html", "<p>\n    old\n</p>\n", "<p>\n    new\n</p>\n")
	out := buf.String()

	for _, want := range []string{"Diff:", "out.html", "-    old", "+    new", "@@"} {
		if !strings.Contains(out, want) {
			t.Fatalf("diff output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "--- ") || strings.Contains(out, "+++ ") {
		t.Fatalf("file headers should be skipped:\n%s", out)
	}
	// bytes.Buffer is not a terminal, so no escape sequences
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("unexpected ANSI escapes in non-terminal output: %q", out)
	}
}

func TestPrintUnifiedDiffNoChange(t *testing.T) {
	var buf bytes.Buffer
	PrintUnifiedDiff(&buf, NewStyles(&buf), "x", "a", "a")
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}
