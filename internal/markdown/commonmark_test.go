package markdown

import (
	"strings"
	"testing"
)

func TestRenderCommonMark(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
	}{
		{
			name:     "heading",
			input:    "# Title",
			contains: []string{"<h1>Title</h1>"},
		},
		{
			name:     "bold and emphasis",
			input:    "Hello **world** and _you_",
			contains: []string{"<strong>world</strong>", "<em>you</em>"},
		},
		{
			name:     "lists",
			input:    "- a\n- b\n\n1. one",
			contains: []string{"<ul>", "<li>a</li>", "<ol>", "<li>one</li>"},
		},
		{
			name:     "strikethrough",
			input:    "~~gone~~",
			contains: []string{"<del>gone</del>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := RenderCommonMark([]byte(tt.input))
			if err != nil {
				t.Fatalf("RenderCommonMark error: %v", err)
			}
			out := JoinLines(lines)
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Fatalf("output missing %q:\n%s", want, out)
				}
			}
			if strings.HasSuffix(out, "\n") {
				t.Fatalf("output should not end with a newline: %q", out)
			}
		})
	}
}

func TestRenderCommonMarkEmpty(t *testing.T) {
	lines, err := RenderCommonMark([]byte("  \n"))
	if err != nil {
		t.Fatalf("RenderCommonMark error: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected no lines, got %q", lines)
	}
}
