package markdown

import (
	"reflect"
	"strings"
	"testing"

	"github.com/samsaffron/md2html/internal/htmlcheck"
)

func TestConvertScenarios(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "unordered list then paragraph",
			input: []string{"- a", "- b", "plain"},
			want:  []string{"<ul>", "    <li>a</li>", "    <li>b</li>", "</ul>", "<p>", "    plain", "</p>"},
		},
		{
			name:  "ordered list",
			input: []string{"* one", "* two"},
			want:  []string{"<ol>", "    <li>one</li>", "    <li>two</li>", "</ol>"},
		},
		{
			name:  "paragraph with bold",
			input: []string{"Hello **world**"},
			want:  []string{"<p>", "    Hello <b>world</b>", "</p>"},
		},
		{
			name:  "heading",
			input: []string{"# Title"},
			want:  []string{"<h1>Title</h1>"},
		},
		{
			name:  "empty input",
			input: nil,
			want:  []string{},
		},
		{
			name:  "switch from unordered to ordered",
			input: []string{"- a", "* b", "- c"},
			want:  []string{"<ul>", "    <li>a</li>", "</ul>", "<ol>", "    <li>b</li>", "</ol>", "<ul>", "    <li>c</li>", "</ul>"},
		},
		{
			name:  "paragraph closed by list",
			input: []string{"intro", "- item"},
			want:  []string{"<p>", "    intro", "</p>", "<ul>", "    <li>item</li>", "</ul>"},
		},
		{
			name:  "blank line splits paragraphs",
			input: []string{"one", "", "two"},
			want:  []string{"<p>", "    one", "</p>", "<p>", "    two", "</p>"},
		},
		{
			name:  "blank line keeps list open",
			input: []string{"- a", "", "- b"},
			want:  []string{"<ul>", "    <li>a</li>", "    <li>b</li>", "</ul>"},
		},
		{
			name:  "heading closes list",
			input: []string{"* a", "## Next", "* b"},
			want:  []string{"<ol>", "    <li>a</li>", "</ol>", "<h2>Next</h2>", "<ol>", "    <li>b</li>", "</ol>"},
		},
		{
			name:  "heading closes paragraph",
			input: []string{"text", "###### Six"},
			want:  []string{"<p>", "    text", "</p>", "<h6>Six</h6>"},
		},
		{
			name:  "seven hashes are paragraph text",
			input: []string{"####### deep"},
			want:  []string{"<p>", "    ####### deep", "</p>"},
		},
		{
			name:  "surrounding whitespace ignored for classification",
			input: []string{"   -   spaced item  ", "\t* tabbed"},
			want:  []string{"<ul>", "    <li>spaced item</li>", "</ul>", "<ol>", "    <li>tabbed</li>", "</ol>"},
		},
		{
			name:  "markers without space are paragraph text",
			input: []string{"-a", "*b"},
			want:  []string{"<p>", "    -a", "    *b", "</p>"},
		},
		{
			name:  "list items keep emphasis markers",
			input: []string{"- **x**"},
			want:  []string{"<ul>", "    <li>**x**</li>", "</ul>"},
		},
		{
			name:  "only blank lines",
			input: []string{"", "   ", "\t"},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Convert(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Convert(%q)\n got: %q\nwant: %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestConvertLineBreaks(t *testing.T) {
	lines := SplitLines("Hello\nWorld\n\n- item\nlast")
	got := Convert(lines)
	want := []string{
		"<p>",
		"    Hello<br />",
		"    World<br />",
		"</p>",
		"<ul>",
		"    <li>item</li>",
		"</ul>",
		"<p>",
		"    last",
		"</p>",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestConvertCRLF(t *testing.T) {
	got := Convert(SplitLines("- a\r\ntext\r\n"))
	want := []string{"<ul>", "    <li>a</li>", "</ul>", "<p>", "    text<br />", "</p>"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestConvertWithOptions(t *testing.T) {
	opts := Options{Indent: "\t", Headings: false, LineBreak: "<br>"}
	got := ConvertWithOptions([]string{"# not a heading\n", "- a"}, opts)
	want := []string{"<p>", "\t# not a heading<br>", "</p>", "<ul>", "\t<li>a</li>", "</ul>"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestConvertWithOptionsFillsDefaults(t *testing.T) {
	got := ConvertWithOptions([]string{"x\n"}, Options{Headings: true})
	want := []string{"<p>", "    x<br />", "</p>"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// Every output must nest cleanly and end with no container open.
func TestConvertBalancedEmission(t *testing.T) {
	docs := []string{
		"",
		"# Title\n\nSome **bold** and __it__ text\n- a\n- b\n* c\nafter\n\n",
		"- a\n\n\n- b\npara\n## h\n* x\n",
		"line one\nline two\n# h\n- end",
		"* only\n* ordered\n* items",
		"   \n\t\n",
		"** unmatched\n__ also\n",
	}
	for _, doc := range docs {
		out := JoinLines(Convert(SplitLines(doc)))
		if err := htmlcheck.Check(out); err != nil {
			t.Fatalf("unbalanced output for %q: %v\n%s", doc, err, out)
		}
	}
}

// Container tags must never nest inside each other.
func TestConvertContainersExclusive(t *testing.T) {
	doc := "a\n- b\n* c\nd\n\n- e\n# f\ng"
	depth := 0
	for _, line := range Convert(SplitLines(doc)) {
		switch line {
		case "<ul>", "<ol>", "<p>":
			depth++
		case "</ul>", "</ol>", "</p>":
			depth--
		}
		if depth < 0 || depth > 1 {
			t.Fatalf("container depth %d after %q", depth, line)
		}
	}
	if depth != 0 {
		t.Fatalf("container left open, depth %d", depth)
	}
}

func TestConvertClosesAtEndOfInput(t *testing.T) {
	tests := []struct {
		input []string
		last  string
	}{
		{input: []string{"- a"}, last: "</ul>"},
		{input: []string{"* a"}, last: "</ol>"},
		{input: []string{"a"}, last: "</p>"},
	}
	for _, tt := range tests {
		out := Convert(tt.input)
		if got := out[len(out)-1]; got != tt.last {
			t.Fatalf("Convert(%q) last=%q, want %q", tt.input, got, tt.last)
		}
	}
}

func TestConvertDoesNotShareState(t *testing.T) {
	first := Convert([]string{"- open list"})
	second := Convert([]string{"plain"})
	if strings.Contains(JoinLines(second), "</ul>") {
		t.Fatalf("state leaked between calls: %q after %q", second, first)
	}
}

func TestStateString(t *testing.T) {
	tests := map[State]string{
		StateNone:          "none",
		StateUnorderedList: "unordered-list",
		StateOrderedList:   "ordered-list",
		StateParagraph:     "paragraph",
	}
	for state, want := range tests {
		if got := state.String(); got != want {
			t.Fatalf("State(%d).String()=%q, want %q", int(state), got, want)
		}
	}
}
