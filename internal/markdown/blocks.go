// Package markdown converts a small Markdown subset (headings, "- " and "* "
// lists, paragraphs, bold and italic) into indented HTML, one line at a time.
package markdown

import "strings"

// State is the block container currently open while converting.
// Only one container can be open at a time.
type State int

const (
	StateNone State = iota
	StateUnorderedList
	StateOrderedList
	StateParagraph
)

func (s State) String() string {
	switch s {
	case StateUnorderedList:
		return "unordered-list"
	case StateOrderedList:
		return "ordered-list"
	case StateParagraph:
		return "paragraph"
	default:
		return "none"
	}
}

// openTag returns the tag that opens the container, or "" for StateNone.
func (s State) openTag() string {
	switch s {
	case StateUnorderedList:
		return "<ul>"
	case StateOrderedList:
		return "<ol>"
	case StateParagraph:
		return "<p>"
	}
	return ""
}

func (s State) closeTag() string {
	switch s {
	case StateUnorderedList:
		return "</ul>"
	case StateOrderedList:
		return "</ol>"
	case StateParagraph:
		return "</p>"
	}
	return ""
}

const (
	unorderedMarker = "- "
	orderedMarker   = "* "
)

// Options tunes the HTML produced by ConvertWithOptions.
type Options struct {
	// Indent prefixes list items and paragraph text. Default four spaces.
	Indent string
	// Headings enables `# Title` lines. When false they are paragraph text.
	Headings bool
	// LineBreak is appended to paragraph lines that ended with a terminator.
	LineBreak string
}

// DefaultOptions returns the options used by Convert.
func DefaultOptions() Options {
	return Options{
		Indent:    "    ",
		Headings:  true,
		LineBreak: "<br />",
	}
}

// Convert turns raw Markdown lines into HTML output lines using DefaultOptions.
// Lines may still carry their "\n" or "\r\n" terminator (see SplitLines).
func Convert(lines []string) []string {
	return ConvertWithOptions(lines, DefaultOptions())
}

// ConvertWithOptions is Convert with explicit options. An empty Indent or
// LineBreak falls back to the default value.
func ConvertWithOptions(lines []string, opts Options) []string {
	defaults := DefaultOptions()
	if opts.Indent == "" {
		opts.Indent = defaults.Indent
	}
	if opts.LineBreak == "" {
		opts.LineBreak = defaults.LineBreak
	}

	w := &blockWriter{opts: opts, out: make([]string, 0, len(lines)+4)}
	for _, line := range lines {
		w.line(line)
	}
	w.finish()
	return w.out
}

// blockWriter threads the block state through one conversion.
type blockWriter struct {
	opts  Options
	state State
	out   []string
}

func (w *blockWriter) line(raw string) {
	trimmed := strings.TrimSpace(raw)

	switch {
	case strings.HasPrefix(trimmed, unorderedMarker):
		w.listItem(StateUnorderedList, trimmed[len(unorderedMarker):])
	case strings.HasPrefix(trimmed, orderedMarker):
		w.listItem(StateOrderedList, trimmed[len(orderedMarker):])
	case trimmed == "":
		if w.state == StateParagraph {
			w.enter(StateNone)
		}
	default:
		if w.opts.Headings {
			if level, text, ok := ParseHeading(trimmed); ok {
				w.enter(StateNone)
				w.emit(renderHeading(level, text))
				return
			}
		}
		w.paragraphText(trimmed, hasTerminator(raw))
	}
}

func (w *blockWriter) listItem(list State, text string) {
	w.enter(list)
	w.emit(w.opts.Indent + "<li>" + strings.TrimSpace(text) + "</li>")
}

func (w *blockWriter) paragraphText(text string, terminated bool) {
	w.enter(StateParagraph)
	text = w.opts.Indent + RewriteEmphasis(text)
	if terminated {
		text += w.opts.LineBreak
	}
	w.emit(text)
}

// enter moves to the target state, closing the current container first when
// it differs. Entering the state that is already open is a no-op.
func (w *blockWriter) enter(target State) {
	if w.state == target {
		return
	}
	if tag := w.state.closeTag(); tag != "" {
		w.emit(tag)
	}
	if tag := target.openTag(); tag != "" {
		w.emit(tag)
	}
	w.state = target
}

func (w *blockWriter) finish() {
	w.enter(StateNone)
}

func (w *blockWriter) emit(line string) {
	w.out = append(w.out, line)
}
