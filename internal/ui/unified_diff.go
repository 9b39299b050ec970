package ui

import (
	"fmt"
	"io"
	"strings"

	diff "github.com/shogoki/gotextdiff"
)

// UnifiedDiff returns the unified diff between old and new content, or "" when
// they are equal.
func UnifiedDiff(name, oldContent, newContent string) string {
	if oldContent == newContent {
		return ""
	}
	return string(diff.Diff(name, []byte(oldContent), name, []byte(newContent)))
}

// PrintUnifiedDiff writes a colorized unified diff for one file to w.
// Nothing is written when the contents are equal.
func PrintUnifiedDiff(w io.Writer, styles *Styles, name, oldContent, newContent string) {
	text := UnifiedDiff(name, oldContent, newContent)
	if text == "" {
		return
	}

	fmt.Fprintf(w, "%s %s\n", styles.Bold.Render("Diff:"), styles.File.Render(name))
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "--- "), strings.HasPrefix(line, "+++ "), strings.HasPrefix(line, "diff "):
			// headers repeat the file name printed above
			continue
		case strings.HasPrefix(line, "@@"):
			fmt.Fprintln(w, styles.DiffHunk.Render(line))
		case strings.HasPrefix(line, "+"):
			fmt.Fprintln(w, styles.DiffAdd.Render(line))
		case strings.HasPrefix(line, "-"):
			fmt.Fprintln(w, styles.DiffRemove.Render(line))
		default:
			fmt.Fprintln(w, line)
		}
	}
}
