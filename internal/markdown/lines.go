package markdown

import "strings"

// SplitLines splits content after every "\n", keeping the terminator on each
// line. Content ending in a newline does not produce an empty trailing line,
// and empty content produces no lines.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.SplitAfter(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// JoinLines joins output lines with "\n" and no trailing terminator.
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

func hasTerminator(raw string) bool {
	return strings.HasSuffix(raw, "\n")
}
