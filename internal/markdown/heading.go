package markdown

import (
	"strconv"
	"strings"
)

const maxHeadingLevel = 6

// ParseHeading reports whether trimmed is a heading line: 1-6 '#' followed
// by a space. It returns the level and the trimmed heading text.
func ParseHeading(trimmed string) (level int, text string, ok bool) {
	for level < len(trimmed) && trimmed[level] == '#' {
		level++
	}
	if level == 0 || level > maxHeadingLevel {
		return 0, "", false
	}
	if level >= len(trimmed) || trimmed[level] != ' ' {
		return 0, "", false
	}
	return level, strings.TrimSpace(trimmed[level+1:]), true
}

func renderHeading(level int, text string) string {
	n := strconv.Itoa(level)
	return "<h" + n + ">" + text + "</h" + n + ">"
}
