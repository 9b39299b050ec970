package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// commonMark is a shared goldmark instance with the strikethrough extension.
// Raw HTML in the source is omitted (goldmark's default).
var commonMark = goldmark.New(
	goldmark.WithExtensions(extension.Strikethrough),
)

// RenderCommonMark renders a whole document with goldmark and returns the
// result as output lines, ready for JoinLines.
func RenderCommonMark(src []byte) ([]string, error) {
	if len(bytes.TrimSpace(src)) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	if err := commonMark.Convert(src, &buf); err != nil {
		return nil, fmt.Errorf("commonmark: %w", err)
	}
	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n"), nil
}
