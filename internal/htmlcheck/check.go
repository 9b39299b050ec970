// Package htmlcheck verifies that converter output opens and closes its
// container and emphasis tags in a properly nested order.
package htmlcheck

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// tracked lists the elements whose open/close pairs are checked. Anything
// else (br, a, code...) passes through untouched.
var tracked = map[string]bool{
	"ul": true, "ol": true, "li": true, "p": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"b": true, "strong": true, "em": true, "i": true, "del": true,
}

// Error describes the first nesting problem found in a document.
type Error struct {
	Tag    string // element name that broke nesting
	Offset int    // byte offset of the offending token
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("htmlcheck: <%s> at offset %d: %s", e.Tag, e.Offset, e.Reason)
}

// Check walks doc with the x/net/html tokenizer and returns an *Error when a
// tracked element is closed out of order, closed without being opened, or left
// open at the end of the document.
func Check(doc string) error {
	z := html.NewTokenizer(strings.NewReader(doc))

	type open struct {
		tag    string
		offset int
	}
	var stack []open
	offset := 0

	for {
		tt := z.Next()
		raw := len(z.Raw())
		if tt == html.ErrorToken {
			if err := z.Err(); err != io.EOF {
				return fmt.Errorf("htmlcheck: tokenize: %w", err)
			}
			break
		}

		tok := z.Token()
		switch tt {
		case html.StartTagToken:
			if tracked[tok.Data] {
				stack = append(stack, open{tag: tok.Data, offset: offset})
			}
		case html.EndTagToken:
			if !tracked[tok.Data] {
				break
			}
			if len(stack) == 0 {
				return &Error{Tag: tok.Data, Offset: offset, Reason: "closed but never opened"}
			}
			top := stack[len(stack)-1]
			if top.tag != tok.Data {
				return &Error{Tag: tok.Data, Offset: offset, Reason: fmt.Sprintf("closes <%s> opened at offset %d", top.tag, top.offset)}
			}
			stack = stack[:len(stack)-1]
		}
		offset += raw
	}

	if len(stack) > 0 {
		top := stack[len(stack)-1]
		return &Error{Tag: top.tag, Offset: top.offset, Reason: "never closed"}
	}
	return nil
}
