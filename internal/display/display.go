// Package display renders raw buffer bytes for a terminal.
package display

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Render returns content with every byte that would not print as itself
// escaped as \xNN. Valid printable UTF-8 is kept as is; a backslash is
// doubled so the output stays unambiguous.
func Render(content []byte) string {
	var sb strings.Builder
	sb.Grow(len(content))
	for len(content) > 0 {
		r, size := utf8.DecodeRune(content)
		switch {
		case r == '\\':
			sb.WriteString(`\\`)
		case r == utf8.RuneError && size <= 1:
			fmt.Fprintf(&sb, `\x%02x`, content[0])
		case !unicode.IsPrint(r):
			for _, c := range content[:size] {
				fmt.Fprintf(&sb, `\x%02x`, c)
			}
		default:
			sb.Write(content[:size])
		}
		content = content[size:]
	}
	return sb.String()
}

// Width returns the terminal cell width of s, counting grapheme clusters.
func Width(s string) int {
	return uniseg.StringWidth(s)
}

// Slots renders a capacity gauge: one filled cell per used byte and one
// empty cell per free byte, e.g. "[###...]".
func Slots(length, capacity int) string {
	if capacity < 0 {
		capacity = 0
	}
	length = max(0, min(length, capacity))
	return "[" + strings.Repeat("#", length) + strings.Repeat(".", capacity-length) + "]"
}

// Pad right-pads s with spaces to width cells. Wider strings are returned
// unchanged.
func Pad(s string, width int) string {
	if w := Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
