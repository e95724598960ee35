package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DisplayWidth reports the printable width of text in terminal columns.
// Runes the terminal renders in two cells count as two; everything else,
// including combining marks, counts as one so column math stays monotonic.
func DisplayWidth(text string) int {
	width := 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w <= 0 {
			w = 1
		}
		width += w
	}
	return width
}

// ClipToWidth returns the longest prefix of text that fits in width columns.
// It cuts on grapheme cluster boundaries so a wide rune or an emoji sequence
// is either fully shown or fully dropped, never split.
func ClipToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if DisplayWidth(text) <= width {
		return text
	}

	var b strings.Builder
	used := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cluster := g.Str()
		w := DisplayWidth(cluster)
		if used+w > width {
			break
		}
		b.WriteString(cluster)
		used += w
	}
	return b.String()
}
