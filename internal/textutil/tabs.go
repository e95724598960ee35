package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultTabWidth is the tab stop used for file content shown in the viewer.
const DefaultTabWidth = 4

// ExpandTabs replaces each tab with enough spaces to reach the next tab stop.
// Column positions advance by display width so stops line up for wide runes.
func ExpandTabs(text string, tabWidth int) string {
	if tabWidth <= 0 || strings.IndexByte(text, '\t') < 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + tabWidth)
	column := 0
	for _, r := range text {
		if r == '\t' {
			n := tabWidth - column%tabWidth
			b.WriteString(strings.Repeat(" ", n))
			column += n
			continue
		}
		b.WriteRune(r)
		if w := runewidth.RuneWidth(r); w > 1 {
			column += w
		} else {
			column++
		}
	}
	return b.String()
}
