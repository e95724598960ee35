package viewer

import (
	"unicode/utf8"

	"github.com/kk-code-lab/rview/internal/content"
	"github.com/kk-code-lab/rview/internal/ui/input"
)

// View owns the cursor and scroll position for one buffer shown in one
// terminal window.
//
// CursorX and CursorY are 1-based: (1,1) is the first column of the first
// line, and X may rest at line length + 1, one past the last rune, like a
// terminal caret. OffsetX and OffsetY are 0-based counts of columns and
// lines scrolled off the top-left. Rows and Cols describe the usable text
// area, excluding the status bar.
type View struct {
	buf *content.Buffer

	CursorX, CursorY int
	OffsetX, OffsetY int
	Rows, Cols       int
}

// New places the cursor at the top-left of buf. rows must already exclude
// the status bar line.
func New(buf *content.Buffer, rows, cols int) *View {
	return &View{buf: buf, CursorX: 1, CursorY: 1, Rows: rows, Cols: cols}
}

// Navigate applies one navigation key and then clamps the cursor column,
// so landing on a shorter line can never leave X past its end.
func (v *View) Navigate(k input.Key) {
	switch k {
	case input.KeyArrowUp:
		v.MoveUp()
	case input.KeyArrowDown:
		v.MoveDown()
	case input.KeyArrowLeft:
		v.MoveLeft()
	case input.KeyArrowRight:
		v.MoveRight()
	case input.KeyHome:
		v.MoveHome()
	case input.KeyEnd:
		v.MoveEnd()
	case input.KeyPageUp:
		v.PageUp()
	case input.KeyPageDown:
		v.PageDown()
	}
	v.ClampCursor()
}

func (v *View) MoveUp() {
	if v.CursorY > 1 {
		v.CursorY--
	}
}

func (v *View) MoveDown() {
	if v.CursorY < v.buf.Len() {
		v.CursorY++
	}
}

// MoveLeft steps one column left, wrapping to the end of the previous line
// from column 1.
func (v *View) MoveLeft() {
	switch {
	case v.CursorX > 1:
		v.CursorX--
	case v.CursorY > 1:
		v.CursorY--
		v.CursorX = v.lineLen(v.CursorY) + 1
	}
}

// MoveRight steps one column right, wrapping to the start of the next line
// once the cursor sits one past the end. On the last line it stays put.
func (v *View) MoveRight() {
	switch {
	case v.CursorX <= v.lineLen(v.CursorY):
		v.CursorX++
	case v.CursorY < v.buf.Len():
		v.CursorY++
		v.CursorX = 1
	}
}

func (v *View) MoveHome() {
	v.CursorX = 1
}

func (v *View) MoveEnd() {
	v.CursorX = v.lineLen(v.CursorY) + 1
}

// MoveUpN moves n lines up in one jump, or not at all if that would pass
// the first line.
func (v *View) MoveUpN(n int) {
	if v.CursorY-n >= 1 {
		v.CursorY -= n
	}
}

// MoveDownN moves n lines down in one jump, or not at all if that would
// pass the last line.
func (v *View) MoveDownN(n int) {
	if v.CursorY+n <= v.buf.Len() {
		v.CursorY += n
	}
}

// PageUp snaps the cursor to the top visible line, then jumps a screenful
// up.
func (v *View) PageUp() {
	v.CursorY = v.clampRow(v.OffsetY + 1)
	v.MoveUpN(v.Rows)
}

// PageDown snaps the cursor to the bottom visible line, then jumps a
// screenful down.
func (v *View) PageDown() {
	v.CursorY = v.clampRow(v.OffsetY + v.Rows)
	v.MoveDownN(v.Rows)
}

// ClampCursor pulls X back into [1, line length + 1] for the current line.
func (v *View) ClampCursor() {
	if limit := v.lineLen(v.CursorY) + 1; v.CursorX > limit {
		v.CursorX = limit
	}
	if v.CursorX < 1 {
		v.CursorX = 1
	}
}

// Scroll recomputes both offsets so the cursor is inside the visible
// window, moving each offset the minimal amount needed. Calling it when
// the cursor is already visible changes nothing.
func (v *View) Scroll() {
	if v.CursorY >= v.Rows+v.OffsetY {
		v.OffsetY = v.CursorY - v.Rows
	}
	if v.CursorY <= v.OffsetY {
		v.OffsetY = v.CursorY - 1
	}
	if v.CursorX >= v.Cols+v.OffsetX {
		v.OffsetX = v.CursorX - v.Cols
	}
	if v.CursorX <= v.OffsetX {
		v.OffsetX = v.CursorX - 1
	}
}

// lineLen reports the rune length of the 1-based line y, 0 when y is
// outside the buffer.
func (v *View) lineLen(y int) int {
	if y < 1 || y > v.buf.Len() {
		return 0
	}
	return utf8.RuneCountInString(v.buf.Line(y - 1))
}

func (v *View) clampRow(y int) int {
	if n := v.buf.Len(); y > n {
		y = n
	}
	if y < 1 {
		y = 1
	}
	return y
}

// position is a saved cursor and viewport snapshot, taken when a search
// prompt opens and put back when it closes.
type position struct {
	x, y, offX, offY int
}

func (v *View) save() position {
	return position{x: v.CursorX, y: v.CursorY, offX: v.OffsetX, offY: v.OffsetY}
}

func (v *View) restore(p position) {
	v.CursorX, v.CursorY = p.x, p.y
	v.OffsetX, v.OffsetY = p.offX, p.offY
}
