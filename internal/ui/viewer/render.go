package viewer

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/kk-code-lab/rview/internal/textutil"
)

const (
	seqCursorHome  = "\x1b[H"
	seqClearScreen = "\x1b[2J"
	seqClearLine   = "\x1b[K"
	seqInvert      = "\x1b[7m"
	seqReset       = "\x1b[0m"
)

const statusLabel = "rview - read-only"

// Renderer composes one full frame per event and writes it to the
// terminal in a single buffered flush, so a slow tty never shows a half
// drawn screen.
type Renderer struct {
	out   *bufio.Writer
	frame bytes.Buffer
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{out: bufio.NewWriter(w)}
}

// Draw scrolls the view to keep the cursor visible, paints every text row
// and the status bar, and finally parks the terminal cursor on the cell
// the view cursor points at.
func (r *Renderer) Draw(v *View, s *Search) error {
	v.Scroll()

	r.frame.Reset()
	r.frame.WriteString(seqCursorHome)
	r.drawRows(v, s)
	r.drawStatus(v, s)
	r.frame.WriteString(seqCursorHome)

	if _, err := r.out.Write(r.frame.Bytes()); err != nil {
		return err
	}
	fmt.Fprintf(r.out, "\x1b[%d;%dH", v.CursorY-v.OffsetY, v.CursorX-v.OffsetX)
	return r.out.Flush()
}

// drawRows paints the text area. Rows past the end of the buffer show a
// tilde placeholder; the row holding the current search match is drawn in
// inverse video. Every row ends with erase-to-EOL so stale characters from
// the previous frame cannot survive.
func (r *Renderer) drawRows(v *View, s *Search) {
	for i := 0; i < v.Rows; i++ {
		idx := v.OffsetY + i
		if idx >= v.buf.Len() {
			r.frame.WriteByte('~')
		} else if row := visibleSlice(v.buf.Line(idx), v.OffsetX, v.Cols); s.highlightsRow(idx) {
			r.frame.WriteString(seqInvert)
			r.frame.WriteString(row)
			r.frame.WriteString(seqReset)
		} else {
			r.frame.WriteString(row)
		}
		r.frame.WriteString(seqClearLine)
		r.frame.WriteString("\r\n")
	}
}

func (r *Renderer) drawStatus(v *View, s *Search) {
	info := fmt.Sprintf("Rows:%d X:%d Y:%d", v.Rows, v.CursorX, v.CursorY)
	label := statusLabel
	if s.Active {
		info = s.Prompt()
		label = ""
	}
	r.frame.WriteString(seqInvert)
	r.frame.WriteString(statusText(info, label, v.Cols))
	r.frame.WriteString(seqReset)
}

// visibleSlice is the part of line inside the horizontal window: at most
// cols runes starting at the offset column, clipped again by display
// width so wide runes cannot spill past the right edge.
func visibleSlice(line string, offset, cols int) string {
	if cols <= 0 {
		return ""
	}
	runes := []rune(line)
	if offset < 0 || offset >= len(runes) {
		return ""
	}
	visible := runes[offset:]
	if len(visible) > cols {
		visible = visible[:cols]
	}
	return textutil.ClipToWidth(string(visible), cols)
}

// statusText lays info out on the left and label on the right across
// exactly cols cells. When both fit they are separated by at least three
// spaces; otherwise the joined text is cut and marked with "...".
func statusText(info, label string, cols int) string {
	if cols < 3 {
		if cols < 0 {
			cols = 0
		}
		return strings.Repeat(".", cols)
	}
	total := utf8.RuneCountInString(info) + utf8.RuneCountInString(label)
	if cols >= total+3 {
		return info + strings.Repeat(" ", cols-total) + label
	}
	joined := []rune(info + "   " + label)
	return string(joined[:cols-3]) + "..."
}

// WriteRaw sends text to the terminal outside the frame cycle. The banner
// printed before the first frame uses it.
func (r *Renderer) WriteRaw(text string) error {
	if _, err := r.out.WriteString(text); err != nil {
		return err
	}
	return r.out.Flush()
}

// ClearScreen wipes the terminal and homes the cursor. Called on exit so
// the shell prompt returns to a clean screen.
func (r *Renderer) ClearScreen() error {
	if _, err := r.out.WriteString(seqClearScreen + seqCursorHome); err != nil {
		return err
	}
	return r.out.Flush()
}
