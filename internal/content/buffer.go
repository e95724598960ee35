package content

// Buffer is an immutable sequence of display-ready lines. Lines carry no
// terminators, tabs are expanded and control bytes scrubbed at load time,
// so consumers can hand any line to the terminal as-is.
type Buffer struct {
	lines []string
}

// NewBuffer copies lines into a Buffer.
func NewBuffer(lines []string) *Buffer {
	return &Buffer{lines: append([]string(nil), lines...)}
}

// Len reports the number of lines.
func (b *Buffer) Len() int {
	return len(b.lines)
}

// Line returns the 0-based line at i, or the empty string when i is out of
// range. Callers navigating near the end of the file rely on the safe miss.
func (b *Buffer) Line(i int) string {
	if i < 0 || i >= len(b.lines) {
		return ""
	}
	return b.lines[i]
}
