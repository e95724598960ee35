package input

import (
	"bufio"
	"io"
)

// Reader decodes raw terminal bytes into Keys, one blocking read at a time.
type Reader struct {
	in *bufio.Reader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{in: bufio.NewReader(r)}
}

// ReadKey blocks for the next byte and decodes VT-style escape sequences
// into navigation keys. Bytes that do not start a sequence come back
// unchanged, and an unrecognized sequence yields its final byte so unknown
// terminals degrade to a visible no-op instead of an error.
func (r *Reader) ReadKey() (Key, error) {
	b, err := r.in.ReadByte()
	if err != nil {
		return 0, err
	}
	if b != 0x1b {
		return Key(b), nil
	}
	return r.readEscape()
}

func (r *Reader) readEscape() (Key, error) {
	// A lone Esc press sends a single byte with nothing queued behind it.
	if r.in.Buffered() == 0 {
		return KeyEscape, nil
	}
	b, err := r.in.ReadByte()
	if err != nil {
		return 0, err
	}
	switch b {
	case '[':
		return r.readCSI()
	case 'O':
		return r.readSS3()
	default:
		return Key(b), nil
	}
}

func (r *Reader) readCSI() (Key, error) {
	b, err := r.in.ReadByte()
	if err != nil {
		return 0, err
	}
	switch b {
	case 'A':
		return KeyArrowUp, nil
	case 'B':
		return KeyArrowDown, nil
	case 'C':
		return KeyArrowRight, nil
	case 'D':
		return KeyArrowLeft, nil
	case 'H':
		return KeyHome, nil
	case 'F':
		return KeyEnd, nil
	}
	if b >= '0' && b <= '9' {
		return r.readNumericCSI(b)
	}
	return Key(b), nil
}

// readNumericCSI finishes sequences of the form ESC [ digit ~ that
// terminals send for Home, End, Delete and the page keys.
func (r *Reader) readNumericCSI(digit byte) (Key, error) {
	b, err := r.in.ReadByte()
	if err != nil {
		return 0, err
	}
	if b != '~' {
		return Key(b), nil
	}
	switch digit {
	case '1', '7':
		return KeyHome, nil
	case '4', '8':
		return KeyEnd, nil
	case '3':
		return KeyDelete, nil
	case '5':
		return KeyPageUp, nil
	case '6':
		return KeyPageDown, nil
	}
	return Key(digit), nil
}

func (r *Reader) readSS3() (Key, error) {
	b, err := r.in.ReadByte()
	if err != nil {
		return 0, err
	}
	switch b {
	case 'H':
		return KeyHome, nil
	case 'F':
		return KeyEnd, nil
	}
	return Key(b), nil
}
