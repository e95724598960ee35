package input

// Key is one decoded unit of keyboard input. Values below 256 are the raw
// byte as typed; navigation keys decoded from escape sequences start at
// 1000 so they can never collide with a byte value.
type Key int

const (
	KeyArrowUp Key = 1000 + iota
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyDelete
)

const (
	KeyEscape    Key = 0x1b
	KeyEnter     Key = '\r'
	KeyBackspace Key = 0x7f
)

// Ctrl maps a letter to its control-modified byte value, so Ctrl('q') is
// what the terminal sends for Ctrl+Q in raw mode.
func Ctrl(c byte) Key {
	return Key(c & 0x1f)
}

// IsNavigation reports whether k moves the cursor in the viewer.
func (k Key) IsNavigation() bool {
	switch k {
	case KeyArrowUp, KeyArrowDown, KeyArrowLeft, KeyArrowRight,
		KeyHome, KeyEnd, KeyPageUp, KeyPageDown:
		return true
	}
	return false
}
