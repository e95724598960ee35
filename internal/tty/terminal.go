// Package tty configures the controlling terminal for the viewer: raw
// byte-at-a-time input with echo off, and the window size the renderer
// lays frames out against.
package tty

// Size is the terminal dimensions in character cells.
type Size struct {
	Rows, Cols int
}

// Terminal is the platform capability the viewer runs on. EnableRawMode
// and DisableRawMode must pair on every exit path so the user's shell
// gets a sane terminal back.
type Terminal interface {
	// Name identifies the backend, shown in the startup banner.
	Name() string
	EnableRawMode() error
	DisableRawMode() error
	WindowSize() (Size, error)
}

// New returns the Terminal for the current platform.
func New() Terminal {
	return newPlatformTerminal()
}
