//go:build windows

package tty

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

type windowsTerminal struct {
	fd    int
	saved *term.State
}

func newPlatformTerminal() Terminal {
	return &windowsTerminal{fd: int(os.Stdin.Fd())}
}

func (t *windowsTerminal) Name() string { return "windows" }

// EnableRawMode also switches the console to VT processing, so the escape
// sequences the viewer emits and decodes work on modern Windows consoles.
func (t *windowsTerminal) EnableRawMode() error {
	saved, err := term.MakeRaw(t.fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	t.saved = saved
	return nil
}

func (t *windowsTerminal) DisableRawMode() error {
	if t.saved == nil {
		return nil
	}
	err := term.Restore(t.fd, t.saved)
	t.saved = nil
	return err
}

func (t *windowsTerminal) WindowSize() (Size, error) {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return Size{}, fmt.Errorf("query window size: %w", err)
	}
	return Size{Rows: rows, Cols: cols}, nil
}
