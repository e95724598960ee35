//go:build !windows && !plan9 && !js && !wasip1

package tty

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

type unixTerminal struct {
	fd    int
	saved *term.State
}

func newPlatformTerminal() Terminal {
	return &unixTerminal{fd: int(os.Stdin.Fd())}
}

func (t *unixTerminal) Name() string { return "unix" }

func (t *unixTerminal) EnableRawMode() error {
	saved, err := term.MakeRaw(t.fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	t.saved = saved
	return nil
}

func (t *unixTerminal) DisableRawMode() error {
	if t.saved == nil {
		return nil
	}
	err := term.Restore(t.fd, t.saved)
	t.saved = nil
	return err
}

// WindowSize asks the kernel for the terminal dimensions. Terminals that
// report a zero size through the ioctl fall back to the line discipline
// query in x/term.
func (t *unixTerminal) WindowSize() (Size, error) {
	ws, err := unix.IoctlGetWinsize(t.fd, unix.TIOCGWINSZ)
	if err == nil && ws.Row > 0 && ws.Col > 0 {
		return Size{Rows: int(ws.Row), Cols: int(ws.Col)}, nil
	}

	cols, rows, err := term.GetSize(t.fd)
	if err != nil {
		return Size{}, fmt.Errorf("query window size: %w", err)
	}
	return Size{Rows: rows, Cols: cols}, nil
}
