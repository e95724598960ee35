package app

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kk-code-lab/rview/internal/ui/input"
)

// Run drives the viewer until the user quits: draw a frame, block for one
// key, apply it, repeat. Raw mode is released and the screen cleared on
// every way out.
func (a *Application) Run() error {
	if err := a.terminal.EnableRawMode(); err != nil {
		return err
	}
	defer func() { _ = a.terminal.DisableRawMode() }()
	defer func() { _ = a.render.ClearScreen() }()

	a.banner()

	for {
		if err := a.render.Draw(a.view, a.search); err != nil {
			return err
		}

		key, err := a.keys.ReadKey()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			a.reportKeyError(err)
			continue
		}

		switch {
		case key == input.Ctrl('q'):
			return nil
		case key == input.Ctrl('f'):
			if err := a.runSearch(); err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				return err
			}
		case key.IsNavigation():
			a.view.Navigate(key)
		}
	}
}

// runSearch owns the keyboard while the search prompt is open. The outer
// loop resumes when the prompt closes; if the input source dies mid-search
// the session is cancelled first so the view position is restored.
func (a *Application) runSearch() error {
	a.search.Begin(a.view)
	for {
		if err := a.render.Draw(a.view, a.search); err != nil {
			return err
		}

		key, err := a.keys.ReadKey()
		if err != nil {
			if errors.Is(err, io.EOF) {
				a.search.HandleKey(a.view, input.KeyEscape)
				return io.EOF
			}
			a.reportKeyError(err)
			continue
		}

		if a.search.HandleKey(a.view, key) {
			return nil
		}
	}
}

// banner prints the terminal backend name centered in a dashed rule. The
// first frame overwrites it right away; it exists so a wedged terminal
// still shows which backend was picked.
func (a *Application) banner() {
	name := a.terminal.Name()
	pad := (a.view.Cols - len(name) - 2) / 2
	if pad < 0 {
		pad = 0
	}
	dashes := strings.Repeat("-", pad)
	_ = a.render.WriteRaw(fmt.Sprintf("%s %s %s\r\n", dashes, name, dashes))
}

func (a *Application) reportKeyError(err error) {
	fmt.Fprintf(a.errOut, "\x1b[31mrview: read key: %v\x1b[0m\r\n", err)
}
