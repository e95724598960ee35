//go:build plan9 || js || wasip1

package tty

import "errors"

var errUnsupported = errors.New("raw terminal input is not supported on this platform")

type stubTerminal struct{}

func newPlatformTerminal() Terminal { return stubTerminal{} }

func (stubTerminal) Name() string          { return "unsupported" }
func (stubTerminal) EnableRawMode() error  { return errUnsupported }
func (stubTerminal) DisableRawMode() error { return nil }
func (stubTerminal) WindowSize() (Size, error) {
	return Size{}, errUnsupported
}
