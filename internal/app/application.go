package app

import (
	"io"
	"os"

	"github.com/kk-code-lab/rview/internal/content"
	"github.com/kk-code-lab/rview/internal/tty"
	"github.com/kk-code-lab/rview/internal/ui/input"
	"github.com/kk-code-lab/rview/internal/ui/viewer"
)

// Application wires the terminal, the loaded buffer and the viewer state
// together and owns the event loop.
type Application struct {
	terminal tty.Terminal
	view     *viewer.View
	render   *viewer.Renderer
	search   *viewer.Search
	keys     *input.Reader
	errOut   io.Writer
}

// New loads the file at path and prepares an Application bound to the
// process terminal. The status bar takes one row; the view gets the rest.
func New(path string) (*Application, error) {
	buf, err := content.Load(path)
	if err != nil {
		return nil, err
	}

	terminal := tty.New()
	size, err := terminal.WindowSize()
	if err != nil {
		return nil, err
	}

	return &Application{
		terminal: terminal,
		view:     viewer.New(buf, size.Rows-1, size.Cols),
		render:   viewer.NewRenderer(os.Stdout),
		search:   viewer.NewSearch(),
		keys:     input.NewReader(os.Stdin),
		errOut:   os.Stderr,
	}, nil
}
