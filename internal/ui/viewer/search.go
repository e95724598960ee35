package viewer

import (
	"github.com/kk-code-lab/rview/internal/search"
	"github.com/kk-code-lab/rview/internal/ui/input"
)

const searchPromptHint = "Search %s (Use Esc/Arrows/Enter)"

// Search is the state of the incremental search prompt. While active, every
// key typed refines or repeats a scan over the buffer and moves the view to
// the hit; leaving the prompt always puts the view back where it was when
// the prompt opened, whether the session ended with Enter or Esc.
type Search struct {
	Active bool

	query []rune
	scan  *search.State
	saved position
}

func NewSearch() *Search {
	return &Search{scan: search.NewState()}
}

// Begin opens the prompt, remembering the view position to restore on exit.
func (s *Search) Begin(v *View) {
	s.Active = true
	s.saved = v.save()
	s.query = s.query[:0]
	s.scan.Reset()
}

// HandleKey feeds one key to the active prompt and reports whether the
// session ended.
//
// Arrow keys set the scan direction and repeat the scan. Any other key
// restarts the scan from the top: deletions and typed characters edit the
// query first, and unrecognized keys just rescan. This mirrors how the
// prompt behaves while a query is being refined, where each edit searches
// the whole buffer again for the new text.
func (s *Search) HandleKey(v *View, k input.Key) bool {
	switch {
	case k == input.KeyEscape || k == input.KeyEnter:
		s.end(v)
		return true
	case k == input.KeyBackspace || k == input.KeyDelete || k == input.Ctrl('h'):
		if n := len(s.query); n > 0 {
			s.query = s.query[:n-1]
		}
		s.scan.Reset()
	case k == input.KeyArrowRight || k == input.KeyArrowDown:
		s.scan.Direction = search.Forward
	case k == input.KeyArrowLeft || k == input.KeyArrowUp:
		s.scan.Direction = search.Backward
	default:
		if isPrintable(k) {
			s.query = append(s.query, rune(k))
		}
		s.scan.Reset()
	}

	if len(s.query) == 0 {
		s.scan.Reset()
		return false
	}
	if m, ok := s.scan.Step(v.buf, string(s.query)); ok {
		s.moveToMatch(v, m)
	}
	return false
}

// moveToMatch puts the cursor on the hit and forces the vertical offset
// out of range, which makes the next scroll recompute snap the match line
// to the top of the window.
func (s *Search) moveToMatch(v *View, m search.Match) {
	v.CursorY = m.Line + 1
	v.CursorX = m.Col + 1
	v.OffsetY = v.buf.Len()
}

// Prompt is the status bar text while the prompt is open: a usage hint
// until the first character is typed, then the query itself.
func (s *Search) Prompt() string {
	if len(s.query) == 0 {
		return searchPromptHint
	}
	return string(s.query)
}

// highlightsRow reports whether the 0-based content line idx should be
// drawn highlighted as the current match.
func (s *Search) highlightsRow(idx int) bool {
	return s.Active && s.scan.MatchLine == idx
}

func (s *Search) end(v *View) {
	v.restore(s.saved)
	s.Active = false
	s.query = s.query[:0]
	s.scan.Reset()
}

func isPrintable(k input.Key) bool {
	return k >= 32 && k < 127
}
