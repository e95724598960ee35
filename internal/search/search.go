// Package search implements the incremental line scanner behind the
// viewer's search prompt. Each call to Step advances one scan over the
// content, resuming where the previous call left off so repeated steps
// walk through successive matches instead of finding the first one again.
package search

import (
	"strings"
	"unicode/utf8"
)

// Direction selects which way the scan walks through lines.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// Lines is the read access Step needs. content.Buffer satisfies it.
type Lines interface {
	Len() int
	Line(i int) string
}

// Match is one hit in content coordinates: a 0-based line index and a
// 0-based rune column within that line.
type Match struct {
	Line int
	Col  int
}

// State carries scan progress between incremental steps.
//
// MatchLine is the line of the most recent hit, or -1 when the current
// query has not matched yet; a fresh scan starts there so the next match
// continues from the last one. ResumeCol is the rune column where the scan
// of MatchLine resumes; it sits one past the previous hit so matches on
// the same line are visited in order, overlaps included.
type State struct {
	Direction Direction
	MatchLine int
	ResumeCol int
}

func NewState() *State {
	return &State{MatchLine: -1}
}

// Reset forgets all progress: the next Step scans forward from the top.
func (s *State) Reset() {
	s.Direction = Forward
	s.MatchLine = -1
	s.ResumeCol = 0
}

// Step scans at most lines.Len() lines for query, wrapping past either end
// of the content. On a hit it records the position for the next resume and
// returns the match. On a miss the state keeps its match line so the
// caller's highlight stays where it was, and the resume column is back at
// 0, meaning a following Step in the same direction starts the line over.
func (s *State) Step(lines Lines, query string) (Match, bool) {
	total := lines.Len()
	if total == 0 || query == "" {
		return Match{}, false
	}

	current := s.MatchLine
	if current < 0 {
		current = 0
	}
	for i := 0; i < total; i++ {
		if col, ok := indexFrom(lines.Line(current), query, s.ResumeCol); ok {
			s.MatchLine = current
			s.ResumeCol = col + 1
			return Match{Line: current, Col: col}, true
		}
		s.ResumeCol = 0
		if s.Direction == Backward {
			current--
		} else {
			current++
		}
		if current == total {
			current = 0
		} else if current < 0 {
			current = total - 1
		}
	}
	return Match{}, false
}

// indexFrom locates query in line at or after rune column from, returning
// the match's rune column. Columns are rune counts so callers can use them
// directly as cursor positions.
func indexFrom(line, query string, from int) (int, bool) {
	start := byteOffset(line, from)
	idx := strings.Index(line[start:], query)
	if idx < 0 {
		return 0, false
	}
	return utf8.RuneCountInString(line[:start+idx]), true
}

func byteOffset(line string, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}
	seen := 0
	for i := range line {
		if seen == runeIndex {
			return i
		}
		seen++
	}
	return len(line)
}
