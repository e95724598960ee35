package search

import "testing"

type lineSlice []string

func (l lineSlice) Len() int { return len(l) }

func (l lineSlice) Line(i int) string {
	if i < 0 || i >= len(l) {
		return ""
	}
	return l[i]
}

func TestStepFindsFirstMatchFromTop(t *testing.T) {
	s := NewState()
	m, ok := s.Step(lineSlice{"alpha", "beta", "gamma"}, "al")
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Line != 0 || m.Col != 0 {
		t.Fatalf("match at (%d,%d), want (0,0)", m.Line, m.Col)
	}
}

func TestStepVisitsSuccessiveMatches(t *testing.T) {
	lines := lineSlice{"apple", "banana", "apple pie"}
	s := NewState()

	want := []Match{{0, 0}, {2, 0}, {0, 0}}
	for i, w := range want {
		m, ok := s.Step(lines, "apple")
		if !ok {
			t.Fatalf("step %d: expected a match", i)
		}
		if m != w {
			t.Fatalf("step %d: match (%d,%d), want (%d,%d)", i, m.Line, m.Col, w.Line, w.Col)
		}
	}
}

func TestStepOverlappingMatchesOnOneLine(t *testing.T) {
	s := NewState()
	lines := lineSlice{"aaa"}

	first, ok := s.Step(lines, "aa")
	if !ok || first.Col != 0 {
		t.Fatalf("first match col %d, ok=%v; want col 0", first.Col, ok)
	}
	second, ok := s.Step(lines, "aa")
	if !ok || second.Col != 1 {
		t.Fatalf("second match col %d, ok=%v; want col 1", second.Col, ok)
	}
}

func TestStepBackwardWrapsToEnd(t *testing.T) {
	lines := lineSlice{"apple", "banana", "apple"}
	s := NewState()

	if _, ok := s.Step(lines, "apple"); !ok {
		t.Fatal("seed match failed")
	}
	s.Direction = Backward
	m, ok := s.Step(lines, "apple")
	if !ok {
		t.Fatal("expected backward match")
	}
	if m.Line != 2 {
		t.Fatalf("backward match on line %d, want 2", m.Line)
	}
}

func TestStepScansWholeBufferOnMiss(t *testing.T) {
	s := NewState()
	if _, ok := s.Step(lineSlice{"alpha", "beta"}, "nope"); ok {
		t.Fatal("unexpected match")
	}
	if s.MatchLine != -1 {
		t.Fatalf("MatchLine=%d after miss on fresh state, want -1", s.MatchLine)
	}
}

func TestStepMissKeepsMatchLine(t *testing.T) {
	lines := lineSlice{"target"}
	s := NewState()
	if _, ok := s.Step(lines, "target"); !ok {
		t.Fatal("seed match failed")
	}

	// The sole match was already consumed, so the same query misses once
	// and then comes back around.
	if _, ok := s.Step(lines, "target"); ok {
		t.Fatal("expected a miss after consuming the only match")
	}
	if s.MatchLine != 0 {
		t.Fatalf("MatchLine=%d after miss, want 0", s.MatchLine)
	}
	m, ok := s.Step(lines, "target")
	if !ok || m.Line != 0 || m.Col != 0 {
		t.Fatalf("third step = (%d,%d), ok=%v; want (0,0) match", m.Line, m.Col, ok)
	}
}

func TestStepReportsRuneColumns(t *testing.T) {
	s := NewState()
	m, ok := s.Step(lineSlice{"héllo"}, "llo")
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Col != 2 {
		t.Fatalf("match col %d, want rune column 2", m.Col)
	}
}

func TestStepDegenerateInputs(t *testing.T) {
	s := NewState()
	if _, ok := s.Step(lineSlice{}, "x"); ok {
		t.Error("match in empty content")
	}
	if _, ok := s.Step(lineSlice{"x"}, ""); ok {
		t.Error("match for empty query")
	}
}

func TestStepResumeColumnBeyondLineEnd(t *testing.T) {
	s := NewState()
	s.MatchLine = 0
	s.ResumeCol = 50
	lines := lineSlice{"ab"}

	if _, ok := s.Step(lines, "ab"); ok {
		t.Fatal("expected a miss with resume column past the line end")
	}
	m, ok := s.Step(lines, "ab")
	if !ok || m.Col != 0 {
		t.Fatalf("follow-up step = (%d,%d), ok=%v; want col 0 match", m.Line, m.Col, ok)
	}
}

func TestReset(t *testing.T) {
	s := NewState()
	s.Direction = Backward
	s.MatchLine = 3
	s.ResumeCol = 7

	s.Reset()
	if s.Direction != Forward || s.MatchLine != -1 || s.ResumeCol != 0 {
		t.Fatalf("Reset left state %+v", *s)
	}
}
