package textutil

import "testing"

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"ascii", "hello", 5},
		{"cjk wide", "日本", 4},
		{"mixed ascii and wide", "a日b", 4},
		{"combining mark counts one", "é", 2},
		{"zero width never free", "a‍b", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayWidth(tt.text); got != tt.want {
				t.Fatalf("DisplayWidth(%q)=%d want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestClipToWidth(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{"fits untouched", "abc", 5, "abc"},
		{"exact fit", "abc", 3, "abc"},
		{"ascii cut", "abcdef", 4, "abcd"},
		{"zero width", "abc", 0, ""},
		{"negative width", "abc", -1, ""},
		{"wide rune not split", "日本語", 3, "日"},
		{"wide rune exact", "日本", 4, "日本"},
		{"combining cluster kept whole", "aéx", 2, "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClipToWidth(tt.text, tt.width); got != tt.want {
				t.Fatalf("ClipToWidth(%q, %d)=%q want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestClipToWidthOwnWidthIsIdentity(t *testing.T) {
	for _, text := range []string{"", "plain", "日本語 text", "éé"} {
		if got := ClipToWidth(text, DisplayWidth(text)); got != text {
			t.Errorf("ClipToWidth(%q, DisplayWidth)=%q, want unchanged", text, got)
		}
	}
}
