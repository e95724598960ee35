package content

import (
	"bytes"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"

	"github.com/kk-code-lab/rview/internal/textutil"
)

// Load reads the file at path and prepares it for display.
func Load(path string) (*Buffer, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return FromBytes(raw), nil
}

// FromBytes decodes raw file content and splits it into scrubbed display
// lines. BOM-marked UTF-8 and UTF-16 content is converted to UTF-8 first.
func FromBytes(raw []byte) *Buffer {
	lines := splitLines(decode(raw))
	for i, line := range lines {
		lines[i] = textutil.Scrub(textutil.ExpandTabs(line, textutil.DefaultTabWidth))
	}
	return &Buffer{lines: lines}
}

func decode(raw []byte) string {
	switch {
	case bytes.HasPrefix(raw, []byte{0xEF, 0xBB, 0xBF}):
		return string(raw[3:])
	case bytes.HasPrefix(raw, []byte{0xFF, 0xFE}):
		return decodeUTF16(raw, unicode.LittleEndian)
	case bytes.HasPrefix(raw, []byte{0xFE, 0xFF}):
		return decodeUTF16(raw, unicode.BigEndian)
	default:
		return string(raw)
	}
}

func decodeUTF16(raw []byte, endian unicode.Endianness) string {
	out, err := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder().Bytes(raw)
	if err != nil {
		return string(raw)
	}
	return string(out)
}

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// splitLines breaks text into lines the way line-oriented tools do: any of
// the three newline conventions terminates a line, and a trailing newline
// does not produce a final empty line. Empty input yields no lines at all.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(lineBreaks.Replace(text), "\n")
	if last := len(lines) - 1; lines[last] == "" {
		lines = lines[:last]
	}
	return lines
}
