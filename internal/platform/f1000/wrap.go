package f1000

import (
	"strings"
	"unicode/utf8"
)

// avgCharWidth is the average glyph advance assumed for wrapping, as a
// fraction of the font size.
const avgCharWidth = 0.5

// Wrap breaks text into lines no wider than maxWidth millimetres at the
// given font size (points), using a fixed average character width rather
// than real glyph metrics. Words are never split; a word longer than the
// limit occupies a line of its own. Callers cap the number of lines they
// draw.
func Wrap(text string, maxWidth, fontSize float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	perLine := charsPerLine(maxWidth, fontSize)

	var (
		lines []string
		cur   strings.Builder
		n     int // runes in cur
	)
	for _, w := range words {
		wn := utf8.RuneCountInString(w)
		if n > 0 && n+1+wn <= perLine {
			cur.WriteByte(' ')
			cur.WriteString(w)
			n += 1 + wn
			continue
		}
		if n > 0 {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		cur.WriteString(w)
		n = wn
	}
	if n > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

// charsPerLine is the rune budget of one line under the width heuristic.
func charsPerLine(maxWidth, fontSize float64) int {
	if fontSize <= 0 {
		return 0
	}
	return int(maxWidth / ptToMM(fontSize*avgCharWidth))
}

// clip returns at most n leading lines.
func clip(lines []string, n int) []string {
	if len(lines) > n {
		return lines[:n]
	}
	return lines
}
