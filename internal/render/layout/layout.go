// Package layout holds the text block policies of labels: line wrapping by
// declared line count, horizontal justification and vertical centering, plus
// small box helpers.
package layout

import (
	"strings"

	"github.com/rook-computer/teeui/internal/units"
)

// Justification controls where a line sits horizontally inside its box.
type Justification int

const (
	JustifyLeft Justification = iota
	JustifyCenter
	JustifyRight
)

// Normalize clamps negative extents to zero.
func Normalize(box units.Box) units.Box {
	if box.W < 0 {
		box.W = 0
	}
	if box.H < 0 {
		box.H = 0
	}
	return box
}

// Wrap breaks text into lines no wider than maxWidth, greedily by words.
// Explicit newlines always break. Words wider than maxWidth are split between
// runes. At most maxLines lines are returned; text that does not fit is
// dropped. maxLines <= 0 means no limit.
func Wrap(text string, maxWidth units.Px, maxLines int, measure func(string) units.Px) []string {
	var lines []string
	full := func() bool { return maxLines > 0 && len(lines) >= maxLines }

	for _, paragraph := range strings.Split(text, "\n") {
		if full() {
			break
		}
		start := len(lines)
		line := ""
		for _, word := range strings.Fields(paragraph) {
			candidate := word
			if line != "" {
				candidate = line + " " + word
			}
			if measure(candidate) <= maxWidth {
				line = candidate
				continue
			}
			if line != "" {
				lines = append(lines, line)
				if full() {
					return lines
				}
			}
			// The word alone is too wide: split it.
			line = ""
			for measure(word) > maxWidth {
				head := splitToWidth(word, maxWidth, measure)
				lines = append(lines, head)
				if full() {
					return lines
				}
				word = word[len(head):]
			}
			line = word
		}
		if line != "" || len(lines) == start {
			lines = append(lines, line)
		}
	}
	return lines
}

// splitToWidth returns the longest rune prefix of word that fits maxWidth,
// and at least one rune.
func splitToWidth(word string, maxWidth units.Px, measure func(string) units.Px) string {
	end := 0
	for i, r := range word {
		next := i + len(string(r))
		if end > 0 && measure(word[:next]) > maxWidth {
			break
		}
		end = next
	}
	return word[:end]
}

// LineX returns the left edge of a line of lineWidth inside box.
func LineX(box units.Box, lineWidth units.Px, j Justification) units.Px {
	switch j {
	case JustifyRight:
		return box.Right() - lineWidth
	case JustifyCenter:
		return box.X + (box.W-lineWidth)/2
	default:
		return box.X
	}
}

// BlockTop returns the top of a block of lines inside box. A vertically
// centered block is centered by its total height.
func BlockTop(box units.Box, lines int, lineHeight units.Px, verticallyCentered bool) units.Px {
	if !verticallyCentered {
		return box.Y
	}
	return box.Y + (box.H-units.Px(lines)*lineHeight)/2
}
