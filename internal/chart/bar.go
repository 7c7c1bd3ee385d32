// Package chart renders language statistics as fixed-width text.
package chart

import (
	"math"
	"strings"
)

// ramp holds the block glyphs for 0/8 through 8/8 of a cell.
var ramp = []string{"░", "▏", "▎", "▍", "▌", "▋", "▊", "▉", "█"}

const (
	emptyGlyph = 0
	fullGlyph  = 8
)

// Bar renders percent (0-100) as a bar of exactly width glyphs, using
// eighth-cell glyphs for the partially filled cell.
func Bar(percent float64, width int) string {
	if width <= 0 {
		return ""
	}

	eighths := int(math.Floor(float64(width) * 8 * percent / 100))
	if eighths < 0 {
		eighths = 0
	}
	full := eighths / 8
	if full >= width {
		return strings.Repeat(ramp[fullGlyph], width)
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(ramp[fullGlyph], full))
	b.WriteString(ramp[eighths%8])
	b.WriteString(strings.Repeat(ramp[emptyGlyph], width-full-1))
	return b.String()
}
