// Package renderer turns derived views into markdown. It is the only
// presentation layer of the module: the core never formats anything beyond
// money and dates.
package renderer

import (
	"strings"

	"github.com/etnz/privates"
)

// barWidth is the maximum number of cells of a chart bar.
const barWidth = 16

// bar draws a proportional magnitude bar. Negative values use a lighter
// shade, the sign itself is carried by the amount next to the bar.
func bar(value, max float64) string {
	if max <= 0 || value == 0 {
		return ""
	}
	mag := value
	cell := "█"
	if mag < 0 {
		mag = -mag
		cell = "▒"
	}
	n := int(mag / max * barWidth)
	if n < 1 {
		n = 1
	}
	return strings.Repeat(cell, n)
}

// noticeIcon maps a notice level to its display icon.
func noticeIcon(level privates.NoticeLevel) string {
	switch level {
	case privates.NoticeUrgent:
		return "🔴"
	case privates.NoticeWarning:
		return "⚠️"
	case privates.NoticeInfo:
		return "ℹ️"
	default:
		return "✅"
	}
}
