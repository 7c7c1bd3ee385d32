package chart

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/j-veylop/waka-box/internal/models"
)

// Column widths of a rendered line.
const (
	NameWidth = 10
	TimeWidth = 14
	BarWidth  = 20
)

const ellipsis = "..."

// LineWidth is the rune length of a line produced by FormatLine.
const LineWidth = NameWidth + 1 + TimeWidth + 1 + BarWidth + 1 + 6

// TruncateName shortens name to width runes, replacing the tail with "..."
// when it does not fit.
func TruncateName(name string, width int) string {
	if utf8.RuneCountInString(name) <= width {
		return name
	}
	keep := width - len(ellipsis)
	if keep < 0 {
		keep = 0
	}
	return string([]rune(name)[:keep]) + ellipsis
}

// FormatLine renders one language as "name time bar percent%".
func FormatLine(stat models.LanguageStat) string {
	return strings.Join([]string{
		padRight(TruncateName(stat.Name, NameWidth), NameWidth),
		padRight(stat.Text, TimeWidth),
		Bar(stat.Percent, BarWidth),
		fmt.Sprintf("%5.1f%%", stat.Percent),
	}, " ")
}

func padRight(value string, width int) string {
	n := utf8.RuneCountInString(value)
	if n >= width {
		return value
	}
	return value + strings.Repeat(" ", width-n)
}
