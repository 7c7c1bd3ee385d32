package chart

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/j-veylop/waka-box/internal/models"
)

// RenderTrend plots daily coding hours as an ASCII line chart.
func RenderTrend(days []models.DailyTotal, width, height int) string {
	if len(days) == 0 {
		return "No daily data available"
	}

	// Ensure minimum dimensions
	if width < 20 {
		width = 20
	}
	if height < 3 {
		height = 3
	}

	data := make([]float64, len(days))
	var total float64
	for i, d := range days {
		data[i] = d.Hours()
		total += d.Hours()
	}

	caption := fmt.Sprintf("hours per day, %s to %s (%.1f hrs total)",
		days[0].Date.Format("Jan 2"), days[len(days)-1].Date.Format("Jan 2"), total)

	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(1),
		asciigraph.Caption(caption),
	)
}
