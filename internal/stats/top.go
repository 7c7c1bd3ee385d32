package stats

import "github.com/j-veylop/waka-box/internal/models"

// DefaultTopN is the number of languages shown in the chart.
const DefaultTopN = 5

// Top returns the first n entries of an already sorted report.
func Top(report models.StatsReport, n int) models.StatsReport {
	if n <= 0 || len(report) == 0 {
		return nil
	}
	if n > len(report) {
		n = len(report)
	}
	return report[:n]
}
