package chart

import (
	"strings"

	"github.com/j-veylop/waka-box/internal/models"
	"github.com/j-veylop/waka-box/internal/stats"
)

// Options controls how a report is rendered.
type Options struct {
	MergeRules []stats.MergeRule
	TopN       int
}

// DefaultOptions returns the default merge rules and top count.
func DefaultOptions() Options {
	return Options{
		MergeRules: stats.DefaultMergeRules(),
		TopN:       stats.DefaultTopN,
	}
}

// Render normalizes the report and renders its top languages, one per line.
// It returns false when there is nothing to render.
func Render(report models.StatsReport, opts Options) (string, bool) {
	if opts.TopN <= 0 {
		opts.TopN = stats.DefaultTopN
	}

	report = stats.Normalize(report, opts.MergeRules)
	top := stats.Top(report, opts.TopN)
	if len(top) == 0 {
		return "", false
	}

	lines := make([]string, 0, len(top))
	for i := range top {
		lines = append(lines, FormatLine(top[i]))
	}
	return strings.Join(lines, "\n"), true
}
