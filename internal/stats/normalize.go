// Package stats normalizes and ranks language statistics.
package stats

import (
	"sort"

	"github.com/j-veylop/waka-box/internal/models"
)

// MergeRule folds the Source language into the Target language.
type MergeRule struct {
	Source string `toml:"source"`
	Target string `toml:"target"`
}

// DefaultMergeRules returns the rules applied when none are configured.
func DefaultMergeRules() []MergeRule {
	return []MergeRule{{Source: "Other", Target: "TypeScript"}}
}

// MergeCategory adds source's time into target, removes source and re-sorts
// the report by TotalSeconds descending. The report is returned unchanged
// when either language is missing.
//
// The merge happens in place: the caller's backing array is shifted and
// re-sorted, so only the returned slice should be used afterwards.
func MergeCategory(report models.StatsReport, source, target string) models.StatsReport {
	if source == target {
		return report
	}
	srcIdx := report.Index(source)
	dstIdx := report.Index(target)
	if srcIdx == -1 || dstIdx == -1 {
		return report
	}

	src := report[srcIdx]
	dst := &report[dstIdx]

	dst.Hours += src.Hours
	dst.Minutes += src.Minutes
	// Only one carry: both inputs are below 60.
	if dst.Minutes >= 60 {
		dst.Minutes -= 60
		dst.Hours++
	}
	dst.RefreshDisplay()
	dst.TotalSeconds += src.TotalSeconds
	dst.Percent += src.Percent

	report = append(report[:srcIdx], report[srcIdx+1:]...)
	SortByTime(report)

	return report
}

// Normalize applies each rule in order.
func Normalize(report models.StatsReport, rules []MergeRule) models.StatsReport {
	for _, rule := range rules {
		report = MergeCategory(report, rule.Source, rule.Target)
	}
	return report
}

// SortByTime orders the report by TotalSeconds, highest first.
// Entries with equal time keep their relative order.
func SortByTime(report models.StatsReport) {
	sort.SliceStable(report, func(i, j int) bool {
		return report[i].TotalSeconds > report[j].TotalSeconds
	})
}
