// Package models defines data structures and domain types.
package models

import (
	"fmt"
	"time"
)

// LanguageStat represents the time spent in one language over the report range.
type LanguageStat struct {
	Name         string  `json:"name"`
	Digital      string  `json:"digital"`
	Text         string  `json:"text"`
	TotalSeconds float64 `json:"total_seconds"`
	Percent      float64 `json:"percent"`
	Hours        int     `json:"hours"`
	Minutes      int     `json:"minutes"`
}

// RefreshDisplay recomputes the display strings from Hours and Minutes.
func (l *LanguageStat) RefreshDisplay() {
	l.Digital = fmt.Sprintf("%d:%d", l.Hours, l.Minutes)
	l.Text = fmt.Sprintf("%d hrs %d mins", l.Hours, l.Minutes)
}

// StatsReport is a list of language stats ordered by time spent, descending.
type StatsReport []LanguageStat

// Index returns the position of the named language, or -1.
func (r StatsReport) Index(name string) int {
	for i := range r {
		if r[i].Name == name {
			return i
		}
	}
	return -1
}

// TotalSeconds sums TotalSeconds across all entries.
func (r StatsReport) TotalSeconds() float64 {
	var total float64
	for i := range r {
		total += r[i].TotalSeconds
	}
	return total
}

// TotalPercent sums Percent across all entries.
func (r StatsReport) TotalPercent() float64 {
	var total float64
	for i := range r {
		total += r[i].Percent
	}
	return total
}

// DailyTotal represents the tracked time for a single day.
type DailyTotal struct {
	Date         time.Time
	TotalSeconds float64
}

// Hours returns the daily total in hours.
func (d DailyTotal) Hours() float64 {
	return d.TotalSeconds / 3600
}
