// Package stats aggregates journal entries for the weekly charts.
package stats

import (
	"time"

	"github.com/faizmokh/mood/internal/moodlog"
)

// DefaultWindowDays is the trailing period used for weekly stats.
const DefaultWindowDays = 7

// Window is a trailing period of whole calendar days ending today.
type Window struct {
	Days int
}

// Weekly returns the seven-day window.
func Weekly() Window {
	return Window{Days: DefaultWindowDays}
}

// Start returns the first day inside the window relative to now.
func (w Window) Start(now time.Time) time.Time {
	days := w.Days
	if days < 1 {
		days = 1
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return today.AddDate(0, 0, -(days - 1))
}

// Contains reports whether the calendar day of date lies between Start(now)
// and today, both inclusive. Days after today are outside the window.
func (w Window) Contains(date, now time.Time) bool {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return !day.Before(w.Start(now)) && !day.After(today)
}

// InWindow keeps the entries dated inside w, preserving order.
func InWindow(entries []moodlog.Entry, now time.Time, w Window) []moodlog.Entry {
	kept := make([]moodlog.Entry, 0, len(entries))
	for _, entry := range entries {
		if w.Contains(entry.Date, now) {
			kept = append(kept, entry)
		}
	}
	return kept
}
