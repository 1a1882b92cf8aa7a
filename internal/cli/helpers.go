package cli

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/faizmokh/mood/internal/moodlog"
	"github.com/faizmokh/mood/internal/stats"
)

func resolveDate(now time.Time, dateFlag string) (time.Time, error) {
	if dateFlag == "" {
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}

	parsed, err := time.ParseInLocation(moodlog.DateLayout, dateFlag, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date: %w", err)
	}
	return parsed, nil
}

func resolveTime(now, date time.Time, timeFlag string) (time.Time, error) {
	if timeFlag == "" {
		return time.Date(date.Year(), date.Month(), date.Day(), now.Hour(), now.Minute(), 0, 0, date.Location()), nil
	}

	parsed, err := time.ParseInLocation(moodlog.TimeLayout, timeFlag, date.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time: %w", err)
	}

	return time.Date(date.Year(), date.Month(), date.Day(), parsed.Hour(), parsed.Minute(), 0, 0, date.Location()), nil
}

// resolveWindow prefers the --days flag over the configured window.
func resolveWindow(cmd *cobra.Command, days int, fallback stats.Window) (stats.Window, error) {
	if !cmd.Flags().Changed("days") {
		return fallback, nil
	}
	if days < 1 {
		return stats.Window{}, fmt.Errorf("days must be at least 1")
	}
	return stats.Window{Days: days}, nil
}

func newestFirst(entries []moodlog.Entry) []moodlog.Entry {
	sorted := make([]moodlog.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time.After(sorted[j].Time)
	})
	return sorted
}

func printEntries(out io.Writer, entries []moodlog.Entry, empty string) {
	if len(entries) == 0 {
		fmt.Fprintln(out, empty)
		return
	}
	for i, entry := range entries {
		fmt.Fprintf(out, "%d. %s\n", i+1, entry.String())
	}
}

func plural(count int, singular, many string) string {
	if count == 1 {
		return singular
	}
	return many
}
