package stats

import (
	"testing"
	"time"

	"github.com/faizmokh/mood/internal/moodlog"
)

func entryOn(day time.Time, emotion moodlog.Emotion) moodlog.Entry {
	return moodlog.NewEntry(day.Add(9*time.Hour), emotion, "reason")
}

func TestInWindowTrailingSevenDays(t *testing.T) {
	now := time.Date(2025, time.November, 20, 15, 30, 0, 0, time.Local)
	today := time.Date(2025, time.November, 20, 0, 0, 0, 0, time.Local)

	entries := []moodlog.Entry{
		entryOn(today, moodlog.Happy),
		entryOn(today.AddDate(0, 0, -6), moodlog.Sad),
		entryOn(today.AddDate(0, 0, -8), moodlog.Anxious),
	}

	got := InWindow(entries, now, Weekly())
	if len(got) != 2 {
		t.Fatalf("InWindow len = %d, want 2 (%v)", len(got), got)
	}
	if got[0].Emotion != moodlog.Happy || got[1].Emotion != moodlog.Sad {
		t.Fatalf("InWindow kept %v, want today and today-6", got)
	}
}

func TestWindowBoundaries(t *testing.T) {
	now := time.Date(2025, time.March, 3, 0, 5, 0, 0, time.Local)
	today := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.Local)
	w := Weekly()

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{name: "today", date: today, want: true},
		{name: "late today", date: today.Add(23 * time.Hour), want: true},
		{name: "six days ago across month end", date: today.AddDate(0, 0, -6), want: true},
		{name: "seven days ago", date: today.AddDate(0, 0, -7), want: false},
		{name: "tomorrow", date: today.AddDate(0, 0, 1), want: false},
	}

	for _, tt := range tests {
		if got := w.Contains(tt.date, now); got != tt.want {
			t.Fatalf("%s: Contains(%s) = %v, want %v", tt.name, tt.date.Format("2006-01-02"), got, tt.want)
		}
	}

	if start := w.Start(now); !start.Equal(time.Date(2025, time.February, 25, 0, 0, 0, 0, time.Local)) {
		t.Fatalf("Start = %v", start)
	}
}

func TestWindowMinimumOneDay(t *testing.T) {
	now := time.Date(2025, time.November, 20, 12, 0, 0, 0, time.Local)
	w := Window{Days: 0}
	if !w.Contains(now, now) {
		t.Fatalf("zero-day window should still contain today")
	}
	if w.Contains(now.AddDate(0, 0, -1), now) {
		t.Fatalf("zero-day window should not contain yesterday")
	}
}
