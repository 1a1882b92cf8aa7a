package moodlog

import (
	"strings"
	"time"
)

// Emotion is the category label attached to an entry.
type Emotion string

const (
	Happy   Emotion = "Happy"
	Sad     Emotion = "Sad"
	Anxious Emotion = "Anxious"
	Relaxed Emotion = "Relaxed"
	Excited Emotion = "Excited"
)

// DefaultEmotions is the built-in category set, in display order.
var DefaultEmotions = []Emotion{Happy, Sad, Anxious, Relaxed, Excited}

// FilterAll is the filter value that keeps every entry.
const FilterAll = "All"

// Entry is one recorded mood observation. Entries are never edited after
// creation; duplicates are allowed.
type Entry struct {
	// Date is the calendar day at midnight.
	Date time.Time
	// Time carries the wall-clock minute on Date.
	Time    time.Time
	Emotion Emotion
	Reason  string
}

// NewEntry stamps an entry from a single instant, truncated to the minute.
func NewEntry(at time.Time, emotion Emotion, reason string) Entry {
	return Entry{
		Date:    startOfDay(at),
		Time:    time.Date(at.Year(), at.Month(), at.Day(), at.Hour(), at.Minute(), 0, 0, at.Location()),
		Emotion: emotion,
		Reason:  reason,
	}
}

// Equal reports whether two entries hold the same day, minute, emotion and reason.
func (e Entry) Equal(other Entry) bool {
	return sameDay(e.Date, other.Date) &&
		e.Time.Hour() == other.Time.Hour() &&
		e.Time.Minute() == other.Time.Minute() &&
		e.Emotion == other.Emotion &&
		e.Reason == other.Reason
}

// String renders the entry on one line for logs and CLI output.
func (e Entry) String() string {
	var b strings.Builder
	b.Grow(24 + len(e.Emotion) + len(e.Reason))
	b.WriteString(e.Date.Format(DateLayout))
	b.WriteByte(' ')
	b.WriteString(e.Time.Format(TimeLayout))
	b.WriteByte(' ')
	b.WriteString(string(e.Emotion))
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	return b.String()
}

const (
	// DateLayout is the calendar-day layout used by the JSON and Markdown formats.
	DateLayout = "2006-01-02"
	// TimeLayout is the clock layout shared by every format.
	TimeLayout = "15:04"
)

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func combine(date, clock time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), clock.Hour(), clock.Minute(), 0, 0, date.Location())
}
