package notify

import (
	"fmt"
	"time"

	"github.com/gen2brain/beeep"

	"github.com/faizmokh/mood/internal/moodlog"
)

// Notifier delivers a single user-facing message.
type Notifier interface {
	Notify(title, message string) error
}

// Desktop posts native notifications.
type Desktop struct{}

func (Desktop) Notify(title, message string) error {
	return beeep.Notify(title, message, "")
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(title, message string) error

func (f NotifierFunc) Notify(title, message string) error {
	return f(title, message)
}

// Reminder describes the check-in prompt.
type Reminder struct {
	Title   string
	Message string
}

// Due reports whether no entry was logged on now's calendar day.
func Due(entries []moodlog.Entry, now time.Time) bool {
	y, m, d := now.Date()
	for _, entry := range entries {
		ey, em, ed := entry.Date.Date()
		if ey == y && em == m && ed == d {
			return false
		}
	}
	return true
}

// Send posts the reminder when one is due and reports whether it fired.
func (r Reminder) Send(n Notifier, entries []moodlog.Entry, now time.Time) (bool, error) {
	if !Due(entries, now) {
		return false, nil
	}
	if err := n.Notify(r.Title, r.Message); err != nil {
		return false, fmt.Errorf("send reminder: %w", err)
	}
	return true, nil
}

// FormatStreak summarises how many days in a row ending today have an entry.
func FormatStreak(entries []moodlog.Entry, now time.Time) string {
	days := make(map[string]bool, len(entries))
	for _, entry := range entries {
		days[entry.Date.Format(moodlog.DateLayout)] = true
	}
	streak := 0
	for day := now; days[day.Format(moodlog.DateLayout)]; day = day.AddDate(0, 0, -1) {
		streak++
	}
	switch streak {
	case 0:
		return "No check-in yet today."
	case 1:
		return "Logged today. 1 day streak."
	default:
		return fmt.Sprintf("Logged today. %d day streak.", streak)
	}
}
