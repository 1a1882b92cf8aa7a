package notify

import (
	"errors"
	"testing"
	"time"

	"github.com/faizmokh/mood/internal/moodlog"
)

type recorder struct {
	calls []string
}

func (r *recorder) Notify(title, message string) error {
	r.calls = append(r.calls, title+"|"+message)
	return nil
}

func entryAt(t *testing.T, value string) moodlog.Entry {
	t.Helper()
	at, err := time.ParseInLocation("2006-01-02 15:04", value, time.Local)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return moodlog.NewEntry(at, moodlog.Happy, "fine")
}

func TestDue(t *testing.T) {
	now := time.Date(2025, 11, 20, 21, 0, 0, 0, time.Local)

	if !Due(nil, now) {
		t.Fatalf("expected reminder due with no entries")
	}
	if !Due([]moodlog.Entry{entryAt(t, "2025-11-19 23:59")}, now) {
		t.Fatalf("yesterday's entry should not satisfy today")
	}
	if Due([]moodlog.Entry{entryAt(t, "2025-11-20 00:01")}, now) {
		t.Fatalf("today's entry should satisfy reminder")
	}
}

func TestReminderSend(t *testing.T) {
	now := time.Date(2025, 11, 20, 21, 0, 0, 0, time.Local)
	r := Reminder{Title: "Check in", Message: "How are you?"}

	rec := &recorder{}
	fired, err := r.Send(rec, nil, now)
	if err != nil || !fired {
		t.Fatalf("Send() = %v, %v; want fired", fired, err)
	}
	if len(rec.calls) != 1 || rec.calls[0] != "Check in|How are you?" {
		t.Fatalf("calls = %v", rec.calls)
	}

	rec = &recorder{}
	fired, err = r.Send(rec, []moodlog.Entry{entryAt(t, "2025-11-20 09:00")}, now)
	if err != nil || fired || len(rec.calls) != 0 {
		t.Fatalf("expected no reminder, got fired=%v err=%v calls=%v", fired, err, rec.calls)
	}

	boom := errors.New("no dbus")
	failing := NotifierFunc(func(string, string) error { return boom })
	_, err = r.Send(failing, nil, now)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped notifier error, got %v", err)
	}
}

func TestFormatStreak(t *testing.T) {
	now := time.Date(2025, 11, 20, 21, 0, 0, 0, time.Local)
	entries := []moodlog.Entry{
		entryAt(t, "2025-11-18 10:00"),
		entryAt(t, "2025-11-19 10:00"),
		entryAt(t, "2025-11-20 10:00"),
		entryAt(t, "2025-11-16 10:00"),
	}
	if got := FormatStreak(entries, now); got != "Logged today. 3 day streak." {
		t.Fatalf("FormatStreak() = %q", got)
	}
	if got := FormatStreak(entries[:1], now); got != "No check-in yet today." {
		t.Fatalf("FormatStreak() = %q", got)
	}
	if got := FormatStreak(entries[2:3], now); got != "Logged today. 1 day streak." {
		t.Fatalf("FormatStreak() = %q", got)
	}
}
