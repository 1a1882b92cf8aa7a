package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/faizmokh/mood/internal/moodlog"
	"github.com/faizmokh/mood/internal/notify"
)

func TestRemindCommandDryRun(t *testing.T) {
	app := newTestApp(t)

	out := executeCommand(t, newRemindCommand(context.Background(), app), "--dry-run")
	assertContains(t, out, "No check-in yet today.")
	assertContains(t, out, "A reminder would be sent.")

	if n := app.Notifier.(*recordingNotifier); len(n.titles) != 0 {
		t.Fatalf("dry run must not notify, got %v", n.titles)
	}
}

func TestRemindCommandSendsWhenNothingLogged(t *testing.T) {
	app := newTestApp(t)
	app.Config.Reminder.Title = "Check in"
	seedEntries(t, app, entryAt(t, "2025-11-19 09:00", moodlog.Happy, "yesterday"))

	out := executeCommand(t, newRemindCommand(context.Background(), app))
	assertContains(t, out, "Reminder sent.")

	n := app.Notifier.(*recordingNotifier)
	if len(n.titles) != 1 || n.titles[0] != "Check in" {
		t.Fatalf("notifications = %v", n.titles)
	}
}

func TestRemindCommandQuietWhenLoggedToday(t *testing.T) {
	app := newTestApp(t)
	seedEntries(t, app,
		entryAt(t, "2025-11-19 09:00", moodlog.Happy, "yesterday"),
		entryAt(t, "2025-11-20 08:00", moodlog.Relaxed, "today"),
	)

	out := executeCommand(t, newRemindCommand(context.Background(), app))
	assertContains(t, out, "Logged today. 2 day streak.")
	assertNotContains(t, out, "Reminder sent.")

	if n := app.Notifier.(*recordingNotifier); len(n.titles) != 0 {
		t.Fatalf("expected no notification, got %v", n.titles)
	}
}

func TestRemindCommandReportsNotifierFailure(t *testing.T) {
	app := newTestApp(t)
	boom := errors.New("no notification daemon")
	app.Notifier = notify.NotifierFunc(func(title, message string) error { return boom })

	out, err := executeCommandErr(newRemindCommand(context.Background(), app))
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want notifier failure", err)
	}
	assertNotContains(t, out, "Reminder sent.")
}

func TestVersionCommand(t *testing.T) {
	out := executeCommand(t, newVersionCommand())
	assertContains(t, out, "mood dev (commit none")
}
