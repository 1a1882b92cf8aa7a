package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/faizmokh/mood/internal/config"
	"github.com/faizmokh/mood/internal/files"
	"github.com/faizmokh/mood/internal/log"
	"github.com/faizmokh/mood/internal/moodlog"
)

var fixedNow = time.Date(2025, time.November, 20, 14, 30, 0, 0, time.Local)

type recordingNotifier struct {
	titles   []string
	messages []string
}

func (r *recordingNotifier) Notify(title, message string) error {
	r.titles = append(r.titles, title)
	r.messages = append(r.messages, message)
	return nil
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	mgr, err := files.NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return &App{
		Manager:  mgr,
		Config:   config.Default(),
		Logger:   log.Nop(),
		Notifier: &recordingNotifier{},
		Now:      func() time.Time { return fixedNow },
	}
}

func seedEntries(t *testing.T, app *App, entries ...moodlog.Entry) {
	t.Helper()
	err := app.withStore(context.Background(), func(store *moodlog.Store) error {
		return store.Save(context.Background(), entries)
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func loadEntries(t *testing.T, app *App) []moodlog.Entry {
	t.Helper()
	var entries []moodlog.Entry
	err := app.withStore(context.Background(), func(store *moodlog.Store) error {
		var err error
		entries, err = store.Load(context.Background())
		return err
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return entries
}

func entryAt(t *testing.T, value string, emotion moodlog.Emotion, reason string) moodlog.Entry {
	t.Helper()
	at, err := time.ParseInLocation("2006-01-02 15:04", value, time.Local)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return moodlog.NewEntry(at, emotion, reason)
}

func executeCommand(t *testing.T, cmd *cobra.Command, args ...string) string {
	t.Helper()
	out, err := executeCommandErr(cmd, args...)
	if err != nil {
		t.Fatalf("cmd.Execute(%q): %v\n%s", args, err, out)
	}
	return out
}

func executeCommandErr(cmd *cobra.Command, args ...string) (string, error) {
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func assertContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("output %q missing substring %q", output, want)
	}
}

func assertNotContains(t *testing.T, output, want string) {
	t.Helper()
	if strings.Contains(output, want) {
		t.Fatalf("output %q unexpectedly contained substring %q", output, want)
	}
}

func TestResolveDateAndTime(t *testing.T) {
	date, err := resolveDate(fixedNow, "")
	if err != nil {
		t.Fatalf("resolveDate: %v", err)
	}
	if date.Format("2006-01-02 15:04") != "2025-11-20 00:00" {
		t.Fatalf("default date = %v", date)
	}

	at, err := resolveTime(fixedNow, date, "")
	if err != nil {
		t.Fatalf("resolveTime: %v", err)
	}
	if at.Format("15:04") != "14:30" {
		t.Fatalf("default time = %v", at)
	}

	if _, err := resolveDate(fixedNow, "20-11-2025"); err == nil {
		t.Fatalf("expected error for non ISO date")
	}
	if _, err := resolveTime(fixedNow, date, "9pm"); err == nil {
		t.Fatalf("expected error for bad time")
	}
}

func TestNewestFirstKeepsInputUntouched(t *testing.T) {
	entries := []moodlog.Entry{
		entryAt(t, "2025-11-18 09:00", moodlog.Happy, "a"),
		entryAt(t, "2025-11-20 09:00", moodlog.Sad, "b"),
	}
	sorted := newestFirst(entries)
	if sorted[0].Reason != "b" || entries[0].Reason != "a" {
		t.Fatalf("unexpected order: sorted=%v input=%v", sorted, entries)
	}
}
