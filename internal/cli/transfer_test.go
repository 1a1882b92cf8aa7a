package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/faizmokh/mood/internal/moodlog"
)

func TestExportMarkdownRoundTripsThroughImport(t *testing.T) {
	src := newTestApp(t)
	seedEntries(t, src,
		entryAt(t, "2025-11-18 09:00", moodlog.Happy, "sunny, warm; lovely"),
		entryAt(t, "2025-11-19 21:00", moodlog.Sad, "rain"),
	)

	path := filepath.Join(t.TempDir(), "journal.md")
	out := executeCommand(t, newExportCommand(context.Background(), src), "--format", "markdown", "--output", path)
	assertContains(t, out, "Exported 2 entries to "+path)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	assertContains(t, string(data), "## 2025-11-18\n- [09:00] Happy: sunny, warm; lovely")

	dst := newTestApp(t)
	seedEntries(t, dst, entryAt(t, "2025-11-01 10:00", moodlog.Excited, "kept"))
	out = executeCommand(t, newImportCommand(context.Background(), dst), path)
	assertContains(t, out, "Imported 2 entries (markdown), journal now has 3.")

	entries := loadEntries(t, dst)
	if len(entries) != 3 || entries[0].Reason != "kept" || entries[1].Reason != "sunny, warm; lovely" {
		t.Fatalf("unexpected entries %v", entries)
	}
}

func TestExportJSONToStdoutAndReplaceImport(t *testing.T) {
	src := newTestApp(t)
	seedEntries(t, src, entryAt(t, "2025-11-18 09:00", moodlog.Anxious, "deadline"))

	exported := executeCommand(t, newExportCommand(context.Background(), src))
	if !strings.HasPrefix(exported, `{"version":2`) {
		t.Fatalf("unexpected export %q", exported)
	}

	dst := newTestApp(t)
	seedEntries(t, dst, entryAt(t, "2025-11-01 10:00", moodlog.Excited, "dropped"))

	cmd := newImportCommand(context.Background(), dst)
	cmd.SetIn(strings.NewReader(exported))
	out := executeCommand(t, cmd, "--replace", "-")
	assertContains(t, out, "Imported 1 entry (json), journal now has 1.")

	entries := loadEntries(t, dst)
	if len(entries) != 1 || entries[0].Emotion != moodlog.Anxious {
		t.Fatalf("unexpected entries %v", entries)
	}
}

func TestExportLegacyRefusesDelimiters(t *testing.T) {
	app := newTestApp(t)
	seedEntries(t, app, entryAt(t, "2025-11-18 09:00", moodlog.Happy, "one, two"))

	_, err := executeCommandErr(newExportCommand(context.Background(), app), "--format", "legacy")
	if !errors.Is(err, moodlog.ErrDelimiterInField) {
		t.Fatalf("error = %v, want ErrDelimiterInField", err)
	}
}

func TestExportMarkdownRefusesColonInEmotion(t *testing.T) {
	app := newTestApp(t)
	seedEntries(t, app, entryAt(t, "2025-11-18 09:00", "Tired: very", "long day"))

	path := filepath.Join(t.TempDir(), "journal.md")
	_, err := executeCommandErr(newExportCommand(context.Background(), app), "--format", "markdown", "--output", path)
	if !errors.Is(err, moodlog.ErrDelimiterInField) {
		t.Fatalf("error = %v, want ErrDelimiterInField", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Fatalf("export should not write a file, stat error = %v", statErr)
	}
}

func TestImportLegacyStrictAndSkipping(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.txt")
	legacy := "18-11-2025,09:00,Happy,ok;garbage;19-11-2025,10:00,Sad,meh\n"
	if err := os.WriteFile(path, []byte(legacy), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	app := newTestApp(t)
	_, err := executeCommandErr(newImportCommand(context.Background(), app), path)
	if !errors.Is(err, moodlog.ErrMalformedRecord) {
		t.Fatalf("error = %v, want ErrMalformedRecord", err)
	}
	if got := loadEntries(t, app); len(got) != 0 {
		t.Fatalf("strict import must not write, got %d entries", len(got))
	}

	out := executeCommand(t, newImportCommand(context.Background(), app), "--skip-malformed", path)
	assertContains(t, out, "skipped: record 2")
	assertContains(t, out, "Imported 2 entries (legacy), journal now has 2.")

	entries := loadEntries(t, app)
	if entries[1].Reason != "meh" {
		t.Fatalf("trailing newline leaked into reason: %q", entries[1].Reason)
	}
}

func TestImportMissingFile(t *testing.T) {
	app := newTestApp(t)
	_, err := executeCommandErr(newImportCommand(context.Background(), app), filepath.Join(t.TempDir(), "nope.json"))
	if err == nil || !strings.Contains(err.Error(), "does not exist") {
		t.Fatalf("error = %v, want missing file error", err)
	}
}
