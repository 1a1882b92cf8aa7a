package cli

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/faizmokh/mood/internal/moodlog"
)

func TestCLIWorkflowEndToEnd(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)

	for _, backend := range []string{"file", "sqlite"} {
		t.Run(backend, func(t *testing.T) {
			// 1. Record a few moods.
			addOut := executeCommand(t, NewRootCommand(ctx, app),
				"--backend", backend, "add", "--time", "08:15", "Relaxed", "slow", "morning")
			assertContains(t, addOut, "Saved 2025-11-20 08:15 Relaxed: slow morning (1 entry)")

			executeCommand(t, NewRootCommand(ctx, app),
				"--backend", backend, "add", "--date", "2025-11-18", "--time", "19:00", "happy", "dinner with friends")
			executeCommand(t, NewRootCommand(ctx, app),
				"--backend", backend, "add", "--date", "2025-11-02", "--time", "07:00", "sad", "old news")

			// 2. Recent shows the week, newest first.
			recentOut := executeCommand(t, NewRootCommand(ctx, app), "--backend", backend, "recent")
			assertContains(t, recentOut, "1. 2025-11-20 08:15 Relaxed: slow morning")
			assertContains(t, recentOut, "2. 2025-11-18 19:00 Happy: dinner with friends")
			assertNotContains(t, recentOut, "old news")

			// 3. Stats count only the window.
			statsOut := executeCommand(t, NewRootCommand(ctx, app), "--backend", backend, "stats", "--chart", "pie")
			assertContains(t, statsOut, "Total: 2 entries")

			// 4. Clear empties the journal.
			executeCommand(t, NewRootCommand(ctx, app), "--backend", backend, "clear", "--yes")
			listOut := executeCommand(t, NewRootCommand(ctx, app), "--backend", backend, "list")
			assertContains(t, listOut, "No entries to show.")
		})
	}

	if _, err := os.Stat(app.Manager.DatabasePath()); err != nil {
		t.Fatalf("sqlite backend should create %s: %v", app.Manager.DatabasePath(), err)
	}
}

func TestLegacyValueMigratesOnNextSave(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)

	legacy := `{"saved_emotions": "19-11-2025,09:00,Happy,first try"}` + "\n"
	if err := os.WriteFile(app.Manager.PrefsPath(moodlog.Namespace), []byte(legacy), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	listOut := executeCommand(t, NewRootCommand(ctx, app), "list")
	assertContains(t, listOut, "1. 2025-11-19 09:00 Happy: first try")

	executeCommand(t, NewRootCommand(ctx, app), "add", "Excited", "launch, day; finally")

	data, err := os.ReadFile(app.Manager.PrefsPath(moodlog.Namespace))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	assertContains(t, string(data), `\"version\":2`)

	entries := loadEntries(t, app)
	if len(entries) != 2 || entries[1].Reason != "launch, day; finally" {
		t.Fatalf("unexpected entries %v", entries)
	}
}

func TestRootRejectsUnknownBackend(t *testing.T) {
	app := newTestApp(t)
	_, err := executeCommandErr(NewRootCommand(context.Background(), app), "--backend", "cloud", "list")
	if err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}

func TestBackendFlagOverridesInvalidConfig(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)
	app.Config.Backend = "bogus"

	out := executeCommand(t, NewRootCommand(ctx, app), "--backend", "memory", "list")
	assertContains(t, out, "No entries to show.")

	_, err := executeCommandErr(NewRootCommand(ctx, app), "list")
	if err == nil || !strings.Contains(err.Error(), "invalid backend 'bogus'") {
		t.Fatalf("error = %v, want invalid backend from config", err)
	}
}
