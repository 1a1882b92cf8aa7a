package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/faizmokh/mood/internal/config"
	"github.com/faizmokh/mood/internal/files"
	"github.com/faizmokh/mood/internal/journal"
	"github.com/faizmokh/mood/internal/log"
	"github.com/faizmokh/mood/internal/moodlog"
	"github.com/faizmokh/mood/internal/notify"
	"github.com/faizmokh/mood/internal/prefs"
	"github.com/faizmokh/mood/internal/ui"
	"github.com/faizmokh/mood/internal/version"
)

// App carries the collaborators shared by every subcommand.
type App struct {
	Manager  *files.Manager
	Config   config.Config
	Logger   *log.Logger
	Notifier notify.Notifier
	Now      func() time.Time

	backend string
}

// withStore opens the configured backend, hands the journal store to fn and
// closes the backend afterwards.
func (a *App) withStore(ctx context.Context, fn func(*moodlog.Store) error) error {
	backend := a.Config.PrefsBackend()
	if a.backend != "" {
		backend = prefs.Backend(a.backend)
	}
	if !backend.IsValid() {
		return fmt.Errorf("invalid backend %q (expected one of %v)", backend, prefs.Backends)
	}

	logger := a.logger()
	p, err := prefs.Open(ctx, backend, a.Manager, moodlog.Namespace, logger)
	if err != nil {
		return fmt.Errorf("open %s store: %w", backend, err)
	}
	defer func() {
		if cerr := p.Close(); cerr != nil {
			logger.Warn("close store", log.FieldBackend, string(backend), log.FieldError, cerr)
		}
	}()

	store := moodlog.NewStore(p,
		moodlog.WithSkipMalformed(a.Config.SkipMalformed),
		moodlog.WithLogger(logger),
	)
	return fn(store)
}

func (a *App) logger() *log.Logger {
	if a.Logger == nil {
		return log.Nop()
	}
	return a.Logger
}

func (a *App) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}

// NewRootCommand creates the top-level Cobra command to host subcommands and TUI launcher.
func NewRootCommand(ctx context.Context, app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mood",
		Short: "Keep a small journal of how you feel, right from your terminal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.withStore(ctx, func(store *moodlog.Store) error {
				session, err := journal.NewSession(ctx, store, journal.Options{
					Emotions: app.Config.EmotionSet(),
					Window:   app.Config.Window(),
					Now:      app.Now,
					Logger:   app.logger(),
				})
				if err != nil {
					return err
				}

				m := ui.NewModel(ctx, session, ui.Options{
					Palette:   app.Config.Palette(),
					BarHeight: app.Config.Chart.BarHeight,
					Logger:    app.logger(),
				})
				if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
					return fmt.Errorf("run TUI: %w", err)
				}
				return nil
			})
		},
		// Flags are parsed by now, so --backend can override a bad configured value.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.Config
			if app.backend != "" {
				cfg.Backend = app.backend
			}
			return cfg.Validate()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&app.backend, "backend", "", "Storage backend: file, sqlite or memory (default: from config)")

	cmd.AddCommand(
		newAddCommand(ctx, app),
		newListCommand(ctx, app),
		newRecentCommand(ctx, app),
		newStatsCommand(ctx, app),
		newExportCommand(ctx, app),
		newImportCommand(ctx, app),
		newClearCommand(ctx, app),
		newRemindCommand(ctx, app),
		newVersionCommand(),
	)

	return cmd
}

// ExecuteCommand loads configuration, opens the log file and runs the root command.
func ExecuteCommand(ctx context.Context) error {
	manager, err := files.NewManager("")
	if err != nil {
		return err
	}

	cfg, err := config.Load(manager)
	if err != nil {
		return err
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logFile, err := manager.OpenLog()
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger := log.New(log.Config{Level: level, Component: log.ComponentCLI, Output: logFile})
	app := &App{
		Manager:  manager,
		Config:   cfg,
		Logger:   logger,
		Notifier: notify.Desktop{},
		Now:      time.Now,
	}

	logger.Debug("starting", log.FieldVersion, version.Short(), log.FieldBackend, cfg.Backend)

	cmd := NewRootCommand(ctx, app)
	if err := cmd.Execute(); err != nil {
		logger.Error("command failed", log.FieldError, err)
		return err
	}
	return nil
}

// Main is a helper used by cmd/mood/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
