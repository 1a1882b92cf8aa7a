package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/faizmokh/mood/internal/moodlog"
	"github.com/faizmokh/mood/internal/stats"
)

func newAddCommand(ctx context.Context, app *App) *cobra.Command {
	var (
		dateFlag string
		timeFlag string
	)

	cmd := &cobra.Command{
		Use:   "add <emotion> <reason ...>",
		Short: "Record how you feel right now.",
		Long:  "add appends an entry with the given emotion and reason. Emotions are matched case-insensitively against the configured set.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			emotion, reason, err := moodlog.ValidateNew(args[0], strings.Join(args[1:], " "), app.Config.EmotionSet())
			if err != nil {
				return err
			}

			now := app.now()
			date, err := resolveDate(now, dateFlag)
			if err != nil {
				return err
			}
			at, err := resolveTime(now, date, timeFlag)
			if err != nil {
				return err
			}

			entry := moodlog.NewEntry(at, emotion, reason)
			return app.withStore(ctx, func(store *moodlog.Store) error {
				entries, err := store.Append(ctx, entry)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%d %s)\n", entry.String(), len(entries), plural(len(entries), "entry", "entries"))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Target date in YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&timeFlag, "time", "", "Timestamp in HH:MM (default: current time)")

	return cmd
}

func newListCommand(ctx context.Context, app *App) *cobra.Command {
	var (
		emotionFlag string
		jsonFlag    bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print saved entries, optionally for one emotion.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := moodlog.FilterAll
			if emotionFlag != "" && !strings.EqualFold(emotionFlag, moodlog.FilterAll) {
				filter = emotionFlag
			}

			return app.withStore(ctx, func(store *moodlog.Store) error {
				entries, err := store.Load(ctx)
				if err != nil {
					return err
				}
				if filter != moodlog.FilterAll {
					filter = matchLabel(entries, filter)
				}
				visible := moodlog.FilterByEmotion(entries, filter)

				if jsonFlag {
					encoded, err := moodlog.Encode(visible)
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), encoded)
					return nil
				}
				printEntries(cmd.OutOrStdout(), visible, "No entries to show.")
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&emotionFlag, "emotion", "", "Only show entries with this emotion (default: All)")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Print the entries as JSON")

	return cmd
}

// matchLabel returns the stored spelling of label so filters are case-insensitive.
func matchLabel(entries []moodlog.Entry, label string) string {
	for _, entry := range entries {
		if strings.EqualFold(string(entry.Emotion), label) {
			return string(entry.Emotion)
		}
	}
	return label
}

func newRecentCommand(ctx context.Context, app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Print entries from the last week, newest first.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			window, err := resolveWindow(cmd, days, app.Config.Window())
			if err != nil {
				return err
			}

			return app.withStore(ctx, func(store *moodlog.Store) error {
				entries, err := store.Load(ctx)
				if err != nil {
					return err
				}
				now := app.now()
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s to %s\n", window.Start(now).Format(moodlog.DateLayout), now.Format(moodlog.DateLayout))
				printEntries(out, newestFirst(stats.InWindow(entries, now, window)), "No entries this week.")
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&days, "days", stats.DefaultWindowDays, "Window length in days, ending today")

	return cmd
}

func newClearCommand(ctx context.Context, app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every saved entry.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to clear the journal without --yes")
			}
			return app.withStore(ctx, func(store *moodlog.Store) error {
				if err := store.Clear(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Journal cleared.")
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm deleting every entry")

	return cmd
}
