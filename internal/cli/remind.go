package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/mood/internal/log"
	"github.com/faizmokh/mood/internal/moodlog"
	"github.com/faizmokh/mood/internal/notify"
	"github.com/faizmokh/mood/internal/version"
)

func newRemindCommand(ctx context.Context, app *App) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Send a desktop reminder if nothing was logged today.",
		Long:  "remind is meant for cron or a login hook. It posts a notification only when today has no entry.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.withStore(ctx, func(store *moodlog.Store) error {
				entries, err := store.Load(ctx)
				if err != nil {
					return err
				}
				now := app.now()
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, notify.FormatStreak(entries, now))

				if dryRun {
					if notify.Due(entries, now) {
						fmt.Fprintln(out, "A reminder would be sent.")
					} else {
						fmt.Fprintln(out, "No reminder needed.")
					}
					return nil
				}

				notifier := app.Notifier
				if notifier == nil {
					notifier = notify.Desktop{}
				}
				reminder := notify.Reminder{Title: app.Config.Reminder.Title, Message: app.Config.Reminder.Message}
				sent, err := reminder.Send(notifier, entries, now)
				if err != nil {
					return err
				}
				if sent {
					app.logger().WithComponent(log.ComponentNotify).Info("reminder sent")
					fmt.Fprintln(out, "Reminder sent.")
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report whether a reminder is due without sending it")

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "mood %s\n", version.Info())
		},
	}
}
