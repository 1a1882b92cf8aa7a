package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/faizmokh/mood/internal/files"
	"github.com/faizmokh/mood/internal/log"
	"github.com/faizmokh/mood/internal/moodlog"
)

func newExportCommand(ctx context.Context, app *App) *cobra.Command {
	var (
		formatFlag string
		outputFlag string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the journal as JSON, the legacy string or Markdown.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format := moodlog.Format(strings.ToLower(formatFlag))

			return app.withStore(ctx, func(store *moodlog.Store) error {
				entries, err := store.Load(ctx)
				if err != nil {
					return err
				}

				var data string
				switch format {
				case moodlog.FormatJSON:
					data, err = moodlog.Encode(entries)
					data += "\n"
				case moodlog.FormatLegacy:
					data, err = moodlog.EncodeLegacy(entries)
					data += "\n"
				case moodlog.FormatMarkdown:
					data, err = moodlog.EncodeMarkdown(entries)
				default:
					return fmt.Errorf("invalid format %q (expected one of %v)", formatFlag, moodlog.Formats)
				}
				if err != nil {
					return err
				}

				if outputFlag == "" || outputFlag == "-" {
					_, err := io.WriteString(cmd.OutOrStdout(), data)
					return err
				}
				if err := files.WriteFileAtomic(outputFlag, []byte(data)); err != nil {
					return err
				}
				app.logger().Info("exported journal", log.FieldFormat, string(format), log.FieldCount, len(entries))
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d %s to %s\n", len(entries), plural(len(entries), "entry", "entries"), outputFlag)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&formatFlag, "format", string(moodlog.FormatJSON), "Output format: json, legacy or markdown")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Write to this file instead of stdout")

	return cmd
}

func newImportCommand(ctx context.Context, app *App) *cobra.Command {
	var (
		replace       bool
		skipMalformed bool
	)

	cmd := &cobra.Command{
		Use:   "import <file|->",
		Short: "Merge entries from a JSON, legacy or Markdown export.",
		Long:  "import detects the format of the input, decodes it and appends the entries to the journal. Use --replace to overwrite the journal instead.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			decoded, err := moodlog.Decode(strings.TrimRight(string(data), "\r\n"), moodlog.DecodeOptions{SkipMalformed: skipMalformed || app.Config.SkipMalformed})
			if err != nil {
				return err
			}

			return app.withStore(ctx, func(store *moodlog.Store) error {
				entries := decoded.Entries
				if !replace {
					existing, err := store.Load(ctx)
					if err != nil {
						return err
					}
					entries = append(existing, decoded.Entries...)
				}
				if err := store.Save(ctx, entries); err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				for _, skipped := range decoded.Skipped {
					fmt.Fprintf(out, "skipped: %v\n", skipped)
				}
				app.logger().Info("imported journal",
					log.FieldFormat, string(decoded.Format),
					log.FieldCount, len(decoded.Entries),
				)
				fmt.Fprintf(out, "Imported %d %s (%s), journal now has %d.\n",
					len(decoded.Entries), plural(len(decoded.Entries), "entry", "entries"), decoded.Format, len(entries))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "Replace the journal instead of appending")
	cmd.Flags().BoolVar(&skipMalformed, "skip-malformed", false, "Drop records that cannot be decoded instead of failing")

	return cmd
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("import file %s does not exist", path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
