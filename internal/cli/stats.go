package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/faizmokh/mood/internal/moodlog"
	"github.com/faizmokh/mood/internal/stats"
)

type chartKind string

const (
	chartBar  chartKind = "bar"
	chartPie  chartKind = "pie"
	chartBoth chartKind = "both"
)

type statsReport struct {
	Start  string       `json:"start"`
	End    string       `json:"end"`
	Total  int          `json:"total"`
	Counts []statsSlice `json:"counts"`
}

type statsSlice struct {
	Emotion  string  `json:"emotion"`
	Count    int     `json:"count"`
	Fraction float64 `json:"fraction"`
	Angle    float64 `json:"angle"`
	Color    string  `json:"color"`
}

func newStatsCommand(ctx context.Context, app *App) *cobra.Command {
	var (
		days      int
		chartFlag string
		jsonFlag  bool
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize how you felt over the last week.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			window, err := resolveWindow(cmd, days, app.Config.Window())
			if err != nil {
				return err
			}
			kind := chartKind(strings.ToLower(chartFlag))
			switch kind {
			case chartBar, chartPie, chartBoth:
			default:
				return fmt.Errorf("invalid chart %q (expected bar|pie|both)", chartFlag)
			}

			return app.withStore(ctx, func(store *moodlog.Store) error {
				entries, err := store.Load(ctx)
				if err != nil {
					return err
				}
				summary := stats.Summarize(entries, app.now(), window, app.Config.EmotionSet())
				palette := app.Config.Palette()

				out := cmd.OutOrStdout()
				if jsonFlag {
					return writeStatsJSON(out, summary, palette)
				}

				fmt.Fprintf(out, "%s to %s\n", summary.Start.Format(moodlog.DateLayout), summary.End.Format(moodlog.DateLayout))
				if summary.Total == 0 {
					fmt.Fprintln(out, "No entries this week.")
					return nil
				}
				if kind == chartBar || kind == chartBoth {
					fmt.Fprintln(out)
					writeBarChart(out, summary.Counts, app.Config.Chart.BarHeight)
				}
				if kind == chartPie || kind == chartBoth {
					fmt.Fprintln(out)
					writePieTable(out, stats.Pie(summary.Counts, palette))
				}
				fmt.Fprintf(out, "\nTotal: %d %s\n", summary.Total, plural(summary.Total, "entry", "entries"))
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&days, "days", stats.DefaultWindowDays, "Window length in days, ending today")
	cmd.Flags().StringVar(&chartFlag, "chart", string(chartBar), "Chart to print: bar, pie or both")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Print the summary as JSON")

	return cmd
}

func writeStatsJSON(out io.Writer, summary stats.Summary, palette stats.Palette) error {
	report := statsReport{
		Start:  summary.Start.Format(moodlog.DateLayout),
		End:    summary.End.Format(moodlog.DateLayout),
		Total:  summary.Total,
		Counts: []statsSlice{},
	}
	for _, slice := range stats.Pie(summary.Counts, palette) {
		report.Counts = append(report.Counts, statsSlice{
			Emotion:  string(slice.Emotion),
			Count:    slice.Count,
			Fraction: math.Round(slice.Fraction*10000) / 10000,
			Angle:    math.Round(slice.Angle*100) / 100,
			Color:    slice.Color,
		})
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// writeBarChart draws horizontal bars; the longest spans width cells.
func writeBarChart(out io.Writer, counts []stats.Count, width int) {
	labelWidth := 0
	for _, c := range counts {
		if n := len(c.Emotion); n > labelWidth {
			labelWidth = n
		}
	}
	for _, bar := range stats.Bars(counts, width) {
		fmt.Fprintf(out, "%-*s %s %d\n", labelWidth, bar.Emotion, strings.Repeat("█", bar.Height), bar.Count)
	}
}

func writePieTable(out io.Writer, slices []stats.Slice) {
	for _, slice := range slices {
		fmt.Fprintf(out, "%-10s %3d  %5.1f%%  %5.1f°\n", slice.Emotion, slice.Count, slice.Fraction*100, slice.Angle)
	}
}
