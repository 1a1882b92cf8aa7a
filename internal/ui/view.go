package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/faizmokh/mood/internal/journal"
	"github.com/faizmokh/mood/internal/moodlog"
	"github.com/faizmokh/mood/internal/stats"
)

const (
	barColumnWidth = 9
	pieBarWidth    = 40
)

// View renders the frame.
func (m Model) View() string {
	var b strings.Builder

	screen := m.session.Screen()
	b.WriteString(titleStyle.Render(screen.Title()))
	b.WriteString("\n\n")

	switch screen {
	case journal.ScreenHome:
		m.viewHome(&b)
	case journal.ScreenAddEntry:
		m.viewAddEntry(&b)
	case journal.ScreenViewSaved:
		m.viewSaved(&b)
	case journal.ScreenWeeklyStats:
		m.viewStats(&b)
	case journal.ScreenWeeklyRecent:
		m.viewRecent(&b)
	}

	if m.errorLine != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("! " + m.errorLine))
		b.WriteByte('\n')
	} else if m.statusLine != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.statusLine))
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.screenKeys()))
	b.WriteByte('\n')
	return b.String()
}

func (m Model) screenKeys() contextKeys {
	switch m.session.Screen() {
	case journal.ScreenHome:
		return contextKeys{m.keys.Up, m.keys.Down, m.keys.Select, m.keys.Quit}
	case journal.ScreenAddEntry:
		return contextKeys{
			key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "emotion")),
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		}
	case journal.ScreenViewSaved:
		return contextKeys{
			key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "filter")),
			m.keys.Back, m.keys.Quit,
		}
	case journal.ScreenWeeklyStats:
		return contextKeys{m.keys.Chart, m.keys.Back, m.keys.Quit}
	default:
		return contextKeys{m.keys.Back, m.keys.Quit}
	}
}

func (m Model) viewHome(b *strings.Builder) {
	for i, screen := range journal.MenuScreens {
		label := fmt.Sprintf("%d. %s", i+1, screen.Title())
		if i == m.menuIndex {
			b.WriteString(selectedStyle.Render("> " + label))
		} else {
			b.WriteString(textStyle.Render("  " + label))
		}
		b.WriteByte('\n')
	}

	if saved, ok := m.session.LastSaved(); ok {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("Last saved: " + formatEntry(saved)))
		b.WriteByte('\n')
	}
}

func (m Model) viewAddEntry(b *strings.Builder) {
	b.WriteString(subtitleStyle.Render("How do you feel?"))
	b.WriteString("\n")

	selected := m.selectedEmotion()
	chips := make([]string, 0, len(m.session.Emotions()))
	for _, emotion := range m.session.Emotions() {
		if emotion == selected {
			chips = append(chips, selectedStyle.Render(" "+string(emotion)+" "))
		} else {
			chips = append(chips, swatch(m.palette.Color(emotion), " "+string(emotion)+" "))
		}
	}
	b.WriteString(strings.Join(chips, " "))
	b.WriteString("\n\n")

	b.WriteString(subtitleStyle.Render("Why?"))
	b.WriteString("\n")
	b.WriteString(m.reason.View())
	b.WriteByte('\n')
}

func (m Model) viewSaved(b *strings.Builder) {
	fmt.Fprintf(b, "Filter: < %s >\n\n", subtitleStyle.Render(m.session.Filter()))

	visible := m.session.Visible()
	if len(visible) == 0 {
		b.WriteString(mutedStyle.Render("No entries to show."))
		b.WriteByte('\n')
		return
	}
	for _, entry := range visible {
		b.WriteString(m.renderEntry(entry))
		b.WriteByte('\n')
	}
}

func (m Model) viewStats(b *strings.Builder) {
	summary := m.session.Weekly()
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%s to %s", summary.Start.Format(moodlog.DateLayout), summary.End.Format(moodlog.DateLayout))))
	b.WriteString("\n\n")

	if summary.Total == 0 {
		b.WriteString(mutedStyle.Render("No entries this week."))
		b.WriteByte('\n')
		return
	}

	if m.chart == chartPie {
		b.WriteString(m.renderPie(summary.Counts))
	} else {
		b.WriteString(m.renderBars(summary.Counts))
	}
	fmt.Fprintf(b, "\nTotal: %d\n", summary.Total)
}

func (m Model) viewRecent(b *strings.Builder) {
	recent := m.session.Recent()
	if len(recent) == 0 {
		b.WriteString(mutedStyle.Render("No entries this week."))
		b.WriteByte('\n')
		return
	}
	for _, entry := range recent {
		b.WriteString(m.renderEntry(entry))
		b.WriteByte('\n')
	}
}

// renderBars draws one vertical column per emotion, tallest at barHeight rows.
func (m Model) renderBars(counts []stats.Count) string {
	bars := stats.Bars(counts, m.barHeight)
	columns := make([]string, 0, len(bars))
	for _, bar := range bars {
		var col strings.Builder
		for row := m.barHeight; row >= 1; row-- {
			if bar.Height >= row {
				col.WriteString(swatch(m.palette.Color(bar.Emotion), strings.Repeat("█", barColumnWidth-2)))
			} else {
				col.WriteString(strings.Repeat(" ", barColumnWidth-2))
			}
			col.WriteByte('\n')
		}
		col.WriteString(fmt.Sprintf("%-*d\n", barColumnWidth-2, bar.Count))
		col.WriteString(truncate(string(bar.Emotion), barColumnWidth-2))
		columns = append(columns, lipgloss.NewStyle().Width(barColumnWidth).Render(col.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, columns...) + "\n"
}

// renderPie shows each slice as a share of a single strip plus a legend with
// its angle.
func (m Model) renderPie(counts []stats.Count) string {
	slices := stats.Pie(counts, m.palette)
	var b strings.Builder

	used := 0
	for i, slice := range slices {
		width := int(math.Round(slice.Fraction * pieBarWidth))
		if i == len(slices)-1 {
			width = pieBarWidth - used
		}
		if width < 0 {
			width = 0
		}
		used += width
		b.WriteString(swatch(slice.Color, strings.Repeat("█", width)))
	}
	b.WriteString("\n\n")

	for _, slice := range slices {
		fmt.Fprintf(&b, "%s %-10s %3d  %5.1f%%  %5.1f°\n",
			swatch(slice.Color, "●"), slice.Emotion, slice.Count, slice.Fraction*100, slice.Angle)
	}
	return b.String()
}

func (m Model) renderEntry(entry moodlog.Entry) string {
	stamp := mutedStyle.Render(fmt.Sprintf("[%s %s]", entry.Date.Format(moodlog.DateLayout), entry.Time.Format(moodlog.TimeLayout)))
	emotion := swatch(m.palette.Color(entry.Emotion), string(entry.Emotion))
	return fmt.Sprintf("%s %s: %s", stamp, emotion, entry.Reason)
}

func formatEntry(entry moodlog.Entry) string {
	return fmt.Sprintf("[%s %s] %s: %s",
		entry.Date.Format(moodlog.DateLayout), entry.Time.Format(moodlog.TimeLayout), entry.Emotion, entry.Reason)
}

func truncate(value string, width int) string {
	runes := []rune(value)
	if len(runes) <= width {
		return value
	}
	return string(runes[:width])
}
