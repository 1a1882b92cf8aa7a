package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/faizmokh/mood/internal/journal"
	"github.com/faizmokh/mood/internal/log"
	"github.com/faizmokh/mood/internal/moodlog"
	"github.com/faizmokh/mood/internal/stats"
)

// Options tunes how the screens are drawn.
type Options struct {
	Palette   stats.Palette
	BarHeight int
	Logger    *log.Logger
}

// Model owns Bubble Tea state for the journal screens. Application state
// lives in the session; Model only keeps cursor and form state.
type Model struct {
	ctx     context.Context
	session *journal.Session
	logger  *log.Logger

	palette   stats.Palette
	barHeight int
	keys      keyMap
	help      help.Model

	menuIndex    int
	emotionIndex int
	reason       textinput.Model
	chart        chartMode

	statusLine string
	errorLine  string
}

type chartMode uint8

const (
	chartBars chartMode = iota
	chartPie
)

// NewModel wraps a loaded session.
func NewModel(ctx context.Context, session *journal.Session, opts Options) Model {
	if opts.Palette == nil {
		opts.Palette = stats.DefaultPalette
	}
	if opts.BarHeight <= 0 {
		opts.BarHeight = 10
	}

	reason := textinput.New()
	reason.Placeholder = "Why do you feel this way?"
	reason.CharLimit = 280
	reason.Width = 50

	return Model{
		ctx:       ctx,
		session:   session,
		logger:    opts.Logger.WithComponent(log.ComponentTUI),
		palette:   opts.Palette,
		barHeight: opts.BarHeight,
		keys:      defaultKeyMap(),
		help:      help.New(),
		reason:    reason,
	}
}

// Init has nothing to load; the session arrives populated.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update routes key presses to the active screen.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		if m.session.Screen() == journal.ScreenAddEntry {
			var cmd tea.Cmd
			m.reason, cmd = m.reason.Update(msg)
			return m, cmd
		}
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// The reason field takes printable keys, so only esc leaves the form.
	if m.session.Screen() == journal.ScreenAddEntry {
		return m.handleAddEntryKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		return m.back()
	}

	switch m.session.Screen() {
	case journal.ScreenHome:
		return m.handleHomeKey(msg)
	case journal.ScreenViewSaved:
		return m.handleViewSavedKey(msg)
	case journal.ScreenWeeklyStats:
		if key.Matches(msg, m.keys.Chart) {
			if m.chart == chartBars {
				m.chart = chartPie
			} else {
				m.chart = chartBars
			}
		}
	}
	return m, nil
}

func (m Model) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.menuIndex > 0 {
			m.menuIndex--
		}
	case key.Matches(msg, m.keys.Down):
		if m.menuIndex < len(journal.MenuScreens)-1 {
			m.menuIndex++
		}
	case key.Matches(msg, m.keys.Select):
		return m.open(journal.MenuScreens[m.menuIndex])
	default:
		if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
			digit := int(msg.Runes[0] - '1')
			if digit >= 0 && digit < len(journal.MenuScreens) {
				m.menuIndex = digit
				return m.open(journal.MenuScreens[digit])
			}
		}
	}
	return m, nil
}

func (m Model) handleAddEntryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	emotions := m.session.Emotions()
	switch {
	case msg.Type == tea.KeyEsc:
		return m.back()
	case key.Matches(msg, m.keys.Left):
		m.emotionIndex = (m.emotionIndex - 1 + len(emotions)) % len(emotions)
		return m, nil
	case key.Matches(msg, m.keys.Right):
		m.emotionIndex = (m.emotionIndex + 1) % len(emotions)
		return m, nil
	case key.Matches(msg, m.keys.Select):
		return m.submit()
	}

	var cmd tea.Cmd
	m.reason, cmd = m.reason.Update(msg)
	m.errorLine = ""
	return m, cmd
}

func (m Model) handleViewSavedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	step := 0
	switch {
	case key.Matches(msg, m.keys.Left):
		step = -1
	case key.Matches(msg, m.keys.Right):
		step = 1
	default:
		return m, nil
	}

	options := m.session.FilterOptions()
	current := 0
	for i, option := range options {
		if option == m.session.Filter() {
			current = i
			break
		}
	}
	next := options[(current+step+len(options))%len(options)]
	if err := m.session.Dispatch(m.ctx, journal.SetFilter{Value: next}); err != nil {
		m.errorLine = err.Error()
		return m, nil
	}
	m.errorLine = ""
	m.statusLine = ""
	return m, nil
}

func (m Model) open(screen journal.Screen) (tea.Model, tea.Cmd) {
	if err := m.session.Dispatch(m.ctx, journal.Navigate{To: screen}); err != nil {
		m.errorLine = err.Error()
		return m, nil
	}
	m.errorLine = ""
	m.statusLine = ""
	m.chart = chartBars
	m.logger.DebugContext(m.ctx, "screen opened", log.FieldScreen, screen.String())

	if screen == journal.ScreenAddEntry {
		m.emotionIndex = 0
		m.reason.Reset()
		return m, m.reason.Focus()
	}
	return m, nil
}

func (m Model) back() (tea.Model, tea.Cmd) {
	if m.session.Screen() == journal.ScreenAddEntry {
		m.statusLine = "Cancelled."
	} else {
		m.statusLine = ""
	}
	m.errorLine = ""
	m.reason.Blur()
	if err := m.session.Dispatch(m.ctx, journal.Back{}); err != nil {
		m.errorLine = err.Error()
	}
	return m, nil
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	emotion := m.selectedEmotion()
	err := m.session.Dispatch(m.ctx, journal.Submit{
		Emotion: string(emotion),
		Reason:  m.reason.Value(),
	})
	switch {
	case errors.Is(err, moodlog.ErrEmptyReason):
		m.errorLine = "Please tell us why before saving."
		return m, nil
	case err != nil:
		m.logger.WarnContext(m.ctx, "save failed", log.FieldEmotion, string(emotion), log.FieldError, err)
		m.errorLine = fmt.Sprintf("Save failed: %v", err)
		return m, nil
	}

	m.reason.Reset()
	m.reason.Blur()
	m.errorLine = ""
	if saved, ok := m.session.LastSaved(); ok {
		m.statusLine = fmt.Sprintf("Saved %s at %s.", saved.Emotion, saved.Time.Format(moodlog.TimeLayout))
	}
	return m, nil
}

func (m Model) selectedEmotion() moodlog.Emotion {
	emotions := m.session.Emotions()
	if len(emotions) == 0 {
		return ""
	}
	return emotions[m.emotionIndex%len(emotions)]
}

// Session exposes the controller for callers that inspect state after the
// program exits.
func (m Model) Session() *journal.Session {
	return m.session
}
