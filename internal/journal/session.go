// Package journal holds the state behind the screens: the entry collection,
// the active screen and the saved-entries filter. The UI feeds it events and
// reads its queries; nothing here knows how the screens are drawn.
package journal

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/faizmokh/mood/internal/log"
	"github.com/faizmokh/mood/internal/moodlog"
	"github.com/faizmokh/mood/internal/stats"
)

// EntryStore persists the whole collection.
type EntryStore interface {
	Load(ctx context.Context) ([]moodlog.Entry, error)
	Save(ctx context.Context, entries []moodlog.Entry) error
}

// Options configures a Session. Zero values fall back to defaults.
type Options struct {
	Emotions []moodlog.Emotion
	Window   stats.Window
	Now      func() time.Time
	Logger   *log.Logger
}

// Session is the controller for one run of the app. It is not safe for
// concurrent use.
type Session struct {
	store    EntryStore
	entries  []moodlog.Entry
	screen   Screen
	filter   string
	saved    *moodlog.Entry
	emotions []moodlog.Emotion
	window   stats.Window
	now      func() time.Time
	logger   *log.Logger
}

// NewSession loads the collection from store and starts on the home screen.
func NewSession(ctx context.Context, store EntryStore, opts Options) (*Session, error) {
	if len(opts.Emotions) == 0 {
		opts.Emotions = moodlog.DefaultEmotions
	}
	if opts.Window.Days <= 0 {
		opts.Window = stats.Weekly()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = log.Nop()
	}

	entries, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}

	return &Session{
		store:    store,
		entries:  entries,
		screen:   ScreenHome,
		filter:   moodlog.FilterAll,
		emotions: opts.Emotions,
		window:   opts.Window,
		now:      opts.Now,
		logger:   opts.Logger.WithComponent(log.ComponentSession),
	}, nil
}

// Dispatch applies ev to the session.
func (s *Session) Dispatch(ctx context.Context, ev Event) error {
	switch ev := ev.(type) {
	case Navigate:
		return s.navigate(ev.To)
	case Back:
		s.back()
		return nil
	case Submit:
		_, err := s.submit(ctx, ev.Emotion, ev.Reason)
		return err
	case SetFilter:
		return s.setFilter(ev.Value)
	default:
		return fmt.Errorf("unsupported event %T", ev)
	}
}

func (s *Session) navigate(to Screen) error {
	if s.screen != ScreenHome {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.screen, to)
	}
	if !isMenuScreen(to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.screen, to)
	}
	s.logger.Debug("navigate", log.FieldScreen, to.String())
	s.screen = to
	return nil
}

func (s *Session) back() {
	if s.screen == ScreenHome {
		return
	}
	s.logger.Debug("back", log.FieldScreen, s.screen.String())
	s.screen = ScreenHome
	s.filter = moodlog.FilterAll
}

func (s *Session) submit(ctx context.Context, emotion, reason string) (moodlog.Entry, error) {
	if s.screen != ScreenAddEntry {
		return moodlog.Entry{}, fmt.Errorf("%w: submit on %s", ErrInvalidTransition, s.screen)
	}

	parsed, reason, err := moodlog.ValidateNew(emotion, reason, s.emotions)
	if err != nil {
		return moodlog.Entry{}, err
	}

	entry := moodlog.NewEntry(s.now(), parsed, reason)
	updated := make([]moodlog.Entry, len(s.entries), len(s.entries)+1)
	copy(updated, s.entries)
	updated = append(updated, entry)

	if err := s.store.Save(ctx, updated); err != nil {
		s.logger.ErrorContext(ctx, "save entry failed", log.FieldError, err)
		return moodlog.Entry{}, err
	}

	s.entries = updated
	s.saved = &entry
	s.screen = ScreenHome
	s.logger.InfoContext(ctx, "entry saved", log.FieldEmotion, string(entry.Emotion), log.FieldCount, len(s.entries))
	return entry, nil
}

func (s *Session) setFilter(value string) error {
	if s.screen != ScreenViewSaved {
		return fmt.Errorf("%w: filter on %s", ErrInvalidTransition, s.screen)
	}
	for _, option := range s.FilterOptions() {
		if option == value {
			s.filter = value
			return nil
		}
	}
	return fmt.Errorf("%w %q", ErrUnknownFilter, value)
}

// Screen returns the active screen.
func (s *Session) Screen() Screen {
	return s.screen
}

// Emotions returns the categories offered on the add-entry form.
func (s *Session) Emotions() []moodlog.Emotion {
	return s.emotions
}

// Window returns the trailing window used by the weekly screens.
func (s *Session) Window() stats.Window {
	return s.window
}

// Now returns the session clock.
func (s *Session) Now() time.Time {
	return s.now()
}

// Entries returns a copy of the collection in insertion order.
func (s *Session) Entries() []moodlog.Entry {
	entries := make([]moodlog.Entry, len(s.entries))
	copy(entries, s.entries)
	return entries
}

// LastSaved returns the entry most recently saved in this session.
func (s *Session) LastSaved() (moodlog.Entry, bool) {
	if s.saved == nil {
		return moodlog.Entry{}, false
	}
	return *s.saved, true
}

// Filter returns the active saved-entries filter.
func (s *Session) Filter() string {
	return s.filter
}

// FilterOptions lists the filters available on the saved-entries view.
func (s *Session) FilterOptions() []string {
	return moodlog.FilterOptions(s.entries)
}

// Visible returns the entries that pass the active filter.
func (s *Session) Visible() []moodlog.Entry {
	return moodlog.FilterByEmotion(s.Entries(), s.filter)
}

// Weekly summarizes the entries in the trailing window.
func (s *Session) Weekly() stats.Summary {
	return stats.Summarize(s.entries, s.now(), s.window, s.emotions)
}

// Recent returns the entries in the trailing window, newest first.
func (s *Session) Recent() []moodlog.Entry {
	recent := stats.InWindow(s.entries, s.now(), s.window)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Time.After(recent[j].Time)
	})
	return recent
}

func isMenuScreen(screen Screen) bool {
	for _, candidate := range MenuScreens {
		if candidate == screen {
			return true
		}
	}
	return false
}
