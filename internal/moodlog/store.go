package moodlog

import (
	"context"
	"errors"
	"fmt"

	"github.com/faizmokh/mood/internal/log"
	"github.com/faizmokh/mood/internal/prefs"
)

const (
	// Namespace is the preference namespace the journal lives in.
	Namespace = "emotion_prefs"
	// Key is the single preference key holding the whole collection.
	Key = "saved_emotions"
)

// Store mirrors the entry collection into one preference value.
type Store struct {
	prefs         prefs.Store
	skipMalformed bool
	logger        *log.Logger
}

// Option customizes a Store.
type Option func(*Store)

// WithSkipMalformed makes Load drop undecodable records instead of failing.
func WithSkipMalformed(skip bool) Option {
	return func(s *Store) { s.skipMalformed = skip }
}

// WithLogger attaches a logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger.WithComponent(log.ComponentStore)
		}
	}
}

// NewStore wires a Store over a preference backend.
func NewStore(p prefs.Store, opts ...Option) *Store {
	s := &Store{prefs: p, logger: log.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns the persisted collection. Missing or empty storage yields an
// empty collection.
func (s *Store) Load(ctx context.Context) ([]Entry, error) {
	if s == nil || s.prefs == nil {
		return nil, errors.New("store not initialized with preferences")
	}

	value, err := s.prefs.Get(ctx, Key)
	if err != nil {
		if errors.Is(err, prefs.ErrNotFound) {
			return []Entry{}, nil
		}
		return nil, fmt.Errorf("load entries: %w", err)
	}

	decoded, err := Decode(value, DecodeOptions{SkipMalformed: s.skipMalformed})
	if err != nil {
		return nil, fmt.Errorf("load entries: %w", err)
	}
	for _, skipped := range decoded.Skipped {
		s.logger.WarnContext(ctx, "skipped malformed record", log.FieldError, skipped)
	}
	if decoded.Format != FormatJSON {
		s.logger.InfoContext(ctx, "loaded entries from older format", log.FieldFormat, decoded.Format, log.FieldCount, len(decoded.Entries))
	}
	if decoded.Entries == nil {
		decoded.Entries = []Entry{}
	}
	s.logger.DebugContext(ctx, "entries loaded", log.FieldKey, Key, log.FieldCount, len(decoded.Entries))
	return decoded.Entries, nil
}

// Save overwrites the persisted collection with entries.
func (s *Store) Save(ctx context.Context, entries []Entry) error {
	if s == nil || s.prefs == nil {
		return errors.New("store not initialized with preferences")
	}

	value, err := Encode(entries)
	if err != nil {
		return err
	}
	if err := s.prefs.Put(ctx, Key, value); err != nil {
		return fmt.Errorf("save entries: %w", err)
	}
	s.logger.DebugContext(ctx, "entries saved", log.FieldKey, Key, log.FieldCount, len(entries))
	return nil
}

// Append adds entry to the persisted collection and returns the result.
func (s *Store) Append(ctx context.Context, entry Entry) ([]Entry, error) {
	entries, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	entries = append(entries, entry)
	if err := s.Save(ctx, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Clear removes every entry. It is the only way entries are ever removed.
func (s *Store) Clear(ctx context.Context) error {
	if s == nil || s.prefs == nil {
		return errors.New("store not initialized with preferences")
	}
	if err := s.prefs.Delete(ctx, Key); err != nil {
		return fmt.Errorf("clear entries: %w", err)
	}
	s.logger.InfoContext(ctx, "entries cleared")
	return nil
}
