package moodlog

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// FilterByEmotion keeps entries whose emotion equals filter. FilterAll or an
// empty filter returns entries unchanged.
func FilterByEmotion(entries []Entry, filter string) []Entry {
	if filter == "" || filter == FilterAll {
		return entries
	}

	filtered := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if string(entry.Emotion) == filter {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// FilterOptions lists FilterAll followed by each distinct emotion in the
// order it first appears.
func FilterOptions(entries []Entry) []string {
	options := []string{FilterAll}
	seen := make(map[Emotion]bool)
	for _, entry := range entries {
		if seen[entry.Emotion] {
			continue
		}
		seen[entry.Emotion] = true
		options = append(options, string(entry.Emotion))
	}
	return options
}

// ParseEmotion matches value case-insensitively against allowed and returns
// the canonical label.
func ParseEmotion(value string, allowed []Emotion) (Emotion, error) {
	value = strings.TrimSpace(value)
	for _, emotion := range allowed {
		if strings.EqualFold(value, string(emotion)) {
			return emotion, nil
		}
	}
	return "", fmt.Errorf("%w %q (expected one of %s)", ErrUnknownEmotion, value, joinEmotions(allowed))
}

// ValidateNew checks the fields of an entry about to be created: the emotion
// must be one of allowed and the reason must be non-blank UTF-8 text.
func ValidateNew(emotion, reason string, allowed []Emotion) (Emotion, string, error) {
	parsed, err := ParseEmotion(emotion, allowed)
	if err != nil {
		return "", "", err
	}
	if !utf8.ValidString(reason) {
		return "", "", ErrInvalidReason
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return "", "", ErrEmptyReason
	}
	return parsed, reason, nil
}

func joinEmotions(emotions []Emotion) string {
	parts := make([]string, len(emotions))
	for i, emotion := range emotions {
		parts[i] = string(emotion)
	}
	return strings.Join(parts, "|")
}
