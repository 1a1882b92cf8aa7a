package moodlog

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Format identifies how a stored or exported value is encoded.
type Format string

const (
	// FormatJSON is the versioned JSON envelope written by Save.
	FormatJSON Format = "json"
	// FormatLegacy is the delimited date,time,emotion,reason;... string.
	FormatLegacy Format = "legacy"
	// FormatMarkdown is the human-readable journal written by export.
	FormatMarkdown Format = "markdown"
)

// Formats lists every format the codec can decode.
var Formats = []Format{FormatJSON, FormatLegacy, FormatMarkdown}

// FormatVersion is the envelope version written by Encode. The legacy
// delimited string counts as version 1.
const FormatVersion = 2

type envelope struct {
	Version int      `json:"version"`
	Entries []record `json:"entries"`
}

type record struct {
	Date    string `json:"date"`
	Time    string `json:"time"`
	Emotion string `json:"emotion"`
	Reason  string `json:"reason"`
}

// DecodeOptions tunes how Decode treats bad input.
type DecodeOptions struct {
	// SkipMalformed drops records that fail to decode instead of failing the
	// whole value. Skipped records are reported in Decoded.Skipped.
	SkipMalformed bool
	// Location anchors parsed dates. Defaults to time.Local.
	Location *time.Location
}

// Decoded is the outcome of Decode.
type Decoded struct {
	Entries []Entry
	Format  Format
	Skipped []error
}

// DetectFormat guesses the encoding of value from its first non-space byte.
func DetectFormat(value string) Format {
	trimmed := strings.TrimSpace(value)
	switch {
	case strings.HasPrefix(trimmed, "{"):
		return FormatJSON
	case strings.HasPrefix(trimmed, "#"):
		return FormatMarkdown
	default:
		return FormatLegacy
	}
}

// Encode serializes entries into the JSON envelope.
func Encode(entries []Entry) (string, error) {
	env := envelope{
		Version: FormatVersion,
		Entries: make([]record, 0, len(entries)),
	}
	for _, entry := range entries {
		env.Entries = append(env.Entries, record{
			Date:    entry.Date.Format(DateLayout),
			Time:    entry.Time.Format(TimeLayout),
			Emotion: string(entry.Emotion),
			Reason:  entry.Reason,
		})
	}

	data, err := json.Marshal(env)
	if err != nil {
		return "", fmt.Errorf("encode entries: %w", err)
	}
	return string(data), nil
}

// Decode parses value in whichever format it was written. An empty value
// decodes to no entries.
func Decode(value string, opts DecodeOptions) (Decoded, error) {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if strings.TrimSpace(value) == "" {
		return Decoded{Format: FormatJSON}, nil
	}

	format := DetectFormat(value)
	var (
		decoded Decoded
		err     error
	)
	switch format {
	case FormatJSON:
		decoded, err = decodeJSON(value, opts)
	case FormatMarkdown:
		decoded, err = DecodeMarkdown(strings.NewReader(value), opts)
	default:
		decoded, err = DecodeLegacy(value, opts)
	}
	decoded.Format = format
	return decoded, err
}

func decodeJSON(value string, opts DecodeOptions) (Decoded, error) {
	var env envelope
	if err := json.Unmarshal([]byte(value), &env); err != nil {
		return Decoded{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	if env.Version != FormatVersion {
		return Decoded{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, env.Version)
	}

	var decoded Decoded
	decoded.Entries = make([]Entry, 0, len(env.Entries))
	for i, rec := range env.Entries {
		entry, err := rec.entry(opts.Location)
		if err != nil {
			err = fmt.Errorf("record %d: %w", i+1, err)
			if !opts.SkipMalformed {
				return Decoded{}, err
			}
			decoded.Skipped = append(decoded.Skipped, err)
			continue
		}
		decoded.Entries = append(decoded.Entries, entry)
	}
	return decoded, nil
}

func (r record) entry(loc *time.Location) (Entry, error) {
	date, err := time.ParseInLocation(DateLayout, r.Date, loc)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: date %q", ErrMalformedRecord, r.Date)
	}
	return buildEntry(date, r.Time, r.Emotion, r.Reason)
}

func buildEntry(date time.Time, clock, emotion, reason string) (Entry, error) {
	parsed, err := time.Parse(TimeLayout, clock)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: time %q", ErrMalformedRecord, clock)
	}
	if strings.TrimSpace(emotion) == "" {
		return Entry{}, fmt.Errorf("%w: empty emotion", ErrMalformedRecord)
	}
	return Entry{
		Date:    date,
		Time:    combine(date, parsed),
		Emotion: Emotion(emotion),
		Reason:  reason,
	}, nil
}
