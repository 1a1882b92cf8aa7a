package moodlog

import (
	"fmt"
	"strings"
	"time"
)

const (
	legacyRecordSep = ";"
	legacyFieldSep  = ","
	legacyFields    = 4

	// LegacyDateLayout is the dd-MM-yyyy day format of the delimited string.
	LegacyDateLayout = "02-01-2006"
)

// DecodeLegacy parses the delimited date,time,emotion,reason;... string.
// A record that does not split into exactly four fields is malformed.
func DecodeLegacy(value string, opts DecodeOptions) (Decoded, error) {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	decoded := Decoded{Format: FormatLegacy}
	if value == "" {
		return decoded, nil
	}

	records := strings.Split(value, legacyRecordSep)
	decoded.Entries = make([]Entry, 0, len(records))
	for i, raw := range records {
		entry, err := decodeLegacyRecord(raw, opts.Location)
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

func decodeLegacyRecord(raw string, loc *time.Location) (Entry, error) {
	parts := strings.Split(raw, legacyFieldSep)
	if len(parts) != legacyFields {
		return Entry{}, fmt.Errorf("%w: want %d fields, got %d", ErrMalformedRecord, legacyFields, len(parts))
	}

	date, err := time.ParseInLocation(LegacyDateLayout, parts[0], loc)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: date %q", ErrMalformedRecord, parts[0])
	}
	return buildEntry(date, parts[1], parts[2], parts[3])
}

// EncodeLegacy writes entries in the delimited format. It refuses fields that
// contain either delimiter since the format has no escaping.
func EncodeLegacy(entries []Entry) (string, error) {
	records := make([]string, 0, len(entries))
	for i, entry := range entries {
		fields := []string{
			entry.Date.Format(LegacyDateLayout),
			entry.Time.Format(TimeLayout),
			string(entry.Emotion),
			entry.Reason,
		}
		for _, field := range fields {
			if strings.ContainsAny(field, legacyRecordSep+legacyFieldSep) {
				return "", fmt.Errorf("entry %d: %w: %q", i+1, ErrDelimiterInField, field)
			}
		}
		records = append(records, strings.Join(fields, legacyFieldSep))
	}
	return strings.Join(records, legacyRecordSep), nil
}
