package moodlog

import "errors"

// ErrMalformedRecord is returned when a persisted record cannot be decoded into an entry.
var ErrMalformedRecord = errors.New("malformed record")

// ErrDelimiterInField indicates a field cannot be written in the legacy format without corrupting it.
var ErrDelimiterInField = errors.New("field contains a legacy delimiter")

// ErrUnsupportedVersion is returned for JSON envelopes written by a newer format.
var ErrUnsupportedVersion = errors.New("unsupported format version")

// ErrUnknownEmotion indicates the emotion is not one of the configured categories.
var ErrUnknownEmotion = errors.New("unknown emotion")

// ErrEmptyReason indicates the reason is blank.
var ErrEmptyReason = errors.New("reason is required")

// ErrInvalidReason indicates the reason is not valid UTF-8 text.
var ErrInvalidReason = errors.New("reason is not valid UTF-8")
