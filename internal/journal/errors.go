package journal

import "errors"

// ErrInvalidTransition is returned when an event is not allowed on the current screen.
var ErrInvalidTransition = errors.New("invalid screen transition")

// ErrUnknownFilter is returned when the filter is not one of the offered options.
var ErrUnknownFilter = errors.New("unknown filter")
