package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldError     = "error"
	FieldBackend   = "backend"
	FieldKey       = "key"
	FieldCount     = "count"
	FieldScreen    = "screen"
	FieldEmotion   = "emotion"
	FieldFormat    = "format"
	FieldVersion   = "version"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentCLI     = "cli"
	ComponentTUI     = "tui"
	ComponentStore   = "store"
	ComponentPrefs   = "prefs"
	ComponentSession = "session"
	ComponentNotify  = "notify"
)
