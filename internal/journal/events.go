package journal

// Event is something the user did. Sessions react to events via Dispatch.
type Event interface {
	isEvent()
}

// Navigate opens a screen from the home menu.
type Navigate struct {
	To Screen
}

// Back returns to the home menu.
type Back struct{}

// Submit saves a new entry from the add-entry form.
type Submit struct {
	Emotion string
	Reason  string
}

// SetFilter changes the emotion filter of the saved-entries view.
type SetFilter struct {
	Value string
}

func (Navigate) isEvent()  {}
func (Back) isEvent()      {}
func (Submit) isEvent()    {}
func (SetFilter) isEvent() {}
