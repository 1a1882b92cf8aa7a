package journal

// Screen is one of the views the user can be looking at.
type Screen uint8

const (
	ScreenHome Screen = iota
	ScreenAddEntry
	ScreenViewSaved
	ScreenWeeklyStats
	ScreenWeeklyRecent
)

// MenuScreens are the destinations offered on the home menu, in order.
var MenuScreens = []Screen{ScreenAddEntry, ScreenViewSaved, ScreenWeeklyStats, ScreenWeeklyRecent}

func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "home"
	case ScreenAddEntry:
		return "add-entry"
	case ScreenViewSaved:
		return "view-saved"
	case ScreenWeeklyStats:
		return "weekly-stats"
	case ScreenWeeklyRecent:
		return "weekly-recent"
	default:
		return "unknown"
	}
}

// Title is the heading shown for the screen.
func (s Screen) Title() string {
	switch s {
	case ScreenHome:
		return "Main menu"
	case ScreenAddEntry:
		return "Add emotion"
	case ScreenViewSaved:
		return "Saved emotions"
	case ScreenWeeklyStats:
		return "Weekly stats"
	case ScreenWeeklyRecent:
		return "This week's entries"
	default:
		return ""
	}
}
