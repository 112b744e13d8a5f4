package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionNorth            // W, Up arrow
	ActionSouth            // S, Down arrow
	ActionEast             // D, Right arrow
	ActionWest             // A, Left arrow
	ActionBomb             // Q - arm/disarm bombing
	ActionInteract         // E, Space
	ActionRangeUp          // ], =
	ActionRangeDown        // [, -
	ActionSave             // O - export
	ActionLoad             // I - import
	ActionReset            // Backspace
	ActionHelp             // ?
	ActionQuit             // Ctrl+C, Esc
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionNorth:
		return "North"
	case ActionSouth:
		return "South"
	case ActionEast:
		return "East"
	case ActionWest:
		return "West"
	case ActionBomb:
		return "Bomb"
	case ActionInteract:
		return "Interact"
	case ActionRangeUp:
		return "RangeUp"
	case ActionRangeDown:
		return "RangeDown"
	case ActionSave:
		return "Save"
	case ActionLoad:
		return "Load"
	case ActionReset:
		return "Reset"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the action is one of the four movement actions.
func (a Action) IsMove() bool {
	return a >= ActionNorth && a <= ActionWest
}
