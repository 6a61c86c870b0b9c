package selection

import "github.com/lixenwraith/vi-chess/grid"

// State is the controller's selection state
type State uint8

const (
	StateIdle     State = iota // No selection, awaiting a click on an occupied cell
	StateSelected              // One cell highlighted, awaiting the target click
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSelected:
		return "selected"
	}
	return "unknown"
}

// Outcome describes what a click did
type Outcome uint8

const (
	OutcomeNone       Outcome = iota // Click on an empty cell while idle
	OutcomeSelected                  // Cell highlighted
	OutcomeDeselected                // Selected cell clicked again
	OutcomeMoved                     // Engine accepted the transition
	OutcomeRejected                  // Engine refused the transition
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeSelected:
		return "selected"
	case OutcomeDeselected:
		return "deselected"
	case OutcomeMoved:
		return "moved"
	case OutcomeRejected:
		return "rejected"
	}
	return "unknown"
}

// Selection is the highlighted cell and the background it had before
type Selection struct {
	Index   int
	SavedBg grid.Color
}
