// Package game drives the simulation: it builds the map and its boundary
// grid, steps every entity on a fixed tick and handles terminal input.
package game

// State represents the current game state.
type State int

const (
	// StateRunning advances movement every tick.
	StateRunning State = iota
	// StatePaused keeps rendering but stops stepping movement.
	StatePaused
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Toggle switches between running and paused.
func (s State) Toggle() State {
	if s == StatePaused {
		return StateRunning
	}
	return StatePaused
}
