package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Behavior names how a walker picks its next tile.
type Behavior string

const (
	BehaviorChase  Behavior = "chase"
	BehaviorFlee   Behavior = "flee"
	BehaviorPatrol Behavior = "patrol"
)

// Valid reports whether b is a known behavior.
func (b Behavior) Valid() bool {
	switch b {
	case BehaviorChase, BehaviorFlee, BehaviorPatrol:
		return true
	}
	return false
}

// WalkerDef defines a walker type loaded from walkers.yaml.
type WalkerDef struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Glyph       string   `yaml:"glyph"`
	Color       string   `yaml:"color"` // hex, e.g. "#00FF00"
	Speed       float64  `yaml:"speed"` // tiles per second
	Behavior    Behavior `yaml:"behavior"`
	SpawnWeight int      `yaml:"spawnWeight"`
}

// GlyphRune returns the glyph as a rune for rendering.
func (w *WalkerDef) GlyphRune() rune {
	for _, r := range w.Glyph {
		return r
	}
	return '?'
}

// TCellColor returns the walker color, white when it does not parse.
func (w *WalkerDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(w.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// Validate checks the fields the game depends on.
func (w *WalkerDef) Validate() error {
	if w.ID == "" {
		return fmt.Errorf("walker without id")
	}
	if w.Speed <= 0 {
		return fmt.Errorf("walker %s: speed must be positive, got %v", w.ID, w.Speed)
	}
	if !w.Behavior.Valid() {
		return fmt.Errorf("walker %s: unknown behavior %q", w.ID, w.Behavior)
	}
	return nil
}

// WalkersFile represents the structure of walkers.yaml.
type WalkersFile struct {
	Walkers []WalkerDef `yaml:"walkers"`
}

// LoadWalkers loads and validates walker definitions from the embedded walkers.yaml.
func LoadWalkers() ([]WalkerDef, error) {
	file, err := Load[WalkersFile]("walkers.yaml")
	if err != nil {
		return nil, err
	}
	for i := range file.Walkers {
		if err := file.Walkers[i].Validate(); err != nil {
			return nil, fmt.Errorf("walkers.yaml: %w", err)
		}
	}
	return file.Walkers, nil
}
