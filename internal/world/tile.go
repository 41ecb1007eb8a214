// Package world provides the tile maps that navigation grids are built from.
package world

import "fmt"

// Tile represents a single map tile.
type Tile rune

const (
	// TileWall represents an impassable wall tile.
	TileWall Tile = '#'
	// TileFloor represents a passable floor tile.
	TileFloor Tile = '.'
)

// ParseTile converts a map character into a tile. Spaces read as floor.
func ParseTile(r rune) (Tile, error) {
	switch r {
	case '#':
		return TileWall, nil
	case '.', ' ':
		return TileFloor, nil
	default:
		return 0, fmt.Errorf("unknown map character %q", r)
	}
}

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t == TileFloor
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}
