package navigation

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/samdwyer/tilenav/internal/grid"
)

// AdjacentCoordinate returns the tile next to c in the direction of dir.
// Horizontal movement wins when both components are nonzero.
func AdjacentCoordinate(c grid.Coord, dir mgl64.Vec2) grid.Coord {
	return c.Add(grid.Offset(dir))
}

// IsAdjacentOpen reports whether the tile next to c in the direction of dir
// is open in g.
func IsAdjacentOpen(g *grid.BoundaryGrid, c grid.Coord, dir mgl64.Vec2) (bool, error) {
	return g.IsOpen(AdjacentCoordinate(c, dir))
}

// IsAdjacentEmpty asks the tile source directly whether the tile next to c
// in the direction of dir holds no tile.
func IsAdjacentEmpty(src grid.TileSource, c grid.Coord, dir mgl64.Vec2) bool {
	return !src.HasTile(AdjacentCoordinate(c, dir))
}
