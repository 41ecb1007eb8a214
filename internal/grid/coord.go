// Package grid provides tile coordinates and the boundary grid used for navigation.
package grid

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Coord is a tile coordinate. Rows grow downward as negative Y, so the
// top-left tile is (0, 0) and the tile below it is (0, -1).
type Coord struct {
	X, Y int
}

// Add returns the component-wise sum of c and o.
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

// Sub returns the component-wise difference c - o.
func (c Coord) Sub(o Coord) Coord {
	return Coord{X: c.X - o.X, Y: c.Y - o.Y}
}

// Vec returns the coordinate as a floating point vector.
func (c Coord) Vec() mgl64.Vec2 {
	return mgl64.Vec2{float64(c.X), float64(c.Y)}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Unit offsets for the four axis-aligned directions.
var (
	Up    = Coord{X: 0, Y: 1}
	Right = Coord{X: 1, Y: 0}
	Down  = Coord{X: 0, Y: -1}
	Left  = Coord{X: -1, Y: 0}
)

// Offset converts a heading into an axis-aligned unit offset. The x
// component is checked first, so (1, 1) resolves to Right. A zero vector
// yields the zero offset.
func Offset(dir mgl64.Vec2) Coord {
	switch {
	case dir.X() > 0:
		return Right
	case dir.X() < 0:
		return Left
	case dir.Y() > 0:
		return Up
	case dir.Y() < 0:
		return Down
	}
	return Coord{}
}

// PositionVector returns the world position of a tile, assuming the map's
// top-left corner is anchored at the world origin.
func PositionVector(c Coord, tileSize float64) mgl64.Vec2 {
	return mgl64.Vec2{float64(c.X) * tileSize, float64(c.Y) * tileSize}
}
