// Package movement moves an entity continuously between tiles while
// reporting its position only in whole tiles.
package movement

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/samdwyer/tilenav/internal/grid"
)

// TileSnap is a fixed-step movement controller. Each Step advances the world
// position along the heading; once a full tile width has been covered the
// position is snapped onto the tile boundary, the tile coordinate advances
// and the arrival handler runs.
//
// TileSnap is not safe for concurrent use. Step must be called once per
// fixed tick, in order, by a single driver.
type TileSnap struct {
	speed     float64
	tileSize  float64
	onArrival func()

	position mgl64.Vec2
	tile     grid.Coord
	heading  mgl64.Vec2
	distance float64 // travelled since the last snap
}

// New creates a controller moving at speed world units per second. onArrival
// runs after every snap and may be nil.
func New(speed float64, onArrival func()) *TileSnap {
	return &TileSnap{speed: speed, onArrival: onArrival}
}

// Initialize places the controller on start with the given tile size and
// clears any heading and partial travel.
func (m *TileSnap) Initialize(start grid.Coord, tileSize float64) {
	m.tileSize = tileSize
	m.tile = start
	m.position = grid.PositionVector(start, tileSize)
	m.heading = mgl64.Vec2{}
	m.distance = 0
}

// Step advances the controller by dt seconds. At most one tile is credited
// per call: a displacement longer than a tile is cut back to land on the
// next boundary.
func (m *TileSnap) Step(dt float64) {
	var translation mgl64.Vec2
	if m.heading.Len() > 0 {
		translation = m.heading.Normalize().Mul(m.speed * dt)
	}
	m.distance += translation.Len()

	if m.distance < m.tileSize {
		m.position = m.position.Add(translation)
		return
	}

	overshoot := m.distance - m.tileSize
	switch {
	case translation[0] != 0:
		translation[0] += snapBack(translation[0], overshoot)
		m.tile.X += sign(translation[0])
	case translation[1] != 0:
		translation[1] += snapBack(translation[1], overshoot)
		m.tile.Y += sign(translation[1])
	}
	m.position = m.position.Add(translation)

	m.distance = 0
	if m.onArrival != nil {
		m.onArrival()
	}
}

// snapBack returns the correction that shortens a component by overshoot
// toward zero.
func snapBack(component, overshoot float64) float64 {
	if component > 0 {
		return -overshoot
	}
	return overshoot
}

func sign(v float64) int {
	if v > 0 {
		return 1
	}
	return -1
}

// SetHeading sets the direction of travel. Only its direction matters.
func (m *TileSnap) SetHeading(heading mgl64.Vec2) {
	m.heading = heading
}

// Heading returns the current direction of travel.
func (m *TileSnap) Heading() mgl64.Vec2 {
	return m.heading
}

// IsIdle reports whether the controller has no heading.
func (m *TileSnap) IsIdle() bool {
	return m.heading.Len() == 0
}

// CurrentTile returns the tile reached at the last snap.
func (m *TileSnap) CurrentTile() grid.Coord {
	return m.tile
}

// Position returns the continuous world position.
func (m *TileSnap) Position() mgl64.Vec2 {
	return m.position
}

// Distance returns the distance travelled since the last snap.
func (m *TileSnap) Distance() float64 {
	return m.distance
}

// TileSize returns the tile width set by Initialize.
func (m *TileSnap) TileSize() float64 {
	return m.tileSize
}

// Speed returns the movement speed in world units per second.
func (m *TileSnap) Speed() float64 {
	return m.speed
}

// SetSpeed changes the movement speed.
func (m *TileSnap) SetSpeed(speed float64) {
	m.speed = speed
}
