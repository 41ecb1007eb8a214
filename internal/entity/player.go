// Package entity provides the player and the autonomous walkers that move
// across the boundary grid.
package entity

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/samdwyer/tilenav/internal/event"
	"github.com/samdwyer/tilenav/internal/grid"
	"github.com/samdwyer/tilenav/internal/movement"
	"github.com/samdwyer/tilenav/internal/navigation"
)

// Arrival is the value published with arrival events.
type Arrival struct {
	Name string
	Tile grid.Coord
}

// Player is steered by input. Turns and stops take effect on tile arrival.
type Player struct {
	Symbol rune
	Motion *movement.TileSnap

	grid    *grid.BoundaryGrid
	events  *event.Dispatcher
	wanted  mgl64.Vec2 // direction requested by input
	arrived bool
}

// NewPlayer places a player on start. speed is in tiles per second.
func NewPlayer(g *grid.BoundaryGrid, events *event.Dispatcher, start grid.Coord, tileSize, speed float64) *Player {
	p := &Player{
		Symbol: '@',
		grid:   g,
		events: events,
	}
	p.Motion = movement.New(speed*tileSize, func() { p.arrived = true })
	p.Motion.Initialize(start, tileSize)
	return p
}

// Steer requests a direction. A zero vector asks the player to stop at the
// next tile.
func (p *Player) Steer(dir mgl64.Vec2) {
	p.wanted = dir
	if p.Motion.IsIdle() {
		p.chooseHeading()
	}
}

// Tile returns the tile the player last arrived on.
func (p *Player) Tile() grid.Coord {
	return p.Motion.CurrentTile()
}

// Tick advances the player by one fixed step.
func (p *Player) Tick(dt float64) {
	p.Motion.Step(dt)
	if !p.arrived {
		return
	}
	p.arrived = false
	p.events.Publish(event.PlayerArrived, Arrival{Name: "player", Tile: p.Tile()})
	p.chooseHeading()
}

// chooseHeading takes the requested direction when its tile is open, keeps
// going straight when that is open instead, and stops otherwise.
func (p *Player) chooseHeading() {
	if p.wanted.Len() == 0 {
		p.Motion.SetHeading(mgl64.Vec2{})
		return
	}
	for _, dir := range []mgl64.Vec2{p.wanted, p.Motion.Heading()} {
		if dir.Len() == 0 {
			continue
		}
		open, err := navigation.IsAdjacentOpen(p.grid, p.Tile(), dir)
		if err == nil && open {
			p.Motion.SetHeading(axis(dir))
			return
		}
	}
	p.Motion.SetHeading(mgl64.Vec2{})
}

// axis reduces dir to the unit vector of the axis it resolves to.
func axis(dir mgl64.Vec2) mgl64.Vec2 {
	return grid.Offset(dir).Vec()
}
