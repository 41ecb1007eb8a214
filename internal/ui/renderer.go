package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/tilenav/internal/entity"
	"github.com/samdwyer/tilenav/internal/grid"
	"github.com/samdwyer/tilenav/internal/world"
)

// Frame is everything drawn in one render pass.
type Frame struct {
	Dungeon *world.Dungeon
	Player  *entity.Player
	Walkers []*entity.Walker
	Status  string
	Caught  int
	Moves   int
	State   string
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the map, walkers, player and status lines. Entities are drawn
// on the tile they last arrived on.
func (r *Renderer) Render(f Frame) {
	r.screen.Clear()

	d := f.Dungeon
	for row := 0; row < d.Height; row++ {
		for x := 0; x < d.Width; x++ {
			tile := d.GetTile(x, row)
			r.screen.SetContent(x, row, tile.Rune(), tileStyle(tile))
		}
	}

	for _, w := range f.Walkers {
		r.setTile(w.Tile(), w.Symbol(), tcell.StyleDefault.Foreground(w.Color()))
	}
	if f.Player != nil {
		r.setTile(f.Player.Tile(), f.Player.Symbol, tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))
	}

	r.RenderMessage(fmt.Sprintf("[%s] moves %d  caught %d", f.State, f.Moves, f.Caught), d.Height)
	r.RenderMessage(f.Status, d.Height+1)

	r.screen.Show()
}

// setTile draws on the screen cell of a tile coordinate.
func (r *Renderer) setTile(c grid.Coord, ch rune, style tcell.Style) {
	r.screen.SetContent(c.X, -c.Y, ch, style)
}

func tileStyle(tile world.Tile) tcell.Style {
	switch tile {
	case world.TileWall:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case world.TileFloor:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	default:
		return tcell.StyleDefault
	}
}

// RenderMessage writes msg on row y.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	x := 0
	for _, ch := range msg {
		r.screen.SetContent(x, y, ch, style)
		x++
	}
}
