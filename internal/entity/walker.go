package entity

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/tilenav/internal/event"
	"github.com/samdwyer/tilenav/internal/gamedata"
	"github.com/samdwyer/tilenav/internal/grid"
	"github.com/samdwyer/tilenav/internal/movement"
	"github.com/samdwyer/tilenav/internal/navigation"
	"github.com/samdwyer/tilenav/internal/telemetry"
)

// Walker moves on its own, choosing a new heading each time it arrives on a
// tile according to its definition's behavior.
type Walker struct {
	Def    *gamedata.WalkerDef
	Motion *movement.TileSnap

	grid   *grid.BoundaryGrid
	events *event.Dispatcher
	tracer trace.Tracer
	target func() grid.Coord

	patrol  mgl64.Vec2
	arrived bool
	stuck   bool // blocked or caught; suppresses repeat events while idle
}

// NewWalker places a walker from def on start. target reports the tile the
// walker chases or flees from.
func NewWalker(def *gamedata.WalkerDef, g *grid.BoundaryGrid, events *event.Dispatcher, start grid.Coord, tileSize float64, target func() grid.Coord) *Walker {
	w := &Walker{
		Def:    def,
		grid:   g,
		events: events,
		tracer: telemetry.Tracer("entity"),
		target: target,
		patrol: grid.Up.Vec(),
	}
	w.Motion = movement.New(def.Speed*tileSize, func() { w.arrived = true })
	w.Motion.Initialize(start, tileSize)
	return w
}

// SetTracer replaces the tracer used for planning spans.
func (w *Walker) SetTracer(tracer trace.Tracer) {
	w.tracer = tracer
}

// Symbol returns the walker's display rune.
func (w *Walker) Symbol() rune {
	return w.Def.GlyphRune()
}

// Color returns the walker's display color.
func (w *Walker) Color() tcell.Color {
	return w.Def.TCellColor()
}

// Tile returns the tile the walker last arrived on.
func (w *Walker) Tile() grid.Coord {
	return w.Motion.CurrentTile()
}

// Tick advances the walker by one fixed step. An idle walker plans before
// moving; a walker that arrives on a tile plans its next one.
func (w *Walker) Tick(ctx context.Context, dt float64) {
	if w.Motion.IsIdle() {
		w.plan(ctx)
	}
	w.Motion.Step(dt)
	if !w.arrived {
		return
	}
	w.arrived = false
	w.events.Publish(event.WalkerArrived, Arrival{Name: w.Def.Name, Tile: w.Tile()})
	w.plan(ctx)
}

func (w *Walker) plan(ctx context.Context) {
	_, span := w.tracer.Start(ctx, "walker.plan")
	defer span.End()

	here := w.Tile()
	span.SetAttributes(
		attribute.String("walker.id", w.Def.ID),
		attribute.String("walker.behavior", string(w.Def.Behavior)),
		attribute.Int("walker.tile_x", here.X),
		attribute.Int("walker.tile_y", here.Y),
	)

	next, ok, err := w.nextTile(span, here)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	if !ok {
		w.Motion.SetHeading(mgl64.Vec2{})
		if !w.stuck {
			w.stuck = true
			w.report(here)
		}
		return
	}
	w.stuck = false
	w.Motion.SetHeading(next.Sub(here).Vec())
}

// report publishes why the walker stopped.
func (w *Walker) report(here grid.Coord) {
	arrival := Arrival{Name: w.Def.Name, Tile: here}
	if w.Def.Behavior == gamedata.BehaviorChase && here == w.target() {
		w.events.Publish(event.PlayerCaught, arrival)
		return
	}
	w.events.Publish(event.WalkerBlocked, arrival)
}

func (w *Walker) nextTile(span trace.Span, here grid.Coord) (grid.Coord, bool, error) {
	switch w.Def.Behavior {
	case gamedata.BehaviorChase:
		path, err := navigation.FindPath(w.grid, here, w.target())
		span.SetAttributes(attribute.Int("path.length", len(path)))
		if err != nil || len(path) == 0 {
			return grid.Coord{}, false, err
		}
		return path[0], true, nil

	case gamedata.BehaviorFlee:
		return navigation.FarthestOpenNeighbor(w.grid, here, w.target())

	case gamedata.BehaviorPatrol:
		path, err := navigation.FindPathUntilBoundary(w.grid, here, w.patrol)
		span.SetAttributes(attribute.Int("path.length", len(path)))
		if err != nil {
			return grid.Coord{}, false, err
		}
		if len(path) > 0 {
			return path[0], true, nil
		}
		return w.turn(here)
	}
	return grid.Coord{}, false, nil
}

// turn rotates the patrol heading clockwise to the first open side.
func (w *Walker) turn(here grid.Coord) (grid.Coord, bool, error) {
	dir := w.patrol
	for i := 0; i < 4; i++ {
		dir = mgl64.Vec2{dir.Y(), -dir.X()}
		open, err := navigation.IsAdjacentOpen(w.grid, here, dir)
		if err != nil {
			return grid.Coord{}, false, err
		}
		if open {
			w.patrol = dir
			return navigation.AdjacentCoordinate(here, dir), true, nil
		}
	}
	return grid.Coord{}, false, nil
}
