package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/tilenav/internal/entity"
	"github.com/samdwyer/tilenav/internal/event"
	"github.com/samdwyer/tilenav/internal/gamedata"
	"github.com/samdwyer/tilenav/internal/grid"
	"github.com/samdwyer/tilenav/internal/telemetry"
	"github.com/samdwyer/tilenav/internal/world"
)

// Session is the simulation state advanced by the fixed tick. It has no
// terminal dependency so it can be driven directly.
type Session struct {
	Dungeon *world.Dungeon
	Grid    *grid.BoundaryGrid
	Player  *entity.Player
	Walkers []*entity.Walker
	Events  *event.Dispatcher
	Status  *StatusLine
	Ticks   int
}

// NewSession builds the map, its boundary grid and every entity.
func NewSession(ctx context.Context, cfg Config, registry *gamedata.Registry) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var dungeon *world.Dungeon
	if cfg.MapPath != "" {
		d, err := world.LoadMapFile(cfg.MapPath)
		if err != nil {
			return nil, err
		}
		d.SetRand(rng)
		dungeon = d
	} else {
		dungeon = world.NewDungeon(world.DefaultWidth, world.DefaultHeight, rng)
		dungeon.Generate(ctx)
	}

	g, err := grid.FromSource(dungeon)
	if err != nil {
		return nil, fmt.Errorf("failed to build boundary grid: %w", err)
	}

	start, ok := dungeon.RandomFloor(0)
	if !ok {
		return nil, fmt.Errorf("map has no floor to start on")
	}

	s := &Session{
		Dungeon: dungeon,
		Grid:    g,
		Events:  event.NewDispatcher(),
		Status:  &StatusLine{},
	}
	s.Status.Subscribe(s.Events)
	s.Player = entity.NewPlayer(g, s.Events, start, cfg.TileSize, cfg.PlayerSpeed)

	for i := 0; i < cfg.Walkers; i++ {
		def := registry.SpawnRandom(rng)
		if def == nil {
			break
		}
		room := -1
		if len(dungeon.Rooms) > 1 {
			room = 1 + i%(len(dungeon.Rooms)-1)
		}
		at, _ := dungeon.RandomFloor(room)
		s.Walkers = append(s.Walkers, entity.NewWalker(def, g, s.Events, at, cfg.TileSize, s.Player.Tile))
	}

	span.SetAttributes(
		attribute.Int64("game.seed", seed),
		attribute.Int("dungeon.rooms", len(dungeon.Rooms)),
		attribute.Int("grid.width", g.Width()),
		attribute.Int("grid.height", g.Height()),
		attribute.Int("player.start_x", start.X),
		attribute.Int("player.start_y", start.Y),
		attribute.Int("walkers", len(s.Walkers)),
	)
	return s, nil
}

// Tick advances the player and then every walker by one fixed step.
func (s *Session) Tick(ctx context.Context, dt float64) {
	s.Ticks++
	s.Player.Tick(dt)
	for _, w := range s.Walkers {
		w.Tick(ctx, dt)
	}
}

// Close drops every event subscription.
func (s *Session) Close() {
	s.Events.Clear()
}

// StatusLine keeps the latest notable event for display.
type StatusLine struct {
	Text   string
	Caught int
	Moves  int
}

// Subscribe registers the status line for the events it reports.
func (l *StatusLine) Subscribe(d *event.Dispatcher) {
	d.Subscribe(event.PlayerArrived, l)
	d.Subscribe(event.PlayerCaught, l)
	d.Subscribe(event.WalkerBlocked, l)
}

// OnEvent implements event.Listener.
func (l *StatusLine) OnEvent(name string, value any) {
	arrival, _ := value.(entity.Arrival)
	switch name {
	case event.PlayerArrived:
		l.Moves++
	case event.PlayerCaught:
		l.Caught++
		l.Text = fmt.Sprintf("%s caught you at %v", arrival.Name, arrival.Tile)
	case event.WalkerBlocked:
		l.Text = fmt.Sprintf("%s is stuck at %v", arrival.Name, arrival.Tile)
	}
}
