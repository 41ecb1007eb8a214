package game

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/samdwyer/tilenav/internal/gamedata"
	"github.com/samdwyer/tilenav/internal/grid"
	"github.com/samdwyer/tilenav/internal/ui"
)

// Game owns the terminal and drives a Session on a fixed tick.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	registry *gamedata.Registry
	session  *Session
	state    State
	running  bool
}

// New creates a new game instance.
func New(cfg Config) (*Game, error) {
	registry, err := gamedata.LoadRegistry()
	if err != nil {
		return nil, err
	}
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		registry: registry,
		state:    StateRunning,
		running:  true,
	}, nil
}

// Run executes the main loop until the player quits or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	session, err := NewSession(ctx, g.cfg, g.registry)
	if err != nil {
		g.Close()
		return err
	}
	g.session = session
	defer g.Close()

	input := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go pumpEvents(g.screen, input, done)

	driver := NewDriver(g.cfg.TickInterval())
	defer driver.Stop()

	for g.running {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-input:
			g.handleEvent(ev)
		case <-driver.C():
			if g.state == StateRunning {
				session.Tick(ctx, driver.DeltaTime())
			}
			g.render()
		}
	}
	return nil
}

// pumpEvents forwards terminal events to the loop goroutine, which owns all
// game state.
func pumpEvents(screen *ui.Screen, input chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case input <- ev:
		case <-done:
			return
		}
	}
}

func (g *Game) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ev *tcell.EventKey) {
	player := g.session.Player
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false
	case tcell.KeyUp:
		player.Steer(grid.Up.Vec())
	case tcell.KeyDown:
		player.Steer(grid.Down.Vec())
	case tcell.KeyLeft:
		player.Steer(grid.Left.Vec())
	case tcell.KeyRight:
		player.Steer(grid.Right.Vec())
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case 'p', 'P':
			g.state = g.state.Toggle()
		case ' ':
			player.Steer(mgl64.Vec2{})
		}
	}
}

func (g *Game) render() {
	s := g.session
	g.renderer.Render(ui.Frame{
		Dungeon: s.Dungeon,
		Player:  s.Player,
		Walkers: s.Walkers,
		Status:  s.Status.Text,
		Caught:  s.Status.Caught,
		Moves:   s.Status.Moves,
		State:   g.state.String(),
	})
}

// Close releases the session and restores the terminal.
func (g *Game) Close() {
	if g.session != nil {
		g.session.Close()
	}
	if g.screen != nil {
		g.screen.Close()
		g.screen = nil
	}
}
