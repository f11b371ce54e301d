package game

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/asciiquest/internal/input"
	"github.com/samdwyer/asciiquest/internal/logger"
	"github.com/samdwyer/asciiquest/internal/ui"
)

// maxStep caps the simulated time of a single frame, e.g. after the
// terminal was suspended.
const maxStep = 250 * time.Millisecond

// Game drives a Simulation from terminal input at a fixed frame rate.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	sim      *Simulation
	keys     *input.Tracker
	frame    time.Duration
	last     time.Time
	running  bool
}

// New creates a game loop for the given screen and simulation.
func New(screen *ui.Screen, sim *Simulation, frame, keyHold time.Duration) *Game {
	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		sim:      sim,
		keys:     input.NewTracker(keyHold),
		frame:    frame,
		running:  true,
	}
}

// Run executes the main game loop until the player quits, ctx is cancelled
// or a fatal error occurs. The screen is closed on return.
func (g *Game) Run(ctx context.Context) error {
	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go g.pump(events, done)

	ticker := time.NewTicker(g.frame)
	defer ticker.Stop()

	g.last = time.Now()
	g.render()

	for g.running {
		select {
		case <-ctx.Done():
			g.running = false
		case ev := <-events:
			g.handleEvent(ev)
		case now := <-ticker.C:
			if err := g.tick(ctx, now); err != nil {
				g.screen.Close()
				return err
			}
		}
	}

	g.screen.Close()
	return nil
}

// pump forwards terminal events to the loop goroutine.
func (g *Game) pump(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// handleEvent processes a single terminal event.
func (g *Game) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		for _, a := range input.ActionsFor(ev) {
			if a == input.ActionQuit {
				g.running = false
				return
			}
		}
		g.keys.HandleKey(ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// tick advances the simulation by the time since the previous frame and redraws.
func (g *Game) tick(ctx context.Context, now time.Time) error {
	dt := now.Sub(g.last)
	g.last = now
	if dt > maxStep {
		logger.Component("game").WithField("dt", dt).Debug("frame step capped")
		dt = maxStep
	}

	g.keys.Latch(now)
	if err := g.sim.Step(ctx, g.keys, dt); err != nil {
		logger.Component("game").WithError(err).Error("simulation step failed")
		return err
	}

	g.render()
	return nil
}

func (g *Game) render() {
	g.renderer.Render(g.sim, g.status())
}

func (g *Game) status() string {
	switch g.sim.Mode() {
	case ModeCombat:
		return " COMBAT  space: retreat  q: quit"
	default:
		if g.sim.controller.Variant == VariantPlatformer {
			return " EXPLORE  a/d: move  space: jump  q: quit"
		}
		return " EXPLORE  arrows/wasd: move  q: quit"
	}
}
