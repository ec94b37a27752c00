// Package gui runs the platformer in a desktop window through Ebitengine.
package gui

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/platformer"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// Longest simulated step after a stall, e.g. while the window is dragged.
const maxStep = 0.1

// ErrWindowUsed is returned when a second window is requested. Ebitengine
// runs its game loop at most once per process.
var ErrWindowUsed = errors.New("gui: window already used by this process")

var started atomic.Bool

func init() {
	registry.Register("window", func() registry.Frontend { return Frontend{} })
}

// Frontend opens an 800x600 window.
type Frontend struct{}

func (Frontend) ID() string    { return "window" }
func (Frontend) Title() string { return "Window (Ebitengine)" }

// Run blocks until the window is closed or the player quits.
func (Frontend) Run(s *platformer.Session) error {
	if !started.CompareAndSwap(false, true) {
		return ErrWindowUsed
	}

	g, err := NewGame(s)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(platformer.Width, platformer.Height)
	ebiten.SetWindowTitle("Kodland")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(s.TickRate())

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Game adapts a session to ebiten.Game.
type Game struct {
	session  *platformer.Session
	renderer *Renderer
	keys     keyState
	lastTick time.Time
}

// NewGame wires a session to live keyboard state.
func NewGame(s *platformer.Session) (*Game, error) {
	r, err := NewRenderer()
	if err != nil {
		return nil, err
	}
	return &Game{
		session:  s,
		renderer: r,
		keys: keyState{
			pressed:     ebiten.IsKeyPressed,
			justPressed: inpututil.IsKeyJustPressed,
		},
	}, nil
}

func (g *Game) Update() error {
	dt := g.step(time.Now())

	in := readInput(g.keys)
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.session.OnClick(core.V(float64(x), float64(y)))
	}

	g.session.Tick(dt, in)

	if g.session.QuitRequested() {
		return ebiten.Termination
	}
	return nil
}

// step returns the seconds since the previous update, clamped to maxStep.
// The first update uses one nominal frame.
func (g *Game) step(now time.Time) float64 {
	if g.lastTick.IsZero() {
		g.lastTick = now
		return 1 / float64(g.session.TickRate())
	}
	dt := now.Sub(g.lastTick).Seconds()
	g.lastTick = now
	return core.ClampF(dt, 0, maxStep)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Target(screen)
	g.session.Draw(g.renderer)
}

// Layout keeps the logical playfield size; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return platformer.Width, platformer.Height
}
