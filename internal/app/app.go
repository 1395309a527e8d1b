//go:build ebiten

package app

import (
	"image/color"
	"time"

	"life-ca/internal/render"
	"life-ca/internal/ui"
	"life-ca/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// cellToggler is implemented by sims that support flipping single cells.
type cellToggler interface {
	ToggleCell(row, col int) error
}

// patternMaker is implemented by sims with named seed patterns.
type patternMaker interface {
	MakeSpaceship()
	MakeRPentomino()
	MakePiHeptomino()
	MakeGlider()
	Clear()
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int, seed int64) *Game {
	gp := render.NewGridPainter(sim.Size().W, sim.Size().H)
	return &Game{
		sim:      sim,
		painter:  gp,
		overlay:  ui.NewOverlay(),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
		seed:     seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if pm, ok := g.sim.(patternMaker); ok {
		if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
			pm.MakeSpaceship()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
			pm.MakeRPentomino()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
			pm.MakePiHeptomino()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyDigit4) {
			pm.MakeGlider()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyC) {
			pm.Clear()
		}
	}

	if ct, ok := g.sim.(cellToggler); ok {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			x, y := ebiten.CursorPosition()
			col, row := x/g.scale, y/g.scale
			size := g.sim.Size()
			if row >= 0 && row < size.H && col >= 0 && col < size.W {
				// In range by the check above, so the error is unreachable.
				_ = ct.ToggleCell(row, col)
			}
		}
	}

	if g.overlay != nil {
		g.overlay.Update()
	}

	if (!g.paused) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.scale)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
