//go:build ebiten

package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const helpText = `space  pause/resume
n      single step
r      reseed (same seed)
s      reseed from clock
c      clear grid
1-4    spaceship / r-pentomino / pi-heptomino / glider
click  toggle cell
h      hide help
q/esc  quit`

// Overlay draws a key-binding reference on top of the simulation.
type Overlay struct {
	visible bool
}

// NewOverlay constructs an overlay, initially hidden.
func NewOverlay() *Overlay { return &Overlay{} }

// Update toggles overlay visibility.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.visible = !o.visible
	}
}

// Draw renders the help text when visible.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	ebitenutil.DebugPrint(screen, helpText)
}
