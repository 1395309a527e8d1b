package life

import (
	"strings"

	"life-ca/pkg/core"
)

const (
	glyphDead  = '◻'
	glyphAlive = '◼'
)

// String renders the universe as text, one glyph per cell and one line
// per row, with a blank line between rows. Diagnostic output only; the
// simulation itself never renders.
func (u *Universe) String() string {
	if u.grid.W == 0 || u.grid.H == 0 {
		return ""
	}
	var b strings.Builder
	cells := u.grid.Cells()
	w := u.grid.W
	for row := 0; row < u.grid.H; row++ {
		for col := 0; col < w; col++ {
			if cells[row*w+col] == core.Alive {
				b.WriteRune(glyphAlive)
			} else {
				b.WriteRune(glyphDead)
			}
		}
		b.WriteString("\n\n")
	}
	return b.String()
}

// Render returns the textual snapshot produced by String.
func (u *Universe) Render() string { return u.String() }
