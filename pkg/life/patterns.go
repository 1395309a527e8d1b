package life

import "fmt"

// Offset is a pattern coordinate relative to the pattern's local origin.
type Offset struct {
	Col int
	Row int
}

// Named seed patterns. Offsets are placed centered on the grid midpoint
// by SetCells.
var (
	Spaceship   = []Offset{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {0, 1}, {4, 1}, {0, 2}, {1, 3}, {4, 3}}
	RPentomino  = []Offset{{0, 0}, {0, 1}, {1, 1}, {2, 1}, {1, 2}}
	PiHeptomino = []Offset{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {2, 1}, {0, 2}, {2, 2}}
	Glider      = []Offset{{1, 2}, {2, 3}, {3, 1}, {3, 2}, {3, 3}}
)

// MakeSpaceship clears the universe and places a lightweight spaceship.
func (u *Universe) MakeSpaceship() { u.SetCells(Spaceship) }

// MakeRPentomino clears the universe and places an R-pentomino.
func (u *Universe) MakeRPentomino() { u.SetCells(RPentomino) }

// MakePiHeptomino clears the universe and places a pi-heptomino.
func (u *Universe) MakePiHeptomino() { u.SetCells(PiHeptomino) }

// MakeGlider clears the universe and places a glider.
func (u *Universe) MakeGlider() { u.SetCells(Glider) }

// ApplyPattern places the named pattern, centered. Recognized names are
// spaceship, rpentomino, piheptomino and glider.
func ApplyPattern(u *Universe, name string) error {
	switch name {
	case "spaceship":
		u.MakeSpaceship()
	case "rpentomino":
		u.MakeRPentomino()
	case "piheptomino":
		u.MakePiHeptomino()
	case "glider":
		u.MakeGlider()
	default:
		return fmt.Errorf("unknown pattern %q", name)
	}
	return nil
}
