package life

import (
	"errors"
	"fmt"

	"life-ca/pkg/core"
)

// ErrOutOfRange is returned when a coordinate falls outside the grid.
var ErrOutOfRange = errors.New("coordinate out of range")

// defaultDensity is the alive probability used when reseeding randomly.
const defaultDensity = 0.2

// Universe implements Conway's Game of Life on a toroidal grid. It owns
// its cell buffer exclusively and assumes single-threaded access;
// callers that share a Universe must serialize externally.
type Universe struct {
	grid    *core.Grid
	next    []core.Cell
	density float64
}

// New returns a Universe with the given dimensions. populate is invoked
// once per cell in row-major order to produce the initial state; a nil
// populate leaves every cell Dead. The engine carries no randomness of
// its own, so a deterministic populate yields a deterministic universe.
func New(w, h int, populate func() core.Cell) *Universe {
	g := core.NewGrid(w, h)
	if populate != nil {
		cells := g.Cells()
		for i := range cells {
			cells[i] = populate()
		}
	}
	return &Universe{grid: g, next: make([]core.Cell, w*h), density: defaultDensity}
}

// NewRandom returns a Universe seeded with each cell Alive at
// probability p, using a deterministic generator for the given seed.
// Subsequent Resets reuse the same density.
func NewRandom(w, h int, p float64, seed int64) *Universe {
	u := New(w, h, nil)
	u.density = p
	core.FillWeighted(core.NewRNG(seed).Source(), u.grid.Cells(), p)
	return u
}

// NewWithConfig returns a blank Universe sized per the configuration,
// with the configured density applied on Reset.
func NewWithConfig(c Config) *Universe {
	u := New(c.Width, c.Height, nil)
	u.density = c.Density
	return u
}

// Width returns the number of cells per row.
func (u *Universe) Width() int { return u.grid.W }

// Height returns the number of rows.
func (u *Universe) Height() int { return u.grid.H }

// Cells exposes the current cell buffer in row-major order. The slice
// is a live read view; it is only valid until the next Tick or resize.
func (u *Universe) Cells() []core.Cell { return u.grid.Cells() }

// Index returns the flat buffer index for (row, col). Both coordinates
// must be in range; the engine itself only calls this after wrapping.
func (u *Universe) Index(row, col int) int { return u.grid.Index(col, row) }

// LiveNeighborCount counts the live cells among the 8 toroidal
// neighbors of (row, col). An empty grid has no neighbors.
func (u *Universe) LiveNeighborCount(row, col int) int {
	if u.grid.W == 0 || u.grid.H == 0 {
		return 0
	}
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			x, y := u.grid.Wrap(col+dc, row+dr)
			if u.grid.Cells()[u.grid.Index(x, y)] == core.Alive {
				count++
			}
		}
	}
	return count
}

// Tick advances the universe by one generation. Every cell is evaluated
// against the pre-tick state, then the finished buffer is swapped in,
// so no partial generation is ever observable.
func (u *Universe) Tick() {
	w, h := u.grid.W, u.grid.H
	if w == 0 || h == 0 {
		return
	}
	cur := u.grid.Cells()
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			idx := row*w + col
			neighbors := u.LiveNeighborCount(row, col)
			cell := cur[idx]
			switch {
			case cell == core.Alive && neighbors < 2:
				u.next[idx] = core.Dead // underpopulation
			case cell == core.Alive && neighbors > 3:
				u.next[idx] = core.Dead // overpopulation
			case cell == core.Dead && neighbors == 3:
				u.next[idx] = core.Alive // reproduction
			default:
				u.next[idx] = cell
			}
		}
	}
	u.next = u.grid.Swap(u.next)
}

// SetWidth resizes the universe to the new width. All cells reset to Dead.
func (u *Universe) SetWidth(w int) {
	u.resize(w, u.grid.H)
}

// SetHeight resizes the universe to the new height. All cells reset to Dead.
func (u *Universe) SetHeight(h int) {
	u.resize(u.grid.W, h)
}

// SetDimensions resizes the universe. All cells reset to Dead.
func (u *Universe) SetDimensions(w, h int) {
	u.resize(w, h)
}

func (u *Universe) resize(w, h int) {
	u.grid.Resize(w, h)
	u.next = make([]core.Cell, u.grid.W*u.grid.H)
}

// Clear sets every cell to Dead without changing dimensions.
func (u *Universe) Clear() {
	u.grid.Clear()
}

// ToggleCell flips the cell at (row, col) between Dead and Alive. It
// returns ErrOutOfRange for coordinates outside the grid instead of
// indexing past the buffer.
func (u *Universe) ToggleCell(row, col int) error {
	if row < 0 || row >= u.grid.H || col < 0 || col >= u.grid.W {
		return fmt.Errorf("toggle cell (%d,%d) on %dx%d grid: %w", row, col, u.grid.W, u.grid.H, ErrOutOfRange)
	}
	cells := u.grid.Cells()
	idx := u.grid.Index(col, row)
	cells[idx] = cells[idx].Toggled()
	return nil
}

// SetCells clears the universe, then marks Alive every offset translated
// so the pattern is centered on the grid midpoint. Targets wrap
// toroidally, so a pattern larger than the grid folds around instead of
// escaping the buffer.
func (u *Universe) SetCells(offsets []Offset) {
	u.grid.Clear()
	if u.grid.W == 0 || u.grid.H == 0 {
		return
	}
	midRow, midCol := u.grid.H/2, u.grid.W/2
	for _, off := range offsets {
		x, y := u.grid.Wrap(midCol+off.Col, midRow+off.Row)
		u.grid.Cells()[u.grid.Index(x, y)] = core.Alive
	}
}

// Name returns the simulation identifier.
func (u *Universe) Name() string { return "life" }

// Size returns the grid dimensions.
func (u *Universe) Size() core.Size { return core.Size{W: u.grid.W, H: u.grid.H} }

// Reset reseeds the universe randomly from the given seed.
func (u *Universe) Reset(seed int64) {
	core.FillWeighted(core.NewRNG(seed).Source(), u.grid.Cells(), u.density)
}

// Step advances the simulation by one generation.
func (u *Universe) Step() { u.Tick() }

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
