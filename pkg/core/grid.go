package core

// Grid stores a 2D field of cells in row-major order. A grid with
// either dimension zero is valid and holds no cells.
type Grid struct {
	W, H int
	data []Cell
}

// NewGrid allocates a grid with the given dimensions. Negative
// dimensions are treated as zero.
func NewGrid(w, h int) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Grid{W: w, H: h, data: make([]Cell, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []Cell { return g.data }

// Index returns the linear slice index for coordinates (x, y). Both
// coordinates must already be in range; Wrap handles out-of-range ones.
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// Wrap applies toroidal wrapping to the provided coordinates. On an
// empty grid it returns (0, 0) rather than dividing by zero.
func (g *Grid) Wrap(x, y int) (int, int) {
	if g.W == 0 || g.H == 0 {
		return 0, 0
	}
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// Clear sets every cell to Dead without changing dimensions.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = Dead
	}
}

// Resize replaces the backing buffer with a fresh all-Dead buffer of the
// new dimensions. Prior content is never preserved.
func (g *Grid) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	g.W, g.H = w, h
	g.data = make([]Cell, w*h)
}

// Swap installs next as the backing buffer and returns the previous one.
// The caller owns the returned slice, typically reusing it as the next
// scratch buffer.
func (g *Grid) Swap(next []Cell) []Cell {
	prev := g.data
	g.data = next
	return prev
}
