package core

// Cell is the state of a single grid position.
type Cell uint8

const (
	// Dead marks an unoccupied cell.
	Dead Cell = 0
	// Alive marks an occupied cell.
	Alive Cell = 1
)

// Toggled returns the opposite state.
func (c Cell) Toggled() Cell {
	if c == Dead {
		return Alive
	}
	return Dead
}

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a cellular automaton must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []Cell
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
