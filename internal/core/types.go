package core

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
	Cells() []uint8
}

// Snapshotter is implemented by sims whose cells carry their own colors.
// The returned grid is independent of the live state.
type Snapshotter interface {
	Snapshot() *Grid
}

// Brush is implemented by sims that accept pointer input. Coordinates are in
// surface pixels; Paint reports whether a cell was written.
type Brush interface {
	Paint(px, py int) bool
	EndStroke()
	CellSize() int
}

// Pacer is implemented by sims that advance only every few frames.
type Pacer interface {
	TicksPerUpdate() int
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
