package core

// State is the aliveness tag carried by every cell.
type State uint8

const (
	// Dead is the zero value so freshly allocated cells start dead.
	Dead State = iota
	// Live marks a populated cell.
	Live
)

// String returns a lower-case name for the state.
func (s State) String() string {
	if s == Live {
		return "live"
	}
	return "dead"
}

// Cell describes one grid position and its state. Cells are plain values;
// identity is positional.
type Cell struct {
	X, Y  int16
	State State
}

// NewCell returns a cell at (x, y) with the given state.
func NewCell(x, y int16, s State) Cell {
	return Cell{X: x, Y: y, State: s}
}

// Coordinates returns the cell position.
func (c Cell) Coordinates() (int16, int16) { return c.X, c.Y }

// Live reports whether the cell is populated.
func (c Cell) Live() bool { return c.State == Live }

// WithLive returns a copy of c at the same position marked Live.
func (c Cell) WithLive() Cell { return NewCell(c.X, c.Y, Live) }

// WithDead returns a copy of c at the same position marked Dead.
func (c Cell) WithDead() Cell { return NewCell(c.X, c.Y, Dead) }
