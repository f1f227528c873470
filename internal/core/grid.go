package core

import (
	"fmt"
	"math"
)

// SeedDensity is the probability that Seed marks any given cell Live.
const SeedDensity = 0.1

// neighborOffsets lists the Moore neighbourhood in canonical order.
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Neighbor is one slot of a Moore neighbourhood. Present is false when the
// position falls outside the grid.
type Neighbor struct {
	Cell    Cell
	Present bool
}

// Grid stores a bounded 2D Game of Life board in row-major order.
type Grid struct {
	w, h  uint32
	cells []Cell
}

// NewGrid allocates a grid of dead cells. It panics when a dimension is zero
// or the grid cannot be indexed with int16 coordinates.
func NewGrid(w, h uint32) *Grid {
	if w == 0 || h == 0 {
		panic(fmt.Sprintf("core: invalid grid dimensions %dx%d", w, h))
	}
	if uint64(w)-1 > math.MaxInt16 || uint64(h)-1 > math.MaxInt16 {
		panic(fmt.Sprintf("core: grid %dx%d exceeds int16 coordinates", w, h))
	}
	total := uint64(w) * uint64(h)
	if total > math.MaxInt {
		panic(fmt.Sprintf("core: grid %dx%d overflows index range", w, h))
	}
	cells := make([]Cell, 0, int(total))
	for y := uint32(0); y < h; y++ {
		for x := uint32(0); x < w; x++ {
			cells = append(cells, NewCell(int16(x), int16(y), Dead))
		}
	}
	return &Grid{w: w, h: h, cells: cells}
}

// Width returns the number of columns.
func (g *Grid) Width() uint32 { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() uint32 { return g.h }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Cells exposes the backing slice for iteration. Callers must not change
// cell coordinates.
func (g *Grid) Cells() []Cell { return g.cells }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*int(g.w) + x }

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < int(g.w) && y < int(g.h)
}

// At returns the cell at (x, y) and whether the position is on the grid.
func (g *Grid) At(x, y int) (Cell, bool) {
	if !g.inBounds(x, y) {
		return Cell{}, false
	}
	return g.cells[g.Index(x, y)], true
}

// Set changes the state of the cell at (x, y). It reports false when the
// position is off the grid.
func (g *Grid) Set(x, y int, s State) bool {
	if !g.inBounds(x, y) {
		return false
	}
	i := g.Index(x, y)
	if s == Live {
		g.cells[i] = g.cells[i].WithLive()
	} else {
		g.cells[i] = g.cells[i].WithDead()
	}
	return true
}

// Clear marks every cell dead.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i].WithDead()
	}
}

// Seed flips each cell to Live independently with probability SeedDensity
// and returns how many cells were flipped.
func (g *Grid) Seed(src RandomSource) int {
	return g.SeedWith(src, SeedDensity)
}

// SeedWith is Seed with an explicit probability.
func (g *Grid) SeedWith(src RandomSource, p float64) int {
	seeded := 0
	for i := range g.cells {
		if src.Chance(p) {
			g.cells[i] = g.cells[i].WithLive()
			seeded++
		}
	}
	return seeded
}

// PlaceCenter marks the middle cell Live.
func (g *Grid) PlaceCenter() {
	i := g.Index(int(g.w/2), int(g.h/2))
	g.cells[i] = g.cells[i].WithLive()
}

// Neighbors returns the eight Moore neighbours of c. Slots outside the grid
// are reported as absent; the grid does not wrap.
func (g *Grid) Neighbors(c Cell) [8]Neighbor {
	var out [8]Neighbor
	for i, off := range neighborOffsets {
		nx := int(c.X) + off[0]
		ny := int(c.Y) + off[1]
		if !g.inBounds(nx, ny) {
			continue
		}
		out[i] = Neighbor{Cell: g.cells[g.Index(nx, ny)], Present: true}
	}
	return out
}

// LiveNeighborCount returns the number of present Live neighbours of c.
func (g *Grid) LiveNeighborCount(c Cell) int {
	count := 0
	for _, n := range g.Neighbors(c) {
		if n.Present && n.Cell.Live() {
			count++
		}
	}
	return count
}

// NextState returns a freshly allocated grid holding the next generation.
func (g *Grid) NextState() *Grid {
	next := &Grid{w: g.w, h: g.h, cells: make([]Cell, len(g.cells))}
	g.NextStateInto(next)
	return next
}

// NextStateInto writes the next generation into dst. Every cell of dst is
// computed from g alone, so dst must be a distinct grid of the same size.
func (g *Grid) NextStateInto(dst *Grid) {
	if dst == g {
		panic("core: NextStateInto destination aliases source")
	}
	if dst.w != g.w || dst.h != g.h || len(dst.cells) != len(g.cells) {
		panic(fmt.Sprintf("core: NextStateInto size mismatch %dx%d vs %dx%d", dst.w, dst.h, g.w, g.h))
	}
	for i, cur := range g.cells {
		n := g.LiveNeighborCount(cur)
		if (cur.Live() && (n == 2 || n == 3)) || (!cur.Live() && n == 3) {
			dst.cells[i] = cur.WithLive()
			continue
		}
		dst.cells[i] = cur.WithDead()
	}
}

// Population returns the number of Live cells.
func (g *Grid) Population() int {
	count := 0
	for _, c := range g.cells {
		if c.Live() {
			count++
		}
	}
	return count
}

// LiveCells returns a copy of every Live cell in row-major order.
func (g *Grid) LiveCells() []Cell {
	var out []Cell
	for _, c := range g.cells {
		if c.Live() {
			out = append(out, c)
		}
	}
	return out
}

// Equal reports whether both grids have the same size and cell states.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.w != other.w || g.h != other.h {
		return false
	}
	for i, c := range g.cells {
		if c.State != other.cells[i].State {
			return false
		}
	}
	return true
}
