//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var gridLineColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}

// Overlay draws optional cell boundaries on top of the board. G toggles it.
type Overlay struct {
	cols, rows int
	cell       int
	showGrid   bool
}

// NewOverlay constructs an overlay for a cols*rows board of cell-pixel cells.
func NewOverlay(cols, rows, cell int) *Overlay {
	return &Overlay{cols: cols, rows: rows, cell: cell}
}

// Update handles the toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
}

// Draw renders the grid lines when enabled.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showGrid || o.cell <= 1 {
		return
	}
	w := float32(o.cols * o.cell)
	h := float32(o.rows * o.cell)
	for x := 1; x < o.cols; x++ {
		fx := float32(x * o.cell)
		vector.StrokeLine(screen, fx, 0, fx, h, 1, gridLineColor, false)
	}
	for y := 1; y < o.rows; y++ {
		fy := float32(y * o.cell)
		vector.StrokeLine(screen, 0, fy, w, fy, 1, gridLineColor, false)
	}
}
