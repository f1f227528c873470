//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"gameoflife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// StatsSource reports the state of the running automaton.
type StatsSource interface {
	Stats() core.Stats
}

// HUD renders a small status panel in the top-left corner. Tab toggles it.
type HUD struct {
	src     StatsSource
	visible bool
	lines   []string
}

// NewHUD constructs a HUD reading from src.
func NewHUD(src StatsSource, visible bool) *HUD {
	return &HUD{src: src, visible: visible}
}

// Update handles the toggle key and refreshes the cached status lines.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		h.visible = !h.visible
	}
	if !h.visible {
		return
	}
	st := h.src.Stats()
	h.lines = append(h.lines[:0],
		fmt.Sprintf("generation %d", st.Generation),
		fmt.Sprintf("population %d", st.Population),
		fmt.Sprintf("seeded     %d", st.Seeded),
		fmt.Sprintf("grid       %dx%d", st.Width, st.Height),
		fmt.Sprintf("frame      %.1fms / %dms", float64(st.FrameTime.Microseconds())/1000, st.Budget.Milliseconds()),
	)
}

// Draw paints the panel on top of the frame.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible || len(h.lines) == 0 {
		return
	}
	face := basicfont.Face7x13
	width := 0
	for _, line := range h.lines {
		if w := text.BoundString(face, line).Dx(); w > width {
			width = w
		}
	}
	height := len(h.lines)*lineHeight + 2*panelPadding
	vector.DrawFilledRect(screen, 0, 0, float32(width+2*panelPadding), float32(height), panelColor, false)
	for i, line := range h.lines {
		y := panelPadding + (i+1)*lineHeight - 3
		text.Draw(screen, line, face, panelPadding, y, textColor)
	}
}

var (
	panelColor = color.RGBA{R: 16, G: 16, B: 20, A: 200}
	textColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
)

const (
	panelPadding = 8
	lineHeight   = 16
)
