//go:build !ebiten

package ui

import "gameoflife/internal/core"

// StatsSource reports the state of the running automaton.
type StatsSource interface {
	Stats() core.Stats
}

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(StatsSource, bool) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update() {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any) {}
