//go:build ebiten

package app

import (
	"gameoflife/internal/core"
	"gameoflife/internal/render"
	"gameoflife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Driver to the ebiten.Game interface.
type Game struct {
	driver  *Driver
	cfg     Config
	painter *render.Painter
	hud     *ui.HUD
	overlay *ui.Overlay

	err error
}

// New constructs a Game for the provided driver.
func New(driver *Driver, cfg Config) *Game {
	g := &Game{
		driver:  driver,
		cfg:     cfg,
		hud:     ui.NewHUD(driver, cfg.HUD),
		overlay: ui.NewOverlay(cfg.Width, cfg.Height, cfg.CellSize),
	}
	if cfg.Renderer == RendererCPU {
		g.painter = render.NewPainter(cfg.WindowSize())
	}
	return g
}

// Update handles input and advances the board by one generation. A draw
// failure from the previous frame ends the loop here.
func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.driver.Reseed(core.NewTimeRNG())
	}
	g.hud.Update()
	g.overlay.Update()

	g.driver.Update()
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.err != nil {
		return
	}
	if err := g.driver.Draw(g.surface(screen)); err != nil {
		g.err = err
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.WindowSize()
}

func (g *Game) surface(screen *ebiten.Image) render.Surface {
	decorate := []render.Decorator{g.overlay.Draw, g.hud.Draw}
	if g.painter != nil {
		return g.painter.Target(screen, decorate...)
	}
	return render.NewScreen(screen, decorate...)
}
