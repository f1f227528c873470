package app

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
)

// Defaults for the visualizer window.
const (
	GridWidth   = 30
	GridHeight  = 30
	CellPixels  = 32
	FPS         = 8
	WindowTitle = "Game of Life"
)

// Seeding modes.
const (
	ModeRandom = "random"
	ModeCenter = "center"
)

// Renderer backends.
const (
	RendererGPU = "gpu"
	RendererCPU = "cpu"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width    int
	Height   int
	CellSize int
	FPS      int
	Density  float64
	Seed     int64
	Mode     string
	Renderer string
	HUD      bool
	Quiet    bool
}

// NewConfig returns a Config populated with the stock 30x30, 8 FPS setup.
// A zero Seed means the board is seeded from the clock.
func NewConfig() *Config {
	return &Config{
		Width:    GridWidth,
		Height:   GridHeight,
		CellSize: CellPixels,
		FPS:      FPS,
		Density:  0.1,
		Mode:     ModeRandom,
		Renderer: RendererGPU,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.FPS, "fps", c.FPS, "frames (generations) per second")
	fs.Float64Var(&c.Density, "density", c.Density, "probability that a cell starts live")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 seeds from the clock)")
	fs.StringVar(&c.Mode, "mode", c.Mode, "initial population: random or center")
	fs.StringVar(&c.Renderer, "renderer", c.Renderer, "drawing backend: gpu or cpu")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the status panel at start-up")
	fs.BoolVar(&c.Quiet, "quiet", c.Quiet, "suppress per-tick progress output")
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: grid %dx%d", ErrConfig, c.Width, c.Height)
	case c.Width > 1<<15 || c.Height > 1<<15:
		return fmt.Errorf("%w: grid %dx%d exceeds %d cells per side", ErrConfig, c.Width, c.Height, 1<<15)
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell size %d", ErrConfig, c.CellSize)
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps %d", ErrConfig, c.FPS)
	case c.Density < 0 || c.Density > 1:
		return fmt.Errorf("%w: density %g outside [0, 1]", ErrConfig, c.Density)
	}
	if c.Mode != ModeRandom && c.Mode != ModeCenter {
		return fmt.Errorf("%w: unknown mode %q", ErrConfig, c.Mode)
	}
	if c.Renderer != RendererGPU && c.Renderer != RendererCPU {
		return fmt.Errorf("%w: unknown renderer %q", ErrConfig, c.Renderer)
	}
	return nil
}

// WindowSize returns the window dimensions in pixels.
func (c *Config) WindowSize() (int, int) {
	return c.Width * c.CellSize, c.Height * c.CellSize
}

// Logger returns the progress logger; it discards output when Quiet is set.
func (c *Config) Logger() *log.Logger {
	var out io.Writer = os.Stdout
	if c.Quiet {
		out = io.Discard
	}
	return log.New(out, "life: ", log.Ltime)
}
