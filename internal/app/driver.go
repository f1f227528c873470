package app

import (
	"fmt"
	"image/color"
	"log"

	"gameoflife/internal/core"
	"gameoflife/internal/render"
)

var (
	// Background is the canvas clear color.
	Background color.Color = color.White
	// Foreground fills live cells.
	Foreground color.Color = color.Black
)

// Driver owns the board and advances and draws it once per frame.
type Driver struct {
	cfg    Config
	grid   *core.Grid
	spare  *core.Grid
	pacer  *core.FramePacer
	rng    core.RandomSource
	logger *log.Logger

	generation int64
	seeded     int
}

// Option customizes a Driver.
type Option func(*Driver)

// WithRandom sets the random source used for seeding.
func WithRandom(src core.RandomSource) Option {
	return func(d *Driver) { d.rng = src }
}

// WithClock sets the clock used for frame pacing.
func WithClock(c core.Clock) Option {
	return func(d *Driver) { d.pacer = core.NewFramePacer(d.cfg.FPS, c) }
}

// WithLogger sets the progress logger.
func WithLogger(l *log.Logger) Option {
	return func(d *Driver) { d.logger = l }
}

// NewDriver allocates the board for cfg. The board starts empty; call Seed
// before the first frame.
func NewDriver(cfg Config, opts ...Option) *Driver {
	w, h := uint32(cfg.Width), uint32(cfg.Height)
	d := &Driver{
		cfg:   cfg,
		grid:  core.NewGrid(w, h),
		spare: core.NewGrid(w, h),
		pacer: core.NewFramePacer(cfg.FPS, core.SystemClock{}),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.rng == nil {
		if cfg.Seed != 0 {
			d.rng = core.NewRNG(cfg.Seed)
		} else {
			d.rng = core.NewTimeRNG()
		}
	}
	if d.logger == nil {
		d.logger = cfg.Logger()
	}
	return d
}

// Seed populates the board according to the configured mode and returns the
// number of live cells placed.
func (d *Driver) Seed() int {
	switch d.cfg.Mode {
	case ModeCenter:
		d.grid.PlaceCenter()
		d.seeded = 1
	default:
		d.seeded = d.grid.SeedWith(d.rng, d.cfg.Density)
	}
	d.logger.Printf("seeded %d of %d cells", d.seeded, d.grid.Len())
	return d.seeded
}

// Reseed clears the board and seeds it again. The generation counter keeps
// counting. A nil src keeps the current random source.
func (d *Driver) Reseed(src core.RandomSource) int {
	if src != nil {
		d.rng = src
	}
	d.grid.Clear()
	return d.Seed()
}

// Update advances the board by one generation.
func (d *Driver) Update() {
	d.grid.NextStateInto(d.spare)
	d.grid, d.spare = d.spare, d.grid
	d.generation++
	d.logger.Printf("step %d population %d", d.generation, d.grid.Population())
}

// Draw renders the current generation on s and then sleeps whatever is left
// of the frame budget. A renderer error aborts the frame without sleeping.
func (d *Driver) Draw(s render.Surface) error {
	d.pacer.Begin()
	canvas, err := s.Canvas(Background)
	if err != nil {
		return fmt.Errorf("%w: canvas: %w", ErrDraw, err)
	}
	px := float32(d.cfg.CellSize)
	for _, c := range d.grid.Cells() {
		if !c.Live() {
			continue
		}
		x, y := c.Coordinates()
		if err := canvas.FillRect(float32(x)*px, float32(y)*px, px, px, Foreground); err != nil {
			return fmt.Errorf("%w: cell (%d,%d): %w", ErrDraw, x, y, err)
		}
	}
	if err := s.Present(canvas); err != nil {
		return fmt.Errorf("%w: present: %w", ErrDraw, err)
	}
	d.pacer.Finish()
	return nil
}

// Frame runs one Update followed by one Draw.
func (d *Driver) Frame(s render.Surface) error {
	d.Update()
	return d.Draw(s)
}

// Generation returns the number of updates so far.
func (d *Driver) Generation() int64 { return d.generation }

// Grid returns the current generation. It is only valid until the next
// Update.
func (d *Driver) Grid() *core.Grid { return d.grid }

// Stats summarizes the current frame for diagnostics.
func (d *Driver) Stats() core.Stats {
	return core.Stats{
		Generation: d.generation,
		Population: d.grid.Population(),
		Seeded:     d.seeded,
		Width:      d.grid.Width(),
		Height:     d.grid.Height(),
		FrameTime:  d.pacer.Last(),
		Budget:     d.pacer.Budget(),
	}
}
