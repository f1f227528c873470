//go:build ebiten

package render

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var errNoTarget = errors.New("render: no target image")

// Decorator draws on top of a finished frame, before it is handed back to
// ebiten.
type Decorator func(dst *ebiten.Image)

// Screen draws rectangles straight onto the ebiten screen with vector fills.
type Screen struct {
	dst      *ebiten.Image
	decorate []Decorator
}

// NewScreen wraps the screen image passed to ebiten.Game.Draw.
func NewScreen(dst *ebiten.Image, decorate ...Decorator) *Screen {
	return &Screen{dst: dst, decorate: decorate}
}

// Canvas fills the screen with the clear color.
func (s *Screen) Canvas(clear color.Color) (Canvas, error) {
	if s.dst == nil {
		return nil, errNoTarget
	}
	s.dst.Fill(clear)
	return s, nil
}

// FillRect queues a filled rectangle.
func (s *Screen) FillRect(x, y, w, h float32, clr color.Color) error {
	vector.DrawFilledRect(s.dst, x, y, w, h, clr, false)
	return nil
}

// Present runs the decorators; ebiten shows the image once Draw returns.
func (s *Screen) Present(Canvas) error {
	for _, fn := range s.decorate {
		fn(s.dst)
	}
	return nil
}

// Painter rasterizes frames on the CPU through Pixels and uploads the result
// as a single image.
type Painter struct {
	px       *Pixels
	img      *ebiten.Image
	dst      *ebiten.Image
	decorate []Decorator
}

// NewPainter allocates a painter for a w*h pixel window.
func NewPainter(w, h int) *Painter {
	px := NewPixels(w, h)
	pw, ph := px.Size()
	return &Painter{px: px, img: ebiten.NewImage(pw, ph)}
}

// Target sets the image the next frame is presented on.
func (p *Painter) Target(dst *ebiten.Image, decorate ...Decorator) *Painter {
	p.dst = dst
	p.decorate = decorate
	return p
}

// Canvas clears the CPU buffer.
func (p *Painter) Canvas(clear color.Color) (Canvas, error) {
	if p.dst == nil {
		return nil, errNoTarget
	}
	return p.px.Canvas(clear)
}

// Present uploads the CPU buffer and draws it on the target.
func (p *Painter) Present(Canvas) error {
	if p.dst == nil {
		return errNoTarget
	}
	p.img.WritePixels(p.px.Pix())
	p.dst.DrawImage(p.img, nil)
	for _, fn := range p.decorate {
		fn(p.dst)
	}
	return nil
}
