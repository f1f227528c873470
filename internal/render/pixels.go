package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Canvas accepts draw commands for a single frame.
type Canvas interface {
	FillRect(x, y, w, h float32, clr color.Color) error
}

// Surface hands out one cleared canvas per frame and presents it when the
// frame is complete. A canvas must not be used after Present.
type Surface interface {
	Canvas(clear color.Color) (Canvas, error)
	Present(c Canvas) error
}

// Pixels is a CPU canvas that rasterizes rectangles into an RGBA buffer.
type Pixels struct {
	img *image.RGBA
}

// NewPixels allocates a w*h RGBA buffer.
func NewPixels(w, h int) *Pixels {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Pixels{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Canvas clears the buffer to the given color and returns it for drawing.
func (p *Pixels) Canvas(clear color.Color) (Canvas, error) {
	draw.Draw(p.img, p.img.Bounds(), image.NewUniform(clear), image.Point{}, draw.Src)
	return p, nil
}

// FillRect paints an axis-aligned rectangle, clipped to the buffer.
func (p *Pixels) FillRect(x, y, w, h float32, clr color.Color) error {
	r := image.Rect(int(x), int(y), int(x+w), int(y+h)).Intersect(p.img.Bounds())
	if r.Empty() {
		return nil
	}
	draw.Draw(p.img, r, image.NewUniform(clr), image.Point{}, draw.Src)
	return nil
}

// Present is a no-op; the buffer is read directly through Image or Pix.
func (p *Pixels) Present(Canvas) error { return nil }

// Image returns the backing image.
func (p *Pixels) Image() *image.RGBA { return p.img }

// Pix exposes the raw RGBA bytes in row-major order.
func (p *Pixels) Pix() []byte { return p.img.Pix }

// Size returns the buffer dimensions.
func (p *Pixels) Size() (int, int) {
	b := p.img.Bounds()
	return b.Dx(), b.Dy()
}
