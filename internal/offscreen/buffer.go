// Package offscreen provides the small RGBA drawing surface used to build
// selection previews.
package offscreen

import (
	"errors"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// ErrInvalidDimensions is returned when width or height is non-positive.
var ErrInvalidDimensions = errors.New("offscreen: invalid dimensions")

// Buffer is an offscreen surface with a current fill style.
//
// Pixels are stored non-premultiplied, 4 bytes per pixel, row-major,
// the layout ReadPixels hands out.
type Buffer struct {
	img  *image.NRGBA
	fill *image.Uniform
}

// New creates a transparent buffer of the given size.
func New(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Buffer{
		img:  image.NewNRGBA(image.Rect(0, 0, width, height)),
		fill: image.NewUniform(color.NRGBA{}),
	}, nil
}

// Width returns the buffer width.
func (b *Buffer) Width() int { return b.img.Rect.Dx() }

// Height returns the buffer height.
func (b *Buffer) Height() int { return b.img.Rect.Dy() }

// SetFill sets the color used by FillCell and FillRect.
func (b *Buffer) SetFill(c color.NRGBA) {
	b.fill = image.NewUniform(c)
}

// FillCell composites the fill color over the single pixel at (x, y).
// Coordinates outside the buffer are ignored.
func (b *Buffer) FillCell(x, y int) {
	b.FillRect(x, y, 1, 1)
}

// FillRect composites the fill color over the w x h rectangle at (x, y),
// clipped to the buffer.
func (b *Buffer) FillRect(x, y, w, h int) {
	r := image.Rect(x, y, x+w, y+h).Intersect(b.img.Rect)
	if r.Empty() {
		return
	}
	draw.Draw(b.img, r, b.fill, image.Point{}, draw.Over)
}

// At returns the color at (x, y).
func (b *Buffer) At(x, y int) color.NRGBA {
	return b.img.NRGBAAt(x, y)
}

// ReadPixels returns a copy of the buffer's raw RGBA bytes.
func (b *Buffer) ReadPixels() []byte {
	out := make([]byte, len(b.img.Pix))
	copy(out, b.img.Pix)
	return out
}
