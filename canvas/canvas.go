// Package canvas provides an in-memory raster canvas and the layer that
// applies finished pixedit batches to it.
package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/gogpu/pixedit"
)

var _ pixedit.PixelSource = (*Canvas)(nil)

// Canvas is a rectangular pixel store that tracks which pixels are drawn.
//
// A pixel that was never drawn, or was erased, is absent: PixelAt reports
// ok == false for it, as it does for coordinates outside the canvas.
type Canvas struct {
	width  int
	height int
	data   []uint8 // NRGBA, 4 bytes per pixel
	drawn  []bool
}

// New creates an empty canvas with the given dimensions.
// Negative dimensions are treated as zero.
func New(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	return &Canvas{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
		drawn:  make([]bool, width*height),
	}
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int { return c.width }

// Height returns the height of the canvas.
func (c *Canvas) Height() int { return c.height }

// Bounds returns the canvas rectangle, anchored at the origin.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

func (c *Canvas) inside(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// PixelAt returns the drawn color at (x, y).
func (c *Canvas) PixelAt(x, y int) (color.NRGBA, bool) {
	if !c.inside(x, y) || !c.drawn[y*c.width+x] {
		return color.NRGBA{}, false
	}
	i := (y*c.width + x) * 4
	return color.NRGBA{R: c.data[i], G: c.data[i+1], B: c.data[i+2], A: c.data[i+3]}, true
}

// Set draws col at (x, y). Coordinates outside the canvas are ignored.
func (c *Canvas) Set(x, y int, col color.NRGBA) {
	if !c.inside(x, y) {
		return
	}
	i := (y*c.width + x) * 4
	c.data[i+0] = col.R
	c.data[i+1] = col.G
	c.data[i+2] = col.B
	c.data[i+3] = col.A
	c.drawn[y*c.width+x] = true
}

// Unset erases the pixel at (x, y), making it absent.
func (c *Canvas) Unset(x, y int) {
	if !c.inside(x, y) {
		return
	}
	i := (y*c.width + x) * 4
	clear(c.data[i : i+4])
	c.drawn[y*c.width+x] = false
}

// FillRect draws col over the rectangle r, clipped to the canvas.
func (c *Canvas) FillRect(r image.Rectangle, col color.NRGBA) {
	r = r.Intersect(c.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c.Set(x, y, col)
		}
	}
}

// Clear erases every pixel.
func (c *Canvas) Clear() {
	clear(c.data)
	clear(c.drawn)
}

// Count returns the number of drawn pixels.
func (c *Canvas) Count() int {
	n := 0
	for _, d := range c.drawn {
		if d {
			n++
		}
	}
	return n
}

// ToImage converts the canvas to an image.NRGBA. Absent pixels are
// transparent.
func (c *Canvas) ToImage() *image.NRGBA {
	img := image.NewNRGBA(c.Bounds())
	copy(img.Pix, c.data)
	return img
}

// FromImage creates a canvas from an image. Pixels with a non-zero alpha
// are drawn; fully transparent pixels are absent.
func FromImage(img image.Image) *Canvas {
	bounds := img.Bounds()
	c := New(bounds.Dx(), bounds.Dy())

	src := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(src, src.Rect, img, bounds.Min, draw.Src)

	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			if px := src.NRGBAAt(x, y); px.A > 0 {
				c.Set(x, y, px)
			}
		}
	}
	return c
}

// SavePNG saves the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, c.ToImage())
}

// LoadPNG reads a PNG file into a new canvas.
func LoadPNG(path string) (*Canvas, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("canvas: decode %s: %w", path, err)
	}
	return FromImage(img), nil
}
