package pixedit

import (
	"fmt"
	"image"
)

// Mask is a membership grid anchored at an absolute canvas rectangle.
//
// Cells are stored as 4-byte RGBA groups, the same layout an offscreen
// buffer produces. Only the fourth byte (alpha) is significant: a value
// greater than zero marks the cell as part of the shape.
//
// Cells are addressed in mask-local coordinates (xx, yy) with
// 0 <= xx < Width() and 0 <= yy < Height(). The absolute canvas position
// of a cell is Bounds().Min.Add(image.Pt(xx, yy)).
type Mask struct {
	bounds image.Rectangle
	data   []uint8
}

// NewMask creates an empty mask covering bounds.
// All cells are initialized to 0 (outside the shape).
func NewMask(bounds image.Rectangle) *Mask {
	bounds = bounds.Canon()
	return &Mask{
		bounds: bounds,
		data:   make([]uint8, bounds.Dx()*bounds.Dy()*4),
	}
}

// NewMaskFromData wraps existing RGBA cell data without copying.
// The data must hold exactly 4 bytes per cell of bounds.
func NewMaskFromData(bounds image.Rectangle, data []uint8) (*Mask, error) {
	bounds = bounds.Canon()
	if want := bounds.Dx() * bounds.Dy() * 4; len(data) != want {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrMaskDataSize, len(data), want)
	}
	return &Mask{bounds: bounds, data: data}, nil
}

// NewMaskFromAlpha creates a mask from an image's alpha channel.
// The mask is anchored at the image bounds.
func NewMaskFromAlpha(img image.Image) *Mask {
	bounds := img.Bounds()
	mask := NewMask(bounds)
	w := bounds.Dx()

	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < w; x++ {
			_, _, _, a := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// #nosec G115 -- safe: a>>8 is always in range [0, 255]
			mask.data[(y*w+x)*4+3] = uint8(a >> 8)
		}
	}

	return mask
}

// Bounds returns the absolute rectangle the mask is anchored at.
func (m *Mask) Bounds() image.Rectangle { return m.bounds }

// Width returns the mask width in cells.
func (m *Mask) Width() int { return m.bounds.Dx() }

// Height returns the mask height in cells.
func (m *Mask) Height() int { return m.bounds.Dy() }

// At returns the alpha byte of the cell at mask-local (xx, yy).
// Returns 0 for coordinates outside the mask.
func (m *Mask) At(xx, yy int) uint8 {
	w := m.bounds.Dx()
	if xx < 0 || xx >= w || yy < 0 || yy >= m.bounds.Dy() {
		return 0
	}
	return m.data[(yy*w+xx)*4+3]
}

// Contains reports whether the cell at mask-local (xx, yy) is part of the shape.
func (m *Mask) Contains(xx, yy int) bool {
	return m.At(xx, yy) > 0
}

// Set sets the alpha byte of the cell at mask-local (xx, yy).
// Coordinates outside the mask are ignored.
func (m *Mask) Set(xx, yy int, alpha uint8) {
	w := m.bounds.Dx()
	if xx < 0 || xx >= w || yy < 0 || yy >= m.bounds.Dy() {
		return
	}
	m.data[(yy*w+xx)*4+3] = alpha
}

// Fill sets every cell's alpha to value.
func (m *Mask) Fill(value uint8) {
	for i := 3; i < len(m.data); i += 4 {
		m.data[i] = value
	}
}

// Invert inverts all alpha values (255 - value).
func (m *Mask) Invert() {
	for i := 3; i < len(m.data); i += 4 {
		m.data[i] = 255 - m.data[i]
	}
}

// Count returns the number of cells that are part of the shape.
func (m *Mask) Count() int {
	n := 0
	for i := 3; i < len(m.data); i += 4 {
		if m.data[i] > 0 {
			n++
		}
	}
	return n
}

// Clone creates a deep copy of the mask.
func (m *Mask) Clone() *Mask {
	clone := &Mask{bounds: m.bounds, data: make([]uint8, len(m.data))}
	copy(clone.data, m.data)
	return clone
}

// Data returns the underlying RGBA cell data.
func (m *Mask) Data() []uint8 {
	return m.data
}
