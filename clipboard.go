package pixedit

import (
	"image"
	"image/color"
	"slices"
)

// Pixel is one copied sample at an offset relative to the selection origin.
type Pixel struct {
	X, Y  int
	Color color.NRGBA
}

// ClipboardEntry is the result of a copy.
//
// Pixels are in row-major scan order over the selection footprint and are
// relative to the footprint origin (the selection origin for rectangles,
// the mask bounds origin for masked selections). Absent pixels are never
// recorded, so Pixels is sparse and may be empty.
type ClipboardEntry struct {
	Selection Selection
	Pixels    []Pixel
}

// Empty reports whether the entry holds no pixels.
func (e ClipboardEntry) Empty() bool { return len(e.Pixels) == 0 }

// Bounds returns the rectangle covered by the copied offsets, relative to
// the footprint origin. It is empty when the entry holds no pixels.
func (e ClipboardEntry) Bounds() image.Rectangle {
	var r image.Rectangle
	for i, p := range e.Pixels {
		cell := image.Rect(p.X, p.Y, p.X+1, p.Y+1)
		if i == 0 {
			r = cell
			continue
		}
		r = r.Union(cell)
	}
	return r
}

// Image renders the entry into an image whose bounds are Bounds().
// Offsets without a copied pixel stay transparent.
func (e ClipboardEntry) Image() *image.NRGBA {
	img := image.NewNRGBA(e.Bounds())
	for _, p := range e.Pixels {
		img.SetNRGBA(p.X, p.Y, p.Color)
	}
	return img
}

// Clipboard is a single-slot holder for the last copy.
//
// Clipboard is NOT safe for concurrent use; it is owned by one Engine.
type Clipboard struct {
	entry *ClipboardEntry
}

// NewClipboard creates an empty clipboard.
func NewClipboard() *Clipboard {
	return &Clipboard{}
}

// Set stores a copy of e, replacing any previous entry.
func (c *Clipboard) Set(e ClipboardEntry) {
	e.Pixels = slices.Clone(e.Pixels)
	c.entry = &e
}

// Peek returns a copy of the current entry without removing it.
func (c *Clipboard) Peek() (ClipboardEntry, bool) {
	if c.entry == nil {
		return ClipboardEntry{}, false
	}
	e := *c.entry
	e.Pixels = slices.Clone(e.Pixels)
	return e, true
}

// Take returns the current entry and empties the slot.
func (c *Clipboard) Take() (ClipboardEntry, bool) {
	if c.entry == nil {
		return ClipboardEntry{}, false
	}
	e := *c.entry
	c.entry = nil
	return e, true
}

// Reset empties the slot.
func (c *Clipboard) Reset() {
	c.entry = nil
}
