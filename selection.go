package pixedit

import (
	"fmt"
	"image"
)

// SelectionKind identifies the variant held by a Selection.
type SelectionKind uint8

const (
	// SelectionRect is a plain absolute-space rectangle.
	SelectionRect SelectionKind = iota

	// SelectionMasked is a rectangle plus a membership mask.
	SelectionMasked
)

var selectionKindNames = [...]string{
	SelectionRect:   "Rect",
	SelectionMasked: "Masked",
}

// String returns the string representation of a SelectionKind.
func (k SelectionKind) String() string {
	if int(k) < len(selectionKindNames) {
		return selectionKindNames[k]
	}
	return "Unknown"
}

// Selection describes the canvas region under edit.
//
// A rectangular selection covers every pixel of its rectangle. A masked
// selection keeps the rectangle as its logical extent (used to size the
// resulting batches) and iterates the pixels of its mask: shape operations
// are driven by the mask bounds, not by the rectangle.
//
// The zero value is not a valid selection; use NewRectSelection or
// NewMaskedSelection.
type Selection struct {
	kind SelectionKind
	rect image.Rectangle
	mask *Mask
}

// NewRectSelection creates a rectangular selection at (x, y) of size w x h.
// Returns ErrInvalidSize if w or h is below 1.
func NewRectSelection(x, y, w, h int) (Selection, error) {
	if w < 1 || h < 1 {
		return Selection{}, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	return Selection{
		kind: SelectionRect,
		rect: image.Rect(x, y, x+w, y+h),
	}, nil
}

// NewMaskedSelection creates a shape selection with logical extent
// (x, y, w, h) and membership mask.
//
// The mask bounds may differ in size from the logical extent, but must start
// at (x, y): erase writes of a shape clear are placed relative to the
// selection origin while membership is read in mask-local space.
// Returns ErrMaskOrigin when the two origins diverge.
func NewMaskedSelection(x, y, w, h int, mask *Mask) (Selection, error) {
	if w < 1 || h < 1 {
		return Selection{}, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	if mask == nil {
		return Selection{}, ErrNilMask
	}
	if origin := mask.Bounds().Min; origin != image.Pt(x, y) {
		return Selection{}, fmt.Errorf("%w: mask at %v, selection at %v", ErrMaskOrigin, origin, image.Pt(x, y))
	}
	return Selection{
		kind: SelectionMasked,
		rect: image.Rect(x, y, x+w, y+h),
		mask: mask,
	}, nil
}

// MustRectSelection is like NewRectSelection but panics on error.
// Use only when the size is known to be valid.
func MustRectSelection(x, y, w, h int) Selection {
	s, err := NewRectSelection(x, y, w, h)
	if err != nil {
		panic(err)
	}
	return s
}

// Kind returns the selection variant.
func (s Selection) Kind() SelectionKind { return s.kind }

// IsMasked reports whether the selection carries a mask.
func (s Selection) IsMasked() bool { return s.kind == SelectionMasked }

// Rect returns the logical extent in absolute canvas space.
func (s Selection) Rect() image.Rectangle { return s.rect }

// Origin returns the top-left corner of the logical extent.
func (s Selection) Origin() image.Point { return s.rect.Min }

// Size returns the width and height of the logical extent.
func (s Selection) Size() (w, h int) { return s.rect.Dx(), s.rect.Dy() }

// Mask returns the membership mask, or nil for rectangular selections.
func (s Selection) Mask() *Mask { return s.mask }

// footprint is the scan area of a selection: an origin in absolute space,
// a size in relative cells and a membership test on relative offsets.
type footprint struct {
	origin image.Point
	w, h   int
	member func(xx, yy int) bool
}

func always(int, int) bool { return true }

// footprint returns the scan area for the selection. Rectangles scan their
// own rectangle; masked selections scan the mask bounds and test the mask.
func (s Selection) footprint() footprint {
	if s.kind == SelectionMasked {
		b := s.mask.Bounds()
		return footprint{
			origin: b.Min,
			w:      b.Dx(),
			h:      b.Dy(),
			member: s.mask.Contains,
		}
	}
	return footprint{
		origin: s.rect.Min,
		w:      s.rect.Dx(),
		h:      s.rect.Dy(),
		member: always,
	}
}
