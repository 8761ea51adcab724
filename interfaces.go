package pixedit

import (
	"image"
	"image/color"
)

// PixelSource reads the drawn color at an absolute canvas coordinate.
//
// PixelAt returns ok == false for an absent pixel: nothing drawn there, or a
// coordinate outside the canvas. It must not panic for any coordinate.
type PixelSource interface {
	PixelAt(x, y int) (c color.NRGBA, ok bool)
}

// Batch accumulates pixel writes bound to an anchor point and an extent.
// A finished, non-empty batch is one unit of undo history.
type Batch interface {
	// SetEraser marks the batch as an erase batch.
	SetEraser(on bool)

	// ResizeExtent sets the write extent to span anchor..anchor+(maxX, maxY),
	// both ends inclusive.
	ResizeExtent(maxX, maxY int)

	// Paint writes c at absolute (x, y).
	Paint(x, y int, c color.NRGBA)

	// Erase removes the pixel at absolute (x, y). prior is the color being
	// removed.
	Erase(x, y int, prior color.NRGBA)

	// LoadData replaces the renderable payload with raw RGBA data covering
	// bounds and resizes the batch geometry from it.
	LoadData(bounds image.Rectangle, data []byte)

	// IsEmpty reports whether the batch holds no writes.
	IsEmpty() bool

	// Finalize completes the batch. When rebuild is true the texture is
	// refreshed immediately, otherwise the refresh is deferred.
	// Finalize must be called exactly once before handoff.
	Finalize(rebuild bool) error
}

// BatchFactory creates fresh, empty, non-erase batches anchored at (x, y).
type BatchFactory interface {
	NewBatch(x, y int) Batch
}

// BatchFactoryFunc adapts a function to BatchFactory.
type BatchFactoryFunc func(x, y int) Batch

// NewBatch calls f(x, y).
func (f BatchFactoryFunc) NewBatch(x, y int) Batch { return f(x, y) }

// Layer takes ownership of finished batches for rendering.
type Layer interface {
	AddBatch(b Batch)
}

// History records finished batches. It is append-only from the engine's
// point of view; the engine only records non-empty, finalized batches.
type History interface {
	Record(kind CommandKind, b Batch)
}

// CellCode classifies one cell of a traced shape.
type CellCode uint8

const (
	// CellExterior lies outside the traced region.
	CellExterior CellCode = 0

	// CellBoundary lies on the traced boundary.
	CellBoundary CellCode = 1

	// CellInterior lies inside the traced region.
	CellInterior CellCode = 2
)

// Shape is the row-major classification grid produced by a Tracer over the
// engine working bounds.
type Shape []CellCode

// Tracer computes the contiguous region around a seed point ("magic wand").
//
// Trace returns the classification grid over bounds, or nil when no
// enclosable region exists. It is a pure function of the canvas state.
type Tracer interface {
	Trace(bounds image.Rectangle, x, y int, seed color.NRGBA) Shape
}

// TracerFunc adapts a function to Tracer.
type TracerFunc func(bounds image.Rectangle, x, y int, seed color.NRGBA) Shape

// Trace calls f(bounds, x, y, seed).
func (f TracerFunc) Trace(bounds image.Rectangle, x, y int, seed color.NRGBA) Shape {
	return f(bounds, x, y, seed)
}
