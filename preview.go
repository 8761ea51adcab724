package pixedit

import (
	"github.com/gogpu/pixedit/internal/offscreen"
)

// ShapeByOffset traces the region around (x, y) and returns a preview batch
// that paints its interior with the selection tint.
//
// The preview covers the working bounds, is finalized with an immediate
// texture refresh, and is neither added to a layer nor recorded in history.
// Returns false when (x, y) holds no drawn pixel or the tracer finds no
// region.
func (e *Engine) ShapeByOffset(x, y int) (Batch, bool) {
	b, _, ok := e.shapeByOffset(x, y)
	return b, ok
}

// SelectShape traces the region around (x, y) like ShapeByOffset and also
// turns the traced interior into a masked selection over the working bounds.
// Membership comes from the traced cells, not from the preview tint.
func (e *Engine) SelectShape(x, y int) (Selection, Batch, bool) {
	b, mask, ok := e.shapeByOffset(x, y)
	if !ok {
		return Selection{}, nil, false
	}

	r := e.bounds
	sel, err := NewMaskedSelection(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), mask)
	if err != nil {
		Logger().Debug("pixedit: select shape", "reason", err)
		return Selection{}, nil, false
	}
	return sel, b, true
}

// shapeByOffset builds the preview batch and a mask of the traced interior
// over the working bounds.
func (e *Engine) shapeByOffset(x, y int) (Batch, *Mask, bool) {
	seed, ok := e.src.PixelAt(x, y)
	if !ok {
		Logger().Debug("pixedit: shape detection", "x", x, "y", y, "reason", ErrNoShapeAtPoint)
		return nil, nil, false
	}
	if e.tracer == nil {
		Logger().Debug("pixedit: shape detection", "x", x, "y", y, "reason", ErrNoTracer)
		return nil, nil, false
	}

	shape := e.tracer.Trace(e.bounds, x, y, seed)
	if shape == nil {
		Logger().Debug("pixedit: shape detection", "x", x, "y", y, "reason", ErrNoShapeAtPoint)
		return nil, nil, false
	}

	bw, bh := e.bounds.Dx(), e.bounds.Dy()
	buf, err := offscreen.New(bw, bh)
	if err != nil {
		Logger().Debug("pixedit: shape detection", "bounds", e.bounds, "reason", err)
		return nil, nil, false
	}
	buf.SetFill(e.tint)
	mask := NewMask(e.bounds)

	cells := min(len(shape), bw*bh)
	for i := 0; i < cells; i++ {
		if shape[i] != CellInterior {
			continue
		}
		buf.FillCell(i%bw, i/bw)
		mask.Set(i%bw, i/bw, 255)
	}

	data := buf.ReadPixels()
	b := e.batches.NewBatch(x, y)
	b.LoadData(e.bounds, data)
	if err := b.Finalize(true); err != nil {
		Logger().Warn("pixedit: preview texture refresh failed", "err", err)
	}
	return b, mask, true
}
