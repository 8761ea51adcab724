package pixedit

import (
	"image"
	"image/color"
)

// Engine runs selection-scoped edits against a canvas.
//
// The engine reads pixels through a PixelSource, accumulates writes into
// batches from a BatchFactory, hands finished batches to the current Layer
// and records them in History. It owns one Clipboard.
//
// Every operation is synchronous. A failed or empty edit leaves no trace:
// no batch reaches the layer and nothing is recorded.
//
// Engine is NOT safe for concurrent use.
type Engine struct {
	src     PixelSource
	batches BatchFactory
	layer   Layer
	history History
	tracer  Tracer
	clip    *Clipboard
	bounds  image.Rectangle
	tint    color.NRGBA
}

// bounded is implemented by pixel sources that know their own extent.
type bounded interface {
	Bounds() image.Rectangle
}

// NewEngine creates an engine over src.
//
// When WithBounds is not given and src reports its own Bounds, the working
// bounds default to them.
func NewEngine(src PixelSource, batches BatchFactory, layer Layer, history History, opts ...Option) (*Engine, error) {
	switch {
	case src == nil:
		return nil, ErrNilPixelSource
	case batches == nil:
		return nil, ErrNilBatchFactory
	case layer == nil:
		return nil, ErrNilLayer
	case history == nil:
		return nil, ErrNilHistory
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.tintErr != nil {
		return nil, o.tintErr
	}
	if o.clipboard == nil {
		o.clipboard = NewClipboard()
	}
	if o.bounds.Empty() {
		if b, ok := src.(bounded); ok {
			o.bounds = b.Bounds()
		}
	}

	return &Engine{
		src:     src,
		batches: batches,
		layer:   layer,
		history: history,
		tracer:  o.tracer,
		clip:    o.clipboard,
		bounds:  o.bounds,
		tint:    o.tint,
	}, nil
}

// Clipboard returns the engine's clipboard.
func (e *Engine) Clipboard() *Clipboard { return e.clip }

// Bounds returns the working bounds.
func (e *Engine) Bounds() image.Rectangle { return e.bounds }

// Tint returns the preview tint.
func (e *Engine) Tint() color.NRGBA { return e.tint }

// SetLayer makes l the current layer for subsequent edits.
// A nil layer is ignored.
func (e *Engine) SetLayer(l Layer) {
	if l != nil {
		e.layer = l
	}
}

// scan visits, in row-major order, every member cell of fp whose canvas
// pixel is drawn. xx and yy are relative to fp.origin.
func (e *Engine) scan(fp footprint, visit func(xx, yy int, c color.NRGBA)) {
	for yy := 0; yy < fp.h; yy++ {
		for xx := 0; xx < fp.w; xx++ {
			if !fp.member(xx, yy) {
				continue
			}
			c, ok := e.src.PixelAt(fp.origin.X+xx, fp.origin.Y+yy)
			if !ok {
				continue
			}
			visit(xx, yy, c)
		}
	}
}

// Copy replaces the clipboard content with the drawn pixels of sel.
//
// Rectangular selections sample every offset of their rectangle; masked
// selections sample only the mask members, with offsets relative to the
// mask bounds. The returned entry is also stored in the clipboard, even
// when it holds no pixels.
func (e *Engine) Copy(sel Selection) ClipboardEntry {
	e.clip.Reset()

	pixels := make([]Pixel, 0)
	e.scan(sel.footprint(), func(xx, yy int, c color.NRGBA) {
		pixels = append(pixels, Pixel{X: xx, Y: yy, Color: c})
	})

	entry := ClipboardEntry{Selection: sel, Pixels: pixels}
	e.clip.Set(entry)

	if entry.Empty() {
		Logger().Debug("pixedit: copy", "kind", sel.Kind(), "reason", ErrEmptySelection)
	} else {
		Logger().Debug("pixedit: copy", "kind", sel.Kind(), "pixels", len(pixels))
	}
	return entry
}

// Paste paints board at (x, y) as one history entry.
//
// Every copied offset is reproduced verbatim at (x+X, y+Y); the batch extent
// is the size of the selection the entry was copied from. Pasting an entry
// without pixels does nothing and returns false.
func (e *Engine) Paste(x, y int, board ClipboardEntry) bool {
	if board.Empty() {
		Logger().Debug("pixedit: paste skipped", "reason", ErrEmptySelection)
		return false
	}

	b := e.batches.NewBatch(x, y)
	w, h := board.Selection.Size()
	b.ResizeExtent(w-1, h-1)
	for _, p := range board.Pixels {
		b.Paint(x+p.X, y+p.Y, p.Color)
	}
	return e.commit(CommandPaste, b)
}

// PasteClipboard pastes the current clipboard entry at (x, y).
func (e *Engine) PasteClipboard(x, y int) bool {
	entry, ok := e.clip.Peek()
	if !ok {
		Logger().Debug("pixedit: paste skipped", "reason", ErrEmptySelection)
		return false
	}
	return e.Paste(x, y, entry)
}

// Cut copies sel and, if the copy holds pixels, clears sel.
// Only the clear is recorded in history.
func (e *Engine) Cut(sel Selection) bool {
	if entry := e.Copy(sel); entry.Empty() {
		Logger().Debug("pixedit: cut skipped", "kind", sel.Kind(), "reason", ErrNothingToCut)
		return false
	}
	return e.ClearRect(sel)
}

// ClearRect erases the drawn pixels of sel as one history entry.
// Masked selections erase only their mask members.
// Returns false when nothing was erased.
func (e *Engine) ClearRect(sel Selection) bool {
	if sel.IsMasked() {
		return e.clearByShape(sel)
	}

	b := e.newEraser(sel)
	origin := sel.Origin()
	e.scan(sel.footprint(), func(xx, yy int, c color.NRGBA) {
		b.Erase(origin.X+xx, origin.Y+yy, c)
	})
	return e.commit(CommandClear, b)
}

// clearByShape erases the mask members of sel. Membership is read in
// mask-local space and erase writes are placed from the selection origin;
// NewMaskedSelection guarantees both origins coincide.
func (e *Engine) clearByShape(sel Selection) bool {
	b := e.newEraser(sel)
	origin := sel.Origin()

	count := 0
	e.scan(sel.footprint(), func(xx, yy int, c color.NRGBA) {
		b.Erase(origin.X+xx, origin.Y+yy, c)
		count++
	})
	if count == 0 {
		Logger().Debug("pixedit: clear skipped", "kind", sel.Kind(), "reason", ErrEmptySelection)
		return false
	}
	return e.commit(CommandClear, b)
}

// newEraser creates an erase batch anchored and sized to sel's extent.
func (e *Engine) newEraser(sel Selection) Batch {
	origin := sel.Origin()
	w, h := sel.Size()
	b := e.batches.NewBatch(origin.X, origin.Y)
	b.SetEraser(true)
	b.ResizeExtent(w-1, h-1)
	return b
}

// commit finalizes b and hands it to the layer and history.
// Empty batches are discarded.
func (e *Engine) commit(kind CommandKind, b Batch) bool {
	if b.IsEmpty() {
		Logger().Debug("pixedit: batch discarded", "command", kind, "reason", ErrDegenerateEdit)
		return false
	}
	if err := b.Finalize(false); err != nil {
		Logger().Warn("pixedit: batch finalize failed", "command", kind, "err", err)
	}
	e.layer.AddBatch(b)
	e.history.Record(kind, b)
	Logger().Debug("pixedit: batch committed", "command", kind)
	return true
}
