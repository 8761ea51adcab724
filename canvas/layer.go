package canvas

import (
	"github.com/google/uuid"

	"github.com/gogpu/pixedit"
	"github.com/gogpu/pixedit/batch"
)

var _ pixedit.Layer = (*Layer)(nil)

// identified is implemented by batches that carry an identifier.
type identified interface {
	ID() uuid.UUID
}

// writeLister is implemented by batches that expose their pixel writes.
type writeLister interface {
	Writes() []batch.Write
}

// Layer applies finished batches to a canvas and keeps them in order.
//
// Paint writes draw their color; erase writes make the pixel absent.
// Batches that do not expose their writes are kept but not applied.
type Layer struct {
	name    string
	canvas  *Canvas
	batches []pixedit.Batch
	owned   map[uuid.UUID]struct{}
}

// NewLayer creates a layer drawing onto c.
func NewLayer(name string, c *Canvas) *Layer {
	return &Layer{name: name, canvas: c, owned: make(map[uuid.UUID]struct{})}
}

// Name returns the layer name.
func (l *Layer) Name() string { return l.name }

// Canvas returns the canvas the layer draws onto.
func (l *Layer) Canvas() *Canvas { return l.canvas }

// AddBatch applies b to the canvas and takes ownership of it.
// Adding a batch whose ID the layer already owns does nothing; batches
// without an ID are applied every time they are added.
func (l *Layer) AddBatch(b pixedit.Batch) {
	if id, ok := b.(identified); ok {
		if _, dup := l.owned[id.ID()]; dup {
			return
		}
		l.owned[id.ID()] = struct{}{}
	}
	l.batches = append(l.batches, b)

	wl, ok := b.(writeLister)
	if !ok {
		pixedit.Logger().Debug("canvas: batch without writes kept unapplied", "layer", l.name)
		return
	}
	writes := wl.Writes()
	for _, w := range writes {
		if w.Erase {
			l.canvas.Unset(w.X, w.Y)
		} else {
			l.canvas.Set(w.X, w.Y, w.Color)
		}
	}
	pixedit.Logger().Debug("canvas: batch applied", "layer", l.name, "writes", len(writes))
}

// Batches returns the batches owned by the layer, oldest first.
func (l *Layer) Batches() []pixedit.Batch {
	out := make([]pixedit.Batch, len(l.batches))
	copy(out, l.batches)
	return out
}

// Len returns the number of batches owned by the layer.
func (l *Layer) Len() int { return len(l.batches) }
