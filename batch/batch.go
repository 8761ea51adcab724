package batch

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/google/uuid"

	"github.com/gogpu/pixedit"
)

// Common errors returned by Batch operations.
var (
	// ErrFinalized is returned when Finalize is called more than once.
	ErrFinalized = errors.New("batch: already finalized")

	// ErrTextureCreationFailed is returned when texture creation fails.
	ErrTextureCreationFailed = errors.New("batch: texture creation failed")
)

// Format is the texture format of every batch matrix.
const Format = gputypes.TextureFormatRGBA8Unorm

var _ pixedit.Batch = (*Batch)(nil)

// Write is one pixel write. For erase writes Color is the color removed.
type Write struct {
	X, Y  int
	Color color.NRGBA
	Erase bool
}

// textureDestroyer is the interface for destroying textures.
type textureDestroyer interface {
	Destroy()
}

// Batch accumulates pixel writes for one edit.
type Batch struct {
	id        uuid.UUID
	anchor    image.Point
	bounds    image.Rectangle
	eraser    bool
	writes    []Write
	index     map[image.Point]int
	data      []byte
	loaded    bool
	finalized bool

	creator gpucontext.TextureCreator
	texture gpucontext.Texture
	dirty   bool
}

// Option configures a Batch during creation.
type Option func(*Batch)

// WithTextureCreator makes the batch upload its matrix through c.
// Without a creator the batch keeps its matrix on the CPU only.
func WithTextureCreator(c gpucontext.TextureCreator) Option {
	return func(b *Batch) {
		b.creator = c
	}
}

// New creates an empty, non-erase batch anchored at (x, y).
// Its bounds are empty until ResizeExtent, a write or LoadData.
func New(x, y int, opts ...Option) *Batch {
	anchor := image.Pt(x, y)
	b := &Batch{
		id:     uuid.Must(uuid.NewV7()),
		anchor: anchor,
		bounds: image.Rectangle{Min: anchor, Max: anchor},
		index:  make(map[image.Point]int),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// ID returns the batch identifier (UUIDv7, time ordered).
func (b *Batch) ID() uuid.UUID { return b.id }

// Anchor returns the absolute anchor point.
func (b *Batch) Anchor() image.Point { return b.anchor }

// Bounds returns the absolute rectangle covered by the batch.
func (b *Batch) Bounds() image.Rectangle { return b.bounds }

// Eraser reports whether the batch is an erase batch.
func (b *Batch) Eraser() bool { return b.eraser }

// SetEraser marks the batch as an erase batch.
func (b *Batch) SetEraser(on bool) { b.eraser = on }

// ResizeExtent sets the bounds to span anchor..anchor+(maxX, maxY),
// both ends inclusive.
func (b *Batch) ResizeExtent(maxX, maxY int) {
	b.bounds = image.Rect(b.anchor.X, b.anchor.Y, b.anchor.X+maxX+1, b.anchor.Y+maxY+1)
}

// Paint writes c at absolute (x, y). Bounds grow to include the pixel.
func (b *Batch) Paint(x, y int, c color.NRGBA) {
	b.record(Write{X: x, Y: y, Color: c})
}

// Erase removes the pixel at absolute (x, y); prior is the removed color.
func (b *Batch) Erase(x, y int, prior color.NRGBA) {
	b.record(Write{X: x, Y: y, Color: prior, Erase: true})
}

func (b *Batch) record(w Write) {
	p := image.Pt(w.X, w.Y)
	if i, ok := b.index[p]; ok {
		b.writes[i] = w
		return
	}
	b.index[p] = len(b.writes)
	b.writes = append(b.writes, w)
	if !p.In(b.bounds) {
		b.bounds = b.bounds.Union(image.Rect(p.X, p.Y, p.X+1, p.Y+1))
	}
}

// LoadData replaces the matrix with raw RGBA data covering bounds.
// The data is used as-is; its length must be 4 bytes per pixel of bounds.
func (b *Batch) LoadData(bounds image.Rectangle, data []byte) {
	b.bounds = bounds
	b.data = data
	b.loaded = true
}

// Writes returns a copy of the writes in first-write order.
func (b *Batch) Writes() []Write {
	out := make([]Write, len(b.writes))
	copy(out, b.writes)
	return out
}

// Len returns the number of distinct pixels written.
func (b *Batch) Len() int { return len(b.writes) }

// IsEmpty reports whether the batch holds no writes. A batch loaded from
// raw data is empty when every pixel is fully transparent.
func (b *Batch) IsEmpty() bool {
	if len(b.writes) > 0 {
		return false
	}
	for i := 3; i < len(b.data); i += 4 {
		if b.data[i] != 0 {
			return false
		}
	}
	return true
}

// Finalize completes the batch: paint writes are rasterized into the
// matrix (erase writes stay transparent). With rebuild the texture is
// refreshed now, otherwise on the next Flush.
func (b *Batch) Finalize(rebuild bool) error {
	if b.finalized {
		return ErrFinalized
	}
	b.finalized = true
	if !b.loaded {
		b.rasterize()
	}
	b.dirty = true
	if rebuild {
		return b.Flush()
	}
	return nil
}

// Finalized reports whether Finalize has been called.
func (b *Batch) Finalized() bool { return b.finalized }

func (b *Batch) rasterize() {
	w, h := b.bounds.Dx(), b.bounds.Dy()
	b.data = make([]byte, w*h*4)
	for _, wr := range b.writes {
		if wr.Erase || !image.Pt(wr.X, wr.Y).In(b.bounds) {
			continue
		}
		i := ((wr.Y-b.bounds.Min.Y)*w + (wr.X - b.bounds.Min.X)) * 4
		b.data[i+0] = wr.Color.R
		b.data[i+1] = wr.Color.G
		b.data[i+2] = wr.Color.B
		b.data[i+3] = wr.Color.A
	}
}

// Data returns the RGBA matrix over Bounds. It is nil before Finalize
// unless LoadData was used.
func (b *Batch) Data() []byte { return b.data }

// At returns the matrix color at absolute (x, y).
func (b *Batch) At(x, y int) color.NRGBA {
	p := image.Pt(x, y)
	if !p.In(b.bounds) || b.data == nil {
		return color.NRGBA{}
	}
	i := ((y-b.bounds.Min.Y)*b.bounds.Dx() + (x - b.bounds.Min.X)) * 4
	return color.NRGBA{R: b.data[i], G: b.data[i+1], B: b.data[i+2], A: b.data[i+3]}
}

// TextureExtent returns the texture size of the matrix.
func (b *Batch) TextureExtent() gputypes.Extent3D {
	// #nosec G115 -- rectangle sizes are non-negative
	return gputypes.NewExtent2D(uint32(b.bounds.Dx()), uint32(b.bounds.Dy()))
}

// Texture returns the GPU texture, or nil if none was created.
func (b *Batch) Texture() gpucontext.Texture { return b.texture }

// Dirty reports whether the texture is behind the matrix.
func (b *Batch) Dirty() bool { return b.dirty }

// Flush uploads the matrix to the GPU texture if dirty.
//
// The texture is created lazily on the first upload and updated in place
// afterwards. Without a texture creator, or for an empty matrix, Flush only
// clears the dirty flag.
func (b *Batch) Flush() error {
	if !b.dirty {
		return nil
	}
	w, h := b.bounds.Dx(), b.bounds.Dy()
	if b.creator == nil || w == 0 || h == 0 {
		b.dirty = false
		return nil
	}

	if b.texture == nil {
		tex, err := b.creator.NewTextureFromRGBA(w, h, b.data)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrTextureCreationFailed, err)
		}
		b.texture = tex
		b.dirty = false
		pixedit.Logger().Debug("batch: texture created", "id", b.id, "format", Format, "width", w, "height", h)
		return nil
	}

	if updater, ok := b.texture.(gpucontext.TextureUpdater); ok {
		if err := updater.UpdateData(b.data); err != nil {
			return fmt.Errorf("batch: texture update failed: %w", err)
		}
	}
	b.dirty = false
	return nil
}

// Close releases the GPU texture. Close is idempotent.
func (b *Batch) Close() error {
	if d, ok := b.texture.(textureDestroyer); ok {
		d.Destroy()
	}
	b.texture = nil
	return nil
}

// Factory creates batches that share one texture creator.
type Factory struct {
	creator gpucontext.TextureCreator
}

// NewFactory creates a factory. creator may be nil for CPU-only batches.
func NewFactory(creator gpucontext.TextureCreator) *Factory {
	return &Factory{creator: creator}
}

// NewBatch implements pixedit.BatchFactory.
func (f *Factory) NewBatch(x, y int) pixedit.Batch {
	return New(x, y, WithTextureCreator(f.creator))
}
