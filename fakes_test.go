package pixedit

import (
	"image"
	"image/color"
)

// fakeSource is a sparse PixelSource; missing keys are absent pixels.
type fakeSource struct {
	px     map[image.Point]color.NRGBA
	bounds image.Rectangle
	reads  int
}

func newFakeSource() *fakeSource {
	return &fakeSource{px: make(map[image.Point]color.NRGBA)}
}

func (s *fakeSource) PixelAt(x, y int) (color.NRGBA, bool) {
	s.reads++
	c, ok := s.px[image.Pt(x, y)]
	return c, ok
}

func (s *fakeSource) fill(r image.Rectangle) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			s.px[image.Pt(x, y)] = colorAt(x, y)
		}
	}
}

// boundedSource adds Bounds to fakeSource.
type boundedSource struct {
	*fakeSource
}

func (s boundedSource) Bounds() image.Rectangle { return s.bounds }

// colorAt returns a color unique to (x, y) for small coordinates.
func colorAt(x, y int) color.NRGBA {
	// #nosec G115 -- test coordinates are small
	return color.NRGBA{R: uint8(x), G: uint8(y), B: uint8(x*7 + y*13), A: 255}
}

type write struct {
	X, Y  int
	Color color.NRGBA
}

// fakeBatch records every call made by the engine.
type fakeBatch struct {
	anchor    image.Point
	eraser    bool
	extent    image.Point
	resized   int
	paints    []write
	erases    []write
	bounds    image.Rectangle
	data      []byte
	finalized int
	rebuild   bool
}

func (b *fakeBatch) SetEraser(on bool) { b.eraser = on }

func (b *fakeBatch) ResizeExtent(maxX, maxY int) {
	b.extent = image.Pt(maxX, maxY)
	b.resized++
}

func (b *fakeBatch) Paint(x, y int, c color.NRGBA) {
	b.paints = append(b.paints, write{x, y, c})
}

func (b *fakeBatch) Erase(x, y int, prior color.NRGBA) {
	b.erases = append(b.erases, write{x, y, prior})
}

func (b *fakeBatch) LoadData(bounds image.Rectangle, data []byte) {
	b.bounds = bounds
	b.data = data
}

func (b *fakeBatch) IsEmpty() bool {
	return len(b.paints) == 0 && len(b.erases) == 0 && len(b.data) == 0
}

func (b *fakeBatch) Finalize(rebuild bool) error {
	b.finalized++
	b.rebuild = rebuild
	return nil
}

type fakeFactory struct {
	batches []*fakeBatch
}

func (f *fakeFactory) NewBatch(x, y int) Batch {
	b := &fakeBatch{anchor: image.Pt(x, y)}
	f.batches = append(f.batches, b)
	return b
}

type fakeLayer struct {
	added []Batch
}

func (l *fakeLayer) AddBatch(b Batch) { l.added = append(l.added, b) }

type record struct {
	kind  CommandKind
	batch Batch
}

type fakeHistory struct {
	records []record
}

func (h *fakeHistory) Record(kind CommandKind, b Batch) {
	h.records = append(h.records, record{kind, b})
}

// fixture bundles an engine with its fakes.
type fixture struct {
	src     *fakeSource
	factory *fakeFactory
	layer   *fakeLayer
	history *fakeHistory
	engine  *Engine
}

func newFixture(opts ...Option) *fixture {
	f := &fixture{
		src:     newFakeSource(),
		factory: &fakeFactory{},
		layer:   &fakeLayer{},
		history: &fakeHistory{},
	}
	eng, err := NewEngine(f.src, f.factory, f.layer, f.history, opts...)
	if err != nil {
		panic(err)
	}
	f.engine = eng
	return f
}
