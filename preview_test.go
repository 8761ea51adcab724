package pixedit

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// stubTracer returns a fixed shape and counts calls.
type stubTracer struct {
	shape  Shape
	calls  int
	seed   color.NRGBA
	bounds image.Rectangle
}

func (s *stubTracer) Trace(bounds image.Rectangle, _, _ int, seed color.NRGBA) Shape {
	s.calls++
	s.seed = seed
	s.bounds = bounds
	return s.shape
}

// ringShape is a 4x3 grid: boundary ring around two interior cells.
func ringShape() Shape {
	return Shape{
		1, 1, 1, 1,
		1, 2, 2, 1,
		1, 1, 1, 0,
	}
}

var testTint = color.NRGBA{R: 40, G: 120, B: 240, A: 115}

func previewFixture(tr Tracer) *fixture {
	return newFixture(WithTracer(tr), WithBounds(image.Rect(10, 20, 14, 23)), WithTint(testTint))
}

func TestShapeByOffset(t *testing.T) {
	tr := &stubTracer{shape: ringShape()}
	f := previewFixture(tr)
	f.src.px[image.Pt(11, 21)] = colorAt(11, 21)

	pb, ok := f.engine.ShapeByOffset(11, 21)
	if !ok {
		t.Fatal("ShapeByOffset should find a shape")
	}
	b := pb.(*fakeBatch)

	if tr.seed != colorAt(11, 21) || tr.bounds != f.engine.Bounds() {
		t.Errorf("tracer called with seed %v bounds %v", tr.seed, tr.bounds)
	}
	if b.anchor != image.Pt(11, 21) {
		t.Errorf("anchor = %v, want (11,21)", b.anchor)
	}
	if b.bounds != image.Rect(10, 20, 14, 23) {
		t.Errorf("bounds = %v", b.bounds)
	}
	if len(b.data) != 4*3*4 {
		t.Fatalf("len(data) = %d, want 48", len(b.data))
	}
	if b.finalized != 1 || !b.rebuild {
		t.Errorf("preview should be finalized once with an immediate rebuild")
	}

	shape := ringShape()
	for i, code := range shape {
		alpha := b.data[i*4+3]
		if code == CellInterior && alpha != testTint.A {
			t.Errorf("interior cell %d alpha = %d, want %d", i, alpha, testTint.A)
		}
		if code != CellInterior && alpha != 0 {
			t.Errorf("non-interior cell %d alpha = %d, want 0", i, alpha)
		}
	}

	if len(f.layer.added) != 0 || len(f.history.records) != 0 {
		t.Error("preview must not reach the layer or history")
	}
}

// TestShapeByOffsetAbsent checks that an absent seed fails before tracing.
func TestShapeByOffsetAbsent(t *testing.T) {
	tr := &stubTracer{shape: ringShape()}
	f := previewFixture(tr)

	b, ok := f.engine.ShapeByOffset(11, 21)
	if ok || b != nil {
		t.Error("absent seed should report no selection")
	}
	if tr.calls != 0 {
		t.Error("tracer must not run for an absent seed")
	}
	if len(f.factory.batches) != 0 {
		t.Error("no batch should be created")
	}
}

func TestShapeByOffsetNoRegion(t *testing.T) {
	tr := &stubTracer{}
	f := previewFixture(tr)
	f.src.px[image.Pt(11, 21)] = colorAt(11, 21)

	if _, ok := f.engine.ShapeByOffset(11, 21); ok {
		t.Error("nil shape should report no selection")
	}
	if tr.calls != 1 || len(f.factory.batches) != 0 {
		t.Errorf("calls = %d, batches = %d", tr.calls, len(f.factory.batches))
	}
}

func TestShapeByOffsetNoTracer(t *testing.T) {
	f := newFixture(WithBounds(image.Rect(0, 0, 4, 4)))
	f.src.px[image.Pt(1, 1)] = colorAt(1, 1)

	if _, ok := f.engine.ShapeByOffset(1, 1); ok {
		t.Error("no tracer should report no selection")
	}
}

func TestShapeByOffsetEmptyBounds(t *testing.T) {
	tr := &stubTracer{shape: ringShape()}
	f := newFixture(WithTracer(tr))
	f.src.px[image.Pt(1, 1)] = colorAt(1, 1)

	if _, ok := f.engine.ShapeByOffset(1, 1); ok {
		t.Error("empty working bounds should report no selection")
	}
	if len(f.factory.batches) != 0 {
		t.Error("no batch should be created")
	}
}

func TestShapeByOffsetShortShape(t *testing.T) {
	tr := &stubTracer{shape: Shape{0, 2}}
	f := previewFixture(tr)
	f.src.px[image.Pt(11, 21)] = colorAt(11, 21)

	pb, ok := f.engine.ShapeByOffset(11, 21)
	if !ok {
		t.Fatal("short shape should still build a preview")
	}
	b := pb.(*fakeBatch)
	if b.data[1*4+3] != testTint.A {
		t.Error("cell 1 should be tinted")
	}
}

// TestShapeByOffsetIdempotent checks that repeated previews are identical.
func TestShapeByOffsetIdempotent(t *testing.T) {
	tr := &stubTracer{shape: ringShape()}
	f := previewFixture(tr)
	f.src.px[image.Pt(11, 21)] = colorAt(11, 21)

	first, _ := f.engine.ShapeByOffset(11, 21)
	second, _ := f.engine.ShapeByOffset(11, 21)

	a, b := first.(*fakeBatch).data, second.(*fakeBatch).data
	if !bytes.Equal(a, b) {
		t.Error("previews of an unchanged canvas should be bit-identical")
	}
}

func TestSelectShape(t *testing.T) {
	tr := &stubTracer{shape: ringShape()}
	f := previewFixture(tr)
	f.src.fill(image.Rect(0, 0, 30, 30))

	sel, preview, ok := f.engine.SelectShape(11, 21)
	if !ok || preview == nil {
		t.Fatal("SelectShape should succeed")
	}
	if !sel.IsMasked() || sel.Rect() != f.engine.Bounds() {
		t.Fatalf("selection = %v %v, want masked over bounds", sel.Kind(), sel.Rect())
	}
	if got := sel.Mask().Count(); got != 2 {
		t.Errorf("mask members = %d, want 2", got)
	}

	entry := f.engine.Copy(sel)
	if len(entry.Pixels) != 2 {
		t.Fatalf("copied %d pixels, want 2", len(entry.Pixels))
	}
	if p := entry.Pixels[0]; p.X != 1 || p.Y != 1 || p.Color != colorAt(11, 21) {
		t.Errorf("first pixel = %+v", p)
	}

	// The mask is independent of the preview payload.
	preview.(*fakeBatch).data[(1*4+1)*4+3] = 0
	if !sel.Mask().Contains(1, 1) {
		t.Error("mask should not alias the preview data")
	}
}

func TestSelectShapeTransparentTint(t *testing.T) {
	tr := &stubTracer{shape: ringShape()}
	f := newFixture(WithTracer(tr), WithBounds(image.Rect(10, 20, 14, 23)), WithTint(color.NRGBA{R: 1}))
	f.src.fill(image.Rect(0, 0, 30, 30))

	sel, _, ok := f.engine.SelectShape(11, 21)
	if !ok {
		t.Fatal("SelectShape should succeed")
	}
	if got := sel.Mask().Count(); got != 2 {
		t.Fatalf("mask members = %d, want 2", got)
	}

	if !f.engine.ClearRect(sel) {
		t.Fatal("clearing the traced shape should apply")
	}
	b := f.factory.batches[len(f.factory.batches)-1]
	want := []write{
		{11, 21, colorAt(11, 21)},
		{12, 21, colorAt(12, 21)},
	}
	if diff := cmp.Diff(want, b.erases); diff != "" {
		t.Errorf("erases mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectShapeFails(t *testing.T) {
	f := previewFixture(&stubTracer{})
	if _, _, ok := f.engine.SelectShape(0, 0); ok {
		t.Error("SelectShape should fail for an absent seed")
	}
}
