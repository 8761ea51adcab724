package offscreen

import (
	"bytes"
	"errors"
	"image/color"
	"testing"
)

func TestNewInvalid(t *testing.T) {
	for _, sz := range [][2]int{{0, 1}, {1, 0}, {-1, 4}} {
		if _, err := New(sz[0], sz[1]); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("New(%d, %d) error = %v, want ErrInvalidDimensions", sz[0], sz[1], err)
		}
	}
}

func TestFillCell(t *testing.T) {
	buf, err := New(4, 3)
	if err != nil {
		t.Fatal(err)
	}
	tint := color.NRGBA{R: 200, G: 100, B: 50, A: 115}
	buf.SetFill(tint)
	buf.FillCell(2, 1)

	got := buf.At(2, 1)
	if got.A != tint.A {
		t.Errorf("alpha = %d, want %d", got.A, tint.A)
	}
	if diff(got.R, tint.R) > 1 || diff(got.G, tint.G) > 1 || diff(got.B, tint.B) > 1 {
		t.Errorf("color = %v, want about %v", got, tint)
	}

	// Neighbors are untouched.
	for _, p := range [][2]int{{1, 1}, {3, 1}, {2, 0}, {2, 2}} {
		if c := buf.At(p[0], p[1]); c != (color.NRGBA{}) {
			t.Errorf("At(%d, %d) = %v, want transparent", p[0], p[1], c)
		}
	}
}

func TestFillCellOutOfBounds(t *testing.T) {
	buf, _ := New(2, 2)
	buf.SetFill(color.NRGBA{A: 255})
	buf.FillCell(-1, 0)
	buf.FillCell(2, 2)

	for _, b := range buf.ReadPixels() {
		if b != 0 {
			t.Fatal("out of bounds fill should not touch the buffer")
		}
	}
}

func TestReadPixelsLayout(t *testing.T) {
	buf, _ := New(3, 2)
	buf.SetFill(color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	buf.FillCell(1, 1)

	px := buf.ReadPixels()
	if len(px) != 3*2*4 {
		t.Fatalf("len = %d, want %d", len(px), 3*2*4)
	}
	i := (1*3 + 1) * 4
	if !bytes.Equal(px[i:i+4], []byte{1, 2, 3, 255}) {
		t.Errorf("pixel (1,1) = %v, want [1 2 3 255]", px[i:i+4])
	}

	// ReadPixels returns a copy.
	px[i] = 99
	if buf.At(1, 1).R != 1 {
		t.Error("ReadPixels should return a copy")
	}
}

func diff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
