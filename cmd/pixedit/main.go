// Command pixedit applies one selection edit to a PNG image.
//
// Usage:
//
//	pixedit -input in.png -op copy -rect 10,10,32,32 -to 100,100 -output out.png
//
// Operations: copy (copy then paste at -to), cut (cut then paste at -to),
// clear, and wand (erase the region of the seed color at -to).
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/pixedit"
	"github.com/gogpu/pixedit/batch"
	"github.com/gogpu/pixedit/canvas"
	"github.com/gogpu/pixedit/history"
)

func main() {
	var (
		input   = flag.String("input", "", "input PNG (default: blank canvas)")
		output  = flag.String("output", "pixedit.png", "output file")
		op      = flag.String("op", "copy", "operation: copy, cut, clear, wand")
		rect    = flag.String("rect", "0,0,16,16", "selection x,y,w,h")
		to      = flag.String("to", "0,0", "paste target or wand seed x,y")
		width   = flag.Int("width", 256, "blank canvas width")
		height  = flag.Int("height", 256, "blank canvas height")
		verbose = flag.Bool("v", false, "log edit decisions")
	)
	flag.Parse()

	if *verbose {
		pixedit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cv, err := openCanvas(*input, *width, *height)
	if err != nil {
		log.Fatalf("Failed to load: %v", err)
	}

	cfg, err := pixedit.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to read config: %v", err)
	}

	stack := history.NewStack()
	eng, err := pixedit.NewEngine(cv, batch.NewFactory(nil), canvas.NewLayer("base", cv), stack,
		pixedit.WithConfig(cfg),
		pixedit.WithTracer(colorTracer(cv)),
	)
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}

	var x, y, w, h, tx, ty int
	if _, err := fmt.Sscanf(*rect, "%d,%d,%d,%d", &x, &y, &w, &h); err != nil {
		log.Fatalf("Invalid -rect %q: %v", *rect, err)
	}
	if _, err := fmt.Sscanf(*to, "%d,%d", &tx, &ty); err != nil {
		log.Fatalf("Invalid -to %q: %v", *to, err)
	}
	sel, err := pixedit.NewRectSelection(x, y, w, h)
	if err != nil {
		log.Fatalf("Invalid selection: %v", err)
	}

	switch *op {
	case "copy":
		eng.Copy(sel)
		eng.PasteClipboard(tx, ty)
	case "cut":
		eng.Cut(sel)
		eng.PasteClipboard(tx, ty)
	case "clear":
		eng.ClearRect(sel)
	case "wand":
		if shape, _, ok := eng.SelectShape(tx, ty); ok {
			eng.ClearRect(shape)
		}
	default:
		log.Fatalf("Unknown operation %q", *op)
	}

	if err := cv.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("%s saved to %s (%d edits)\n", *op, *output, stack.Len())
}

func openCanvas(path string, w, h int) (*canvas.Canvas, error) {
	if path == "" {
		return canvas.New(w, h), nil
	}
	return canvas.LoadPNG(path)
}

// colorTracer selects every drawn pixel of the seed color.
func colorTracer(cv *canvas.Canvas) pixedit.Tracer {
	return pixedit.TracerFunc(func(bounds image.Rectangle, _, _ int, seed color.NRGBA) pixedit.Shape {
		shape := make(pixedit.Shape, 0, bounds.Dx()*bounds.Dy())
		for py := bounds.Min.Y; py < bounds.Max.Y; py++ {
			for px := bounds.Min.X; px < bounds.Max.X; px++ {
				code := pixedit.CellExterior
				if c, ok := cv.PixelAt(px, py); ok && c == seed {
					code = pixedit.CellInterior
				}
				shape = append(shape, code)
			}
		}
		return shape
	})
}
