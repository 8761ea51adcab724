// Package pixedit provides selection-scoped pixel editing for raster canvases.
//
// # Overview
//
// pixedit turns a region of a canvas into copy, paste, cut and clear edits,
// and turns a traced ("magic wand") region into a renderable selection
// preview. Edits are collected into batches; every non-empty batch reaches
// the current layer and one history entry. Empty edits leave no trace.
//
// # Quick Start
//
//	cv := canvas.New(256, 256)
//	layer := canvas.NewLayer("base", cv)
//	stack := history.NewStack()
//
//	eng, err := pixedit.NewEngine(cv, batch.NewFactory(nil), layer, stack)
//	if err != nil {
//	    return err
//	}
//
//	sel := pixedit.MustRectSelection(10, 10, 32, 32)
//	eng.Copy(sel)
//	eng.PasteClipboard(100, 100)
//
// # Logging
//
// The package is silent by default. Install a logger with SetLogger to see
// why an edit did nothing:
//
//	pixedit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
//	    &slog.HandlerOptions{Level: slog.LevelDebug})))
//
// # Coordinate Spaces
//
// Three spaces are involved:
//   - Absolute: canvas coordinates, used by PixelSource and Batch writes
//   - Selection-relative: clipboard offsets, relative to the scanned origin
//   - Mask-local: (xx, yy) cells of a Mask, with the absolute position
//     Mask.Bounds().Min + (xx, yy)
//
// Rectangular selections scan their own rectangle. Masked selections scan
// their mask bounds, which must start at the selection origin.
//
// # Collaborators
//
// The engine depends only on the interfaces PixelSource, BatchFactory,
// Layer, History and (optionally) Tracer. The canvas, batch and history
// sub-packages provide in-memory implementations.
package pixedit
