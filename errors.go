package pixedit

import "errors"

// Construction errors. These are returned to the caller.
var (
	// ErrInvalidSize is returned when a selection width or height is below 1.
	ErrInvalidSize = errors.New("pixedit: selection size must be at least 1x1")

	// ErrNilMask is returned when a masked selection is built without a mask.
	ErrNilMask = errors.New("pixedit: nil mask")

	// ErrMaskOrigin is returned when the mask bounds do not start at the
	// selection origin. Shape clears erase relative to the selection origin
	// while testing membership in mask-local space, so both must coincide.
	ErrMaskOrigin = errors.New("pixedit: mask origin differs from selection origin")

	// ErrMaskDataSize is returned when mask data is not 4 bytes per cell.
	ErrMaskDataSize = errors.New("pixedit: mask data size does not match bounds")

	ErrNilPixelSource  = errors.New("pixedit: nil pixel source")
	ErrNilBatchFactory = errors.New("pixedit: nil batch factory")
	ErrNilLayer        = errors.New("pixedit: nil layer")
	ErrNilHistory      = errors.New("pixedit: nil history")
)

// No-op reasons. Editing operations never return these; they are attached
// to the debug log record of an edit that produced no observable change.
var (
	// ErrEmptySelection means the selection footprint held no drawn pixels.
	ErrEmptySelection = errors.New("pixedit: selection holds no pixels")

	// ErrNothingToCut means a cut copied zero pixels, so no clear was issued.
	ErrNothingToCut = errors.New("pixedit: nothing to cut")

	// ErrNoShapeAtPoint means shape detection found no pixel or no region.
	ErrNoShapeAtPoint = errors.New("pixedit: no shape at point")

	// ErrDegenerateEdit means a batch ended up empty and was discarded.
	ErrDegenerateEdit = errors.New("pixedit: edit produced an empty batch")

	// ErrNoTracer means shape detection was requested without a tracer.
	ErrNoTracer = errors.New("pixedit: no boundary tracer configured")
)
