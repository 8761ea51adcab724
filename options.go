package pixedit

import (
	"image"
	"image/color"
)

// Option configures an Engine during creation.
//
// Example:
//
//	eng, err := pixedit.NewEngine(canvas, factory, layer, stack,
//	    pixedit.WithTracer(wand),
//	    pixedit.WithBounds(image.Rect(0, 0, 512, 512)),
//	)
type Option func(*engineOptions)

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	tracer    Tracer
	bounds    image.Rectangle
	clipboard *Clipboard
	tint      color.NRGBA
	tintErr   error
}

// defaultOptions returns the default engine options.
func defaultOptions() engineOptions {
	return engineOptions{
		tint: defaultTint(),
	}
}

// WithTracer sets the boundary tracer used by ShapeByOffset.
// Without a tracer, shape detection always reports no selection.
func WithTracer(t Tracer) Option {
	return func(o *engineOptions) {
		o.tracer = t
	}
}

// WithBounds sets the working bounds: the area traced by shape detection
// and covered by preview batches.
func WithBounds(r image.Rectangle) Option {
	return func(o *engineOptions) {
		o.bounds = r.Canon()
	}
}

// WithClipboard shares an existing clipboard with the engine.
func WithClipboard(c *Clipboard) Option {
	return func(o *engineOptions) {
		o.clipboard = c
	}
}

// WithTint sets the preview tint directly.
func WithTint(c color.NRGBA) Option {
	return func(o *engineOptions) {
		o.tint = c
	}
}

// WithConfig applies environment-derived settings.
// An unparsable selection color makes NewEngine fail.
func WithConfig(cfg Config) Option {
	return func(o *engineOptions) {
		o.tint, o.tintErr = cfg.Tint()
	}
}
