package pixedit

import (
	"fmt"
	"image/color"

	"github.com/kelseyhightower/envconfig"

	icolor "github.com/gogpu/pixedit/internal/color"
)

// Default preview tint settings.
const (
	DefaultSelectionColor = "#2f80ed"
	DefaultSelectionAlpha = 0.45
)

// Config holds environment-driven engine settings.
//
// Variables are read with the PIXEDIT prefix:
//
//	PIXEDIT_SELECTION_COLOR  hex or SVG color name of the preview tint
//	PIXEDIT_SELECTION_ALPHA  preview tint alpha in [0, 1]
type Config struct {
	SelectionColor string  `envconfig:"SELECTION_COLOR" default:"#2f80ed"`
	SelectionAlpha float64 `envconfig:"SELECTION_ALPHA" default:"0.45"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("pixedit", &cfg); err != nil {
		return Config{}, fmt.Errorf("pixedit: load config: %w", err)
	}
	return cfg, nil
}

// Tint resolves the preview tint: SelectionColor with SelectionAlpha.
func (c Config) Tint() (color.NRGBA, error) {
	base, err := icolor.Parse(c.SelectionColor)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("pixedit: selection color: %w", err)
	}
	return icolor.WithAlpha(base, c.SelectionAlpha), nil
}

// defaultTint is the tint used when no option overrides it.
func defaultTint() color.NRGBA {
	c, _ := Config{SelectionColor: DefaultSelectionColor, SelectionAlpha: DefaultSelectionAlpha}.Tint()
	return c
}
