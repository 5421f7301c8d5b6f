package sand

import (
	"image/color"

	"github.com/hsluv/hsluv-go"
)

var (
	sandPalette   = buildPalette(1)
	pausedPalette = buildPalette(0.55)
)

// Palette exposes the color palette used for rendering, indexed by CellType.
func (w *World) Palette() []color.RGBA {
	return sandPalette
}

// PausedPalette is Palette with every color darkened in perceptual
// lightness, used while the simulation is paused.
func (w *World) PausedPalette() []color.RGBA {
	return pausedPalette
}

func buildPalette(lightness float64) []color.RGBA {
	palette := make([]color.RGBA, cellTypeCount)
	for i := range palette {
		palette[i] = scaleLightness(CellType(i).Color(), lightness)
	}
	return palette
}

// scaleLightness multiplies the HSLuv lightness of c by f, keeping hue and
// saturation.
func scaleLightness(c color.RGBA, f float64) color.RGBA {
	if f == 1 {
		return c
	}
	h, s, l := hsluv.HsluvFromRGB(float64(c.R)/0xff, float64(c.G)/0xff, float64(c.B)/0xff)
	r, g, b := hsluv.HsluvToRGB(h, s, clamp01(l*f/100)*100)
	return color.RGBA{
		R: uint8(clamp01(r)*0xff + 0.5),
		G: uint8(clamp01(g)*0xff + 0.5),
		B: uint8(clamp01(b)*0xff + 0.5),
		A: c.A,
	}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
