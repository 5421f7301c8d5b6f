//go:build ebiten

package ui

import (
	"image/color"

	"mad-sand/internal/core"
	"mad-sand/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
)

type waterMaskProvider interface {
	ExposedMask() []bool
	BodyMask(x, y int) []bool
}

var (
	exposedTint = color.RGBA{R: 200, G: 240, B: 255, A: 110}
	bodyTint    = color.RGBA{R: 255, G: 200, B: 60, A: 90}
)

// Overlay highlights exposed water and the water body under the cursor.
type Overlay struct {
	sim   core.Sim
	scale int
	show  bool

	exposed *render.GridPainter
	body    *render.GridPainter

	cursorX, cursorY int
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	size := sim.Size()
	return &Overlay{
		sim:     sim,
		scale:   scale,
		exposed: render.NewGridPainter(size.W, size.H),
		body:    render.NewGridPainter(size.W, size.H),
	}
}

// SetVisible switches the overlay on or off.
func (o *Overlay) SetVisible(v bool) { o.show = v }

// Update tracks the cell under the cursor.
func (o *Overlay) Update() {
	scale := max(o.scale, 1)
	mx, my := ebiten.CursorPosition()
	o.cursorX, o.cursorY = mx/scale, my/scale
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	provider, ok := o.sim.(waterMaskProvider)
	if !ok {
		return
	}
	o.exposed.BlitMask(screen, provider.ExposedMask(), exposedTint, o.scale)
	if body := provider.BodyMask(o.cursorX, o.cursorY); body != nil {
		o.body.BlitMask(screen, body, bodyTint, o.scale)
	}
}
