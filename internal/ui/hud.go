//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"mad-sand/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter panel to the right of the simulation view.
// Boolean parameters are drawn as toggles when the sim accepts them.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	boolSetter   core.BoolParameterSetter
	toggles      []hudToggle
	panelOffsetX int
	title        string
	status       string

	pixel *ebiten.Image
}

type hudToggle struct {
	key   string
	value bool
	rect  image.Rectangle
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.title = buildTitle(sim)
	if setter, ok := sim.(core.BoolParameterSetter); ok {
		h.boolSetter = setter
	}
	return h
}

// Update refreshes the cached parameter snapshot from the simulation and
// handles clicks on toggles.
func (h *HUD) Update(panelOffsetX int, paused bool) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.status = "running"
	if paused {
		h.status = "paused"
	}
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
	h.handleInput()
}

// Draw paints the HUD panel anchored to the right edge of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawParameters()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Parameters"
	}
	name := sim.Name()
	return fmt.Sprintf("%s%s", strings.ToUpper(name[:1]), name[1:])
}

func (h *HUD) handleInput() {
	if h.boolSetter == nil || len(h.toggles) == 0 {
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for _, tg := range h.toggles {
		if image.Pt(px, my).In(tg.rect) {
			h.boolSetter.SetBoolParameter(tg.key, !tg.value)
			return
		}
	}
}

func (h *HUD) drawParameters() {
	face := basicfont.Face7x13
	titleColor := color.RGBA{R: 200, G: 200, B: 210, A: 255}
	groupColor := color.RGBA{R: 150, G: 170, B: 200, A: 255}
	labelColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}

	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, titleColor)
	text.Draw(h.panel, h.status, face, h.rightAligned(h.status), y, groupColor)
	y += groupSpacing

	h.toggles = h.toggles[:0]
	for _, group := range h.snapshot.Groups {
		if y > h.lastHeight {
			return
		}
		text.Draw(h.panel, group.Name, face, panelPadding, y, groupColor)
		y += lineHeight
		for _, param := range group.Params {
			text.Draw(h.panel, param.Label, face, panelPadding+indent, y, labelColor)
			if param.Type == core.ParamTypeBool && h.boolSetter != nil {
				h.drawToggle(param, y)
			} else {
				text.Draw(h.panel, param.Value, face, h.rightAligned(param.Value), y, labelColor)
			}
			y += lineHeight
		}
		y += groupSpacing - lineHeight
	}
}

func (h *HUD) drawToggle(param core.Parameter, baseline int) {
	on, _ := strconv.ParseBool(param.Value)
	rect := image.Rect(h.width-panelPadding-toggleWidth, baseline-toggleHeight+3, h.width-panelPadding, baseline+3)
	h.toggles = append(h.toggles, hudToggle{key: param.Key, value: on, rect: rect})

	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	label := "off"
	if on {
		bg = color.RGBA{R: 60, G: 120, B: 80, A: 255}
		label = "on"
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	text.Draw(h.panel, label, face, x, baseline, color.RGBA{R: 230, G: 230, B: 240, A: 255})
}

func (h *HUD) rightAligned(s string) int {
	bounds := text.BoundString(basicfont.Face7x13, s)
	return h.width - panelPadding - bounds.Dx()
}

const (
	panelPadding   = 12
	headerBaseline = 14
	lineHeight     = 16
	groupSpacing   = 24
	indent         = 8
	toggleWidth    = 32
	toggleHeight   = 14
)
