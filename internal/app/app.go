//go:build ebiten

package app

import (
	"mad-sand/internal/render"
	"mad-sand/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a sand session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	block    int
	hudWidth int
}

var runeKeys = map[ebiten.Key]rune{
	ebiten.KeySpace:        ' ',
	ebiten.KeyBracketLeft:  '[',
	ebiten.KeyBracketRight: ']',
	ebiten.KeyDigit1:       '1',
}

var specialKeys = map[ebiten.Key]Key{
	ebiten.KeyEnter:     KeyEnter,
	ebiten.KeyBackspace: KeyBackspace,
	ebiten.KeyEscape:    KeyEscape,
}

// New constructs a Game for the provided session. block is the edge of one
// cell in pixels; hudWidth of zero hides the parameter panel.
func New(s *Session, block, hudWidth int) *Game {
	size := s.World().Size()
	g := &Game{
		session:  s,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(s.World(), block),
		block:    block,
		hudWidth: max(hudWidth, 0),
	}
	if g.hudWidth > 0 {
		g.hud = ui.NewHUD(s.World(), g.hudWidth)
	}
	return g
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	g.trackPointer()
	if g.handleKeys() {
		return ebiten.Termination
	}
	g.handleMouse()

	g.overlay.SetVisible(g.session.Overlay())
	g.overlay.Update()
	g.hud.Update(g.viewWidth(), g.session.Paused())

	g.session.Tick()
	return nil
}

func (g *Game) handleKeys() (quit bool) {
	for _, r := range ebiten.AppendInputChars(nil) {
		if r == ' ' || r == '[' || r == ']' || r == '1' {
			continue
		}
		if g.session.HandleRune(r) {
			return true
		}
	}
	for key, r := range runeKeys {
		if inpututil.IsKeyJustPressed(key) && g.session.HandleRune(r) {
			return true
		}
	}
	for key, k := range specialKeys {
		if inpututil.IsKeyJustPressed(key) && g.session.HandleKey(k) {
			return true
		}
	}
	return false
}

func (g *Game) trackPointer() {
	mx, my := ebiten.CursorPosition()
	size := g.session.World().Size()
	x, y := mx/g.block, my/g.block
	g.session.SetPointer(x, y, mx >= 0 && my >= 0 && x < size.W && y < size.H)
}

func (g *Game) handleMouse() {
	erase := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) || ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if !erase && !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < 0 || my < 0 || mx >= g.viewWidth() {
		return
	}
	g.session.Paint(mx/g.block, my/g.block, erase)
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.session.World().Cells(), g.session.Palette(), g.block)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.viewWidth(), g.block)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.viewWidth() + g.hudWidth, g.session.World().Size().H * g.block
}

func (g *Game) viewWidth() int {
	return g.session.World().Size().W * g.block
}
