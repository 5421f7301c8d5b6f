package app

import (
	"image/color"
	"unicode"

	"github.com/juju/loggo"

	"mad-sand/internal/sims/sand"
)

var logger = loggo.GetLogger("madsand.app")

// Key names the non-character keys the frontends forward.
type Key int

const (
	KeyNone Key = iota
	KeyEnter
	KeyBackspace
	KeyEscape
)

// Session holds the interactive state shared by the GUI and terminal
// frontends. All methods must be called from the loop goroutine.
type Session struct {
	world *sand.World
	seed  int64

	paused   bool
	stepOnce bool
	overlay  bool

	pointerX, pointerY int
	hasPointer         bool

	// OnPaint, when set, is called after every brush stroke.
	OnPaint func(c sand.CellType)
}

// NewSession wraps w. seed is passed to Reset on every clear; zero keeps
// the world's configured seed.
func NewSession(w *sand.World, seed int64) *Session {
	return &Session{world: w, seed: seed}
}

// World returns the simulated world.
func (s *Session) World() *sand.World { return s.world }

// Paused reports whether rules are suspended.
func (s *Session) Paused() bool { return s.paused }

// Overlay reports whether the water overlay is enabled.
func (s *Session) Overlay() bool { return s.overlay }

// HandleRune applies a typed character and reports whether the frontend
// should quit. Cell type initials select the brush and, when the pointer is
// over the world, paint with it there.
func (s *Session) HandleRune(r rune) (quit bool) {
	r = unicode.ToLower(r)
	switch r {
	case 'q':
		return true
	case ' ':
		s.paused = !s.paused
	case 'n':
		s.stepOnce = true
	case '[':
		s.world.SetBrushRadius(s.world.Brush().Radius - 1)
	case ']':
		s.world.SetBrushRadius(s.world.Brush().Radius + 1)
	case '1':
		s.overlay = !s.overlay
	default:
		if c, ok := sand.Lookup(r); ok {
			s.world.SetBrushType(c)
			logger.Debugf("brush set to %s", c)
			if s.hasPointer {
				s.Paint(s.pointerX, s.pointerY, false)
			}
		}
	}
	return false
}

// HandleKey applies a special key and reports whether the frontend should
// quit.
func (s *Session) HandleKey(k Key) (quit bool) {
	switch k {
	case KeyEscape:
		return true
	case KeyEnter:
		s.paused = false
	case KeyBackspace:
		s.Reset()
	}
	return false
}

// SetPointer records the cell under the pointer. ok is false when the
// pointer is outside the world.
func (s *Session) SetPointer(x, y int, ok bool) {
	s.pointerX, s.pointerY, s.hasPointer = x, y, ok
}

// Reset clears the world back to its scene.
func (s *Session) Reset() {
	s.world.Reset(s.seed)
	s.stepOnce = false
	logger.Infof("world reset (seed %d)", s.seed)
}

// Paint applies the brush at cell (x, y). With erase it paints Air.
func (s *Session) Paint(x, y int, erase bool) {
	c := s.world.Brush().Type
	if erase {
		c = sand.Air
		s.world.Erase(x, y)
	} else {
		s.world.Paint(x, y)
	}
	if s.OnPaint != nil {
		s.OnPaint(c)
	}
}

// Tick advances the world once. While paused the tick carries state over
// without applying rules unless a single step was requested.
func (s *Session) Tick() {
	run := !s.paused || s.stepOnce
	s.stepOnce = false
	s.world.Advance(run)
}

// Palette returns the colors to draw the world with, dimmed while paused.
func (s *Session) Palette() []color.RGBA {
	if s.paused {
		return s.world.PausedPalette()
	}
	return s.world.Palette()
}
