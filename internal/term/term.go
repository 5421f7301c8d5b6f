// Package term runs the sand world inside a terminal. Each cell is drawn
// as two block characters so the grid keeps a square aspect.
package term

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/juju/errors"
	"github.com/juju/loggo"

	"mad-sand/internal/app"
	"mad-sand/internal/core"
)

var logger = loggo.GetLogger("madsand.term")

const (
	cellGlyph    = '█'
	exposedGlyph = '▒'
	frameTime    = 16 * time.Millisecond
)

// Frontend draws a session on a tcell screen and feeds it input.
type Frontend struct {
	screen  tcell.Screen
	session *app.Session
	step    *core.FixedStep
}

// New wires s to screen. The screen must already be initialised.
func New(screen tcell.Screen, s *app.Session, tps int) *Frontend {
	screen.EnableMouse()
	screen.HideCursor()
	return &Frontend{screen: screen, session: s, step: core.NewFixedStep(tps)}
}

// Run polls events on a separate goroutine and ticks the world on the
// calling goroutine until a quit key or ctx is done.
func (f *Frontend) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 64)
	go func() {
		defer close(events)
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(min(frameTime, f.step.Interval()))
	defer ticker.Stop()

	f.Draw()
	for {
		select {
		case <-ctx.Done():
			return errors.Trace(ctx.Err())
		case ev, ok := <-events:
			if !ok {
				return errors.New("terminal event stream closed")
			}
			if f.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			if f.step.ShouldStep() {
				f.session.Tick()
			}
			f.Draw()
		}
	}
}

// HandleEvent applies one terminal event and reports whether to quit.
func (f *Frontend) HandleEvent(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return f.handleKey(ev)
	case *tcell.EventMouse:
		f.handleMouse(ev)
	case *tcell.EventResize:
		f.screen.Sync()
	}
	return false
}

func (f *Frontend) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyRune:
		return f.session.HandleRune(ev.Rune())
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyEscape:
		return f.session.HandleKey(app.KeyEscape)
	case tcell.KeyEnter:
		return f.session.HandleKey(app.KeyEnter)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return f.session.HandleKey(app.KeyBackspace)
	}
	return false
}

func (f *Frontend) handleMouse(ev *tcell.EventMouse) {
	mx, my := ev.Position()
	n := f.session.World().Size().W
	x, y := mx/2, my
	inside := x >= 0 && y >= 0 && x < n && y < n
	f.session.SetPointer(x, y, inside)

	buttons := ev.Buttons()
	paint := buttons&tcell.ButtonPrimary != 0
	erase := buttons&(tcell.ButtonSecondary|tcell.ButtonMiddle) != 0
	if !inside || (!paint && !erase) {
		return
	}
	f.session.Paint(x, y, erase)
}

// Draw renders the world and a status line below it.
func (f *Frontend) Draw() {
	w := f.session.World()
	n := w.Size().W
	styles := paletteStyles(f.session.Palette())

	var exposed []bool
	if f.session.Overlay() {
		exposed = w.ExposedMask()
	}
	cells := w.Cells()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			i := y*n + x
			glyph := cellGlyph
			if exposed != nil && exposed[i] {
				glyph = exposedGlyph
			}
			style := styles[min(int(cells[i]), len(styles)-1)]
			f.screen.SetContent(2*x, y, glyph, nil, style)
			f.screen.SetContent(2*x+1, y, glyph, nil, style)
		}
	}
	f.drawStatus(n)
	f.screen.Show()
}

func (f *Frontend) drawStatus(row int) {
	w := f.session.World()
	width, height := f.screen.Size()
	if row >= height {
		return
	}
	state := "running"
	if f.session.Paused() {
		state = "paused"
	}
	st := w.LastStats()
	b := w.Brush()
	line := fmt.Sprintf("%s r=%d | %s | tick %d | water %d | bodies %d",
		b.Type, b.Radius, state, w.Tick(), st.Water(), st.Bodies)
	col := 0
	for _, r := range line {
		if col >= width {
			break
		}
		f.screen.SetContent(col, row, r, nil, tcell.StyleDefault)
		col++
	}
	for ; col < width; col++ {
		f.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault)
	}
}

func paletteStyles(palette []color.RGBA) []tcell.Style {
	if len(palette) == 0 {
		return []tcell.Style{tcell.StyleDefault}
	}
	out := make([]tcell.Style, len(palette))
	for i, c := range palette {
		out[i] = tcell.StyleDefault.
			Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))).
			Background(tcell.ColorBlack)
	}
	return out
}

// Open initialises the real terminal. Callers must Fini the screen.
func Open() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Annotate(err, "cannot open terminal")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Annotate(err, "cannot initialise terminal")
	}
	logger.Debugf("terminal %s ready", screen.CharacterSet())
	return screen, nil
}

// Fits reports whether a world of side n fits on screen with its status
// line.
func Fits(screen tcell.Screen, n int) bool {
	w, h := screen.Size()
	return 2*n <= w && n+1 <= h
}
