package sand

import (
	"github.com/juju/loggo"

	"mad-sand/internal/core"
)

var logger = loggo.GetLogger("madsand.sand")

// World is the double-buffered falling-sand simulation. Two grids live in a
// fixed arena; parity selects which one is "now" (readable) and which is
// "next" (being written). Callers never hold a grid across a tick.
type World struct {
	cfg Config

	grids  [2]*Grid
	parity bool

	rules   stepper
	leveler Leveler

	brush Brush
	tick  int64
	stats TickStats
}

// New returns a sand world with an n by n grid using defaults.
func New(n int) *World {
	cfg := DefaultConfig()
	cfg.Size = n
	return NewWithConfig(cfg)
}

// NewWithConfig returns a sand world configured from the provided options.
// The grid starts filled with Air; call Reset to apply the configured scene.
func NewWithConfig(cfg Config) *World {
	if cfg.Size <= 0 {
		cfg.Size = DefaultConfig().Size
	}
	w := &World{
		cfg:   cfg,
		grids: [2]*Grid{NewGrid(cfg.Size), NewGrid(cfg.Size)},
		rules: stepper{destroyerSelf: cfg.DestroyerIncludesSelf},
		brush: Brush{Type: Sand},
	}
	w.SetBrushRadius(cfg.BrushRadius)
	return w
}

func (w *World) now() *Grid {
	if w.parity {
		return w.grids[1]
	}
	return w.grids[0]
}

func (w *World) next() *Grid {
	if w.parity {
		return w.grids[0]
	}
	return w.grids[1]
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.cfg.Size, H: w.cfg.Size} }

// Config returns the configuration the world was built with.
func (w *World) Config() Config { return w.cfg }

// Cells exposes the current buffer, one CellType per byte in row-major
// order. The slice is only valid until the next tick.
func (w *World) Cells() []uint8 { return w.now().Bytes() }

// Cell returns the type at (x, y) in the current buffer. Outside the grid
// it reports Rock.
func (w *World) Cell(x, y int) CellType { return w.now().At(x, y, Rock) }

// SetCell writes c at (x, y) in the current buffer. It takes part in the
// next tick through the carry-over copy. Out-of-range writes are ignored.
func (w *World) SetCell(x, y int, c CellType) { w.now().Put(x, y, c) }

// CellAt implements core.CellEditor.
func (w *World) CellAt(x, y int) uint8 { return uint8(w.Cell(x, y)) }

// SetCellAt implements core.CellEditor.
func (w *World) SetCellAt(x, y int, v uint8) { w.SetCell(x, y, CellType(v)) }

// Snapshot returns an independent copy of the current buffer.
func (w *World) Snapshot() *Grid { return w.now().Clone() }

// Tick returns the number of ticks advanced since the last Reset.
func (w *World) Tick() int64 { return w.tick }

// LastStats returns the statistics recorded by the most recent tick.
func (w *World) LastStats() TickStats { return w.stats }

// WaterBody returns the connected water body containing (x, y) in the
// current buffer, or nil when the cell is not water.
func (w *World) WaterBody(x, y int) []Coord {
	var l Leveler
	return l.Body(w.now(), Coord{x, y})
}

// ExposedMask marks every ExposedWater cell of the current buffer in
// row-major order.
func (w *World) ExposedMask() []bool {
	cells := w.now().Bytes()
	mask := make([]bool, len(cells))
	for i, c := range cells {
		mask[i] = CellType(c) == ExposedWater
	}
	return mask
}

// BodyMask marks the water body containing (x, y). It returns nil when the
// cell holds no water.
func (w *World) BodyMask(x, y int) []bool {
	body := w.WaterBody(x, y)
	if body == nil {
		return nil
	}
	n := w.cfg.Size
	mask := make([]bool, n*n)
	for _, c := range body {
		mask[c.Y*n+c.X] = true
	}
	return mask
}

// SetDestroyerIncludesSelf switches the destroyer between the 8-neighbor
// and the 3x3 clear.
func (w *World) SetDestroyerIncludesSelf(v bool) {
	w.cfg.DestroyerIncludesSelf = v
	w.rules.destroyerSelf = v
}

// Reset clears both buffers and applies the configured scene. A zero seed
// falls back to the configured seed.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.parity = false
	w.tick = 0
	w.stats = TickStats{}

	now := w.now()
	now.Fill(Air)
	if build, ok := scenes[w.cfg.Scene]; ok {
		build(now, core.NewRNG(effective))
	} else {
		logger.Warningf("unknown scene %q, starting empty", w.cfg.Scene)
	}
	w.next().CopyFrom(now)
	w.stats.Population = now.Census()
}

// Step advances the simulation by one tick with rules applied.
func (w *World) Step() { w.Advance(true) }

// Advance runs one tick. The current buffer is copied into the next one;
// with applyRules the automaton phases and the leveler then rewrite next.
// The buffers swap roles at the end either way.
//
// The leveler runs on next, after both automaton phases, so its moves are
// part of the state that becomes current.
func (w *World) Advance(applyRules bool) {
	now, next := w.now(), w.next()
	next.CopyFrom(now)

	st := TickStats{Tick: w.tick + 1}
	if applyRules {
		w.rules.physics(now, next, &st)
		w.rules.replicate(now, next, &st)
		w.leveler.Run(next, &st)
	}

	w.parity = !w.parity
	w.tick++
	st.Population = next.Census()
	w.stats = st

	if st.Normalized > 0 {
		logger.Warningf("tick %d: normalized %d invalid cells to rock", st.Tick, st.Normalized)
	}
	if st.Bodies > 0 {
		logger.Debugf("tick %d: %d water bodies, %d leveled, %d abandoned", st.Tick, st.Bodies, st.Leveled, st.Abandoned)
	}
}

func init() {
	core.Register("sand", func(cfg map[string]string) core.Sim {
		w := NewWithConfig(FromMap(cfg))
		w.Reset(0)
		return w
	})
}
