package sand

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mad-sand/internal/core"
)

func TestAdvanceWithoutRulesKeepsState(t *testing.T) {
	w := worldFrom(t,
		".s.",
		"...",
		"~..",
	)
	before := render(w)
	for i := 0; i < 3; i++ {
		w.Advance(false)
		assert.Equal(t, before, render(w))
	}
	assert.EqualValues(t, 3, w.Tick())
	assert.Equal(t, TickStats{Tick: 3, Population: w.Snapshot().Census()}, w.LastStats())
}

func TestSetCellTakesPartInNextTick(t *testing.T) {
	w := New(4)
	w.Step()
	w.SetCell(2, 0, Sand)
	w.Step()
	assert.Equal(t, Air, w.Cell(2, 0))
	assert.Equal(t, Sand, w.Cell(2, 1))
}

func TestBuffersSwapRoles(t *testing.T) {
	w := New(3)
	first := w.now()
	w.Advance(false)
	assert.NotSame(t, first, w.now())
	assert.Same(t, first, w.next())
	w.Advance(false)
	assert.Same(t, first, w.now())
}

func TestCellOutsideGrid(t *testing.T) {
	for _, n := range []int{1, 3, 8} {
		w := New(n)
		w.Reset(0)
		for _, p := range [][2]int{{-1, 0}, {0, -1}, {n, 0}, {0, n}, {n + 5, -7}} {
			assert.Equal(t, Rock, w.Cell(p[0], p[1]))
			w.SetCell(p[0], p[1], Sand)
		}
		assert.Equal(t, n*n, w.Snapshot().Count(Air), "n=%d", n)
	}
}

func TestGridGetDefault(t *testing.T) {
	g := NewGrid(2)
	assert.Equal(t, Air, g.Get(Coord{-1, 0}, Air))
	assert.Equal(t, Rock, g.Get(Coord{2, 1}, Rock))
	g.Set(Coord{1, 1}, Sand)
	clone := g.Clone()
	g.Set(Coord{1, 1}, Rock)
	assert.Equal(t, Sand, clone.Get(Coord{1, 1}, Air))
}

func TestResetIsDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 24
	cfg.Scene = SceneScatter
	w := NewWithConfig(cfg)

	w.Reset(5)
	a := slices.Clone(w.Cells())
	w.Step()
	w.Reset(5)
	assert.Equal(t, a, w.Cells())
	assert.Zero(t, w.Tick())

	w.Reset(6)
	assert.NotEqual(t, a, w.Cells())

	w.Reset(0)
	b := slices.Clone(w.Cells())
	w.Reset(cfg.Seed)
	assert.Equal(t, b, w.Cells())
}

func TestScenesBuildContent(t *testing.T) {
	for _, name := range Scenes() {
		cfg := DefaultConfig()
		cfg.Scene = name
		w := NewWithConfig(cfg)
		w.Reset(0)
		air := w.Snapshot().Count(Air)
		if name == SceneEmpty {
			assert.Equal(t, cfg.Size*cfg.Size, air)
			continue
		}
		assert.Less(t, air, cfg.Size*cfg.Size, "scene %s is empty", name)
		for i := 0; i < 20; i++ {
			w.Step()
		}
	}
}

func TestBasinSceneHoldsItsWater(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scene = SceneBasin
	w := NewWithConfig(cfg)
	w.Reset(0)
	water := waterCount(w.Snapshot())
	require.NotZero(t, water)
	for i := 0; i < 200; i++ {
		w.Step()
	}
	assert.Equal(t, water, waterCount(w.Snapshot()))
	assert.Zero(t, w.LastStats().Falls+w.LastStats().Spills, "basin should be at rest")
}

func TestBrushPaintsSquare(t *testing.T) {
	w := New(6)
	w.SetBrushType(Rock)
	w.SetBrushRadius(1)
	w.Paint(0, 0)
	assert.Equal(t, 4, w.Snapshot().Count(Rock))

	w.SetBrushRadius(0)
	w.Erase(0, 0)
	assert.Equal(t, 3, w.Snapshot().Count(Rock))

	w.SetBrushType(Invalid)
	assert.Equal(t, Rock, w.Brush().Type)
	w.SetBrushRadius(100)
	assert.Equal(t, maxBrushRadius, w.Brush().Radius)
	w.SetBrushRadius(-3)
	assert.Zero(t, w.Brush().Radius)
}

func TestLookupByInitial(t *testing.T) {
	cases := map[rune]CellType{
		'a': Air,
		's': Sand,
		'r': Rock,
		'w': ExposedWater,
		'i': InactiveWater,
		'c': Cloner,
		'd': Destroyer,
	}
	for r, want := range cases {
		got, ok := Lookup(r)
		assert.True(t, ok, "%q", r)
		assert.Equal(t, want, got, "%q", r)
	}
	for _, r := range []rune{'q', 'S', ' ', 0} {
		got, ok := Lookup(r)
		assert.False(t, ok, "%q", r)
		assert.Equal(t, Invalid, got)
	}
}

func TestCellTypeNames(t *testing.T) {
	assert.Equal(t, "inactive water", InactiveWater.String())
	assert.Equal(t, "invalid", Invalid.String())
	assert.False(t, Invalid.Valid())
	assert.Len(t, Types(), 7)
}

func TestCoordOrder(t *testing.T) {
	cs := []Coord{{3, 2}, {1, 5}, {0, 2}, {9, 0}, {0, 2}}
	slices.SortFunc(cs, Coord.Compare)
	assert.Equal(t, []Coord{{9, 0}, {0, 2}, {0, 2}, {3, 2}, {1, 5}}, cs)
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"n":              "20",
		"block":          "8",
		"scene":          "basin",
		"seed":           "-4",
		"destroyer_self": "true",
		"brush_radius":   "30",
	})
	assert.Equal(t, Config{
		Size:                  20,
		BlockPixels:           8,
		Scene:                 SceneBasin,
		Seed:                  -4,
		DestroyerIncludesSelf: true,
		BrushRadius:           maxBrushRadius,
	}, c)

	bad := FromMap(map[string]string{"n": "-1", "scene": "volcano", "destroyer_self": "maybe"})
	assert.Equal(t, DefaultConfig(), bad)
	assert.Equal(t, DefaultConfig(), FromMap(nil))
}

func TestPausedPaletteIsDarker(t *testing.T) {
	w := New(2)
	normal, paused := w.Palette(), w.PausedPalette()
	require.Len(t, paused, len(normal))
	assert.Equal(t, normal[Air], paused[Air])
	for _, c := range Types()[1:] {
		n, p := normal[c], paused[c]
		assert.Less(t, int(p.R)+int(p.G)+int(p.B), int(n.R)+int(n.G)+int(n.B), "%s", c)
	}
}

func TestParametersReflectState(t *testing.T) {
	w := worldFrom(t,
		"...",
		".s.",
		"...",
	)
	w.Step()
	snap := w.Parameters()

	p, ok := snap.Lookup("falls")
	require.True(t, ok)
	assert.Equal(t, "1", p.Value)
	p, ok = snap.Lookup("pop_inactive_water")
	require.True(t, ok)
	assert.Equal(t, "0", p.Value)

	require.True(t, w.SetBoolParameter("destroyer_self", true))
	p, _ = w.Parameters().Lookup("destroyer_self")
	assert.Equal(t, "true", p.Value)
	assert.False(t, w.SetBoolParameter("gravity", false))
}

func TestRegistered(t *testing.T) {
	factory, ok := core.Sims()["sand"]
	require.True(t, ok)
	sim := factory(map[string]string{"n": "12", "scene": "funnel"})
	assert.Equal(t, core.Size{W: 12, H: 12}, sim.Size())
	assert.Len(t, sim.Cells(), 144)
	_, ok = sim.(core.Advancer)
	assert.True(t, ok)
	_, ok = sim.(core.CellEditor)
	assert.True(t, ok)
}

func TestWaterMasks(t *testing.T) {
	w := worldFrom(t,
		"....",
		"#~.#",
		"#=~#",
		"####",
	)
	exposed := w.ExposedMask()
	assert.Equal(t, []bool{
		false, false, false, false,
		false, true, false, false,
		false, false, true, false,
		false, false, false, false,
	}, exposed)

	body := w.BodyMask(1, 2)
	require.NotNil(t, body)
	assert.True(t, body[1*4+1])
	assert.True(t, body[2*4+1])
	assert.True(t, body[2*4+2])
	assert.False(t, body[1*4+2])
	assert.Nil(t, w.BodyMask(0, 0))
	assert.Nil(t, w.BodyMask(-1, 9))
}
