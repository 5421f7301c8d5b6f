package sand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSandFallsOneRowPerTick(t *testing.T) {
	w := worldFrom(t,
		"...",
		".s.",
		"...",
	)
	w.Step()
	assert.Equal(t, rows(
		"...",
		"...",
		".s.",
	), render(w))
	assert.Equal(t, 1, w.LastStats().Falls)

	// The floor of the grid acts as rock.
	w.Step()
	assert.Equal(t, Sand, w.Cell(1, 2))
	assert.Equal(t, 0, w.LastStats().Falls)
}

func TestSandRestsOnSolids(t *testing.T) {
	for _, below := range []string{"#", "s", "c"} {
		w := worldFrom(t,
			"...",
			".s.",
			"."+below+".",
		)
		before := render(w)
		w.Step()
		assert.Equal(t, before, render(w), "sand above %q moved", below)
	}
}

func TestSandColumnOpensGapsWhileFalling(t *testing.T) {
	w := worldFrom(t,
		".s...",
		".s...",
		".....",
		".....",
		".....",
	)
	// Neighbors are read from the previous tick, so the upper grain only
	// starts falling once the lower one has left.
	w.Step()
	assert.Equal(t, rows(
		".s...",
		".....",
		".s...",
		".....",
		".....",
	), render(w))
	w.Step()
	assert.Equal(t, rows(
		".....",
		".s...",
		".....",
		".s...",
		".....",
	), render(w))
}

func TestInactiveWaterBecomesExposedNextToAir(t *testing.T) {
	w := worldFrom(t,
		"#.#",
		"#=#",
		"###",
	)
	w.Step()
	assert.Equal(t, ExposedWater, w.Cell(1, 1))
	assert.Equal(t, 1, w.LastStats().Exposed)
}

func TestInactiveWaterIgnoresDiagonalAir(t *testing.T) {
	w := worldFrom(t,
		".#.",
		"#=#",
		".#.",
	)
	w.Step()
	assert.Equal(t, InactiveWater, w.Cell(1, 1))
}

func TestEnclosedExposedWaterSettles(t *testing.T) {
	w := worldFrom(t,
		"###",
		"#~#",
		"###",
	)
	w.Step()
	assert.Equal(t, InactiveWater, w.Cell(1, 1))
	assert.Equal(t, 1, w.LastStats().Settled)
}

func TestExposedWaterFalls(t *testing.T) {
	w := worldFrom(t,
		".~.",
		"...",
		"###",
	)
	w.Step()
	assert.Equal(t, rows(
		"...",
		".~.",
		"###",
	), render(w))
}

func TestExposedWaterSpillsLeftFirst(t *testing.T) {
	w := worldFrom(t,
		".~.",
		".#.",
		"###",
	)
	w.Step()
	assert.Equal(t, rows(
		"...",
		"~#.",
		"###",
	), render(w))
	assert.Equal(t, 1, w.LastStats().Spills)
}

func TestExposedWaterSpillsRightWhenLeftBlocked(t *testing.T) {
	w := worldFrom(t,
		"#~.",
		".#.",
		"###",
	)
	w.Step()
	assert.Equal(t, rows(
		"#..",
		".#~",
		"###",
	), render(w))
}

func TestExposedWaterWithAirNeighborStaysExposed(t *testing.T) {
	w := worldFrom(t,
		"...",
		"#~#",
		"###",
	)
	w.Step()
	assert.Equal(t, ExposedWater, w.Cell(1, 1))
}

func TestCompetingSpillsKeepBothCells(t *testing.T) {
	w := worldFrom(t,
		"~.~",
		"#.#",
		"###",
	)
	w.Step()
	// The left cell claims the shared destination first; the right one
	// stays put because its other side is the grid edge.
	assert.Equal(t, rows(
		"..~",
		"#~#",
		"###",
	), render(w))
	assert.Equal(t, 2, waterCount(w.Snapshot()))
}

func TestInvalidCellNormalizesToRock(t *testing.T) {
	w := New(3)
	w.SetCell(1, 1, Invalid)
	w.SetCell(0, 0, CellType(42))
	w.Step()
	assert.Equal(t, Rock, w.Cell(1, 1))
	assert.Equal(t, Rock, w.Cell(0, 0))
	assert.Equal(t, 2, w.LastStats().Normalized)
}

func TestClonerStampsMaterialFromAbove(t *testing.T) {
	w := worldFrom(t,
		".s.",
		".c.",
		"...",
	)
	w.Step()
	assert.Equal(t, rows(
		".s.",
		".c.",
		".s.",
	), render(w))
	assert.Equal(t, 1, w.LastStats().Clones)
}

func TestClonerWithNothingAboveStampsAir(t *testing.T) {
	w := worldFrom(t,
		"...",
		".c.",
		"...",
	)
	w.Step()
	assert.Equal(t, Air, w.Cell(1, 2))
	assert.Equal(t, 0, w.LastStats().Clones)
}

func TestClonerBlockedBelow(t *testing.T) {
	w := worldFrom(t,
		".s.",
		".c.",
		".#.",
	)
	w.Step()
	assert.Equal(t, Rock, w.Cell(1, 2))
}

func TestClonerOnTopEdgeClonesItself(t *testing.T) {
	w := worldFrom(t,
		".c.",
		"...",
		"...",
	)
	w.Step()
	assert.Equal(t, Cloner, w.Cell(1, 1))
}

func TestDestroyerClearsNeighbors(t *testing.T) {
	w := worldFrom(t,
		"sss",
		"sd#",
		"~=#",
	)
	w.Step()
	assert.Equal(t, rows(
		"...",
		".d.",
		"...",
	), render(w))
	assert.Equal(t, 8, w.LastStats().Destroyed)
}

func TestDestroyerIncludingSelf(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 3
	cfg.DestroyerIncludesSelf = true
	w := NewWithConfig(cfg)
	w.SetCell(1, 1, Destroyer)
	w.SetCell(0, 0, Rock)
	w.Step()
	require.Equal(t, 0, w.Snapshot().Count(Destroyer))
	assert.Equal(t, 2, w.LastStats().Destroyed)
}

func TestDestroyerOnEdgeIgnoresOutside(t *testing.T) {
	w := worldFrom(t,
		"d#.",
		"##.",
		"...",
	)
	w.Step()
	assert.Equal(t, rows(
		"d..",
		"...",
		"...",
	), render(w))
}

func TestScatterConservesMaterial(t *testing.T) {
	for _, seed := range []int64{1, 7, 99} {
		cfg := DefaultConfig()
		cfg.Size = 32
		cfg.Scene = SceneScatter
		w := NewWithConfig(cfg)
		w.Reset(seed)

		start := w.Snapshot()
		sand, rock, water := start.Count(Sand), start.Count(Rock), waterCount(start)
		require.NotZero(t, water)

		for i := 0; i < 120; i++ {
			w.Step()
			g := w.Snapshot()
			require.Equal(t, sand, g.Count(Sand), "seed %d tick %d", seed, i)
			require.Equal(t, rock, g.Count(Rock), "seed %d tick %d", seed, i)
			require.Equal(t, water, waterCount(g), "seed %d tick %d", seed, i)
		}
	}
}
