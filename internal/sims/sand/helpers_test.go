package sand

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var glyphs = map[rune]CellType{
	'.': Air,
	's': Sand,
	'#': Rock,
	'~': ExposedWater,
	'=': InactiveWater,
	'c': Cloner,
	'd': Destroyer,
}

// worldFrom builds a world from rows of glyphs. All rows must have the same
// length as the number of rows.
func worldFrom(t *testing.T, rows ...string) *World {
	t.Helper()
	w := New(len(rows))
	for y, row := range rows {
		require.Len(t, row, len(rows), "row %d", y)
		for x, r := range row {
			c, ok := glyphs[r]
			require.True(t, ok, "unknown glyph %q", r)
			w.SetCell(x, y, c)
		}
	}
	return w
}

func gridFrom(t *testing.T, rows ...string) *Grid {
	t.Helper()
	return worldFrom(t, rows...).Snapshot()
}

func render(w *World) string {
	var b strings.Builder
	n := w.Size().W
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			b.WriteRune(glyphOf(w.Cell(x, y)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func rows(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func glyphOf(c CellType) rune {
	for r, v := range glyphs {
		if v == c {
			return r
		}
	}
	return '?'
}

func waterCount(g *Grid) int {
	return g.Count(ExposedWater) + g.Count(InactiveWater)
}
