package sand

import "mad-sand/internal/core"

// Grid is a square field of cells. Every access is bounds checked: reads
// outside the grid return the caller's default and writes are dropped.
type Grid struct {
	cells *core.ByteGrid
}

// NewGrid allocates an n by n grid filled with Air.
func NewGrid(n int) *Grid {
	return &Grid{cells: core.NewByteGrid(n, n)}
}

// Size returns the side length of the grid.
func (g *Grid) Size() int { return g.cells.W }

// Get returns the cell at c, or def when c is out of bounds.
func (g *Grid) Get(c Coord, def CellType) CellType {
	return CellType(g.cells.At(c.X, c.Y, uint8(def)))
}

// Set writes v at c. Out-of-bounds writes are no-ops.
func (g *Grid) Set(c Coord, v CellType) {
	g.cells.Put(c.X, c.Y, uint8(v))
}

// At is Get with separate coordinates.
func (g *Grid) At(x, y int, def CellType) CellType {
	return CellType(g.cells.At(x, y, uint8(def)))
}

// Put is Set with separate coordinates.
func (g *Grid) Put(x, y int, v CellType) {
	g.cells.Put(x, y, uint8(v))
}

// InBounds reports whether c addresses a cell.
func (g *Grid) InBounds(c Coord) bool { return g.cells.InBounds(c.X, c.Y) }

// CopyFrom overwrites g with src.
func (g *Grid) CopyFrom(src *Grid) { g.cells.CopyFrom(src.cells) }

// Clone returns an independent deep copy of g.
func (g *Grid) Clone() *Grid {
	out := NewGrid(g.Size())
	out.CopyFrom(g)
	return out
}

// Fill sets every cell to v.
func (g *Grid) Fill(v CellType) { g.cells.Fill(uint8(v)) }

// Count returns the number of cells holding v.
func (g *Grid) Count(v CellType) int {
	n := 0
	for _, c := range g.cells.Cells() {
		if CellType(c) == v {
			n++
		}
	}
	return n
}

// Census counts every valid cell type. Invalid values are not counted.
func (g *Grid) Census() [cellTypeCount]int {
	var out [cellTypeCount]int
	for _, c := range g.cells.Cells() {
		if CellType(c).Valid() {
			out[c]++
		}
	}
	return out
}

// Bytes exposes the row-major backing slice, one byte per cell.
func (g *Grid) Bytes() []uint8 { return g.cells.Cells() }
