package sand

import "image/color"

// CellType identifies the material occupying a grid cell. Identity is the
// whole state of a cell.
type CellType uint8

const (
	Air CellType = iota
	Sand
	Rock
	ExposedWater
	InactiveWater
	Cloner
	Destroyer

	cellTypeCount
)

// Invalid marks a value that does not name a material. The automaton turns
// any such cell into Rock.
const Invalid CellType = 0xff

type cellInfo struct {
	name  string
	color color.RGBA
}

var cellTable = [cellTypeCount]cellInfo{
	Air:           {"air", color.RGBA{0x00, 0x00, 0x00, 0xff}},
	Sand:          {"sand", color.RGBA{0xf7, 0xe1, 0x8f, 0xff}},
	Rock:          {"rock", color.RGBA{0x5c, 0x56, 0x4b, 0xff}},
	ExposedWater:  {"water", color.RGBA{0x84, 0xa5, 0xd5, 0xff}},
	InactiveWater: {"inactive water", color.RGBA{0x2a, 0x4e, 0x80, 0xff}},
	Cloner:        {"cloner", color.RGBA{0x83, 0x80, 0x26, 0xff}},
	Destroyer:     {"destroyer", color.RGBA{0xe5, 0xa9, 0x7d, 0xff}},
}

// Valid reports whether c names a material.
func (c CellType) Valid() bool { return c < cellTypeCount }

// String returns the display name of the cell type.
func (c CellType) String() string {
	if !c.Valid() {
		return "invalid"
	}
	return cellTable[c].name
}

// Color returns the base display color of the cell type.
func (c CellType) Color() color.RGBA {
	if !c.Valid() {
		return color.RGBA{0xff, 0x00, 0xff, 0xff}
	}
	return cellTable[c].color
}

// IsWater reports whether c is either water state.
func (c CellType) IsWater() bool { return c == ExposedWater || c == InactiveWater }

// Types lists every valid cell type in table order.
func Types() []CellType {
	out := make([]CellType, 0, cellTypeCount)
	for c := Air; c < cellTypeCount; c++ {
		out = append(out, c)
	}
	return out
}

// Lookup maps a keystroke to the first cell type whose display name starts
// with it.
func Lookup(initial rune) (CellType, bool) {
	for c := Air; c < cellTypeCount; c++ {
		name := cellTable[c].name
		if name != "" && rune(name[0]) == initial {
			return c, true
		}
	}
	return Invalid, false
}
