package sand

// Brush describes what input painting writes: a cell type stamped over a
// square of side 2*Radius+1 centred on the pointer.
type Brush struct {
	Type   CellType
	Radius int
}

// Brush returns the current brush.
func (w *World) Brush() Brush { return w.brush }

// SetBrushType selects the material painted by Paint. Invalid types are
// ignored.
func (w *World) SetBrushType(c CellType) {
	if !c.Valid() {
		return
	}
	w.brush.Type = c
}

// SetBrushRadius changes the brush size, clamped to [0, 8].
func (w *World) SetBrushRadius(r int) {
	w.brush.Radius = max(0, min(r, maxBrushRadius))
}

// Paint stamps the brush material at (x, y) on the current buffer.
func (w *World) Paint(x, y int) {
	w.stamp(x, y, w.brush.Type)
}

// Erase stamps Air at (x, y) using the brush radius.
func (w *World) Erase(x, y int) {
	w.stamp(x, y, Air)
}

func (w *World) stamp(x, y int, c CellType) {
	r := w.brush.Radius
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			w.SetCell(x+dx, y+dy, c)
		}
	}
}
