package sand

import "fmt"

// Coord addresses a grid cell. Y grows in the direction of gravity.
type Coord struct {
	X, Y int
}

// Up returns the coordinate one row above c.
func (c Coord) Up() Coord { return Coord{c.X, c.Y - 1} }

// Down returns the coordinate one row below c.
func (c Coord) Down() Coord { return Coord{c.X, c.Y + 1} }

// Left returns the coordinate one column left of c.
func (c Coord) Left() Coord { return Coord{c.X - 1, c.Y} }

// Right returns the coordinate one column right of c.
func (c Coord) Right() Coord { return Coord{c.X + 1, c.Y} }

// Compare orders coordinates topmost first, then leftmost.
func (c Coord) Compare(o Coord) int {
	switch {
	case c.Y < o.Y:
		return -1
	case c.Y > o.Y:
		return 1
	case c.X < o.X:
		return -1
	case c.X > o.X:
		return 1
	}
	return 0
}

func (c Coord) String() string { return fmt.Sprintf("%d,%d", c.X, c.Y) }
