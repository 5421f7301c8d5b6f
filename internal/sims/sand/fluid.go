package sand

import "slices"

// Leveler lets water seek its level. Each run finds every connected body of
// water reachable from an exposed cell and moves water from the top of the
// body to the cells around its bottom.
//
// Discovery works on a private copy of the grid so visited cells can be
// marked destructively; moves are applied to the caller's grid.
type Leveler struct {
	src     *Grid
	exposed []Coord
	branch  []Coord

	// leftFirst alternates the side tried first when placing water so the
	// leveling has no directional bias. It flips on every attempted move.
	leftFirst bool
}

// Run levels every water body of grid once.
func (l *Leveler) Run(grid *Grid, st *TickStats) {
	l.load(grid)
	n := l.src.Size()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			seed := Coord{x, y}
			if l.src.Get(seed, Rock) != ExposedWater {
				continue
			}
			body := l.fill(seed)
			st.Bodies++
			l.redistribute(grid, body, st)
		}
	}
}

// Body returns the sorted coordinates of the water body containing seed,
// without moving anything.
func (l *Leveler) Body(grid *Grid, seed Coord) []Coord {
	if !grid.Get(seed, Air).IsWater() {
		return nil
	}
	l.load(grid)
	if l.src.Get(seed, Air) == InactiveWater {
		// Start the walk from the column containing the seed.
		l.exposed = l.exposed[:0]
		l.branch = append(l.branch[:0], seed)
		return slices.Clone(l.walk())
	}
	return slices.Clone(l.fill(seed))
}

func (l *Leveler) load(grid *Grid) {
	if l.src == nil || l.src.Size() != grid.Size() {
		l.src = grid.Clone()
		return
	}
	l.src.CopyFrom(grid)
}

// fill runs the scanline flood fill from an exposed seed and returns the
// body sorted top-first with duplicates removed. The result aliases internal
// storage and is valid until the next fill.
func (l *Leveler) fill(seed Coord) []Coord {
	l.exposed = l.exposed[:0]
	l.branch = l.branch[:0]

	l.add(seed)
	l.branch = append(l.branch, seed.Right(), seed.Left(), seed.Down(), seed.Up())
	return l.walk()
}

func (l *Leveler) walk() []Coord {
	n := l.src.Size()
	for len(l.branch) > 0 {
		c := l.branch[len(l.branch)-1]
		l.branch = l.branch[:len(l.branch)-1]

		for l.src.Get(c, Air) == InactiveWater {
			c = c.Up()
		}
		l.add(c)
		c = c.Down()

		spanLeft, spanRight := false, false
		for c.Y < n && l.src.Get(c, Air) == InactiveWater {
			l.src.Set(c, Rock)
			l.exposed = append(l.exposed, c)
			l.add(c.Left())
			l.add(c.Right())
			spanLeft = l.span(c.Left(), spanLeft)
			spanRight = l.span(c.Right(), spanRight)
			c = c.Down()
		}
		l.add(c)
	}

	slices.SortFunc(l.exposed, Coord.Compare)
	l.exposed = slices.Compact(l.exposed)
	return l.exposed
}

// add records c if it holds exposed water and clears it in the working copy
// so it is never visited twice.
func (l *Leveler) add(c Coord) {
	if l.src.Get(c, Air) != ExposedWater {
		return
	}
	l.exposed = append(l.exposed, c)
	l.src.Set(c, Air)
}

// span pushes c as a new column when it starts a run of inactive water next
// to the column being scanned, and returns the updated open-span state.
func (l *Leveler) span(c Coord, open bool) bool {
	inactive := l.src.Get(c, Air) == InactiveWater
	switch {
	case inactive && !open:
		l.branch = append(l.branch, c)
		return true
	case !inactive && open:
		return false
	}
	return open
}

func (l *Leveler) redistribute(grid *Grid, body []Coord, st *TickStats) {
	for len(body) > 2 {
		move, target := body[0], body[len(body)-1]
		body = body[1 : len(body)-1]
		if move.Y+1 >= target.Y {
			continue
		}
		if l.moveWater(grid, move, target) {
			st.Leveled++
		} else {
			st.Abandoned++
		}
	}
}

// moveWater places exposed water next to target and clears move. The first
// Air cell among below, the two sides and above target wins.
func (l *Leveler) moveWater(grid *Grid, move, target Coord) bool {
	l.leftFirst = !l.leftFirst
	first, second := target.Left(), target.Right()
	if !l.leftFirst {
		first, second = second, first
	}
	for _, c := range [...]Coord{target.Down(), first, second, target.Up()} {
		if grid.Get(c, Rock) != Air {
			continue
		}
		grid.Set(c, ExposedWater)
		grid.Set(move, Air)
		return true
	}
	return false
}
