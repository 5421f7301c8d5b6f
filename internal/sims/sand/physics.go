package sand

// stepper applies the per-cell transition rules of one tick. It reads the
// "now" buffer and writes the "next" buffer, which starts as a copy of now.
type stepper struct {
	destroyerSelf bool

	// claimed marks destinations already written by a move during phase one.
	claimed []bool
}

func (s *stepper) reset(n int) {
	if len(s.claimed) != n*n {
		s.claimed = make([]bool, n*n)
		return
	}
	clear(s.claimed)
}

// claim writes v to dst in next unless another source already moved into
// dst this phase.
func (s *stepper) claim(next *Grid, dst Coord, v CellType) bool {
	idx := dst.Y*next.Size() + dst.X
	if s.claimed[idx] {
		return false
	}
	s.claimed[idx] = true
	next.Set(dst, v)
	return true
}

// physics runs phase one: gravity, water state toggling and spillover.
func (s *stepper) physics(now, next *Grid, st *TickStats) {
	n := now.Size()
	s.reset(n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			here := Coord{x, y}
			cell := now.Get(here, Rock)
			out := cell

			switch cell {
			case Air:
				continue
			case Rock, Cloner, Destroyer:
			case Sand:
				if now.Get(here.Down(), Rock) == Air && s.claim(next, here.Down(), Sand) {
					out = Air
					st.Falls++
				}
			case InactiveWater:
				if touchesAir(now, here) {
					out = ExposedWater
					st.Exposed++
				}
			case ExposedWater:
				out = s.flow(now, next, here, st)
			default:
				out = Rock
				st.Normalized++
			}

			next.Set(here, out)
		}
	}
}

// flow decides the fate of an exposed water cell and returns what stays
// behind at its own coordinate.
func (s *stepper) flow(now, next *Grid, here Coord, st *TickStats) CellType {
	if now.Get(here.Down(), Rock) == Air && s.claim(next, here.Down(), ExposedWater) {
		st.Falls++
		return Air
	}
	for _, side := range [2]Coord{here.Left(), here.Right()} {
		if now.Get(side, Rock) != Air || now.Get(side.Down(), Rock) != Air {
			continue
		}
		if s.claim(next, side.Down(), ExposedWater) {
			st.Spills++
			return Air
		}
	}
	if !touchesAir(now, here) {
		st.Settled++
		return InactiveWater
	}
	return ExposedWater
}

// replicate runs phase two over the output of phase one. Cell types are
// read from next; the cloner's neighbor probes read now.
func (s *stepper) replicate(now, next *Grid, st *TickStats) {
	n := next.Size()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			here := Coord{x, y}
			switch next.Get(here, Air) {
			case Cloner:
				below := now.Get(here.Down(), Rock)
				if below != Air && below != Cloner {
					continue
				}
				stamp := now.Get(here.Up(), Cloner)
				if next.Get(here.Down(), Rock) != stamp {
					st.Clones++
				}
				next.Set(here.Down(), stamp)
			case Destroyer:
				s.blast(next, here, st)
			}
		}
	}
}

func (s *stepper) blast(next *Grid, center Coord, st *TickStats) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 && !s.destroyerSelf {
				continue
			}
			c := Coord{center.X + dx, center.Y + dy}
			if next.Get(c, Air) != Air {
				st.Destroyed++
			}
			next.Set(c, Air)
		}
	}
}

// touchesAir reports whether any orthogonal neighbor of c is Air. Cells
// outside the grid count as Rock.
func touchesAir(g *Grid, c Coord) bool {
	return g.Get(c.Up(), Rock) == Air ||
		g.Get(c.Down(), Rock) == Air ||
		g.Get(c.Left(), Rock) == Air ||
		g.Get(c.Right(), Rock) == Air
}
