package sand

// TickStats records what happened during one Advance call.
type TickStats struct {
	Tick int64

	// Phase one.
	Falls      int
	Spills     int
	Exposed    int
	Settled    int
	Normalized int

	// Phase two. Clones counts cells a cloner changed.
	Clones    int
	Destroyed int

	// Leveling.
	Bodies    int
	Leveled   int
	Abandoned int

	// Population holds the per-type cell count of the buffer that became
	// "now" at the end of the tick.
	Population [cellTypeCount]int
}

// Count returns the population of c after the tick.
func (s TickStats) Count(c CellType) int {
	if !c.Valid() {
		return 0
	}
	return s.Population[c]
}

// Water returns the combined population of both water states.
func (s TickStats) Water() int {
	return s.Population[ExposedWater] + s.Population[InactiveWater]
}
