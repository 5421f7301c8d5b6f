package sand

import (
	"sort"

	"mad-sand/internal/core"
)

// Scene names accepted by Config.Scene.
const (
	SceneEmpty   = "empty"
	SceneBasin   = "basin"
	SceneFunnel  = "funnel"
	SceneScatter = "scatter"
)

type scene func(g *Grid, rng *core.RNG)

var scenes = map[string]scene{
	SceneEmpty:   func(*Grid, *core.RNG) {},
	SceneBasin:   sceneBasin,
	SceneFunnel:  sceneFunnel,
	SceneScatter: sceneScatter,
}

// Scenes returns the known scene names in sorted order.
func Scenes() []string {
	out := make([]string, 0, len(scenes))
	for name := range scenes {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// sceneBasin builds a rock basin half full of water with a block of sand
// hanging above it.
func sceneBasin(g *Grid, _ *core.RNG) {
	n := g.Size()
	if n < 8 {
		return
	}
	left, right := n/4, n-1-n/4
	floor, top := n-2, n/2
	for x := left; x <= right; x++ {
		g.Put(x, floor, Rock)
	}
	for y := top; y < floor; y++ {
		g.Put(left, y, Rock)
		g.Put(right, y, Rock)
	}

	surface := floor - (floor-top)/2
	for y := surface; y < floor; y++ {
		for x := left + 1; x < right; x++ {
			if y == surface {
				g.Put(x, y, ExposedWater)
				continue
			}
			g.Put(x, y, InactiveWater)
		}
	}

	mid := n / 2
	for y := 1; y <= 1+n/10; y++ {
		for x := mid - 2; x <= mid+2; x++ {
			g.Put(x, y, Sand)
		}
	}
}

// sceneFunnel builds a V of rock with a one-cell neck and fills its upper
// half with sand.
func sceneFunnel(g *Grid, _ *core.RNG) {
	n := g.Size()
	if n < 8 {
		return
	}
	mid, neck := n/2, n/2
	depth := n / 4
	for y := neck - depth; y <= neck; y++ {
		off := neck - y + 1
		g.Put(mid-off, y, Rock)
		g.Put(mid+off, y, Rock)
	}
	for y := neck - depth; y < neck-depth/2; y++ {
		off := neck - y + 1
		for x := mid - off + 1; x < mid+off; x++ {
			g.Put(x, y, Sand)
		}
	}
}

// sceneScatter sprinkles sand, rock and water at random.
func sceneScatter(g *Grid, rng *core.RNG) {
	n := g.Size()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			switch roll := rng.IntN(100); {
			case roll < 8:
				g.Put(x, y, Sand)
			case roll < 11:
				g.Put(x, y, Rock)
			case roll < 16:
				g.Put(x, y, ExposedWater)
			}
		}
	}
}
