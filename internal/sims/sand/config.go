package sand

import "strconv"

// Config controls the sand world dimensions and rule variants.
type Config struct {
	// Size is the side length N of the square grid.
	Size int
	// BlockPixels is the on-screen edge of one cell. Only frontends use it.
	BlockPixels int

	Scene string
	Seed  int64

	// DestroyerIncludesSelf clears the full 3x3 block around a destroyer,
	// removing the destroyer itself. The default clears the 8 neighbors.
	DestroyerIncludesSelf bool

	BrushRadius int
}

const maxBrushRadius = 8

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size:        50,
		BlockPixels: 16,
		Scene:       SceneEmpty,
		Seed:        1337,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["n"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["block"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.BlockPixels = parsed
		}
	}
	if v, ok := cfg["scene"]; ok {
		if _, known := scenes[v]; known {
			c.Scene = v
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["destroyer_self"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.DestroyerIncludesSelf = parsed
		}
	}
	if v, ok := cfg["brush_radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.BrushRadius = min(parsed, maxBrushRadius)
		}
	}
	return c
}

// Keys lists the configuration keys understood by FromMap.
func Keys() []string {
	return []string{"n", "block", "scene", "seed", "destroyer_self", "brush_radius"}
}
