package world

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// GenParams holds the tunables for initial terrain generation.
type GenParams struct {
	// IslandCount is how many height blobs are raised out of the sea.
	IslandCount int `yaml:"island_count"`
	// IslandRadiusMin and IslandRadiusMax bound the blob radius in tiles.
	IslandRadiusMin int `yaml:"island_radius_min"`
	IslandRadiusMax int `yaml:"island_radius_max"`

	// TreePatchCount patches of trees are planted on generated land.
	TreePatchCount  int     `yaml:"tree_patch_count"`
	TreePatchRadius int     `yaml:"tree_patch_radius"`
	TreeDensity     float64 `yaml:"tree_density"`

	// RailSpurs short track spurs are laid near the shoreline, each with a
	// train parked on it, so floods have something to hit.
	RailSpurs int `yaml:"rail_spurs"`

	// Buoys and OilRigs are scattered on open sea.
	Buoys   int `yaml:"buoys"`
	OilRigs int `yaml:"oil_rigs"`
}

// Config controls the world dimensions and simulation pacing.
type Config struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`

	// LoopStride spreads the periodic tile step over this many ticks; each
	// tick visits every stride-th tile, offset by the tick counter.
	LoopStride int `yaml:"loop_stride"`

	// FreeformEdges permits clearing sea on the outermost playable ring.
	FreeformEdges bool `yaml:"freeform_edges"`

	Gen GenParams `yaml:"gen"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:      128,
		Height:     128,
		Seed:       1007,
		LoopStride: 8,
		Gen: GenParams{
			IslandCount:     6,
			IslandRadiusMin: 8,
			IslandRadiusMax: 20,
			TreePatchCount:  10,
			TreePatchRadius: 4,
			TreeDensity:     0.6,
			RailSpurs:       4,
			Buoys:           3,
			OilRigs:         1,
		},
	}
}

// LoadConfig reads a YAML configuration file over the defaults.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("world: read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("world: parse config %s: %w", path, err)
	}
	return c, nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["loop_stride"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.LoopStride = parsed
		}
	}
	if v, ok := cfg["freeform_edges"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.FreeformEdges = parsed
		}
	}
	if v, ok := cfg["island_count"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Gen.IslandCount = parsed
		}
	}
	if v, ok := cfg["island_radius_min"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Gen.IslandRadiusMin = parsed
		}
	}
	if v, ok := cfg["island_radius_max"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Gen.IslandRadiusMax = parsed
		}
	}
	if c.Gen.IslandRadiusMax < c.Gen.IslandRadiusMin {
		c.Gen.IslandRadiusMax = c.Gen.IslandRadiusMin
	}
	if v, ok := cfg["tree_patch_count"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Gen.TreePatchCount = parsed
		}
	}
	if v, ok := cfg["tree_patch_radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Gen.TreePatchRadius = parsed
		}
	}
	if v, ok := cfg["tree_density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Gen.TreeDensity = parsed
		}
	}
	if v, ok := cfg["rail_spurs"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Gen.RailSpurs = parsed
		}
	}
	if v, ok := cfg["buoys"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Gen.Buoys = parsed
		}
	}
	if v, ok := cfg["oil_rigs"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Gen.OilRigs = parsed
		}
	}
	return c
}
