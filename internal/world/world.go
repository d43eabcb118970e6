// Package world assembles the tile engine into a runnable simulation: it
// generates an island map, drives the periodic tile step that floods and
// dries the shoreline, and exposes the result as a display cell grid.
package world

import (
	"tidelands/internal/company"
	"tidelands/internal/core"
	"tidelands/internal/tile"
	"tidelands/internal/tilecmd"
	"tidelands/internal/water"

	pkgcore "tidelands/pkg/core"

	_ "tidelands/internal/terrain" // registers the land tile callbacks
)

// World is the flood simulation over a tile map.
type World struct {
	cfg Config

	m     *tile.Map
	state *tilecmd.State

	display *core.ByteGrid
	tick    int

	regions *regionCache

	dirtyTiles    int
	resignals     int
	invalidations int
}

// New returns a world with the given dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a world configured from the provided options.
func NewWithConfig(cfg Config) *World {
	if cfg.Width < 4 {
		cfg.Width = 4
	}
	if cfg.Height < 4 {
		cfg.Height = 4
	}
	if cfg.LoopStride <= 0 {
		cfg.LoopStride = 1
	}
	w := &World{cfg: cfg}
	w.init(cfg.Seed)
	return w
}

func (w *World) init(seed int64) {
	w.m = tile.NewMap(w.cfg.Width, w.cfg.Height)
	w.state = tilecmd.NewState(w.m)
	w.state.Rand = pkgcore.NewRNG(seed)
	w.state.FreeformEdges = w.cfg.FreeformEdges
	w.state.Observer = w
	w.state.SetCurrent(company.None)
	w.regions = newRegionCache(w.m)
	if w.display == nil || w.display.W != w.cfg.Width || w.display.H != w.cfg.Height {
		w.display = core.NewByteGrid(w.cfg.Width, w.cfg.Height)
	} else {
		w.display.Clear()
	}
	w.tick = 0
	w.dirtyTiles = 0
	w.resignals = 0
	w.invalidations = 0
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "tidelands" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.m.Width(), H: w.m.Height()} }

// Cells exposes the current display buffer.
func (w *World) Cells() []uint8 { return w.display.Cells() }

// Map exposes the tile map for tools and tests.
func (w *World) Map() *tile.Map { return w.m }

// State exposes the simulation context for tools and tests.
func (w *World) State() *tilecmd.State { return w.state }

// Reset regenerates the world from the given seed. A zero seed falls back to
// the configured one.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.init(seed)
	w.generate()
	w.rebuildDisplay()
}

// Step advances the simulation one tick: every stride-th tile runs its
// periodic step, offset by the tick counter so the whole map is covered once
// per stride ticks.
func (w *World) Step() {
	stride := w.cfg.LoopStride
	for i := w.tick % stride; i < w.m.Len(); i += stride {
		t := tile.Index(i)
		if tilecmd.HasTileLoop(w.state, t) {
			tilecmd.TileLoop(w.state, t)
		}
	}
	w.tick++
	w.rebuildDisplay()
}

// Tick returns the number of steps taken since the last reset.
func (w *World) Tick() int { return w.tick }

// Behaviour classifies a tile for the flood engine.
func (w *World) Behaviour(t tile.Index) water.FloodingBehaviour {
	return water.GetFloodingBehaviour(w.m, t)
}

// RegionWaterTiles returns the cached water tile count of the 16x16 region
// containing t.
func (w *World) RegionWaterTiles(t tile.Index) int {
	return w.regions.waterTiles(t)
}

// TileDirty implements tilecmd.Observer.
func (w *World) TileDirty(t tile.Index) { w.dirtyTiles++ }

// ResignalArea implements tilecmd.Observer.
func (w *World) ResignalArea(t tile.Index) { w.resignals++ }

// WaterRegionInvalidated implements tilecmd.Observer.
func (w *World) WaterRegionInvalidated(t tile.Index) {
	w.regions.invalidate(t)
	w.invalidations++
}

func init() {
	core.Register("tidelands", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
