package world

import (
	"slices"
	"testing"

	"tidelands/internal/command"
	"tidelands/internal/company"
	"tidelands/internal/core"
	"tidelands/internal/tile"
	"tidelands/internal/water"

	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Width = 64
	cfg.Height = 64
	cfg.Seed = 99
	cfg.LoopStride = 4
	cfg.Gen.IslandCount = 3
	cfg.Gen.IslandRadiusMin = 5
	cfg.Gen.IslandRadiusMax = 10
	cfg.Gen.TreePatchCount = 4
	cfg.Gen.RailSpurs = 2
	cfg.Gen.Buoys = 1
	cfg.Gen.OilRigs = 1
	return cfg
}

func TestResetDeterministic(t *testing.T) {
	w := NewWithConfig(testConfig())
	w.Reset(0)

	initial := append([]uint8(nil), w.Cells()...)
	if len(initial) != 64*64 {
		t.Fatalf("display buffer has %d cells, want %d", len(initial), 64*64)
	}

	// Mutate and rebuild from the same seed.
	for i := 0; i < 32; i++ {
		w.Step()
	}
	w.Reset(0)
	if !slices.Equal(initial, w.Cells()) {
		t.Fatal("Reset with config seed not deterministic")
	}

	// Two worlds stepping in lockstep stay identical.
	a := NewWithConfig(testConfig())
	b := NewWithConfig(testConfig())
	a.Reset(777)
	b.Reset(777)
	for i := 0; i < 48; i++ {
		a.Step()
		b.Step()
		if !slices.Equal(a.Cells(), b.Cells()) {
			t.Fatalf("worlds diverged at tick %d", i)
		}
	}
}

func TestSeaOnlyAdvances(t *testing.T) {
	w := NewWithConfig(testConfig())
	w.Reset(0)

	prev := w.Stats().Sea
	require.Greater(t, prev, 0, "generation leaves open sea around the islands")
	for i := 0; i < 64; i++ {
		w.Step()
		cur := w.Stats().Sea
		require.GreaterOrEqual(t, cur, prev, "sea tiles never revert")
		prev = cur
	}
}

func TestStepSpreadsWorkAcrossStride(t *testing.T) {
	w := NewWithConfig(testConfig())
	w.Reset(0)
	require.Equal(t, 0, w.Tick())

	w.Step()
	require.Equal(t, 1, w.Tick())

	// A full stride's worth of steps visits every tile once; after it the
	// world must be at least as flooded as after one partial pass.
	before := w.Stats().Sea
	for i := 1; i < w.cfg.LoopStride; i++ {
		w.Step()
	}
	require.GreaterOrEqual(t, w.Stats().Sea, before)
	require.Equal(t, w.cfg.LoopStride, w.Tick())
}

func TestStatsComposition(t *testing.T) {
	w := NewWithConfig(testConfig())
	w.Reset(0)

	st := w.Stats()
	total := st.Sea + st.Coast + st.Canal + st.River + st.Locks + st.Depots +
		st.Land + st.Trees + st.Rail
	require.LessOrEqual(t, total, w.Map().Len())
	require.Greater(t, st.Land, 0)
	require.Greater(t, st.Coast, 0)
	require.Greater(t, st.Rail, 0)
	require.Greater(t, st.Trees, 0)
	require.GreaterOrEqual(t, st.Trees, st.ShoreTrees)
}

func TestRegionCacheInvalidation(t *testing.T) {
	w := NewWithConfig(testConfig())
	w.Reset(0)

	// Find a clearable sea tile away from the map edge.
	m := w.Map()
	var target tile.Index = tile.InvalidIndex
	for y := 4; y < 60 && target == tile.InvalidIndex; y++ {
		for x := 4; x < 60; x++ {
			tl := m.TileXY(x, y)
			if m.IsSea(tl) {
				target = tl
				break
			}
		}
	}
	require.NotEqual(t, tile.InvalidIndex, target)

	before := w.RegionWaterTiles(target)
	require.Greater(t, before, 0)

	ret := w.State().ClearTile(target, command.Execute)
	require.True(t, ret.Succeeded())

	require.Equal(t, before-1, w.RegionWaterTiles(target),
		"clearing water drops the cached region count")
	require.Greater(t, w.Stats().RegionInvalidations, 0)
}

func TestOverlayFields(t *testing.T) {
	w := NewWithConfig(testConfig())
	w.Reset(0)

	n := w.Map().Len()
	behaviour := w.BehaviourCells()
	elevation := w.ElevationField()
	docking := w.DockingCells()
	require.Len(t, behaviour, n)
	require.Len(t, elevation, n)
	require.Len(t, docking, n)

	active := 0
	for i, b := range behaviour {
		switch b {
		case uint8(water.FloodActive):
			active++
			require.Equal(t, water.FloodActive, w.Behaviour(tile.Index(i)))
		case uint8(water.FloodDryUp):
			require.Equal(t, water.FloodDryUp, w.Behaviour(tile.Index(i)))
		}
	}
	require.Greater(t, active, 0, "open sea and the void border are active")

	// Docking flags surface straight from the map: drop a rig on open sea
	// and mark the tile beside it.
	m := w.Map()
	var rig tile.Index = tile.InvalidIndex
	for y := 4; y < 60 && rig == tile.InvalidIndex; y++ {
		for x := 4; x < 60; x++ {
			tl := m.TileXY(x, y)
			if m.IsSea(tl) && m.IsSea(m.NeighbourDiag(tl, tile.DiagSW)) {
				rig = tl
				break
			}
		}
	}
	require.NotEqual(t, tile.InvalidIndex, rig)

	m.MakeStation(rig, uint8(company.None), tile.StationOilRig, tile.WaterSea)
	beside := m.NeighbourDiag(rig, tile.DiagSW)
	water.CheckForDockingTile(w.State(), beside)
	require.True(t, w.DockingCells()[beside])
}

func TestParameterSurface(t *testing.T) {
	w := NewWithConfig(testConfig())

	snap := w.Parameters()
	require.Len(t, snap.Groups, 2)
	found := false
	for _, g := range snap.Groups {
		for _, p := range g.Params {
			if p.Key == "loop_stride" {
				require.Equal(t, "4", p.Value)
				found = true
			}
		}
	}
	require.True(t, found)

	require.True(t, w.SetIntParameter("loop_stride", 2))
	require.False(t, w.SetIntParameter("loop_stride", 0))
	require.False(t, w.SetIntParameter("no_such_key", 1))
	require.True(t, w.SetFloatParameter("tree_density", 0.25))
	require.False(t, w.SetFloatParameter("tree_density", 1.5))
}

func TestFactoryRegistered(t *testing.T) {
	factory, ok := core.Sims()["tidelands"]
	require.True(t, ok)

	sim := factory(map[string]string{"w": "32", "h": "24", "seed": "5"})
	require.Equal(t, "tidelands", sim.Name())
	require.Equal(t, core.Size{W: 32, H: 24}, sim.Size())

	sim.Reset(0)
	require.Len(t, sim.Cells(), 32*24)
}

func TestPaletteCoversAllCells(t *testing.T) {
	w := NewWithConfig(testConfig())
	w.Reset(0)

	palette := w.Palette()
	for _, c := range w.Cells() {
		require.Less(t, int(c), len(palette))
	}
}
