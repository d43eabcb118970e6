package world

import (
	"tidelands/internal/company"
	"tidelands/internal/tile"
	"tidelands/internal/vehicle"
	"tidelands/internal/water"
)

// generate builds the initial map: bare land, raised island blobs, the sea
// filled in around them, then trees, shoreline rail spurs and sea markers.
func (w *World) generate() {
	m := w.m
	rng := w.state.Rand

	// Playable area; the outermost south-east row and column stay void.
	for y := 0; y < m.Height()-1; y++ {
		for x := 0; x < m.Width()-1; x++ {
			m.MakeClear(m.TileXY(x, y), tile.GroundGrass, 3)
		}
	}

	for i := 0; i < w.cfg.Gen.IslandCount; i++ {
		r := w.cfg.Gen.IslandRadiusMin
		if w.cfg.Gen.IslandRadiusMax > r {
			r += rng.IntN(w.cfg.Gen.IslandRadiusMax - r + 1)
		}
		cx := 2 + rng.IntN(max(m.Width()-4, 1))
		cy := 2 + rng.IntN(max(m.Height()-4, 1))
		w.raiseIsland(cx, cy, r)
	}

	// Spurs go down before the sea fills in: the one-corner shoreline tiles
	// they want would otherwise already be coast.
	w.layRailSpurs()

	water.ConvertGroundTilesIntoWaterTiles(w.state)

	for i := 0; i < w.cfg.Gen.TreePatchCount; i++ {
		cx, cy := rng.IntN(m.Width()), rng.IntN(m.Height())
		for attempt := 0; attempt < 64; attempt++ {
			t := tile.Index(rng.IntN(m.Len()))
			if m.Is(t, tile.Clear) {
				cx, cy = m.XY(t)
				break
			}
		}
		w.plantTreePatch(cx, cy)
	}
	w.dropSeaMarkers()
}

// raiseIsland lifts the corner grid in a rough disc. Corner heights near the
// centre go up two levels so the islands carry slopes of every shape.
func (w *World) raiseIsland(cx, cy, r int) {
	m := w.m
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			// The border corners stay at sea level.
			if x < 2 || y < 2 || x > m.Width()-3 || y > m.Height()-3 {
				continue
			}
			dx, dy := x-cx, y-cy
			d2 := dx*dx + dy*dy
			if d2 > r*r {
				continue
			}
			h := 1
			if d2*4 <= r*r {
				h = 2
			}
			t := m.TileXY(x, y)
			if m.CornerHeight(t) < h {
				m.SetCornerHeight(t, h)
			}
		}
	}
}

// plantTreePatch plants trees on bare land around a centre.
func (w *World) plantTreePatch(cx, cy int) {
	m := w.m
	rng := w.state.Rand
	r := w.cfg.Gen.TreePatchRadius
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			if x < 0 || y < 0 || x >= m.Width() || y >= m.Height() {
				continue
			}
			t := m.TileXY(x, y)
			if !m.Is(t, tile.Clear) {
				continue
			}
			if rng.Float64() >= w.cfg.Gen.TreeDensity {
				continue
			}
			m.MakeTrees(t, tile.TreeGroundGrass, 1+rng.IntN(3))
		}
	}
}

// layRailSpurs puts chord track on one-corner shoreline slopes, each with a
// train parked on it. These are the tiles the flood can only half-take.
func (w *World) layRailSpurs() {
	m := w.m
	rng := w.state.Rand
	want := w.cfg.Gen.RailSpurs
	if want <= 0 {
		return
	}
	var sites []tile.Index
	for t := tile.Index(0); int(t) < m.Len(); t++ {
		if !m.Is(t, tile.Clear) {
			continue
		}
		slope, z := m.SlopeZ(t)
		if z == 0 && slope.HasOneCornerRaised() {
			sites = append(sites, t)
		}
	}
	for laid := 0; laid < want && len(sites) > 0; laid++ {
		i := rng.IntN(len(sites))
		t := sites[i]
		sites[i] = sites[len(sites)-1]
		sites = sites[:len(sites)-1]

		slope, _ := m.SlopeZ(t)
		m.MakeRail(t, uint8(company.ID(0)), tile.RaisedCornerTrack(slope), tile.RailGroundGrass)
		w.state.Vehicles.Place(vehicle.Train, t, 0, 0)
		w.state.ClearNeighbourNonFlooding(t)
	}
}

// dropSeaMarkers scatters buoys and oil rigs on open sea and marks the
// docking tiles around the rigs.
func (w *World) dropSeaMarkers() {
	m := w.m
	rng := w.state.Rand

	place := func(kind tile.StationKind) bool {
		for attempt := 0; attempt < 256; attempt++ {
			t := tile.Index(rng.IntN(m.Len()))
			if !m.IsSea(t) {
				continue
			}
			m.MakeStation(t, uint8(company.None), kind, tile.WaterSea)
			if kind == tile.StationOilRig {
				for dir := tile.DiagNE; dir < tile.NumDiagDirs; dir++ {
					n := m.NeighbourDiag(t, dir)
					if n != tile.InvalidIndex && m.Is(n, tile.Water) {
						water.CheckForDockingTile(w.state, n)
					}
				}
			}
			return true
		}
		return false
	}

	for i := 0; i < w.cfg.Gen.Buoys; i++ {
		place(tile.StationBuoy)
	}
	for i := 0; i < w.cfg.Gen.OilRigs; i++ {
		place(tile.StationOilRig)
	}
}
