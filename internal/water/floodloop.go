package water

import (
	"tidelands/internal/command"
	"tidelands/internal/company"
	"tidelands/internal/tile"
	"tidelands/internal/tilecmd"
)

// TileLoop is the periodic step of a water tile: active water tries to flood
// a neighbour, one-corner shores check whether they should dry up again.
func TileLoop(s *tilecmd.State, t tile.Index) {
	switch GetFloodingBehaviour(s.Map, t) {
	case FloodActive:
		floodStep(s, t)
	case FloodDryUp:
		dryUpStep(s, t)
	}
}

// floodStep scans the 8 neighbours of an active tile for one to flood. When
// the scan finds nothing the tile caches itself as non-flooding; the cache is
// dropped by ClearNeighbourNonFlooding when adjacent tiles change.
func floodStep(s *tilecmd.State, t tile.Index) {
	if s.Map.Is(t, tile.Water) && s.Map.NonFlooding(t) {
		return
	}
	foundTarget := false
	for dir := tile.DirN; dir < tile.NumDirs; dir++ {
		dest := s.Map.Neighbour(t, dir)
		if dest == tile.InvalidIndex || s.Map.Is(dest, tile.Water) {
			continue
		}
		// Buoys and docks are never flooded.
		if s.Map.Is(dest, tile.Station) && (s.Map.IsBuoy(dest) || s.Map.IsDock(dest)) {
			continue
		}
		// Any other neighbour might become floodable when the terrain
		// changes, even if today's scan skips it.
		foundTarget = true

		// Shore ground under trees marks a previous flood.
		if s.Map.Is(dest, tile.Trees) && s.Map.TreeGround(dest) == tile.TreeGroundShore {
			continue
		}
		slope, z := floodTargetSlope(s, dest)
		if z > 0 {
			continue
		}
		if !floodFromDirs[slope&^tile.SlopeSteep].Has(dir.Reverse()) {
			continue
		}
		doFloodTile(s, dest)
	}
	if !foundTarget && s.Map.Is(t, tile.Water) {
		s.Map.SetNonFlooding(t, true)
	}
}

// floodTargetSlope returns the effective slope and height of a flood target.
// Foundations count: a leveled tile is one level up and stays dry.
func floodTargetSlope(s *tilecmd.State, dest tile.Index) (tile.Slope, int) {
	if s.Map.Is(dest, tile.Void) {
		return tile.SlopeFlat, 0
	}
	return s.FoundationSlope(dest)
}

// dryUpStep reverts a dry-up tile unless some upstream neighbour can still
// flood it.
func dryUpStep(s *tilecmd.State, t tile.Index) {
	slope := s.Map.Slope(t) &^ tile.SlopeSteep
	upstream := floodFromDirs[slope]
	stay := false
	upstream.Each(func(dir tile.Direction) bool {
		src := s.Map.Neighbour(t, dir)
		if src == tile.InvalidIndex {
			return true
		}
		switch GetFloodingBehaviour(s.Map, src) {
		case FloodActive, FloodPassive:
			stay = true
			return false
		}
		return true
	})
	if !stay {
		doDryUp(s, t)
	}
}

// doFloodTile floods one non-water tile, running as the water company. A
// failing clear command aborts silently; the scan retries on later ticks.
func doFloodTile(s *tilecmd.State, target tile.Index) {
	if s.Map.Is(target, tile.Water) {
		panic("water: flooding a tile that is already water")
	}
	s.RunAs(company.Water, func() {
		flooded := false
		if !s.Map.IsFlat(target) {
			switch s.Map.Type(target) {
			case tile.Railway:
				if !s.Map.IsPlainRail(target) {
					break
				}
				floodVehicles(s, target)
				flooded = floodRailHalftile(s, target)

			case tile.Trees:
				if !s.Map.Slope(target).HasOneCornerRaised() {
					s.Map.SetTreeGroundDensity(target, tile.TreeGroundShore, 3)
					s.TileDirty(target)
					flooded = true
					break
				}
				fallthrough
			case tile.Clear:
				if s.ClearTile(target, command.Execute).Succeeded() {
					s.Map.MakeShore(target)
					s.TileDirty(target)
					flooded = true
				}
			}
		} else {
			floodVehicles(s, target)
			if s.ClearTile(target, command.Execute).Succeeded() {
				s.Map.MakeSea(target)
				s.TileDirty(target)
				flooded = true
			}
		}
		if flooded {
			markCanalsAndRiversAroundDirty(s, target)
			s.ResignalArea(target)
			if IsPossibleDockingTile(s, target) {
				CheckForDockingTile(s, target)
			}
			s.InvalidateWaterRegion(target)
		}
	})
}

// floodRailHalftile floods the lower half of a plain rail tile whose track
// sits entirely on the raised corner of the slope. Any other track layout
// blocks the water.
func floodRailHalftile(s *tilecmd.State, t tile.Index) bool {
	if s.Map.RailGround(t) == tile.RailGroundWater {
		return false
	}
	chord := tile.RaisedCornerTrack(s.Map.Slope(t))
	if chord == tile.TrackNone || s.Map.TrackBits(t) != chord {
		return false
	}
	s.Map.SetRailGround(t, tile.RailGroundWater)
	s.TileDirty(t)
	return true
}

// doDryUp reverts one dry-up tile to its dry form, running as the water
// company.
func doDryUp(s *tilecmd.State, t tile.Index) {
	s.RunAs(company.Water, func() {
		switch s.Map.Type(t) {
		case tile.Railway:
			var g tile.RailGround
			switch s.Map.TrackBits(t) {
			case tile.TrackUpper:
				g = tile.RailGroundFenceHoriz1
			case tile.TrackLower:
				g = tile.RailGroundFenceHoriz2
			case tile.TrackLeft:
				g = tile.RailGroundFenceVert1
			case tile.TrackRight:
				g = tile.RailGroundFenceVert2
			default:
				panic("water: drying rail tile with non-chord track")
			}
			s.Map.SetRailGround(t, g)
			s.TileDirty(t)

		case tile.Trees:
			s.Map.SetTreeGroundDensity(t, tile.TreeGroundGrass, 3)
			s.TileDirty(t)

		case tile.Water:
			// Coast. Clearing it already rebuilds bare land.
			if s.ClearTile(t, command.Execute).Succeeded() {
				s.Map.MakeClear(t, tile.GroundGrass, 3)
				s.TileDirty(t)
			}
		}
	})
}

// floodVehicles crashes everything standing at flood level on the tile. Ship
// depot north tiles flood both halves at once.
func floodVehicles(s *tilecmd.State, t tile.Index) {
	z := 0
	if s.Map.Is(t, tile.Water) && s.Map.IsShipDepot(t) {
		t = s.Map.DepotNorthTile(t)
		s.Vehicles.FloodAt(s.Map.OtherDepotTile(t), z)
	}
	s.Vehicles.FloodAt(t, z)
}

// markCanalsAndRiversAroundDirty redraws canal and river neighbours so their
// edge art follows the new shoreline.
func markCanalsAndRiversAroundDirty(s *tilecmd.State, t tile.Index) {
	for dir := tile.DirN; dir < tile.NumDirs; dir++ {
		n := s.Map.Neighbour(t, dir)
		if n == tile.InvalidIndex {
			continue
		}
		if s.Map.Is(n, tile.Water) && (s.Map.IsCanal(n) || s.Map.IsRiver(n)) {
			s.TileDirty(n)
		}
	}
}
