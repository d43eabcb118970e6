package world

import "tidelands/internal/tile"

// Stats is a snapshot of the map composition plus the side-effect counters
// the engine has emitted since the last reset.
type Stats struct {
	Sea         int
	Coast       int
	Canal       int
	River       int
	Locks       int
	Depots      int
	Land        int
	Trees       int
	ShoreTrees  int
	Rail        int
	FloodedRail int

	DirtyTiles          int
	ResignalRequests    int
	RegionInvalidations int
}

// Stats walks the map and returns the current composition.
func (w *World) Stats() Stats {
	var st Stats
	for i := 0; i < w.m.Len(); i++ {
		t := tile.Index(i)
		switch w.m.Type(t) {
		case tile.Water:
			switch w.m.WaterTileType(t) {
			case tile.WaterCoast:
				st.Coast++
			case tile.WaterLock:
				st.Locks++
			case tile.WaterDepot:
				st.Depots++
			default:
				switch w.m.WaterClass(t) {
				case tile.WaterCanal:
					st.Canal++
				case tile.WaterRiver:
					st.River++
				default:
					st.Sea++
				}
			}
		case tile.Clear:
			st.Land++
		case tile.Trees:
			st.Trees++
			if w.m.TreeGround(t) == tile.TreeGroundShore {
				st.ShoreTrees++
			}
		case tile.Railway:
			st.Rail++
			if w.m.RailGround(t) == tile.RailGroundWater {
				st.FloodedRail++
			}
		}
	}
	st.DirtyTiles = w.dirtyTiles
	st.ResignalRequests = w.resignals
	st.RegionInvalidations = w.invalidations
	return st
}
