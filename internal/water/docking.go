package water

import (
	"tidelands/internal/tile"
	"tidelands/internal/tilecmd"
)

// IsPossibleDockingTile reports whether ships could load on this tile, i.e.
// whether it is worth running the full docking check after a mutation.
func IsPossibleDockingTile(s *tilecmd.State, t tile.Index) bool {
	switch s.Map.Type(t) {
	case tile.Water:
		if s.Map.IsLock(t) && s.Map.LockPart(t) == tile.LockMiddle {
			return false
		}
		fallthrough
	case tile.Railway, tile.Station, tile.TunnelBridge:
		return tilecmd.GetTileTrackStatus(s, t, tile.TransportWater, tile.InvalidDiagDir) != tile.TrackNone
	default:
		return false
	}
}

// CheckForDockingTile marks t as a docking tile when a dock, an oil rig or a
// waterside industry sits directly beside it.
func CheckForDockingTile(s *tilecmd.State, t tile.Index) {
	for dir := tile.DiagNE; dir < tile.NumDiagDirs; dir++ {
		n := s.Map.NeighbourDiag(t, dir)
		if n == tile.InvalidIndex {
			continue
		}
		// A structure only offers a berth on sides that actually show water.
		if !IsWateredTile(s.Map, n, dir.Reverse().Dir()) {
			continue
		}
		switch {
		case s.Map.Is(n, tile.Station) && s.Map.StationKind(n) == tile.StationDockWaterPart:
			s.Map.SetDocking(t, true)
		case s.Map.IsOilRig(n):
			s.Map.SetDocking(t, true)
		case s.Map.Is(n, tile.Industry) && s.Map.OnWater(n):
			s.Map.SetDocking(t, true)
		}
	}
}
