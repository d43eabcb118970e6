package terrain

import (
	"tidelands/internal/command"
	"tidelands/internal/company"
	"tidelands/internal/tile"
	"tidelands/internal/tilecmd"
	"tidelands/internal/water"
)

func init() {
	tilecmd.Register(tile.Railway, &tilecmd.Procs{
		Draw:         drawRail,
		SlopeZ:       groundSlopeZ,
		Clear:        clearRail,
		Describe:     describeRail,
		TrackStatus:  trackStatusRail,
		TileLoop:     railLoop,
		ChangeOwner:  changeOwnerRail,
		VehicleEnter: enterNothing,
		Foundation:   foundationRail,
		Terraform:    terraformClearable,
	})
}

func drawRail(s *tilecmd.State, t tile.Index) uint8 {
	if s.Map.RailGround(t) == tile.RailGroundWater {
		return tilecmd.CellRailFlooded
	}
	return tilecmd.CellRail
}

func clearRail(s *tilecmd.State, t tile.Index, flags command.Flags) command.Cost {
	if s.Current() != company.Water {
		if ret := s.CheckOwnership(t); ret.Failed() {
			return ret
		}
	}
	if ret := s.EnsureNoVehicleOnGround(t); ret.Failed() {
		return ret
	}
	if flags.Has(command.Execute) {
		wasFlooded := s.Map.RailGround(t) == tile.RailGroundWater
		s.ClearSquare(t)
		s.ResignalArea(t)
		if wasFlooded {
			s.InvalidateWaterRegion(t)
		}
	}
	return command.NewCost(command.PriceClearRail)
}

func describeRail(s *tilecmd.State, t tile.Index) tilecmd.Desc {
	return tilecmd.Desc{Kind: "Railway track", Owner: company.ID(s.Map.Owner(t))}
}

func trackStatusRail(s *tilecmd.State, t tile.Index, mode tile.TransportMode, side tile.DiagDirection) tile.TrackBits {
	if mode != tile.TransportRail {
		return tile.TrackNone
	}
	return s.Map.TrackBits(t)
}

// railLoop hands part-flooded rail to the water engine so it can dry up
// again once nothing upstream floods it.
func railLoop(s *tilecmd.State, t tile.Index) {
	if s.Map.RailGround(t) == tile.RailGroundWater {
		water.TileLoop(s, t)
	}
}

func changeOwnerRail(s *tilecmd.State, t tile.Index, oldOwner, newOwner company.ID) {
	if company.ID(s.Map.Owner(t)) != oldOwner {
		return
	}
	if newOwner != company.Invalid {
		s.Map.SetOwner(t, uint8(newOwner))
		return
	}
	s.ClearTile(t, command.Execute|command.Bankrupt)
}

// foundationRail reports whether the track needs an artificial level base.
// Track along a matching incline, or a lone chord on the raised corner of a
// one-corner slope, rides the natural ground; everything else on a slope is
// leveled up and thereby safe from flooding.
func foundationRail(s *tilecmd.State, t tile.Index, slope tile.Slope) tilecmd.Foundation {
	if slope.IsFlat() {
		return tilecmd.FoundationNone
	}
	bits := s.Map.TrackBits(t)
	if dir := slope.InclinedDirection(); dir != tile.InvalidDiagDir {
		if bits == tile.DiagTrackBits(dir) {
			return tilecmd.FoundationNone
		}
	}
	if chord := tile.RaisedCornerTrack(slope); chord != tile.TrackNone && bits == chord {
		return tilecmd.FoundationNone
	}
	return tilecmd.FoundationLeveled
}
