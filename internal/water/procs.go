package water

import (
	"tidelands/internal/command"
	"tidelands/internal/company"
	"tidelands/internal/tile"
	"tidelands/internal/tilecmd"
	"tidelands/internal/vehicle"
)

func init() {
	tilecmd.Register(tile.Water, &tilecmd.Procs{
		Draw:         drawWater,
		SlopeZ:       slopeZWater,
		Clear:        clearWater,
		Describe:     describeWater,
		TrackStatus:  trackStatusWater,
		Click:        clickWater,
		TileLoop:     TileLoop,
		ChangeOwner:  changeOwnerWater,
		VehicleEnter: vehicleEnterWater,
		Foundation:   foundationWater,
		Terraform:    terraformWater,
	})
}

func drawWater(s *tilecmd.State, t tile.Index) uint8 {
	switch s.Map.WaterTileType(t) {
	case tile.WaterCoast:
		return tilecmd.CellCoast
	case tile.WaterLock:
		return tilecmd.CellLock
	case tile.WaterDepot:
		return tilecmd.CellDepot
	}
	switch s.Map.WaterClass(t) {
	case tile.WaterCanal:
		return tilecmd.CellCanal
	case tile.WaterRiver:
		return tilecmd.CellRiver
	}
	return tilecmd.CellSea
}

func slopeZWater(s *tilecmd.State, t tile.Index, x, y int) int {
	_, z := s.Map.SlopeZ(t)
	return z
}

// clearWater is the clear command for every water sub-type. Locks and depots
// reject automatic clears and route to their own removal commands.
func clearWater(s *tilecmd.State, t tile.Index, flags command.Flags) command.Cost {
	switch s.Map.WaterTileType(t) {
	case tile.WaterClear:
		if flags.Has(command.NoWater) {
			return command.Fail(command.ErrCannotBuildOnWater)
		}

		base := command.PriceClearWater
		if s.Map.IsCanal(t) {
			base = command.PriceClearCanal
		}

		// The sea along the outermost playable ring would instantly flood
		// back; only freeform-edge maps may clear it.
		if !s.FreeformEdges && !insideEdges(s.Map, t) {
			return command.Fail(command.ErrTooCloseToMapEdge)
		}

		if ret := s.EnsureNoVehicleOnGround(t); ret.Failed() {
			return ret
		}

		owner := company.ID(s.Map.Owner(t))
		if owner != company.Water && owner != company.None {
			if ret := s.CheckOwnership(t); ret.Failed() {
				return ret
			}
		}

		if flags.Has(command.Execute) {
			if s.Map.IsCanal(t) && owner.IsValid() {
				s.Companies.AddWater(owner, -1)
			}
			s.ClearSquare(t)
			markCanalsAndRiversAroundDirty(s, t)
			s.InvalidateWaterRegion(t)
		}
		return command.NewCost(base)

	case tile.WaterCoast:
		slope := s.Map.Slope(t)
		if ret := s.EnsureNoVehicleOnGround(t); ret.Failed() {
			return ret
		}
		if flags.Has(command.Execute) {
			s.ClearSquare(t)
			markCanalsAndRiversAroundDirty(s, t)
		}
		if slope.HasOneCornerRaised() {
			return command.NewCost(command.PriceClearWater)
		}
		return command.NewCost(command.PriceClearRough)

	case tile.WaterLock:
		if flags.Has(command.Auto) {
			return command.Fail(command.ErrMustBeDemolished)
		}
		// The flood engine never tears down locks.
		if s.Current() == company.Water {
			return command.Fail(command.ErrInvalid)
		}
		return removeLock(s, s.Map.LockMiddleTile(t), flags)

	case tile.WaterDepot:
		if flags.Has(command.Auto) {
			return command.Fail(command.ErrMustBeDemolished)
		}
		return removeShipDepot(s, s.Map.DepotNorthTile(t), flags)
	}
	return command.Fail(command.ErrInvalid)
}

// insideEdges reports whether the tile keeps a full playable tile between
// itself and the void border on every side.
func insideEdges(m *tile.Map, t tile.Index) bool {
	x, y := m.XY(t)
	return x >= 1 && x < m.Width()-2 && y >= 1 && y < m.Height()-2
}

func describeWater(s *tilecmd.State, t tile.Index) tilecmd.Desc {
	kind := "Water"
	switch s.Map.WaterTileType(t) {
	case tile.WaterClear:
		switch s.Map.WaterClass(t) {
		case tile.WaterCanal:
			kind = "Canal"
		case tile.WaterRiver:
			kind = "River"
		}
	case tile.WaterCoast:
		kind = "Coast or riverbank"
	case tile.WaterLock:
		kind = "Lock"
	case tile.WaterDepot:
		kind = "Ship depot"
	}
	return tilecmd.Desc{Kind: kind, Owner: company.ID(s.Map.Owner(t))}
}

// coastTracks is the track a ship can take across a one-corner coast tile,
// indexed by slope.
var coastTracks = [16]tile.TrackBits{
	tile.SlopeW: tile.TrackRight,
	tile.SlopeS: tile.TrackUpper,
	tile.SlopeE: tile.TrackLeft,
	tile.SlopeN: tile.TrackLower,
}

func trackStatusWater(s *tilecmd.State, t tile.Index, mode tile.TransportMode, side tile.DiagDirection) tile.TrackBits {
	if mode != tile.TransportWater {
		return tile.TrackNone
	}

	var ts tile.TrackBits
	switch s.Map.WaterTileType(t) {
	case tile.WaterClear:
		if s.Map.IsFlat(t) {
			ts = tile.TrackAll
		}
	case tile.WaterCoast:
		ts = coastTracks[s.Map.Slope(t)&0x0f]
	case tile.WaterLock:
		ts = tile.DiagTrackBits(s.Map.LockDirection(t))
	case tile.WaterDepot:
		ts = tile.AxisTrackBits(s.Map.DepotAxis(t))
	}

	// Tiles hugging the north-east or north-west map border lose the tracks
	// that would run along the border edge.
	x, y := s.Map.XY(t)
	if x == 0 {
		ts &^= tile.TrackX | tile.TrackUpper | tile.TrackRight
	}
	if y == 0 {
		ts &^= tile.TrackY | tile.TrackUpper | tile.TrackLeft
	}
	return ts
}

func clickWater(s *tilecmd.State, t tile.Index) bool {
	// Only depots have a window to open.
	return s.Map.IsShipDepot(t)
}

// changeOwnerWater moves a water tile to its buyer, or dissolves it when the
// company goes away without one. Lock middles carry the whole lock's count.
func changeOwnerWater(s *tilecmd.State, t tile.Index, oldOwner, newOwner company.ID) {
	if company.ID(s.Map.Owner(t)) != oldOwner {
		return
	}

	isLockMiddle := s.Map.IsLock(t) && s.Map.LockPart(t) == tile.LockMiddle
	if isLockMiddle {
		s.Companies.AddWater(oldOwner, -3*company.LockDepotTileFactor)
	}

	if newOwner != company.Invalid {
		if isLockMiddle {
			s.Companies.AddWater(newOwner, 3*company.LockDepotTileFactor)
		}
		if s.Map.WaterClass(t) == tile.WaterCanal && !isLockMiddle {
			s.Companies.AddWater(oldOwner, -1)
			s.Companies.AddWater(newOwner, 1)
		}
		if s.Map.IsShipDepot(t) {
			s.Companies.AddWater(oldOwner, -company.LockDepotTileFactor)
			s.Companies.AddWater(newOwner, company.LockDepotTileFactor)
		}
		s.Map.SetOwner(t, uint8(newOwner))
		return
	}

	// No buyer: depots are demolished, everything else falls to no one.
	if s.Map.IsShipDepot(t) {
		s.ClearTile(t, command.Execute|command.Bankrupt)
	}
	if company.ID(s.Map.Owner(t)) == oldOwner {
		if s.Map.WaterClass(t) == tile.WaterCanal && !isLockMiddle {
			s.Companies.AddWater(oldOwner, -1)
		}
		s.Map.SetOwner(t, uint8(company.None))
	}
}

func vehicleEnterWater(s *tilecmd.State, v *vehicle.Vehicle, t tile.Index, x, y int) tilecmd.VehicleEnterResult {
	return tilecmd.EnterNone
}

func foundationWater(s *tilecmd.State, t tile.Index, slope tile.Slope) tilecmd.Foundation {
	return tilecmd.FoundationNone
}

// terraformWater gates height changes under water: canals must be demolished
// first, everything else is cleared as part of the terraform.
func terraformWater(s *tilecmd.State, t tile.Index, flags command.Flags, zNew int, slopeNew tile.Slope) command.Cost {
	if s.Map.IsWater(t) && s.Map.IsCanal(t) {
		return command.Fail(command.ErrMustDemolishCanal)
	}
	return s.ClearTile(t, flags)
}
