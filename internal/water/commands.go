package water

import (
	"tidelands/internal/command"
	"tidelands/internal/company"
	"tidelands/internal/tile"
	"tidelands/internal/tilecmd"
)

// depotDiagDir returns the direction from the north depot tile to the south
// one for the given orientation.
func depotDiagDir(axis tile.Axis) tile.DiagDirection {
	if axis == tile.AxisX {
		return tile.DiagSW
	}
	return tile.DiagSE
}

// BuildShipDepot builds a two-tile ship depot over water, t being the
// northern tile. Both tiles must be flat water ground; canal tiles already
// owned by the builder are reused without the extra canal infrastructure
// point.
func BuildShipDepot(s *tilecmd.State, t tile.Index, axis tile.Axis, flags command.Flags) command.Cost {
	if !s.Map.Valid(t) {
		return command.Fail(command.ErrInvalid)
	}
	t2 := s.Map.NeighbourDiag(t, depotDiagDir(axis))
	if t2 == tile.InvalidIndex {
		return command.Fail(command.ErrInvalid)
	}

	if !s.Map.HasWaterGround(t) || !s.Map.HasWaterGround(t2) {
		return command.Fail(command.ErrMustBeBuiltOnWater)
	}
	if s.Map.BridgeAbove(t) || s.Map.BridgeAbove(t2) {
		return command.Fail(command.ErrMustDemolishBridge)
	}
	if !s.Map.IsFlat(t) || !s.Map.IsFlat(t2) {
		return command.Fail(command.ErrSiteUnsuitable)
	}

	wc1 := s.Map.WaterClass(t)
	wc2 := s.Map.WaterClass(t2)
	cost := command.NewCost(command.PriceBuildDepot)

	// Clearing open water is free for the builder; anything else on the
	// two tiles is charged.
	addCost := !s.Map.IsWater(t)
	ret := s.ClearTile(t, flags|command.Auto)
	if ret.Failed() {
		return ret
	}
	if addCost {
		cost.AddAmount(ret.Amount())
	}
	addCost = !s.Map.IsWater(t2)
	ret = s.ClearTile(t2, flags|command.Auto)
	if ret.Failed() {
		return ret
	}
	if addCost {
		cost.AddAmount(ret.Amount())
	}

	if flags.Has(command.Execute) {
		c := s.Current()
		newInfra := 2 * company.LockDepotTileFactor
		// A reused canal tile keeps counting as the builder's canal; a
		// cleared or foreign one adds a fresh point.
		if wc1 == tile.WaterCanal && !ownCanalRemains(s, t) {
			newInfra++
		}
		if wc2 == tile.WaterCanal && !ownCanalRemains(s, t2) {
			newInfra++
		}
		s.Companies.AddWater(c, newInfra)

		s.Map.MakeShipDepot(t, uint8(c), tile.DepotNorth, axis, wc1)
		s.Map.MakeShipDepot(t2, uint8(c), tile.DepotSouth, axis, wc2)
		CheckForDockingTile(s, t)
		CheckForDockingTile(s, t2)
		s.TileDirty(t)
		s.TileDirty(t2)
	}
	return cost
}

// ownCanalRemains reports whether the tile is still a canal owned by the
// current company after the preparatory clears ran.
func ownCanalRemains(s *tilecmd.State, t tile.Index) bool {
	return s.Map.IsCanal(t) && company.ID(s.Map.Owner(t)) == s.Current()
}

// removeShipDepot removes both tiles of a ship depot, restoring the water
// classes the depot was built over. ForceClearTile leaves the commanded tile
// as bare land instead.
func removeShipDepot(s *tilecmd.State, t tile.Index, flags command.Flags) command.Cost {
	if !s.Map.IsShipDepot(t) {
		return command.Fail(command.ErrInvalid)
	}
	if ret := s.CheckOwnership(t); ret.Failed() {
		return ret
	}
	t2 := s.Map.OtherDepotTile(t)

	if !flags.Has(command.Bankrupt) {
		if ret := s.EnsureNoVehicleOnGround(t); ret.Failed() {
			return ret
		}
		if ret := s.EnsureNoVehicleOnGround(t2); ret.Failed() {
			return ret
		}
	}

	if flags.Has(command.Execute) {
		doClear := flags.Has(command.ForceClearTile)
		owner1 := company.ID(s.Map.Owner(t))
		owner2 := company.ID(s.Map.Owner(t2))

		s.Companies.AddWater(owner1, -2*company.LockDepotTileFactor)
		// Force-clearing a canal-based half destroys that canal with it.
		if doClear && s.Map.WaterClass(t) == tile.WaterCanal {
			s.Companies.AddWater(owner1, -1)
		}

		if doClear {
			s.ClearSquare(t)
		} else {
			MakeWaterKeepingClass(s, t, owner1)
		}
		MakeWaterKeepingClass(s, t2, owner2)
		s.TileDirty(t)
		s.TileDirty(t2)
	}
	return command.NewCost(command.PriceClearDepot)
}

// MakeWaterKeepingClass rebuilds a tile as the plain water it once was,
// degrading classes the new slope can no longer hold: sloped canals vanish,
// rivers survive only on inclines, and raised sea becomes canal.
func MakeWaterKeepingClass(s *tilecmd.State, t tile.Index, owner company.ID) {
	wc := s.Map.WaterClass(t)
	slope, z := s.Map.SlopeZ(t)

	if !slope.IsFlat() {
		if wc == tile.WaterCanal {
			s.Companies.AddWater(owner, -1)
			wc = tile.WaterInvalid
		}
		if wc != tile.WaterRiver || !slope.IsInclined() {
			wc = tile.WaterInvalid
		}
	}
	if wc == tile.WaterSea && z > 0 {
		s.Companies.AddWater(owner, 1)
		wc = tile.WaterCanal
	}

	s.ClearSquare(t)

	switch wc {
	case tile.WaterSea:
		s.Map.MakeSea(t)
	case tile.WaterCanal:
		s.Map.MakeCanal(t, uint8(owner), s.Rand.Uint8n(4))
	case tile.WaterRiver:
		s.Map.MakeRiver(t, s.Rand.Uint8n(4))
	}
	if wc != tile.WaterInvalid {
		CheckForDockingTile(s, t)
	}
	s.TileDirty(t)
}

// BuildLock builds a lock on an inclined water-adjacent slope. The middle
// tile decides the direction; both ends must be flat.
func BuildLock(s *tilecmd.State, t tile.Index, flags command.Flags) command.Cost {
	dir := s.Map.Slope(t).InclinedDirection()
	if dir == tile.InvalidDiagDir {
		return command.Fail(command.ErrLandSlopedWrongly)
	}
	return doBuildLock(s, t, dir, flags)
}

func doBuildLock(s *tilecmd.State, t tile.Index, dir tile.DiagDirection, flags command.Flags) command.Cost {
	upper := s.Map.NeighbourDiag(t, dir)
	lower := s.Map.NeighbourDiag(t, dir.Reverse())
	if upper == tile.InvalidIndex || lower == tile.InvalidIndex {
		return command.Fail(command.ErrTooCloseToMapEdge)
	}

	if ret := s.EnsureNoVehicleOnGround(t); ret.Failed() {
		return ret
	}
	if ret := s.EnsureNoVehicleOnGround(upper); ret.Failed() {
		return ret
	}
	if ret := s.EnsureNoVehicleOnGround(lower); ret.Failed() {
		return ret
	}

	wcMiddle := tile.WaterCanal
	if s.Map.HasWaterGround(t) {
		wcMiddle = s.Map.WaterClass(t)
	}

	cost := command.NewCost(0)
	ret := s.ClearTile(t, flags)
	if ret.Failed() {
		return ret
	}
	cost.Add(ret)

	// Dry lock ends are dug out as canal stubs and charged as such.
	lowerWasWater := s.Map.IsWater(lower)
	if !lowerWasWater {
		ret = s.ClearTile(lower, flags)
		if ret.Failed() {
			return ret
		}
		cost.Add(ret)
		cost.AddAmount(command.PriceBuildCanal)
	}
	if !s.Map.IsFlat(lower) {
		return command.Fail(command.ErrLandSlopedWrongly)
	}
	wcLower := tile.WaterCanal
	if lowerWasWater {
		wcLower = s.Map.WaterClass(lower)
	}

	upperWasWater := s.Map.IsWater(upper)
	if !upperWasWater {
		ret = s.ClearTile(upper, flags)
		if ret.Failed() {
			return ret
		}
		cost.Add(ret)
		cost.AddAmount(command.PriceBuildCanal)
	}
	if !s.Map.IsFlat(upper) {
		return command.Fail(command.ErrLandSlopedWrongly)
	}
	wcUpper := tile.WaterCanal
	if upperWasWater {
		wcUpper = s.Map.WaterClass(upper)
	}

	if s.Map.BridgeAbove(t) || s.Map.BridgeAbove(upper) || s.Map.BridgeAbove(lower) {
		return command.Fail(command.ErrMustDemolishBridge)
	}

	if flags.Has(command.Execute) {
		c := s.Current()
		if c.IsValid() {
			extra := 3 * company.LockDepotTileFactor
			if !lowerWasWater {
				extra++
			}
			if !upperWasWater {
				extra++
			}
			s.Companies.AddWater(c, extra)
		}
		s.Map.MakeLock(t, uint8(c), dir, wcLower, wcUpper, wcMiddle)
		CheckForDockingTile(s, lower)
		CheckForDockingTile(s, upper)
		markCanalsAndRiversAroundDirty(s, lower)
		markCanalsAndRiversAroundDirty(s, upper)
		s.TileDirty(t)
		s.TileDirty(lower)
		s.TileDirty(upper)
		s.InvalidateWaterRegion(lower)
		s.InvalidateWaterRegion(upper)
	}
	cost.AddAmount(command.PriceBuildLock)
	return cost
}

// removeLock removes the lock whose middle tile is t, restoring the end
// tiles to the water they were built over.
func removeLock(s *tilecmd.State, t tile.Index, flags command.Flags) command.Cost {
	if company.ID(s.Map.Owner(t)) != company.None {
		if ret := s.CheckOwnership(t); ret.Failed() {
			return ret
		}
	}
	dir := s.Map.LockDirection(t)
	upper := s.Map.NeighbourDiag(t, dir)
	lower := s.Map.NeighbourDiag(t, dir.Reverse())

	if ret := s.EnsureNoVehicleOnGround(t); ret.Failed() {
		return ret
	}
	if ret := s.EnsureNoVehicleOnGround(upper); ret.Failed() {
		return ret
	}
	if ret := s.EnsureNoVehicleOnGround(lower); ret.Failed() {
		return ret
	}

	if flags.Has(command.Execute) {
		owner := company.ID(s.Map.Owner(t))
		if owner.IsValid() {
			s.Companies.AddWater(owner, -3*company.LockDepotTileFactor)
		}
		if s.Map.WaterClass(t) == tile.WaterRiver {
			s.Map.MakeRiver(t, s.Rand.Uint8n(4))
			s.ClearNeighbourNonFlooding(t)
			s.TileDirty(t)
		} else {
			s.ClearSquare(t)
		}
		MakeWaterKeepingClass(s, upper, company.ID(s.Map.Owner(upper)))
		MakeWaterKeepingClass(s, lower, company.ID(s.Map.Owner(lower)))
		markCanalsAndRiversAroundDirty(s, t)
		markCanalsAndRiversAroundDirty(s, upper)
		markCanalsAndRiversAroundDirty(s, lower)
	}
	return command.NewCost(command.PriceClearLock)
}

// BuildCanal digs canals (or, in the editor, rivers and raised sea) over the
// area spanned by start and end. Own canal tiles inside the area are skipped;
// an area of nothing but skips fails with "already built".
func BuildCanal(s *tilecmd.State, start, end tile.Index, wc tile.WaterClass, diagonal bool, flags command.Flags) command.Cost {
	if !s.Map.Valid(start) || !s.Map.Valid(end) || !tile.IsValidWaterClass(wc) {
		return command.Fail(command.ErrInvalid)
	}
	// Only canals are player-buildable; rivers and sea are editor terrain.
	if wc != tile.WaterCanal && s.Mode != tilecmd.ModeEditor {
		return command.Fail(command.ErrInvalid)
	}

	cost := command.NewCost(0)
	each := s.Map.RectEach
	if diagonal {
		each = s.Map.DiagEach
	}

	var failed command.Cost
	each(start, end, func(cur tile.Index) bool {
		slope := s.Map.Slope(cur)
		if !slope.IsFlat() && (wc != tile.WaterRiver || !slope.IsInclined()) {
			failed = command.Fail(command.ErrFlatLandRequired)
			return false
		}

		water := s.Map.IsWater(cur)
		// Outside the editor, own or ownerless canal already in the area
		// is simply kept.
		if water && s.Map.IsCanal(cur) && s.Mode != tilecmd.ModeEditor {
			o := company.ID(s.Map.Owner(cur))
			if o == s.Current() || o == company.None {
				return true
			}
		}

		ret := s.ClearTile(cur, flags)
		if ret.Failed() {
			failed = ret
			return false
		}
		if !water {
			cost.Add(ret)
		}

		if flags.Has(command.Execute) {
			// The clear may have restored a canal under a structure; its
			// point moves from the old owner to the rebuilt tile.
			if s.Map.IsCanal(cur) {
				if o := company.ID(s.Map.Owner(cur)); o.IsValid() {
					s.Companies.AddWater(o, -1)
				}
			}
			switch wc {
			case tile.WaterRiver:
				s.Map.MakeRiver(cur, s.Rand.Uint8n(4))
			case tile.WaterSea:
				if s.Map.CornerHeight(cur) == 0 {
					s.Map.MakeSea(cur)
					break
				}
				fallthrough
			default:
				c := s.Current()
				s.Map.MakeCanal(cur, uint8(c), s.Rand.Uint8n(4))
				if c.IsValid() {
					s.Companies.AddWater(c, 1)
				}
			}
			s.ClearNeighbourNonFlooding(cur)
			s.TileDirty(cur)
			markCanalsAndRiversAroundDirty(s, cur)
			CheckForDockingTile(s, cur)
			s.InvalidateWaterRegion(cur)
		}
		cost.AddAmount(command.PriceBuildCanal)
		return true
	})
	if failed.Failed() {
		return failed
	}
	if cost.Amount() == 0 {
		return command.Fail(command.ErrAlreadyBuilt)
	}
	return cost
}
