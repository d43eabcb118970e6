// Package terrain registers the callback sets for the land tile types: bare
// ground, trees, plain rail, the void border and the waterside structures.
// Tree and rail tiles that have been part-flooded hand their periodic step to
// the water engine.
package terrain

import (
	"tidelands/internal/command"
	"tidelands/internal/company"
	"tidelands/internal/tile"
	"tidelands/internal/tilecmd"
	"tidelands/internal/vehicle"
)

func init() {
	tilecmd.Register(tile.Clear, &tilecmd.Procs{
		Draw:         drawClear,
		SlopeZ:       groundSlopeZ,
		Clear:        clearClear,
		Describe:     describeClear,
		TrackStatus:  noTracks,
		ChangeOwner:  changeOwnerGround,
		VehicleEnter: enterNothing,
		Foundation:   foundationNone,
		Terraform:    terraformClear,
	})
}

func drawClear(s *tilecmd.State, t tile.Index) uint8 {
	switch s.Map.ClearGround(t) {
	case tile.GroundRough:
		return tilecmd.CellRough
	case tile.GroundRocks:
		return tilecmd.CellRocks
	case tile.GroundFields:
		return tilecmd.CellFields
	}
	return tilecmd.CellGrass
}

// groundSlopeZ is the surface height of an unbuilt tile: its base height.
func groundSlopeZ(s *tilecmd.State, t tile.Index, x, y int) int {
	_, z := s.Map.SlopeZ(t)
	return z
}

var clearPrices = [...]command.Money{
	tile.GroundGrass:  command.PriceClearGrass,
	tile.GroundRough:  command.PriceClearRough,
	tile.GroundRocks:  command.PriceClearRocks,
	tile.GroundFields: command.PriceClearFields,
	tile.GroundSnow:   command.PriceClearRough,
	tile.GroundDesert: command.PriceClearRough,
}

func clearClear(s *tilecmd.State, t tile.Index, flags command.Flags) command.Cost {
	cost := command.NewCost(0)
	// Freshly regrown grass is free to clear.
	if s.Map.ClearGround(t) != tile.GroundGrass || s.Map.ClearDensity(t) != 0 {
		cost.AddAmount(clearPrices[s.Map.ClearGround(t)])
	}
	if flags.Has(command.Execute) {
		s.ClearSquare(t)
	}
	return cost
}

func describeClear(s *tilecmd.State, t tile.Index) tilecmd.Desc {
	kind := "Grass"
	switch s.Map.ClearGround(t) {
	case tile.GroundRough:
		kind = "Rough land"
	case tile.GroundRocks:
		kind = "Rocks"
	case tile.GroundFields:
		kind = "Fields"
	case tile.GroundSnow:
		kind = "Snow-covered land"
	case tile.GroundDesert:
		kind = "Desert"
	}
	return tilecmd.Desc{Kind: kind, Owner: company.ID(s.Map.Owner(t))}
}

func terraformClear(s *tilecmd.State, t tile.Index, flags command.Flags, zNew int, slopeNew tile.Slope) command.Cost {
	return command.NewCost(0)
}

// Shared neutral slots.

func noTracks(s *tilecmd.State, t tile.Index, mode tile.TransportMode, side tile.DiagDirection) tile.TrackBits {
	return tile.TrackNone
}

func enterNothing(s *tilecmd.State, v *vehicle.Vehicle, t tile.Index, x, y int) tilecmd.VehicleEnterResult {
	return tilecmd.EnterNone
}

func foundationNone(s *tilecmd.State, t tile.Index, slope tile.Slope) tilecmd.Foundation {
	return tilecmd.FoundationNone
}

// changeOwnerGround drops unowned-able ground back to no one.
func changeOwnerGround(s *tilecmd.State, t tile.Index, oldOwner, newOwner company.ID) {
	if company.ID(s.Map.Owner(t)) != oldOwner {
		return
	}
	if newOwner != company.Invalid {
		s.Map.SetOwner(t, uint8(newOwner))
		return
	}
	s.Map.SetOwner(t, uint8(company.None))
}
