package terrain

import (
	"tidelands/internal/command"
	"tidelands/internal/company"
	"tidelands/internal/tile"
	"tidelands/internal/tilecmd"
	"tidelands/internal/vehicle"
	"tidelands/internal/water"
)

// Cargo types the waterside structures trade in.
const (
	CargoPassengers tilecmd.Cargo = iota
	CargoGoods
	CargoOil
)

func init() {
	tilecmd.Register(tile.Station, &tilecmd.Procs{
		Draw:          drawStation,
		SlopeZ:        groundSlopeZ,
		Clear:         clearImmovable,
		AcceptedCargo: stationAccepted,
		Describe:      describeStation,
		TrackStatus:   trackStatusStation,
		Click:         clickHandled,
		ChangeOwner:   changeOwnerStructure,
		ProducedCargo: stationProduced,
		VehicleEnter:  enterStation,
		Foundation:    foundationNone,
		Terraform:     terraformImmovable,
	})
	tilecmd.Register(tile.Industry, &tilecmd.Procs{
		Draw:          drawIndustry,
		SlopeZ:        groundSlopeZ,
		Clear:         clearImmovable,
		AcceptedCargo: industryAccepted,
		Describe:      describeIndustry,
		TrackStatus:   noTracks,
		Animate:       animateIndustry,
		ChangeOwner:   func(*tilecmd.State, tile.Index, company.ID, company.ID) {},
		ProducedCargo: industryProduced,
		VehicleEnter:  enterNothing,
		Foundation:    foundationNone,
		Terraform:     terraformImmovable,
	})
	tilecmd.Register(tile.Object, &tilecmd.Procs{
		Draw:         drawObject,
		SlopeZ:       groundSlopeZ,
		Clear:        clearObject,
		Describe:     describeObject,
		TrackStatus:  noTracks,
		ChangeOwner:  changeOwnerStructure,
		VehicleEnter: enterNothing,
		Foundation:   foundationObject,
		Terraform:    terraformClearable,
	})
}

func drawStation(s *tilecmd.State, t tile.Index) uint8  { return tilecmd.CellStation }
func drawIndustry(s *tilecmd.State, t tile.Index) uint8 { return tilecmd.CellIndustry }
func drawObject(s *tilecmd.State, t tile.Index) uint8   { return tilecmd.CellObject }

// clearImmovable rejects clears outright: stations and industries come down
// through their own demolition commands, never as a side effect. This is
// also what stops a flood at their doorstep.
func clearImmovable(s *tilecmd.State, t tile.Index, flags command.Flags) command.Cost {
	return command.Fail(command.ErrMustBeDemolished)
}

func terraformImmovable(s *tilecmd.State, t tile.Index, flags command.Flags, zNew int, slopeNew tile.Slope) command.Cost {
	return command.Fail(command.ErrMustBeDemolished)
}

func describeStation(s *tilecmd.State, t tile.Index) tilecmd.Desc {
	kind := "Station"
	switch s.Map.StationKind(t) {
	case tile.StationBuoy:
		kind = "Buoy"
	case tile.StationDock, tile.StationDockWaterPart:
		kind = "Dock"
	case tile.StationOilRig:
		kind = "Oil rig"
	}
	return tilecmd.Desc{Kind: kind, Owner: company.ID(s.Map.Owner(t))}
}

func describeIndustry(s *tilecmd.State, t tile.Index) tilecmd.Desc {
	return tilecmd.Desc{Kind: "Industry", Owner: company.None}
}

func describeObject(s *tilecmd.State, t tile.Index) tilecmd.Desc {
	return tilecmd.Desc{Kind: "Object", Owner: company.ID(s.Map.Owner(t))}
}

func trackStatusStation(s *tilecmd.State, t tile.Index, mode tile.TransportMode, side tile.DiagDirection) tile.TrackBits {
	if mode != tile.TransportWater {
		return tile.TrackNone
	}
	switch s.Map.StationKind(t) {
	case tile.StationBuoy, tile.StationDockWaterPart:
		return tile.TrackAll
	}
	return tile.TrackNone
}

func clickHandled(s *tilecmd.State, t tile.Index) bool { return true }

func stationAccepted(s *tilecmd.State, t tile.Index, acceptance tilecmd.CargoArray) {
	if s.Map.IsDock(t) {
		acceptance[CargoGoods]++
	}
}

func stationProduced(s *tilecmd.State, t tile.Index, produced tilecmd.CargoArray) {
	if s.Map.IsOilRig(t) {
		produced[CargoOil]++
		produced[CargoPassengers]++
	}
}

func industryAccepted(s *tilecmd.State, t tile.Index, acceptance tilecmd.CargoArray) {
	acceptance[CargoPassengers]++
}

func industryProduced(s *tilecmd.State, t tile.Index, produced tilecmd.CargoArray) {
	produced[CargoGoods]++
}

func animateIndustry(s *tilecmd.State, t tile.Index) {
	s.TileDirty(t)
}

func enterStation(s *tilecmd.State, v *vehicle.Vehicle, t tile.Index, x, y int) tilecmd.VehicleEnterResult {
	if v.Kind == vehicle.Ship {
		return tilecmd.EnterStation
	}
	return tilecmd.EnterNone
}

// changeOwnerStructure transfers a company structure, or dissolves it back
// into whatever ground it stood on when the company ends without a buyer.
func changeOwnerStructure(s *tilecmd.State, t tile.Index, oldOwner, newOwner company.ID) {
	if company.ID(s.Map.Owner(t)) != oldOwner {
		return
	}
	if newOwner != company.Invalid {
		s.Map.SetOwner(t, uint8(newOwner))
		return
	}
	if s.Map.OnWater(t) {
		water.MakeWaterKeepingClass(s, t, oldOwner)
		return
	}
	s.ClearSquare(t)
}

func clearObject(s *tilecmd.State, t tile.Index, flags command.Flags) command.Cost {
	if flags.Has(command.Auto) {
		return command.Fail(command.ErrMustBeDemolished)
	}
	// Floods take objects regardless of who owns them.
	owner := company.ID(s.Map.Owner(t))
	if owner != company.None && s.Current() != company.Water {
		if ret := s.CheckOwnership(t); ret.Failed() {
			return ret
		}
	}
	if flags.Has(command.Execute) {
		if s.Map.OnWater(t) {
			water.MakeWaterKeepingClass(s, t, company.ID(s.Map.Owner(t)))
		} else {
			s.ClearSquare(t)
		}
	}
	return command.NewCost(command.PriceClearRough)
}

func foundationObject(s *tilecmd.State, t tile.Index, slope tile.Slope) tilecmd.Foundation {
	if slope.IsFlat() {
		return tilecmd.FoundationNone
	}
	return tilecmd.FoundationLeveled
}
