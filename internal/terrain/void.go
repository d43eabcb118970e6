package terrain

import (
	"tidelands/internal/command"
	"tidelands/internal/company"
	"tidelands/internal/tile"
	"tidelands/internal/tilecmd"
)

func init() {
	tilecmd.Register(tile.Void, &tilecmd.Procs{
		Draw:         drawVoid,
		SlopeZ:       groundSlopeZ,
		Clear:        clearVoid,
		Describe:     describeVoid,
		TrackStatus:  noTracks,
		ChangeOwner:  func(*tilecmd.State, tile.Index, company.ID, company.ID) {},
		VehicleEnter: enterNothing,
		Foundation:   foundationNone,
		Terraform:    terraformVoid,
	})
}

func drawVoid(s *tilecmd.State, t tile.Index) uint8 { return tilecmd.CellVoid }

func clearVoid(s *tilecmd.State, t tile.Index, flags command.Flags) command.Cost {
	return command.Fail(command.ErrInvalid)
}

func describeVoid(s *tilecmd.State, t tile.Index) tilecmd.Desc {
	return tilecmd.Desc{Kind: "Map edge", Owner: company.None}
}

func terraformVoid(s *tilecmd.State, t tile.Index, flags command.Flags, zNew int, slopeNew tile.Slope) command.Cost {
	return command.Fail(command.ErrTooCloseToMapEdge)
}
