package terrain

import (
	"tidelands/internal/command"
	"tidelands/internal/company"
	"tidelands/internal/tile"
	"tidelands/internal/tilecmd"
	"tidelands/internal/water"
)

func init() {
	tilecmd.Register(tile.Trees, &tilecmd.Procs{
		Draw:         drawTrees,
		SlopeZ:       groundSlopeZ,
		Clear:        clearTrees,
		Describe:     describeTrees,
		TrackStatus:  noTracks,
		TileLoop:     treesLoop,
		ChangeOwner:  changeOwnerGround,
		VehicleEnter: enterNothing,
		Foundation:   foundationNone,
		Terraform:    terraformClearable,
	})
}

func drawTrees(s *tilecmd.State, t tile.Index) uint8 {
	if s.Map.TreeGround(t) == tile.TreeGroundShore {
		return tilecmd.CellShoreTrees
	}
	return tilecmd.CellTrees
}

func clearTrees(s *tilecmd.State, t tile.Index, flags command.Flags) command.Cost {
	if flags.Has(command.Execute) {
		s.ClearSquare(t)
	}
	return command.NewCost(command.PriceClearTrees)
}

func describeTrees(s *tilecmd.State, t tile.Index) tilecmd.Desc {
	return tilecmd.Desc{Kind: "Trees", Owner: company.ID(s.Map.Owner(t))}
}

// treesLoop hands shore-ground trees to the water engine; they are dry-up
// tiles and may revert to grass. Growth of ordinary trees is not simulated.
func treesLoop(s *tilecmd.State, t tile.Index) {
	if s.Map.TreeGround(t) == tile.TreeGroundShore {
		water.TileLoop(s, t)
	}
}

// terraformClearable prices a terraform over removable scenery as the cost
// of clearing it.
func terraformClearable(s *tilecmd.State, t tile.Index, flags command.Flags, zNew int, slopeNew tile.Slope) command.Cost {
	return s.ClearTile(t, flags)
}
