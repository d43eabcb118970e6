package terrain

import (
	"testing"

	"tidelands/internal/command"
	"tidelands/internal/company"
	"tidelands/internal/tile"
	"tidelands/internal/tilecmd"
	"tidelands/internal/vehicle"

	"github.com/stretchr/testify/require"
)

func newState(w, h int) *tilecmd.State {
	m := tile.NewMap(w, h)
	for y := 0; y < h-1; y++ {
		for x := 0; x < w-1; x++ {
			m.MakeClear(m.TileXY(x, y), tile.GroundGrass, 3)
		}
	}
	return tilecmd.NewState(m)
}

func TestClearGrassPrices(t *testing.T) {
	s := newState(8, 8)
	tl := s.Map.TileXY(3, 3)

	ret := s.ClearTile(tl, 0)
	require.Equal(t, command.PriceClearGrass, ret.Amount())

	// Freshly regrown grass is free to clear.
	s.Map.MakeClear(tl, tile.GroundGrass, 0)
	ret = s.ClearTile(tl, 0)
	require.Equal(t, command.Money(0), ret.Amount())

	s.Map.MakeClear(tl, tile.GroundRocks, 0)
	ret = s.ClearTile(tl, 0)
	require.Equal(t, command.PriceClearRocks, ret.Amount())

	ret = s.ClearTile(tl, command.Execute)
	require.True(t, ret.Succeeded())
	require.Equal(t, tile.GroundGrass, s.Map.ClearGround(tl))
}

func TestClearRail(t *testing.T) {
	s := newState(8, 8)
	rail := s.Map.TileXY(3, 3)
	s.Map.MakeRail(rail, 1, tile.TrackX, tile.RailGroundGrass)

	s.SetCurrent(2)
	ret := s.ClearTile(rail, command.Execute)
	require.ErrorIs(t, ret.Err(), command.ErrOwnedByAnother)

	// The flood engine tears rail up no matter who owns it.
	s.RunAs(company.Water, func() {
		ret = s.ClearTile(rail, command.Execute)
	})
	require.True(t, ret.Succeeded())
	require.Equal(t, command.PriceClearRail, ret.Amount())
	require.True(t, s.Map.Is(rail, tile.Clear))
}

func TestClearRailBlockedByTrain(t *testing.T) {
	s := newState(8, 8)
	rail := s.Map.TileXY(3, 3)
	s.Map.MakeRail(rail, 1, tile.TrackX, tile.RailGroundGrass)
	s.Vehicles.Place(vehicle.Train, rail, 0, 1)

	s.SetCurrent(1)
	ret := s.ClearTile(rail, command.Execute)
	require.ErrorIs(t, ret.Err(), command.ErrVehicleInTheWay)
}

func TestClearFloodedRailInvalidatesRegion(t *testing.T) {
	s := newState(8, 8)
	obs := &countingObserver{}
	s.Observer = obs

	rail := s.Map.TileXY(3, 3)
	s.Map.MakeRail(rail, 1, tile.TrackLower, tile.RailGroundWater)

	s.SetCurrent(1)
	ret := s.ClearTile(rail, command.Execute)
	require.True(t, ret.Succeeded())
	require.Equal(t, 1, obs.resignal, "removing track re-evaluates signals around it")
	require.Equal(t, 1, obs.region, "the wet half was part of the water network")
}

func TestFoundationRail(t *testing.T) {
	s := newState(8, 8)
	rail := s.Map.TileXY(3, 3)

	// Flat track needs nothing.
	s.Map.MakeRail(rail, 1, tile.TrackX, tile.RailGroundGrass)
	require.Equal(t, tilecmd.FoundationNone, tilecmd.GetFoundation(s, rail, tile.SlopeFlat))

	// Straight track along a matching incline rides the natural ground.
	require.Equal(t, tilecmd.FoundationNone, tilecmd.GetFoundation(s, rail, tile.SlopeNE))

	// Across the incline it is leveled up.
	s.Map.MakeRail(rail, 1, tile.TrackY, tile.RailGroundGrass)
	require.Equal(t, tilecmd.FoundationLeveled, tilecmd.GetFoundation(s, rail, tile.SlopeNE))

	// A lone chord on the raised corner of a one-corner slope stays low,
	// which is what leaves it floodable.
	s.Map.MakeRail(rail, 1, tile.TrackLower, tile.RailGroundGrass)
	require.Equal(t, tilecmd.FoundationNone, tilecmd.GetFoundation(s, rail, tile.SlopeS))
	require.Equal(t, tilecmd.FoundationLeveled, tilecmd.GetFoundation(s, rail, tile.SlopeN))
}

func TestStationsRefuseAutomaticClear(t *testing.T) {
	s := newState(8, 8)
	st := s.Map.TileXY(3, 3)
	s.Map.MakeStation(st, uint8(company.None), tile.StationBuoy, tile.WaterSea)

	ret := s.ClearTile(st, command.Execute|command.Auto)
	require.ErrorIs(t, ret.Err(), command.ErrMustBeDemolished)
	require.True(t, s.Map.Is(st, tile.Station), "floods stop at a station's doorstep")
}

func TestStationCargoAndTracks(t *testing.T) {
	s := newState(10, 10)

	rig := s.Map.TileXY(3, 3)
	s.Map.MakeStation(rig, uint8(company.None), tile.StationOilRig, tile.WaterSea)
	produced := tilecmd.CargoArray{}
	tilecmd.AddProducedCargo(s, rig, produced)
	require.Equal(t, uint(1), produced[CargoOil])
	require.Equal(t, uint(1), produced[CargoPassengers])

	dock := s.Map.TileXY(5, 3)
	s.Map.MakeStation(dock, 1, tile.StationDock, tile.WaterInvalid)
	accepted := tilecmd.CargoArray{}
	tilecmd.AddAcceptedCargo(s, dock, accepted)
	require.Equal(t, uint(1), accepted[CargoGoods])

	// Ships sail across buoys and dock water, not across the dock building.
	buoy := s.Map.TileXY(7, 3)
	s.Map.MakeStation(buoy, uint8(company.None), tile.StationBuoy, tile.WaterSea)
	require.Equal(t, tile.TrackAll, tilecmd.GetTileTrackStatus(s, buoy, tile.TransportWater, tile.InvalidDiagDir))
	require.Equal(t, tile.TrackNone, tilecmd.GetTileTrackStatus(s, dock, tile.TransportWater, tile.InvalidDiagDir))

	ship := &vehicle.Vehicle{Kind: vehicle.Ship}
	require.Equal(t, tilecmd.EnterStation, tilecmd.VehicleEnterTile(s, ship, buoy, 0, 0))
	train := &vehicle.Vehicle{Kind: vehicle.Train}
	require.Equal(t, tilecmd.EnterNone, tilecmd.VehicleEnterTile(s, train, buoy, 0, 0))
}

func TestObjectClearing(t *testing.T) {
	s := newState(8, 8)

	obj := s.Map.TileXY(3, 3)
	s.Map.MakeObject(obj, 1, tile.WaterInvalid)

	ret := s.ClearTile(obj, command.Auto)
	require.ErrorIs(t, ret.Err(), command.ErrMustBeDemolished)

	s.SetCurrent(2)
	ret = s.ClearTile(obj, command.Execute)
	require.ErrorIs(t, ret.Err(), command.ErrOwnedByAnother)

	// The flood engine is exempt from ownership.
	s.RunAs(company.Water, func() {
		ret = s.ClearTile(obj, command.Execute)
	})
	require.True(t, ret.Succeeded())
	require.True(t, s.Map.Is(obj, tile.Clear))

	// An object standing on water dissolves back into it.
	wet := s.Map.TileXY(5, 5)
	s.Map.MakeObject(wet, uint8(company.None), tile.WaterSea)
	ret = s.ClearTile(wet, command.Execute)
	require.True(t, ret.Succeeded())
	require.True(t, s.Map.IsSea(wet))
}

func TestChangeOwnerDissolvesStructures(t *testing.T) {
	s := newState(8, 8)

	// A sold structure moves to the buyer.
	obj := s.Map.TileXY(3, 3)
	s.Map.MakeObject(obj, 1, tile.WaterInvalid)
	tilecmd.ChangeTileOwner(s, obj, 1, 2)
	require.Equal(t, uint8(2), s.Map.Owner(obj))

	// Without a buyer it dissolves into what it stood on.
	wet := s.Map.TileXY(5, 5)
	s.Map.MakeObject(wet, 2, tile.WaterSea)
	tilecmd.ChangeTileOwner(s, wet, 2, company.Invalid)
	require.True(t, s.Map.IsSea(wet))

	dry := s.Map.TileXY(6, 3)
	s.Map.MakeObject(dry, 2, tile.WaterInvalid)
	tilecmd.ChangeTileOwner(s, dry, 2, company.Invalid)
	require.True(t, s.Map.Is(dry, tile.Clear))
}

func TestVoidTiles(t *testing.T) {
	s := newState(8, 8)
	void := s.Map.TileXY(7, 7)
	require.True(t, s.Map.Is(void, tile.Void))

	ret := s.ClearTile(void, command.Execute)
	require.ErrorIs(t, ret.Err(), command.ErrInvalid)

	ret = tilecmd.TerraformTile(s, void, command.Execute, 1, tile.SlopeFlat)
	require.ErrorIs(t, ret.Err(), command.ErrTooCloseToMapEdge)

	require.Equal(t, "Map edge", tilecmd.GetTileDesc(s, void).Kind)
}

type countingObserver struct {
	dirty, resignal, region int
}

func (o *countingObserver) TileDirty(tile.Index)              { o.dirty++ }
func (o *countingObserver) ResignalArea(tile.Index)           { o.resignal++ }
func (o *countingObserver) WaterRegionInvalidated(tile.Index) { o.region++ }
