package tilecmd

import (
	"testing"

	"tidelands/internal/command"
	"tidelands/internal/company"
	"tidelands/internal/tile"
	"tidelands/internal/vehicle"

	"github.com/stretchr/testify/require"
)

// The land and water packages register the live callback sets; this test
// binary wires its own minimal ones so dispatch can be observed in isolation.
func init() {
	Register(tile.Clear, &Procs{
		Draw:       func(s *State, t tile.Index) uint8 { return CellGrass },
		Clear:      func(s *State, t tile.Index, flags command.Flags) command.Cost { return command.NewCost(1) },
		Foundation: func(s *State, t tile.Index, slope tile.Slope) Foundation { return FoundationNone },
	})
	Register(tile.Railway, &Procs{
		Draw: func(s *State, t tile.Index) uint8 { return CellRail },
		Foundation: func(s *State, t tile.Index, slope tile.Slope) Foundation {
			if slope.IsFlat() {
				return FoundationNone
			}
			return FoundationLeveled
		},
	})
}

func newTestState() *State {
	m := tile.NewMap(8, 8)
	for y := 0; y < 7; y++ {
		for x := 0; x < 7; x++ {
			m.MakeClear(m.TileXY(x, y), tile.GroundGrass, 3)
		}
	}
	return NewState(m)
}

func TestRegisterRejectsBadWiring(t *testing.T) {
	require.Panics(t, func() { Register(tile.Road, nil) })

	Register(tile.Road, &Procs{})
	require.True(t, Registered(tile.Road))
	require.Panics(t, func() { Register(tile.Road, &Procs{}) }, "each type registers exactly once")
}

func TestDispatchUnregisteredTypePanics(t *testing.T) {
	s := newTestState()
	tl := s.Map.TileXY(2, 2)
	s.Map.MakeStation(tl, uint8(company.None), tile.StationBuoy, tile.WaterSea)

	require.False(t, Registered(tile.Station))
	require.Panics(t, func() { DrawTile(s, tl) }, "a live tile of an unregistered type is a wiring bug")
}

func TestOptionalSlotsAreNilSafe(t *testing.T) {
	s := newTestState()
	tl := s.Map.TileXY(2, 2)

	require.False(t, ClickTile(s, tl))
	require.False(t, MayAnimateTile(s, tl))
	require.NotPanics(t, func() { AnimateTile(s, tl) })
	require.False(t, HasTileLoop(s, tl))
	require.NotPanics(t, func() { TileLoop(s, tl) })

	acc := CargoArray{}
	AddAcceptedCargo(s, tl, acc)
	AddProducedCargo(s, tl, acc)
	require.Empty(t, acc)
}

func TestRunAsRestoresIdentity(t *testing.T) {
	s := newTestState()
	s.SetCurrent(3)

	s.RunAs(company.Water, func() {
		require.Equal(t, company.Water, s.Current())
	})
	require.Equal(t, company.ID(3), s.Current())

	require.Panics(t, func() {
		s.RunAs(company.Water, func() { panic("boom") })
	})
	require.Equal(t, company.ID(3), s.Current(), "identity restored on the panic path too")
}

func TestClearSquare(t *testing.T) {
	s := newTestState()
	obs := &countingObserver{}
	s.Observer = obs

	tl := s.Map.TileXY(3, 3)
	s.Map.MakeClear(tl, tile.GroundRocks, 1)
	s.Map.SetOwner(tl, 2)

	neigh := s.Map.Neighbour(tl, tile.DirNE)
	s.Map.MakeSea(neigh)
	s.Map.SetNonFlooding(neigh, true)

	s.ClearSquare(tl)

	require.Equal(t, tile.GroundGrass, s.Map.ClearGround(tl))
	require.Equal(t, 3, s.Map.ClearDensity(tl))
	require.Equal(t, uint8(company.None), s.Map.Owner(tl))
	require.False(t, s.Map.NonFlooding(neigh), "adjacent water must rescan after the change")
	require.Equal(t, 1, obs.dirty)
}

func TestClearNeighbourNonFloodingOnlyTouchesWater(t *testing.T) {
	s := newTestState()
	tl := s.Map.TileXY(3, 3)

	water1 := s.Map.Neighbour(tl, tile.DirSE)
	water2 := s.Map.Neighbour(tl, tile.DirN)
	s.Map.MakeSea(water1)
	s.Map.MakeSea(water2)
	s.Map.SetNonFlooding(water1, true)
	s.Map.SetNonFlooding(water2, true)

	far := s.Map.TileXY(6, 6)
	s.Map.MakeSea(far)
	s.Map.SetNonFlooding(far, true)

	s.ClearNeighbourNonFlooding(tl)

	require.False(t, s.Map.NonFlooding(water1))
	require.False(t, s.Map.NonFlooding(water2))
	require.True(t, s.Map.NonFlooding(far), "only the 8 surrounding tiles are touched")
}

func TestCheckOwnership(t *testing.T) {
	s := newTestState()
	tl := s.Map.TileXY(2, 2)
	s.Map.SetOwner(tl, 1)

	s.SetCurrent(1)
	require.True(t, s.CheckOwnership(tl).Succeeded())

	s.SetCurrent(2)
	ret := s.CheckOwnership(tl)
	require.True(t, ret.Failed())
	require.ErrorIs(t, ret.Err(), command.ErrOwnedByAnother)
}

func TestEnsureNoVehicleOnGround(t *testing.T) {
	s := newTestState()
	tl := s.Map.TileXY(2, 2)

	require.True(t, s.EnsureNoVehicleOnGround(tl).Succeeded())

	v := s.Vehicles.Place(vehicle.Train, tl, 0, 1)
	ret := s.EnsureNoVehicleOnGround(tl)
	require.ErrorIs(t, ret.Err(), command.ErrVehicleInTheWay)

	v.Crashed = true
	require.True(t, s.EnsureNoVehicleOnGround(tl).Succeeded(), "wrecks do not block")

	s.Vehicles.Place(vehicle.Ship, tl, 0, 1)
	require.ErrorIs(t, s.EnsureNoVehicleOnGround(tl).Err(), command.ErrVehicleInTheWay)
}

func TestFoundationSlope(t *testing.T) {
	s := newTestState()
	tl := s.Map.TileXY(3, 3)
	// One-corner slope under the tile.
	s.Map.SetCornerHeight(s.Map.TileXY(4, 3), 1)

	slope, z := s.FoundationSlope(tl)
	require.Equal(t, tile.SlopeW, slope)
	require.Equal(t, 0, z)

	// A leveled foundation flattens the surface one level up.
	s.Map.MakeRail(tl, uint8(company.None), tile.TrackX, tile.RailGroundBarren)
	slope, z = s.FoundationSlope(tl)
	require.Equal(t, tile.SlopeFlat, slope)
	require.Equal(t, 1, z)
}

type countingObserver struct {
	dirty, resignal, region int
}

func (o *countingObserver) TileDirty(tile.Index)              { o.dirty++ }
func (o *countingObserver) ResignalArea(tile.Index)           { o.resignal++ }
func (o *countingObserver) WaterRegionInvalidated(tile.Index) { o.region++ }
