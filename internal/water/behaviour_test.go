package water

import (
	"testing"

	"tidelands/internal/tile"

	"github.com/stretchr/testify/require"
)

// raise lifts the grid corner that is the north corner of (x, y).
func raise(m *tile.Map, x, y, h int) {
	m.SetCornerHeight(m.TileXY(x, y), h)
}

func TestFloodFromDirsTable(t *testing.T) {
	// A flat tile is entered along the axes only; diagonal water does not
	// spill over a shared corner.
	require.Equal(t, tile.NewDirSet(tile.DirNE, tile.DirSE, tile.DirSW, tile.DirNW), floodFromDirs[tile.SlopeFlat])

	// One raised corner leaves the two far edges open.
	require.Equal(t, tile.NewDirSet(tile.DirNE, tile.DirSE), floodFromDirs[tile.SlopeW])
	require.Equal(t, tile.NewDirSet(tile.DirNW, tile.DirNE), floodFromDirs[tile.SlopeS])
	require.Equal(t, tile.NewDirSet(tile.DirNW, tile.DirSW), floodFromDirs[tile.SlopeE])
	require.Equal(t, tile.NewDirSet(tile.DirSW, tile.DirSE), floodFromDirs[tile.SlopeN])

	// Inclines are entered from the downhill side only.
	require.Equal(t, tile.NewDirSet(tile.DirNE), floodFromDirs[tile.SlopeSW])
	require.Equal(t, tile.NewDirSet(tile.DirSE), floodFromDirs[tile.SlopeNW])
	require.Equal(t, tile.NewDirSet(tile.DirSW), floodFromDirs[tile.SlopeNE])
	require.Equal(t, tile.NewDirSet(tile.DirNW), floodFromDirs[tile.SlopeSE])

	// Opposite-corner saddles cannot be entered at all.
	require.Equal(t, tile.DirSet(0), floodFromDirs[tile.SlopeEW])
	require.Equal(t, tile.DirSet(0), floodFromDirs[tile.SlopeNS])

	// Three raised corners leave only the low corner, including the diagonal.
	require.Equal(t, tile.NewDirSet(tile.DirN, tile.DirNW, tile.DirNE), floodFromDirs[tile.SlopeWSE])
	require.Equal(t, tile.NewDirSet(tile.DirE, tile.DirNE, tile.DirSE), floodFromDirs[tile.SlopeNWS])
	require.Equal(t, tile.NewDirSet(tile.DirS, tile.DirSW, tile.DirSE), floodFromDirs[tile.SlopeENW])
	require.Equal(t, tile.NewDirSet(tile.DirW, tile.DirSW, tile.DirNW), floodFromDirs[tile.SlopeSEN])
}

func TestGetFloodingBehaviour(t *testing.T) {
	m := tile.NewMap(10, 10)

	sea := m.TileXY(2, 2)
	m.MakeSea(sea)
	require.Equal(t, FloodActive, GetFloodingBehaviour(m, sea))

	canal := m.TileXY(3, 2)
	m.MakeCanal(canal, 1, 0)
	require.Equal(t, FloodNone, GetFloodingBehaviour(m, canal))

	river := m.TileXY(4, 2)
	m.MakeRiver(river, 0)
	require.Equal(t, FloodNone, GetFloodingBehaviour(m, river))

	// One-corner coast keeps flooding; any other coast slope dries up.
	coast := m.TileXY(2, 4)
	m.MakeShore(coast)
	raise(m, 3, 4, 1)
	require.Equal(t, tile.SlopeW, m.Slope(coast))
	require.Equal(t, FloodActive, GetFloodingBehaviour(m, coast))

	raise(m, 2, 4, 1)
	require.Equal(t, tile.SlopeNW, m.Slope(coast))
	require.Equal(t, FloodDryUp, GetFloodingBehaviour(m, coast))
	raise(m, 3, 4, 0)
	raise(m, 2, 4, 0)

	// Sea-class depots and stations count as active water.
	depot := m.TileXY(5, 2)
	m.MakeShipDepot(depot, 1, tile.DepotNorth, tile.AxisX, tile.WaterSea)
	require.Equal(t, FloodActive, GetFloodingBehaviour(m, depot))
	m.MakeShipDepot(depot, 1, tile.DepotNorth, tile.AxisX, tile.WaterCanal)
	require.Equal(t, FloodNone, GetFloodingBehaviour(m, depot))

	buoy := m.TileXY(6, 2)
	m.MakeStation(buoy, 0x10, tile.StationBuoy, tile.WaterSea)
	require.Equal(t, FloodActive, GetFloodingBehaviour(m, buoy))

	// Half-flooded rail follows its slope like coast does.
	rail := m.TileXY(2, 6)
	m.MakeRail(rail, 1, tile.TrackLower, tile.RailGroundWater)
	raise(m, 3, 7, 1)
	require.Equal(t, tile.SlopeS, m.Slope(rail))
	require.Equal(t, FloodActive, GetFloodingBehaviour(m, rail))
	raise(m, 2, 7, 1)
	require.Equal(t, FloodDryUp, GetFloodingBehaviour(m, rail))
	raise(m, 3, 7, 0)
	raise(m, 2, 7, 0)

	m.SetRailGround(rail, tile.RailGroundGrass)
	require.Equal(t, FloodNone, GetFloodingBehaviour(m, rail))

	trees := m.TileXY(5, 6)
	m.MakeTrees(trees, tile.TreeGroundShore, 2)
	require.Equal(t, FloodDryUp, GetFloodingBehaviour(m, trees))
	m.MakeTrees(trees, tile.TreeGroundGrass, 2)
	require.Equal(t, FloodNone, GetFloodingBehaviour(m, trees))

	clear := m.TileXY(6, 6)
	m.MakeClear(clear, tile.GroundGrass, 3)
	require.Equal(t, FloodNone, GetFloodingBehaviour(m, clear))

	// The void border is an infinite sea.
	require.Equal(t, FloodActive, GetFloodingBehaviour(m, m.TileXY(9, 9)))
}

func TestClassificationIsPure(t *testing.T) {
	m := tile.NewMap(6, 6)
	coast := m.TileXY(2, 2)
	m.MakeShore(coast)
	raise(m, 3, 2, 1)

	first := GetFloodingBehaviour(m, coast)
	for i := 0; i < 4; i++ {
		require.Equal(t, first, GetFloodingBehaviour(m, coast))
	}
}

func TestIsWateredTile(t *testing.T) {
	m := tile.NewMap(10, 10)

	sea := m.TileXY(2, 2)
	m.MakeSea(sea)
	for dir := tile.DirN; dir < tile.NumDirs; dir++ {
		require.True(t, IsWateredTile(m, sea, dir))
	}

	// A one-corner coast shows water away from its raised corner.
	coast := m.TileXY(4, 4)
	m.MakeShore(coast)
	raise(m, 5, 4, 1) // west corner up
	require.Equal(t, tile.SlopeW, m.Slope(coast))
	for dir := tile.DirN; dir < tile.NumDirs; dir++ {
		want := dir == tile.DirSE || dir == tile.DirE || dir == tile.DirNE
		require.Equal(t, want, IsWateredTile(m, coast, dir), "dir %d", dir)
	}
	raise(m, 5, 4, 0)

	// Locks are water along their axis only.
	lock := m.TileXY(6, 6)
	m.MakeLock(lock, 1, tile.DiagSW, tile.WaterSea, tile.WaterCanal, tile.WaterCanal)
	require.True(t, IsWateredTile(m, lock, tile.DirSW))
	require.True(t, IsWateredTile(m, lock, tile.DirNE))
	require.False(t, IsWateredTile(m, lock, tile.DirSE))
	require.False(t, IsWateredTile(m, lock, tile.DirNW))

	// Part-flooded rail behaves like coast for the same slope.
	rail := m.TileXY(2, 6)
	m.MakeRail(rail, 1, tile.TrackUpper, tile.RailGroundWater)
	raise(m, 2, 6, 1) // north corner up
	require.Equal(t, tile.SlopeN, m.Slope(rail))
	require.True(t, IsWateredTile(m, rail, tile.DirS))
	require.False(t, IsWateredTile(m, rail, tile.DirN))

	require.True(t, IsWateredTile(m, m.TileXY(9, 9), tile.DirN), "void border is water")

	dry := m.TileXY(7, 2)
	m.MakeClear(dry, tile.GroundGrass, 3)
	require.False(t, IsWateredTile(m, dry, tile.DirN))
}
