package tile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlopeFromCornerHeights(t *testing.T) {
	m := NewMap(8, 8)
	tl := m.TileXY(2, 2)

	s, z := m.SlopeZ(tl)
	require.Equal(t, SlopeFlat, s)
	require.Equal(t, 0, z)

	// West corner of (2,2) is the north corner of (3,2).
	m.SetCornerHeight(m.TileXY(3, 2), 1)
	s, z = m.SlopeZ(tl)
	require.Equal(t, SlopeW, s)
	require.Equal(t, 0, z)
	require.True(t, s.HasOneCornerRaised())

	// Raising the north corner too makes a straight incline toward NW.
	m.SetCornerHeight(tl, 1)
	s, _ = m.SlopeZ(tl)
	require.Equal(t, SlopeNW, s)
	require.True(t, s.IsInclined())
	require.Equal(t, DiagNW, s.InclinedDirection())

	// A two-level corner marks the slope steep.
	m.SetCornerHeight(tl, 2)
	m.SetCornerHeight(m.TileXY(2, 3), 1)
	s, z = m.SlopeZ(tl)
	require.Equal(t, SlopeENW|SlopeSteep, s)
	require.Equal(t, 0, z)
	require.True(t, s.IsSteep())
	require.False(t, s.IsInclined())
}

func TestSlopeAtMapBorderClampsCorners(t *testing.T) {
	m := NewMap(4, 4)
	// The last row and column have no corners beyond them; sampling clamps
	// instead of reading out of bounds.
	last := m.TileXY(3, 3)
	s, z := m.SlopeZ(last)
	require.Equal(t, SlopeFlat, s)
	require.Equal(t, 0, z)

	m.SetCornerHeight(last, 2)
	s, _ = m.SlopeZ(last)
	require.True(t, s.IsFlat(), "clamped corners collapse to the same height")
}

func TestNeighbourOffsets(t *testing.T) {
	m := NewMap(8, 8)
	c := m.TileXY(4, 4)

	cases := map[Direction]Index{
		DirN:  m.TileXY(3, 3),
		DirNE: m.TileXY(3, 4),
		DirE:  m.TileXY(3, 5),
		DirSE: m.TileXY(4, 5),
		DirS:  m.TileXY(5, 5),
		DirSW: m.TileXY(5, 4),
		DirW:  m.TileXY(5, 3),
		DirNW: m.TileXY(4, 3),
	}
	for dir, want := range cases {
		require.Equal(t, want, m.Neighbour(c, dir), "dir %d", dir)
		// Stepping back returns home.
		require.Equal(t, c, m.Neighbour(want, dir.Reverse()))
	}

	require.Equal(t, InvalidIndex, m.Neighbour(m.TileXY(0, 0), DirN))
	require.Equal(t, InvalidIndex, m.Neighbour(m.TileXY(7, 7), DirS))
}

func TestDiagDirections(t *testing.T) {
	m := NewMap(8, 8)
	c := m.TileXY(4, 4)

	require.Equal(t, m.TileXY(3, 4), m.NeighbourDiag(c, DiagNE))
	require.Equal(t, m.TileXY(4, 5), m.NeighbourDiag(c, DiagSE))
	require.Equal(t, m.TileXY(5, 4), m.NeighbourDiag(c, DiagSW))
	require.Equal(t, m.TileXY(4, 3), m.NeighbourDiag(c, DiagNW))

	for d := DiagNE; d < NumDiagDirs; d++ {
		require.Equal(t, d, d.Reverse().Reverse())
		require.NotEqual(t, d, d.Reverse())
		require.Equal(t, d.Axis(), d.Reverse().Axis())
		// Widening and coarsening again is the identity.
		require.Equal(t, d, d.Dir().DiagDir())
	}

	// Compass directions coarsen to the diagonal on their clockwise side.
	require.Equal(t, DiagNE, DirN.DiagDir())
	require.Equal(t, DiagNE, DirNE.DiagDir())
	require.Equal(t, DiagSE, DirE.DiagDir())
	require.Equal(t, DiagSW, DirS.DiagDir())
	require.Equal(t, DiagNW, DirW.DiagDir())
}

func TestDirSet(t *testing.T) {
	s := NewDirSet(DirNE, DirSW, DirN)
	require.True(t, s.Has(DirN))
	require.True(t, s.Has(DirNE))
	require.True(t, s.Has(DirSW))
	require.False(t, s.Has(DirS))

	var seen []Direction
	s.Each(func(d Direction) bool {
		seen = append(seen, d)
		return true
	})
	require.Equal(t, []Direction{DirN, DirNE, DirSW}, seen, "visit order is north first")

	seen = seen[:0]
	s.Each(func(d Direction) bool {
		seen = append(seen, d)
		return false
	})
	require.Equal(t, []Direction{DirN}, seen, "returning false stops the walk")
}

func TestRaisedCornerTrack(t *testing.T) {
	require.Equal(t, TrackLeft, RaisedCornerTrack(SlopeW))
	require.Equal(t, TrackLower, RaisedCornerTrack(SlopeS))
	require.Equal(t, TrackRight, RaisedCornerTrack(SlopeE))
	require.Equal(t, TrackUpper, RaisedCornerTrack(SlopeN))

	require.Equal(t, TrackNone, RaisedCornerTrack(SlopeFlat))
	require.Equal(t, TrackNone, RaisedCornerTrack(SlopeNW))
	require.Equal(t, TrackNone, RaisedCornerTrack(SlopeWSE))
}

func TestRectEach(t *testing.T) {
	m := NewMap(8, 8)
	var visited []Index
	m.RectEach(m.TileXY(3, 4), m.TileXY(1, 2), func(i Index) bool {
		visited = append(visited, i)
		return true
	})
	require.Len(t, visited, 9, "corners span a 3x3 box in either order")
	require.Equal(t, m.TileXY(1, 2), visited[0], "walk is row-major from the north corner")
	require.Equal(t, m.TileXY(3, 4), visited[len(visited)-1])

	count := 0
	m.RectEach(m.TileXY(1, 1), m.TileXY(3, 3), func(Index) bool {
		count++
		return count < 4
	})
	require.Equal(t, 4, count)
}

func TestDiagEach(t *testing.T) {
	m := NewMap(8, 8)
	var visited []Index
	m.DiagEach(m.TileXY(3, 1), m.TileXY(1, 3), func(i Index) bool {
		visited = append(visited, i)
		return true
	})
	// The rotated box between those corners is the anti-diagonal x+y == 4.
	require.Equal(t, []Index{m.TileXY(3, 1), m.TileXY(2, 2), m.TileXY(1, 3)}, visited)
}

func TestShipDepotGeometry(t *testing.T) {
	m := NewMap(8, 8)
	north := m.TileXY(3, 3)
	south := m.TileXY(4, 3)
	m.MakeShipDepot(north, ownerNone, DepotNorth, AxisX, WaterSea)
	m.MakeShipDepot(south, ownerNone, DepotSouth, AxisX, WaterCanal)

	require.True(t, m.IsShipDepot(north))
	require.Equal(t, AxisX, m.DepotAxis(north))
	require.Equal(t, south, m.OtherDepotTile(north))
	require.Equal(t, north, m.OtherDepotTile(south))
	require.Equal(t, north, m.DepotNorthTile(south))
	require.Equal(t, north, m.DepotNorthTile(north))
	require.Equal(t, WaterCanal, m.WaterClass(south))
}

func TestLockGeometry(t *testing.T) {
	m := NewMap(8, 8)
	middle := m.TileXY(4, 4)
	m.MakeLock(middle, ownerNone, DiagSW, WaterSea, WaterCanal, WaterCanal)

	lower := m.NeighbourDiag(middle, DiagNE)
	upper := m.NeighbourDiag(middle, DiagSW)
	for _, l := range []Index{middle, lower, upper} {
		require.True(t, m.IsLock(l))
		require.Equal(t, DiagSW, m.LockDirection(l))
		require.Equal(t, middle, m.LockMiddleTile(l))
	}
	require.Equal(t, LockMiddle, m.LockPart(middle))
	require.Equal(t, LockLower, m.LockPart(lower))
	require.Equal(t, LockUpper, m.LockPart(upper))
	require.Equal(t, WaterSea, m.WaterClass(lower))
	require.Equal(t, WaterCanal, m.WaterClass(upper))
}

func TestWaterPredicates(t *testing.T) {
	m := NewMap(8, 8)
	sea := m.TileXY(2, 2)
	canal := m.TileXY(3, 2)
	river := m.TileXY(4, 2)
	shore := m.TileXY(5, 2)
	m.MakeSea(sea)
	m.MakeCanal(canal, 1, 0)
	m.MakeRiver(river, 0)
	m.MakeShore(shore)

	require.True(t, m.IsSea(sea))
	require.True(t, m.IsCanal(canal))
	require.True(t, m.IsRiver(river))
	require.True(t, m.IsCoast(shore))

	require.True(t, m.IsWater(sea) && m.IsWater(canal) && m.IsWater(river))
	require.False(t, m.IsWater(shore))
	require.True(t, m.HasWaterGround(sea) && m.HasWaterGround(shore))

	require.True(t, m.OnWater(sea))
	require.False(t, m.OnWater(m.TileXY(6, 6)), "void carries no water class")
}

func TestFlagsSurviveRebuild(t *testing.T) {
	m := NewMap(8, 8)
	tl := m.TileXY(3, 3)
	m.MakeClear(tl, GroundGrass, 3)
	m.SetBridgeAbove(tl, true)
	m.SetCornerHeight(tl, 1)

	m.MakeSea(tl)
	require.True(t, m.BridgeAbove(tl), "the bridge belongs to the span above, not the ground")
	require.Equal(t, 1, m.CornerHeight(tl), "heights are grid geometry")

	m.SetNonFlooding(tl, true)
	m.MakeShore(tl)
	require.False(t, m.NonFlooding(tl), "payload flags reset with the tile")
}
