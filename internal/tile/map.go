package tile

import "fmt"

// cell is the packed per-tile record. Tiles are slots in a dense grid; their
// type and payload are overwritten in place and never allocated individually.
type cell struct {
	height  uint8
	typ     Type
	owner   uint8
	wc      WaterClass
	sub     uint8
	ground  uint8
	density uint8
	track   TrackBits
	flags   uint8
}

// Map is the packed tile grid in row-major order. The outermost south-east
// column and row are Void border tiles, mirroring the classic map layout
// where corner heights of the last land tiles live on the border.
type Map struct {
	w, h  int
	cells []cell
}

// NewMap allocates a map of the given dimensions, fully Void. Callers seed
// terrain through the Make* mutators.
func NewMap(w, h int) *Map {
	if w < 2 {
		w = 2
	}
	if h < 2 {
		h = 2
	}
	m := &Map{w: w, h: h, cells: make([]cell, w*h)}
	for i := range m.cells {
		m.cells[i].typ = Void
		m.cells[i].owner = uint8(ownerNone)
	}
	return m
}

const ownerNone = 0x10 // mirrors company.None; stored raw to keep tile a leaf

// Width returns the number of tile columns.
func (m *Map) Width() int { return m.w }

// Height returns the number of tile rows.
func (m *Map) Height() int { return m.h }

// Len returns the number of tile slots.
func (m *Map) Len() int { return len(m.cells) }

// TileXY returns the index of the tile at (x, y).
func (m *Map) TileXY(x, y int) Index { return Index(y*m.w + x) }

// XY returns the coordinates of a tile index.
func (m *Map) XY(t Index) (int, int) { return int(t) % m.w, int(t) / m.w }

// Valid reports whether t addresses a tile inside the map.
func (m *Map) Valid(t Index) bool { return t >= 0 && int(t) < len(m.cells) }

// Neighbour returns the tile one step in the given compass direction, or
// InvalidIndex when the step leaves the map.
func (m *Map) Neighbour(t Index, dir Direction) Index {
	dx, dy := dir.Offset()
	x, y := m.XY(t)
	x += dx
	y += dy
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return InvalidIndex
	}
	return m.TileXY(x, y)
}

// NeighbourDiag returns the tile one step in the given diagonal direction,
// or InvalidIndex when the step leaves the map.
func (m *Map) NeighbourDiag(t Index, dir DiagDirection) Index {
	dx, dy := dir.Offset()
	x, y := m.XY(t)
	x += dx
	y += dy
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return InvalidIndex
	}
	return m.TileXY(x, y)
}

func (m *Map) at(t Index) *cell {
	if !m.Valid(t) {
		panic(fmt.Sprintf("tile: index %d outside %dx%d map", t, m.w, m.h))
	}
	return &m.cells[t]
}

// Type returns the type tag of a tile.
func (m *Map) Type(t Index) Type { return m.at(t).typ }

// Is reports whether a tile has the given type tag.
func (m *Map) Is(t Index, typ Type) bool { return m.at(t).typ == typ }

// CornerHeight returns the height of the north corner of a tile.
func (m *Map) CornerHeight(t Index) int { return int(m.at(t).height) }

// SetCornerHeight sets the height of the north corner of a tile.
func (m *Map) SetCornerHeight(t Index, z int) { m.at(t).height = uint8(z) }

// cornerAt samples a grid corner, clamping reads past the void border.
func (m *Map) cornerAt(x, y int) int {
	if x >= m.w {
		x = m.w - 1
	}
	if y >= m.h {
		y = m.h - 1
	}
	return int(m.cells[y*m.w+x].height)
}

// SlopeZ derives the slope and base height of a tile from its four corner
// heights. The west corner lies one step along X, the east corner one step
// along Y and the south corner one step along both.
func (m *Map) SlopeZ(t Index) (Slope, int) {
	x, y := m.XY(t)
	hn := m.cornerAt(x, y)
	hw := m.cornerAt(x+1, y)
	he := m.cornerAt(x, y+1)
	hs := m.cornerAt(x+1, y+1)

	z := min(min(hn, hw), min(he, hs))
	top := max(max(hn, hw), max(he, hs))

	var s Slope
	if hw > z {
		s |= SlopeW
	}
	if hs > z {
		s |= SlopeS
	}
	if he > z {
		s |= SlopeE
	}
	if hn > z {
		s |= SlopeN
	}
	if top-z == 2 {
		s |= SlopeSteep
	}
	return s, z
}

// Slope returns the slope of a tile.
func (m *Map) Slope(t Index) Slope {
	s, _ := m.SlopeZ(t)
	return s
}

// IsFlat reports whether all four corners of a tile share one height.
func (m *Map) IsFlat(t Index) bool { return m.Slope(t).IsFlat() }

// Owner returns the raw owner id of a tile. Callers convert to company.ID.
func (m *Map) Owner(t Index) uint8 { return m.at(t).owner }

// SetOwner overwrites the owner of a tile.
func (m *Map) SetOwner(t Index, owner uint8) { m.at(t).owner = owner }

// WaterClass returns the water class of a tile. Valid for water, station,
// industry and object tiles; everything else reports WaterInvalid.
func (m *Map) WaterClass(t Index) WaterClass {
	switch m.at(t).typ {
	case Water, Station, Industry, Object:
		return m.at(t).wc
	}
	return WaterInvalid
}

// HasWaterClass reports whether the tile type carries a water class at all.
func (m *Map) HasWaterClass(t Index) bool {
	switch m.at(t).typ {
	case Water, Station, Industry, Object:
		return true
	}
	return false
}

// SetWaterClass overwrites the water class of a tile.
func (m *Map) SetWaterClass(t Index, wc WaterClass) { m.at(t).wc = wc }

// OnWater reports whether the tile sits on actual water.
func (m *Map) OnWater(t Index) bool { return IsValidWaterClass(m.WaterClass(t)) }

// WaterTileType returns the sub-type of a water tile.
func (m *Map) WaterTileType(t Index) WaterTileType {
	c := m.at(t)
	if c.typ != Water {
		panic(fmt.Sprintf("tile: WaterTileType on %v tile %d", c.typ, t))
	}
	return WaterTileType(c.sub & 0x03)
}

// IsCoast reports whether the tile is a shore tile.
func (m *Map) IsCoast(t Index) bool {
	return m.Is(t, Water) && m.WaterTileType(t) == WaterCoast
}

// IsSea reports whether the tile is open sea.
func (m *Map) IsSea(t Index) bool {
	return m.Is(t, Water) && m.WaterTileType(t) == WaterClear && m.at(t).wc == WaterSea
}

// IsCanal reports whether the tile is plain canal water.
func (m *Map) IsCanal(t Index) bool {
	return m.Is(t, Water) && m.WaterTileType(t) == WaterClear && m.at(t).wc == WaterCanal
}

// IsRiver reports whether the tile is plain river water.
func (m *Map) IsRiver(t Index) bool {
	return m.Is(t, Water) && m.WaterTileType(t) == WaterClear && m.at(t).wc == WaterRiver
}

// IsWater reports whether the tile is plain water of any class.
func (m *Map) IsWater(t Index) bool {
	return m.Is(t, Water) && m.WaterTileType(t) == WaterClear
}

// IsLock reports whether the tile is part of a lock.
func (m *Map) IsLock(t Index) bool {
	return m.Is(t, Water) && m.WaterTileType(t) == WaterLock
}

// IsShipDepot reports whether the tile is part of a ship depot.
func (m *Map) IsShipDepot(t Index) bool {
	return m.Is(t, Water) && m.WaterTileType(t) == WaterDepot
}

// HasWaterGround reports whether the tile is plain water or a flat coast
// slot, i.e. ground a water structure may be built over.
func (m *Map) HasWaterGround(t Index) bool {
	return m.IsWater(t) || m.IsCoast(t)
}

// LockPart returns which of the three lock tiles this is.
func (m *Map) LockPart(t Index) LockPart {
	if !m.IsLock(t) {
		panic(fmt.Sprintf("tile: LockPart on non-lock tile %d", t))
	}
	return LockPart(m.at(t).sub >> 2 & 0x03)
}

// LockDirection returns the uphill direction of a lock tile.
func (m *Map) LockDirection(t Index) DiagDirection {
	if !m.IsLock(t) {
		panic(fmt.Sprintf("tile: LockDirection on non-lock tile %d", t))
	}
	return DiagDirection(m.at(t).sub >> 4 & 0x03)
}

// DepotPart returns which of the two ship depot tiles this is.
func (m *Map) DepotPart(t Index) DepotPart {
	return DepotPart(m.at(t).sub >> 2 & 0x01)
}

// DepotAxis returns the orientation of a ship depot tile.
func (m *Map) DepotAxis(t Index) Axis {
	return Axis(m.at(t).sub >> 3 & 0x01)
}

// OtherDepotTile returns the second tile of the ship depot at t.
func (m *Map) OtherDepotTile(t Index) Index {
	dir := DiagSW
	if m.DepotAxis(t) == AxisY {
		dir = DiagSE
	}
	if m.DepotPart(t) == DepotSouth {
		dir = dir.Reverse()
	}
	return m.NeighbourDiag(t, dir)
}

// DepotNorthTile returns the northern tile of the ship depot at t.
func (m *Map) DepotNorthTile(t Index) Index {
	if m.DepotPart(t) == DepotNorth {
		return t
	}
	return m.OtherDepotTile(t)
}

// StationKind returns the sub-type of a station tile.
func (m *Map) StationKind(t Index) StationKind { return StationKind(m.at(t).sub) }

// IsBuoy reports whether the tile is a buoy station.
func (m *Map) IsBuoy(t Index) bool {
	return m.Is(t, Station) && m.StationKind(t) == StationBuoy
}

// IsDock reports whether the tile belongs to a dock station.
func (m *Map) IsDock(t Index) bool {
	if !m.Is(t, Station) {
		return false
	}
	k := m.StationKind(t)
	return k == StationDock || k == StationDockWaterPart
}

// IsOilRig reports whether the tile is an oil rig station.
func (m *Map) IsOilRig(t Index) bool {
	return m.Is(t, Station) && m.StationKind(t) == StationOilRig
}

// ClearGround returns the ground kind of a bare land tile.
func (m *Map) ClearGround(t Index) ClearGround { return ClearGround(m.at(t).ground) }

// ClearDensity returns the ground density of a bare land tile.
func (m *Map) ClearDensity(t Index) int { return int(m.at(t).density) }

// TreeGround returns the ground kind beneath a tree tile.
func (m *Map) TreeGround(t Index) TreeGround { return TreeGround(m.at(t).ground) }

// SetTreeGroundDensity overwrites the ground and density of a tree tile.
func (m *Map) SetTreeGroundDensity(t Index, g TreeGround, density int) {
	c := m.at(t)
	c.ground = uint8(g)
	c.density = uint8(density)
}

// RailGround returns the ground art of a plain rail tile.
func (m *Map) RailGround(t Index) RailGround { return RailGround(m.at(t).ground) }

// SetRailGround overwrites the ground art of a plain rail tile.
func (m *Map) SetRailGround(t Index, g RailGround) { m.at(t).ground = uint8(g) }

// TrackBits returns the rail tracks present on a rail tile.
func (m *Map) TrackBits(t Index) TrackBits { return m.at(t).track }

// IsPlainRail reports whether the tile is plain track, not a depot or
// junction structure. Plain rail is the only rail the flood engine touches.
func (m *Map) IsPlainRail(t Index) bool { return m.Is(t, Railway) }

// NonFlooding reports whether the water tile is cached as having no
// floodable neighbour.
func (m *Map) NonFlooding(t Index) bool { return m.at(t).flags&flagNonFlooding != 0 }

// SetNonFlooding sets or clears the non-flooding cache flag.
func (m *Map) SetNonFlooding(t Index, v bool) { m.setFlag(t, flagNonFlooding, v) }

// Docking reports whether the tile is marked as a docking tile.
func (m *Map) Docking(t Index) bool { return m.at(t).flags&flagDocking != 0 }

// SetDocking sets or clears the docking flag.
func (m *Map) SetDocking(t Index, v bool) { m.setFlag(t, flagDocking, v) }

// BridgeAbove reports whether a bridge spans the tile.
func (m *Map) BridgeAbove(t Index) bool { return m.at(t).flags&flagBridgeAbove != 0 }

// SetBridgeAbove sets or clears the bridge-above flag.
func (m *Map) SetBridgeAbove(t Index, v bool) { m.setFlag(t, flagBridgeAbove, v) }

func (m *Map) setFlag(t Index, bit uint8, v bool) {
	c := m.at(t)
	if v {
		c.flags |= bit
	} else {
		c.flags &^= bit
	}
}
