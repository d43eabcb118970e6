package tile

// reset wipes a tile slot before it is rebuilt as a new kind. Heights are
// grid geometry, not payload, and survive; the bridge flag likewise belongs
// to the structure above the tile.
func (m *Map) reset(t Index, typ Type) *cell {
	c := m.at(t)
	bridge := c.flags & flagBridgeAbove
	*c = cell{height: c.height, typ: typ, owner: uint8(ownerNone), flags: bridge}
	return c
}

// MakeClear turns the tile into bare land.
func (m *Map) MakeClear(t Index, g ClearGround, density int) {
	c := m.reset(t, Clear)
	c.ground = uint8(g)
	c.density = uint8(density)
}

// MakeSea turns the tile into open sea.
func (m *Map) MakeSea(t Index) {
	c := m.reset(t, Water)
	c.wc = WaterSea
	c.sub = uint8(WaterClear)
	c.owner = uint8(ownerWater)
}

const ownerWater = 0x11 // mirrors company.Water

// MakeCanal turns the tile into canal water owned by the given company.
// The random bits feed cosmetic variant selection only.
func (m *Map) MakeCanal(t Index, owner uint8, random uint8) {
	c := m.reset(t, Water)
	c.wc = WaterCanal
	c.sub = uint8(WaterClear)
	c.owner = owner
	c.density = random & 0x03
}

// MakeRiver turns the tile into river water.
func (m *Map) MakeRiver(t Index, random uint8) {
	c := m.reset(t, Water)
	c.wc = WaterRiver
	c.sub = uint8(WaterClear)
	c.owner = uint8(ownerWater)
	c.density = random & 0x03
}

// MakeShore turns the tile into a coast tile.
func (m *Map) MakeShore(t Index) {
	c := m.reset(t, Water)
	c.wc = WaterSea
	c.sub = uint8(WaterCoast)
	c.owner = uint8(ownerWater)
}

// makeLockTile builds one tile of a lock.
func (m *Map) makeLockTile(t Index, owner uint8, part LockPart, dir DiagDirection, wc WaterClass) {
	c := m.reset(t, Water)
	c.wc = wc
	c.sub = uint8(WaterLock) | uint8(part)<<2 | uint8(dir)<<4
	c.owner = owner
}

// MakeLock builds a whole lock around its middle tile. The lower and upper
// tiles keep their original water classes so removal can restore them.
func (m *Map) MakeLock(middle Index, owner uint8, dir DiagDirection, wcLower, wcUpper, wcMiddle WaterClass) {
	lower := m.NeighbourDiag(middle, dir.Reverse())
	upper := m.NeighbourDiag(middle, dir)
	m.makeLockTile(middle, owner, LockMiddle, dir, wcMiddle)
	m.makeLockTile(lower, owner, LockLower, dir, wcLower)
	m.makeLockTile(upper, owner, LockUpper, dir, wcUpper)
}

// LockMiddleTile returns the middle tile of the lock t belongs to.
func (m *Map) LockMiddleTile(t Index) Index {
	dir := m.LockDirection(t)
	switch m.LockPart(t) {
	case LockLower:
		return m.NeighbourDiag(t, dir)
	case LockUpper:
		return m.NeighbourDiag(t, dir.Reverse())
	}
	return t
}

// MakeShipDepot builds one tile of a ship depot over existing water ground.
func (m *Map) MakeShipDepot(t Index, owner uint8, part DepotPart, axis Axis, wc WaterClass) {
	c := m.reset(t, Water)
	c.wc = wc
	c.sub = uint8(WaterDepot) | uint8(part)<<2 | uint8(axis)<<3
	c.owner = owner
}

// MakeTrees plants trees on the tile.
func (m *Map) MakeTrees(t Index, g TreeGround, density int) {
	c := m.reset(t, Trees)
	c.ground = uint8(g)
	c.density = uint8(density)
}

// MakeRail lays plain rail track on the tile.
func (m *Map) MakeRail(t Index, owner uint8, bits TrackBits, g RailGround) {
	c := m.reset(t, Railway)
	c.owner = owner
	c.track = bits
	c.ground = uint8(g)
}

// MakeStation places a station sub-kind tile with the given water class.
func (m *Map) MakeStation(t Index, owner uint8, kind StationKind, wc WaterClass) {
	c := m.reset(t, Station)
	c.owner = owner
	c.sub = uint8(kind)
	c.wc = wc
}

// MakeObject places a generic object tile with the given water class.
func (m *Map) MakeObject(t Index, owner uint8, wc WaterClass) {
	c := m.reset(t, Object)
	c.owner = owner
	c.wc = wc
}

// MakeVoid turns the tile back into map border.
func (m *Map) MakeVoid(t Index) {
	m.reset(t, Void)
}
