package tile

// Index addresses a tile inside the packed map array. Tiles are never
// referenced by pointer; an Index is the only handle that exists.
type Index int32

// InvalidIndex is returned for neighbours that fall outside the map.
const InvalidIndex Index = -1

// Type is the 4-bit tile type tag shared by every tile of a kind.
type Type uint8

// Tile type tags. The dispatch table has one slot per value; tags without a
// registered callback set must never appear on a live map.
const (
	Clear Type = iota
	Railway
	Road
	House
	Trees
	Station
	Water
	Void
	Industry
	TunnelBridge
	Object

	// NumTypes is the size of the dispatch table, not the count of live tags.
	NumTypes = 16
)

// WaterClass categorizes the water on a tile.
type WaterClass uint8

const (
	WaterInvalid WaterClass = iota
	WaterSea
	WaterCanal
	WaterRiver
)

// IsValidWaterClass reports whether wc names actual water.
func IsValidWaterClass(wc WaterClass) bool {
	return wc == WaterSea || wc == WaterCanal || wc == WaterRiver
}

// WaterTileType is the sub-type payload of a water tile.
type WaterTileType uint8

const (
	WaterClear WaterTileType = iota
	WaterCoast
	WaterLock
	WaterDepot
)

// LockPart identifies one of the three tiles of a lock.
type LockPart uint8

const (
	LockMiddle LockPart = iota
	LockLower
	LockUpper
)

// DepotPart identifies one of the two tiles of a ship depot.
type DepotPart uint8

const (
	DepotNorth DepotPart = iota
	DepotSouth
)

// StationKind is the sub-type payload of a station tile. Only the kinds the
// water engine distinguishes are modelled.
type StationKind uint8

const (
	StationGeneric StationKind = iota
	StationBuoy
	StationDock
	StationDockWaterPart
	StationOilRig
)

// ClearGround enumerates the ground of a bare land tile.
type ClearGround uint8

const (
	GroundGrass ClearGround = iota
	GroundRough
	GroundRocks
	GroundFields
	GroundSnow
	GroundDesert
)

// TreeGround enumerates the ground beneath a tree tile.
type TreeGround uint8

const (
	TreeGroundGrass TreeGround = iota
	TreeGroundRough
	// TreeGroundShore marks trees standing on previously flooded ground.
	TreeGroundShore
)

// RailGround enumerates the ground art of a plain rail tile.
type RailGround uint8

const (
	RailGroundBarren RailGround = iota
	RailGroundGrass
	RailGroundFenceHoriz1
	RailGroundFenceHoriz2
	RailGroundFenceVert1
	RailGroundFenceVert2
	// RailGroundWater marks a half-flooded rail tile on a coast slope.
	RailGroundWater
)

// Per-tile flag bits.
const (
	flagNonFlooding uint8 = 1 << iota
	flagDocking
	flagBridgeAbove
)
