package tilecmd

// Display cells returned by Draw procs. The world maps these to palette
// colors; viewers never look at tile internals directly.
const (
	CellVoid uint8 = iota
	CellGrass
	CellRough
	CellRocks
	CellFields
	CellTrees
	CellShoreTrees
	CellRail
	CellRailFlooded
	CellSea
	CellCoast
	CellCanal
	CellRiver
	CellLock
	CellDepot
	CellStation
	CellIndustry
	CellObject

	NumCells
)
