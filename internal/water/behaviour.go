// Package water implements the water tile behaviours: the flood/dry-up
// state machine driven by the tile loop, and the water construction
// commands (ship depots, locks, canals).
package water

import "tidelands/internal/tile"

// FloodingBehaviour is how a tile takes part in flooding. It is derived from
// tile state on every query, never stored.
type FloodingBehaviour uint8

const (
	// FloodNone tiles neither flood nor dry up: canals, rivers, dry land.
	FloodNone FloodingBehaviour = iota
	// FloodActive tiles are wet and spread to their neighbours.
	FloodActive
	// FloodDryUp tiles were flooded through the one-corner slope exception
	// and revert once nothing upstream can flood them.
	FloodDryUp
	// FloodPassive is reserved; the classifier never produces it, but the
	// dry-up scan honours it as "upstream may still flood me".
	FloodPassive
)

// floodFromDirs lists, per slope shape, the directions a flood can enter
// from. Steep slopes share the row of their three-corner base shape.
var floodFromDirs = [16]tile.DirSet{
	tile.SlopeFlat: tile.NewDirSet(tile.DirNW, tile.DirSW, tile.DirSE, tile.DirNE),
	tile.SlopeW:    tile.NewDirSet(tile.DirNE, tile.DirSE),
	tile.SlopeS:    tile.NewDirSet(tile.DirNW, tile.DirNE),
	tile.SlopeSW:   tile.NewDirSet(tile.DirNE),
	tile.SlopeE:    tile.NewDirSet(tile.DirNW, tile.DirSW),
	tile.SlopeEW:   0,
	tile.SlopeSE:   tile.NewDirSet(tile.DirNW),
	tile.SlopeWSE:  tile.NewDirSet(tile.DirN, tile.DirNW, tile.DirNE),
	tile.SlopeN:    tile.NewDirSet(tile.DirSW, tile.DirSE),
	tile.SlopeNW:   tile.NewDirSet(tile.DirSE),
	tile.SlopeNS:   0,
	tile.SlopeNWS:  tile.NewDirSet(tile.DirE, tile.DirNE, tile.DirSE),
	tile.SlopeNE:   tile.NewDirSet(tile.DirSW),
	tile.SlopeENW:  tile.NewDirSet(tile.DirS, tile.DirSW, tile.DirSE),
	tile.SlopeSEN:  tile.NewDirSet(tile.DirW, tile.DirSW, tile.DirNW),
}

// GetFloodingBehaviour classifies a tile for the flood engine. Pure in the
// tile state: the same tile always classifies the same way.
//
// Active: one-corner coast, sea water, sea ship depots, sea stations,
// sea industries and objects, half-flooded rail on a one-corner slope, and
// the void map border (an infinite sea).
// DryUp: coast with other slopes, half-flooded rail on other slopes, trees
// on shore ground.
// None: canals, rivers and everything dry.
func GetFloodingBehaviour(m *tile.Map, t tile.Index) FloodingBehaviour {
	switch m.Type(t) {
	case tile.Water:
		if m.IsCoast(t) {
			if m.Slope(t).HasOneCornerRaised() {
				return FloodActive
			}
			return FloodDryUp
		}
		fallthrough
	case tile.Station, tile.Industry, tile.Object:
		if m.WaterClass(t) == tile.WaterSea {
			return FloodActive
		}
		return FloodNone

	case tile.Railway:
		if m.RailGround(t) == tile.RailGroundWater {
			if m.Slope(t).HasOneCornerRaised() {
				return FloodActive
			}
			return FloodDryUp
		}
		return FloodNone

	case tile.Trees:
		if m.TreeGround(t) == tile.TreeGroundShore {
			return FloodDryUp
		}
		return FloodNone

	case tile.Void:
		return FloodActive

	default:
		return FloodNone
	}
}

// IsWateredTile reports whether the tile counts as water when seen from the
// given direction, for shore drawing and docking checks.
func IsWateredTile(m *tile.Map, t tile.Index, from tile.Direction) bool {
	switch m.Type(t) {
	case tile.Water:
		switch m.WaterTileType(t) {
		case tile.WaterDepot, tile.WaterClear:
			return true
		case tile.WaterLock:
			return m.LockDirection(t).Axis() == from.DiagDir().Axis()
		case tile.WaterCoast:
			return coastWateredFrom(m.Slope(t), from)
		}
		return false

	case tile.Railway:
		if m.RailGround(t) == tile.RailGroundWater {
			return coastWateredFrom(m.Slope(t), from)
		}
		return false

	case tile.Station:
		if m.IsOilRig(t) {
			return m.OnWater(t)
		}
		if m.IsDock(t) {
			return m.IsFlat(t)
		}
		return m.IsBuoy(t)

	case tile.Industry, tile.Object:
		return m.OnWater(t)

	case tile.Void:
		return true

	default:
		return false
	}
}

// coastWateredFrom reports whether a one-corner coast slope shows water
// toward the given direction.
func coastWateredFrom(slope tile.Slope, from tile.Direction) bool {
	switch slope {
	case tile.SlopeW:
		return from == tile.DirSE || from == tile.DirE || from == tile.DirNE
	case tile.SlopeS:
		return from == tile.DirNE || from == tile.DirN || from == tile.DirNW
	case tile.SlopeE:
		return from == tile.DirNW || from == tile.DirW || from == tile.DirSW
	case tile.SlopeN:
		return from == tile.DirSW || from == tile.DirS || from == tile.DirSE
	}
	return false
}
