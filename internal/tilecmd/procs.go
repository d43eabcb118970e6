// Package tilecmd is the tile-type dispatch layer: a fixed 16-slot registry
// mapping each tile type tag to its callback set, plus the simulation context
// those callbacks run against. There is exactly one callback set per type,
// shared by every tile of that type; dispatch is an array index and an
// indirect call.
package tilecmd

import (
	"fmt"

	"tidelands/internal/command"
	"tidelands/internal/company"
	"tidelands/internal/tile"
	"tidelands/internal/vehicle"
)

// Foundation describes the artificial base under a tile's structure.
type Foundation uint8

const (
	FoundationNone Foundation = iota
	// FoundationLeveled flattens the tile surface one level above its base.
	FoundationLeveled
)

// Desc is the human-readable tile description for inspection tools.
type Desc struct {
	Kind  string
	Owner company.ID
}

// Cargo identifies a cargo type for the acceptance/production slots.
type Cargo uint8

// CargoArray accumulates cargo amounts keyed by cargo type.
type CargoArray map[Cargo]uint

// VehicleEnterResult reports what happened when a vehicle entered a tile.
type VehicleEnterResult uint8

const (
	EnterNone VehicleEnterResult = 0

	EnterStation VehicleEnterResult = 1 << iota >> 1
	EnterWormhole
	EnterBlocked
)

// Procs is the callback set for one tile type. Nil entries in optional slots
// mean "operation not applicable"; mandatory slots must be populated for
// every registered type.
type Procs struct {
	Draw          func(s *State, t tile.Index) uint8
	SlopeZ        func(s *State, t tile.Index, x, y int) int
	Clear         func(s *State, t tile.Index, flags command.Flags) command.Cost
	AcceptedCargo func(s *State, t tile.Index, acceptance CargoArray)
	Describe      func(s *State, t tile.Index) Desc
	TrackStatus   func(s *State, t tile.Index, mode tile.TransportMode, side tile.DiagDirection) tile.TrackBits
	Click         func(s *State, t tile.Index) bool
	Animate       func(s *State, t tile.Index)
	TileLoop      func(s *State, t tile.Index)
	ChangeOwner   func(s *State, t tile.Index, oldOwner, newOwner company.ID)
	ProducedCargo func(s *State, t tile.Index, produced CargoArray)
	VehicleEnter  func(s *State, v *vehicle.Vehicle, t tile.Index, x, y int) VehicleEnterResult
	Foundation    func(s *State, t tile.Index, slope tile.Slope) Foundation
	Terraform     func(s *State, t tile.Index, flags command.Flags, zNew int, slopeNew tile.Slope) command.Cost
}

var procTable [tile.NumTypes]*Procs

// Register installs the callback set for a tile type. Each type registers
// once, from an init function, before the first dispatch; re-registration is
// a wiring bug.
func Register(typ tile.Type, p *Procs) {
	if p == nil {
		panic("tilecmd: Register with nil procs")
	}
	if procTable[typ] != nil {
		panic(fmt.Sprintf("tilecmd: procs for tile type %d registered twice", typ))
	}
	procTable[typ] = p
}

// Registered reports whether a callback set exists for the type.
func Registered(typ tile.Type) bool { return procTable[typ] != nil }

// forTile resolves the callback set for a tile, failing hard on a type that
// never registered: that is a build-time wiring bug, not a data condition.
func forTile(m *tile.Map, t tile.Index) *Procs {
	typ := m.Type(t)
	p := procTable[typ]
	if p == nil {
		panic(fmt.Sprintf("tilecmd: no procs registered for tile type %d (tile %d)", typ, t))
	}
	return p
}

// DrawTile returns the display cell for a tile. Mandatory slot.
func DrawTile(s *State, t tile.Index) uint8 {
	return forTile(s.Map, t).Draw(s, t)
}

// GetSlopeZ returns the surface height within a tile. Mandatory slot.
func GetSlopeZ(s *State, t tile.Index, x, y int) int {
	return forTile(s.Map, t).SlopeZ(s, t, x, y)
}

// GetTileDesc describes a tile. Mandatory slot.
func GetTileDesc(s *State, t tile.Index) Desc {
	return forTile(s.Map, t).Describe(s, t)
}

// GetTileTrackStatus returns the tracks a transport mode can use on a tile.
// Mandatory slot.
func GetTileTrackStatus(s *State, t tile.Index, mode tile.TransportMode, side tile.DiagDirection) tile.TrackBits {
	return forTile(s.Map, t).TrackStatus(s, t, mode, side)
}

// ClickTile reports whether a click on the tile was handled. Optional slot.
func ClickTile(s *State, t tile.Index) bool {
	p := forTile(s.Map, t)
	if p.Click == nil {
		return false
	}
	return p.Click(s, t)
}

// MayAnimateTile reports whether the tile type animates at all.
func MayAnimateTile(s *State, t tile.Index) bool {
	return forTile(s.Map, t).Animate != nil
}

// AnimateTile advances the tile's animation. Optional slot; a no-op when the
// type does not animate.
func AnimateTile(s *State, t tile.Index) {
	p := forTile(s.Map, t)
	if p.Animate == nil {
		return
	}
	p.Animate(s, t)
}

// TileLoop runs the periodic per-tile simulation step. Optional slot.
func TileLoop(s *State, t tile.Index) {
	p := forTile(s.Map, t)
	if p.TileLoop == nil {
		return
	}
	p.TileLoop(s, t)
}

// HasTileLoop reports whether the tile type takes part in the tile loop.
func HasTileLoop(s *State, t tile.Index) bool {
	return forTile(s.Map, t).TileLoop != nil
}

// ChangeTileOwner transfers or drops ownership of a tile. Mandatory slot.
func ChangeTileOwner(s *State, t tile.Index, oldOwner, newOwner company.ID) {
	forTile(s.Map, t).ChangeOwner(s, t, oldOwner, newOwner)
}

// AddAcceptedCargo accumulates the cargo a tile accepts. Optional slot.
func AddAcceptedCargo(s *State, t tile.Index, acceptance CargoArray) {
	p := forTile(s.Map, t)
	if p.AcceptedCargo == nil {
		return
	}
	p.AcceptedCargo(s, t, acceptance)
}

// AddProducedCargo accumulates the cargo a tile produces. Optional slot.
func AddProducedCargo(s *State, t tile.Index, produced CargoArray) {
	p := forTile(s.Map, t)
	if p.ProducedCargo == nil {
		return
	}
	p.ProducedCargo(s, t, produced)
}

// VehicleEnterTile notifies the tile that a vehicle entered it. Mandatory
// slot.
func VehicleEnterTile(s *State, v *vehicle.Vehicle, t tile.Index, x, y int) VehicleEnterResult {
	return forTile(s.Map, t).VehicleEnter(s, v, t, x, y)
}

// GetFoundation returns the foundation under a tile. Mandatory slot.
func GetFoundation(s *State, t tile.Index, slope tile.Slope) Foundation {
	return forTile(s.Map, t).Foundation(s, t, slope)
}

// TerraformTile validates and prices a terraform touching the tile.
// Mandatory slot.
func TerraformTile(s *State, t tile.Index, flags command.Flags, zNew int, slopeNew tile.Slope) command.Cost {
	return forTile(s.Map, t).Terraform(s, t, flags, zNew, slopeNew)
}
