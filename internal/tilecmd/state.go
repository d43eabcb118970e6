package tilecmd

import (
	"tidelands/internal/command"
	"tidelands/internal/company"
	"tidelands/internal/tile"
	"tidelands/internal/vehicle"
	"tidelands/pkg/core"
)

// GameMode selects the rule set commands run under.
type GameMode uint8

const (
	ModeNormal GameMode = iota
	// ModeEditor relaxes ownership and water-class restrictions for
	// scenario construction.
	ModeEditor
)

// Observer receives the side-effect notifications tile mutations emit:
// redraw invalidation, signal re-evaluation and water-region cache drops.
// All methods may be called many times per tick.
type Observer interface {
	TileDirty(t tile.Index)
	ResignalArea(t tile.Index)
	WaterRegionInvalidated(t tile.Index)
}

// State is the explicit simulation context threaded through every tile
// callback: the map, the company ledger, vehicles, the random source and the
// identity commands currently run as. Nothing in here is process-global, so
// engines stay testable without a world singleton.
type State struct {
	Map       *tile.Map
	Companies *company.Ledger
	Vehicles  *vehicle.Registry
	Rand      *core.RNG
	Mode      GameMode

	// FreeformEdges permits clearing sea tiles on the outermost playable
	// ring of the map.
	FreeformEdges bool

	Observer Observer

	current company.ID
}

// NewState builds a State with empty collaborators, suitable for tests and
// tools. The zero current company is None.
func NewState(m *tile.Map) *State {
	return &State{
		Map:       m,
		Companies: &company.Ledger{},
		Vehicles:  vehicle.NewRegistry(),
		Rand:      core.NewRNG(0),
		current:   company.None,
	}
}

// Current returns the company commands currently execute as.
func (s *State) Current() company.ID { return s.current }

// SetCurrent selects the company subsequent commands execute as.
func (s *State) SetCurrent(id company.ID) { s.current = id }

// RunAs runs fn with the current company overridden, restoring the previous
// identity on every exit path including panics.
func (s *State) RunAs(id company.ID, fn func()) {
	prev := s.current
	s.current = id
	defer func() { s.current = prev }()
	fn()
}

// ClearTile dispatches the clear operation for whatever occupies the tile.
// Mandatory slot.
func (s *State) ClearTile(t tile.Index, flags command.Flags) command.Cost {
	return forTile(s.Map, t).Clear(s, t, flags)
}

// ClearSquare resets the tile to bare grass and tells neighbouring water
// that its flood scan may be worth repeating.
func (s *State) ClearSquare(t tile.Index) {
	s.Map.MakeClear(t, tile.GroundGrass, 3)
	s.Map.SetOwner(t, uint8(company.None))
	s.ClearNeighbourNonFlooding(t)
	s.TileDirty(t)
}

// ClearNeighbourNonFlooding drops the non-flooding cache on all water tiles
// around t. Every mutation that could make t floodable again must call this.
func (s *State) ClearNeighbourNonFlooding(t tile.Index) {
	for dir := tile.DirN; dir < tile.NumDirs; dir++ {
		dest := s.Map.Neighbour(t, dir)
		if dest != tile.InvalidIndex && s.Map.Is(dest, tile.Water) {
			s.Map.SetNonFlooding(dest, false)
		}
	}
}

// CheckOwnership verifies the tile belongs to the current company.
func (s *State) CheckOwnership(t tile.Index) command.Cost {
	if company.ID(s.Map.Owner(t)) == s.current {
		return command.Cost{}
	}
	return command.Fail(command.ErrOwnedByAnother)
}

// EnsureNoVehicleOnGround fails when a grounded vehicle occupies the tile.
func (s *State) EnsureNoVehicleOnGround(t tile.Index) command.Cost {
	if s.Vehicles.AnyOnGround(t) || s.Vehicles.AnyShipOn(t) {
		return command.Fail(command.ErrVehicleInTheWay)
	}
	return command.Cost{}
}

// FoundationSlope returns the tile slope and height with any foundation
// applied: a leveled foundation flattens the surface one level up.
func (s *State) FoundationSlope(t tile.Index) (tile.Slope, int) {
	slope, z := s.Map.SlopeZ(t)
	if GetFoundation(s, t, slope) == FoundationLeveled {
		return tile.SlopeFlat, z + 1
	}
	return slope, z
}

// TileDirty marks a tile for redraw if anyone is listening.
func (s *State) TileDirty(t tile.Index) {
	if s.Observer != nil {
		s.Observer.TileDirty(t)
	}
}

// ResignalArea requests signal re-evaluation around a mutated tile.
func (s *State) ResignalArea(t tile.Index) {
	if s.Observer != nil {
		s.Observer.ResignalArea(t)
	}
}

// InvalidateWaterRegion drops cached water-pathing data for the region the
// tile belongs to.
func (s *State) InvalidateWaterRegion(t tile.Index) {
	if s.Observer != nil {
		s.Observer.WaterRegionInvalidated(t)
	}
}
