// Package vehicle keeps a tile-keyed registry of vehicles so the command and
// flood layers can ask "is something standing here" and crash what floods.
package vehicle

import "tidelands/internal/tile"

// Kind distinguishes vehicle classes for flood handling.
type Kind uint8

const (
	Train Kind = iota
	RoadVehicle
	Ship
	Aircraft
)

// Vehicle is the minimal state the tile engine needs about a vehicle.
type Vehicle struct {
	ID      int
	Kind    Kind
	Tile    tile.Index
	Z       int
	Owner   uint8
	Crashed bool
}

// Registry indexes vehicles by the tile they occupy.
type Registry struct {
	byTile map[tile.Index][]*Vehicle
	nextID int
}

// NewRegistry returns an empty vehicle registry.
func NewRegistry() *Registry {
	return &Registry{byTile: make(map[tile.Index][]*Vehicle)}
}

// Place adds a vehicle to the registry and returns it.
func (r *Registry) Place(kind Kind, t tile.Index, z int, owner uint8) *Vehicle {
	r.nextID++
	v := &Vehicle{ID: r.nextID, Kind: kind, Tile: t, Z: z, Owner: owner}
	r.byTile[t] = append(r.byTile[t], v)
	return v
}

// Remove deletes a vehicle from the registry.
func (r *Registry) Remove(v *Vehicle) {
	vs := r.byTile[v.Tile]
	for i, cand := range vs {
		if cand == v {
			r.byTile[v.Tile] = append(vs[:i], vs[i+1:]...)
			return
		}
	}
}

// OnTile returns the vehicles occupying a tile.
func (r *Registry) OnTile(t tile.Index) []*Vehicle {
	return r.byTile[t]
}

// AnyOnGround reports whether any non-crashed vehicle stands on the tile.
// Ships do not block ground operations on water.
func (r *Registry) AnyOnGround(t tile.Index) bool {
	for _, v := range r.byTile[t] {
		if v.Crashed || v.Kind == Ship || v.Kind == Aircraft {
			continue
		}
		return true
	}
	return false
}

// AnyShipOn reports whether a ship occupies the tile.
func (r *Registry) AnyShipOn(t tile.Index) bool {
	for _, v := range r.byTile[t] {
		if v.Kind == Ship && !v.Crashed {
			return true
		}
	}
	return false
}

// FloodAt crashes every grounded vehicle on the tile at or below the flood
// level and returns how many were hit. Crashed wrecks are left in place.
func (r *Registry) FloodAt(t tile.Index, z int) int {
	victims := 0
	for _, v := range r.byTile[t] {
		if v.Crashed {
			continue
		}
		switch v.Kind {
		case Train, RoadVehicle:
			if v.Z <= z {
				v.Crashed = true
				victims++
			}
		case Aircraft:
			if v.Z == 0 {
				v.Crashed = true
				victims++
			}
		}
	}
	return victims
}
