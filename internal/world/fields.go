package world

import (
	"tidelands/internal/tile"
	"tidelands/internal/water"
)

// BehaviourCells returns the flood classification per tile: 0 none, 1
// active, 2 drying up. The slice is rebuilt on every call.
func (w *World) BehaviourCells() []uint8 {
	out := make([]uint8, w.m.Len())
	for i := range out {
		switch water.GetFloodingBehaviour(w.m, tile.Index(i)) {
		case water.FloodActive:
			out[i] = 1
		case water.FloodDryUp:
			out[i] = 2
		}
	}
	return out
}

// ElevationField returns the north corner height per tile.
func (w *World) ElevationField() []int16 {
	out := make([]int16, w.m.Len())
	for i := range out {
		out[i] = int16(w.m.CornerHeight(tile.Index(i)))
	}
	return out
}

// DockingCells returns the docking flag per tile.
func (w *World) DockingCells() []bool {
	out := make([]bool, w.m.Len())
	for i := range out {
		out[i] = w.m.Docking(tile.Index(i))
	}
	return out
}
