package water

import (
	"tidelands/internal/tile"
	"tidelands/internal/tilecmd"
)

// ConvertGroundTilesIntoWaterTiles seeds the sea after terrain generation:
// every bare tile at height zero becomes sea or shore depending on whether
// water could reach it over its slope.
func ConvertGroundTilesIntoWaterTiles(s *tilecmd.State) {
	m := s.Map
	for t := tile.Index(0); int(t) < m.Len(); t++ {
		if !m.Is(t, tile.Clear) {
			continue
		}
		slope, z := m.SlopeZ(t)
		if z != 0 {
			continue
		}

		switch {
		case slope.IsFlat():
			m.MakeSea(t)
			s.TileDirty(t)
		case slope.HasOneCornerRaised():
			m.MakeShore(t)
			s.TileDirty(t)
		default:
			// Only shore up slopes a flood could actually enter over.
			shore := false
			floodFromDirs[slope&^tile.SlopeSteep].Each(func(dir tile.Direction) bool {
				dest := m.Neighbour(t, dir)
				if dest == tile.InvalidIndex {
					return true
				}
				if m.Is(dest, tile.Void) {
					shore = true
					return false
				}
				destSlope := m.Slope(dest) &^ tile.SlopeSteep
				if destSlope.IsFlat() || destSlope.HasOneCornerRaised() {
					shore = true
					return false
				}
				return true
			})
			if shore {
				m.MakeShore(t)
				s.TileDirty(t)
			}
		}
	}
}
