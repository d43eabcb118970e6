package world

import "tidelands/internal/tile"

// regionSize is the edge length of a water region in tiles.
const regionSize = 16

// regionCache keeps per-region water tile counts, recomputed lazily after an
// invalidation. It stands in for the pathfinder's region connectivity data:
// what matters here is that mutations drop exactly the right entries.
type regionCache struct {
	m      *tile.Map
	counts map[int]int
}

func newRegionCache(m *tile.Map) *regionCache {
	return &regionCache{m: m, counts: make(map[int]int)}
}

func (rc *regionCache) key(t tile.Index) int {
	x, y := rc.m.XY(t)
	perRow := (rc.m.Width() + regionSize - 1) / regionSize
	return (y/regionSize)*perRow + x/regionSize
}

func (rc *regionCache) invalidate(t tile.Index) {
	delete(rc.counts, rc.key(t))
}

func (rc *regionCache) waterTiles(t tile.Index) int {
	k := rc.key(t)
	if n, ok := rc.counts[k]; ok {
		return n
	}
	x, y := rc.m.XY(t)
	x0 := x / regionSize * regionSize
	y0 := y / regionSize * regionSize
	n := 0
	for ry := y0; ry < y0+regionSize && ry < rc.m.Height(); ry++ {
		for rx := x0; rx < x0+regionSize && rx < rc.m.Width(); rx++ {
			if rc.m.Is(rc.m.TileXY(rx, ry), tile.Water) {
				n++
			}
		}
	}
	rc.counts[k] = n
	return n
}
