package tile

// RectEach visits every tile in the axis-aligned rectangle spanned by two
// corner tiles, row-major. fn returning false stops the walk.
func (m *Map) RectEach(a, b Index, fn func(Index) bool) {
	ax, ay := m.XY(a)
	bx, by := m.XY(b)
	x0, x1 := min(ax, bx), max(ax, bx)
	y0, y1 := min(ay, by), max(ay, by)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !fn(m.TileXY(x, y)) {
				return
			}
		}
	}
}

// DiagEach visits every tile in the 45-degree-rotated rectangle spanned by
// two corner tiles. In rotated coordinates u=x+y, v=x-y the area is an
// axis-aligned box; the walk stays row-major in map coordinates so results
// are deterministic.
func (m *Map) DiagEach(a, b Index, fn func(Index) bool) {
	ax, ay := m.XY(a)
	bx, by := m.XY(b)
	u0, u1 := minMax(ax+ay, bx+by)
	v0, v1 := minMax(ax-ay, bx-by)
	x0, x1 := min(ax, bx), max(ax, bx)
	y0, y1 := min(ay, by), max(ay, by)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			u, v := x+y, x-y
			if u < u0 || u > u1 || v < v0 || v > v1 {
				continue
			}
			if !fn(m.TileXY(x, y)) {
				return
			}
		}
	}
}

func minMax(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
