package tile

// Direction is one of the 8 compass directions, clockwise from north.
// The map is diamond-oriented: the X axis runs north-east to south-west and
// the Y axis north-west to south-east, so diagonal directions step along a
// single axis.
type Direction uint8

const (
	DirN Direction = iota
	DirNE
	DirE
	DirSE
	DirS
	DirSW
	DirW
	DirNW

	NumDirs = 8
)

// Reverse returns the opposite compass direction.
func (d Direction) Reverse() Direction { return (d + 4) % NumDirs }

// DiagDirection is one of the 4 axis-aligned directions.
type DiagDirection uint8

const (
	DiagNE DiagDirection = iota
	DiagSE
	DiagSW
	DiagNW

	NumDiagDirs = 4

	InvalidDiagDir DiagDirection = 0xff
)

// Reverse returns the opposite diagonal direction.
func (d DiagDirection) Reverse() DiagDirection { return d ^ 2 }

// Axis distinguishes the two diagonal axes of the map.
type Axis uint8

const (
	AxisX Axis = iota // north-east to south-west
	AxisY             // north-west to south-east
)

// Axis returns the axis a diagonal direction runs along.
func (d DiagDirection) Axis() Axis { return Axis(d & 1) }

// DiagDir coarsens a compass direction to the nearest diagonal direction.
func (d Direction) DiagDir() DiagDirection { return DiagDirection(d >> 1) }

// Dir widens a diagonal direction to the corresponding compass direction.
func (d DiagDirection) Dir() Direction { return Direction(d*2 + 1) }

var dirOffsets = [NumDirs][2]int{
	DirN:  {-1, -1},
	DirNE: {-1, 0},
	DirE:  {-1, 1},
	DirSE: {0, 1},
	DirS:  {1, 1},
	DirSW: {1, 0},
	DirW:  {1, -1},
	DirNW: {0, -1},
}

// Offset returns the (dx, dy) tile offset for a compass direction.
func (d Direction) Offset() (int, int) {
	o := dirOffsets[d]
	return o[0], o[1]
}

var diagDirOffsets = [NumDiagDirs][2]int{
	DiagNE: {-1, 0},
	DiagSE: {0, 1},
	DiagSW: {1, 0},
	DiagNW: {0, -1},
}

// Offset returns the (dx, dy) tile offset for a diagonal direction.
func (d DiagDirection) Offset() (int, int) {
	o := diagDirOffsets[d]
	return o[0], o[1]
}

// DirSet is a bitmask of compass directions.
type DirSet uint8

// NewDirSet builds a set from individual directions.
func NewDirSet(dirs ...Direction) DirSet {
	var s DirSet
	for _, d := range dirs {
		s |= 1 << d
	}
	return s
}

// Has reports whether the set contains d.
func (s DirSet) Has(d Direction) bool { return s&(1<<d) != 0 }

// Each calls fn for every direction in the set, north first.
func (s DirSet) Each(fn func(Direction) bool) {
	for d := DirN; d < NumDirs; d++ {
		if s.Has(d) {
			if !fn(d) {
				return
			}
		}
	}
}
