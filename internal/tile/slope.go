package tile

// Slope encodes which corners of a tile are raised above its lowest corner.
// A steep slope additionally raises one corner a second height level.
type Slope uint8

const (
	SlopeFlat Slope = 0

	SlopeW Slope = 1 << iota >> 1 // west corner raised
	SlopeS                        // south corner raised
	SlopeE                        // east corner raised
	SlopeN                        // north corner raised

	SlopeSteep Slope = 16

	SlopeNW  = SlopeN | SlopeW
	SlopeSW  = SlopeS | SlopeW
	SlopeSE  = SlopeS | SlopeE
	SlopeNE  = SlopeN | SlopeE
	SlopeEW  = SlopeE | SlopeW
	SlopeNS  = SlopeN | SlopeS
	SlopeWSE = SlopeW | SlopeS | SlopeE
	SlopeNWS = SlopeN | SlopeW | SlopeS
	SlopeENW = SlopeE | SlopeN | SlopeW
	SlopeSEN = SlopeS | SlopeE | SlopeN
)

// IsFlat reports whether no corner is raised.
func (s Slope) IsFlat() bool { return s == SlopeFlat }

// IsSteep reports whether the slope spans two height levels.
func (s Slope) IsSteep() bool { return s&SlopeSteep != 0 }

// HasOneCornerRaised reports whether exactly one corner is raised. Such
// slopes are the only coast shapes that keep flooding actively.
func (s Slope) HasOneCornerRaised() bool {
	switch s {
	case SlopeW, SlopeS, SlopeE, SlopeN:
		return true
	}
	return false
}

// IsInclined reports whether the slope is a straight incline along an axis.
func (s Slope) IsInclined() bool {
	return s.InclinedDirection() != InvalidDiagDir
}

// InclinedDirection returns the uphill direction of an inclined slope, or
// InvalidDiagDir when the slope is not a straight incline.
func (s Slope) InclinedDirection() DiagDirection {
	switch s {
	case SlopeNE:
		return DiagNE
	case SlopeSE:
		return DiagSE
	case SlopeSW:
		return DiagSW
	case SlopeNW:
		return DiagNW
	}
	return InvalidDiagDir
}

// InclinedSlope returns the slope that rises toward the given direction.
func InclinedSlope(dir DiagDirection) Slope {
	switch dir {
	case DiagNE:
		return SlopeNE
	case DiagSE:
		return SlopeSE
	case DiagSW:
		return SlopeSW
	case DiagNW:
		return SlopeNW
	}
	return SlopeFlat
}
