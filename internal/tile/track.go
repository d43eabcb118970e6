package tile

// TrackBits is a bitmask of the six possible rail tracks on a tile.
type TrackBits uint8

const (
	TrackNone  TrackBits = 0
	TrackX     TrackBits = 1 << iota >> 1 // along the X axis
	TrackY                                // along the Y axis
	TrackUpper                            // north corner chord
	TrackLower                            // south corner chord
	TrackLeft                             // west corner chord
	TrackRight                            // east corner chord

	TrackAll = TrackX | TrackY | TrackUpper | TrackLower | TrackLeft | TrackRight
)

// TransportMode selects which transport network a track query refers to.
type TransportMode uint8

const (
	TransportRail TransportMode = iota
	TransportRoad
	TransportWater
	TransportAir
)

// DiagTrackBits returns the straight track running along the given
// diagonal direction's axis.
func DiagTrackBits(dir DiagDirection) TrackBits {
	if dir.Axis() == AxisX {
		return TrackX
	}
	return TrackY
}

// RaisedCornerTrack returns the chord track sitting on the raised corner of
// a one-corner slope, or TrackNone for any other slope. That chord is the
// only track that survives on the dry half of a part-flooded rail tile.
func RaisedCornerTrack(s Slope) TrackBits {
	switch s {
	case SlopeW:
		return TrackLeft
	case SlopeS:
		return TrackLower
	case SlopeE:
		return TrackRight
	case SlopeN:
		return TrackUpper
	}
	return TrackNone
}

// AxisTrackBits returns the straight track along an axis.
func AxisTrackBits(a Axis) TrackBits {
	if a == AxisX {
		return TrackX
	}
	return TrackY
}
