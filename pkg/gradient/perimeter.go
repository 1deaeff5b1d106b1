package gradient

import "github.com/philipparndt/gradient-infill/pkg/geometry"

// PerimeterSet holds the wall segments collected so far, in file order
type PerimeterSet struct {
	segments []geometry.Segment
}

// NewPerimeterSet creates an empty set
func NewPerimeterSet() *PerimeterSet {
	return &PerimeterSet{segments: make([]geometry.Segment, 0)}
}

// Add appends a wall segment
func (ps *PerimeterSet) Add(segment geometry.Segment) {
	ps.segments = append(ps.segments, segment)
}

// Len returns the number of collected segments
func (ps *PerimeterSet) Len() int {
	return len(ps.segments)
}

// NearestDistance returns the distance from the midpoint of move to the closest wall
func (ps *PerimeterSet) NearestDistance(move geometry.Segment) float64 {
	return geometry.NearestDistance(move, ps.segments)
}
