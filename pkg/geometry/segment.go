package geometry

import "math"

// Segment is a finite line between two points
type Segment struct {
	Point1, Point2 Point2D
}

// NewSegment creates a new segment
func NewSegment(p1, p2 Point2D) Segment {
	return Segment{Point1: p1, Point2: p2}
}

// Midpoint returns the point halfway between both ends
func (s Segment) Midpoint() Point2D {
	return s.Point1.Lerp(s.Point2, 0.5)
}

// Length returns the distance between both ends
func (s Segment) Length() float64 {
	return s.Point1.Distance(s.Point2)
}

// DistanceTo returns the distance from point to the closest point of the segment.
//
// The projection of point onto the segment direction is clamped to the segment,
// so the result is measured against the finite line. A degenerate segment
// (both ends equal) reports 0.
func (s Segment) DistanceTo(point Point2D) float64 {
	dir := s.Point2.vec().Sub(s.Point1.vec())
	norm := dir.Dot(dir)
	if norm == 0 {
		return 0
	}

	u := point.vec().Sub(s.Point1.vec()).Dot(dir) / norm
	u = math.Max(math.Min(u, 1), 0)

	foot := s.Point1.vec().Add(dir.Mul(u))
	return foot.Sub(point.vec()).Len()
}

// DistancePointToSegment returns the distance from point to the finite segment
func DistancePointToSegment(segment Segment, point Point2D) float64 {
	return segment.DistanceTo(point)
}

// NearestDistance returns the distance from the midpoint of move to the
// closest segment in segments, or +Inf when segments is empty.
func NearestDistance(move Segment, segments []Segment) float64 {
	mid := move.Midpoint()
	nearest := math.Inf(1)
	for _, s := range segments {
		if d := s.DistanceTo(mid); d < nearest {
			nearest = d
		}
	}
	return nearest
}
