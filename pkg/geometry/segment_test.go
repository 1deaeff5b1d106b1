package geometry

import (
	"math"
	"testing"
)

func TestSegmentDistancePerpendicular(t *testing.T) {
	s := NewSegment(NewPoint2D(0, 0), NewPoint2D(10, 0))
	distance := DistancePointToSegment(s, NewPoint2D(5, 5))

	expected := 5.0
	if math.Abs(distance-expected) > 1e-10 {
		t.Errorf("Distance failed: expected %v, got %v", expected, distance)
	}
}

func TestSegmentDistanceClampsToEnds(t *testing.T) {
	s := NewSegment(NewPoint2D(0, 0), NewPoint2D(10, 0))

	// Beyond Point2 the infinite line would report 4, the segment reports the end distance
	distance := s.DistanceTo(NewPoint2D(13, 4))
	expected := 5.0
	if math.Abs(distance-expected) > 1e-10 {
		t.Errorf("Distance past end failed: expected %v, got %v", expected, distance)
	}

	distance = s.DistanceTo(NewPoint2D(-3, -4))
	if math.Abs(distance-expected) > 1e-10 {
		t.Errorf("Distance before start failed: expected %v, got %v", expected, distance)
	}
}

func TestSegmentDistanceDegenerate(t *testing.T) {
	s := NewSegment(NewPoint2D(2, 2), NewPoint2D(2, 2))
	for _, p := range []Point2D{NewPoint2D(2, 2), NewPoint2D(100, -7), NewPoint2D(0, 0)} {
		if d := s.DistanceTo(p); d != 0 {
			t.Errorf("Degenerate distance failed for %v: expected 0, got %v", p, d)
		}
	}
}

func TestSegmentDistanceNeverExceedsEndpoints(t *testing.T) {
	segments := []Segment{
		NewSegment(NewPoint2D(0, 0), NewPoint2D(10, 0)),
		NewSegment(NewPoint2D(-3, 7), NewPoint2D(4, -2)),
		NewSegment(NewPoint2D(1, 1), NewPoint2D(1, 9)),
	}
	points := []Point2D{
		NewPoint2D(5, 5), NewPoint2D(-20, 3), NewPoint2D(0.5, 0.5), NewPoint2D(100, 100), NewPoint2D(1, 5),
	}

	for _, s := range segments {
		for _, p := range points {
			d := s.DistanceTo(p)
			if d > DistancePointToPoint(s.Point1, p)+1e-10 || d > DistancePointToPoint(s.Point2, p)+1e-10 {
				t.Errorf("Distance from %v to %v exceeds an endpoint distance: %v", p, s, d)
			}
		}
	}
}

func TestSegmentMidpoint(t *testing.T) {
	s := NewSegment(NewPoint2D(0, 5), NewPoint2D(10, 5))

	expected := NewPoint2D(5, 5)
	if s.Midpoint() != expected {
		t.Errorf("Midpoint failed: expected %v, got %v", expected, s.Midpoint())
	}
}

func TestNearestDistance(t *testing.T) {
	walls := []Segment{
		NewSegment(NewPoint2D(0, 0), NewPoint2D(10, 0)),
		NewSegment(NewPoint2D(0, 20), NewPoint2D(10, 20)),
	}
	move := NewSegment(NewPoint2D(0, 15), NewPoint2D(10, 15))

	distance := NearestDistance(move, walls)
	expected := 5.0
	if math.Abs(distance-expected) > 1e-10 {
		t.Errorf("NearestDistance failed: expected %v, got %v", expected, distance)
	}
}

func TestNearestDistanceEmpty(t *testing.T) {
	move := NewSegment(NewPoint2D(0, 0), NewPoint2D(1, 1))
	if d := NearestDistance(move, nil); !math.IsInf(d, 1) {
		t.Errorf("NearestDistance on empty set failed: expected +Inf, got %v", d)
	}
}
