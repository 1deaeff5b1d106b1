package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Point2D represents a position in the printer's XY plane
type Point2D struct {
	X, Y float64
}

// NewPoint2D creates a new 2D point
func NewPoint2D(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

func (p Point2D) vec() mgl64.Vec2 {
	return mgl64.Vec2{p.X, p.Y}
}

func fromVec(v mgl64.Vec2) Point2D {
	return Point2D{X: v[0], Y: v[1]}
}

// Add returns the sum of two points
func (p Point2D) Add(other Point2D) Point2D {
	return fromVec(p.vec().Add(other.vec()))
}

// Sub returns the difference between two points
func (p Point2D) Sub(other Point2D) Point2D {
	return fromVec(p.vec().Sub(other.vec()))
}

// Mul multiplies the point by a scalar
func (p Point2D) Mul(scalar float64) Point2D {
	return fromVec(p.vec().Mul(scalar))
}

// Distance returns the Euclidean distance between two points
func (p Point2D) Distance(other Point2D) float64 {
	return p.vec().Sub(other.vec()).Len()
}

// Lerp walks from p towards other by the fraction t
func (p Point2D) Lerp(other Point2D, t float64) Point2D {
	return p.Add(other.Sub(p).Mul(t))
}

// DistancePointToPoint returns the Euclidean distance between a and b
func DistancePointToPoint(a, b Point2D) float64 {
	return a.Distance(b)
}

// MapRange remaps value from the domain [inLo, inHi] onto [outLo, outHi].
// A zero-width domain yields outLo.
func MapRange(inLo, inHi, outLo, outHi, value float64) float64 {
	if inHi-inLo == 0 {
		return outLo
	}
	return outLo + (value-inLo)*(outHi-outLo)/(inHi-inLo)
}

// IsFinite reports whether v is neither NaN nor infinite
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
