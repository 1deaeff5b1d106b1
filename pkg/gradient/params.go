package gradient

import (
	"fmt"
	"math"

	"github.com/philipparndt/gradient-infill/pkg/geometry"
)

// Params controls the shape of the flow gradient
type Params struct {
	MaxFlow                float64 // flow in percent right at the perimeter
	MinFlow                float64 // flow in percent at and beyond GradientThickness
	GradientThickness      float64 // width of the gradient band in mm
	GradientDiscretization float64 // sub-segments per GradientThickness for linear infill
}

// Validate checks that every parameter is a usable positive number
func (p Params) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"max flow", p.MaxFlow},
		{"min flow", p.MinFlow},
		{"gradient thickness", p.GradientThickness},
		{"gradient discretization", p.GradientDiscretization},
	}
	for _, f := range fields {
		if !geometry.IsFinite(f.value) || f.value <= 0 {
			return fmt.Errorf("invalid %s: %v (must be a positive number)", f.name, f.value)
		}
	}
	return nil
}

// MaxMultiplier returns MaxFlow as a factor
func (p Params) MaxMultiplier() float64 {
	return p.MaxFlow / 100
}

// MinMultiplier returns MinFlow as a factor
func (p Params) MinMultiplier() float64 {
	return p.MinFlow / 100
}

// StepLength returns the length of one linear sub-segment
func (p Params) StepLength() float64 {
	return p.GradientThickness / p.GradientDiscretization
}

// FlowMultiplier maps a distance to the nearest perimeter onto an extrusion factor.
// Inside the gradient band the factor falls linearly from MaxFlow to MinFlow,
// outside it stays at MinFlow.
func (p Params) FlowMultiplier(distance float64) float64 {
	if distance < p.GradientThickness {
		return geometry.MapRange(0, p.GradientThickness, p.MaxMultiplier(), p.MinMultiplier(),
			math.Min(distance, p.GradientThickness))
	}
	return p.MinMultiplier()
}
