package gradient

import (
	"fmt"
	"math"

	"github.com/philipparndt/gradient-infill/pkg/gcode"
	"github.com/philipparndt/gradient-infill/pkg/geometry"
)

// Both strategies divide the feedrate by the factor the extrusion is multiplied
// by. The trailing remainder of a linear move always uses MaxFlow though, so the
// strategies disagree for the same geometry. Kept as is until it is clear which
// one is intended.

// MaxSubdivisions bounds the number of lines a single linear move may expand into
const MaxSubdivisions = 100000

// rewriteSmallSegments scales the whole move by the factor of its midpoint
func (p *Processor) rewriteSmallSegments(line gcode.Line, start, target geometry.Point2D, extrusion float64) []string {
	distance := p.perimeters.NearestDistance(geometry.NewSegment(start, target))
	return []string{p.scaleLine(line, extrusion, p.params.FlowMultiplier(distance))}
}

// rewriteLinear splits the move into StepLength pieces, each scaled by its own
// distance to the walls, followed by one line for the leftover distance.
// Moves shorter than two steps are scaled by MaxFlow as a whole.
func (p *Processor) rewriteLinear(line gcode.Line, start, target geometry.Point2D, extrusion float64) ([]string, error) {
	length := start.Distance(target)
	steps := 1.0
	if length > 0 {
		steps = length / p.params.StepLength()
	}
	if math.IsNaN(steps) || steps > MaxSubdivisions {
		return nil, fmt.Errorf("%w: %.4g mm move needs %.4g pieces of %.4g mm",
			ErrTooManySubdivisions, length, steps, p.params.StepLength())
	}
	if steps < 2 {
		return []string{p.scaleLine(line, extrusion, p.params.MaxMultiplier())}, nil
	}

	perStep := extrusion / steps
	delta := target.Sub(start).Mul(1 / steps)
	whole := int(steps)

	out := make([]string, 0, whole+1)
	current := start
	for i := 0; i < whole; i++ {
		end := current.Add(delta)
		m := p.params.FlowMultiplier(p.perimeters.NearestDistance(geometry.NewSegment(current, end)))
		out = append(out, gcode.ExtrusionCommand(end.X, end.Y, perStep*m, p.compensatedFeedrate(m)))
		current = end
	}

	ratio := current.Distance(target) / length
	maxM := p.params.MaxMultiplier()
	out = append(out, gcode.ExtrusionCommand(target.X, target.Y, ratio*extrusion*maxM, p.compensatedFeedrate(maxM)))
	return out, nil
}

// scaleLine rewrites the E word of line by factor m and adds a compensated
// feedrate when the line has none of its own
func (p *Processor) scaleLine(line gcode.Line, extrusion, m float64) string {
	out := line.WithWord('E', extrusion*m, gcode.ExtrusionDecimals)
	if !line.Has('F') {
		if f := p.compensatedFeedrate(m); f > 0 {
			out = out.WithWord('F', f, gcode.FeedrateDecimals)
		}
	}
	return out.String()
}

func (p *Processor) compensatedFeedrate(m float64) float64 {
	if p.feedrate <= 0 || m <= 0 {
		return 0
	}
	return p.feedrate / m
}
