package gradient

import (
	"fmt"
	"strings"

	"github.com/philipparndt/gradient-infill/pkg/gcode"
	"github.com/philipparndt/gradient-infill/pkg/geometry"
)

// MarkerPrefix starts the comment appended to every processed file
const MarkerPrefix = "; gradient infill applied"

// Marker returns the comment line recording that a file was processed
func Marker(version string) string {
	return fmt.Sprintf("%s by gradient-infill %s", MarkerPrefix, version)
}

// Result is the rewritten file together with the statistics of the run
type Result struct {
	Lines []string
	Stats Stats
}

// Processor carries the state of one pass over a G-code file
type Processor struct {
	params     Params
	pattern    gcode.InfillPattern
	tracker    *gcode.SectionTracker
	perimeters *PerimeterSet

	position    geometry.Point2D
	hasPosition bool
	feedrate    float64 // feedrate in force inside the current infill region, 0 if unknown
	relative    bool

	lastFeedrateCommand string

	stats Stats
}

// NewProcessor creates a processor for a file using the given infill strategy
func NewProcessor(params Params, pattern gcode.InfillPattern) *Processor {
	return &Processor{
		params:     params,
		pattern:    pattern,
		tracker:    gcode.NewSectionTracker(),
		perimeters: NewPerimeterSet(),
		stats:      Stats{Pattern: pattern},
	}
}

// Process rewrites the infill of a complete file held in memory.
// Any error aborts the run and no lines are returned.
func Process(lines []string, params Params) (*Result, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	pattern, name := gcode.DetectPattern(lines)
	p := NewProcessor(params, pattern)

	out := make([]string, 0, len(lines))
	for i, raw := range lines {
		emitted, err := p.Step(raw)
		if err != nil {
			return nil, &LineError{Line: i + 1, Text: raw, Err: err}
		}
		out = append(out, emitted...)
	}

	stats := p.Stats()
	stats.TotalLines = len(lines)
	stats.OutputLines = len(out)
	stats.PatternName = name

	return &Result{Lines: out, Stats: stats}, nil
}

// Stats returns the statistics collected so far
func (p *Processor) Stats() Stats {
	s := p.stats
	s.PerimeterSegments = p.perimeters.Len()
	return s
}

// Step consumes one input line and returns the lines to emit in its place.
// The result is empty when the line is dropped.
func (p *Processor) Step(raw string) ([]string, error) {
	if gcode.IsLayerChange(raw) {
		p.stats.Layers++
	}
	if strings.HasPrefix(raw, MarkerPrefix) {
		p.stats.AlreadyProcessed = true
	}
	if p.tracker.Observe(raw) && p.tracker.Current() == gcode.SectionInfill {
		p.feedrate = 0
		p.lastFeedrateCommand = ""
	}

	line := gcode.Parse(raw)
	switch {
	case line.IsRelativeExtrusion():
		p.relative = true
		p.stats.RelativeExtrusion = true
	case line.IsAbsoluteExtrusion():
		p.relative = false
	}

	var out []string
	var err error
	switch p.tracker.Current() {
	case gcode.SectionInnerWall:
		err = p.collectPerimeter(line)
		out = []string{raw}
	case gcode.SectionInfill:
		out, err = p.processInfill(line)
	case gcode.SectionNone:
		out = []string{raw}
	}
	if err != nil {
		return nil, err
	}

	if err := p.trackPosition(line); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *Processor) trackPosition(line gcode.Line) error {
	if !line.IsPlanarMove() && !(line.IsArc() && line.Has('X') && line.Has('Y')) {
		return nil
	}
	xy, err := line.XY()
	if err != nil {
		return err
	}
	p.position = xy
	p.hasPosition = true
	return nil
}

// collectPerimeter records the wall segment ending at this line's target
func (p *Processor) collectPerimeter(line gcode.Line) error {
	if !line.IsExtrusionMove() {
		return nil
	}
	xy, err := line.XY()
	if err != nil {
		return err
	}
	if p.hasPosition {
		p.perimeters.Add(geometry.NewSegment(xy, p.position))
	}
	return nil
}

func (p *Processor) processInfill(line gcode.Line) ([]string, error) {
	if line.IsArc() {
		p.stats.ArcLines = append(p.stats.ArcLines, strings.TrimSpace(line.Raw))
		return []string{line.Raw}, nil
	}

	f, ok, err := line.Feedrate()
	if err != nil {
		return nil, err
	}
	if ok {
		p.feedrate = f
	}

	if line.IsFeedrateOnly() {
		cmd := strings.TrimSpace(line.Raw)
		if cmd == p.lastFeedrateCommand {
			p.stats.DroppedFeedrates++
			return nil, nil
		}
		p.lastFeedrateCommand = cmd
		return []string{line.Raw}, nil
	}
	if line.IsMove() {
		// any other move may change the modal feedrate
		p.lastFeedrateCommand = ""
	}

	if !line.IsExtrusionMove() {
		return []string{line.Raw}, nil
	}
	if !p.relative {
		return nil, ErrAbsoluteExtrusion
	}

	target, err := line.XY()
	if err != nil {
		return nil, err
	}
	extrusion, err := line.Value('E')
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingExtrusion, err)
	}

	start := target
	if p.hasPosition {
		start = p.position
	}
	if p.perimeters.Len() == 0 {
		p.stats.UnreferencedMoves++
	}

	var out []string
	switch p.pattern {
	case gcode.PatternSmallSegments:
		out = p.rewriteSmallSegments(line, start, target, extrusion)
	case gcode.PatternLinear:
		if out, err = p.rewriteLinear(line, start, target, extrusion); err != nil {
			return nil, err
		}
	}
	p.stats.ModifiedLines++
	return out, nil
}
