package gradient

import (
	"fmt"
	"time"

	"github.com/philipparndt/gradient-infill/pkg/gcode"
)

// Stats summarizes one processing run
type Stats struct {
	TotalLines        int
	OutputLines       int
	ModifiedLines     int // infill extrusion lines rewritten, counted once each
	Layers            int
	PerimeterSegments int
	DroppedFeedrates  int // repeated feedrate-only commands removed from infill
	UnreferencedMoves int // infill moves rewritten before any wall was seen

	Pattern     gcode.InfillPattern
	PatternName string // raw header value, empty when the header is missing

	RelativeExtrusion bool
	ArcLines          []string
	AlreadyProcessed  bool

	Duration time.Duration
}

// ArcsUsed reports whether G2/G3 commands were found inside infill
func (s *Stats) ArcsUsed() bool {
	return len(s.ArcLines) > 0
}

// Changed reports whether any line was rewritten
func (s *Stats) Changed() bool {
	return s.ModifiedLines > 0
}

// Warnings returns the non-fatal conditions of the run in a printable form
func (s *Stats) Warnings() []string {
	var warnings []string
	if s.AlreadyProcessed {
		warnings = append(warnings, "the file was already processed, flows compound on every run")
	}
	if s.ArcsUsed() {
		warnings = append(warnings, fmt.Sprintf("the infill contains %d G2/G3 arc move(s), they are left unmodified", len(s.ArcLines)))
	}
	if s.UnreferencedMoves > 0 {
		warnings = append(warnings, "some infill was reached before any inner wall, it was printed at minimum flow")
	}
	if !s.Changed() {
		warnings = append(warnings, "no changes were made to the file, check the slicer settings and parameters")
	}
	return warnings
}
