package gcode

import (
	"regexp"
	"strings"
)

// InfillPattern selects how infill moves are rescaled
type InfillPattern int

const (
	// PatternLinear covers patterns with long straight runs that must be subdivided
	PatternLinear InfillPattern = iota
	// PatternSmallSegments covers patterns whose moves are already short
	PatternSmallSegments
)

func (p InfillPattern) String() string {
	switch p {
	case PatternSmallSegments:
		return "SMALL_SEGMENTS"
	default:
		return "LINEAR"
	}
}

var patternHeaderRegex = regexp.MustCompile(`^;\s*(?:sparse_infill_pattern|fill_pattern)\s*=\s*(.+)`)

var smallSegmentPatterns = map[string]bool{
	"gyroid":        true,
	"honeycomb":     true,
	"adaptivecubic": true,
	"cubic":         true,
	"tetrahedral":   true,
}

// PatternFromName classifies a slicer infill pattern name
func PatternFromName(name string) InfillPattern {
	if smallSegmentPatterns[strings.ToLower(strings.TrimSpace(name))] {
		return PatternSmallSegments
	}
	return PatternLinear
}

// DetectPattern scans the file for the slicer's sparse infill pattern header
// and returns the strategy together with the lower-cased name found.
// Files without the header are treated as linear.
func DetectPattern(lines []string) (InfillPattern, string) {
	for _, line := range lines {
		if m := patternHeaderRegex.FindStringSubmatch(line); m != nil {
			name := strings.ToLower(strings.TrimSpace(m[1]))
			return PatternFromName(name), name
		}
	}
	return PatternLinear, ""
}
