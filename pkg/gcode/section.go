package gcode

// Section is the region of the toolpath the cursor is currently in
type Section int

const (
	SectionNone Section = iota
	SectionInnerWall
	SectionInfill
)

func (s Section) String() string {
	switch s {
	case SectionInnerWall:
		return "inner wall"
	case SectionInfill:
		return "infill"
	default:
		return "none"
	}
}

// SectionTracker follows ;TYPE: markers through the file.
// Only marker lines change the section.
type SectionTracker struct {
	current Section
}

// NewSectionTracker creates a tracker in SectionNone
func NewSectionTracker() *SectionTracker {
	return &SectionTracker{current: SectionNone}
}

// Current returns the section the cursor is in
func (t *SectionTracker) Current() Section {
	return t.current
}

// Observe feeds one raw line to the tracker and reports whether it was a
// section marker. Entering infill is reported on every infill marker, even
// when the previous section was already infill.
func (t *SectionTracker) Observe(line string) (marker bool) {
	if !IsSectionMarker(line) {
		return false
	}

	switch {
	case IsBeginInnerWall(line):
		t.current = SectionInnerWall
	case IsEndInnerWall(line):
		t.current = SectionNone
	case IsBeginInfill(line):
		t.current = SectionInfill
	default:
		t.current = SectionNone
	}
	return true
}
