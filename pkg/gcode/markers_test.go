package gcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkers(t *testing.T) {
	assert.True(t, IsLayerChange(";LAYER_CHANGE"))
	assert.True(t, IsLayerChange(";LAYER:12"))
	assert.False(t, IsLayerChange("; layer_height = 0.2"))

	assert.True(t, IsBeginInnerWall(";TYPE:Inner wall"))
	assert.True(t, IsBeginInnerWall(";TYPE:Perimeter"))
	assert.True(t, IsBeginInnerWall(";TYPE:WALL-INNER"))
	assert.False(t, IsBeginInnerWall(";TYPE:External perimeter"))

	assert.True(t, IsEndInnerWall(";TYPE:Outer wall"))
	assert.True(t, IsEndInnerWall(";TYPE:Solid infill"))
	assert.True(t, IsEndInnerWall(";TYPE:Skin"))
	assert.True(t, IsEndInnerWall(";TYPE:External perimeter"))

	assert.True(t, IsBeginInfill(";TYPE:Sparse infill"))
	assert.True(t, IsBeginInfill(";TYPE:Internal infill"))
	assert.True(t, IsBeginInfill(";TYPE:FILL"))
	assert.False(t, IsBeginInfill(";TYPE:Solid infill"))
}

func TestSectionTracker(t *testing.T) {
	tr := NewSectionTracker()
	assert.Equal(t, SectionNone, tr.Current())

	steps := []struct {
		line     string
		marker   bool
		expected Section
	}{
		{"G1 X1 Y1", false, SectionNone},
		{";TYPE:Inner wall", true, SectionInnerWall},
		{"G1 X2 Y2 E1", false, SectionInnerWall},
		{";TYPE:Outer wall", true, SectionNone},
		{";TYPE:Sparse infill", true, SectionInfill},
		{"; a comment", false, SectionInfill},
		{";LAYER_CHANGE", false, SectionInfill},
		{";TYPE:Support", true, SectionNone},
		{";TYPE:Inner wall", true, SectionInnerWall},
		{";TYPE:Infill", true, SectionInfill},
	}

	for _, s := range steps {
		assert.Equal(t, s.marker, tr.Observe(s.line), s.line)
		assert.Equal(t, s.expected, tr.Current(), s.line)
	}
}

func TestDetectPattern(t *testing.T) {
	header := func(s string) []string {
		return []string{"; generated by OrcaSlicer", s, "G28"}
	}

	p, name := DetectPattern(header("; sparse_infill_pattern = gyroid"))
	assert.Equal(t, PatternSmallSegments, p)
	assert.Equal(t, "gyroid", name)

	p, _ = DetectPattern(header("; sparse_infill_pattern = AdaptiveCubic"))
	assert.Equal(t, PatternSmallSegments, p)

	p, name = DetectPattern(header("; sparse_infill_pattern = rectilinear"))
	assert.Equal(t, PatternLinear, p)
	assert.Equal(t, "rectilinear", name)

	p, name = DetectPattern(header("; fill_pattern = honeycomb"))
	assert.Equal(t, PatternSmallSegments, p)
	assert.Equal(t, "honeycomb", name)

	p, name = DetectPattern(header("; layer_height = 0.2"))
	assert.Equal(t, PatternLinear, p)
	assert.Empty(t, name)
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "12.5", FormatNumber(12.5, 3))
	assert.Equal(t, "3", FormatNumber(3.0, 5))
	assert.Equal(t, "0.12346", FormatNumber(0.123456, 5))
	assert.Equal(t, "0", FormatNumber(-0.0000001, 5))
	assert.Equal(t, "-1.5", FormatNumber(-1.5, 3))
}

func TestExtrusionCommand(t *testing.T) {
	assert.Equal(t, "G1 X1.5 Y5 E0.125 F1440", ExtrusionCommand(1.5, 5, 0.125, 1440))
	assert.Equal(t, "G1 X1.5 Y5 E0.125", ExtrusionCommand(1.5, 5, 0.125, 0))
}
