package gcode

import "strings"

const typePrefix = ";TYPE:"

// Section markers emitted by the supported slicers. Matching is by prefix.
var (
	innerWallMarkers = []string{
		";TYPE:Inner wall",  // OrcaSlicer, Bambu Studio
		";TYPE:Perimeter",   // PrusaSlicer
		";TYPE:WALL-INNER",  // Cura
	}
	endInnerWallMarkers = []string{
		";TYPE:Outer wall",
		";TYPE:Solid infill",
		";TYPE:Skin",
		";TYPE:External perimeter",
		";TYPE:WALL-OUTER",
		";TYPE:SKIN",
	}
	infillMarkers = []string{
		";TYPE:Sparse infill",
		";TYPE:Infill",
		";TYPE:Internal infill",
		";TYPE:FILL",
	}
	layerMarkers = []string{
		";LAYER_CHANGE",
		";LAYER:",
	}
)

func hasAnyPrefix(line string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

// IsSectionMarker reports whether the line announces a new extrusion type
func IsSectionMarker(line string) bool {
	return strings.HasPrefix(line, typePrefix)
}

// IsLayerChange reports whether the line starts a new layer
func IsLayerChange(line string) bool {
	return hasAnyPrefix(line, layerMarkers)
}

// IsBeginInnerWall reports whether the line starts an inner wall region
func IsBeginInnerWall(line string) bool {
	return hasAnyPrefix(line, innerWallMarkers)
}

// IsEndInnerWall reports whether the line starts an outer wall, solid infill or skin region
func IsEndInnerWall(line string) bool {
	return hasAnyPrefix(line, endInnerWallMarkers)
}

// IsBeginInfill reports whether the line starts a sparse infill region
func IsBeginInfill(line string) bool {
	return hasAnyPrefix(line, infillMarkers)
}
