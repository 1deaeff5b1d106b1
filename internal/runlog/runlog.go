package runlog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/philipparndt/gradient-infill/internal/config"
	"github.com/philipparndt/gradient-infill/pkg/gradient"
)

// Entry is everything recorded about one processing run
type Entry struct {
	Time     time.Time
	Input    string
	Output   string
	Stats    *gradient.Stats
	Settings config.Settings
	Version  string
}

// FileName returns the log file name for an input file: its base name with a .log extension
func FileName(input string) string {
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".log"
}

// WriteFile writes the entry to dir/<input>.log and returns the path
func WriteFile(dir string, e Entry) (string, error) {
	path := filepath.Join(dir, FileName(e.Input))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create log file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	Write(w, e)
	if err := w.Flush(); err != nil {
		return "", fmt.Errorf("failed to write log file: %w", err)
	}
	return path, nil
}

// Write formats the entry as plain text
func Write(w io.Writer, e Entry) {
	s := e.Stats

	fmt.Fprintf(w, "Processing Date and Time: %s\n", e.Time.Format("2006-01-02 15:04:05"))
	if e.Version != "" {
		fmt.Fprintf(w, "Version: %s\n", e.Version)
	}
	fmt.Fprintf(w, "G-code File: %s\n", e.Input)
	if e.Output != "" && e.Output != e.Input {
		fmt.Fprintf(w, "Output File: %s\n", e.Output)
	}
	fmt.Fprintf(w, "Processing Time: %.2f seconds\n", s.Duration.Seconds())
	fmt.Fprintf(w, "Total Lines Processed: %d\n", s.TotalLines)
	fmt.Fprintf(w, "Output Lines: %d\n", s.OutputLines)
	fmt.Fprintf(w, "Modifications Made: %d\n", s.ModifiedLines)
	fmt.Fprintf(w, "Changes Made to File: %s\n", yesNo(s.Changed()))
	if s.PatternName != "" {
		fmt.Fprintf(w, "Infill Type: %s (%s)\n", s.Pattern, s.PatternName)
	} else {
		fmt.Fprintf(w, "Infill Type: %s (no pattern header found)\n", s.Pattern)
	}
	fmt.Fprintf(w, "Relative Extrusion Used: %s\n", yesNo(s.RelativeExtrusion))
	fmt.Fprintf(w, "Layers: %d\n", s.Layers)
	fmt.Fprintf(w, "Perimeter Segments: %d\n", s.PerimeterSegments)
	if s.DroppedFeedrates > 0 {
		fmt.Fprintf(w, "Duplicate Feedrate Commands Removed: %d\n", s.DroppedFeedrates)
	}
	fmt.Fprintf(w, "G2/G3 Commands Used: %s\n", yesNo(s.ArcsUsed()))
	if s.ArcsUsed() {
		fmt.Fprintln(w, "G2/G3 Lines:")
		for _, line := range s.ArcLines {
			fmt.Fprintln(w, line)
		}
	}
	if warnings := s.Warnings(); len(warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warning := range warnings {
			fmt.Fprintf(w, "  %s\n", warning)
		}
	}
	fmt.Fprintln(w, "Settings Used:")
	fmt.Fprintf(w, "  MAX_FLOW: %v\n", e.Settings.MaxFlow)
	fmt.Fprintf(w, "  MIN_FLOW: %v\n", e.Settings.MinFlow)
	fmt.Fprintf(w, "  GRADIENT_THICKNESS: %v\n", e.Settings.GradientThickness)
	fmt.Fprintf(w, "  GRADIENT_DISCRETIZATION: %v\n", e.Settings.GradientDiscretization)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
