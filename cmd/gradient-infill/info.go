package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gradient-infill/pkg/gradient"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Analyze a G-code file without modifying it",
	Long:  "Run the gradient over the file in memory and show what would change, including the detected infill type and warnings.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	settings, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	stats, err := gradient.Analyze(filename, settings.Params())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error analyzing G-code file: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("G-code File Information")
	fmt.Println("=======================")
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Infill:")
	if stats.PatternName != "" {
		fmt.Printf("  Pattern: %s\n", stats.PatternName)
	} else {
		fmt.Printf("  Pattern: not found in header\n")
	}
	fmt.Printf("  Strategy: %s\n", stats.Pattern)
	fmt.Printf("  Relative extrusion: %t\n\n", stats.RelativeExtrusion)

	fmt.Println("Statistics:")
	fmt.Printf("  Lines: %d\n", stats.TotalLines)
	fmt.Printf("  Lines after processing: %d\n", stats.OutputLines)
	fmt.Printf("  Infill moves to rewrite: %d\n", stats.ModifiedLines)
	fmt.Printf("  Layers: %d\n", stats.Layers)
	fmt.Printf("  Perimeter segments: %d\n", stats.PerimeterSegments)
	fmt.Printf("  Duplicate feedrates: %d\n", stats.DroppedFeedrates)
	fmt.Printf("  Arc moves in infill: %d\n", len(stats.ArcLines))

	if warnings := stats.Warnings(); len(warnings) > 0 {
		fmt.Println("\nWarnings:")
		for _, w := range warnings {
			fmt.Printf("  %s\n", w)
		}
	}
}
