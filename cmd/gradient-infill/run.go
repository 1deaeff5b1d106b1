package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/philipparndt/gradient-infill/internal/config"
	"github.com/philipparndt/gradient-infill/internal/runlog"
	"github.com/philipparndt/gradient-infill/pkg/gradient"
	"github.com/philipparndt/gradient-infill/version"
)

// loadSettings reads the settings file and applies the override flags
func loadSettings() (config.Settings, error) {
	path := configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return config.Settings{}, err
		}
	}

	result, err := config.Load(path)
	if err != nil {
		return config.Settings{}, err
	}
	if result.Created {
		fmt.Printf("Configuration file '%s' created with default values.\n", result.Path)
	}
	if len(result.Healed) > 0 {
		fmt.Printf("Configuration file '%s' updated with missing parameters: %s\n", result.Path, strings.Join(result.Healed, ", "))
	}

	settings := overrideFlags.Overrides().Apply(result.Settings)
	if err := settings.Params().Validate(); err != nil {
		return config.Settings{}, err
	}

	fmt.Printf("Using settings from configuration file '%s':\n", result.Path)
	printSettings(settings)
	return settings, nil
}

func printSettings(s config.Settings) {
	fmt.Printf("  max_flow = %v\n", s.MaxFlow)
	fmt.Printf("  min_flow = %v\n", s.MinFlow)
	fmt.Printf("  gradient_thickness = %v\n", s.GradientThickness)
	fmt.Printf("  gradient_discretization = %v\n", s.GradientDiscretization)
}

// processFile rewrites one file, reports the outcome and writes the run log
func processFile(input, output string, settings config.Settings) error {
	stats, err := gradient.ProcessFile(input, output, settings.Params(), gradient.Marker(version.GetFullVersion()))
	if err != nil {
		return fmt.Errorf("failed to process %s: %w", input, err)
	}

	fmt.Printf("Detected infill type: %s\n", stats.Pattern)
	printWarnings(stats)
	fmt.Printf("Modified %d of %d lines in %s\n", stats.ModifiedLines, stats.TotalLines, stats.Duration.Round(time.Millisecond))

	if noLog {
		return nil
	}
	entry := runlog.Entry{
		Time:     time.Now(),
		Input:    input,
		Output:   output,
		Stats:    stats,
		Settings: settings,
		Version:  version.GetFullVersion(),
	}
	dir := logDir
	if dir == "" {
		if dir, err = config.ApplicationDir(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to write log file: %v\n", err)
			return nil
		}
	}
	path, err := runlog.WriteFile(dir, entry)
	if err != nil {
		// the G-code is already written, a missing log is not fatal
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return nil
	}
	fmt.Printf("Log file written to: %s\n", path)
	return nil
}

func printWarnings(stats *gradient.Stats) {
	for _, w := range stats.Warnings() {
		fmt.Fprintf(os.Stderr, "WARNING: %s\n", w)
	}
}
