package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/philipparndt/gradient-infill/pkg/gradient"
)

// FileName is the name of the settings file stored next to the executable
const FileName = "gradient-infill.toml"

// Default values used when the settings file lacks a key
const (
	DefaultMaxFlow                = 250.0
	DefaultMinFlow                = 50.0
	DefaultGradientThickness      = 6.0
	DefaultGradientDiscretization = 4.0
)

// Settings holds the persisted gradient parameters
type Settings struct {
	MaxFlow                float64 `toml:"max_flow"`
	MinFlow                float64 `toml:"min_flow"`
	GradientThickness      float64 `toml:"gradient_thickness"`
	GradientDiscretization float64 `toml:"gradient_discretization"`
}

// Defaults returns the built-in settings
func Defaults() Settings {
	return Settings{
		MaxFlow:                DefaultMaxFlow,
		MinFlow:                DefaultMinFlow,
		GradientThickness:      DefaultGradientThickness,
		GradientDiscretization: DefaultGradientDiscretization,
	}
}

// Params converts the settings into processing parameters
func (s Settings) Params() gradient.Params {
	return gradient.Params{
		MaxFlow:                s.MaxFlow,
		MinFlow:                s.MinFlow,
		GradientThickness:      s.GradientThickness,
		GradientDiscretization: s.GradientDiscretization,
	}
}

// LoadResult describes what Load had to do to the settings file
type LoadResult struct {
	Settings Settings
	Path     string
	Created  bool     // file did not exist and was written with defaults
	Healed   []string // keys that were missing and have been added
}

// Load reads the settings file at path. A missing file is created with the
// defaults, missing keys are filled in with their defaults and written back.
func Load(path string) (*LoadResult, error) {
	result := &LoadResult{Path: path, Settings: Defaults()}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := Save(path, result.Settings); err != nil {
			return nil, err
		}
		result.Created = true
		return result, nil
	}

	md, err := toml.DecodeFile(path, &result.Settings)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	for _, key := range []string{"max_flow", "min_flow", "gradient_thickness", "gradient_discretization"} {
		if !md.IsDefined(key) {
			result.Healed = append(result.Healed, key)
		}
	}
	if len(result.Healed) > 0 {
		if err := Save(path, result.Settings); err != nil {
			return nil, err
		}
	}

	if err := result.Settings.Params().Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	return result, nil
}

// Save writes the settings to path
func Save(path string, s Settings) error {
	var buf bytes.Buffer
	buf.WriteString("# Gradient infill settings\n")
	buf.WriteString("# max_flow and min_flow are percentages, gradient_thickness is in mm,\n")
	buf.WriteString("# gradient_discretization is the number of steps per gradient for linear infill.\n")
	if err := toml.NewEncoder(&buf).Encode(s); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultPath returns the settings file location next to the running executable
func DefaultPath() (string, error) {
	dir, err := ApplicationDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// ApplicationDir returns the directory of the running executable with symlinks resolved
func ApplicationDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}
