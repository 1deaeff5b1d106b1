package config

import "github.com/spf13/pflag"

// Overrides are per-invocation values that take precedence over the stored settings.
// A nil field keeps the stored value.
type Overrides struct {
	MaxFlow                *float64
	MinFlow                *float64
	GradientThickness      *float64
	GradientDiscretization *float64
}

// Apply returns s with every set override applied. s itself is not modified.
func (o Overrides) Apply(s Settings) Settings {
	if o.MaxFlow != nil {
		s.MaxFlow = *o.MaxFlow
	}
	if o.MinFlow != nil {
		s.MinFlow = *o.MinFlow
	}
	if o.GradientThickness != nil {
		s.GradientThickness = *o.GradientThickness
	}
	if o.GradientDiscretization != nil {
		s.GradientDiscretization = *o.GradientDiscretization
	}
	return s
}

// Flag names of the override options
const (
	FlagMaxFlow                = "max-flow"
	FlagMinFlow                = "min-flow"
	FlagGradientThickness      = "gradient-thickness"
	FlagGradientDiscretization = "gradient-discretization"
)

// OverrideFlags binds the override options to a flag set
type OverrideFlags struct {
	fs                     *pflag.FlagSet
	maxFlow                float64
	minFlow                float64
	gradientThickness      float64
	gradientDiscretization float64
}

// BindOverrideFlags registers the override options on fs
func BindOverrideFlags(fs *pflag.FlagSet) *OverrideFlags {
	f := &OverrideFlags{fs: fs}
	fs.Float64Var(&f.maxFlow, FlagMaxFlow, 0, "Maximum flow in percent at the perimeter (overrides the config file)")
	fs.Float64Var(&f.minFlow, FlagMinFlow, 0, "Minimum flow in percent beyond the gradient (overrides the config file)")
	fs.Float64Var(&f.gradientThickness, FlagGradientThickness, 0, "Gradient thickness in mm (overrides the config file)")
	fs.Float64Var(&f.gradientDiscretization, FlagGradientDiscretization, 0, "Gradient steps for linear infill (overrides the config file)")
	return f
}

// Overrides returns only the options the user actually set
func (f *OverrideFlags) Overrides() Overrides {
	var o Overrides
	if f.fs.Changed(FlagMaxFlow) {
		o.MaxFlow = &f.maxFlow
	}
	if f.fs.Changed(FlagMinFlow) {
		o.MinFlow = &f.minFlow
	}
	if f.fs.Changed(FlagGradientThickness) {
		o.GradientThickness = &f.gradientThickness
	}
	if f.fs.Changed(FlagGradientDiscretization) {
		o.GradientDiscretization = &f.gradientDiscretization
	}
	return o
}
