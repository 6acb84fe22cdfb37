package engine

import (
	"visage/engine/config"
	"visage/engine/profiler"
	"visage/engine/visual"
)

// BuilderOption configures an App during construction.
type BuilderOption func(*App)

// WithConfig supplies a complete configuration, replacing the defaults.
//
// Parameters:
//   - cfg: the configuration to use
//
// Returns:
//   - BuilderOption: the option function
func WithConfig(cfg config.Config) BuilderOption {
	return func(a *App) {
		a.cfg = cfg
	}
}

// WithProfiler enables frame statistics logging in the run loop.
//
// Parameters:
//   - p: the profiler to feed
//
// Returns:
//   - BuilderOption: the option function
func WithProfiler(p *profiler.Profiler) BuilderOption {
	return func(a *App) {
		a.prof = p
	}
}

// WithHidden creates the window invisible, for offscreen rendering.
//
// Returns:
//   - BuilderOption: the option function
func WithHidden() BuilderOption {
	return func(a *App) {
		a.hidden = true
	}
}

// WithVisualOptions forwards options to the visualization surface.
//
// Parameters:
//   - options: surface options to apply
//
// Returns:
//   - BuilderOption: the option function
func WithVisualOptions(options ...visual.BuilderOption) BuilderOption {
	return func(a *App) {
		a.visualOptions = append(a.visualOptions, options...)
	}
}
