package window

import "visage/engine/profiler"

// BuilderOption configures a Window during construction.
type BuilderOption func(*Window)

// WithTitle sets the window title.
//
// Parameters:
//   - title: the title bar text
//
// Returns:
//   - BuilderOption: the option function
func WithTitle(title string) BuilderOption {
	return func(w *Window) {
		w.title = title
	}
}

// WithSize sets the initial window size in screen coordinates.
//
// Parameters:
//   - width, height: the window size
//
// Returns:
//   - BuilderOption: the option function
func WithSize(width, height int) BuilderOption {
	return func(w *Window) {
		w.width = width
		w.height = height
	}
}

// WithHidden creates the window invisible, for offscreen rendering.
//
// Returns:
//   - BuilderOption: the option function
func WithHidden() BuilderOption {
	return func(w *Window) {
		w.hidden = true
	}
}

// WithProfiler enables per-frame statistics logging in the run loop.
//
// Parameters:
//   - p: the profiler to feed
//
// Returns:
//   - BuilderOption: the option function
func WithProfiler(p *profiler.Profiler) BuilderOption {
	return func(w *Window) {
		w.prof = p
	}
}
