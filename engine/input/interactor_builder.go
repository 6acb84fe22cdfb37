package input

// InteractorBuilderOption configures an Interactor during construction.
type InteractorBuilderOption func(*Interactor)

// WithWindowSize sets the initial window size used to normalize cursor
// positions.
//
// Parameters:
//   - width, height: the window size in pixels
//
// Returns:
//   - InteractorBuilderOption: the option function
func WithWindowSize(width, height int) InteractorBuilderOption {
	return func(it *Interactor) {
		it.windowW = width
		it.windowH = height
	}
}

// WithStepSize sets the translation step applied per scroll unit.
//
// Parameters:
//   - step: the step size in world units
//
// Returns:
//   - InteractorBuilderOption: the option function
func WithStepSize(step float32) InteractorBuilderOption {
	return func(it *Interactor) {
		it.stepSize = step
	}
}

// WithLocked starts the interactor with the scene lock engaged.
//
// Returns:
//   - InteractorBuilderOption: the option function
func WithLocked() InteractorBuilderOption {
	return func(it *Interactor) {
		it.locked = true
	}
}
