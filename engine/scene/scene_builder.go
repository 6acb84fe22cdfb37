package scene

import "visage/engine/renderable"

// BuilderOption configures a Scene during construction.
type BuilderOption func(*Scene)

// WithTitle sets the scene title.
//
// Parameters:
//   - t: the title text
//
// Returns:
//   - BuilderOption: the option function
func WithTitle(t *renderable.Text) BuilderOption {
	return func(s *Scene) {
		s.title = t
	}
}

// WithRenderables pre-registers renderables in the given order.
//
// Parameters:
//   - rs: the renderables to register
//
// Returns:
//   - BuilderOption: the option function
func WithRenderables(rs ...renderable.Renderable) BuilderOption {
	return func(s *Scene) {
		s.renderables = append(s.renderables, rs...)
	}
}
