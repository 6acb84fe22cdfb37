package renderable

import "github.com/go-gl/mathgl/mgl32"

// MeshBuilderOption configures a Mesh during construction.
type MeshBuilderOption func(*Mesh)

// WithTwoDimensional marks the mesh as a flat overlay that must not rotate
// with the scene.
//
// Returns:
//   - MeshBuilderOption: the option function
func WithTwoDimensional() MeshBuilderOption {
	return func(m *Mesh) {
		m.twoDimensional = true
	}
}

// WithAlpha sets the initial opacity, clamped to [0, 1].
//
// Parameters:
//   - a: the opacity
//
// Returns:
//   - MeshBuilderOption: the option function
func WithAlpha(a float32) MeshBuilderOption {
	return func(m *Mesh) {
		m.SetAlpha(a)
	}
}

// WithOffset sets the mesh's own translation within the scene.
//
// Parameters:
//   - v: the translation
//
// Returns:
//   - MeshBuilderOption: the option function
func WithOffset(v mgl32.Vec3) MeshBuilderOption {
	return func(m *Mesh) {
		m.offset = v
	}
}

// WithHidden starts the mesh hidden.
//
// Returns:
//   - MeshBuilderOption: the option function
func WithHidden() MeshBuilderOption {
	return func(m *Mesh) {
		m.hidden = true
	}
}
