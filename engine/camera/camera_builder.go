package camera

import "github.com/go-gl/mathgl/mgl32"

// BuilderOption configures a Camera during construction.
type BuilderOption func(*Camera)

// WithTranslation sets the initial scene translation and its reset default.
//
// Parameters:
//   - t: the scene translation
//
// Returns:
//   - BuilderOption: the option function
func WithTranslation(t mgl32.Vec3) BuilderOption {
	return func(c *Camera) {
		c.translation = t
		c.translationDefault = t
	}
}

// WithRotation sets the initial scene orientation and its reset default. The
// quaternion is normalized.
//
// Parameters:
//   - q: the scene orientation
//
// Returns:
//   - BuilderOption: the option function
func WithRotation(q mgl32.Quat) BuilderOption {
	return func(c *Camera) {
		q = q.Normalize()
		c.rotation = q
		c.rotationDefault = q
	}
}
