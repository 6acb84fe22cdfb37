package projection

import "github.com/go-gl/mathgl/mgl32"

// BuilderOption configures a Projection during construction.
type BuilderOption func(*Projection)

// WithMode sets the initial projection mode.
//
// Parameters:
//   - mode: the projection mode to start in
//
// Returns:
//   - BuilderOption: the option function
func WithMode(mode Mode) BuilderOption {
	return func(p *Projection) {
		p.mode = mode
	}
}

// WithFOV sets the vertical field of view in degrees.
//
// Parameters:
//   - fov: the field of view in degrees
//
// Returns:
//   - BuilderOption: the option function
func WithFOV(fov float32) BuilderOption {
	return func(p *Projection) {
		p.fov = fov
	}
}

// WithClipPlanes sets the near and far clip distances.
//
// Parameters:
//   - near: the near clip distance, must be positive
//   - far: the far clip distance, must exceed near
//
// Returns:
//   - BuilderOption: the option function
func WithClipPlanes(near, far float32) BuilderOption {
	return func(p *Projection) {
		p.near = near
		p.far = far
	}
}

// WithOrthoBounds sets the orthographic left-bottom and right-top corners.
//
// Parameters:
//   - lb: the left-bottom corner, both components negative
//   - rt: the right-top corner, both components positive
//
// Returns:
//   - BuilderOption: the option function
func WithOrthoBounds(lb, rt mgl32.Vec2) BuilderOption {
	return func(p *Projection) {
		p.orthoLB = lb
		p.orthoRT = rt
	}
}

// WithCylCamera sets the cylindrical camera position (also recorded as the
// reset default), screen radius and screen height.
//
// Parameters:
//   - pos: the camera position in homogeneous coordinates
//   - radius: the cylindrical screen radius
//   - height: the cylindrical screen height
//
// Returns:
//   - BuilderOption: the option function
func WithCylCamera(pos mgl32.Vec4, radius, height float32) BuilderOption {
	return func(p *Projection) {
		p.cylCamPos = pos
		p.cylCamPosDefault = pos
		p.cylRadius = radius
		p.cylHeight = height
	}
}
