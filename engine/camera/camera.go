package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera holds the scene-level view state: a translation placing the scene in
// front of the viewer and a unit quaternion for its orientation. Both carry a
// default captured at configuration time so the view can be reset.
//
// Single-threaded: the camera is owned by the thread driving the event loop.
type Camera struct {
	translation        mgl32.Vec3
	translationDefault mgl32.Vec3

	rotation        mgl32.Quat
	rotationDefault mgl32.Quat
}

// New creates a Camera with the stock view defaults: the scene pushed back to
// z = -5 with an identity orientation.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - *Camera: the newly created camera
func New(options ...BuilderOption) *Camera {
	c := &Camera{
		translation:        mgl32.Vec3{0, 0, -5},
		translationDefault: mgl32.Vec3{0, 0, -5},
		rotation:           mgl32.QuatIdent(),
		rotationDefault:    mgl32.QuatIdent(),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Translation returns the scene translation.
func (c *Camera) Translation() mgl32.Vec3 { return c.translation }

// SetTranslation sets the scene translation and records it as the default
// restored by Reset.
//
// Parameters:
//   - t: the new scene translation
func (c *Camera) SetTranslation(t mgl32.Vec3) {
	c.translation = t
	c.translationDefault = t
}

// SetTranslationX sets one component of the scene translation and its reset
// default, leaving the other components alone.
func (c *Camera) SetTranslationX(x float32) {
	c.translation[0] = x
	c.translationDefault[0] = x
}

// SetTranslationY sets the y component and its reset default.
func (c *Camera) SetTranslationY(y float32) {
	c.translation[1] = y
	c.translationDefault[1] = y
}

// SetTranslationZ sets the z component and its reset default. Negative z
// moves the scene away from the viewpoint.
func (c *Camera) SetTranslationZ(z float32) {
	c.translation[2] = z
	c.translationDefault[2] = z
}

// Translate shifts the scene translation by (dx, dy, dz) without touching the
// default.
func (c *Camera) Translate(dx, dy, dz float32) {
	c.translation[0] += dx
	c.translation[1] += dy
	c.translation[2] += dz
}

// Rotation returns the scene orientation quaternion.
func (c *Camera) Rotation() mgl32.Quat { return c.rotation }

// SetRotation sets the scene orientation and records it as the default
// restored by Reset. The quaternion is normalized on the way in.
//
// Parameters:
//   - q: the new scene orientation
func (c *Camera) SetRotation(q mgl32.Quat) {
	q = q.Normalize()
	c.rotation = q
	c.rotationDefault = q
}

// Rotate composes an axis-angle rotation onto the current orientation and
// renormalizes. The sign convention matches drag gestures: a positive angle
// turns the scene against the drag direction.
//
// Parameters:
//   - axis: the rotation axis, need not be unit length
//   - angle: the rotation amount in radians
func (c *Camera) Rotate(axis mgl32.Vec3, angle float32) {
	c.rotation = c.rotation.Mul(mgl32.QuatRotate(-angle, axis.Normalize())).Normalize()
}

// ApplyGesture replaces the orientation with the gesture-start orientation
// composed with an axis-angle rotation. Gestures always rebuild from the
// saved orientation rather than accumulating per move event, so a drag is
// exactly reproducible and free of incremental drift.
//
// Parameters:
//   - saved: the orientation captured at gesture start
//   - axis: the rotation axis, need not be unit length
//   - angle: the rotation amount in radians
func (c *Camera) ApplyGesture(saved mgl32.Quat, axis mgl32.Vec3, angle float32) {
	c.rotation = saved.Mul(mgl32.QuatRotate(-angle, axis.Normalize())).Normalize()
}

// Reset restores the translation and orientation to their configured
// defaults.
func (c *Camera) Reset() {
	c.translation = c.translationDefault
	c.rotation = c.rotationDefault
}

// SceneMatrix returns the combined scene transform, translation applied after
// rotation.
//
// Returns:
//   - mgl32.Mat4: Translate * Rotate
func (c *Camera) SceneMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(c.translation.X(), c.translation.Y(), c.translation.Z()).
		Mul4(c.rotation.Mat4())
}

// TranslationMatrix returns the translation component alone, used for
// renderables that must stay screen-aligned.
func (c *Camera) TranslationMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(c.translation.X(), c.translation.Y(), c.translation.Z())
}

// RotationMatrix returns the orientation component alone, used by the
// cylindrical path where the camera position uniform replaces the
// translation.
func (c *Camera) RotationMatrix() mgl32.Mat4 {
	return c.rotation.Mat4()
}
