package input

import (
	"github.com/go-gl/mathgl/mgl32"

	"visage/common"
	"visage/engine/camera"
	"visage/engine/projection"
)

// GestureMode identifies the pointer gesture in progress.
type GestureMode int

const (
	// GestureIdle means no button is held.
	GestureIdle GestureMode = iota

	// GestureRotate is the primary-button drag, turning the scene about an
	// axis perpendicular to the drag direction.
	GestureRotate

	// GestureRotateViewAxis is the primary-button drag with control held,
	// turning the scene about the view axis instead.
	GestureRotateViewAxis

	// GestureTranslate is the secondary-button drag, sliding the scene in the
	// view plane.
	GestureTranslate
)

// rotationGain converts world-space drag distance to degrees of rotation.
const rotationGain = 40.0

// Interactor converts pointer events into camera and projection updates. A
// drag is interpreted in world space: the press and current positions are
// un-projected onto the plane of the scene, and their difference drives the
// gesture.
//
// The scene lock freezes all pointer interaction while leaving rendering and
// non-view commands alive.
type Interactor struct {
	proj *projection.Projection
	cam  *camera.Camera

	mode     GestureMode
	cursor   mgl32.Vec2
	pressPos mgl32.Vec2

	// Captured at button press: rotation gestures rebuild from these rather
	// than accumulating per move event.
	savedRotation mgl32.Quat
	invScene      mgl32.Mat4

	windowW int
	windowH int

	locked   bool
	stepSize float32
}

// NewInteractor creates an Interactor bound to the given projection and
// camera. Panics when either is nil: the interactor cannot function without
// both collaborators.
//
// Parameters:
//   - proj: the projection manager
//   - cam: the scene camera
//   - options: functional options to configure the interactor
//
// Returns:
//   - *Interactor: the newly created interactor
func NewInteractor(proj *projection.Projection, cam *camera.Camera, options ...InteractorBuilderOption) *Interactor {
	if proj == nil || cam == nil {
		panic("input: interactor requires a projection and a camera")
	}
	it := &Interactor{
		proj:          proj,
		cam:           cam,
		savedRotation: mgl32.QuatIdent(),
		invScene:      mgl32.Ident4(),
		windowW:       640,
		windowH:       480,
		stepSize:      0.1,
	}
	for _, option := range options {
		option(it)
	}
	return it
}

// Mode returns the gesture in progress.
func (it *Interactor) Mode() GestureMode { return it.mode }

// Locked reports whether the scene lock is engaged.
func (it *Interactor) Locked() bool { return it.locked }

// ToggleLock flips the scene lock and returns the new state.
func (it *Interactor) ToggleLock() bool {
	it.locked = !it.locked
	return it.locked
}

// StepSize returns the translation step applied per scroll unit.
func (it *Interactor) StepSize() float32 { return it.stepSize }

// Cursor returns the last reported cursor position in pixels.
func (it *Interactor) Cursor() mgl32.Vec2 { return it.cursor }

// Resize records the new window size used to normalize cursor positions.
//
// Parameters:
//   - width, height: the window size in pixels
func (it *Interactor) Resize(width, height int) {
	it.windowW = width
	it.windowH = height
}

// ndc converts a pixel position to the -1..1 range. Both axes are normalized
// by the window width, which keeps the rotation gain isotropic: one pixel of
// drag means the same world motion horizontally and vertically.
func (it *Interactor) ndc(p mgl32.Vec2) mgl32.Vec2 {
	half := float32(it.windowW) * 0.5
	return mgl32.Vec2{(p.X() - half) / half, (p.Y() - half) / half}
}

// unprojectPair maps the press and current cursor positions onto the plane
// at the scene's depth, returning world-space x/y deltas between them.
func (it *Interactor) unprojectPair() (dx, dy float32) {
	p0 := it.ndc(it.pressPos)
	p1 := it.ndc(it.cursor)
	depth := it.cam.Translation().Z()

	w0 := it.proj.ScreenToWorld(p0, depth)
	w1 := it.proj.ScreenToWorld(p1, depth)
	return w1.X() - w0.X(), w1.Y() - w0.Y()
}

// MouseButton updates the gesture state for a button press or release. The
// press position, the current orientation and the inverse of the
// rotation-only scene matrix are all captured at press time. Ignored
// entirely while the scene is locked.
//
// Parameters:
//   - button: the mouse button (common.MouseButton* values)
//   - action: press or release (common.Action* values)
//   - mods: the modifier bits held
func (it *Interactor) MouseButton(button, action, mods int) {
	if it.locked {
		return
	}

	if action == common.ActionPress {
		it.pressPos = it.cursor
		it.savedRotation = it.cam.Rotation()
		it.invScene = it.cam.RotationMatrix().Inv()
	}

	switch button {
	case common.MouseButtonLeft:
		if action == common.ActionPress {
			if mods&common.ModControl != 0 {
				it.mode = GestureRotateViewAxis
			} else {
				it.mode = GestureRotate
			}
		} else {
			it.mode = GestureIdle
		}
	case common.MouseButtonRight:
		if action == common.ActionPress {
			it.mode = GestureTranslate
		} else {
			it.mode = GestureIdle
		}
	}
}

// CursorPos records the new cursor position and advances any gesture in
// progress.
//
// Parameters:
//   - x, y: the cursor position in pixels, y growing downward
//
// Returns:
//   - bool: true if the view changed and a redraw is needed
func (it *Interactor) CursorPos(x, y float64) bool {
	it.cursor = mgl32.Vec2{float32(x), float32(y)}

	switch it.mode {
	case GestureRotate, GestureRotateViewAxis:
		return it.rotateGesture()
	case GestureTranslate:
		return it.translateGesture()
	default:
		return false
	}
}

// rotateGesture rebuilds the orientation from the press-time state. The drag
// vector in world space becomes the rotation: its perpendicular (x and y
// swapped and negated) is the axis, its length scaled by the gain is the
// angle. The axis is then carried into the model frame by the inverse
// rotation captured at press, so the scene turns the way the pointer pulls
// regardless of its current orientation.
func (it *Interactor) rotateGesture() bool {
	dx, dy := it.unprojectPair()

	var move mgl32.Vec3
	if it.mode == GestureRotateViewAxis {
		move[2] = -dy + dx
	} else {
		move[1] = -dx
		move[0] = -dy
	}

	angleDeg := move.Len() * rotationGain
	if angleDeg == 0 {
		it.cam.ApplyGesture(it.savedRotation, mgl32.Vec3{0, 0, 1}, 0)
		return true
	}

	axis4 := it.invScene.Mul4x1(move.Vec4(0))
	axis := mgl32.Vec3{axis4.X(), axis4.Y(), axis4.Z()}
	it.cam.ApplyGesture(it.savedRotation, axis, common.DegToRad(angleDeg))
	return true
}

// translateGesture slides the scene by the world-space drag delta. Unlike
// rotation it is incremental: the press position advances to the cursor each
// move, so each event contributes its own small delta. The screen-plane
// camera position for the cylindrical mode moves oppositely, keeping both
// projection families in step.
func (it *Interactor) translateGesture() bool {
	dx, dy := it.unprojectPair()
	it.pressPos = it.cursor

	it.cam.Translate(dx, -dy, 0)
	it.proj.TranslateCyl(-dx, 0, dy)
	return true
}

// Scroll translates the scene along the view axis, or scales the
// orthographic bounds when that projection is active. A horizontal scroll
// slides the scene sideways. Ignored while the scene is locked.
//
// Parameters:
//   - xoffset, yoffset: the scroll deltas
//
// Returns:
//   - bool: true if the view changed and a redraw is needed
func (it *Interactor) Scroll(xoffset, yoffset float64) bool {
	if it.locked {
		return false
	}

	xoff := float32(xoffset)
	yoff := float32(yoffset)

	if it.proj.Mode() == projection.ModeOrthographic {
		return it.proj.ScaleOrtho(yoff, it.stepSize)
	}

	it.cam.Translate(-xoff*it.stepSize, 0, yoff*it.stepSize)
	it.proj.TranslateCyl(xoff*it.stepSize, 0, 0)

	// The in-out move follows the scene orientation for the cylindrical
	// camera, so scrolling always moves along the current view axis.
	move := it.cam.RotationMatrix().Mul4x1(mgl32.Vec4{0, yoff * it.stepSize, 0, 0})
	it.proj.TranslateCyl(move.X(), move.Y(), move.Z())
	return true
}
