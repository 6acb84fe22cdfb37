package input

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visage/common"
	"visage/engine/camera"
	"visage/engine/projection"
)

func newRig(t *testing.T) (*projection.Projection, *camera.Camera, *Interactor) {
	t.Helper()
	proj := projection.New()
	require.NoError(t, proj.Compute(640, 480))
	cam := camera.New()
	it := NewInteractor(proj, cam, WithWindowSize(640, 480))
	return proj, cam, it
}

func TestNewInteractorPanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { NewInteractor(nil, camera.New()) })
	assert.Panics(t, func() { NewInteractor(projection.New(), nil) })
}

func TestHorizontalDragRotatesAboutY(t *testing.T) {
	_, cam, it := newRig(t)

	it.CursorPos(100, 100)
	it.MouseButton(common.MouseButtonLeft, common.ActionPress, 0)
	assert.Equal(t, GestureRotate, it.Mode())

	needs := it.CursorPos(150, 100)
	assert.True(t, needs)

	// A purely horizontal drag turns the scene about the vertical axis: the
	// quaternion's vector part lies along y alone.
	q := cam.Rotation()
	assert.InDelta(t, 0.0, float64(q.V[0]), 1e-5)
	assert.Greater(t, math.Abs(float64(q.V[1])), 1e-6)
	assert.InDelta(t, 0.0, float64(q.V[2]), 1e-5)
	assert.InDelta(t, 1.0, float64(q.Len()), 1e-5)
}

func TestVerticalDragRotatesAboutX(t *testing.T) {
	_, cam, it := newRig(t)

	it.CursorPos(100, 100)
	it.MouseButton(common.MouseButtonLeft, common.ActionPress, 0)
	it.CursorPos(100, 160)

	q := cam.Rotation()
	assert.Greater(t, math.Abs(float64(q.V[0])), 1e-6)
	assert.InDelta(t, 0.0, float64(q.V[1]), 1e-5)
	assert.InDelta(t, 0.0, float64(q.V[2]), 1e-5)
}

func TestRotationRebuildsFromPressPosition(t *testing.T) {
	_, cam, it := newRig(t)

	it.CursorPos(100, 100)
	it.MouseButton(common.MouseButtonLeft, common.ActionPress, 0)
	it.CursorPos(300, 250)
	it.CursorPos(100, 100)

	// Returning the pointer to the press position undoes the whole gesture.
	q := cam.Rotation()
	assert.InDelta(t, 1.0, float64(q.W), 1e-5)
	assert.InDelta(t, 0.0, float64(q.V.Len()), 1e-5)
}

func TestViewAxisRotation(t *testing.T) {
	_, cam, it := newRig(t)

	it.CursorPos(100, 100)
	it.MouseButton(common.MouseButtonLeft, common.ActionPress, common.ModControl)
	assert.Equal(t, GestureRotateViewAxis, it.Mode())
	it.CursorPos(200, 100)

	// With control held the drag spins the scene about the view axis.
	q := cam.Rotation()
	assert.InDelta(t, 0.0, float64(q.V[0]), 1e-5)
	assert.InDelta(t, 0.0, float64(q.V[1]), 1e-5)
	assert.Greater(t, math.Abs(float64(q.V[2])), 1e-6)
}

func TestReleaseEndsGesture(t *testing.T) {
	_, cam, it := newRig(t)

	it.CursorPos(100, 100)
	it.MouseButton(common.MouseButtonLeft, common.ActionPress, 0)
	it.CursorPos(150, 100)
	it.MouseButton(common.MouseButtonLeft, common.ActionRelease, 0)
	assert.Equal(t, GestureIdle, it.Mode())

	held := cam.Rotation()
	assert.False(t, it.CursorPos(400, 400), "idle movement needs no redraw")
	assert.Equal(t, held, cam.Rotation())
}

func TestTranslateDrag(t *testing.T) {
	proj, cam, it := newRig(t)

	it.CursorPos(320, 240)
	it.MouseButton(common.MouseButtonRight, common.ActionPress, 0)
	assert.Equal(t, GestureTranslate, it.Mode())

	needs := it.CursorPos(420, 240)
	assert.True(t, needs)

	// Dragging right slides the scene right; the cylindrical camera moves
	// the opposite way so that projection tracks the same view.
	assert.Greater(t, cam.Translation().X(), float32(0))
	assert.Less(t, proj.CylCamPos().X(), float32(0))
	assert.InDelta(t, float64(cam.Translation().X()), float64(-proj.CylCamPos().X()), 1e-5)

	// Dragging down moves the scene down (screen y grows downward).
	it.CursorPos(420, 300)
	assert.Less(t, cam.Translation().Y(), float32(0))
}

func TestTranslateIsIncremental(t *testing.T) {
	_, cam, it := newRig(t)

	it.CursorPos(100, 100)
	it.MouseButton(common.MouseButtonRight, common.ActionPress, 0)
	it.CursorPos(150, 100)
	it.CursorPos(200, 100)
	twoSteps := cam.Translation().X()

	_, cam2, it2 := newRig(t)
	it2.CursorPos(100, 100)
	it2.MouseButton(common.MouseButtonRight, common.ActionPress, 0)
	it2.CursorPos(200, 100)

	// Two half moves add up to one full move: the press position advances
	// with each event, so deltas compose.
	assert.InDelta(t, float64(cam2.Translation().X()), float64(twoSteps), 1e-5)
}

func TestLockSuppressesPointerInput(t *testing.T) {
	proj, cam, it := newRig(t)
	it.ToggleLock()
	require.True(t, it.Locked())

	it.CursorPos(100, 100)
	it.MouseButton(common.MouseButtonLeft, common.ActionPress, 0)
	assert.Equal(t, GestureIdle, it.Mode(), "press ignored while locked")
	assert.False(t, it.CursorPos(200, 200))
	assert.False(t, it.Scroll(0, 1))

	assert.Equal(t, mgl32.Vec3{0, 0, -5}, cam.Translation())
	assert.Equal(t, mgl32.Vec4{0, 0, 0, 1}, proj.CylCamPos())
}

func TestScrollPerspective(t *testing.T) {
	proj, cam, it := newRig(t)

	assert.True(t, it.Scroll(0, 1))
	assert.InDelta(t, -4.9, cam.Translation().Z(), 1e-5)
	// With an identity orientation the in-out move lands on the cylindrical
	// camera's y axis.
	assert.InDelta(t, 0.1, proj.CylCamPos().Y(), 1e-5)
	assert.InDelta(t, 1.0, proj.CylCamPos().W(), 1e-6, "homogeneous w never drifts")

	assert.True(t, it.Scroll(1, 0))
	assert.InDelta(t, -0.1, cam.Translation().X(), 1e-5)
	assert.InDelta(t, 0.1, proj.CylCamPos().X(), 1e-5)
}

func TestScrollFollowsSceneOrientation(t *testing.T) {
	proj, cam, it := newRig(t)

	// Turn the scene 90 degrees about x: the in-out move for the cylindrical
	// camera rotates from y onto z.
	cam.SetRotation(mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{1, 0, 0}))
	it.Scroll(0, 1)
	assert.InDelta(t, 0.0, proj.CylCamPos().Y(), 1e-5)
	assert.InDelta(t, 0.1, proj.CylCamPos().Z(), 1e-5)
}

func TestScrollOrthographic(t *testing.T) {
	proj, cam, it := newRig(t)
	proj.SetMode(projection.ModeOrthographic)

	assert.True(t, it.Scroll(0, 1))
	lb, rt := proj.OrthoBounds()
	assert.InDelta(t, -1.2, lb.X(), 1e-5)
	assert.InDelta(t, 1.2, rt.X(), 1e-5)
	assert.Equal(t, mgl32.Vec3{0, 0, -5}, cam.Translation(), "ortho scroll never moves the scene")

	// Shrinking all the way down stops short of inverting the bounds.
	for i := 0; i < 100; i++ {
		it.Scroll(0, 1)
	}
	assert.False(t, it.Scroll(0, 1))
}

func TestResizeChangesNormalization(t *testing.T) {
	_, cam, it := newRig(t)

	it.CursorPos(100, 100)
	it.MouseButton(common.MouseButtonLeft, common.ActionPress, 0)
	it.CursorPos(150, 100)
	small := cam.Rotation()

	_, cam2, it2 := newRig(t)
	it2.Resize(1280, 960)
	it2.CursorPos(100, 100)
	it2.MouseButton(common.MouseButtonLeft, common.ActionPress, 0)
	it2.CursorPos(150, 100)

	// The same pixel drag on a wider window is a smaller normalized drag, so
	// it produces a smaller rotation.
	angleSmall := 2 * float64(small.W)
	angleLarge := 2 * float64(cam2.Rotation().W)
	assert.Greater(t, angleLarge, angleSmall, "cos of half-angle larger means smaller angle")
}
