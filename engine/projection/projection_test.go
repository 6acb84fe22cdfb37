package projection

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeCycle(t *testing.T) {
	p := New()
	assert.Equal(t, ModePerspective, p.Mode())
	assert.Equal(t, ModeOrthographic, p.Cycle())
	assert.Equal(t, ModeCylindrical, p.Cycle())
	assert.Equal(t, ModePerspective, p.Cycle())
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "perspective", ModePerspective.String())
	assert.Equal(t, "orthographic", ModeOrthographic.String())
	assert.Equal(t, "cylindrical", ModeCylindrical.String())
}

func TestDefaults(t *testing.T) {
	p := New()
	assert.InDelta(t, 30.0, p.FOV(), 1e-6)
	assert.InDelta(t, 0.001, p.Near(), 1e-9)
	assert.InDelta(t, 300.0, p.Far(), 1e-6)
	lb, rt := p.OrthoBounds()
	assert.Equal(t, mgl32.Vec2{-1.3, -1.0}, lb)
	assert.Equal(t, mgl32.Vec2{1.3, 1.0}, rt)
	assert.InDelta(t, 0.005, p.CylRadius(), 1e-9)
	assert.InDelta(t, 0.01, p.CylHeight(), 1e-9)
}

func TestComputeInversePairsWithForward(t *testing.T) {
	for _, mode := range []Mode{ModePerspective, ModeOrthographic, ModeCylindrical} {
		p := New(WithMode(mode))
		require.NoError(t, p.Compute(640, 480))

		product := p.Matrix().Mul4(p.Inverse())
		ident := mgl32.Ident4()
		for i := 0; i < 16; i++ {
			assert.InDelta(t, ident[i], product[i], 1e-4, "mode %s element %d", mode, i)
		}
	}
}

func TestComputeUnknownMode(t *testing.T) {
	p := New(WithMode(Mode(42)))
	err := p.Compute(640, 480)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown projection mode")
}

func TestComputeZeroHeight(t *testing.T) {
	p := New()
	require.NoError(t, p.Compute(640, 0))
	// No NaN or Inf should leak into the matrix.
	for i := 0; i < 16; i++ {
		assert.False(t, p.Matrix()[i] != p.Matrix()[i], "element %d is NaN", i)
	}
}

func TestScreenToWorldCentre(t *testing.T) {
	p := New()
	require.NoError(t, p.Compute(640, 480))

	// The screen centre at depth -5 must map back onto the (0, 0, -5) axis
	// point, in any projection mode. The near/far spread leaves little
	// float32 depth precision at -5, so the z tolerance is loose.
	for _, mode := range []Mode{ModePerspective, ModeOrthographic} {
		p.SetMode(mode)
		require.NoError(t, p.Compute(640, 480))
		w := p.ScreenToWorld(mgl32.Vec2{0, 0}, -5)
		assert.InDelta(t, 0.0, w.X(), 1e-3, "mode %s", mode)
		assert.InDelta(t, 0.0, w.Y(), 1e-3, "mode %s", mode)
		assert.InDelta(t, -5.0, w.Z(), 1e-2, "mode %s", mode)
	}
}

func TestScreenToWorldRoundTrip(t *testing.T) {
	p := New()
	require.NoError(t, p.Compute(640, 480))

	// Project an off-centre world point forward, then un-project its screen
	// position at the same depth: we must land back on the original point.
	world := mgl32.Vec4{0.7, -0.3, -5, 1}
	clip := p.Matrix().Mul4x1(world)
	screen := mgl32.Vec2{clip.X() / clip.W(), clip.Y() / clip.W()}

	back := p.ScreenToWorld(screen, world.Z())
	assert.InDelta(t, world.X(), back.X(), 1e-3)
	assert.InDelta(t, world.Y(), back.Y(), 1e-3)
	assert.InDelta(t, world.Z(), back.Z(), 1e-2)
}

func TestAdjustFOVClamps(t *testing.T) {
	p := New(WithFOV(3))
	p.AdjustFOV(-2)
	assert.InDelta(t, 1.0, p.FOV(), 1e-6)
	p.AdjustFOV(-2)
	assert.InDelta(t, 2.0, p.FOV(), 1e-6, "dropping below 1 snaps to 2")

	q := New(WithFOV(177))
	q.AdjustFOV(2)
	assert.InDelta(t, 179.0, q.FOV(), 1e-6)
	q.AdjustFOV(2)
	assert.InDelta(t, 178.0, q.FOV(), 1e-6, "rising above 179 snaps to 178")
}

func TestScaleNear(t *testing.T) {
	p := New()
	p.ScaleNear(2)
	assert.InDelta(t, 0.002, p.Near(), 1e-9)
	p.ScaleNear(0.5)
	assert.InDelta(t, 0.001, p.Near(), 1e-9)
	p.ScaleNear(0)
	assert.InDelta(t, 0.001, p.Near(), 1e-9, "non-positive factor is ignored")
}

func TestScaleOrthoNeverInverts(t *testing.T) {
	p := New()

	// Shrinking in small steps must stop before the bounds cross zero.
	for i := 0; i < 1000; i++ {
		p.ScaleOrtho(1, 0.1)
	}
	lb, rt := p.OrthoBounds()
	assert.Less(t, lb.X(), float32(0))
	assert.Less(t, lb.Y(), float32(0))
	assert.Greater(t, rt.X(), float32(0))
	assert.Greater(t, rt.Y(), float32(0))
}

func TestScaleOrthoGrow(t *testing.T) {
	p := New()
	ok := p.ScaleOrtho(-1, 0.1)
	assert.True(t, ok)
	lb, rt := p.OrthoBounds()
	assert.InDelta(t, -1.4, lb.X(), 1e-6)
	assert.InDelta(t, -1.1, lb.Y(), 1e-6)
	assert.InDelta(t, 1.4, rt.X(), 1e-6)
	assert.InDelta(t, 1.1, rt.Y(), 1e-6)
}

func TestScaleOrthoRejectedWholesale(t *testing.T) {
	p := New(WithOrthoBounds(mgl32.Vec2{-0.05, -1}, mgl32.Vec2{0.05, 1}))
	// A step of 0.1 would push lb.X to +0.05; the whole update is rejected,
	// including the components that on their own would stay legal.
	ok := p.ScaleOrtho(1, 0.1)
	assert.False(t, ok)
	lb, rt := p.OrthoBounds()
	assert.Equal(t, mgl32.Vec2{-0.05, -1}, lb)
	assert.Equal(t, mgl32.Vec2{0.05, 1}, rt)
}

func TestCylCameraAdjustments(t *testing.T) {
	p := New()
	p.TranslateCyl(1, 2, 3)
	assert.Equal(t, mgl32.Vec4{1, 2, 3, 1}, p.CylCamPos())

	p.ResetCyl()
	assert.Equal(t, mgl32.Vec4{0, 0, 0, 1}, p.CylCamPos())

	p.ScaleCylRadius(2)
	assert.InDelta(t, 0.01, p.CylRadius(), 1e-9)
	p.ScaleCylHeight(0.5)
	assert.InDelta(t, 0.005, p.CylHeight(), 1e-9)
}

func TestSetCylCamPosUpdatesDefault(t *testing.T) {
	p := New()
	p.SetCylCamPos(mgl32.Vec4{4, 0, 0, 1})
	p.TranslateCyl(1, 0, 0)
	p.ResetCyl()
	assert.Equal(t, mgl32.Vec4{4, 0, 0, 1}, p.CylCamPos())
}
