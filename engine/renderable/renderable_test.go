package renderable

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visage/engine/gfx"
)

// fakeDevice records uploads so tests can observe Finalize behaviour without
// a graphics context.
type fakeDevice struct {
	uploads int
}

var _ gfx.Device = &fakeDevice{}

func (d *fakeDevice) LoadProgram(src gfx.ShaderSource) (gfx.Program, error) {
	return &fakeProgram{}, nil
}

func (d *fakeDevice) CreateMesh(positions, normals, colors []float32, indices []uint32) (gfx.Mesh, error) {
	d.uploads++
	return &fakeMesh{}, nil
}

func (d *fakeDevice) Viewport(x, y, width, height int)    {}
func (d *fakeDevice) ClearColorDepth(r, g, b, a float32)  {}
func (d *fakeDevice) ReadPixels(width, height int) []byte { return nil }

type fakeProgram struct {
	mat4s   map[string][16]float32
	floats  map[string]float32
	drawSet bool
}

var _ gfx.Program = &fakeProgram{}

func (p *fakeProgram) Use() {}
func (p *fakeProgram) SetUniformMat4(name string, m [16]float32) bool {
	if p.mat4s == nil {
		p.mat4s = map[string][16]float32{}
	}
	p.mat4s[name] = m
	return true
}
func (p *fakeProgram) SetUniformVec3(name string, v [3]float32) bool { return true }
func (p *fakeProgram) SetUniformVec4(name string, v [4]float32) bool { return true }
func (p *fakeProgram) SetUniformFloat(name string, f float32) bool {
	if p.floats == nil {
		p.floats = map[string]float32{}
	}
	p.floats[name] = f
	return true
}
func (p *fakeProgram) Delete() {}

type fakeMesh struct {
	draws   int
	deleted bool
}

var _ gfx.Mesh = &fakeMesh{}

func (m *fakeMesh) Draw()   { m.draws++ }
func (m *fakeMesh) Delete() { m.deleted = true }

func unitTriangle() *Mesh {
	return NewMesh("tri",
		[]float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		[]float32{0, 0, 1, 0, 0, 1, 0, 0, 1},
		[]float32{1, 0, 0, 0, 1, 0, 0, 0, 1},
		[]uint32{0, 1, 2},
	)
}

func TestMeshAlphaClamping(t *testing.T) {
	m := unitTriangle()
	assert.InDelta(t, 1.0, m.Alpha(), 1e-6)

	for i := 0; i < 20; i++ {
		m.IncAlpha()
	}
	assert.InDelta(t, 1.0, m.Alpha(), 1e-6)

	for i := 0; i < 20; i++ {
		m.DecAlpha()
	}
	assert.InDelta(t, 0.0, m.Alpha(), 1e-6)

	m.SetAlpha(0.55)
	assert.InDelta(t, 0.55, m.Alpha(), 1e-6)
}

func TestMeshHiddenSkipsDraw(t *testing.T) {
	m := unitTriangle()
	dev := &fakeDevice{}
	require.NoError(t, m.Finalize(dev))

	prog := &fakeProgram{}
	m.ToggleHide()
	m.Render(prog)
	assert.Empty(t, prog.floats, "hidden mesh must not touch uniforms")

	m.ToggleHide()
	m.Render(prog)
	assert.Contains(t, prog.floats, "alpha")
	assert.Contains(t, prog.mat4s, "m_matrix")
}

func TestMeshRenderBeforeFinalize(t *testing.T) {
	m := unitTriangle()
	prog := &fakeProgram{}
	m.Render(prog)
	assert.Empty(t, prog.mat4s, "unfinalized mesh draws nothing")
}

func TestMeshOffsetInModelMatrix(t *testing.T) {
	m := unitTriangle()
	m.SetOffset(mgl32.Vec3{2, 3, 4})
	dev := &fakeDevice{}
	require.NoError(t, m.Finalize(dev))

	prog := &fakeProgram{}
	m.Render(prog)
	mat := mgl32.Mat4(prog.mat4s["m_matrix"])
	p := mat.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, 2.0, p.X(), 1e-6)
	assert.InDelta(t, 3.0, p.Y(), 1e-6)
	assert.InDelta(t, 4.0, p.Z(), 1e-6)
}

func TestNewBoxGeometry(t *testing.T) {
	b := NewBox("box", mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{1, 1, 1}, [3]float32{1, 0, 0})
	assert.Len(t, b.Positions(), 24*3)
	assert.Len(t, b.Indices(), 36)
	assert.Equal(t, len(b.Positions()), len(b.Normals()))
	assert.Equal(t, len(b.Positions()), len(b.Colors()))

	// Every vertex sits on the box surface.
	pos := b.Positions()
	for i := 0; i < len(pos); i++ {
		assert.LessOrEqual(t, pos[i], float32(1))
		assert.GreaterOrEqual(t, pos[i], float32(-1))
	}
}

func TestMarkersHiddenByDefault(t *testing.T) {
	m := NewMarkers(1, 0.05)
	assert.True(t, m.Hidden())
	assert.Equal(t, mgl32.Vec2{-0.8, -0.8}, m.ScreenOffset())
}

func TestMarkersBackgroundColour(t *testing.T) {
	m := NewMarkers(1, 0.05)
	dev := &fakeDevice{}
	require.NoError(t, m.Finalize(dev))
	uploadsAfterFinalize := dev.uploads

	// Light background: the centre block goes dark.
	require.NoError(t, m.SetColourForBackground(1, 1, 1))
	assert.Equal(t, uploadsAfterFinalize+1, dev.uploads)
	assert.InDelta(t, 0.05, m.Colors()[0], 1e-6)

	// Same background again: no re-upload.
	require.NoError(t, m.SetColourForBackground(1, 1, 1))
	assert.Equal(t, uploadsAfterFinalize+1, dev.uploads)

	// Dark background: the centre block goes light.
	require.NoError(t, m.SetColourForBackground(0, 0, 0))
	assert.Equal(t, uploadsAfterFinalize+2, dev.uploads)
	assert.InDelta(t, 0.8, m.Colors()[0], 1e-6)

	// Arm colours are untouched by the recolour.
	colors := m.Colors()
	armStart := centreVertexCount * 3
	assert.InDelta(t, 1.0, colors[armStart], 1e-6, "x arm stays red")
}

func TestMarkersPinnedMatrix(t *testing.T) {
	m := NewMarkers(1, 0.05)
	m.SetSceneTranslation(mgl32.Vec3{-2, -1.5, -5})
	m.SetViewRotation(mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 0, 1}))

	dev := &fakeDevice{}
	require.NoError(t, m.Finalize(dev))
	m.ToggleHide()

	prog := &fakeProgram{}
	m.Render(prog)
	mat := mgl32.Mat4(prog.mat4s["m_matrix"])

	// The local x axis tip rotates onto y, then the pin translation applies.
	p := mat.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDelta(t, -2.0, p.X(), 1e-5)
	assert.InDelta(t, -0.5, p.Y(), 1e-5)
	assert.InDelta(t, -5.0, p.Z(), 1e-5)
}

func TestTextShaping(t *testing.T) {
	txt := NewText("ab c", 0.1, nil)
	// Three visible runes, one quad each.
	assert.Len(t, txt.Positions(), 3*4*3)
	assert.Len(t, txt.Indices(), 3*6)
	assert.True(t, txt.TwoDimensional())
}

func TestTextVisibleOn(t *testing.T) {
	txt := NewText("hi", 0.1, nil)
	dev := &fakeDevice{}
	require.NoError(t, txt.Finalize(dev))
	base := dev.uploads

	// Default colour is dark; a light background changes nothing.
	require.NoError(t, txt.SetVisibleOn(1, 1, 1))
	assert.Equal(t, base, dev.uploads)

	require.NoError(t, txt.SetVisibleOn(0.1, 0.1, 0.1))
	assert.Equal(t, base+1, dev.uploads)
	assert.InDelta(t, 0.9, txt.Colors()[0], 1e-6)
}

func TestTextSceneTranslation(t *testing.T) {
	txt := NewText("t", 0.1, nil)
	dev := &fakeDevice{}
	require.NoError(t, txt.Finalize(dev))
	txt.SetSceneTranslation(mgl32.Vec3{-0.5, 0.4, -1})

	prog := &fakeProgram{}
	txt.Render(prog)
	mat := mgl32.Mat4(prog.mat4s["m_matrix"])
	p := mat.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, -0.5, p.X(), 1e-6)
	assert.InDelta(t, 0.4, p.Y(), 1e-6)
	assert.InDelta(t, -1.0, p.Z(), 1e-6)
}
