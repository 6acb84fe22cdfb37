package renderable

import (
	"github.com/go-gl/mathgl/mgl32"

	"visage/common"
)

// centreVertexCount is the number of vertices in the centre block, which is
// built first so its colours sit at the front of the colour buffer.
const centreVertexCount = 24

// Markers is the coordinate-axes triad pinned to a corner of the screen: a
// centre block whose colour adapts to the background, with red, green and
// blue arms along the x, y and z axes. The triad translates to a fixed screen
// position each frame but turns with the scene, so it always reports the
// current orientation.
type Markers struct {
	*Mesh

	screenOffset mgl32.Vec2
	inScene      bool

	translation mgl32.Vec3
	rotation    mgl32.Quat

	centreColour [3]float32
}

// NewMarkers creates the axes triad with the given arm length and thickness.
//
// Parameters:
//   - length: the arm length along each axis
//   - thickness: the arm cross-section size
//
// Returns:
//   - *Markers: the newly created triad
func NewMarkers(length, thickness float32) *Markers {
	t := thickness / 2

	var positions, normals, colors []float32
	var indices []uint32

	// Centre block first: its vertices are recoloured against the background.
	positions, normals, colors, indices = appendBox(positions, normals, colors, indices,
		mgl32.Vec3{-t * 2, -t * 2, -t * 2}, mgl32.Vec3{t * 2, t * 2, t * 2}, [3]float32{0, 0, 0})
	positions, normals, colors, indices = appendBox(positions, normals, colors, indices,
		mgl32.Vec3{0, -t, -t}, mgl32.Vec3{length, t, t}, [3]float32{1, 0, 0})
	positions, normals, colors, indices = appendBox(positions, normals, colors, indices,
		mgl32.Vec3{-t, 0, -t}, mgl32.Vec3{t, length, t}, [3]float32{0, 1, 0})
	positions, normals, colors, indices = appendBox(positions, normals, colors, indices,
		mgl32.Vec3{-t, -t, 0}, mgl32.Vec3{t, t, length}, [3]float32{0, 0, 1})

	m := &Markers{
		Mesh:         NewMesh("coordinate-markers", positions, normals, colors, indices, WithHidden()),
		screenOffset: mgl32.Vec2{-0.8, -0.8},
		rotation:     mgl32.QuatIdent(),
	}
	return m
}

// ScreenOffset returns the normalized screen position the triad is pinned to.
func (m *Markers) ScreenOffset() mgl32.Vec2 { return m.screenOffset }

// SetScreenOffset moves the triad's pinned screen position.
func (m *Markers) SetScreenOffset(o mgl32.Vec2) { m.screenOffset = o }

// InScene reports whether the triad sits at the scene origin instead of
// being pinned to the screen.
func (m *Markers) InScene() bool { return m.inScene }

// SetInScene places the triad at the scene origin, turning and translating
// with the scene, instead of pinning it to a screen corner.
//
// Parameters:
//   - inScene: whether the triad lives in the scene
func (m *Markers) SetInScene(inScene bool) { m.inScene = inScene }

// SetSceneTranslation pins the triad at the given world position, rebuilding
// the scene matrix from the stored orientation.
//
// Parameters:
//   - v: the world-space position from un-projecting the screen offset
func (m *Markers) SetSceneTranslation(v mgl32.Vec3) {
	m.translation = v
	m.rebuild()
}

// SetViewRotation turns the triad to match the scene orientation.
//
// Parameters:
//   - q: the scene orientation quaternion
func (m *Markers) SetViewRotation(q mgl32.Quat) {
	m.rotation = q
	m.rebuild()
}

func (m *Markers) rebuild() {
	m.SetSceneMatrix(
		mgl32.Translate3D(m.translation.X(), m.translation.Y(), m.translation.Z()).
			Mul4(m.rotation.Mat4()))
}

// SetColourForBackground recolours the centre block so it stays visible
// against the given background: dark on light backgrounds, light on dark.
// The geometry is re-uploaded only when the colour actually changes.
//
// Parameters:
//   - r, g, b: the background colour
//
// Returns:
//   - error: re-upload failure
func (m *Markers) SetColourForBackground(r, g, b float32) error {
	want := [3]float32{0.8, 0.8, 0.8}
	if common.Luminance(r, g, b) > 0.5 {
		want = [3]float32{0.05, 0.05, 0.05}
	}
	if want == m.centreColour {
		return nil
	}
	m.centreColour = want

	colors := m.Colors()
	for i := 0; i < centreVertexCount; i++ {
		colors[i*3] = want[0]
		colors[i*3+1] = want[1]
		colors[i*3+2] = want[2]
	}
	if m.device == nil {
		return nil
	}
	return m.Finalize(m.device)
}
