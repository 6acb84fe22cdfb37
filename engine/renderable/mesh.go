package renderable

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"visage/common"
	"visage/engine/gfx"
)

// alphaStep is the opacity change per increment/decrement keystroke.
const alphaStep = 0.1

// Mesh is the standard triangle-mesh renderable. Geometry is kept CPU-side
// for export and uploaded to the device on Finalize.
type Mesh struct {
	name string

	positions []float32
	normals   []float32
	colors    []float32
	indices   []uint32

	twoDimensional bool
	hidden         bool
	alpha          float32

	offset      mgl32.Vec3
	sceneMatrix mgl32.Mat4

	device gfx.Device
	gpu    gfx.Mesh
}

var _ Renderable = &Mesh{}

// NewMesh creates a Mesh from tightly packed vertex data. The three attribute
// slices must describe the same number of vertices.
//
// Parameters:
//   - name: identifies the mesh in errors and exports
//   - positions: vertex positions, 3 floats per vertex
//   - normals: vertex normals, 3 floats per vertex
//   - colors: vertex colours, 3 floats per vertex
//   - indices: triangle indices
//   - options: functional options to configure the mesh
//
// Returns:
//   - *Mesh: the newly created mesh
func NewMesh(name string, positions, normals, colors []float32, indices []uint32, options ...MeshBuilderOption) *Mesh {
	m := &Mesh{
		name:        name,
		positions:   positions,
		normals:     normals,
		colors:      colors,
		indices:     indices,
		alpha:       1.0,
		sceneMatrix: mgl32.Ident4(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Name returns the mesh name.
func (m *Mesh) Name() string { return m.name }

// Finalize uploads the geometry, replacing any previous upload. Callers that
// mutate the CPU-side buffers re-finalize to publish the change.
func (m *Mesh) Finalize(device gfx.Device) error {
	gpu, err := device.CreateMesh(m.positions, m.normals, m.colors, m.indices)
	if err != nil {
		return fmt.Errorf("renderable: failed to upload mesh %q: %w", m.name, err)
	}
	if m.gpu != nil {
		m.gpu.Delete()
	}
	m.device = device
	m.gpu = gpu
	return nil
}

// Render draws the mesh with the active program, skipping entirely when
// hidden or not yet finalized.
func (m *Mesh) Render(prog gfx.Program) {
	if m.hidden || m.gpu == nil {
		return
	}
	model := m.sceneMatrix.Mul4(mgl32.Translate3D(m.offset.X(), m.offset.Y(), m.offset.Z()))
	prog.SetUniformMat4("m_matrix", [16]float32(model))
	prog.SetUniformFloat("alpha", m.alpha)
	m.gpu.Draw()
}

func (m *Mesh) SetSceneMatrix(mat mgl32.Mat4) { m.sceneMatrix = mat }

func (m *Mesh) TwoDimensional() bool { return m.twoDimensional }

func (m *Mesh) Hidden() bool { return m.hidden }

func (m *Mesh) ToggleHide() { m.hidden = !m.hidden }

func (m *Mesh) Alpha() float32 { return m.alpha }

func (m *Mesh) SetAlpha(a float32) { m.alpha = common.Clamp(a, 0, 1) }

func (m *Mesh) IncAlpha() { m.SetAlpha(m.alpha + alphaStep) }

func (m *Mesh) DecAlpha() { m.SetAlpha(m.alpha - alphaStep) }

func (m *Mesh) Positions() []float32 { return m.positions }

func (m *Mesh) Normals() []float32 { return m.normals }

func (m *Mesh) Colors() []float32 { return m.colors }

func (m *Mesh) Indices() []uint32 { return m.indices }

func (m *Mesh) Offset() mgl32.Vec3 { return m.offset }

// SetOffset moves the mesh within the scene.
func (m *Mesh) SetOffset(v mgl32.Vec3) { m.offset = v }

// Delete releases the device-side mesh, if uploaded.
func (m *Mesh) Delete() {
	if m.gpu != nil {
		m.gpu.Delete()
		m.gpu = nil
	}
}
