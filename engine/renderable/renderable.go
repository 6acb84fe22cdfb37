package renderable

import (
	"github.com/go-gl/mathgl/mgl32"

	"visage/engine/gfx"
)

// Renderable is anything the scene registry can hold and the render
// orchestrator can draw. Implementations own their geometry on both sides of
// the upload boundary: CPU-side buffers stay available for export, the
// device-side mesh serves the draw calls.
type Renderable interface {
	// Render draws the renderable with the given active program. Hidden
	// renderables draw nothing.
	//
	// Parameters:
	//   - prog: the program currently in use
	Render(prog gfx.Program)

	// Finalize uploads the geometry to the device. Must be called with a
	// current graphics context before the first Render.
	//
	// Parameters:
	//   - device: the graphics device
	//
	// Returns:
	//   - error: upload failure
	Finalize(device gfx.Device) error

	// SetSceneMatrix sets the scene transform applied before the renderable's
	// own model offset. The orchestrator calls this every frame: the full
	// scene view for 3D renderables, a translation-only matrix for 2D ones.
	SetSceneMatrix(m mgl32.Mat4)

	// TwoDimensional reports whether the renderable is a flat overlay that
	// must not rotate with the scene.
	TwoDimensional() bool

	// Hidden reports whether the renderable is currently hidden.
	Hidden() bool

	// ToggleHide flips the hidden flag.
	ToggleHide()

	// Alpha returns the renderable's opacity in [0, 1].
	Alpha() float32

	// SetAlpha sets the opacity, clamped to [0, 1].
	SetAlpha(a float32)

	// IncAlpha raises the opacity by one step, clamped to 1.
	IncAlpha()

	// DecAlpha lowers the opacity by one step, clamped to 0.
	DecAlpha()

	// Positions returns the CPU-side vertex positions, 3 floats per vertex.
	Positions() []float32

	// Normals returns the CPU-side vertex normals, 3 floats per vertex.
	Normals() []float32

	// Colors returns the CPU-side vertex colours, 3 floats per vertex.
	Colors() []float32

	// Indices returns the CPU-side triangle indices.
	Indices() []uint32

	// Offset returns the renderable's own translation within the scene.
	Offset() mgl32.Vec3
}
