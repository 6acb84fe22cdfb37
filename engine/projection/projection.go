package projection

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"visage/common"
)

// Mode selects how camera space is mapped to clip space.
type Mode int

const (
	// ModePerspective is a standard field-of-view projection.
	ModePerspective Mode = iota

	// ModeOrthographic is a box projection built from configurable
	// left-bottom/right-top bounds.
	ModeOrthographic

	// ModeCylindrical shares the perspective matrix for depth purposes; the
	// cylindrical wrap itself happens in the shader, fed by the camera
	// position/radius/height parameters.
	ModeCylindrical
)

// Next returns the mode that follows in the cycle
// perspective -> orthographic -> cylindrical -> perspective.
func (m Mode) Next() Mode {
	switch m {
	case ModePerspective:
		return ModeOrthographic
	case ModeOrthographic:
		return ModeCylindrical
	default:
		return ModePerspective
	}
}

func (m Mode) String() string {
	switch m {
	case ModePerspective:
		return "perspective"
	case ModeOrthographic:
		return "orthographic"
	case ModeCylindrical:
		return "cylindrical"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Projection owns the projection mode and its parameters and derives the
// forward projection matrix together with its inverse. The pair is always
// recomputed together in Compute, so the inverse can never be stale relative
// to the forward matrix.
//
// Single-threaded: a Projection belongs to the thread that owns the graphics
// context, like everything else in the scene core.
type Projection struct {
	mode Mode

	// fov is the vertical field of view in degrees.
	fov float32

	// near and far are the clip distances. near must stay positive and below far.
	near float32
	far  float32

	// Orthographic screen bounds.
	orthoLB mgl32.Vec2
	orthoRT mgl32.Vec2

	// Cylindrical camera parameters, consumed by the cylindrical shader.
	cylCamPos        mgl32.Vec4
	cylCamPosDefault mgl32.Vec4
	cylRadius        float32
	cylHeight        float32

	proj    mgl32.Mat4
	invProj mgl32.Mat4
}

// New creates a Projection with the stock visualization defaults
// (perspective, 30 degree fov, near 0.001, far 300).
//
// Parameters:
//   - options: functional options to configure the projection
//
// Returns:
//   - *Projection: the newly created projection
func New(options ...BuilderOption) *Projection {
	p := &Projection{
		mode:             ModePerspective,
		fov:              30.0,
		near:             0.001,
		far:              300.0,
		orthoLB:          mgl32.Vec2{-1.3, -1.0},
		orthoRT:          mgl32.Vec2{1.3, 1.0},
		cylCamPos:        mgl32.Vec4{0, 0, 0, 1},
		cylCamPosDefault: mgl32.Vec4{0, 0, 0, 1},
		cylRadius:        0.005,
		cylHeight:        0.01,
		proj:             mgl32.Ident4(),
		invProj:          mgl32.Ident4(),
	}
	for _, option := range options {
		option(p)
	}
	return p
}

// Mode returns the active projection mode.
func (p *Projection) Mode() Mode { return p.mode }

// SetMode switches the active projection mode. The matrices are not touched
// here; the next Compute derives them, and the render orchestrator notices
// the mode change and swaps shader programs lazily.
func (p *Projection) SetMode(mode Mode) { p.mode = mode }

// Cycle advances to the next projection mode and returns it.
func (p *Projection) Cycle() Mode {
	p.mode = p.mode.Next()
	return p.mode
}

// FOV returns the field of view in degrees.
func (p *Projection) FOV() float32 { return p.fov }

// Near returns the near clip distance.
func (p *Projection) Near() float32 { return p.near }

// Far returns the far clip distance.
func (p *Projection) Far() float32 { return p.far }

// AdjustFOV adds delta (degrees) to the field of view, keeping the result
// inside the practical (1, 179) degree range.
//
// Parameters:
//   - delta: degrees to add (negative narrows)
func (p *Projection) AdjustFOV(delta float32) {
	p.fov += delta
	if p.fov < 1.0 {
		p.fov = 2.0
	}
	if p.fov > 179.0 {
		p.fov = 178.0
	}
}

// ScaleNear multiplies the near clip distance by factor. The factor must be
// positive; near can get arbitrarily small but never reaches zero.
//
// Parameters:
//   - factor: multiplier for the near clip distance
func (p *Projection) ScaleNear(factor float32) {
	if factor <= 0 {
		return
	}
	p.near *= factor
}

// OrthoBounds returns the orthographic left-bottom and right-top corners.
func (p *Projection) OrthoBounds() (lb, rt mgl32.Vec2) {
	return p.orthoLB, p.orthoRT
}

// ScaleOrtho grows or shrinks the orthographic bounds symmetrically about
// centre, as driven by scroll input. Updates that would collapse or invert
// the box (left-bottom reaching zero or positive, right-top reaching zero or
// negative) are rejected wholesale.
//
// Parameters:
//   - offset: the scroll delta
//   - step: the configured step size per scroll unit
//
// Returns:
//   - bool: true if the bounds changed
func (p *Projection) ScaleOrtho(offset, step float32) bool {
	d := offset * step
	lb := mgl32.Vec2{p.orthoLB.X() + d, p.orthoLB.Y() + d}
	rt := mgl32.Vec2{p.orthoRT.X() - d, p.orthoRT.Y() - d}
	if lb.X() >= 0 || lb.Y() >= 0 || rt.X() <= 0 || rt.Y() <= 0 {
		return false
	}
	p.orthoLB = lb
	p.orthoRT = rt
	return true
}

// CylCamPos returns the cylindrical camera position.
func (p *Projection) CylCamPos() mgl32.Vec4 { return p.cylCamPos }

// SetCylCamPos sets the cylindrical camera position and records it as the
// default restored by ResetCyl.
func (p *Projection) SetCylCamPos(pos mgl32.Vec4) {
	p.cylCamPos = pos
	p.cylCamPosDefault = pos
}

// TranslateCyl shifts the cylindrical camera position by (dx, dy, dz). The
// homogeneous w component is left untouched.
//
// Parameters:
//   - dx, dy, dz: world-space displacement
func (p *Projection) TranslateCyl(dx, dy, dz float32) {
	p.cylCamPos[0] += dx
	p.cylCamPos[1] += dy
	p.cylCamPos[2] += dz
}

// ResetCyl restores the cylindrical camera position to its default.
func (p *Projection) ResetCyl() { p.cylCamPos = p.cylCamPosDefault }

// CylRadius returns the cylindrical screen radius.
func (p *Projection) CylRadius() float32 { return p.cylRadius }

// CylHeight returns the cylindrical screen height.
func (p *Projection) CylHeight() float32 { return p.cylHeight }

// ScaleCylRadius multiplies the cylindrical screen radius by factor.
func (p *Projection) ScaleCylRadius(factor float32) { p.cylRadius *= factor }

// ScaleCylHeight multiplies the cylindrical screen height by factor.
func (p *Projection) ScaleCylHeight(factor float32) { p.cylHeight *= factor }

// Compute derives the forward projection matrix for the current mode and
// viewport, then immediately derives its inverse so the pair stays
// consistent. A zero viewport height is treated as one to guard the aspect
// division.
//
// Parameters:
//   - width, height: the viewport size in pixels
//
// Returns:
//   - error: if the projection mode is unrecognized
func (p *Projection) Compute(width, height int) error {
	switch p.mode {
	case ModePerspective, ModeCylindrical:
		h := height
		if h == 0 {
			h = 1
		}
		aspect := float32(width) / float32(h)
		p.proj = mgl32.Perspective(common.DegToRad(p.fov), aspect, p.near, p.far)
	case ModeOrthographic:
		p.proj = mgl32.Ortho(p.orthoLB.X(), p.orthoRT.X(), p.orthoLB.Y(), p.orthoRT.Y(), p.near, p.far)
	default:
		return fmt.Errorf("projection: unknown projection mode %d", int(p.mode))
	}
	p.invProj = p.proj.Inv()
	return nil
}

// Matrix returns the forward projection matrix from the last Compute.
func (p *Projection) Matrix() mgl32.Mat4 { return p.proj }

// Inverse returns the inverse projection matrix from the last Compute.
func (p *Projection) Inverse() mgl32.Mat4 { return p.invProj }

// ScreenToWorld maps a normalized screen point onto the plane at the given
// camera-space depth. It forward-projects a reference point at that depth to
// find the matching clip-space z, builds the clip-space point at the screen
// coordinate, applies the inverse projection and perspective-divides.
//
// This single routine serves both overlay placement (text, coordinate
// markers pinned at a fixed apparent depth) and pointer un-projection during
// drag gestures; keeping one authoritative implementation is what keeps the
// two in agreement across projection changes.
//
// Parameters:
//   - pt: screen position in normalized device coordinates, -1..1
//   - depth: the camera-space z of the target plane (negative = into scene)
//
// Returns:
//   - mgl32.Vec3: the world-space point on that plane
func (p *Projection) ScreenToWorld(pt mgl32.Vec2, depth float32) mgl32.Vec3 {
	ref := p.proj.Mul4x1(mgl32.Vec4{0, 0, depth, 1})
	clipZ := ref.Z() / ref.W()

	clip := mgl32.Vec4{pt.X(), pt.Y(), clipZ, 1}
	v := p.invProj.Mul4x1(clip)
	return mgl32.Vec3{v.X() / v.W(), v.Y() / v.W(), v.Z() / v.W()}
}
