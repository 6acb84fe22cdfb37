package visual

import (
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl32"

	"visage/engine/camera"
	"visage/engine/config"
	"visage/engine/export"
	"visage/engine/gfx"
	"visage/engine/input"
	"visage/engine/light"
	"visage/engine/projection"
	"visage/engine/renderable"
	"visage/engine/scene"
)

// Context is what the visual needs from its windowing collaborator: context
// ownership around device work and frame presentation. The window package
// provides the GLFW implementation; tests substitute no-ops.
type Context interface {
	// AcquireContext makes the graphics context current on this thread.
	AcquireContext()

	// ReleaseContext detaches the graphics context from this thread.
	ReleaseContext()

	// SetSwapInterval sets the buffer swap interval (1 = vsync).
	SetSwapInterval(interval int)

	// PresentFrame swaps the back and front buffers.
	PresentFrame()
}

// Version is the library version reported by the startup banner.
const Version = "1.0.0"

// programKind identifies which scene program is loaded into the active slot.
type programKind int

const (
	kindNone programKind = iota
	kind2D
	kindCylindrical
)

// Visual is the visualization surface: it owns the camera, projection, scene
// registry, lighting and input handling, and runs the frame protocol that
// stitches them together. One Visual per window.
//
// Single-threaded: all methods must be called from the thread that owns the
// graphics context. The event loop, the render call and the command hooks
// all run on that one thread, so no locking is needed or wanted here.
type Visual struct {
	ctx    Context
	device gfx.Device

	cam        *camera.Camera
	proj       *projection.Projection
	scn        *scene.Scene
	lighting   light.Lighting
	interactor *input.Interactor
	dispatcher *input.Dispatcher
	markers    *renderable.Markers

	background [4]float32
	textZ      float32

	width  int
	height int
	scaleX float32
	scaleY float32

	title     string
	stateFile string
	owned     bool
	userInfo  bool

	sceneShader gfx.ShaderSource
	cylShader   gfx.ShaderSource
	textShader  gfx.ShaderSource

	textProg gfx.Program
	active   gfx.Program
	loaded   programKind

	markersInScene bool
	versionBanner  bool

	readyToFinish bool
	preventClose  bool
	quitCallback  func()
	keyHook       func(key, scancode, action, mods int)
}

// New creates a Visual from a configuration. Panics when the device or
// context is nil: the surface cannot function without either. Call Init with
// a current graphics context before the first Render.
//
// Parameters:
//   - device: the graphics device
//   - ctx: the windowing context collaborator
//   - cfg: the surface configuration
//   - options: functional options to configure the visual
//
// Returns:
//   - *Visual: the newly created visual
func New(device gfx.Device, ctx Context, cfg config.Config, options ...BuilderOption) *Visual {
	if device == nil || ctx == nil {
		panic("visual: a device and a context are required")
	}

	proj := projection.New(
		projection.WithFOV(cfg.FOV),
		projection.WithClipPlanes(cfg.Near, cfg.Far),
	)
	cam := camera.New(camera.WithTranslation(mgl32.Vec3{
		cfg.SceneTranslation[0], cfg.SceneTranslation[1], cfg.SceneTranslation[2],
	}))

	lighting := light.Default()
	lighting.SetEffects(cfg.LightingEffects)

	v := &Visual{
		ctx:         ctx,
		device:      device,
		cam:         cam,
		proj:        proj,
		scn:         scene.New(),
		lighting:    lighting,
		background:  cfg.Background,
		textZ:       -1,
		width:       cfg.Width,
		height:      cfg.Height,
		scaleX:      1,
		scaleY:      1,
		title:       cfg.Title,
		stateFile:   cfg.StateFile,
		owned:       true,
		userInfo:    cfg.UserInfo,
		sceneShader: gfx.SceneShader,
		cylShader:   gfx.CylinderShader,
		textShader:  gfx.TextShader,

		versionBanner: true,
	}
	for _, option := range options {
		option(v)
	}

	v.interactor = input.NewInteractor(proj, cam,
		input.WithWindowSize(v.width, v.height))
	v.dispatcher = input.NewDispatcher(cam, proj, v.scn, v.interactor,
		input.WithOwned(v.owned),
		input.WithUserInfo(v.userInfo),
		input.WithTitle(v.title),
		input.WithStateFile(v.stateFile),
		input.WithQuitFunc(v.signalQuit),
		input.WithSnapshotFunc(func(path string) error { return v.SaveImage(path, false) }),
		input.WithExportFunc(v.SaveGLTF),
		input.WithKeyHook(v.keyHook),
	)
	return v
}

// sceneKind maps the current projection mode to its program family.
func (v *Visual) sceneKind() programKind {
	if v.proj.Mode() == projection.ModeCylindrical {
		return kindCylindrical
	}
	return kind2D
}

// loadSceneProgram makes the program for the given family the resident scene
// program, tearing down the previous one. At most one scene program exists at
// a time; the other family's program is only compiled when a mode switch
// first needs it.
//
// Parameters:
//   - kind: the program family to load
//
// Returns:
//   - error: program load failure
func (v *Visual) loadSceneProgram(kind programKind) error {
	src := v.sceneShader
	if kind == kindCylindrical {
		src = v.cylShader
	}
	prog, err := v.device.LoadProgram(src)
	if err != nil {
		return fmt.Errorf("visual: %w", err)
	}
	if v.active != nil {
		v.active.Delete()
	}
	v.active = prog
	v.loaded = kind
	return nil
}

// Init loads the text program and the scene program for the current
// projection mode, builds the coordinate markers and the title, applies any
// saved view state and enables vsync. A program that fails to load is fatal:
// rendering cannot proceed without its programs.
//
// Returns:
//   - error: program load or geometry upload failure
func (v *Visual) Init() error {
	v.ctx.AcquireContext()
	defer v.ctx.ReleaseContext()

	if v.versionBanner {
		log.Printf("visage %s (OpenGL 4.1 surface)", Version)
	}

	var err error
	if v.textProg, err = v.device.LoadProgram(v.textShader); err != nil {
		return fmt.Errorf("visual: %w", err)
	}
	if err := v.loadSceneProgram(v.sceneKind()); err != nil {
		return err
	}

	v.markers = renderable.NewMarkers(0.12, 0.006)
	v.markers.SetInScene(v.markersInScene)
	if err := v.markers.Finalize(v.device); err != nil {
		return err
	}
	v.dispatcher.SetMarkers(v.markers)

	if v.title != "" {
		title := renderable.NewText(v.title, 0.05, nil)
		if err := title.Finalize(v.device); err != nil {
			return err
		}
		v.scn.SetTitle(title)
	}

	// A missing or malformed state file is routine; keep the defaults.
	if err := v.cam.LoadState(v.stateFile); err != nil && v.userInfo {
		log.Printf("no saved view state applied: %v", err)
	}

	v.ctx.SetSwapInterval(1)
	return nil
}

// Render draws one frame. The frame protocol, in order: swap the scene
// program if the projection mode changed since the last frame, set the
// viewport, recompute and upload the projection pair, clear to the
// background, upload lighting, share the projection with the text program,
// derive the scene view, draw the markers, draw the renderables, draw the
// texts, present.
//
// Returns:
//   - error: no scene program loaded, a program swap failure, or an unknown
//     projection mode
func (v *Visual) Render() error {
	v.ctx.AcquireContext()
	defer v.ctx.ReleaseContext()

	if v.active == nil {
		return fmt.Errorf("visual: render with no scene program loaded")
	}

	cylindrical := v.proj.Mode() == projection.ModeCylindrical

	// The scene program only swaps when the mode family changed, so frames
	// in a steady state never touch program bindings.
	if want := v.sceneKind(); v.loaded != want {
		if err := v.loadSceneProgram(want); err != nil {
			return err
		}
	}
	prog := v.active
	prog.Use()

	fbWidth := int(float32(v.width) * v.scaleX)
	fbHeight := int(float32(v.height) * v.scaleY)
	v.device.Viewport(0, 0, fbWidth, fbHeight)

	if err := v.proj.Compute(v.width, v.height); err != nil {
		return err
	}
	prog.SetUniformMat4("p_matrix", [16]float32(v.proj.Matrix()))

	// The cylindrical uniforms exist only in the cylindrical program; the
	// setters report the miss and the values are simply not consumed.
	prog.SetUniformVec4("cyl_cam_pos", [4]float32(v.proj.CylCamPos()))
	prog.SetUniformFloat("cyl_radius", v.proj.CylRadius())
	prog.SetUniformFloat("cyl_height", v.proj.CylHeight())

	v.device.ClearColorDepth(v.background[0], v.background[1], v.background[2], v.background[3])

	prog.SetUniformVec3("light_colour", v.lighting.Colour)
	prog.SetUniformFloat("ambient_intensity", v.lighting.AmbientIntensity)
	prog.SetUniformVec3("diffuse_position", v.lighting.DiffusePosition)
	prog.SetUniformFloat("diffuse_intensity", v.lighting.DiffuseIntensity)

	v.textProg.Use()
	v.textProg.SetUniformMat4("p_matrix", [16]float32(v.proj.Matrix()))
	prog.Use()

	// The cylindrical path feeds the orientation to the shader and the
	// position through cyl_cam_pos, so its scene view carries rotation only.
	sceneView := v.cam.SceneMatrix()
	if cylindrical {
		sceneView = v.cam.RotationMatrix()
	}

	if !cylindrical && v.markers != nil && !v.markers.Hidden() {
		if err := v.markers.SetColourForBackground(v.background[0], v.background[1], v.background[2]); err != nil {
			log.Printf("failed to recolour markers: %v", err)
		}
		if v.markers.InScene() {
			v.markers.SetSceneMatrix(sceneView)
		} else {
			pin := v.proj.ScreenToWorld(v.markers.ScreenOffset(), v.cam.Translation().Z())
			v.markers.SetSceneTranslation(pin)
			v.markers.SetViewRotation(v.cam.Rotation())
		}
		v.markers.Render(prog)
	}

	translationOnly := v.cam.TranslationMatrix()
	v.scn.Each(func(r renderable.Renderable) {
		if r.TwoDimensional() {
			r.SetSceneMatrix(translationOnly)
		} else {
			r.SetSceneMatrix(sceneView)
		}
		r.Render(prog)
	})

	anchor := v.proj.ScreenToWorld(mgl32.Vec2{-0.8, 0.8}, v.textZ)
	v.textProg.Use()
	v.scn.EachText(func(t *renderable.Text) {
		t.SetSceneTranslation(anchor)
		if err := t.SetVisibleOn(v.background[0], v.background[1], v.background[2]); err != nil {
			log.Printf("failed to recolour text: %v", err)
		}
		t.Render(v.textProg)
	})

	v.ctx.PresentFrame()
	return nil
}

// AddRenderable uploads the renderable and registers it with the scene.
//
// Parameters:
//   - r: the renderable to add
//
// Returns:
//   - int: the renderable's registration index
//   - error: upload failure
func (v *Visual) AddRenderable(r renderable.Renderable) (int, error) {
	v.ctx.AcquireContext()
	defer v.ctx.ReleaseContext()

	if err := r.Finalize(v.device); err != nil {
		return 0, err
	}
	return v.scn.Add(r), nil
}

// AddLabel uploads a label and registers it for rendering alongside the
// title.
//
// Parameters:
//   - text: the label content
//   - height: the line height in model units
//
// Returns:
//   - *renderable.Text: the created label
//   - error: upload failure
func (v *Visual) AddLabel(text string, height float32) (*renderable.Text, error) {
	v.ctx.AcquireContext()
	defer v.ctx.ReleaseContext()

	t := renderable.NewText(text, height, nil)
	if err := t.Finalize(v.device); err != nil {
		return nil, err
	}
	v.scn.AddLabel(t)
	return t, nil
}

// Scene returns the scene registry.
func (v *Visual) Scene() *scene.Scene { return v.scn }

// Camera returns the scene camera.
func (v *Visual) Camera() *camera.Camera { return v.cam }

// Projection returns the projection manager.
func (v *Visual) Projection() *projection.Projection { return v.proj }

// Lighting returns the lighting parameters for mutation.
func (v *Visual) Lighting() *light.Lighting { return &v.lighting }

// SetBackground sets the clear colour.
//
// Parameters:
//   - r, g, b, a: the background colour
func (v *Visual) SetBackground(r, g, b, a float32) {
	v.background = [4]float32{r, g, b, a}
}

// SetBackgroundWhite sets the standard white background.
func (v *Visual) SetBackgroundWhite() { v.SetBackground(1, 1, 1, 0.5) }

// SetBackgroundBlack sets the standard black background.
func (v *Visual) SetBackgroundBlack() { v.SetBackground(0, 0, 0, 0) }

// SetSceneTranslation sets the scene translation and its reset default.
func (v *Visual) SetSceneTranslation(t mgl32.Vec3) {
	if t.Z() > 0 {
		log.Println("warning: the scene normally sits at a negative z")
	}
	v.cam.SetTranslation(t)
}

// SetSceneTranslationX sets the x component of the scene translation and its
// reset default, shifting the scene left or right.
func (v *Visual) SetSceneTranslationX(x float32) { v.cam.SetTranslationX(x) }

// SetSceneTranslationY sets the y component of the scene translation and its
// reset default, shifting the scene up or down.
func (v *Visual) SetSceneTranslationY(y float32) { v.cam.SetTranslationY(y) }

// SetSceneTranslationZ sets the z component of the scene translation and its
// reset default, moving the viewpoint towards or away from the scene.
func (v *Visual) SetSceneTranslationZ(z float32) {
	if z > 0 {
		log.Println("warning: the scene normally sits at a negative z")
	}
	v.cam.SetTranslationZ(z)
}

// SetSceneRotation sets the scene orientation and its reset default.
func (v *Visual) SetSceneRotation(q mgl32.Quat) { v.cam.SetRotation(q) }

// KeyEvent feeds a key event to the dispatcher.
//
// Returns:
//   - bool: true if a redraw is needed
func (v *Visual) KeyEvent(key, scancode, action, mods int) bool {
	return v.dispatcher.KeyEvent(key, scancode, action, mods)
}

// CursorPosEvent feeds a pointer move to the interactor.
//
// Returns:
//   - bool: true if a redraw is needed
func (v *Visual) CursorPosEvent(x, y float64) bool {
	return v.interactor.CursorPos(x, y)
}

// MouseButtonEvent feeds a button press or release to the interactor.
func (v *Visual) MouseButtonEvent(button, action, mods int) {
	v.interactor.MouseButton(button, action, mods)
}

// ScrollEvent feeds a scroll to the interactor.
//
// Returns:
//   - bool: true if a redraw is needed
func (v *Visual) ScrollEvent(xoffset, yoffset float64) bool {
	return v.interactor.Scroll(xoffset, yoffset)
}

// ResizeEvent records the new window size.
//
// Returns:
//   - bool: always true, a resize always needs a redraw
func (v *Visual) ResizeEvent(width, height int) bool {
	v.width = width
	v.height = height
	v.interactor.Resize(width, height)
	return true
}

// SetDisplayScale records the window content scale, applied to the viewport
// so high-density displays render at full resolution.
//
// Parameters:
//   - x, y: the per-axis content scale
func (v *Visual) SetDisplayScale(x, y float32) {
	v.scaleX = x
	v.scaleY = y
}

// WindowCloseEvent handles the window's close button. When close prevention
// is on, the request is logged and ignored.
func (v *Visual) WindowCloseEvent() {
	if v.preventClose {
		log.Println("ignoring window close request")
		return
	}
	v.signalQuit()
}

// PreventWindowClose stops the window's close button from ending the
// program.
//
// Parameters:
//   - prevent: whether to ignore close requests
func (v *Visual) PreventWindowClose(prevent bool) { v.preventClose = prevent }

// ReadyToFinish reports whether the user has asked to quit.
func (v *Visual) ReadyToFinish() bool { return v.readyToFinish }

// signalQuit flags the surface as done and notifies the owner, once.
func (v *Visual) signalQuit() {
	if v.readyToFinish {
		return
	}
	v.readyToFinish = true
	if v.quitCallback != nil {
		v.quitCallback()
	}
}

// SaveImage reads back the framebuffer and writes it as a PNG.
//
// Parameters:
//   - path: the destination file
//   - transparent: keep the framebuffer's alpha channel
//
// Returns:
//   - error: readback or write failure
func (v *Visual) SaveImage(path string, transparent bool) error {
	v.ctx.AcquireContext()
	defer v.ctx.ReleaseContext()

	fbWidth := int(float32(v.width) * v.scaleX)
	fbHeight := int(float32(v.height) * v.scaleY)
	pixels := v.device.ReadPixels(fbWidth, fbHeight)
	return export.SaveImage(path, fbWidth, fbHeight, pixels, transparent)
}

// SaveGLTF exports the registered renderables as a glTF file.
//
// Parameters:
//   - path: the destination file
//
// Returns:
//   - error: write failure
func (v *Visual) SaveGLTF(path string) error {
	return export.SaveGLTF(path, v.scn)
}
