package window

import (
	"fmt"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"visage/engine/profiler"
	"visage/engine/visual"
)

func init() {
	// GLFW and the GL context are bound to the main OS thread.
	runtime.LockOSThread()
}

// Window owns the GLFW window and its OpenGL context and bridges events to
// an attached visualization surface. It implements visual.Context, so the
// surface can acquire the context and present frames without knowing GLFW.
type Window struct {
	title  string
	width  int
	height int
	hidden bool

	win *glfw.Window

	surface *visual.Visual
	prof    *profiler.Profiler

	// needsRender accumulates redraw requests from event callbacks so the
	// loop only renders frames that will look different.
	needsRender bool
}

var _ visual.Context = &Window{}

// New initializes GLFW and creates a window with an OpenGL 4.1 core context.
// The context is left current on the calling thread.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - *Window: the newly created window
//   - error: GLFW or context creation failure
func New(options ...BuilderOption) (*Window, error) {
	w := &Window{
		title:  "visage",
		width:  640,
		height: 480,
	}
	for _, option := range options {
		option(w)
	}

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("window: failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if w.hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(w.width, w.height, w.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("window: failed to create GLFW window: %w", err)
	}
	w.win = win
	win.MakeContextCurrent()
	return w, nil
}

// Attach wires a visualization surface to the window: every GLFW event is
// forwarded, and the surface's display scale is set from the monitor's
// content scale.
//
// Parameters:
//   - v: the surface to drive
func (w *Window) Attach(v *visual.Visual) {
	w.surface = v
	w.needsRender = true

	sx, sy := w.win.GetContentScale()
	v.SetDisplayScale(sx, sy)

	w.win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if v.KeyEvent(int(key), scancode, int(action), int(mods)) {
			w.needsRender = true
		}
	})

	w.win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		if v.CursorPosEvent(x, y) {
			w.needsRender = true
		}
	})

	w.win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		v.MouseButtonEvent(int(button), int(action), int(mods))
	})

	w.win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		if v.ScrollEvent(xoff, yoff) {
			w.needsRender = true
		}
	})

	w.win.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		w.width = width
		w.height = height
		if v.ResizeEvent(width, height) {
			w.needsRender = true
		}
	})

	w.win.SetContentScaleCallback(func(_ *glfw.Window, x, y float32) {
		v.SetDisplayScale(x, y)
		w.needsRender = true
	})

	w.win.SetCloseCallback(func(_ *glfw.Window) {
		// The surface decides whether the close button is honoured.
		w.win.SetShouldClose(false)
		v.WindowCloseEvent()
	})
}

// RequestRender marks the next loop iteration for a redraw, for hosts that
// mutate the scene outside the event callbacks.
func (w *Window) RequestRender() { w.needsRender = true }

// Run drives the surface until it signals it is done: wait for events,
// render when something changed. Rendering on demand rather than per vsync
// keeps an idle surface at zero GPU load.
//
// Returns:
//   - error: a render failure
func (w *Window) Run() error {
	if w.surface == nil {
		return fmt.Errorf("window: no surface attached")
	}

	for !w.surface.ReadyToFinish() {
		if w.needsRender {
			w.needsRender = false
			start := time.Now()
			if err := w.surface.Render(); err != nil {
				return err
			}
			if w.prof != nil {
				w.prof.RecordFrame(time.Since(start))
			}
		}
		if w.prof != nil {
			w.prof.Tick()
		}
		glfw.WaitEvents()
	}
	return nil
}

// AcquireContext makes the GL context current on this thread.
func (w *Window) AcquireContext() { w.win.MakeContextCurrent() }

// ReleaseContext detaches the GL context from this thread.
func (w *Window) ReleaseContext() { glfw.DetachCurrentContext() }

// SetSwapInterval sets the buffer swap interval (1 = vsync).
func (w *Window) SetSwapInterval(interval int) { glfw.SwapInterval(interval) }

// PresentFrame swaps the back and front buffers.
func (w *Window) PresentFrame() { w.win.SwapBuffers() }

// Size returns the current window size in screen coordinates.
func (w *Window) Size() (width, height int) { return w.width, w.height }

// Wake posts an empty event so a blocked Run iteration re-checks its state.
// Safe to call from other goroutines; it is the one GLFW call that is.
func (w *Window) Wake() { glfw.PostEmptyEvent() }

// Close destroys the window and terminates GLFW.
func (w *Window) Close() {
	w.win.Destroy()
	glfw.Terminate()
}
