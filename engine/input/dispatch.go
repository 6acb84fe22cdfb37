package input

import (
	"log"
	"strings"

	"visage/common"
	"visage/engine/camera"
	"visage/engine/projection"
	"visage/engine/renderable"
	"visage/engine/scene"
)

// Dispatcher routes key events to view commands: projection changes, view
// reset, per-renderable opacity and visibility, state capture, snapshots and
// exports. The outward-facing actions (quit, snapshot, export, state save)
// are hooks supplied by the owner, so the dispatcher itself never touches the
// windowing system or the filesystem beyond the camera's own state file.
type Dispatcher struct {
	cam        *camera.Camera
	proj       *projection.Projection
	scn        *scene.Scene
	interactor *Interactor
	markers    *renderable.Markers

	// selected is the renderable index targeted by opacity and visibility
	// commands.
	selected int

	// owned means an embedding application controls program exit, so the
	// quit command is honoured. Standalone hosts handle exit themselves.
	owned bool

	// userInfo enables chatty feedback on state-changing commands.
	userInfo bool

	title     string
	stateFile string

	quitFunc     func()
	snapshotFunc func(path string) error
	exportFunc   func(path string) error
	keyHook      func(key, scancode, action, mods int)
}

// NewDispatcher creates a Dispatcher. Panics when any of the four core
// collaborators is nil.
//
// Parameters:
//   - cam: the scene camera
//   - proj: the projection manager
//   - scn: the scene registry
//   - interactor: the pointer interactor, which owns the scene lock
//   - options: functional options to configure the dispatcher
//
// Returns:
//   - *Dispatcher: the newly created dispatcher
func NewDispatcher(cam *camera.Camera, proj *projection.Projection, scn *scene.Scene, interactor *Interactor, options ...DispatcherBuilderOption) *Dispatcher {
	if cam == nil || proj == nil || scn == nil || interactor == nil {
		panic("input: dispatcher requires a camera, projection, scene and interactor")
	}
	d := &Dispatcher{
		cam:        cam,
		proj:       proj,
		scn:        scn,
		interactor: interactor,
		owned:      true,
		userInfo:   true,
		stateFile:  "/tmp/visage-view.json",
	}
	for _, option := range options {
		option(d)
	}
	return d
}

// Selected returns the index of the renderable targeted by per-model
// commands.
func (d *Dispatcher) Selected() int { return d.selected }

// SetMarkers gives the dispatcher the coordinate markers toggled by the
// marker-visibility command. Used when the markers are built after the
// dispatcher.
func (d *Dispatcher) SetMarkers(m *renderable.Markers) { d.markers = m }

// KeyEvent handles one key event.
//
// Parameters:
//   - key: the key code (common.Key* values)
//   - scancode: the platform scancode, passed through to the key hook
//   - action: press, release or repeat (common.Action* values)
//   - mods: the modifier bits held
//
// Returns:
//   - bool: true if the event changed what is on screen and a redraw is
//     needed
func (d *Dispatcher) KeyEvent(key, scancode, action, mods int) bool {
	needsRender := false

	press := action == common.ActionPress
	pressOrRepeat := press || action == common.ActionRepeat
	ctrl := mods&common.ModControl != 0
	shift := mods&common.ModShift != 0
	locked := d.interactor.Locked()

	if d.owned && key == common.KeyQ && ctrl && press {
		d.signalQuit()
	}

	if !locked && key == common.KeyC && ctrl && press && d.markers != nil {
		d.markers.ToggleHide()
		needsRender = true
	}

	if key == common.KeyH && ctrl && press {
		d.printHelp()
	}

	if key == common.KeyL && ctrl && press {
		if d.interactor.ToggleLock() {
			log.Println("scene is now locked")
		} else {
			log.Println("scene is now unlocked")
		}
	}

	if key == common.KeyS && ctrl && press && d.snapshotFunc != nil {
		fname := asFilename(d.title) + ".png"
		if err := d.snapshotFunc(fname); err != nil {
			log.Printf("failed to save snapshot: %v", err)
		} else {
			log.Printf("saved image to %q", fname)
		}
	}

	if key == common.KeyM && ctrl && press && d.exportFunc != nil {
		fname := asFilename(d.title) + ".gltf"
		if err := d.exportFunc(fname); err != nil {
			log.Printf("failed to export scene: %v", err)
		} else {
			log.Printf("saved 3D file %q", fname)
		}
	}

	if key == common.KeyZ && ctrl && press {
		log.Printf("view setup code:\n%s", d.cam.StateSetupCode())
		if err := d.cam.SaveState(d.stateFile); err != nil {
			log.Printf("failed to write view state: %v", err)
		} else {
			log.Printf("wrote view state to %s", d.stateFile)
		}
	}

	// F1 to F10 select a renderable; with shift they toggle its visibility.
	if key >= common.KeyF1 && key <= common.KeyF10 && press {
		n := key - common.KeyF1
		if shift {
			if r := d.scn.Get(d.selected); r != nil {
				r.ToggleHide()
				needsRender = true
			}
		} else if n < d.scn.Count() {
			d.selected = n
			if d.userInfo {
				log.Printf("selected renderable index %d", d.selected)
			}
		}
	}

	if key == common.KeyLeft && pressOrRepeat && shift {
		if r := d.scn.Get(d.selected); r != nil {
			r.DecAlpha()
			needsRender = true
		}
	}
	if key == common.KeyRight && pressOrRepeat && shift {
		if r := d.scn.Get(d.selected); r != nil {
			r.IncAlpha()
			needsRender = true
		}
	}

	if key == common.KeyUp && pressOrRepeat && shift {
		d.proj.ScaleCylRadius(2)
		if d.userInfo {
			log.Printf("cylindrical radius is now %g", d.proj.CylRadius())
		}
		needsRender = true
	}
	if key == common.KeyDown && pressOrRepeat && shift {
		d.proj.ScaleCylRadius(0.5)
		if d.userInfo {
			log.Printf("cylindrical radius is now %g", d.proj.CylRadius())
		}
		needsRender = true
	}

	if key == common.KeyUp && pressOrRepeat && ctrl {
		d.proj.ScaleCylHeight(2)
		if d.userInfo {
			log.Printf("cylindrical height is now %g", d.proj.CylHeight())
		}
		needsRender = true
	}
	if key == common.KeyDown && pressOrRepeat && ctrl {
		d.proj.ScaleCylHeight(0.5)
		if d.userInfo {
			log.Printf("cylindrical height is now %g", d.proj.CylHeight())
		}
		needsRender = true
	}

	if !locked && key == common.KeyA && ctrl && press {
		if d.userInfo {
			log.Println("reset to default view")
		}
		d.cam.Reset()
		d.proj.ResetCyl()
		needsRender = true
	}

	if !locked && key == common.KeyO && ctrl && press {
		d.proj.AdjustFOV(-2)
		if d.userInfo {
			log.Printf("field of view reduced to %g", d.proj.FOV())
		}
		needsRender = true
	}
	if !locked && key == common.KeyP && ctrl && press {
		d.proj.AdjustFOV(2)
		if d.userInfo {
			log.Printf("field of view increased to %g", d.proj.FOV())
		}
		needsRender = true
	}

	if !locked && key == common.KeyU && ctrl && press {
		d.proj.ScaleNear(0.5)
		if d.userInfo {
			log.Printf("near clip reduced to %g", d.proj.Near())
		}
		needsRender = true
	}
	if !locked && key == common.KeyI && ctrl && press {
		d.proj.ScaleNear(2)
		if d.userInfo {
			log.Printf("near clip increased to %g", d.proj.Near())
		}
		needsRender = true
	}

	if key == common.KeyY && ctrl && press {
		mode := d.proj.Cycle()
		if d.userInfo {
			log.Printf("projection is now %s", mode)
		}
		needsRender = true
	}

	if d.keyHook != nil {
		d.keyHook(key, scancode, action, mods)
	}

	return needsRender
}

// signalQuit invokes the owner's quit hook, if any.
func (d *Dispatcher) signalQuit() {
	if d.userInfo {
		log.Println("user requested exit")
	}
	if d.quitFunc != nil {
		d.quitFunc()
	}
}

func (d *Dispatcher) printHelp() {
	help := []string{
		"Ctrl-h: print this help",
		"Mouse-primary: rotate (hold Ctrl to rotate about the view axis)",
		"Mouse-secondary: translate",
	}
	if d.owned {
		help = append(help, "Ctrl-q: request exit")
	}
	help = append(help,
		"Ctrl-l: toggle the scene lock",
		"Ctrl-c: toggle coordinate markers",
		"Ctrl-s: save a snapshot",
		"Ctrl-m: export the scene as glTF",
		"Ctrl-a: reset to the default view",
		"Ctrl-o: reduce field of view",
		"Ctrl-p: increase field of view",
		"Ctrl-y: cycle projection mode",
		"Ctrl-z: show and save the current view state",
		"Ctrl-u: reduce the near clip distance",
		"Ctrl-i: increase the near clip distance",
		"F1-F10: select renderable (with Shift: toggle its visibility)",
		"Shift-Left: decrease opacity of the selected renderable",
		"Shift-Right: increase opacity of the selected renderable",
		"Shift-Up: double the cylindrical radius",
		"Shift-Down: halve the cylindrical radius",
		"Ctrl-Up: double the cylindrical height",
		"Ctrl-Down: halve the cylindrical height",
	)
	for _, line := range help {
		log.Println(line)
	}
}

// asFilename makes a string safe to use as a file name: lowercased, spaces
// become underscores, anything outside [a-z0-9_.-] is dropped.
func asFilename(s string) string {
	if s == "" {
		s = "visage"
	}
	s = strings.ToLower(s)
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == ' ':
			b.WriteByte('_')
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '.', r == '-':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "visage"
	}
	return b.String()
}
