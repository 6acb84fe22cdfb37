package engine

import (
	"fmt"

	"visage/engine/config"
	"visage/engine/gfx"
	"visage/engine/profiler"
	"visage/engine/visual"
	"visage/engine/window"
)

// App bundles a window, a GL device and a visualization surface into a
// ready-to-run application. It is a convenience layer; hosts that need to
// embed the surface into their own event loop should wire window.Window and
// visual.Visual directly.
type App struct {
	cfg     config.Config
	win     *window.Window
	surface *visual.Visual

	prof          *profiler.Profiler
	hidden        bool
	visualOptions []visual.BuilderOption
}

// New creates the window, initializes the OpenGL device and builds the
// visualization surface from the configuration.
//
// Parameters:
//   - options: functional options to configure the application
//
// Returns:
//   - *App: the newly created application
//   - error: window, device or surface initialization failure
func New(options ...BuilderOption) (*App, error) {
	a := &App{
		cfg: config.Default(),
	}
	for _, option := range options {
		option(a)
	}

	winOptions := []window.BuilderOption{
		window.WithTitle(a.cfg.Title),
		window.WithSize(a.cfg.Width, a.cfg.Height),
	}
	if a.hidden {
		winOptions = append(winOptions, window.WithHidden())
	}
	if a.prof != nil {
		winOptions = append(winOptions, window.WithProfiler(a.prof))
	}

	win, err := window.New(winOptions...)
	if err != nil {
		return nil, err
	}

	device, err := gfx.NewGLDevice()
	if err != nil {
		win.Close()
		return nil, fmt.Errorf("engine: %w", err)
	}

	a.win = win
	a.surface = visual.New(device, win, a.cfg, a.visualOptions...)
	win.Attach(a.surface)

	if err := a.surface.Init(); err != nil {
		win.Close()
		return nil, err
	}
	return a, nil
}

// Surface returns the visualization surface for scene population.
//
// Returns:
//   - *visual.Visual: the attached surface
func (a *App) Surface() *visual.Visual { return a.surface }

// Window returns the underlying window.
//
// Returns:
//   - *window.Window: the application window
func (a *App) Window() *window.Window { return a.win }

// Run drives the event loop until the surface finishes, then tears the
// window down. Must be called from the main goroutine.
//
// Returns:
//   - error: a render failure
func (a *App) Run() error {
	defer a.win.Close()
	return a.win.Run()
}
