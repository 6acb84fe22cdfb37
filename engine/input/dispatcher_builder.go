package input

import "visage/engine/renderable"

// DispatcherBuilderOption configures a Dispatcher during construction.
type DispatcherBuilderOption func(*Dispatcher)

// WithMarkers gives the dispatcher the coordinate markers toggled by the
// marker-visibility command.
//
// Parameters:
//   - m: the coordinate markers
//
// Returns:
//   - DispatcherBuilderOption: the option function
func WithMarkers(m *renderable.Markers) DispatcherBuilderOption {
	return func(d *Dispatcher) {
		d.markers = m
	}
}

// WithOwned sets whether an embedding application controls program exit. The
// quit command is honoured only when owned.
//
// Parameters:
//   - owned: whether the surface is embedded
//
// Returns:
//   - DispatcherBuilderOption: the option function
func WithOwned(owned bool) DispatcherBuilderOption {
	return func(d *Dispatcher) {
		d.owned = owned
	}
}

// WithUserInfo enables or disables chatty feedback on state-changing
// commands.
//
// Parameters:
//   - on: whether to log feedback
//
// Returns:
//   - DispatcherBuilderOption: the option function
func WithUserInfo(on bool) DispatcherBuilderOption {
	return func(d *Dispatcher) {
		d.userInfo = on
	}
}

// WithTitle sets the title used to derive snapshot and export file names.
//
// Parameters:
//   - title: the surface title
//
// Returns:
//   - DispatcherBuilderOption: the option function
func WithTitle(title string) DispatcherBuilderOption {
	return func(d *Dispatcher) {
		d.title = title
	}
}

// WithStateFile sets the path the view state is saved to and loaded from.
//
// Parameters:
//   - path: the state file path
//
// Returns:
//   - DispatcherBuilderOption: the option function
func WithStateFile(path string) DispatcherBuilderOption {
	return func(d *Dispatcher) {
		d.stateFile = path
	}
}

// WithQuitFunc sets the hook invoked when the user requests exit.
//
// Parameters:
//   - fn: the quit hook
//
// Returns:
//   - DispatcherBuilderOption: the option function
func WithQuitFunc(fn func()) DispatcherBuilderOption {
	return func(d *Dispatcher) {
		d.quitFunc = fn
	}
}

// WithSnapshotFunc sets the hook invoked to save a snapshot image.
//
// Parameters:
//   - fn: called with the target file name
//
// Returns:
//   - DispatcherBuilderOption: the option function
func WithSnapshotFunc(fn func(path string) error) DispatcherBuilderOption {
	return func(d *Dispatcher) {
		d.snapshotFunc = fn
	}
}

// WithExportFunc sets the hook invoked to export the scene as glTF.
//
// Parameters:
//   - fn: called with the target file name
//
// Returns:
//   - DispatcherBuilderOption: the option function
func WithExportFunc(fn func(path string) error) DispatcherBuilderOption {
	return func(d *Dispatcher) {
		d.exportFunc = fn
	}
}

// WithKeyHook sets a hook called after every key event, letting hosts layer
// their own bindings on top of the built-in ones.
//
// Parameters:
//   - fn: called with the raw key event
//
// Returns:
//   - DispatcherBuilderOption: the option function
func WithKeyHook(fn func(key, scancode, action, mods int)) DispatcherBuilderOption {
	return func(d *Dispatcher) {
		d.keyHook = fn
	}
}
