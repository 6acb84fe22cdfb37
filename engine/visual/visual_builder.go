package visual

import "visage/engine/gfx"

// BuilderOption configures a Visual during construction.
type BuilderOption func(*Visual)

// WithOwned sets whether an embedding application controls program exit.
// The quit command is honoured only when owned.
//
// Parameters:
//   - owned: whether the surface is embedded
//
// Returns:
//   - BuilderOption: the option function
func WithOwned(owned bool) BuilderOption {
	return func(v *Visual) {
		v.owned = owned
	}
}

// WithShaders replaces the built-in shader sources.
//
// Parameters:
//   - scene: the flat/perspective scene program
//   - cylindrical: the cylindrical scene program
//   - text: the text program
//
// Returns:
//   - BuilderOption: the option function
func WithShaders(scene, cylindrical, text gfx.ShaderSource) BuilderOption {
	return func(v *Visual) {
		v.sceneShader = scene
		v.cylShader = cylindrical
		v.textShader = text
	}
}

// WithQuitCallback sets a hook invoked once when the user asks to quit.
//
// Parameters:
//   - fn: the quit hook
//
// Returns:
//   - BuilderOption: the option function
func WithQuitCallback(fn func()) BuilderOption {
	return func(v *Visual) {
		v.quitCallback = fn
	}
}

// WithKeyHook sets a hook called after every key event, letting hosts layer
// their own bindings on top of the built-in ones.
//
// Parameters:
//   - fn: called with the raw key event
//
// Returns:
//   - BuilderOption: the option function
func WithKeyHook(fn func(key, scancode, action, mods int)) BuilderOption {
	return func(v *Visual) {
		v.keyHook = fn
	}
}

// WithPreventWindowClose starts the surface with the window close button
// disabled.
//
// Returns:
//   - BuilderOption: the option function
func WithPreventWindowClose() BuilderOption {
	return func(v *Visual) {
		v.preventClose = true
	}
}

// WithMarkersInScene places the coordinate markers at the scene origin,
// moving with the scene, instead of pinning them to a screen corner.
//
// Returns:
//   - BuilderOption: the option function
func WithMarkersInScene() BuilderOption {
	return func(v *Visual) {
		v.markersInScene = true
	}
}

// WithVersionBanner controls the version line logged during Init.
//
// Parameters:
//   - on: whether to log the banner
//
// Returns:
//   - BuilderOption: the option function
func WithVersionBanner(on bool) BuilderOption {
	return func(v *Visual) {
		v.versionBanner = on
	}
}

// WithTextDepth sets the apparent depth at which titles and labels are
// pinned.
//
// Parameters:
//   - z: the camera-space depth, negative into the scene
//
// Returns:
//   - BuilderOption: the option function
func WithTextDepth(z float32) BuilderOption {
	return func(v *Visual) {
		v.textZ = z
	}
}
