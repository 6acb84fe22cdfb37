package common

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyA = 65 // A key (ASCII)
	KeyC = 67 // C key (ASCII)
	KeyH = 72 // H key (ASCII)
	KeyI = 73 // I key (ASCII)
	KeyL = 76 // L key (ASCII)
	KeyM = 77 // M key (ASCII)
	KeyO = 79 // O key (ASCII)
	KeyP = 80 // P key (ASCII)
	KeyQ = 81 // Q key (ASCII)
	KeyS = 83 // S key (ASCII)
	KeyU = 85 // U key (ASCII)
	KeyY = 89 // Y key (ASCII)
	KeyZ = 90 // Z key (ASCII)

	KeyEsc = 256 // Escape key (GLFW)

	KeyRight = 262 // Right arrow (GLFW)
	KeyLeft  = 263 // Left arrow (GLFW)
	KeyDown  = 264 // Down arrow (GLFW)
	KeyUp    = 265 // Up arrow (GLFW)

	KeyF1  = 290 // F1 key (GLFW)
	KeyF2  = 291 // F2 key (GLFW)
	KeyF3  = 292 // F3 key (GLFW)
	KeyF4  = 293 // F4 key (GLFW)
	KeyF5  = 294 // F5 key (GLFW)
	KeyF6  = 295 // F6 key (GLFW)
	KeyF7  = 296 // F7 key (GLFW)
	KeyF8  = 297 // F8 key (GLFW)
	KeyF9  = 298 // F9 key (GLFW)
	KeyF10 = 299 // F10 key (GLFW)
)

// Key action phases, matching GLFW action values.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Action
const (
	ActionRelease = 0 // Key or button released
	ActionPress   = 1 // Key or button pressed
	ActionRepeat  = 2 // Key held down (auto-repeat); not reported for buttons
)

// Modifier key bits, matching GLFW modifier flags.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#ModifierKey
const (
	ModShift   = 0x0001 // Shift held
	ModControl = 0x0002 // Control held
	ModAlt     = 0x0004 // Alt held
)

// Mouse button identifiers, matching GLFW button values.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#MouseButton
const (
	MouseButtonLeft   = 0 // Primary button: rotate gestures
	MouseButtonRight  = 1 // Secondary button: translate gestures
	MouseButtonMiddle = 2 // Middle button (unbound)
)
