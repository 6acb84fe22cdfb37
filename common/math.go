package common

import (
	"unsafe"

	"github.com/chewxy/math32"
)

// DegToRad converts an angle in degrees to radians.
//
// Parameters:
//   - deg: the angle in degrees
//
// Returns:
//   - float32: the angle in radians
func DegToRad(deg float32) float32 {
	return deg * (math32.Pi / 180.0)
}

// RadToDeg converts an angle in radians to degrees.
//
// Parameters:
//   - rad: the angle in radians
//
// Returns:
//   - float32: the angle in degrees
func RadToDeg(rad float32) float32 {
	return rad * (180.0 / math32.Pi)
}

// Clamp limits v to the inclusive range [lo, hi].
//
// Parameters:
//   - v: the value to clamp
//   - lo: the lower bound
//   - hi: the upper bound
//
// Returns:
//   - float32: v limited to [lo, hi]
func Clamp(v, lo, hi float32) float32 {
	return math32.Min(math32.Max(v, lo), hi)
}

// SliceToBytes reinterprets a slice as its raw bytes without copying, for
// handing vertex and index buffers to export encoders. The result aliases
// the input, so the input must stay live and unmodified while the bytes are
// in use.
//
// Parameters:
//   - data: the slice to view
//
// Returns:
//   - []byte: the backing bytes, nil for an empty slice
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	n := len(data) * int(unsafe.Sizeof(data[0]))
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), n)
}

// Luminance returns the perceived brightness of an RGB colour in [0, 1].
// Used to pick text and marker colours that stay visible on the current
// background.
//
// Parameters:
//   - r, g, b: colour components in [0, 1]
//
// Returns:
//   - float32: the weighted luminance
func Luminance(r, g, b float32) float32 {
	return 0.2126*r + 0.7152*g + 0.0722*b
}
