package export

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/anthonynsimon/bild/transform"
)

// WriteImage encodes a framebuffer readback as PNG. The pixels arrive bottom
// row first, the native readback order, and are flipped on the way out.
// Unless transparent is set, alpha is forced opaque so the background's blend
// alpha does not punch holes in the saved image.
//
// Parameters:
//   - w: the destination
//   - width, height: the framebuffer size in pixels
//   - pixels: width*height*4 RGBA bytes, bottom row first
//   - transparent: keep the framebuffer's alpha channel
//
// Returns:
//   - error: size mismatch or encode failure
func WriteImage(w io.Writer, width, height int, pixels []byte, transparent bool) error {
	if len(pixels) != width*height*4 {
		return fmt.Errorf("export: pixel buffer is %d bytes, want %d for %dx%d",
			len(pixels), width*height*4, width, height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, pixels)
	if !transparent {
		for i := 3; i < len(img.Pix); i += 4 {
			img.Pix[i] = 0xff
		}
	}

	flipped := transform.FlipV(img)
	if err := png.Encode(w, flipped); err != nil {
		return fmt.Errorf("export: failed to encode image: %w", err)
	}
	return nil
}

// SaveImage writes a framebuffer readback to a PNG file.
//
// Parameters:
//   - path: the destination file
//   - width, height: the framebuffer size in pixels
//   - pixels: width*height*4 RGBA bytes, bottom row first
//   - transparent: keep the framebuffer's alpha channel
//
// Returns:
//   - error: create, encode or write failure
func SaveImage(path string, width, height int, pixels []byte, transparent bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: failed to create %s: %w", path, err)
	}
	if err := WriteImage(f, width, height, pixels, transparent); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: failed to write %s: %w", path, err)
	}
	return nil
}
