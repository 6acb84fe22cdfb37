package camera

import (
	"encoding/json"
	"fmt"
	"os"
)

// viewState is the on-disk form of the saved view. Pointer fields distinguish
// an absent key from an explicit zero, so partial files apply only the values
// they carry.
type viewState struct {
	TransX *float32 `json:"scenetrans_x,omitempty"`
	TransY *float32 `json:"scenetrans_y,omitempty"`
	TransZ *float32 `json:"scenetrans_z,omitempty"`
	RotW   *float32 `json:"scenerotn_w,omitempty"`
	RotX   *float32 `json:"scenerotn_x,omitempty"`
	RotY   *float32 `json:"scenerotn_y,omitempty"`
	RotZ   *float32 `json:"scenerotn_z,omitempty"`
}

// LoadState applies a previously saved view from the given file. A loaded
// translation also becomes the reset default; a loaded rotation replaces the
// current orientation but leaves the default alone. A missing or malformed
// file is not an error condition, the camera simply keeps its current state.
//
// Parameters:
//   - path: the state file path
//
// Returns:
//   - error: nil if applied; the read or parse failure otherwise, which
//     callers may log and ignore
func (c *Camera) LoadState(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("camera: failed to read view state %s: %w", path, err)
	}
	var vs viewState
	if err := json.Unmarshal(data, &vs); err != nil {
		return fmt.Errorf("camera: failed to parse view state %s: %w", path, err)
	}

	if vs.TransX != nil {
		c.translation[0] = *vs.TransX
	}
	if vs.TransY != nil {
		c.translation[1] = *vs.TransY
	}
	if vs.TransZ != nil {
		c.translation[2] = *vs.TransZ
	}
	c.translationDefault = c.translation

	if vs.RotW != nil {
		c.rotation.W = *vs.RotW
	}
	if vs.RotX != nil {
		c.rotation.V[0] = *vs.RotX
	}
	if vs.RotY != nil {
		c.rotation.V[1] = *vs.RotY
	}
	if vs.RotZ != nil {
		c.rotation.V[2] = *vs.RotZ
	}
	return nil
}

// SaveState writes the current translation and orientation to the given file,
// replacing any previous contents.
//
// Parameters:
//   - path: the state file path
//
// Returns:
//   - error: the write failure, if any
func (c *Camera) SaveState(path string) error {
	t := c.translation
	q := c.rotation
	vs := viewState{
		TransX: &t[0], TransY: &t[1], TransZ: &t[2],
		RotW: &q.W, RotX: &q.V[0], RotY: &q.V[1], RotZ: &q.V[2],
	}
	data, err := json.MarshalIndent(vs, "", " ")
	if err != nil {
		return fmt.Errorf("camera: failed to encode view state: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("camera: failed to write view state %s: %w", path, err)
	}
	return nil
}

// StateSetupCode returns a code snippet reproducing the current view, for
// pasting into host configuration. Emitted alongside SaveState when the user
// asks for the view to be captured.
//
// Returns:
//   - string: the snippet
func (c *Camera) StateSetupCode() string {
	t := c.translation
	q := c.rotation
	return fmt.Sprintf(
		"v.SetSceneTranslation(mgl32.Vec3{%g, %g, %g})\nv.SetSceneRotation(mgl32.Quat{W: %g, V: mgl32.Vec3{%g, %g, %g}})",
		t.X(), t.Y(), t.Z(), q.W, q.V[0], q.V[1], q.V[2])
}
