package renderable

import (
	"github.com/go-gl/mathgl/mgl32"

	"visage/common"
)

// Shaper turns a string into quad geometry for the text shader. The default
// shaper lays out fixed-advance quads; hosts with real glyph atlases supply
// their own.
type Shaper interface {
	// Shape lays out the string at the given line height, starting at the
	// origin and advancing along +x.
	//
	// Parameters:
	//   - s: the text to lay out
	//   - height: the line height in model units
	//
	// Returns:
	//   - positions: vertex positions, 3 floats per vertex
	//   - indices: triangle indices
	Shape(s string, height float32) (positions []float32, indices []uint32)
}

// quadShaper is the built-in fixed-advance layout: one quad per visible rune.
type quadShaper struct{}

func (quadShaper) Shape(s string, height float32) ([]float32, []uint32) {
	glyphW := height * 0.6
	advance := height * 0.7

	var positions []float32
	var indices []uint32
	x := float32(0)
	for _, r := range s {
		if r == ' ' {
			x += advance
			continue
		}
		base := uint32(len(positions) / 3)
		positions = append(positions,
			x, 0, 0,
			x+glyphW, 0, 0,
			x+glyphW, height, 0,
			x, height, 0,
		)
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
		x += advance
	}
	return positions, indices
}

// Text is a label or title rendered with the text program. It is pinned to a
// screen position each frame via SetSceneTranslation and flips between dark
// and light so it stays readable on any background.
type Text struct {
	*Mesh

	content string
	colour  [3]float32
}

// NewText creates a text renderable using the given shaper, or the built-in
// fixed-advance shaper when shaper is nil.
//
// Parameters:
//   - content: the text to display
//   - height: the line height in model units
//   - shaper: the glyph layout to use, nil for the default
//
// Returns:
//   - *Text: the newly created text
func NewText(content string, height float32, shaper Shaper) *Text {
	if shaper == nil {
		shaper = quadShaper{}
	}
	positions, indices := shaper.Shape(content, height)

	vertexCount := len(positions) / 3
	normals := make([]float32, len(positions))
	colors := make([]float32, len(positions))
	for i := 0; i < vertexCount; i++ {
		normals[i*3+2] = 1
	}

	t := &Text{
		Mesh:    NewMesh("text:"+content, positions, normals, colors, indices, WithTwoDimensional()),
		content: content,
		colour:  [3]float32{0, 0, 0},
	}
	return t
}

// Content returns the displayed string.
func (t *Text) Content() string { return t.content }

// SetSceneTranslation pins the text at the given world position.
//
// Parameters:
//   - v: the world-space position from un-projecting the screen offset
func (t *Text) SetSceneTranslation(v mgl32.Vec3) {
	t.SetSceneMatrix(mgl32.Translate3D(v.X(), v.Y(), v.Z()))
}

// SetVisibleOn flips the text colour so it stays readable against the given
// background. The geometry is re-uploaded only when the colour changes.
//
// Parameters:
//   - r, g, b: the background colour
//
// Returns:
//   - error: re-upload failure
func (t *Text) SetVisibleOn(r, g, b float32) error {
	want := [3]float32{0.9, 0.9, 0.9}
	if common.Luminance(r, g, b) > 0.5 {
		want = [3]float32{0, 0, 0}
	}
	if want == t.colour {
		return nil
	}
	t.colour = want

	colors := t.Colors()
	for i := 0; i < len(colors); i += 3 {
		colors[i] = want[0]
		colors[i+1] = want[1]
		colors[i+2] = want[2]
	}
	if t.device == nil {
		return nil
	}
	return t.Finalize(t.device)
}
