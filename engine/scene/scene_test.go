package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"visage/engine/renderable"
)

func tri(name string) *renderable.Mesh {
	return renderable.NewMesh(name,
		[]float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		[]float32{0, 0, 1, 0, 0, 1, 0, 0, 1},
		[]float32{1, 1, 1, 1, 1, 1, 1, 1, 1},
		[]uint32{0, 1, 2},
	)
}

func TestAddReturnsRegistrationIndex(t *testing.T) {
	s := New()
	a, b, c := tri("a"), tri("b"), tri("c")
	assert.Equal(t, 0, s.Add(a))
	assert.Equal(t, 1, s.Add(b))
	assert.Equal(t, 2, s.Add(c))
	assert.Equal(t, 3, s.Count())
	assert.Same(t, b, s.Get(1))
}

func TestGetOutOfRange(t *testing.T) {
	s := New()
	s.Add(tri("a"))
	assert.Nil(t, s.Get(-1))
	assert.Nil(t, s.Get(1))
}

func TestRemoveShiftsLater(t *testing.T) {
	s := New()
	a, b, c := tri("a"), tri("b"), tri("c")
	s.Add(a)
	s.Add(b)
	s.Add(c)

	assert.True(t, s.Remove(1))
	assert.Equal(t, 2, s.Count())
	assert.Same(t, a, s.Get(0))
	assert.Same(t, c, s.Get(1))
	assert.False(t, s.Contains(b))

	assert.False(t, s.Remove(5))
	assert.False(t, s.Remove(-1))
}

func TestRemoveByIdentity(t *testing.T) {
	s := New()
	a, b := tri("a"), tri("b")
	s.Add(a)
	s.Add(b)

	assert.True(t, s.RemoveByIdentity(a))
	assert.Equal(t, 1, s.Count())
	assert.Same(t, b, s.Get(0))

	assert.False(t, s.RemoveByIdentity(a), "already removed")
}

func TestEachVisitsInRegistrationOrder(t *testing.T) {
	s := New()
	names := []string{"first", "second", "third"}
	for _, n := range names {
		s.Add(tri(n))
	}

	var seen []string
	s.Each(func(r renderable.Renderable) {
		seen = append(seen, r.(*renderable.Mesh).Name())
	})
	assert.Equal(t, names, seen)
}

func TestTitleAndLabels(t *testing.T) {
	title := renderable.NewText("plot", 0.1, nil)
	s := New(WithTitle(title))
	assert.Same(t, title, s.Title())

	l1 := renderable.NewText("x axis", 0.05, nil)
	s.AddLabel(l1)

	var contents []string
	s.EachText(func(txt *renderable.Text) {
		contents = append(contents, txt.Content())
	})
	assert.Equal(t, []string{"plot", "x axis"}, contents)
}

func TestEachTextWithoutTitle(t *testing.T) {
	s := New()
	s.AddLabel(renderable.NewText("only label", 0.05, nil))

	count := 0
	s.EachText(func(txt *renderable.Text) { count++ })
	assert.Equal(t, 1, count)
}

func TestPinTexts(t *testing.T) {
	s := New(WithTitle(renderable.NewText("t", 0.1, nil)))
	s.AddLabel(renderable.NewText("l", 0.1, nil))
	// Pinning must not panic and must touch every text; behaviour of the
	// resulting matrix is covered in the renderable package.
	s.PinTexts(mgl32.Vec3{-1, 1, -1})
}

func TestWithRenderables(t *testing.T) {
	a, b := tri("a"), tri("b")
	s := New(WithRenderables(a, b))
	assert.Equal(t, 2, s.Count())
	assert.Same(t, a, s.Get(0))
}
