package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"visage/engine/renderable"
)

// Scene owns the renderables in registration order, plus the title and any
// free-floating labels. Registration order is render order; indices returned
// by Add stay valid until a removal before them, the usual slice contract.
//
// Single-threaded: the scene belongs to the thread driving the event loop.
type Scene struct {
	renderables []renderable.Renderable

	title  *renderable.Text
	labels []*renderable.Text
}

// New creates an empty Scene.
//
// Parameters:
//   - options: functional options to configure the scene
//
// Returns:
//   - *Scene: the newly created scene
func New(options ...BuilderOption) *Scene {
	s := &Scene{}
	for _, option := range options {
		option(s)
	}
	return s
}

// Add appends a renderable and returns its index. The scene takes no
// ownership of device resources; callers finalize before or after adding.
//
// Parameters:
//   - r: the renderable to add
//
// Returns:
//   - int: the renderable's index in registration order
func (s *Scene) Add(r renderable.Renderable) int {
	s.renderables = append(s.renderables, r)
	return len(s.renderables) - 1
}

// Get returns the renderable at index, or nil when the index is out of
// range. Stale indices after a removal are the caller's problem to detect;
// Get merely refuses to panic on them.
//
// Parameters:
//   - index: the registration index
//
// Returns:
//   - renderable.Renderable: the renderable, or nil
func (s *Scene) Get(index int) renderable.Renderable {
	if index < 0 || index >= len(s.renderables) {
		return nil
	}
	return s.renderables[index]
}

// Remove deletes the renderable at index, shifting later renderables down.
//
// Parameters:
//   - index: the registration index
//
// Returns:
//   - bool: false if the index was out of range
func (s *Scene) Remove(index int) bool {
	if index < 0 || index >= len(s.renderables) {
		return false
	}
	s.renderables = append(s.renderables[:index], s.renderables[index+1:]...)
	return true
}

// RemoveByIdentity deletes the given renderable wherever it sits.
//
// Parameters:
//   - r: the renderable to remove
//
// Returns:
//   - bool: false if the renderable was not in the scene
func (s *Scene) RemoveByIdentity(r renderable.Renderable) bool {
	for i, have := range s.renderables {
		if have == r {
			return s.Remove(i)
		}
	}
	return false
}

// Contains reports whether the renderable is in the scene.
func (s *Scene) Contains(r renderable.Renderable) bool {
	for _, have := range s.renderables {
		if have == r {
			return true
		}
	}
	return false
}

// Count returns the number of registered renderables.
func (s *Scene) Count() int { return len(s.renderables) }

// Each visits the renderables in registration order.
//
// Parameters:
//   - fn: called once per renderable
func (s *Scene) Each(fn func(r renderable.Renderable)) {
	for _, r := range s.renderables {
		fn(r)
	}
}

// Title returns the scene title text, or nil when unset.
func (s *Scene) Title() *renderable.Text { return s.title }

// SetTitle replaces the scene title.
func (s *Scene) SetTitle(t *renderable.Text) { s.title = t }

// AddLabel appends a free-floating label rendered alongside the title.
func (s *Scene) AddLabel(t *renderable.Text) { s.labels = append(s.labels, t) }

// Labels returns the labels in registration order.
func (s *Scene) Labels() []*renderable.Text { return s.labels }

// EachText visits the title (if set) and every label.
//
// Parameters:
//   - fn: called once per text renderable
func (s *Scene) EachText(fn func(t *renderable.Text)) {
	if s.title != nil {
		fn(s.title)
	}
	for _, t := range s.labels {
		fn(t)
	}
}

// PinTexts places the title and labels at the given world position, as
// computed by un-projecting the text anchor each frame.
//
// Parameters:
//   - v: the world-space anchor position
func (s *Scene) PinTexts(v mgl32.Vec3) {
	s.EachText(func(t *renderable.Text) {
		t.SetSceneTranslation(v)
	})
}
