package light

// Lighting carries the uniform values consumed by the scene fragment shader:
// one light colour shared by the ambient and diffuse terms, plus intensities
// and the diffuse source position.
type Lighting struct {
	// Colour is the light colour applied to both terms.
	Colour [3]float32

	// AmbientIntensity scales the ambient term.
	AmbientIntensity float32

	// DiffusePosition is the world-space diffuse source position.
	DiffusePosition [3]float32

	// DiffuseIntensity scales the diffuse term. Zero disables shading
	// entirely, leaving flat vertex colours.
	DiffuseIntensity float32
}

// Default returns flat lighting: white light at full ambient intensity with
// the diffuse term switched off, so geometry shows its raw vertex colours.
//
// Returns:
//   - Lighting: the flat default
func Default() Lighting {
	return Lighting{
		Colour:           [3]float32{1, 1, 1},
		AmbientIntensity: 1.0,
		DiffusePosition:  [3]float32{5, 5, 15},
		DiffuseIntensity: 0.0,
	}
}

// SetEffects toggles between flat lighting and a shaded look. On, the ambient
// term drops to 0.4 and the diffuse term rises to 0.6; off restores the flat
// 1.0/0.0 split.
//
// Parameters:
//   - on: whether shading effects are enabled
func (l *Lighting) SetEffects(on bool) {
	if on {
		l.AmbientIntensity = 0.4
		l.DiffuseIntensity = 0.6
	} else {
		l.AmbientIntensity = 1.0
		l.DiffuseIntensity = 0.0
	}
}
