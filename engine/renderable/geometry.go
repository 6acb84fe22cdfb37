package renderable

import "github.com/go-gl/mathgl/mgl32"

// boxFaces enumerates the six axis-aligned face normals.
var boxFaces = [6]mgl32.Vec3{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

// appendBox appends an axis-aligned box spanning min..max with a uniform
// colour and flat per-face normals. Returns the updated slices.
func appendBox(positions, normals, colors []float32, indices []uint32,
	min, max mgl32.Vec3, colour [3]float32) ([]float32, []float32, []float32, []uint32) {

	corner := func(n mgl32.Vec3, u, v mgl32.Vec3, su, sv float32) mgl32.Vec3 {
		c := mgl32.Vec3{
			(min.X() + max.X()) / 2,
			(min.Y() + max.Y()) / 2,
			(min.Z() + max.Z()) / 2,
		}
		half := mgl32.Vec3{
			(max.X() - min.X()) / 2,
			(max.Y() - min.Y()) / 2,
			(max.Z() - min.Z()) / 2,
		}
		p := c
		for i := 0; i < 3; i++ {
			p[i] += n[i]*half[i] + su*u[i]*half[i] + sv*v[i]*half[i]
		}
		return p
	}

	for _, n := range boxFaces {
		// Build an orthogonal in-face basis from the normal.
		u := mgl32.Vec3{n.Y(), n.Z(), n.X()}
		v := n.Cross(u)

		base := uint32(len(positions) / 3)
		for _, s := range [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
			p := corner(n, u, v, s[0], s[1])
			positions = append(positions, p.X(), p.Y(), p.Z())
			normals = append(normals, n.X(), n.Y(), n.Z())
			colors = append(colors, colour[0], colour[1], colour[2])
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return positions, normals, colors, indices
}

// NewBox creates a box mesh spanning min..max with a uniform colour.
//
// Parameters:
//   - name: the mesh name
//   - min, max: the box corners
//   - colour: the vertex colour
//   - options: functional options to configure the mesh
//
// Returns:
//   - *Mesh: the box mesh
func NewBox(name string, min, max mgl32.Vec3, colour [3]float32, options ...MeshBuilderOption) *Mesh {
	var positions, normals, colors []float32
	var indices []uint32
	positions, normals, colors, indices = appendBox(positions, normals, colors, indices, min, max, colour)
	return NewMesh(name, positions, normals, colors, indices, options...)
}
