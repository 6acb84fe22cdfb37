package gfx

// ShaderSource holds the GLSL source pair for one shader program. Shader
// authoring lives with the host; the engine only hands sources to the Device
// for compilation and linking.
type ShaderSource struct {
	// Name identifies the program in error messages.
	Name string

	// Vertex is the vertex shader source.
	Vertex string

	// Fragment is the fragment shader source.
	Fragment string
}

// Program is a linked shader program resident on the device.
//
// Uniform setters look the uniform up by name each call and report whether it
// exists. A missing uniform is not an error: shaders that do not consume a
// feature simply do not declare its uniform, and callers skip silently.
type Program interface {
	// Use makes this program the active program for subsequent draws.
	Use()

	// SetUniformMat4 uploads a 4x4 column-major matrix uniform.
	//
	// Parameters:
	//   - name: the uniform name in the shader source
	//   - m: the matrix values, column-major
	//
	// Returns:
	//   - bool: false if the shader declares no such uniform
	SetUniformMat4(name string, m [16]float32) bool

	// SetUniformVec3 uploads a vec3 uniform.
	//
	// Returns:
	//   - bool: false if the shader declares no such uniform
	SetUniformVec3(name string, v [3]float32) bool

	// SetUniformVec4 uploads a vec4 uniform.
	//
	// Returns:
	//   - bool: false if the shader declares no such uniform
	SetUniformVec4(name string, v [4]float32) bool

	// SetUniformFloat uploads a float uniform.
	//
	// Returns:
	//   - bool: false if the shader declares no such uniform
	SetUniformFloat(name string, f float32) bool

	// Delete releases the program's device resources. The program must not be
	// used afterwards.
	Delete()
}

// Mesh is uploaded geometry ready to draw: interleaved-by-attribute vertex
// buffers (position, normal, colour) plus an index buffer.
type Mesh interface {
	// Draw issues the indexed draw call for this mesh using the currently
	// bound program.
	Draw()

	// Delete releases the mesh's device resources.
	Delete()
}

// Device is the graphics function-table boundary. Everything the scene core
// needs from the underlying graphics API goes through this interface, so the
// core itself never touches GL state and tests can substitute a recording
// fake.
type Device interface {
	// LoadProgram compiles and links a shader program from source.
	// A load failure is fatal to the caller: rendering cannot proceed without
	// its programs.
	//
	// Parameters:
	//   - src: the vertex/fragment source pair
	//
	// Returns:
	//   - Program: the linked program
	//   - error: compile or link failure
	LoadProgram(src ShaderSource) (Program, error)

	// CreateMesh uploads vertex and index data and returns a drawable mesh.
	// positions, normals and colors are tightly packed xyz/rgb triples and
	// must describe the same number of vertices.
	//
	// Parameters:
	//   - positions: vertex positions, 3 floats per vertex
	//   - normals: vertex normals, 3 floats per vertex
	//   - colors: vertex colours, 3 floats per vertex
	//   - indices: triangle indices into the vertex arrays
	//
	// Returns:
	//   - Mesh: the uploaded mesh
	//   - error: buffer creation failure
	CreateMesh(positions, normals, colors []float32, indices []uint32) (Mesh, error)

	// Viewport sets the device viewport in pixels.
	Viewport(x, y, width, height int)

	// ClearColorDepth clears the colour and depth buffers, filling the colour
	// buffer with the given background colour.
	ClearColorDepth(r, g, b, a float32)

	// ReadPixels reads back the colour buffer as tightly packed RGBA bytes,
	// bottom row first (the native readback order).
	//
	// Parameters:
	//   - width, height: the framebuffer size in pixels
	//
	// Returns:
	//   - []byte: width*height*4 bytes of RGBA data
	ReadPixels(width, height int) []byte
}
