package gfx

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glDevice is the OpenGL 4.1 core implementation of Device.
// A current GL context is required for every method; context acquisition is
// the windowing collaborator's job.
type glDevice struct{}

var _ Device = &glDevice{}

// NewGLDevice initializes the OpenGL function table and returns a Device
// backed by it. Must be called with a current GL context.
//
// Returns:
//   - Device: the OpenGL device
//   - error: error if the GL function table cannot be loaded
func NewGLDevice() (Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gfx: failed to load GL function table: %w", err)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)

	return &glDevice{}, nil
}

func (d *glDevice) LoadProgram(src ShaderSource) (Program, error) {
	vs, err := compileShader(src.Name, gl.VERTEX_SHADER, src.Vertex)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vs)

	fs, err := compileShader(src.Name, gl.FRAGMENT_SHADER, src.Fragment)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fs)

	handle := gl.CreateProgram()
	gl.AttachShader(handle, vs)
	gl.AttachShader(handle, fs)
	gl.LinkProgram(handle)

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		defer gl.DeleteProgram(handle)
		return nil, fmt.Errorf("gfx: failed to link program %q: %s", src.Name, programInfoLog(handle))
	}

	return &glProgram{handle: handle}, nil
}

func (d *glDevice) CreateMesh(positions, normals, colors []float32, indices []uint32) (Mesh, error) {
	if len(positions) == 0 || len(indices) == 0 {
		return nil, fmt.Errorf("gfx: cannot create mesh with empty geometry")
	}
	if len(normals) != len(positions) || len(colors) != len(positions) {
		return nil, fmt.Errorf("gfx: mesh attribute lengths differ: %d positions, %d normals, %d colors",
			len(positions), len(normals), len(colors))
	}

	m := &glMesh{indexCount: int32(len(indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(3, &m.vbos[0])
	uploadAttrib(m.vbos[0], 0, positions)
	uploadAttrib(m.vbos[1], 1, normals)
	uploadAttrib(m.vbos[2], 2, colors)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 4*len(indices), gl.Ptr(indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return m, nil
}

func (d *glDevice) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (d *glDevice) ClearColorDepth(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (d *glDevice) ReadPixels(width, height int) []byte {
	buf := make([]byte, width*height*4)
	gl.Finish()
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(buf))
	return buf
}

// uploadAttrib uploads one tightly packed vec3 attribute array and binds it to
// the given attribute index.
func uploadAttrib(vbo, index uint32, data []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 4*len(data), gl.Ptr(data), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(index)
	gl.VertexAttribPointerWithOffset(index, 3, gl.FLOAT, false, 0, 0)
}

// compileShader compiles one shader stage, returning the GL handle.
func compileShader(name string, stage uint32, source string) (uint32, error) {
	handle := gl.CreateShader(stage)
	csrc, free := gl.Strs(source + "\x00")
	gl.ShaderSource(handle, 1, csrc, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLen)
		infoLog := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(handle, logLen, nil, gl.Str(infoLog))
		gl.DeleteShader(handle)
		return 0, fmt.Errorf("gfx: failed to compile shader %q: %s", name, strings.TrimRight(infoLog, "\x00"))
	}
	return handle, nil
}

// programInfoLog fetches the link log for error reporting.
func programInfoLog(handle uint32) string {
	var logLen int32
	gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &logLen)
	infoLog := strings.Repeat("\x00", int(logLen+1))
	gl.GetProgramInfoLog(handle, logLen, nil, gl.Str(infoLog))
	return strings.TrimRight(infoLog, "\x00")
}

// glProgram wraps a linked GL program handle.
type glProgram struct {
	handle uint32
}

var _ Program = &glProgram{}

func (p *glProgram) Use() {
	gl.UseProgram(p.handle)
}

// uniformLocation resolves a uniform by name; -1 means the shader does not
// declare it.
func (p *glProgram) uniformLocation(name string) int32 {
	return gl.GetUniformLocation(p.handle, gl.Str(name+"\x00"))
}

func (p *glProgram) SetUniformMat4(name string, m [16]float32) bool {
	loc := p.uniformLocation(name)
	if loc == -1 {
		return false
	}
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
	return true
}

func (p *glProgram) SetUniformVec3(name string, v [3]float32) bool {
	loc := p.uniformLocation(name)
	if loc == -1 {
		return false
	}
	gl.Uniform3fv(loc, 1, &v[0])
	return true
}

func (p *glProgram) SetUniformVec4(name string, v [4]float32) bool {
	loc := p.uniformLocation(name)
	if loc == -1 {
		return false
	}
	gl.Uniform4fv(loc, 1, &v[0])
	return true
}

func (p *glProgram) SetUniformFloat(name string, f float32) bool {
	loc := p.uniformLocation(name)
	if loc == -1 {
		return false
	}
	gl.Uniform1f(loc, f)
	return true
}

func (p *glProgram) Delete() {
	gl.DeleteProgram(p.handle)
	p.handle = 0
}

// glMesh holds the VAO and buffer objects for one uploaded mesh.
type glMesh struct {
	vao        uint32
	vbos       [3]uint32
	ebo        uint32
	indexCount int32
}

var _ Mesh = &glMesh{}

func (m *glMesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

func (m *glMesh) Delete() {
	gl.DeleteBuffers(1, &m.ebo)
	gl.DeleteBuffers(3, &m.vbos[0])
	gl.DeleteVertexArrays(1, &m.vao)
}
