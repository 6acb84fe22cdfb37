package gfx

// Default shader programs for the three rendering paths: flat/perspective
// scene geometry, cylindrical-projection scene geometry, and screen-space
// text quads. Hosts can substitute their own sources; these cover the stock
// visualization pipeline.

// SceneShader is the scene-geometry program used for the perspective and
// orthographic projection modes.
var SceneShader = ShaderSource{
	Name: "scene",
	Vertex: `#version 410
uniform mat4 p_matrix;
uniform mat4 m_matrix;
layout(location = 0) in vec3 position;
layout(location = 1) in vec3 normal;
layout(location = 2) in vec3 colour;
out vec3 frag_normal;
out vec3 frag_colour;
out vec3 frag_pos;
void main() {
    vec4 world = m_matrix * vec4(position, 1.0);
    frag_pos = world.xyz;
    frag_normal = mat3(m_matrix) * normal;
    frag_colour = colour;
    gl_Position = p_matrix * world;
}`,
	Fragment: `#version 410
uniform vec3 light_colour;
uniform float ambient_intensity;
uniform vec3 diffuse_position;
uniform float diffuse_intensity;
uniform float alpha;
in vec3 frag_normal;
in vec3 frag_colour;
in vec3 frag_pos;
out vec4 out_colour;
void main() {
    vec3 ambient = ambient_intensity * light_colour;
    vec3 light_dir = normalize(diffuse_position - frag_pos);
    float diff = max(dot(normalize(frag_normal), light_dir), 0.0);
    vec3 diffuse = diffuse_intensity * diff * light_colour;
    out_colour = vec4((ambient + diffuse) * frag_colour, alpha);
}`,
}

// CylinderShader is the scene-geometry program for the cylindrical projection
// mode. Rather than baking the camera into the view matrix, it consumes the
// camera position, screen radius and screen height as uniforms and wraps each
// vertex onto the cylindrical image surface.
var CylinderShader = ShaderSource{
	Name: "cylindrical",
	Vertex: `#version 410
uniform mat4 p_matrix;
uniform mat4 m_matrix;
uniform vec4 cyl_cam_pos;
uniform float cyl_radius;
uniform float cyl_height;
layout(location = 0) in vec3 position;
layout(location = 1) in vec3 normal;
layout(location = 2) in vec3 colour;
out vec3 frag_normal;
out vec3 frag_colour;
out vec3 frag_pos;
void main() {
    vec4 pv = m_matrix * vec4(position, 1.0) - cyl_cam_pos;
    float theta = atan(pv.x, -pv.z);
    float dist = length(pv.xz);
    float x_s = theta / 3.1415927;
    float y_s = (pv.y / max(cyl_height, 1e-6)) * (cyl_radius / max(dist, 1e-6));
    float z_s = (dist - cyl_radius) / 100.0;
    frag_pos = pv.xyz;
    frag_normal = mat3(m_matrix) * normal;
    frag_colour = colour;
    gl_Position = vec4(x_s, y_s, z_s, 1.0);
}`,
	Fragment: SceneShader.Fragment,
}

// TextShader renders the title and label quads. It shares the projection
// matrix uniform name with the scene programs and takes the glyph colour per
// vertex.
var TextShader = ShaderSource{
	Name: "text",
	Vertex: `#version 410
uniform mat4 p_matrix;
uniform mat4 m_matrix;
layout(location = 0) in vec3 position;
layout(location = 1) in vec3 normal;
layout(location = 2) in vec3 colour;
out vec3 frag_colour;
void main() {
    frag_colour = colour;
    gl_Position = p_matrix * m_matrix * vec4(position, 1.0);
}`,
	Fragment: `#version 410
uniform float alpha;
in vec3 frag_colour;
out vec4 out_colour;
void main() {
    out_colour = vec4(frag_colour, alpha);
}`,
}
