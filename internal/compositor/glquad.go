package compositor

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const quadVertexSrc = `#version 410 core
layout(location = 0) in vec2 position;
out vec2 uv;
uniform mat4 mvp;
void main() {
	uv = position;
	gl_Position = mvp * vec4(position, 0.0, 1.0);
}` + "\x00"

const quadFragmentSrc = `#version 410 core
in vec2 uv;
out vec4 fragColor;
uniform sampler2D tex;
void main() {
	fragColor = texture(tex, uv);
}` + "\x00"

// GLQuad draws a unit quad with the currently bound 2D texture. Requires
// a current GL 4.1 core context.
type GLQuad struct {
	program uint32
	vao     uint32
	vbo     uint32
	mvpLoc  int32
}

var _ QuadDrawer = (*GLQuad)(nil)

func NewGLQuad() *GLQuad {
	return &GLQuad{}
}

func (q *GLQuad) Init() error {
	program, err := compileProgram(quadVertexSrc, quadFragmentSrc)
	if err != nil {
		return err
	}
	q.program = program
	q.mvpLoc = gl.GetUniformLocation(program, gl.Str("mvp\x00"))

	// Unit quad; positions double as texture coordinates.
	vertices := []float32{
		0, 0,
		1, 0,
		1, 1,
		1, 1,
		0, 1,
		0, 0,
	}

	gl.GenVertexArrays(1, &q.vao)
	gl.BindVertexArray(q.vao)

	gl.GenBuffers(1, &q.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, q.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, nil)

	gl.BindVertexArray(0)
	return nil
}

func (q *GLQuad) Draw(mvp mgl32.Mat4) {
	gl.UseProgram(q.program)
	gl.UniformMatrix4fv(q.mvpLoc, 1, false, &mvp[0])
	gl.BindVertexArray(q.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
}

func (q *GLQuad) Dispose() {
	if q.vbo != 0 {
		gl.DeleteBuffers(1, &q.vbo)
		q.vbo = 0
	}
	if q.vao != 0 {
		gl.DeleteVertexArrays(1, &q.vao)
		q.vao = 0
	}
	if q.program != 0 {
		gl.DeleteProgram(q.program)
		q.program = 0
	}
}

func compileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertexShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fragmentShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		return 0, fmt.Errorf("failed to link program: %v", log)
	}
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

		return 0, fmt.Errorf("failed to compile shader: %v", log)
	}
	return shader, nil
}
