// Package preview provides live-viewing backends for Scene.Render's
// output: a GLFW/OpenGL window blitting one texture per frame, and an
// ANSI truecolor terminal renderer. Neither backend is part of the
// octree CORE; both are thin consumers of internal/scene's public
// surface, grounded on the teacher's renderer_opengl.go and
// renderer_terminal.go.
package preview

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/mirstar13/go-octree-raytracer/internal/scene"
)

const (
	quadVertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aUV;
out vec2 UV;
void main() {
	UV = aUV;
	gl_Position = vec4(aPos, 0.0, 1.0);
}
` + "\x00"

	quadFragmentShaderSource = `
#version 410 core
in vec2 UV;
out vec4 FragColor;
uniform sampler2D frame;
void main() {
	FragColor = vec4(texture(frame, UV).rgb, 1.0);
}
` + "\x00"
)

// Window is a live GLFW/OpenGL view of a Scene, re-rendering and
// re-uploading one frame to a full-screen textured quad every loop
// iteration.
type Window struct {
	win    *glfw.Window
	scene  *scene.Scene
	width  int
	height int

	program   uint32
	vao, vbo  uint32
	texture   uint32
	frameUniform int32

	moveSpeed float64
	lookSpeed float64
	lastX, lastY float64
	firstCursor  bool
}

// NewWindow creates a GLFW window and compiles the quad-blit shader.
// Call Run to start the render loop; it blocks until the window closes.
func NewWindow(s *scene.Scene, width, height int) (*Window, error) {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("preview: initializing GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(width, height, "octree ray tracer", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("preview: creating window: %w", err)
	}
	win.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("preview: initializing OpenGL: %w", err)
	}

	w := &Window{
		win:          win,
		scene:        s,
		width:        width,
		height:       height,
		moveSpeed:    2.0,
		lookSpeed:    0.002,
		firstCursor:  true,
	}

	if err := w.buildQuad(); err != nil {
		return nil, err
	}
	win.SetKeyCallback(w.keyCallback)
	win.SetCursorPosCallback(w.cursorCallback)

	gl.Viewport(0, 0, int32(width), int32(height))
	return w, nil
}

func (w *Window) buildQuad() error {
	vs, err := compileShader(quadVertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return fmt.Errorf("preview: quad vertex shader: %w", err)
	}
	defer gl.DeleteShader(vs)
	fs, err := compileShader(quadFragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return fmt.Errorf("preview: quad fragment shader: %w", err)
	}
	defer gl.DeleteShader(fs)

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		return fmt.Errorf("preview: linking quad program: %s", log)
	}
	w.program = program
	w.frameUniform = gl.GetUniformLocation(program, gl.Str("frame\x00"))

	// Two triangles covering the viewport, interleaved pos(2) + uv(2).
	verts := []float32{
		-1, -1, 0, 1,
		1, -1, 1, 1,
		1, 1, 1, 0,
		-1, -1, 0, 1,
		1, 1, 1, 0,
		-1, 1, 0, 0,
	}
	gl.GenVertexArrays(1, &w.vao)
	gl.GenBuffers(1, &w.vbo)
	gl.BindVertexArray(w.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, w.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(2*4))
	gl.EnableVertexAttribArray(1)

	gl.GenTextures(1, &w.texture)
	gl.BindTexture(gl.TEXTURE_2D, w.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	return nil
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
		return 0, fmt.Errorf("compiling shader: %s", log)
	}
	return shader, nil
}

// Run renders and displays one frame per loop iteration until the
// window is closed or the escape key is pressed.
func (w *Window) Run() {
	for !w.win.ShouldClose() {
		w.handleMovement()

		pixels := w.scene.Render(w.width, w.height)
		w.uploadFrame(pixels)

		gl.Clear(gl.COLOR_BUFFER_BIT)
		gl.UseProgram(w.program)
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, w.texture)
		gl.Uniform1i(w.frameUniform, 0)
		gl.BindVertexArray(w.vao)
		gl.DrawArrays(gl.TRIANGLES, 0, 6)

		w.win.SwapBuffers()
		glfw.PollEvents()
	}
}

func (w *Window) uploadFrame(pixels []byte) {
	gl.BindTexture(gl.TEXTURE_2D, w.texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB, int32(w.width), int32(w.height),
		0, gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
}

func (w *Window) handleMovement() {
	cam := w.scene.Camera
	if w.win.GetKey(glfw.KeyW) == glfw.Press {
		cam.MoveForward(w.moveSpeed)
	}
	if w.win.GetKey(glfw.KeyS) == glfw.Press {
		cam.MoveForward(-w.moveSpeed)
	}
	if w.win.GetKey(glfw.KeyA) == glfw.Press {
		cam.MoveRight(-w.moveSpeed)
	}
	if w.win.GetKey(glfw.KeyD) == glfw.Press {
		cam.MoveRight(w.moveSpeed)
	}
	if w.win.GetKey(glfw.KeyE) == glfw.Press {
		cam.MoveUp(w.moveSpeed)
	}
	if w.win.GetKey(glfw.KeyQ) == glfw.Press {
		cam.MoveUp(-w.moveSpeed)
	}
}

func (w *Window) keyCallback(win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Press && key == glfw.KeyEscape {
		win.SetShouldClose(true)
	}
}

func (w *Window) cursorCallback(win *glfw.Window, xpos, ypos float64) {
	if w.firstCursor {
		w.lastX, w.lastY = xpos, ypos
		w.firstCursor = false
		return
	}
	dx := xpos - w.lastX
	dy := ypos - w.lastY
	w.lastX, w.lastY = xpos, ypos

	w.scene.Camera.RotateYaw(dx * w.lookSpeed)
	w.scene.Camera.RotatePitch(dy * w.lookSpeed)
}

// Close tears down the GLFW window.
func (w *Window) Close() {
	glfw.Terminate()
}
