package main

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"axiscube/internal/input"
	"axiscube/internal/raster"
	"axiscube/internal/render"
)

const title = "Axis Cube"

var (
	vertexShaderSource = `
		#version 410
		in vec2 vp;
		in vec2 vt;
		uniform mat4 mvp;
		out vec2 uv;
		void main() {
			uv = vt;
			gl_Position = mvp * vec4(vp, 0.0, 1.0);
		}
	` + "\x00"

	fragmentShaderSource = `
		#version 410
		in vec2 uv;
		uniform sampler2D frame;
		out vec4 frag_colour;
		void main() {
			frag_colour = texture(frame, uv);
		}
	` + "\x00"
)

// window shows software-rendered frames in a GLFW window by streaming the
// canvas into a texture drawn over the whole viewport.
type window struct {
	win    *glfw.Window
	canvas *raster.Canvas

	program uint32
	vao     uint32
	tex     uint32

	queue []input.Event

	lastFrameTime float64
	lastFpsTime   float64
	frameCount    int
}

var _ render.Driver = (*window)(nil)

// openWindow must be called from the locked main thread.
func openWindow(width, height int, canvas *raster.Canvas) (*window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("init gl: %w", err)
	}

	w := &window{win: win, canvas: canvas}
	if err := w.setupGL(width, height); err != nil {
		glfw.Terminate()
		return nil, err
	}

	win.SetCharCallback(func(_ *glfw.Window, char rune) {
		w.queue = append(w.queue, input.Rune(char))
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press && action != glfw.Repeat {
			return
		}
		switch key {
		case glfw.KeyEnter, glfw.KeyKPEnter:
			w.queue = append(w.queue, input.Enter)
		case glfw.KeyBackspace:
			w.queue = append(w.queue, input.Backspace)
		case glfw.KeyEscape:
			w.queue = append(w.queue, input.Quit)
		}
	})

	w.lastFrameTime = glfw.GetTime()
	w.lastFpsTime = w.lastFrameTime
	return w, nil
}

func (w *window) setupGL(width, height int) error {
	program, err := newProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return fmt.Errorf("setup gl: %w", err)
	}
	w.program = program
	gl.UseProgram(program)

	// pixel space, origin top-left like the canvas
	mvp := mgl32.Ortho2D(0, float32(width), float32(height), 0)
	mvpUniform := gl.GetUniformLocation(program, gl.Str("mvp\x00"))
	gl.UniformMatrix4fv(mvpUniform, 1, false, &mvp[0])
	gl.Uniform1i(gl.GetUniformLocation(program, gl.Str("frame\x00")), 0)

	fw, fh := float32(width), float32(height)
	quad := []float32{
		// x, y, u, v
		0, 0, 0, 0,
		fw, 0, 1, 0,
		fw, fh, 1, 1,
		0, 0, 0, 0,
		fw, fh, 1, 1,
		0, fh, 0, 1,
	}

	gl.GenVertexArrays(1, &w.vao)
	gl.BindVertexArray(w.vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(quad), gl.STATIC_DRAW)

	vertAttrib := uint32(gl.GetAttribLocation(program, gl.Str("vp\x00")))
	gl.EnableVertexAttribArray(vertAttrib)
	gl.VertexAttribPointer(vertAttrib, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(0))

	texAttrib := uint32(gl.GetAttribLocation(program, gl.Str("vt\x00")))
	gl.EnableVertexAttribArray(texAttrib)
	gl.VertexAttribPointer(texAttrib, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(2*4))

	img := w.canvas.Img
	gl.GenTextures(1, &w.tex)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, w.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(img.Rect.Dx()), int32(img.Rect.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	gl.ClearColor(0, 0, 0, 1)
	return nil
}

func (w *window) close() {
	gl.DeleteTextures(1, &w.tex)
	gl.DeleteVertexArrays(1, &w.vao)
	gl.DeleteProgram(w.program)
	glfw.Terminate()
}

func (w *window) Events() []input.Event {
	glfw.PollEvents()
	if w.win.ShouldClose() {
		w.queue = append(w.queue, input.Quit)
	}
	evs := w.queue
	w.queue = nil
	return evs
}

func (w *window) Elapsed() float64 {
	currentTime := glfw.GetTime()
	deltaTime := currentTime - w.lastFrameTime
	w.lastFrameTime = currentTime
	return deltaTime
}

func (w *window) Surface() render.Surface { return w.canvas }

func (w *window) Present() error {
	// FPS Counter Update (every 1 second)
	currentTime := glfw.GetTime()
	w.frameCount++
	if currentTime-w.lastFpsTime >= 1.0 {
		w.win.SetTitle(fmt.Sprintf("%s | FPS: %d", title, w.frameCount))
		w.frameCount = 0
		w.lastFpsTime = currentTime
	}

	fbw, fbh := w.win.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbw), int32(fbh))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	img := w.canvas.Img
	gl.UseProgram(w.program)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, w.tex)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(img.Rect.Dx()), int32(img.Rect.Dy()),
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	gl.BindVertexArray(w.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)

	w.win.SwapBuffers()
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("gl error 0x%x", code)
	}
	return nil
}

// newProgram links the frame-quad shader pair.
func newProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertexShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("frame quad vertex shader: %w", err)
	}

	fragmentShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, fmt.Errorf("frame quad fragment shader: %w", err)
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

		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))

		gl.DeleteShader(vertexShader)
		gl.DeleteShader(fragmentShader)
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link frame quad program: %s", strings.TrimRight(infoLog, "\x00"))
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

		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))

		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile: %s", strings.TrimRight(infoLog, "\x00"))
	}

	return shader, nil
}
