package core

import (
	"fmt"
	"runtime"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"venom-editor/input"
	"venom-editor/layer"
)

func init() {
	runtime.LockOSThread()
}

// Window is a GLFW window with a current OpenGL 4.1 core context. It
// implements app.Window.
type Window struct {
	Handle *glfw.Window
	Title  string

	sink   func(layer.Event)
	inside bool
}

type WindowConfig struct {
	Width     int
	Height    int
	Title     string
	Samples   int
	Resizable bool
	VSync     bool
}

// NewWindow creates the window, makes its context current and loads GL.
// When the requested MSAA sample count is unavailable it retries without
// multisampling.
func NewWindow(config WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	handle, err := createWindow(config, config.Samples)
	if err != nil && config.Samples > 0 {
		handle, err = createWindow(config, 0)
	}
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	handle.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		handle.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	if config.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &Window{Handle: handle, Title: config.Title, sink: func(layer.Event) {}}
	w.inside = cursorInBounds(w.CursorPosition(), w.WindowSize())
	w.installCallbacks()
	return w, nil
}

func createWindow(config WindowConfig, samples int) (*glfw.Window, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, boolToInt(config.Resizable))
	glfw.WindowHint(glfw.Samples, samples)
	return glfw.CreateWindow(config.Width, config.Height, config.Title, nil, nil)
}

func (w *Window) installCallbacks() {
	w.Handle.SetKeyCallback(w.keyChange)
	w.Handle.SetMouseButtonCallback(w.mouseButtonChange)
	w.Handle.SetCursorPosCallback(w.cursorMove)
	w.Handle.SetCursorEnterCallback(func(_ *glfw.Window, entered bool) {
		w.inside = entered
	})
	w.Handle.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		w.sink(layer.MouseScrollEvent{OffsetX: xoff, OffsetY: yoff})
	})
	w.Handle.SetCharCallback(func(_ *glfw.Window, char rune) {
		w.sink(layer.TextInputEvent{Text: string(char)})
	})
	w.Handle.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.sink(layer.ViewportEvent{WindowSize: w.WindowSize(), FramebufferSize: input.Point{X: width, Y: height}})
	})
}

func (w *Window) keyChange(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
	k := input.Key(key)
	switch action {
	case glfw.Press:
		w.sink(layer.KeyPressEvent{Key: k, Mods: translateMods(mods)})
	case glfw.Repeat:
		w.sink(layer.KeyPressEvent{Key: k, Mods: translateMods(mods), Repeat: true})
	case glfw.Release:
		w.sink(layer.KeyReleaseEvent{Key: k, Mods: translateMods(mods)})
	}
}

func (w *Window) mouseButtonChange(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b := input.MouseButton(button)
	pos := w.CursorPosition()
	switch action {
	case glfw.Press:
		w.sink(layer.MousePressEvent{Button: b, Position: pos, Mods: translateMods(mods)})
	case glfw.Release:
		w.sink(layer.MouseReleaseEvent{Button: b, Position: pos, Mods: translateMods(mods)})
	}
}

func (w *Window) cursorMove(_ *glfw.Window, x, y float64) {
	w.sink(layer.MouseMoveEvent{Position: input.Point{X: int(x), Y: int(y)}})
}

func translateMods(m glfw.ModifierKey) layer.Mod {
	var out layer.Mod
	if m&glfw.ModShift != 0 {
		out |= layer.ModShift
	}
	if m&glfw.ModControl != 0 {
		out |= layer.ModControl
	}
	if m&glfw.ModAlt != 0 {
		out |= layer.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		out |= layer.ModSuper
	}
	return out
}

// SetEventSink routes window events to sink. Events are raised from
// PollEvents on the calling goroutine.
func (w *Window) SetEventSink(sink func(layer.Event)) {
	if sink == nil {
		sink = func(layer.Event) {}
	}
	w.sink = sink
}

func (w *Window) ShouldClose() bool {
	return w.Handle.ShouldClose()
}

func (w *Window) RequestClose() {
	w.Handle.SetShouldClose(true)
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) SwapBuffers() {
	w.Handle.SwapBuffers()
}

// CursorInside reports whether the cursor is over the window's content
// area. It tracks GLFW cursor enter/leave events.
func (w *Window) CursorInside() bool {
	return w.inside
}

// cursorInBounds is the initial hover state, before any enter/leave event.
func cursorInBounds(p, size input.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < size.X && p.Y < size.Y
}

func (w *Window) CursorPosition() input.Point {
	x, y := w.Handle.GetCursorPos()
	return input.Point{X: int(x), Y: int(y)}
}

func (w *Window) WindowSize() input.Point {
	width, height := w.Handle.GetSize()
	return input.Point{X: width, Y: height}
}

func (w *Window) FramebufferSize() input.Point {
	width, height := w.Handle.GetFramebufferSize()
	return input.Point{X: width, Y: height}
}

func (w *Window) SetTitle(title string) {
	w.Handle.SetTitle(title)
	w.Title = title
}

func (w *Window) Destroy() {
	w.Handle.Destroy()
	glfw.Terminate()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
