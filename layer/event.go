package layer

import "venom-editor/input"

// Event is a window event forwarded to every layer.
type Event interface{ isEvent() }

// Mod is a bitmask of keyboard modifiers held during an event.
type Mod int

const (
	ModShift Mod = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

func (m Mod) Has(o Mod) bool { return m&o == o }

type ViewportEvent struct {
	WindowSize      input.Point
	FramebufferSize input.Point
}

type KeyPressEvent struct {
	Key    input.Key
	Mods   Mod
	Repeat bool
}

type KeyReleaseEvent struct {
	Key  input.Key
	Mods Mod
}

type MousePressEvent struct {
	Button   input.MouseButton
	Position input.Point
	Mods     Mod
}

type MouseReleaseEvent struct {
	Button   input.MouseButton
	Position input.Point
	Mods     Mod
}

type MouseMoveEvent struct {
	Position input.Point
}

type MouseScrollEvent struct {
	OffsetX, OffsetY float64
}

type TextInputEvent struct {
	Text string
}

func (ViewportEvent) isEvent()     {}
func (KeyPressEvent) isEvent()     {}
func (KeyReleaseEvent) isEvent()   {}
func (MousePressEvent) isEvent()   {}
func (MouseReleaseEvent) isEvent() {}
func (MouseMoveEvent) isEvent()    {}
func (MouseScrollEvent) isEvent()  {}
func (TextInputEvent) isEvent()    {}
