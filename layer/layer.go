// Package layer provides an ordered stack of frame handlers split into two
// bands: regular layers, dispatched first in push order, and overlays,
// dispatched after every regular layer.
package layer

// Layer is the minimal stack entry. Hooks are optional and discovered by
// type assertion against the capability interfaces below.
type Layer interface {
	Name() string
}

// Attacher is notified when the layer is pushed.
type Attacher interface {
	OnAttach()
}

// Detacher is notified when the layer is popped.
type Detacher interface {
	OnDetach()
}

// Updater runs once per frame with the frame time in seconds.
type Updater interface {
	OnUpdate(dt float32)
}

// GUIRenderer draws the layer's UI once per frame, after all updates.
type GUIRenderer interface {
	OnGUIRender()
}

// EventHandler receives window events.
type EventHandler interface {
	OnEvent(ev Event)
}

// Base can be embedded to satisfy Layer.
type Base struct {
	LayerName string
}

func NewBase(name string) Base { return Base{LayerName: name} }

func (b Base) Name() string {
	if b.LayerName == "" {
		return "Layer"
	}
	return b.LayerName
}
