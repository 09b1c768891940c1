package layer

import (
	"iter"
	"slices"
)

// Stack holds layers in dispatch order. Indices [0, insertIndex) are regular
// layers and [insertIndex, len) are overlays. The stack does not own its
// layers: it never detaches or releases them on its own.
//
// Entries are compared by interface equality, so layers should be pointers.
// The zero value is an empty stack.
type Stack struct {
	layers      []Layer
	insertIndex int
}

// PushLayer inserts l after the last regular layer and before any overlay,
// then attaches it.
func (s *Stack) PushLayer(l Layer) {
	s.layers = slices.Insert(s.layers, s.insertIndex, l)
	s.insertIndex++
	if a, ok := l.(Attacher); ok {
		a.OnAttach()
	}
}

// PushOverlay appends o after every other entry. Overlays are not attached;
// only PushLayer calls OnAttach.
func (s *Stack) PushOverlay(o Layer) {
	s.layers = append(s.layers, o)
}

// PopLayer detaches and removes l if it is a regular layer in the stack.
// It is a no-op for overlays and absent layers.
func (s *Stack) PopLayer(l Layer) {
	i := slices.Index(s.layers[:s.insertIndex], l)
	if i < 0 {
		return
	}
	if d, ok := l.(Detacher); ok {
		d.OnDetach()
	}
	s.layers = slices.Delete(s.layers, i, i+1)
	s.insertIndex--
}

// PopOverlay detaches and removes o if it is an overlay in the stack.
// It is a no-op for regular layers and absent layers.
func (s *Stack) PopOverlay(o Layer) {
	i := slices.Index(s.layers[s.insertIndex:], o)
	if i < 0 {
		return
	}
	if d, ok := o.(Detacher); ok {
		d.OnDetach()
	}
	i += s.insertIndex
	s.layers = slices.Delete(s.layers, i, i+1)
}

func (s *Stack) Len() int          { return len(s.layers) }
func (s *Stack) LayerCount() int   { return s.insertIndex }
func (s *Stack) OverlayCount() int { return len(s.layers) - s.insertIndex }

// All yields every entry front to back: regular layers, then overlays.
func (s *Stack) All() iter.Seq[Layer] {
	return func(yield func(Layer) bool) {
		for _, l := range s.layers {
			if !yield(l) {
				return
			}
		}
	}
}

// Backward yields every entry from the topmost overlay down.
func (s *Stack) Backward() iter.Seq[Layer] {
	return func(yield func(Layer) bool) {
		for i := len(s.layers) - 1; i >= 0; i-- {
			if !yield(s.layers[i]) {
				return
			}
		}
	}
}

// Update calls OnUpdate on every Updater in stack order.
func (s *Stack) Update(dt float32) {
	for _, l := range s.snapshot() {
		if u, ok := l.(Updater); ok {
			u.OnUpdate(dt)
		}
	}
}

// RenderGUI calls OnGUIRender on every GUIRenderer in stack order.
func (s *Stack) RenderGUI() {
	for _, l := range s.snapshot() {
		if r, ok := l.(GUIRenderer); ok {
			r.OnGUIRender()
		}
	}
}

// Dispatch forwards ev to every EventHandler in stack order.
func (s *Stack) Dispatch(ev Event) {
	for _, l := range s.snapshot() {
		if h, ok := l.(EventHandler); ok {
			h.OnEvent(ev)
		}
	}
}

// snapshot lets hooks push or pop layers while a dispatch is running; the
// change takes effect from the next dispatch.
func (s *Stack) snapshot() []Layer {
	return slices.Clone(s.layers)
}
