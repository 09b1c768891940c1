package editor

import (
	"github.com/google/uuid"

	"venom-editor/scene"
)

// Selection tracks the single active object by id, so it survives the
// object being removed and re-added by undo.
type Selection struct {
	id uuid.UUID
}

func (s *Selection) Clear() { s.id = uuid.Nil }

func (s *Selection) Select(obj *scene.Object) {
	if obj == nil {
		s.Clear()
		return
	}
	s.id = obj.ID
}

// Active returns the selected object if it is still in sc.
func (s *Selection) Active(sc *scene.Scene) *scene.Object {
	if s.id == uuid.Nil {
		return nil
	}
	return sc.Find(s.id)
}

// Cycle moves the selection step places through sc, wrapping around. With
// nothing selected it starts at the first (or last) object.
func (s *Selection) Cycle(sc *scene.Scene, step int) *scene.Object {
	objs := sc.Objects()
	if len(objs) == 0 {
		s.Clear()
		return nil
	}
	i := sc.IndexOf(s.id)
	switch {
	case i < 0 && step >= 0:
		i = 0
	case i < 0:
		i = len(objs) - 1
	default:
		i = ((i+step)%len(objs) + len(objs)) % len(objs)
	}
	s.id = objs[i].ID
	return objs[i]
}
