package editor

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venom-editor/scene"
)

func TestSpawnUndoRedoKeepsIdentityAndOrder(t *testing.T) {
	s := scene.New()
	h := NewHistory(10)
	first := s.Spawn(scene.PrimitivePlane)

	cmd := NewSpawnCommand(s, scene.PrimitiveCube)
	h.Do(cmd)
	last := s.Spawn(scene.PrimitiveSphere)
	require.NotNil(t, cmd.Object)
	spawned := cmd.Object

	require.NotNil(t, h.Undo())
	assert.Nil(t, s.Find(spawned.ID))
	assert.Equal(t, []*scene.Object{first, last}, s.Objects())

	require.NotNil(t, h.Redo())
	assert.Same(t, spawned, s.Find(spawned.ID))
	assert.Equal(t, []*scene.Object{first, spawned, last}, s.Objects())
	assert.Equal(t, "Spawn Cube", cmd.Description())
}

func TestDeleteUndoRestoresIndex(t *testing.T) {
	s := scene.New()
	a := s.Spawn(scene.PrimitiveCube)
	b := s.Spawn(scene.PrimitiveCube)
	c := s.Spawn(scene.PrimitiveCube)
	h := NewHistory(10)

	h.Do(NewDeleteCommand(s, b))
	assert.Equal(t, []*scene.Object{a, c}, s.Objects())

	h.Undo()
	assert.Equal(t, []*scene.Object{a, b, c}, s.Objects())
}

func TestTransformCommand(t *testing.T) {
	s := scene.New()
	obj := s.Spawn(scene.PrimitiveCube)
	moved := obj.Transform
	moved.Position = mgl32.Vec3{1, 2, 3}
	h := NewHistory(10)

	h.Do(NewTransformCommand(obj, moved, "Translate Cube"))
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, obj.Transform.Position)

	undone := h.Undo()
	require.NotNil(t, undone)
	assert.Equal(t, "Translate Cube", undone.Description())
	assert.Equal(t, mgl32.Vec3{}, obj.Transform.Position)
}

func TestHistoryDepthAndRedoInvalidation(t *testing.T) {
	s := scene.New()
	obj := s.Spawn(scene.PrimitiveCube)
	h := NewHistory(2)

	for i := range 3 {
		next := obj.Transform
		next.Position = mgl32.Vec3{float32(i + 1), 0, 0}
		h.Do(NewTransformCommand(obj, next, "move"))
	}
	require.NotNil(t, h.Undo())
	require.NotNil(t, h.Undo())
	assert.Nil(t, h.Undo(), "oldest step was dropped")
	assert.Equal(t, float32(1), obj.Transform.Position.X())

	assert.True(t, h.CanRedo())
	next := obj.Transform
	next.Scale = mgl32.Vec3{3, 3, 3}
	h.Do(NewTransformCommand(obj, next, "scale"))
	assert.False(t, h.CanRedo(), "new action clears redo")
	assert.Nil(t, h.Redo())

	h.Clear()
	assert.False(t, h.CanUndo())
}

func TestNewHistoryClampsDepth(t *testing.T) {
	s := scene.New()
	h := NewHistory(0)
	h.Do(NewSpawnCommand(s, scene.PrimitiveCube))
	h.Do(NewSpawnCommand(s, scene.PrimitiveCube))
	require.NotNil(t, h.Undo())
	assert.False(t, h.CanUndo())
}
