package editor

import (
	"venom-editor/scene"
)

// Command represents an undoable editor action
type Command interface {
	Execute()
	Undo()
	Description() string
}

// History manages undo/redo stacks
type History struct {
	undoStack []Command
	redoStack []Command
	maxDepth  int
}

// NewHistory creates a new history with the given max undo depth. A depth
// below one keeps a single step.
func NewHistory(maxDepth int) *History {
	maxDepth = max(maxDepth, 1)
	return &History{
		undoStack: make([]Command, 0, maxDepth),
		redoStack: make([]Command, 0, maxDepth),
		maxDepth:  maxDepth,
	}
}

// Do executes a command and pushes it to the undo stack
func (h *History) Do(cmd Command) {
	cmd.Execute()
	h.undoStack = append(h.undoStack, cmd)
	if len(h.undoStack) > h.maxDepth {
		h.undoStack = h.undoStack[1:]
	}
	// Clear redo stack on new action
	h.redoStack = h.redoStack[:0]
}

// Undo reverts the last action and returns it, or nil.
func (h *History) Undo() Command {
	if len(h.undoStack) == 0 {
		return nil
	}
	cmd := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	cmd.Undo()
	h.redoStack = append(h.redoStack, cmd)
	return cmd
}

// Redo reapplies the last undone action and returns it, or nil.
func (h *History) Redo() Command {
	if len(h.redoStack) == 0 {
		return nil
	}
	cmd := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	cmd.Execute()
	h.undoStack = append(h.undoStack, cmd)
	return cmd
}

func (h *History) CanUndo() bool { return len(h.undoStack) > 0 }
func (h *History) CanRedo() bool { return len(h.redoStack) > 0 }

func (h *History) Clear() {
	h.undoStack = h.undoStack[:0]
	h.redoStack = h.redoStack[:0]
}

// SpawnCommand adds a new primitive. The object is created on first
// Execute and re-inserted at the same index on redo.
type SpawnCommand struct {
	Scene     *scene.Scene
	Primitive scene.Primitive
	Object    *scene.Object
	index     int
}

func NewSpawnCommand(s *scene.Scene, p scene.Primitive) *SpawnCommand {
	return &SpawnCommand{Scene: s, Primitive: p, index: -1}
}

func (c *SpawnCommand) Execute() {
	if c.Object == nil {
		c.Object = c.Scene.Spawn(c.Primitive)
		return
	}
	c.Scene.Add(c.Object, c.index)
}

func (c *SpawnCommand) Undo() {
	if c.Object != nil {
		c.index = c.Scene.Remove(c.Object.ID)
	}
}

func (c *SpawnCommand) Description() string {
	if c.Object == nil {
		return "Spawn " + c.Primitive.String()
	}
	return "Spawn " + c.Object.Name
}

// DeleteCommand removes an object and restores it at its old index.
type DeleteCommand struct {
	Scene  *scene.Scene
	Object *scene.Object
	index  int
}

func NewDeleteCommand(s *scene.Scene, obj *scene.Object) *DeleteCommand {
	return &DeleteCommand{Scene: s, Object: obj, index: -1}
}

func (c *DeleteCommand) Execute()            { c.index = c.Scene.Remove(c.Object.ID) }
func (c *DeleteCommand) Undo()               { c.Scene.Add(c.Object, c.index) }
func (c *DeleteCommand) Description() string { return "Delete " + c.Object.Name }

// TransformCommand records a transform change on an object
type TransformCommand struct {
	Object       *scene.Object
	OldTransform scene.Transform
	NewTransform scene.Transform
	desc         string
}

func NewTransformCommand(obj *scene.Object, newTransform scene.Transform, desc string) *TransformCommand {
	return &TransformCommand{
		Object:       obj,
		OldTransform: obj.Transform,
		NewTransform: newTransform,
		desc:         desc,
	}
}

func (c *TransformCommand) Execute()            { c.Object.Transform = c.NewTransform }
func (c *TransformCommand) Undo()               { c.Object.Transform = c.OldTransform }
func (c *TransformCommand) Description() string { return c.desc }
