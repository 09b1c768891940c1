// Package editor implements the scene editing layer: spawning primitives,
// selecting them, nudging their transforms and undoing it all.
package editor

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"

	"venom-editor/config"
	"venom-editor/input"
	"venom-editor/layer"
	"venom-editor/scene"
)

const historyDepth = 100

var spawnKeys = [...]input.Key{input.Key1, input.Key2, input.Key3, input.Key4, input.Key5}

var nudgeKeys = []struct {
	key  input.Key
	axis mgl32.Vec3
	sign float32
}{
	{input.KeyRight, mgl32.Vec3{1, 0, 0}, 1},
	{input.KeyLeft, mgl32.Vec3{1, 0, 0}, -1},
	{input.KeyPageUp, mgl32.Vec3{0, 1, 0}, 1},
	{input.KeyPageDown, mgl32.Vec3{0, 1, 0}, -1},
	{input.KeyDown, mgl32.Vec3{0, 0, 1}, 1},
	{input.KeyUp, mgl32.Vec3{0, 0, 1}, -1},
}

// EditorLayer reacts to key edges each frame. Shortcuts are suspended while
// the right mouse button is held so they don't collide with camera flight.
type EditorLayer struct {
	layer.Base

	Scene      *scene.Scene
	History    *History
	Selection  Selection
	Gizmo      Gizmo
	ExportPath string
	ScenePath  string

	// Export writes the scene; replaceable in tests.
	Export func(s *scene.Scene, path string) error

	in     *input.State
	log    *slog.Logger
	status string
}

func NewEditorLayer(s *scene.Scene, in *input.State, paths config.ExportConfig, log *slog.Logger) *EditorLayer {
	if log == nil {
		log = slog.Default()
	}
	return &EditorLayer{
		Base:       layer.NewBase("Editor"),
		Scene:      s,
		History:    NewHistory(historyDepth),
		Gizmo:      Gizmo{Operation: OpRotate, Mode: ModeLocal},
		ExportPath: paths.Path,
		ScenePath:  paths.ScenePath,
		Export:     scene.ExportGLTF,
		in:         in,
		log:        log.With("layer", "editor"),
		status:     "Ready",
	}
}

func (e *EditorLayer) OnAttach() {
	e.log.Debug("editor attached", "objects", e.Scene.Len())
}

func (e *EditorLayer) OnDetach() {
	e.History.Clear()
}

func (e *EditorLayer) OnUpdate(float32) {
	if e.in.MouseButton(input.MouseRight) {
		return
	}
	if e.ctrl() {
		e.handleCtrlShortcuts()
		return
	}
	e.handleShortcuts()
}

func (e *EditorLayer) ctrl() bool {
	return e.in.Key(input.KeyLeftControl) || e.in.Key(input.KeyRightControl)
}

func (e *EditorLayer) shift() bool {
	return e.in.Key(input.KeyLeftShift) || e.in.Key(input.KeyRightShift)
}

func (e *EditorLayer) handleCtrlShortcuts() {
	switch {
	case e.in.KeyDown(input.KeyZ):
		if cmd := e.History.Undo(); cmd != nil {
			e.setStatus("Undo " + cmd.Description())
		}
	case e.in.KeyDown(input.KeyY):
		if cmd := e.History.Redo(); cmd != nil {
			e.setStatus("Redo " + cmd.Description())
		}
	case e.in.KeyDown(input.KeyS) && e.shift():
		e.save()
	case e.in.KeyDown(input.KeyS):
		e.export()
	case e.in.KeyDown(input.KeyO):
		e.load()
	}
}

func (e *EditorLayer) handleShortcuts() {
	for i, p := range scene.Primitives() {
		if e.in.KeyDown(spawnKeys[i]) {
			cmd := NewSpawnCommand(e.Scene, p)
			e.History.Do(cmd)
			e.Selection.Select(cmd.Object)
			e.setStatus("Spawned " + cmd.Object.Name)
		}
	}

	if e.in.KeyDown(input.KeyZ) {
		e.setOperation(OpTranslate)
	}
	if e.in.KeyDown(input.KeyE) {
		e.setOperation(OpRotate)
	}
	if e.in.KeyDown(input.KeyR) {
		e.setOperation(OpScale)
	}
	if e.in.KeyDown(input.KeyL) {
		e.Gizmo.ToggleMode()
		e.setStatus("Mode: " + e.Gizmo.EffectiveMode().String())
	}

	if e.in.KeyDown(input.KeyTab) {
		step := 1
		if e.shift() {
			step = -1
		}
		if obj := e.Selection.Cycle(e.Scene, step); obj != nil {
			e.setStatus("Selected " + obj.Name)
		}
	}

	if e.in.KeyDown(input.KeyDelete) || e.in.KeyDown(input.KeyX) {
		e.deleteSelected()
	}

	e.handleNudge()
}

func (e *EditorLayer) handleNudge() {
	obj := e.Selection.Active(e.Scene)
	if obj == nil {
		return
	}
	for _, n := range nudgeKeys {
		if !e.in.KeyDown(n.key) {
			continue
		}
		desc := fmt.Sprintf("%s %s", e.Gizmo.Operation, obj.Name)
		e.History.Do(NewTransformCommand(obj, e.Gizmo.Apply(obj.Transform, n.axis, n.sign), desc))
		e.setStatus(desc)
	}
}

func (e *EditorLayer) setOperation(op GizmoOperation) {
	e.Gizmo.Operation = op
	e.setStatus("Tool: " + op.String())
}

func (e *EditorLayer) deleteSelected() {
	obj := e.Selection.Active(e.Scene)
	if obj == nil {
		return
	}
	e.History.Do(NewDeleteCommand(e.Scene, obj))
	e.Selection.Clear()
	e.setStatus("Deleted " + obj.Name)
}

func (e *EditorLayer) export() {
	if err := e.Export(e.Scene, e.ExportPath); err != nil {
		e.log.Error("export failed", "path", e.ExportPath, "error", err)
		e.setStatus("Export failed: " + err.Error())
		return
	}
	e.log.Info("scene exported", "path", e.ExportPath, "objects", e.Scene.Len())
	e.setStatus("Exported " + e.ExportPath)
}

func (e *EditorLayer) save() {
	if err := scene.SaveScene(e.Scene, e.ScenePath); err != nil {
		e.log.Error("save failed", "path", e.ScenePath, "error", err)
		e.setStatus("Save failed: " + err.Error())
		return
	}
	e.log.Info("scene saved", "path", e.ScenePath, "objects", e.Scene.Len())
	e.setStatus("Saved " + e.ScenePath)
}

// load replaces the scene from ScenePath, which may also be a glTF file.
// History is dropped since its
// commands refer to the old objects.
func (e *EditorLayer) load() {
	loaded, skipped, err := scene.Open(e.ScenePath)
	if err != nil {
		e.log.Error("load failed", "path", e.ScenePath, "error", err)
		e.setStatus("Load failed: " + err.Error())
		return
	}
	e.Scene.ReplaceWith(loaded)
	e.History.Clear()
	e.Selection.Clear()
	if len(skipped) > 0 {
		e.log.Warn("nodes skipped on load", "path", e.ScenePath, "nodes", skipped)
	}
	e.log.Info("scene loaded", "path", e.ScenePath, "objects", e.Scene.Len())
	e.setStatus("Loaded " + e.ScenePath)
}

func (e *EditorLayer) setStatus(msg string) {
	e.status = msg
	e.log.Debug(msg)
}

// Status is a one-line summary for the window title or a status bar.
func (e *EditorLayer) Status() string {
	selected := "nothing selected"
	if obj := e.Selection.Active(e.Scene); obj != nil {
		selected = obj.Name
	}
	return fmt.Sprintf("%s | %s %s | %s | %d objects",
		e.status, e.Gizmo.Operation, e.Gizmo.EffectiveMode(), selected, e.Scene.Len())
}
