package editor

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venom-editor/config"
	"venom-editor/input"
	"venom-editor/scene"
)

type harness struct {
	t  *testing.T
	in *input.State
	e  *EditorLayer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	in := input.New()
	paths := config.ExportConfig{Path: "out.gltf", ScenePath: filepath.Join(t.TempDir(), "scene.venom.json")}
	return &harness{t: t, in: in, e: NewEditorLayer(scene.New(), in, paths, nil)}
}

// tap runs one frame with keys pressed this frame and released afterwards.
func (h *harness) tap(keys ...input.Key) {
	h.t.Helper()
	for _, k := range keys {
		require.NoError(h.t, h.in.UpdateDown(k))
	}
	h.e.OnUpdate(0)
	require.NoError(h.t, h.in.Update())
	for _, k := range keys {
		require.NoError(h.t, h.in.UpdateUp(k))
	}
	require.NoError(h.t, h.in.Update())
}

func (h *harness) names() []string {
	var out []string
	for _, o := range h.e.Scene.Objects() {
		out = append(out, o.Name)
	}
	return out
}

func TestSpawnKeys(t *testing.T) {
	h := newHarness(t)
	h.tap(input.Key1)
	h.tap(input.Key2)
	h.tap(input.Key3)
	h.tap(input.Key4)
	h.tap(input.Key5)
	h.tap(input.Key2)

	assert.Equal(t, []string{"Plane", "Cube", "Sphere", "Cone", "Capsule", "Cube.001"}, h.names())
	assert.Equal(t, "Cube.001", h.e.Selection.Active(h.e.Scene).Name)
}

func TestHeldKeyDoesNotRepeatShortcut(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.in.UpdateDown(input.Key2))
	for range 3 {
		h.e.OnUpdate(0)
		require.NoError(t, h.in.Update())
	}
	assert.Equal(t, 1, h.e.Scene.Len())
}

func TestOperationAndModeKeys(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, OpRotate, h.e.Gizmo.Operation)

	h.tap(input.KeyZ)
	assert.Equal(t, OpTranslate, h.e.Gizmo.Operation)
	h.tap(input.KeyR)
	assert.Equal(t, OpScale, h.e.Gizmo.Operation)
	h.tap(input.KeyE)
	assert.Equal(t, OpRotate, h.e.Gizmo.Operation)

	h.tap(input.KeyL)
	assert.Equal(t, ModeWorld, h.e.Gizmo.Mode)
	assert.Contains(t, h.e.Status(), "Rotate World")
}

func TestTabCyclesSelection(t *testing.T) {
	h := newHarness(t)
	h.tap(input.Key1)
	h.tap(input.Key2)
	h.tap(input.Key3)

	h.tap(input.KeyTab)
	assert.Equal(t, "Plane", h.e.Selection.Active(h.e.Scene).Name)
	h.tap(input.KeyTab)
	assert.Equal(t, "Cube", h.e.Selection.Active(h.e.Scene).Name)
	h.tap(input.KeyLeftShift, input.KeyTab)
	assert.Equal(t, "Plane", h.e.Selection.Active(h.e.Scene).Name)
}

func TestDeleteAndUndoRedo(t *testing.T) {
	h := newHarness(t)
	h.tap(input.Key2)
	h.tap(input.KeyX)
	assert.Zero(t, h.e.Scene.Len())
	assert.Contains(t, h.e.Status(), "nothing selected")

	h.tap(input.KeyLeftControl, input.KeyZ)
	assert.Equal(t, []string{"Cube"}, h.names())
	assert.Equal(t, OpRotate, h.e.Gizmo.Operation, "Ctrl+Z is not the translate shortcut")

	h.tap(input.KeyLeftControl, input.KeyY)
	assert.Zero(t, h.e.Scene.Len())

	h.tap(input.KeyRightControl, input.KeyZ)
	h.e.Selection.Cycle(h.e.Scene, 1)
	h.tap(input.KeyDelete)
	assert.Zero(t, h.e.Scene.Len())
}

func TestArrowKeysNudgeSelection(t *testing.T) {
	h := newHarness(t)
	h.tap(input.Key2)
	h.tap(input.KeyZ)
	h.tap(input.KeyRight)
	h.tap(input.KeyPageUp)

	obj := h.e.Selection.Active(h.e.Scene)
	require.NotNil(t, obj)
	assertVec3(t, mgl32.Vec3{0.1, 0.1, 0}, obj.Transform.Position, "position")

	h.tap(input.KeyLeftControl, input.KeyZ)
	assertVec3(t, mgl32.Vec3{0.1, 0, 0}, obj.Transform.Position)
}

func TestShortcutsSuspendedWhileFlying(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.in.UpdateMouseButtonDown(input.MouseRight))
	require.NoError(t, h.in.Update())

	h.tap(input.KeyE)
	h.tap(input.Key2)
	assert.Zero(t, h.e.Scene.Len())
}

func TestCtrlSExports(t *testing.T) {
	h := newHarness(t)
	var gotPath string
	h.e.Export = func(s *scene.Scene, path string) error {
		gotPath = path
		return nil
	}
	h.tap(input.Key2)
	h.tap(input.KeyLeftControl, input.KeyS)
	assert.Equal(t, "out.gltf", gotPath)
	assert.Contains(t, h.e.Status(), "Exported out.gltf")

	h.e.Export = func(*scene.Scene, string) error { return errors.New("disk full") }
	h.tap(input.KeyLeftControl, input.KeyS)
	assert.Contains(t, h.e.Status(), "Export failed: disk full")
}

func TestSaveAndLoadScene(t *testing.T) {
	h := newHarness(t)
	h.tap(input.Key2)
	h.tap(input.Key3)
	h.tap(input.KeyLeftControl, input.KeyLeftShift, input.KeyS)
	assert.Contains(t, h.e.Status(), "Saved ")

	h.tap(input.KeyX)
	h.tap(input.Key4)
	assert.Equal(t, []string{"Cube", "Cone"}, h.names())

	h.tap(input.KeyLeftControl, input.KeyO)
	assert.Equal(t, []string{"Cube", "Sphere"}, h.names())
	assert.False(t, h.e.History.CanUndo())
	assert.Contains(t, h.e.Status(), "nothing selected")
}

func TestLoadMissingSceneReportsError(t *testing.T) {
	h := newHarness(t)
	h.tap(input.Key2)
	h.tap(input.KeyLeftControl, input.KeyO)
	assert.Contains(t, h.e.Status(), "Load failed")
	assert.Equal(t, 1, h.e.Scene.Len())
}
