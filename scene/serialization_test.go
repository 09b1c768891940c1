package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadScene(t *testing.T) {
	s := New()
	cube := s.Spawn(PrimitiveCube)
	cube.Transform.Position = mgl32.Vec3{1, 2, 3}
	cube.Transform.Rotation = mgl32.QuatRotate(0.5, mgl32.Vec3{0, 1, 0})
	s.Spawn(PrimitiveCube)
	s.Spawn(PrimitiveCapsule).Transform.Scale = mgl32.Vec3{1, 2, 1}

	path := filepath.Join(t.TempDir(), "scene.json")
	require.NoError(t, SaveScene(s, path))

	loaded, err := LoadScene(path)
	require.NoError(t, err)
	require.Equal(t, s.Len(), loaded.Len())
	for i, want := range s.Objects() {
		got := loaded.Objects()[i]
		assert.Equal(t, want.ID, got.ID)
		assert.Equal(t, want.Name, got.Name)
		assert.Equal(t, want.Primitive, got.Primitive)
		assertMat4(t, want.Transform.Matrix(), got.Transform.Matrix(), got.Name)
	}

	assert.Equal(t, "Cube.002", loaded.Spawn(PrimitiveCube).Name, "naming continues after loaded suffixes")
	assert.Equal(t, "Capsule.001", loaded.Spawn(PrimitiveCapsule).Name)
	assert.Equal(t, "Plane", loaded.Spawn(PrimitivePlane).Name)
}

func TestLoadSceneErrors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
		return p
	}

	_, err := LoadScene(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadScene(write("bad.json", "{"))
	assert.ErrorContains(t, err, "unmarshal scene")

	_, err = LoadScene(write("version.json", `{"Version": 9}`))
	assert.ErrorContains(t, err, "unsupported version 9")

	_, err = LoadScene(write("kind.json", `{"Version": 1, "Objects": [{"ID": "8c3b5f8e-6f0e-4f43-9a51-3f2f1f7f9d10", "Primitive": "Torus"}]}`))
	assert.ErrorContains(t, err, "unknown primitive")

	_, err = LoadScene(write("id.json", `{"Version": 1, "Objects": [{"ID": "nope", "Primitive": "Cube"}]}`))
	assert.Error(t, err)
}

func TestReplaceWithKeepsPointer(t *testing.T) {
	s := New()
	s.Spawn(PrimitiveSphere)
	o := New()
	o.Spawn(PrimitiveCone)
	o.Spawn(PrimitiveCone)

	s.ReplaceWith(o)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, "Cone.002", s.Spawn(PrimitiveCone).Name)
	assert.Equal(t, 2, o.Len(), "source is not aliased")
}
