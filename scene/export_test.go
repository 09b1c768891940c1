package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleScene() *Scene {
	s := New()
	s.Spawn(PrimitiveCube).Transform.Position = mgl32.Vec3{1, 0, 0}
	s.Spawn(PrimitiveCube).Transform.Scale = mgl32.Vec3{2, 2, 2}
	s.Spawn(PrimitiveSphere)
	return s
}

func TestBuildDocumentSharesMeshesPerKind(t *testing.T) {
	doc, err := BuildDocument(sampleScene())
	require.NoError(t, err)

	require.Len(t, doc.Meshes, 2)
	assert.Equal(t, "Cube", doc.Meshes[0].Name)
	assert.Equal(t, "Sphere", doc.Meshes[1].Name)

	require.Len(t, doc.Nodes, 3)
	assert.Equal(t, []int{0, 1, 2}, doc.Scenes[0].Nodes)
	assert.Equal(t, 0, *doc.Nodes[0].Mesh)
	assert.Equal(t, 0, *doc.Nodes[1].Mesh)
	assert.Equal(t, 1, *doc.Nodes[2].Mesh)
	assert.Equal(t, [3]float64{1, 0, 0}, doc.Nodes[0].Translation)
	assert.Equal(t, [3]float64{2, 2, 2}, doc.Nodes[1].Scale)
	assert.Equal(t, [4]float64{0, 0, 0, 1}, doc.Nodes[2].Rotation)
}

func TestBuildDocumentRejectsEmptyScene(t *testing.T) {
	_, err := BuildDocument(New())
	assert.ErrorIs(t, err, ErrEmptyScene)

	err = ExportGLTF(New(), filepath.Join(t.TempDir(), "x.gltf"))
	assert.ErrorIs(t, err, ErrEmptyScene)
}

func TestExportGLTFRoundTrip(t *testing.T) {
	for _, name := range []string{"scene.gltf", "scene.glb"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, ExportGLTF(sampleScene(), path))

			doc, err := gltf.Open(path)
			require.NoError(t, err)
			require.Len(t, doc.Nodes, 3)
			assert.Equal(t, "Cube.001", doc.Nodes[1].Name)

			prim := doc.Meshes[0].Primitives[0]
			positions, err := modeler.ReadPosition(doc, doc.Accessors[prim.Attributes["POSITION"]], nil)
			require.NoError(t, err)
			assert.Len(t, positions, len(GenerateMesh(PrimitiveCube).Positions))
		})
	}
}

func TestExportGLTFWritesSiblingBuffer(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, ExportGLTF(sampleScene(), filepath.Join(dir, "out.gltf")))
	_, err := os.Stat(filepath.Join(dir, "out.bin"))
	assert.NoError(t, err)
}

func TestLoadGLTFRebuildsScene(t *testing.T) {
	src := sampleScene()
	src.Objects()[2].Transform.Rotation = mgl32.QuatRotate(0.7, mgl32.Vec3{1, 0, 0})
	path := filepath.Join(t.TempDir(), "scene.glb")
	require.NoError(t, ExportGLTF(src, path))

	res, err := LoadGLTF(path)
	require.NoError(t, err)
	assert.Empty(t, res.Skipped)
	require.Equal(t, src.Len(), res.Scene.Len())
	for i, want := range src.Objects() {
		got := res.Scene.Objects()[i]
		assert.Equal(t, want.ID, got.ID)
		assert.Equal(t, want.Name, got.Name)
		assert.Equal(t, want.Primitive, got.Primitive)
		assertMat4(t, want.Transform.Matrix(), got.Transform.Matrix(), got.Name)
	}
	assert.Equal(t, "Cube.002", res.Scene.Spawn(PrimitiveCube).Name)
}

func TestLoadGLTFSkipsForeignNodes(t *testing.T) {
	doc, err := BuildDocument(sampleScene())
	require.NoError(t, err)
	doc.Nodes = append(doc.Nodes, &gltf.Node{Name: "Empty"})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)
	path := filepath.Join(t.TempDir(), "foreign.glb")
	require.NoError(t, gltf.SaveBinary(doc, path))

	res, err := LoadGLTF(path)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Scene.Len())
	assert.Equal(t, []string{"Empty"}, res.Skipped)
}

func TestOpenChoosesLoaderByExtension(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, ExportGLTF(sampleScene(), filepath.Join(dir, "a.gltf")))
	require.NoError(t, SaveScene(sampleScene(), filepath.Join(dir, "a.json")))

	for _, name := range []string{"a.gltf", "a.json"} {
		s, _, err := Open(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Equal(t, 3, s.Len(), name)
	}

	_, _, err := Open(filepath.Join(dir, "missing.glb"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
