package scene

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

var ErrEmptyScene = errors.New("scene has no objects")

// BuildDocument converts s into a glTF document. Each primitive kind in use
// becomes one mesh, shared by every node of that kind.
func BuildDocument(s *Scene) (*gltf.Document, error) {
	if s.Len() == 0 {
		return nil, ErrEmptyScene
	}
	doc := gltf.NewDocument()
	doc.Asset.Generator = "venom-editor"

	meshes := make(map[Primitive]int)
	for _, obj := range s.objects {
		meshIdx, ok := meshes[obj.Primitive]
		if !ok {
			meshIdx = writeMesh(doc, obj.Primitive)
			meshes[obj.Primitive] = meshIdx
		}

		t := obj.Transform
		q := t.Rotation.Normalize()
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name:        obj.Name,
			Mesh:        gltf.Index(meshIdx),
			Translation: [3]float64{float64(t.Position[0]), float64(t.Position[1]), float64(t.Position[2])},
			Rotation:    [4]float64{float64(q.V[0]), float64(q.V[1]), float64(q.V[2]), float64(q.W)},
			Scale:       [3]float64{float64(t.Scale[0]), float64(t.Scale[1]), float64(t.Scale[2])},
			Extras:      map[string]any{"id": obj.ID.String()},
		})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)
	}
	return doc, nil
}

func writeMesh(doc *gltf.Document, p Primitive) int {
	data := GenerateMesh(p)
	positions := make([][3]float32, len(data.Positions))
	normals := make([][3]float32, len(data.Normals))
	for i := range data.Positions {
		positions[i] = data.Positions[i]
		normals[i] = data.Normals[i]
	}

	posIdx := modeler.WritePosition(doc, positions)
	nrmIdx := modeler.WriteNormal(doc, normals)
	indIdx := modeler.WriteIndices(doc, data.Indices)

	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: p.String(),
		Primitives: []*gltf.Primitive{{
			Indices:    gltf.Index(indIdx),
			Attributes: map[string]int{"POSITION": posIdx, "NORMAL": nrmIdx},
		}},
	})
	return len(doc.Meshes) - 1
}

// ExportGLTF writes s to path. A .glb extension produces a binary file;
// anything else is written as .gltf json with its buffer in a sibling
// .bin file.
func ExportGLTF(s *Scene, path string) error {
	doc, err := BuildDocument(s)
	if err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}

	ext := filepath.Ext(path)
	if strings.EqualFold(ext, ".glb") {
		err = gltf.SaveBinary(doc, path)
	} else {
		doc.Buffers[0].URI = strings.TrimSuffix(filepath.Base(path), ext) + ".bin"
		err = gltf.Save(doc, path)
	}
	if err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return nil
}
