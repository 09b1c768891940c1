package scene

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/qmuntal/gltf"
)

// GLTFResult is a scene rebuilt from a .glb / .gltf file. Nodes that don't
// reference one of the primitive meshes, or that sit below another node,
// are listed in Skipped.
type GLTFResult struct {
	Scene   *Scene
	Skipped []string
}

// LoadGLTF reads a file written by ExportGLTF. Object kinds come from mesh
// names and ids from node extras; nodes without an id get a fresh one.
func LoadGLTF(path string) (*GLTFResult, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}
	result := &GLTFResult{Scene: New()}
	s := result.Scene

	for _, i := range rootNodes(doc) {
		gn := doc.Nodes[i]
		name := gn.Name
		if name == "" {
			name = fmt.Sprintf("node_%d", i)
		}

		p, ok := nodePrimitive(doc, gn)
		if !ok {
			result.Skipped = append(result.Skipped, name)
			continue
		}

		id := nodeID(gn)
		if id == uuid.Nil || s.Find(id) != nil {
			id = uuid.New()
		}

		t := gn.TranslationOrDefault()
		sc := gn.ScaleOrDefault()
		r := gn.RotationOrDefault() // [x, y, z, w]
		s.objects = append(s.objects, &Object{
			ID:        id,
			Name:      name,
			Primitive: p,
			Transform: Transform{
				Position: mgl32.Vec3{float32(t[0]), float32(t[1]), float32(t[2])},
				Rotation: mgl32.Quat{W: float32(r[3]), V: mgl32.Vec3{float32(r[0]), float32(r[1]), float32(r[2])}}.Normalize(),
				Scale:    mgl32.Vec3{float32(sc[0]), float32(sc[1]), float32(sc[2])},
			},
		})
		s.counts[p] = max(s.counts[p], nameIndex(name, p)+1)

		for _, c := range gn.Children {
			if c < len(doc.Nodes) {
				result.Skipped = append(result.Skipped, doc.Nodes[c].Name)
			}
		}
	}
	return result, nil
}

// rootNodes returns the default scene's nodes, or every parentless node
// when the document has no default scene.
func rootNodes(doc *gltf.Document) []int {
	if doc.Scene != nil && *doc.Scene < len(doc.Scenes) {
		return doc.Scenes[*doc.Scene].Nodes
	}
	hasParent := make([]bool, len(doc.Nodes))
	for _, gn := range doc.Nodes {
		for _, c := range gn.Children {
			if c < len(hasParent) {
				hasParent[c] = true
			}
		}
	}
	var roots []int
	for i := range doc.Nodes {
		if !hasParent[i] {
			roots = append(roots, i)
		}
	}
	return roots
}

func nodePrimitive(doc *gltf.Document, gn *gltf.Node) (Primitive, bool) {
	if gn.Mesh == nil || *gn.Mesh >= len(doc.Meshes) {
		return 0, false
	}
	p, err := ParsePrimitive(doc.Meshes[*gn.Mesh].Name)
	return p, err == nil
}

func nodeID(gn *gltf.Node) uuid.UUID {
	extras, ok := gn.Extras.(map[string]any)
	if !ok {
		return uuid.Nil
	}
	s, _ := extras["id"].(string)
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}

// Open loads a scene from either a glTF file or a SaveScene JSON file,
// chosen by extension.
func Open(path string) (*Scene, []string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gltf", ".glb":
		res, err := LoadGLTF(path)
		if err != nil {
			return nil, nil, err
		}
		return res.Scene, res.Skipped, nil
	default:
		s, err := LoadScene(path)
		return s, nil, err
	}
}
