package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

const sceneVersion = 1

// ── JSON data structures ──────────────────────────────────────────────────────

type vec3JSON struct {
	X, Y, Z float32
}

type transformJSON struct {
	Position vec3JSON
	Scale    vec3JSON
	// Quaternion stored as (X, Y, Z, W)
	RotX, RotY, RotZ, RotW float32
}

type objectJSON struct {
	ID        string
	Name      string
	Primitive string
	Transform transformJSON
}

type sceneJSON struct {
	Version int
	Objects []objectJSON
}

// ── Save ──────────────────────────────────────────────────────────────────────

// SaveScene writes the scene's objects to a JSON file at path. Geometry is
// not stored; it is regenerated from each object's primitive kind.
func SaveScene(s *Scene, path string) error {
	js := sceneJSON{Version: sceneVersion}
	for _, obj := range s.objects {
		js.Objects = append(js.Objects, objectJSON{
			ID:        obj.ID.String(),
			Name:      obj.Name,
			Primitive: obj.Primitive.String(),
			Transform: transformToJSON(obj.Transform),
		})
	}

	data, err := json.MarshalIndent(js, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene %q: %w", path, err)
	}
	return nil
}

// ── Load ──────────────────────────────────────────────────────────────────────

// LoadScene reads a file written by SaveScene. Spawn naming continues after
// the highest loaded suffix of each kind.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene %q: %w", path, err)
	}
	var js sceneJSON
	if err := json.Unmarshal(data, &js); err != nil {
		return nil, fmt.Errorf("unmarshal scene: %w", err)
	}
	if js.Version != sceneVersion {
		return nil, fmt.Errorf("scene %q: unsupported version %d", path, js.Version)
	}

	s := New()
	for i, oj := range js.Objects {
		p, err := ParsePrimitive(oj.Primitive)
		if err != nil {
			return nil, fmt.Errorf("scene %q object %d: %w", path, i, err)
		}
		id, err := uuid.Parse(oj.ID)
		if err != nil {
			return nil, fmt.Errorf("scene %q object %d: %w", path, i, err)
		}
		if s.Find(id) != nil {
			return nil, fmt.Errorf("scene %q object %d: duplicate id %s", path, i, id)
		}
		s.objects = append(s.objects, &Object{
			ID:        id,
			Name:      oj.Name,
			Primitive: p,
			Transform: jsonToTransform(oj.Transform),
		})
		s.counts[p] = max(s.counts[p], nameIndex(oj.Name, p)+1)
	}
	return s, nil
}

// ReplaceWith swaps in the contents of o. Pointers to s stay valid.
func (s *Scene) ReplaceWith(o *Scene) {
	s.objects = o.Objects()
	s.counts = o.counts
}

// nameIndex maps "Cube" to 0 and "Cube.004" to 4. Names that don't follow
// the pattern count as 0.
func nameIndex(name string, p Primitive) int {
	suffix, ok := strings.CutPrefix(name, p.String()+".")
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(suffix)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// ── conversion helpers ────────────────────────────────────────────────────────

func vec3ToJSON(v mgl32.Vec3) vec3JSON { return vec3JSON{v[0], v[1], v[2]} }
func jsonToVec3(v vec3JSON) mgl32.Vec3 { return mgl32.Vec3{v.X, v.Y, v.Z} }

func transformToJSON(t Transform) transformJSON {
	return transformJSON{
		Position: vec3ToJSON(t.Position),
		Scale:    vec3ToJSON(t.Scale),
		RotX:     t.Rotation.V[0],
		RotY:     t.Rotation.V[1],
		RotZ:     t.Rotation.V[2],
		RotW:     t.Rotation.W,
	}
}

func jsonToTransform(tj transformJSON) Transform {
	t := IdentityTransform()
	t.Position = jsonToVec3(tj.Position)
	t.Scale = jsonToVec3(tj.Scale)
	q := mgl32.Quat{W: tj.RotW, V: mgl32.Vec3{tj.RotX, tj.RotY, tj.RotZ}}
	if q.Len() > 0 {
		t.Rotation = q.Normalize()
	}
	return t
}
