// Package scene holds the editable objects of the editor and the primitive
// meshes they are built from.
package scene

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

type Primitive int

const (
	PrimitivePlane Primitive = iota
	PrimitiveCube
	PrimitiveSphere
	PrimitiveCone
	PrimitiveCapsule

	numPrimitives
)

var primitiveNames = [numPrimitives]string{"Plane", "Cube", "Sphere", "Cone", "Capsule"}

// Primitives lists every primitive kind in spawn-key order.
func Primitives() []Primitive {
	return []Primitive{PrimitivePlane, PrimitiveCube, PrimitiveSphere, PrimitiveCone, PrimitiveCapsule}
}

func (p Primitive) Valid() bool { return p >= 0 && p < numPrimitives }

func (p Primitive) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Primitive(%d)", int(p))
	}
	return primitiveNames[p]
}

// ParsePrimitive matches names case-insensitively.
func ParsePrimitive(name string) (Primitive, error) {
	for i, n := range primitiveNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Primitive(i), nil
		}
	}
	return 0, fmt.Errorf("unknown primitive %q", name)
}

// Transform is a TRS transform.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

func IdentityTransform() Transform {
	return Transform{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// Matrix returns T * R * S.
func (t Transform) Matrix() mgl32.Mat4 {
	translation := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	rotation := t.Rotation.Normalize().Mat4()
	scale := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())
	return translation.Mul4(rotation).Mul4(scale)
}

type Object struct {
	ID        uuid.UUID
	Name      string
	Primitive Primitive
	Transform Transform
}

// Scene is an ordered list of objects. Order is spawn order and is what
// the editor cycles through.
type Scene struct {
	objects []*Object
	counts  [numPrimitives]int
}

func New() *Scene {
	return &Scene{}
}

// Spawn creates an object of kind p at the origin. Names follow the
// "Cube", "Cube.001", "Cube.002" pattern per kind.
func (s *Scene) Spawn(p Primitive) *Object {
	if !p.Valid() {
		p = PrimitiveCube
	}
	name := p.String()
	if n := s.counts[p]; n > 0 {
		name = fmt.Sprintf("%s.%03d", name, n)
	}
	s.counts[p]++

	obj := &Object{
		ID:        uuid.New(),
		Name:      name,
		Primitive: p,
		Transform: IdentityTransform(),
	}
	s.objects = append(s.objects, obj)
	return obj
}

// Add appends obj, or moves it to index when 0 <= index < Len. Adding an
// object that is already present does nothing.
func (s *Scene) Add(obj *Object, index int) {
	if obj == nil || s.Find(obj.ID) != nil {
		return
	}
	if index < 0 || index > len(s.objects) {
		index = len(s.objects)
	}
	s.objects = slices.Insert(s.objects, index, obj)
}

// Remove deletes the object with id and reports its former index, or -1.
func (s *Scene) Remove(id uuid.UUID) int {
	i := s.IndexOf(id)
	if i < 0 {
		return -1
	}
	s.objects = slices.Delete(s.objects, i, i+1)
	return i
}

func (s *Scene) IndexOf(id uuid.UUID) int {
	return slices.IndexFunc(s.objects, func(o *Object) bool { return o.ID == id })
}

func (s *Scene) Find(id uuid.UUID) *Object {
	if i := s.IndexOf(id); i >= 0 {
		return s.objects[i]
	}
	return nil
}

// Objects returns a copy of the object list.
func (s *Scene) Objects() []*Object {
	return slices.Clone(s.objects)
}

func (s *Scene) Len() int { return len(s.objects) }
