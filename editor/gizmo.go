package editor

import (
	"github.com/go-gl/mathgl/mgl32"

	"venom-editor/scene"
)

type GizmoOperation int

const (
	OpTranslate GizmoOperation = iota
	OpRotate
	OpScale
)

func (o GizmoOperation) String() string {
	switch o {
	case OpTranslate:
		return "Translate"
	case OpRotate:
		return "Rotate"
	case OpScale:
		return "Scale"
	}
	return "Unknown"
}

type GizmoMode int

const (
	ModeLocal GizmoMode = iota
	ModeWorld
)

func (m GizmoMode) String() string {
	if m == ModeWorld {
		return "World"
	}
	return "Local"
}

// Nudge steps applied per key press.
const (
	TranslateStep = 0.1
	RotateStep    = 15 // degrees
	ScaleStep     = 1.1
)

// Gizmo is the active transform tool. The editor starts in rotate/local.
type Gizmo struct {
	Operation GizmoOperation
	Mode      GizmoMode
}

// EffectiveMode is Mode, except that scaling always happens in local space.
func (g Gizmo) EffectiveMode() GizmoMode {
	if g.Operation == OpScale {
		return ModeLocal
	}
	return g.Mode
}

func (g *Gizmo) ToggleMode() {
	if g.Mode == ModeLocal {
		g.Mode = ModeWorld
	} else {
		g.Mode = ModeLocal
	}
}

// Apply returns t nudged one step along axis (a unit basis vector). sign
// is +1 or -1.
func (g Gizmo) Apply(t scene.Transform, axis mgl32.Vec3, sign float32) scene.Transform {
	local := g.EffectiveMode() == ModeLocal
	switch g.Operation {
	case OpTranslate:
		dir := axis
		if local {
			dir = t.Rotation.Rotate(axis)
		}
		t.Position = t.Position.Add(dir.Mul(sign * TranslateStep))
	case OpRotate:
		r := mgl32.QuatRotate(sign*mgl32.DegToRad(RotateStep), axis)
		if local {
			t.Rotation = t.Rotation.Mul(r).Normalize()
		} else {
			t.Rotation = r.Mul(t.Rotation).Normalize()
		}
	case OpScale:
		factor := float32(ScaleStep)
		if sign < 0 {
			factor = 1 / factor
		}
		for i := range 3 {
			if axis[i] != 0 {
				t.Scale[i] *= factor
			}
		}
	}
	return t
}
