package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// MeshData is an indexed triangle list. All primitives fit the [-1, 1]
// cube and wind counter-clockwise when viewed from outside.
type MeshData struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	Indices   []uint32
}

func (m *MeshData) add(pos, normal mgl32.Vec3) uint32 {
	m.Positions = append(m.Positions, pos)
	m.Normals = append(m.Normals, normal)
	return uint32(len(m.Positions) - 1)
}

const (
	planeSubdivisions = 10
	roundSegments     = 16
	sphereRings       = 16
	coneRings         = 10
	capsuleRings      = 10
	capsuleHalfLength = 0.5
)

// GenerateMesh builds the mesh for p. Unknown kinds yield a cube.
func GenerateMesh(p Primitive) MeshData {
	switch p {
	case PrimitivePlane:
		return createPlane(2, 2, planeSubdivisions)
	case PrimitiveSphere:
		return createSphere(1, roundSegments, sphereRings)
	case PrimitiveCone:
		return createCone(1, 2, roundSegments, coneRings)
	case PrimitiveCapsule:
		return createCapsule(1-capsuleHalfLength, capsuleHalfLength, roundSegments, capsuleRings)
	default:
		return createCube(1)
	}
}

// createPlane lies in XZ facing +Y.
func createPlane(width, depth float32, subdivisions int) MeshData {
	var m MeshData
	halfW, halfD := width/2, depth/2
	up := mgl32.Vec3{0, 1, 0}

	for z := 0; z <= subdivisions; z++ {
		for x := 0; x <= subdivisions; x++ {
			u := float32(x) / float32(subdivisions)
			v := float32(z) / float32(subdivisions)
			m.add(mgl32.Vec3{-halfW + u*width, 0, -halfD + v*depth}, up)
		}
	}

	for z := 0; z < subdivisions; z++ {
		for x := 0; x < subdivisions; x++ {
			topLeft := uint32(z*(subdivisions+1) + x)
			topRight := topLeft + 1
			bottomLeft := topLeft + uint32(subdivisions+1)
			bottomRight := bottomLeft + 1

			m.Indices = append(m.Indices, topLeft, bottomLeft, topRight)
			m.Indices = append(m.Indices, topRight, bottomLeft, bottomRight)
		}
	}
	return m
}

// createCube has four vertices per face so each face keeps a flat normal.
func createCube(half float32) MeshData {
	var m MeshData
	faces := []struct{ normal, u, v mgl32.Vec3 }{
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
		{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
		{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
	}
	for _, f := range faces {
		center := f.normal.Mul(half)
		u, v := f.u.Mul(half), f.v.Mul(half)
		a := m.add(center.Sub(u).Sub(v), f.normal)
		b := m.add(center.Add(u).Sub(v), f.normal)
		c := m.add(center.Add(u).Add(v), f.normal)
		d := m.add(center.Sub(u).Add(v), f.normal)
		m.Indices = append(m.Indices, a, b, c, a, c, d)
	}
	return m
}

// createSphere is a UV sphere with poles on Y.
func createSphere(radius float32, segments, rings int) MeshData {
	var m MeshData
	for ring := 0; ring <= rings; ring++ {
		phi := float64(ring) * math.Pi / float64(rings)
		sinPhi := float32(math.Sin(phi))
		cosPhi := float32(math.Cos(phi))

		for seg := 0; seg <= segments; seg++ {
			sinTheta, cosTheta := sinCos(seg, segments)
			normal := mgl32.Vec3{sinPhi * cosTheta, cosPhi, sinPhi * sinTheta}
			m.add(normal.Mul(radius), normal)
		}
	}
	stitchRows(&m, 0, rings, segments)
	return m
}

// createCone points its tip at +Y. The side is split into rings so the
// mesh shades evenly; the base is a fan around its own center.
func createCone(radius, height float32, segments, rings int) MeshData {
	var m MeshData
	half := height / 2
	slope := float32(math.Atan2(float64(radius), float64(height)))
	ny := float32(math.Sin(float64(slope)))
	nr := float32(math.Cos(float64(slope)))

	for ring := 0; ring <= rings; ring++ {
		t := float32(ring) / float32(rings)
		r := radius * t
		y := half - height*t
		for seg := 0; seg <= segments; seg++ {
			sinT, cosT := sinCos(seg, segments)
			normal := mgl32.Vec3{cosT * nr, ny, sinT * nr}.Normalize()
			m.add(mgl32.Vec3{cosT * r, y, sinT * r}, normal)
		}
	}
	stitchRows(&m, 0, rings, segments)

	capDisc(&m, radius, -half, segments, mgl32.Vec3{0, -1, 0})
	return m
}

// createCapsule is a cylinder of the given half length capped by two
// hemispheres of radius.
func createCapsule(radius, halfLength float32, segments, hemisphereRings int) MeshData {
	var m MeshData
	rows := 0
	emit := func(phi float64, yOffset float32) {
		sinPhi := float32(math.Sin(phi))
		cosPhi := float32(math.Cos(phi))
		for seg := 0; seg <= segments; seg++ {
			sinT, cosT := sinCos(seg, segments)
			normal := mgl32.Vec3{sinPhi * cosT, cosPhi, sinPhi * sinT}
			m.add(normal.Mul(radius).Add(mgl32.Vec3{0, yOffset, 0}), normal)
		}
		rows++
	}

	for ring := 0; ring <= hemisphereRings; ring++ {
		emit(float64(ring)*math.Pi/2/float64(hemisphereRings), halfLength)
	}
	for ring := 0; ring <= hemisphereRings; ring++ {
		emit(math.Pi/2+float64(ring)*math.Pi/2/float64(hemisphereRings), -halfLength)
	}
	stitchRows(&m, 0, rows-1, segments)
	return m
}

// stitchRows joins consecutive vertex rows of segments+1 vertices into
// quads, starting at base.
func stitchRows(m *MeshData, base uint32, rows, segments int) {
	stride := uint32(segments + 1)
	for row := 0; row < rows; row++ {
		for seg := 0; seg < segments; seg++ {
			current := base + uint32(row)*stride + uint32(seg)
			next := current + stride
			m.Indices = append(m.Indices, current, current+1, next)
			m.Indices = append(m.Indices, current+1, next+1, next)
		}
	}
}

func capDisc(m *MeshData, radius, y float32, segments int, normal mgl32.Vec3) {
	center := m.add(mgl32.Vec3{0, y, 0}, normal)
	first := uint32(len(m.Positions))
	for seg := 0; seg <= segments; seg++ {
		sinT, cosT := sinCos(seg, segments)
		m.add(mgl32.Vec3{cosT * radius, y, sinT * radius}, normal)
	}
	for seg := uint32(0); seg < uint32(segments); seg++ {
		m.Indices = append(m.Indices, center, first+seg, first+seg+1)
	}
}

func sinCos(i, n int) (float32, float32) {
	theta := float64(i) * 2 * math.Pi / float64(n)
	return float32(math.Sin(theta)), float32(math.Cos(theta))
}
