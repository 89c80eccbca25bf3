// Package model holds the indexed triangle mesh the pipeline draws and a
// parser for the Wavefront OBJ subset it accepts.
package model

import (
	"github.com/glrast/swgl/pkg/math3d"
)

// Face is one triangle's indices into Model's three attribute arrays.
// An index of -1 means the attribute was not supplied for that face (for
// example a face written as "f 1 2 3" has no UV or normal indices).
type Face struct {
	Position [3]int
	UV       [3]int
	Normal   [3]int
}

// Model is an indexed triangle mesh: flat attribute arrays plus one Face
// per triangle holding three parallel index triples, one per attribute
// kind, rather than a single vertex index shared across all attributes —
// this is what lets an OBJ file reuse a position with different UVs or
// normals on different faces.
type Model struct {
	Positions []math3d.Vec3
	UVs       []math3d.Vec2
	Normals   []math3d.Vec3
	Faces     []Face
}

// NFaces returns the number of triangles in the model.
func (m *Model) NFaces() int {
	return len(m.Faces)
}

// Position returns the i-th vertex position of face f (i in [0,3)).
func (m *Model) Position(f, i int) math3d.Vec3 {
	return m.Positions[m.Faces[f].Position[i]]
}

// UV returns the i-th vertex UV of face f, or the zero vector if the face
// has no UV indices.
func (m *Model) UV(f, i int) math3d.Vec2 {
	idx := m.Faces[f].UV[i]
	if idx < 0 {
		return math3d.Vec2{}
	}
	return m.UVs[idx]
}

// Normal returns the i-th vertex normal of face f, or the zero vector if
// the face has no normal indices.
func (m *Model) Normal(f, i int) math3d.Vec3 {
	idx := m.Faces[f].Normal[i]
	if idx < 0 {
		return math3d.Vec3{}
	}
	return m.Normals[idx]
}

// Bounds returns the axis-aligned bounding box of every position in the
// model. An empty model returns the zero box.
func (m *Model) Bounds() (min, max math3d.Vec3) {
	if len(m.Positions) == 0 {
		return math3d.Vec3{}, math3d.Vec3{}
	}
	min, max = m.Positions[0], m.Positions[0]
	for _, p := range m.Positions[1:] {
		min = min.Min(p)
		max = max.Max(p)
	}
	return min, max
}

// CalculateNormals overwrites Normals with one flat (per-face) normal,
// repeated at its three vertices, discarding any normals the file carried.
func (m *Model) CalculateNormals() {
	normals := make([]math3d.Vec3, 0, len(m.Faces)*3)
	for fi, f := range m.Faces {
		p0 := m.Positions[f.Position[0]]
		p1 := m.Positions[f.Position[1]]
		p2 := m.Positions[f.Position[2]]
		n := p1.Sub(p0).Cross(p2.Sub(p0))
		n.Normalize()

		idx := len(normals)
		normals = append(normals, n, n, n)
		m.Faces[fi].Normal = [3]int{idx, idx + 1, idx + 2}
	}
	m.Normals = normals
}
