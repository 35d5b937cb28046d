package section

import (
	"github.com/chazu/sectioncap/pkg/kernel"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/lucasb-eyer/go-colorful"
)

// Solid gives read-only access to the triangle soup of one geometry item
// and to a sphere enclosing it.
type Solid interface {
	Triangles() []Triangle
	BoundingSphere() (center v3.Vec, radius float64)
}

// MaterialSolid is a Solid that knows its material color.
type MaterialSolid interface {
	Solid
	MaterialColor() (colorful.Color, bool)
}

// Compile-time interface check.
var _ MaterialSolid = (*MeshSolid)(nil)

// MeshSolid adapts a kernel mesh. The triangle soup is built on first
// use so solids rejected by the bounding-sphere test never pay for it.
type MeshSolid struct {
	mesh   *kernel.Mesh
	tris   []Triangle
	center v3.Vec
	radius float64
}

// FromMesh wraps m as a Solid.
func FromMesh(m *kernel.Mesh) *MeshSolid {
	c, r := m.BoundingSphere()
	return &MeshSolid{
		mesh:   m,
		center: v3.Vec{X: c[0], Y: c[1], Z: c[2]},
		radius: r,
	}
}

// Mesh returns the wrapped mesh.
func (s *MeshSolid) Mesh() *kernel.Mesh {
	return s.mesh
}

// Triangles returns the mesh as a triangle soup.
func (s *MeshSolid) Triangles() []Triangle {
	if s.tris == nil {
		s.tris = make([]Triangle, s.mesh.TriangleCount())
		for i := range s.tris {
			corners := s.mesh.Triangle(i)
			for j, c := range corners {
				s.tris[i][j] = v3.Vec{X: c[0], Y: c[1], Z: c[2]}
			}
		}
	}
	return s.tris
}

// BoundingSphere returns the sphere computed when the mesh was wrapped.
func (s *MeshSolid) BoundingSphere() (v3.Vec, float64) {
	return s.center, s.radius
}

// MaterialColor parses the mesh color, if any.
func (s *MeshSolid) MaterialColor() (colorful.Color, bool) {
	if s.mesh.Color == "" {
		return colorful.Color{}, false
	}
	c, err := colorful.Hex(s.mesh.Color)
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}
