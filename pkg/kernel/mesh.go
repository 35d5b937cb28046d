package kernel

import "math"

// Mesh is a triangle mesh suitable for rendering.
// All arrays are flat: vertices has 3 floats per vertex (x,y,z),
// normals has 3 floats per vertex, texcoords has 2 floats per vertex
// when present, indices has 3 uint32s per triangle.
type Mesh struct {
	Vertices  []float32 `json:"vertices"`            // [x0,y0,z0, x1,y1,z1, ...]
	Normals   []float32 `json:"normals"`             // [nx0,ny0,nz0, ...]
	TexCoords []float32 `json:"texCoords,omitempty"` // [u0,v0, u1,v1, ...]
	Indices   []uint32  `json:"indices"`             // [i0,i1,i2, ...] triangles
	PartName  string    `json:"partName"`            // which scene part this came from
	Color     string    `json:"color,omitempty"`     // material color, "#rrggbb"
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Vertex returns vertex i widened to float64.
func (m *Mesh) Vertex(i int) [3]float64 {
	return [3]float64{
		float64(m.Vertices[3*i]),
		float64(m.Vertices[3*i+1]),
		float64(m.Vertices[3*i+2]),
	}
}

// Triangle returns the three corner positions of triangle t.
func (m *Mesh) Triangle(t int) [3][3]float64 {
	return [3][3]float64{
		m.Vertex(int(m.Indices[3*t])),
		m.Vertex(int(m.Indices[3*t+1])),
		m.Vertex(int(m.Indices[3*t+2])),
	}
}

// BoundingSphere returns an enclosing sphere: the center of the
// axis-aligned bounds and the distance to the farthest vertex.
// An empty mesh yields a zero sphere.
func (m *Mesh) BoundingSphere() (center [3]float64, radius float64) {
	n := m.VertexCount()
	if n == 0 {
		return center, 0
	}
	lo := m.Vertex(0)
	hi := lo
	for i := 1; i < n; i++ {
		v := m.Vertex(i)
		for k := 0; k < 3; k++ {
			lo[k] = math.Min(lo[k], v[k])
			hi[k] = math.Max(hi[k], v[k])
		}
	}
	for k := 0; k < 3; k++ {
		center[k] = (lo[k] + hi[k]) / 2
	}
	for i := 0; i < n; i++ {
		v := m.Vertex(i)
		dx, dy, dz := v[0]-center[0], v[1]-center[1], v[2]-center[2]
		radius = math.Max(radius, math.Sqrt(dx*dx+dy*dy+dz*dz))
	}
	return center, radius
}
