package section

import (
	"math"

	"github.com/chazu/sectioncap/pkg/kernel"
	v2 "github.com/deadsy/sdfx/vec/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// tileScale is the number of texture cycles per unit of tolerance radius.
const tileScale = 1.5

// TileFrequency converts plane distance into texture cycles so that
// stripe density does not depend on the size of the solid.
func TileFrequency(toleranceRadius float64) float64 {
	return tileScale / math.Max(toleranceRadius, 1.0)
}

// Fill is the filled cross-section.
type Fill struct {
	Triangles []Triangle
	TexCoords [][3]v2.Vec
	// Mesh holds the same triangles as flat render buffers: unshared
	// vertices, normals all equal to the plane normal, texcoords.
	Mesh  *kernel.Mesh
	Color colorful.Color
	Tiled bool
}

// TriangleCount returns the number of fill triangles.
func (f *Fill) TriangleCount() int {
	if f == nil {
		return 0
	}
	return len(f.Triangles)
}

// Outline is the set of closed polylines bounding the cross-section.
type Outline struct {
	Loops []Loop
	// Lines holds one vertex pair per consecutive loop point pair,
	// 6 floats per line segment.
	Lines []float32
	Width float64
	Color colorful.Color
}

// SegmentCount returns the number of line segments in Lines.
func (o *Outline) SegmentCount() int {
	if o == nil {
		return 0
	}
	return len(o.Lines) / 6
}

// BuildFill back-projects triangulated polygons onto the plane. The
// plane and basis must be the ones the rings were projected with.
// Texture coordinates are the plane coordinates of each vertex relative
// to the plane point, scaled by freq.
func BuildFill(pl Plane, b Basis, parts []Triangulation, color colorful.Color, freq float64, tiled bool) *Fill {
	n := pl.Normal.Normalize()
	nx, ny, nz := float32(n.X), float32(n.Y), float32(n.Z)

	f := &Fill{
		Mesh:  &kernel.Mesh{Color: color.Hex()},
		Color: color,
		Tiled: tiled,
	}
	for _, part := range parts {
		for _, idx := range part.Indices {
			var tri Triangle
			var uvs [3]v2.Vec
			for k, i := range idx {
				p := b.Unproject(part.Points[i])
				d := p.Sub(pl.Point)
				tri[k] = p
				uvs[k] = v2.Vec{X: d.Dot(b.U) * freq, Y: d.Dot(b.V) * freq}

				f.Mesh.Indices = append(f.Mesh.Indices, uint32(len(f.Mesh.Vertices)/3))
				f.Mesh.Vertices = append(f.Mesh.Vertices, float32(p.X), float32(p.Y), float32(p.Z))
				f.Mesh.Normals = append(f.Mesh.Normals, nx, ny, nz)
				f.Mesh.TexCoords = append(f.Mesh.TexCoords, float32(uvs[k].X), float32(uvs[k].Y))
			}
			f.Triangles = append(f.Triangles, tri)
			f.TexCoords = append(f.TexCoords, uvs)
		}
	}
	return f
}

// BuildOutline wraps the 3D loops as they came out of AssembleLoops, so
// the drawn outline follows the true cut curve regardless of how the
// fill was triangulated.
func BuildOutline(loops []Loop, color colorful.Color, width float64) *Outline {
	o := &Outline{Loops: loops, Width: width, Color: color}
	for _, l := range loops {
		for i := 0; i+1 < len(l); i++ {
			a, b := l[i], l[i+1]
			o.Lines = append(o.Lines,
				float32(a.X), float32(a.Y), float32(a.Z),
				float32(b.X), float32(b.Y), float32(b.Z))
		}
	}
	return o
}
