package section

import (
	"fmt"

	v2 "github.com/deadsy/sdfx/vec/v2"
	"github.com/rclancey/earcut"
)

// Triangulation is a polygon broken into triangles. Indices refer to
// Points, which hold the outer ring followed by each hole in order,
// closure points omitted.
type Triangulation struct {
	Points  []v2.Vec
	Indices [][3]int
}

// Triangulate ear-clips a polygon with holes. Ring winding is left as
// produced by projection; earcut orients rings itself.
func Triangulate(poly Polygon) (Triangulation, error) {
	var (
		pts      []v2.Vec
		holeIdxs []int
	)
	pts = append(pts, poly.Outer.open()...)
	for _, h := range poly.Holes {
		holeIdxs = append(holeIdxs, len(pts))
		pts = append(pts, h.open()...)
	}
	if len(poly.Outer.open()) < 3 {
		return Triangulation{}, fmt.Errorf("section: degenerate outer ring (%d vertices < 3)", len(poly.Outer.open()))
	}

	coords := make([]float64, 0, 2*len(pts))
	for _, p := range pts {
		coords = append(coords, p.X, p.Y)
	}

	idx, err := earcut.Earcut(coords, holeIdxs, 2)
	if err != nil {
		return Triangulation{}, fmt.Errorf("section: earcut failed for %d-vertex polygon: %w", len(pts), err)
	}
	if len(idx)%3 != 0 {
		return Triangulation{}, fmt.Errorf("section: earcut returned %d indices, not divisible by 3", len(idx))
	}

	tris := make([][3]int, 0, len(idx)/3)
	for i := 0; i < len(idx); i += 3 {
		tris = append(tris, [3]int{idx[i], idx[i+1], idx[i+2]})
	}
	return Triangulation{Points: pts, Indices: tris}, nil
}
