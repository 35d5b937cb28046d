package section

import v3 "github.com/deadsy/sdfx/vec/v3"

// Intersect returns the segments where the triangles cross the plane.
//
// A triangle contributes a segment only when exactly two of its edges
// have endpoints strictly on opposite sides of the plane. Triangles with
// a vertex exactly on the plane, or lying in it, may therefore be
// dropped; Generate nudges the plane to make this rare. Crossings that
// coincide within 1e-6 carry no length and are skipped.
func Intersect(pl Plane, tris []Triangle) []Segment {
	pl = pl.Normalized()

	var segs []Segment
	for _, tri := range tris {
		var d [3]float64
		for i, v := range tri {
			d[i] = pl.Distance(v)
		}

		var hits [3]v3.Vec
		n := 0
		for i := 0; i < 3; i++ {
			j := (i + 1) % 3
			if (d[i] < 0 && d[j] > 0) || (d[i] > 0 && d[j] < 0) {
				t := d[i] / (d[i] - d[j])
				hits[n] = tri[i].Add(tri[j].Sub(tri[i]).MulScalar(t))
				n++
			}
		}
		if n != 2 || near(hits[0], hits[1]) {
			continue
		}
		segs = append(segs, Segment{hits[0], hits[1]})
	}
	return segs
}
