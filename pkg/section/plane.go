package section

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

const (
	// coincidenceEps decides point equality for loop stitching, closure
	// and collinearity.
	coincidenceEps = 1e-6

	// pipDivisionGuard bounds the edge height divided by in the
	// point-in-polygon crossing test.
	pipDivisionGuard = 1e-12

	// planeNudge scales the tolerance radius into the offset applied to
	// the plane point before intersecting.
	planeNudge = 1e-4
)

// Triangle is three corner positions, used both for input soups and for
// output fill triangles.
type Triangle [3]v3.Vec

// Segment is one piece of the cut curve contributed by a single triangle.
// Its endpoints are unordered.
type Segment [2]v3.Vec

// Loop is a closed 3D polyline: the first point equals the last.
type Loop []v3.Vec

// Plane is a cutting plane given by a point on it and a normal.
// The normal need not be unit length.
type Plane struct {
	Point  v3.Vec `json:"point"`
	Normal v3.Vec `json:"normal"`
}

// Valid reports whether the normal has a usable direction.
func (p Plane) Valid() bool {
	l := p.Normal.Length()
	return l > 0 && !math.IsNaN(l) && !math.IsInf(l, 0)
}

// Normalized returns the plane with a unit normal.
func (p Plane) Normalized() Plane {
	return Plane{Point: p.Point, Normal: p.Normal.Normalize()}
}

// Distance returns the signed distance of q from the plane, measured
// along the plane's normal. The plane must be normalized.
func (p Plane) Distance(q v3.Vec) float64 {
	return q.Sub(p.Point).Dot(p.Normal)
}

// Nudged returns the plane with its point moved by offset along the normal.
func (p Plane) Nudged(offset float64) Plane {
	return Plane{Point: p.Point.Add(p.Normal.MulScalar(offset)), Normal: p.Normal}
}

// near reports whether a and b coincide within coincidenceEps.
func near(a, b v3.Vec) bool {
	return a.Sub(b).Length() <= coincidenceEps
}
