package section

import (
	"math"

	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// upSwitch is the |normal.Z| above which world X replaces world Z as the
// reference direction, keeping the cross product well conditioned.
const upSwitch = 0.99

// Basis is an orthonormal 2D frame embedded in a plane. All rings of one
// plane must be projected with the same Basis so their relative
// orientation and nesting survive.
type Basis struct {
	Origin v3.Vec
	Normal v3.Vec
	U, V   v3.Vec
}

// NewBasis builds the projection frame for a plane.
func NewBasis(pl Plane) Basis {
	n := pl.Normal.Normalize()
	up := v3.Vec{X: 0, Y: 0, Z: 1}
	if math.Abs(n.Z) >= upSwitch {
		up = v3.Vec{X: 1, Y: 0, Z: 0}
	}
	u := n.Cross(up).Normalize()
	v := n.Cross(u).Normalize()
	return Basis{Origin: pl.Point, Normal: n, U: u, V: v}
}

// Project maps p to plane coordinates.
func (b Basis) Project(p v3.Vec) v2.Vec {
	d := p.Sub(b.Origin)
	return v2.Vec{X: d.Dot(b.U), Y: d.Dot(b.V)}
}

// Unproject maps plane coordinates back onto the plane in 3D.
func (b Basis) Unproject(q v2.Vec) v3.Vec {
	return b.Origin.Add(b.U.MulScalar(q.X)).Add(b.V.MulScalar(q.Y))
}

// ProjectLoop projects every point of l, keeping the closure point.
func (b Basis) ProjectLoop(l Loop) Ring {
	r := make(Ring, len(l))
	for i, p := range l {
		r[i] = b.Project(p)
	}
	return r
}
