package section

import (
	"math"

	v2 "github.com/deadsy/sdfx/vec/v2"
)

// Ring is a closed 2D polyline, the projection of a Loop: the first
// point equals the last.
type Ring []v2.Vec

// Polygon is an outer ring and the holes cut out of it.
type Polygon struct {
	Outer Ring
	Holes []Ring
}

func near2(a, b v2.Vec) bool {
	return math.Hypot(a.X-b.X, a.Y-b.Y) <= coincidenceEps
}

// open returns the ring's points without the closing repeat.
func (r Ring) open() Ring {
	if len(r) > 1 && near2(r[0], r[len(r)-1]) {
		return r[:len(r)-1]
	}
	return r
}

// SignedArea returns the shoelace area: positive for counter-clockwise
// rings.
func (r Ring) SignedArea() float64 {
	var sum float64
	n := len(r)
	for i := 0; i < n; i++ {
		a, b := r[i], r[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// Centroid returns the arithmetic mean of the ring's distinct vertices.
func (r Ring) Centroid() v2.Vec {
	pts := r.open()
	if len(pts) == 0 {
		return v2.Vec{}
	}
	var c v2.Vec
	for _, p := range pts {
		c.X += p.X
		c.Y += p.Y
	}
	c.X /= float64(len(pts))
	c.Y /= float64(len(pts))
	return c
}

// Contains reports whether p lies inside the ring by the even-odd rule,
// counting crossings of a ray towards +X.
func (r Ring) Contains(p v2.Vec) bool {
	inside := false
	n := len(r)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := r[i], r[j]
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}
		dy := b.Y - a.Y
		if math.Abs(dy) < pipDivisionGuard {
			dy = math.Copysign(pipDivisionGuard, dy)
		}
		x := (b.X-a.X)*(p.Y-a.Y)/dy + a.X
		if p.X < x {
			inside = !inside
		}
	}
	return inside
}

// Clean removes repeated vertices and vertices lying on the chord of
// their neighbours, both within 1e-6. It returns nil when fewer than
// three distinct vertices remain. The result is closed.
func (r Ring) Clean() Ring {
	pts := append(Ring(nil), r.open()...)
	for changed := true; changed && len(pts) >= 3; {
		changed = false
		for i := 0; i < len(pts) && len(pts) >= 3; {
			a := pts[(i+len(pts)-1)%len(pts)]
			b := pts[i]
			c := pts[(i+1)%len(pts)]
			if near2(a, b) || onChord(a, b, c) {
				pts = append(pts[:i], pts[i+1:]...)
				changed = true
				continue
			}
			i++
		}
	}
	if len(pts) < 3 {
		return nil
	}
	return append(pts, pts[0])
}

// onChord reports whether b lies within coincidenceEps of the line ac.
// A b that doubles back onto a is a zero-width spike and also qualifies.
func onChord(a, b, c v2.Vec) bool {
	ac := math.Hypot(c.X-a.X, c.Y-a.Y)
	if ac <= coincidenceEps {
		return true
	}
	cross := (c.X-a.X)*(b.Y-a.Y) - (c.Y-a.Y)*(b.X-a.X)
	return math.Abs(cross)/ac <= coincidenceEps
}
