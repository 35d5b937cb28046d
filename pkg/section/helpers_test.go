package section

import (
	"fmt"
	"math"
	"sort"
	"strings"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// soupSolid is a Solid over a literal triangle list that counts how often
// its triangles are requested.
type soupSolid struct {
	tris   []Triangle
	center v3.Vec
	radius float64
	calls  int
}

func newSoupSolid(tris []Triangle) *soupSolid {
	lo, hi := tris[0][0], tris[0][0]
	for _, t := range tris {
		for _, v := range t {
			lo = v3.Vec{X: math.Min(lo.X, v.X), Y: math.Min(lo.Y, v.Y), Z: math.Min(lo.Z, v.Z)}
			hi = v3.Vec{X: math.Max(hi.X, v.X), Y: math.Max(hi.Y, v.Y), Z: math.Max(hi.Z, v.Z)}
		}
	}
	c := lo.Add(hi).MulScalar(0.5)
	var r float64
	for _, t := range tris {
		for _, v := range t {
			r = math.Max(r, v.Sub(c).Length())
		}
	}
	return &soupSolid{tris: tris, center: c, radius: r}
}

func (s *soupSolid) Triangles() []Triangle {
	s.calls++
	return s.tris
}

func (s *soupSolid) BoundingSphere() (v3.Vec, float64) {
	return s.center, s.radius
}

// quad splits the quad abcd into two triangles along the diagonal ac.
func quad(a, b, c, d v3.Vec) []Triangle {
	return []Triangle{{a, b, c}, {a, c, d}}
}

// unitCube returns the 12 triangles of the cube [0,1]^3.
func unitCube() []Triangle {
	p := func(x, y, z float64) v3.Vec { return v3.Vec{X: x, Y: y, Z: z} }
	var tris []Triangle
	tris = append(tris, quad(p(0, 0, 0), p(1, 0, 0), p(1, 1, 0), p(0, 1, 0))...) // bottom
	tris = append(tris, quad(p(0, 0, 1), p(0, 1, 1), p(1, 1, 1), p(1, 0, 1))...) // top
	tris = append(tris, quad(p(0, 0, 0), p(0, 1, 0), p(0, 1, 1), p(0, 0, 1))...) // x=0
	tris = append(tris, quad(p(1, 0, 0), p(1, 0, 1), p(1, 1, 1), p(1, 1, 0))...) // x=1
	tris = append(tris, quad(p(0, 0, 0), p(0, 0, 1), p(1, 0, 1), p(1, 0, 0))...) // y=0
	tris = append(tris, quad(p(0, 1, 0), p(1, 1, 0), p(1, 1, 1), p(0, 1, 1))...) // y=1
	return tris
}

// tube returns a closed hollow cylinder around the Z axis spanning
// z in [-h/2, h/2], faceted with n sides.
func tube(outer, inner, h float64, n int) []Triangle {
	ring := func(r, z float64, i int) v3.Vec {
		a := 2 * math.Pi * float64(i%n) / float64(n)
		return v3.Vec{X: r * math.Cos(a), Y: r * math.Sin(a), Z: z}
	}
	lo, hi := -h/2, h/2
	var tris []Triangle
	for i := 0; i < n; i++ {
		j := i + 1
		tris = append(tris, quad(ring(outer, lo, i), ring(outer, lo, j), ring(outer, hi, j), ring(outer, hi, i))...)
		tris = append(tris, quad(ring(inner, lo, j), ring(inner, lo, i), ring(inner, hi, i), ring(inner, hi, j))...)
		tris = append(tris, quad(ring(inner, hi, i), ring(outer, hi, i), ring(outer, hi, j), ring(inner, hi, j))...)
		tris = append(tris, quad(ring(inner, lo, j), ring(outer, lo, j), ring(outer, lo, i), ring(inner, lo, i))...)
	}
	return tris
}

func vecKey(v v3.Vec) string {
	// Adding zero folds -0 into 0.
	return fmt.Sprintf("%.9f,%.9f,%.9f", v.X+0, v.Y+0, v.Z+0)
}

// triangleSet returns the triangles as sorted canonical strings, each
// independent of corner order.
func triangleSet(tris []Triangle) []string {
	out := make([]string, len(tris))
	for i, t := range tris {
		keys := []string{vecKey(t[0]), vecKey(t[1]), vecKey(t[2])}
		sort.Strings(keys)
		out[i] = strings.Join(keys, "|")
	}
	sort.Strings(out)
	return out
}

// loopSet returns the loops as sorted canonical strings, each
// independent of start point and direction.
func loopSet(loops []Loop) []string {
	out := make([]string, len(loops))
	for i, l := range loops {
		pts := l[:len(l)-1]
		keys := make([]string, len(pts))
		for k, p := range pts {
			keys[k] = vecKey(p)
		}
		best := ""
		for start := range keys {
			for _, dir := range []int{1, -1} {
				var b strings.Builder
				for k := 0; k < len(keys); k++ {
					idx := ((start+dir*k)%len(keys) + len(keys)) % len(keys)
					b.WriteString(keys[idx])
					b.WriteByte(';')
				}
				if s := b.String(); best == "" || s < best {
					best = s
				}
			}
		}
		out[i] = best
	}
	sort.Strings(out)
	return out
}

// distinct counts the distinct points of a closed loop.
func distinct(l Loop) int {
	seen := map[string]bool{}
	for _, p := range l {
		seen[vecKey(p)] = true
	}
	return len(seen)
}
