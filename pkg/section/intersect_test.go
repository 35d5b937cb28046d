package section

import (
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var zUp = Plane{Point: v3.Vec{}, Normal: v3.Vec{Z: 1}}

func TestIntersectCrossingTriangle(t *testing.T) {
	tri := Triangle{{X: 0, Y: 0, Z: -1}, {X: 2, Y: 0, Z: 1}, {X: 0, Y: 2, Z: 1}}
	segs := Intersect(zUp, []Triangle{tri})
	require.Len(t, segs, 1)

	for _, p := range segs[0] {
		assert.InDelta(t, 0, p.Z, 1e-12)
	}
	ends := []v3.Vec{segs[0][0], segs[0][1]}
	assert.Contains(t, ends, v3.Vec{X: 1, Y: 0, Z: 0})
	assert.Contains(t, ends, v3.Vec{X: 0, Y: 1, Z: 0})
}

func TestIntersectUnnormalizedNormal(t *testing.T) {
	tri := Triangle{{X: 0, Y: 0, Z: -1}, {X: 2, Y: 0, Z: 1}, {X: 0, Y: 2, Z: 1}}
	pl := Plane{Normal: v3.Vec{Z: 10}}
	assert.Equal(t, Intersect(zUp, []Triangle{tri}), Intersect(pl, []Triangle{tri}))
}

func TestIntersectSkipsNonCrossing(t *testing.T) {
	tests := []struct {
		name string
		tri  Triangle
	}{
		{"above", Triangle{{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 0, Y: 1, Z: 2}}},
		{"below", Triangle{{X: 0, Y: 0, Z: -1}, {X: 1, Y: 0, Z: -1}, {X: 0, Y: 1, Z: -2}}},
		{"coplanar", Triangle{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}},
		// Only one edge strictly crosses; the on-plane vertex is not counted.
		{"vertex on plane", Triangle{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 1}, {X: 0, Y: 1, Z: -1}}},
		{"edge on plane", Triangle{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, Intersect(zUp, []Triangle{tt.tri}))
		})
	}
}

func TestIntersectCubeSides(t *testing.T) {
	pl := Plane{Point: v3.Vec{X: 0.5, Y: 0.5, Z: 0.5}, Normal: v3.Vec{Z: 1}}
	segs := Intersect(pl.Nudged(1e-4), unitCube())
	// Two triangles on each of the four side faces.
	assert.Len(t, segs, 8)
}
