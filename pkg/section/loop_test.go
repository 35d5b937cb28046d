package section

import (
	"math"
	"math/rand"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func polygonSegments(n int, radius float64) []Segment {
	pts := make([]v3.Vec, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = v3.Vec{X: radius * math.Cos(a), Y: radius * math.Sin(a), Z: 0.25}
	}
	segs := make([]Segment, n)
	for i := range segs {
		segs[i] = Segment{pts[i], pts[(i+1)%n]}
	}
	return segs
}

func TestAssembleLoopsOrderIndependent(t *testing.T) {
	const n = 12
	base := polygonSegments(n, 3)
	want := loopSet(AssembleLoops(base))
	require.Len(t, want, 1)

	for seed := int64(1); seed <= 25; seed++ {
		rng := rand.New(rand.NewSource(seed))
		segs := make([]Segment, n)
		copy(segs, base)
		rng.Shuffle(n, func(i, j int) { segs[i], segs[j] = segs[j], segs[i] })
		for i := range segs {
			if rng.Intn(2) == 0 {
				segs[i][0], segs[i][1] = segs[i][1], segs[i][0]
			}
		}

		loops := AssembleLoops(segs)
		require.Len(t, loops, 1, "seed %d", seed)
		l := loops[0]
		assert.Len(t, l, n+1, "seed %d", seed)
		assert.Equal(t, l[0], l[len(l)-1], "seed %d: loop not closed", seed)
		assert.Equal(t, n, distinct(l), "seed %d", seed)
		assert.Equal(t, want, loopSet(loops), "seed %d", seed)
	}
}

func TestAssembleLoopsToleratesJitter(t *testing.T) {
	segs := polygonSegments(6, 1)
	segs[2][0] = segs[2][0].Add(v3.Vec{X: 1e-8})
	loops := AssembleLoops(segs)
	require.Len(t, loops, 1)
	assert.Len(t, loops[0], 7)
}

func TestAssembleLoopsSeparateLoops(t *testing.T) {
	a := polygonSegments(5, 1)
	b := polygonSegments(7, 4)
	segs := append(append([]Segment{}, b...), a...)
	loops := AssembleLoops(segs)
	require.Len(t, loops, 2)
	lens := []int{len(loops[0]), len(loops[1])}
	assert.ElementsMatch(t, []int{6, 8}, lens)
}

func TestAssembleLoopsForceClosesOpenChain(t *testing.T) {
	p := func(x, y float64) v3.Vec { return v3.Vec{X: x, Y: y} }
	segs := []Segment{{p(0, 0), p(1, 0)}, {p(1, 0), p(1, 1)}, {p(1, 1), p(0, 1)}}
	loops := AssembleLoops(segs)
	require.Len(t, loops, 1)
	l := loops[0]
	assert.Len(t, l, 5)
	assert.Equal(t, l[0], l[len(l)-1])
}

func TestAssembleLoopsDropsDegenerate(t *testing.T) {
	p := func(x float64) v3.Vec { return v3.Vec{X: x} }
	tests := []struct {
		name string
		segs []Segment
	}{
		{"empty", nil},
		{"single segment", []Segment{{p(0), p(1)}}},
		{"zero length", []Segment{{p(2), p(2)}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, AssembleLoops(tt.segs))
		})
	}
}

func TestAssembleLoopsDoesNotMutateInput(t *testing.T) {
	segs := polygonSegments(4, 1)
	orig := append([]Segment{}, segs...)
	AssembleLoops(segs)
	assert.Equal(t, orig, segs)
}
