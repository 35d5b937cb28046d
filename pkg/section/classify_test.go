package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyNested(t *testing.T) {
	big := square(0, 0, 10)
	hole := reversed(square(2, 2, 2))
	pin := square(6, 6, 1)
	apart := square(20, 0, 3)

	outers, holes := Classify([]Ring{pin, hole, apart, big})
	require.Len(t, outers, 2)
	require.Len(t, holes, 2)
	assert.Equal(t, big, outers[0])
	assert.Equal(t, apart, outers[1])
	assert.Equal(t, hole, holes[0])
	assert.Equal(t, pin, holes[1])
}

func TestClassifyIgnoresWinding(t *testing.T) {
	// A hole wound the same way as its outer is still a hole.
	outers, holes := Classify([]Ring{square(1, 1, 1), square(0, 0, 3)})
	assert.Len(t, outers, 1)
	assert.Len(t, holes, 1)
}

func TestClassifyDisjoint(t *testing.T) {
	outers, holes := Classify([]Ring{square(0, 0, 1), square(5, 5, 1), square(-5, 0, 2)})
	assert.Len(t, outers, 3)
	assert.Empty(t, holes)
}

func TestClassifyEmpty(t *testing.T) {
	outers, holes := Classify(nil)
	assert.Empty(t, outers)
	assert.Empty(t, holes)
	assert.Empty(t, BuildPolygons(nil))
}

func TestBuildPolygons(t *testing.T) {
	a := square(0, 0, 10)
	aHole := square(4, 4, 2)
	b := square(20, 0, 6)
	bHole := square(21, 1, 1)
	bHole2 := square(23, 3, 1)

	polys := BuildPolygons([]Ring{bHole2, aHole, b, bHole, a})
	require.Len(t, polys, 2)

	assert.Equal(t, a, polys[0].Outer)
	assert.Equal(t, []Ring{aHole}, polys[0].Holes)

	assert.Equal(t, b, polys[1].Outer)
	assert.ElementsMatch(t, []Ring{bHole, bHole2}, polys[1].Holes)
}

func TestBuildPolygonsHolesDoNotParent(t *testing.T) {
	// The middle ring becomes a hole of the outer one; the inner ring's
	// centroid lies inside both, but a hole cannot parent, so it also
	// attaches to the outer ring.
	outer := square(0, 0, 10)
	middle := square(2, 2, 6)
	inner := square(4, 4, 2)
	polys := BuildPolygons([]Ring{inner, middle, outer})
	require.Len(t, polys, 1)
	assert.Equal(t, []Ring{middle, inner}, polys[0].Holes)
}
