package section

import (
	"testing"

	"github.com/chazu/sectioncap/pkg/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMesh(t *testing.T) {
	m := &kernel.Mesh{
		Vertices: []float32{0, 0, 0, 2, 0, 0, 0, 2, 0, 0, 0, 2},
		Indices:  []uint32{0, 1, 2, 0, 1, 3},
	}
	s := FromMesh(m)
	assert.Same(t, m, s.Mesh())

	c, r := s.BoundingSphere()
	assert.InDelta(t, 1, c.X, 1e-12)
	assert.InDelta(t, 1, c.Y, 1e-12)
	assert.InDelta(t, 1, c.Z, 1e-12)
	assert.InDelta(t, 1.7320508, r, 1e-6)

	tris := s.Triangles()
	require.Len(t, tris, 2)
	assert.InDelta(t, 2, tris[1][2].Z, 1e-12)

	_, ok := s.MaterialColor()
	assert.False(t, ok)
}

func TestMeshSolidMaterialColor(t *testing.T) {
	tests := []struct {
		color string
		ok    bool
	}{
		{"#ff0000", true},
		{"", false},
		{"walnut", false},
	}
	for _, tt := range tests {
		s := FromMesh(&kernel.Mesh{Color: tt.color})
		c, ok := s.MaterialColor()
		assert.Equal(t, tt.ok, ok, tt.color)
		if ok {
			assert.Equal(t, tt.color, c.Hex())
		}
	}
}
