package section

import (
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemUpdateCapReplaces(t *testing.T) {
	it := NewItem("body", newSoupSolid(unitCube()))
	assert.True(t, it.Cap().IsEmpty())

	mid := Plane{Point: v3.Vec{Z: 0.5}, Normal: v3.Vec{Z: 1}}
	first := it.UpdateCap(mid, DefaultStyle())
	require.NotNil(t, first.Fill)
	assert.Equal(t, uint64(1), it.Generation)
	assert.Equal(t, "body", it.Fill.Mesh.PartName)
	assert.Same(t, first.Fill, it.Fill)
	assert.Same(t, first.Outline, it.Outline)

	second := it.UpdateCap(Plane{Point: v3.Vec{Z: 0.25}, Normal: v3.Vec{Z: 1}}, DefaultStyle())
	require.NotNil(t, second.Fill)
	assert.Equal(t, uint64(2), it.Generation)
	assert.NotSame(t, first.Fill, it.Fill)
	assert.NotSame(t, first.Outline, it.Outline)
	assert.Len(t, it.Outline.Loops, 1)

	// Moving the plane off the solid leaves nothing behind.
	it.UpdateCap(Plane{Point: v3.Vec{Z: 9}, Normal: v3.Vec{Z: 1}}, DefaultStyle())
	assert.Equal(t, uint64(3), it.Generation)
	assert.Nil(t, it.Fill)
	assert.Nil(t, it.Outline)
}

func TestItemStyleChange(t *testing.T) {
	it := NewItem("body", newSoupSolid(unitCube()))
	mid := Plane{Point: v3.Vec{Z: 0.5}, Normal: v3.Vec{Z: 1}}
	it.UpdateCap(mid, DefaultStyle())
	require.NotNil(t, it.Fill)

	st := DefaultStyle()
	st.SolidFill = false
	it.UpdateCap(mid, st)
	assert.Nil(t, it.Fill)
	assert.NotNil(t, it.Outline)
}

func TestItemClearCap(t *testing.T) {
	it := NewItem("body", newSoupSolid(unitCube()))
	it.UpdateCap(Plane{Point: v3.Vec{Z: 0.5}, Normal: v3.Vec{Z: 1}}, DefaultStyle())
	it.ClearCap()
	assert.True(t, it.Cap().IsEmpty())
	assert.Equal(t, uint64(2), it.Generation)
}
