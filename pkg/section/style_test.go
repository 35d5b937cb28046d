package section

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFillSource(t *testing.T) {
	for _, s := range []FillSource{FillExplicit, FillFromMaterial} {
		got, err := ParseFillSource(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := ParseFillSource("hatched")
	assert.Error(t, err)
	assert.Equal(t, "FillSource(9)", FillSource(9).String())
}

func TestDefaultStyle(t *testing.T) {
	st := DefaultStyle()
	assert.True(t, st.SolidFill)
	assert.Equal(t, FillFromMaterial, st.FillSource)
	assert.False(t, st.Tiled)
	assert.Positive(t, st.OutlineWidth)
}

type colorSoup struct {
	*soupSolid
	color colorful.Color
	ok    bool
}

func (c colorSoup) MaterialColor() (colorful.Color, bool) { return c.color, c.ok }

func TestFillColorFor(t *testing.T) {
	blue := colorful.Color{B: 1}
	grey := colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	plain := newSoupSolid(unitCube())
	tinted := colorSoup{soupSolid: plain, color: blue, ok: true}
	untinted := colorSoup{soupSolid: plain}

	st := Style{FillSource: FillFromMaterial, FillColor: grey}
	assert.Equal(t, blue, st.fillColorFor(tinted))
	assert.Equal(t, grey, st.fillColorFor(untinted))
	assert.Equal(t, grey, st.fillColorFor(plain))

	st.FillSource = FillExplicit
	assert.Equal(t, grey, st.fillColorFor(tinted))
}
