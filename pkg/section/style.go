package section

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// FillSource selects where the fill color of a cap comes from.
type FillSource int

const (
	FillExplicit     FillSource = iota // Style.FillColor
	FillFromMaterial                   // the solid's material color
)

func (s FillSource) String() string {
	switch s {
	case FillExplicit:
		return "explicit"
	case FillFromMaterial:
		return "material"
	default:
		return fmt.Sprintf("FillSource(%d)", int(s))
	}
}

// ParseFillSource converts "explicit" or "material" to a FillSource.
func ParseFillSource(s string) (FillSource, error) {
	switch s {
	case "explicit":
		return FillExplicit, nil
	case "material":
		return FillFromMaterial, nil
	}
	return 0, fmt.Errorf("invalid fill source %q, expected explicit or material", s)
}

// Style holds the presentation settings for caps. It is passed by value
// and never read from shared state.
type Style struct {
	SolidFill    bool           // produce the fill artifact
	FillSource   FillSource     // where the fill color comes from
	FillColor    colorful.Color // explicit fill, also the fallback
	OutlineColor colorful.Color
	OutlineWidth float64
	Tiled        bool // request the tiled stripe texture on the fill
}

// DefaultStyle returns a grey material-derived fill with a black outline.
func DefaultStyle() Style {
	return Style{
		SolidFill:    true,
		FillSource:   FillFromMaterial,
		FillColor:    colorful.Color{R: 0.6, G: 0.6, B: 0.6},
		OutlineColor: colorful.Color{R: 0, G: 0, B: 0},
		OutlineWidth: 2,
		Tiled:        false,
	}
}

// fillColorFor resolves the fill color for a solid. Solids without a
// material color fall back to FillColor.
func (st Style) fillColorFor(s Solid) colorful.Color {
	if st.FillSource != FillFromMaterial {
		return st.FillColor
	}
	if ms, ok := s.(MaterialSolid); ok {
		if c, ok := ms.MaterialColor(); ok {
			return c
		}
	}
	return st.FillColor
}
