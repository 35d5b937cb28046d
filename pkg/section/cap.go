package section

import (
	"log/slog"
	"math"
)

// Cap is the result of slicing one solid: the fill (nil when solid fill
// is off or nothing was triangulated) and the outline (nil when the
// plane misses the solid).
type Cap struct {
	Fill    *Fill
	Outline *Outline
}

// IsEmpty reports whether the cap carries neither artifact.
func (c Cap) IsEmpty() bool {
	return c.Fill == nil && c.Outline == nil
}

// Generate slices solid with pl and builds the cap artifacts.
//
// toleranceRadius is normally the solid's bounding radius; it sizes the
// plane nudge (toleranceRadius * 1e-4 along the normal) and the texture
// tiling frequency. A plane farther from the bounding sphere's center
// than its radius yields an empty Cap without touching the triangles.
// Generate never fails: degenerate geometry just yields less output.
func Generate(pl Plane, solid Solid, toleranceRadius float64, style Style) Cap {
	log := Logger()
	if !pl.Valid() {
		log.Debug("section: plane has no normal direction")
		return Cap{}
	}
	pl = pl.Normalized()

	center, radius := solid.BoundingSphere()
	if d := math.Abs(pl.Distance(center)); d > radius {
		log.Debug("section: plane misses bounding sphere", slog.Float64("distance", d), slog.Float64("radius", radius))
		return Cap{}
	}

	eff := pl.Nudged(toleranceRadius * planeNudge)
	segs := Intersect(eff, solid.Triangles())
	loops := AssembleLoops(segs)
	log.Debug("section: intersected", slog.Int("segments", len(segs)), slog.Int("loops", len(loops)))
	if len(loops) == 0 {
		return Cap{}
	}

	c := Cap{Outline: BuildOutline(loops, style.OutlineColor, style.OutlineWidth)}
	if !style.SolidFill {
		return c
	}

	basis := NewBasis(eff)
	rings := make([]Ring, 0, len(loops))
	for _, l := range loops {
		if r := basis.ProjectLoop(l).Clean(); r != nil {
			rings = append(rings, r)
		}
	}

	polys := BuildPolygons(rings)
	parts := make([]Triangulation, 0, len(polys))
	for i, p := range polys {
		tr, err := Triangulate(p)
		if err != nil {
			log.Warn("section: skipping polygon", slog.Int("polygon", i), slog.Any("error", err))
			continue
		}
		parts = append(parts, tr)
	}

	fill := BuildFill(eff, basis, parts, style.fillColorFor(solid), TileFrequency(toleranceRadius), style.Tiled)
	log.Debug("section: filled", slog.Int("rings", len(rings)), slog.Int("polygons", len(polys)), slog.Int("triangles", fill.TriangleCount()))
	if fill.TriangleCount() > 0 {
		c.Fill = fill
	}
	return c
}
