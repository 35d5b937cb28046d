// Package section computes cross-section caps: where a cutting plane
// slices a triangulated solid, it produces the filled polygon(s) of the
// cut and the outline polylines that bound it.
//
// The pipeline run by [Generate] is
//
//	bounding-sphere test -> Intersect -> AssembleLoops -> outline
//	                     -> NewBasis/ProjectLoop -> BuildPolygons
//	                     -> Triangulate -> BuildFill
//
// Every stage is a plain function over value types. Nothing is retained
// between calls; each call produces fresh artifacts which replace the
// previous ones held by an [Item].
package section
