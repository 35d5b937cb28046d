// Package scene defines the scene description produced by evaluating a
// script: an immutable DAG of primitive solids, placements and groups,
// plus the plane the scene is cut with.
package scene
