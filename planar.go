// A small planar geometry kernel for Go.
//
// This package re-exports the geom subpackage: an epsilon-tolerant 2D vector
// algebra, infinite-line and circle intersection queries, and convex hulls
// built by monotone chain. Everything is a pure function over small value
// types, so concurrent use needs no synchronization.
package planar

import "github.com/muskox/planar/geom"

// Epsilon is the tolerance below which a coordinate difference is treated as
// zero.
const Epsilon = geom.Epsilon

type Point = geom.Point
type Line = geom.Line
type Circle = geom.Circle
type ConvexHull = geom.ConvexHull

// ErrInsufficientPoints is returned by Hull for an empty input.
var ErrInsufficientPoints = geom.ErrInsufficientPoints

// Hull computes the convex hull of the given points.
//
// Degenerate input is allowed: a single distinct point yields a one-vertex
// hull and two distinct points yield the segment between them. Only an empty
// input fails, with geom.ErrInsufficientPoints.
func Hull(points ...Point) (ConvexHull, error) {
	return geom.Hull(points)
}
