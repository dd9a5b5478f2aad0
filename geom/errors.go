package geom

import "github.com/pkg/errors"

// Failures come in two families. Absence errors report degenerate input for
// which the queried result simply does not exist; callers should expect and
// handle them on ordinary input. Misuse errors report operations on geometry
// that is invalid for them, such as projecting onto a zero-length line or
// normalizing a near-zero vector. Unguarded, those would leak NaN into later
// turn tests. Discriminate with errors.Is.
var (
	ErrNoIntersection = errors.New("geom: no intersection")
	ErrNoTangent      = errors.New("geom: no tangent")
	ErrCollinear      = errors.New("geom: points are collinear")

	ErrDegenerateLine = errors.New("geom: line endpoints within tolerance of each other")
	ErrZeroVector     = errors.New("geom: vector magnitude within tolerance of zero")

	ErrInsufficientPoints = errors.New("geom: not enough points")
)
