package geom

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Epsilon is the tolerance below which a coordinate difference is treated as
// zero.
const Epsilon = 1e-9

// To compensate for imprecision in floats, equality is tolerance based. If we
// don't account for this, near-collinear sweeps end up keeping absurdly thin
// hull wedges.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Point is a 2D point, doubling as a 2D vector from the origin. It is a small
// value type; copy it freely.
type Point struct {
	X, Y float64
}

func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Eq is the sanctioned equality between points: each axis within Epsilon.
// It is reflexive and symmetric but not transitive, since a chain of
// near-equal points can drift beyond the tolerance end to end. Don't use ==
// (or map keys) where tolerant semantics are expected.
func (p Point) Eq(q Point) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y)
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Div fails for a divisor within Epsilon of zero instead of producing
// Inf/NaN coordinates.
func (p Point) Div(k float64) (Point, error) {
	if Equal(k, 0) {
		return Point{}, errors.Wrap(ErrZeroVector, "divide by near-zero scalar")
	}
	return Point{X: p.X / k, Y: p.Y / k}, nil
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross is the 2D cross product x1*y2 - y1*x2. Its sign gives the turn
// direction from p to q (positive is counter-clockwise) and its magnitude is
// twice the area of the triangle they span.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Dis is the distance from the origin, i.e. the vector magnitude.
func (p Point) Dis() float64 {
	return math.Sqrt(p.Dot(p))
}

func (p Point) SqrDis() float64 {
	return p.Dot(p)
}

// Rot rotates the vector counter-clockwise by theta radians.
func (p Point) Rot(theta float64) Point {
	sin, cos := math.Sincos(theta)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// Rad returns the angle p must rotate counter-clockwise through to line up
// with q, in (-pi, pi].
func (p Point) Rad(q Point) float64 {
	return math.Atan2(p.Cross(q), p.Dot(q))
}

// Normalize returns the unit vector in p's direction. A magnitude within
// Epsilon of zero fails with ErrZeroVector; letting NaN out of here would
// silently corrupt every intersection and turn test downstream.
func (p Point) Normalize() (Point, error) {
	d := p.Dis()
	if Equal(d, 0) {
		return Point{}, errors.Wrap(ErrZeroVector, "normalize")
	}
	return Point{X: p.X / d, Y: p.Y / d}, nil
}

func (p Point) String() string {
	return fmt.Sprintf("(%.5f,%.5f)", p.X, p.Y)
}
