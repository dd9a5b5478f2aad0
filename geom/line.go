package geom

import (
	"fmt"

	"github.com/pkg/errors"
)

// Line is a directed pair of endpoints. Valid treats it as a segment (the
// endpoints must be farther than Epsilon apart); Proj and Inter treat it as
// the infinite line through A and B. There is no separate ray or
// infinite-line type, so callers must know which semantics an operation uses.
type Line struct {
	A, B Point
}

func NewLine(a, b Point) Line {
	return Line{A: a, B: b}
}

// Valid reports whether the endpoints are far enough apart to define a
// direction.
func (l Line) Valid() bool {
	return !Equal(l.Vec().Dis(), 0)
}

// Vec is the direction vector B - A.
func (l Line) Vec() Point {
	return l.B.Sub(l.A)
}

func (l Line) Len() float64 {
	return l.Vec().Dis()
}

func (l Line) SqrLen() float64 {
	return l.Vec().SqrDis()
}

// Proj returns the orthogonal projection of p onto the infinite line through
// A and B. A degenerate line has no direction to project onto and fails with
// ErrDegenerateLine.
func (l Line) Proj(p Point) (Point, error) {
	if !l.Valid() {
		return Point{}, errors.Wrap(ErrDegenerateLine, "project onto line")
	}
	v := l.Vec()
	return l.A.Add(v.Scale(p.Sub(l.A).Dot(v) / l.SqrLen())), nil
}

// Inter returns the intersection of two infinite lines by the signed-area
// ratio method. When the direction vectors' cross product is within Epsilon
// of zero it fails with ErrNoIntersection; that covers parallel-distinct and
// coincident lines identically, since the test cannot tell them apart.
// Either line being degenerate fails with ErrDegenerateLine.
func (l Line) Inter(m Line) (Point, error) {
	if !l.Valid() || !m.Valid() {
		return Point{}, errors.Wrap(ErrDegenerateLine, "intersect lines")
	}
	if Equal(l.Vec().Cross(m.Vec()), 0) {
		return Point{}, ErrNoIntersection
	}
	s1 := m.A.Sub(l.A).Cross(m.B.Sub(l.A))
	s2 := m.B.Sub(l.B).Cross(m.A.Sub(l.B))
	return l.A.Add(l.Vec().Scale(s1 / (s1 + s2))), nil
}

func (l Line) String() string {
	return fmt.Sprintf("%s-%s", l.A, l.B)
}
