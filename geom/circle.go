package geom

import (
	"fmt"
	"math"
)

// Circle is a center and radius. The radius is assumed non-negative and is
// not validated.
type Circle struct {
	O Point
	R float64
}

func NewCircle(o Point, r float64) Circle {
	return Circle{O: o, R: r}
}

// InterLine intersects the circle with the infinite line through l. A
// tangent line yields the projection point twice; a line farther than R from
// the center fails with ErrNoIntersection; a degenerate line fails with
// ErrDegenerateLine.
func (c Circle) InterLine(l Line) (Point, Point, error) {
	proj, err := l.Proj(c.O)
	if err != nil {
		return Point{}, Point{}, err
	}
	d := c.O.Sub(proj).Dis()
	if Equal(d, c.R) {
		return proj, proj, nil
	}
	if d > c.R {
		return Point{}, Point{}, ErrNoIntersection
	}

	half := math.Sqrt(c.R*c.R - d*d)
	dir, err := l.Vec().Normalize()
	if err != nil {
		return Point{}, Point{}, err
	}
	return proj.Add(dir.Scale(half)), proj.Sub(dir.Scale(half)), nil
}

// InterCircle intersects two circles. Tangency (internal or external) yields
// the single touch point twice. Concentric circles fail with
// ErrNoIntersection whether or not the radii match, as do separate and
// nested circles.
func (c Circle) InterCircle(c2 Circle) (Point, Point, error) {
	if c.O.Eq(c2.O) {
		return Point{}, Point{}, ErrNoIntersection
	}
	d := c.O.Sub(c2.O).Dis()

	if Equal(d, math.Abs(c.R-c2.R)) {
		// Internally tangent: the touch point sits on the center line, a
		// radius away from the larger circle's center.
		var p Point
		var err error
		if c.R > c2.R {
			p, err = pointToward(c.O, c2.O, c.R)
		} else {
			p, err = pointToward(c2.O, c.O, c2.R)
		}
		if err != nil {
			return Point{}, Point{}, err
		}
		return p, p, nil
	}
	if Equal(d, c.R+c2.R) {
		p, err := pointToward(c.O, c2.O, c.R)
		if err != nil {
			return Point{}, Point{}, err
		}
		return p, p, nil
	}
	if d < math.Abs(c.R-c2.R) || d > c.R+c2.R {
		return Point{}, Point{}, ErrNoIntersection
	}

	theta := math.Acos((c.R*c.R + d*d - c2.R*c2.R) / (2 * c.R * d))
	u, err := c2.O.Sub(c.O).Normalize()
	if err != nil {
		return Point{}, Point{}, err
	}
	arm := u.Scale(c.R)
	return c.O.Add(arm.Rot(theta)), c.O.Add(arm.Rot(-theta)), nil
}

// TangentPoint returns the two points where tangents from p touch the
// circle. A point on the circle is its own (doubled) tangent point; a point
// strictly inside fails with ErrNoTangent.
func (c Circle) TangentPoint(p Point) (Point, Point, error) {
	d := c.O.Sub(p).Dis()
	if Equal(d, c.R) {
		return p, p, nil
	}
	if d < c.R {
		return Point{}, Point{}, ErrNoTangent
	}

	theta := math.Acos(c.R / d)
	u, err := p.Sub(c.O).Normalize()
	if err != nil {
		return Point{}, Point{}, err
	}
	arm := u.Scale(c.R)
	return c.O.Add(arm.Rot(theta)), c.O.Add(arm.Rot(-theta)), nil
}

// TangentExterior returns the two exterior common tangent lines, each
// running from a touch point on this circle to the corresponding touch point
// on c2. It fails with ErrNoTangent when one circle is nested in or
// internally tangent to the other.
func (c Circle) TangentExterior(c2 Circle) (Line, Line, error) {
	d := c.O.Sub(c2.O).Dis()
	if d < math.Abs(c.R-c2.R)+Epsilon {
		return Line{}, Line{}, ErrNoTangent
	}

	theta := math.Acos((c.R - c2.R) / d)
	alpha, err := c2.O.Sub(c.O).Normalize()
	if err != nil {
		return Line{}, Line{}, err
	}
	return NewLine(c.O.Add(alpha.Rot(theta).Scale(c.R)), c2.O.Add(alpha.Rot(theta).Scale(c2.R))),
		NewLine(c.O.Add(alpha.Rot(-theta).Scale(c.R)), c2.O.Add(alpha.Rot(-theta).Scale(c2.R))),
		nil
}

// TangentInterior returns the two interior common tangent lines, the ones
// crossing between the circles. It fails with ErrNoTangent when the circles
// overlap, touch, or one contains the other.
func (c Circle) TangentInterior(c2 Circle) (Line, Line, error) {
	d := c.O.Sub(c2.O).Dis()
	if d < c.R+c2.R+Epsilon {
		return Line{}, Line{}, ErrNoTangent
	}

	theta := math.Acos((c.R + c2.R) / d)
	alpha, err := c2.O.Sub(c.O).Normalize()
	if err != nil {
		return Line{}, Line{}, err
	}
	beta := alpha.Neg()
	return NewLine(c.O.Add(alpha.Rot(theta).Scale(c.R)), c2.O.Add(beta.Rot(theta).Scale(c2.R))),
		NewLine(c.O.Add(alpha.Rot(-theta).Scale(c.R)), c2.O.Add(beta.Rot(-theta).Scale(c2.R))),
		nil
}

func (c Circle) String() string {
	return fmt.Sprintf("[%s %g]", c.O, c.R)
}

// pointToward walks dist from `from` in the direction of `to`.
func pointToward(from, to Point, dist float64) (Point, error) {
	u, err := to.Sub(from).Normalize()
	if err != nil {
		return Point{}, err
	}
	return from.Add(u.Scale(dist)), nil
}

// Incentre returns the center of the inscribed circle of triangle abc: the
// weighted average of the vertices by opposite side length. Three coincident
// vertices degenerate to that common point.
func Incentre(a, b, c Point) Point {
	if a.Eq(b) && b.Eq(c) {
		return a
	}
	la := b.Sub(c).Dis()
	lb := a.Sub(c).Dis()
	lc := a.Sub(b).Dis()
	return a.Scale(la).Add(b.Scale(lb)).Add(c.Scale(lc)).Scale(1 / (la + lb + lc))
}

// Circumcentre returns the center of the circle through a, b and c, solving
// the perpendicular-bisector system with cross products of the doubled edge
// vectors. Three coincident vertices degenerate to that common point; a
// collinear triple has no circumcircle and fails with ErrCollinear.
func Circumcentre(a, b, c Point) (Point, error) {
	if a.Eq(b) && b.Eq(c) {
		return a, nil
	}
	if Equal(b.Sub(a).Cross(c.Sub(a)), 0) {
		return Point{}, ErrCollinear
	}

	v1 := b.Sub(a).Scale(2)
	v2 := c.Sub(b).Scale(2)
	c1 := b.SqrDis() - a.SqrDis()
	c2 := c.SqrDis() - b.SqrDis()
	den := v1.Cross(v2)
	return Point{
		X: (c1*v2.Y - c2*v1.Y) / den,
		Y: (c2*v1.X - c1*v2.X) / den,
	}, nil
}
