package geom

import (
	"math"

	"github.com/pkg/errors"
)

// ConvexHull is a convex polygon stored as two monotone chains, both ordered
// by ComparePoints. Upper and Lower share their first point (the
// lexicographic minimum of the input) and their last (the maximum). Every
// consecutive triple along Upper turns clockwise and every triple along
// Lower turns counter-clockwise, strictly beyond Epsilon. A hull is built
// once and never mutated.
type ConvexHull struct {
	Upper []Point
	Lower []Point
}

// NewConvexHull assembles a hull directly from two chains without checking
// them. Use Valid to self-check a hand-built hull.
func NewConvexHull(upper, lower []Point) ConvexHull {
	return ConvexHull{Upper: upper, Lower: lower}
}

type pointStack []Point

func (s *pointStack) Push(p Point) {
	*s = append(*s, p)
}

func (s *pointStack) Pop() (Point, bool) {
	if len(*s) == 0 {
		return Point{}, false
	}
	p := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return p, true
}

// turn is the cross product of the chain's last edge against the candidate
// point, both taken from the second-to-last vertex. Positive means p is a
// counter-clockwise turn from the edge. The chain must hold at least two
// points.
func turn(chain pointStack, p Point) float64 {
	n := len(chain)
	return chain[n-1].Sub(chain[n-2]).Cross(p.Sub(chain[n-2]))
}

// Hull computes the convex hull of points with a monotone chain sweep.
// Points within Epsilon of each other are collapsed before the sweep, so
// duplicates never surface as spurious vertices. An empty input fails with
// ErrInsufficientPoints. A single distinct point yields a degenerate
// one-vertex hull, and two distinct points yield the segment between them.
func Hull(points []Point) (ConvexHull, error) {
	distinct := sortedDistinct(points)
	if len(distinct) == 0 {
		return ConvexHull{}, errors.Wrap(ErrInsufficientPoints, "convex hull")
	}

	var upper, lower pointStack
	for _, p := range distinct {
		for len(upper) >= 2 && turn(upper, p) > -Epsilon {
			upper.Pop()
		}
		for len(lower) >= 2 && turn(lower, p) < Epsilon {
			lower.Pop()
		}
		upper.Push(p)
		lower.Push(p)
	}
	return ConvexHull{Upper: upper, Lower: lower}, nil
}

// Valid self-checks the chain invariants: both chains share their extreme
// points and every interior triple keeps its turn direction beyond Epsilon.
// Hulls produced by Hull always pass; this is a cheap check for hulls
// assembled by hand with NewConvexHull.
func (h ConvexHull) Valid() bool {
	if len(h.Upper) == 0 || len(h.Lower) == 0 {
		return false
	}
	if !h.Upper[0].Eq(h.Lower[0]) {
		return false
	}
	if !h.Upper[len(h.Upper)-1].Eq(h.Lower[len(h.Lower)-1]) {
		return false
	}
	for i := 0; i+2 < len(h.Upper); i++ {
		if h.Upper[i+1].Sub(h.Upper[i]).Cross(h.Upper[i+2].Sub(h.Upper[i])) > -Epsilon {
			return false
		}
	}
	for i := 0; i+2 < len(h.Lower); i++ {
		if h.Lower[i+1].Sub(h.Lower[i]).Cross(h.Lower[i+2].Sub(h.Lower[i])) < Epsilon {
			return false
		}
	}
	return true
}

// Area returns the signed hull area: the shoelace formula split across the
// two chains, each fanned from the shared minimum vertex. Counter-clockwise
// enumeration makes it positive; callers wanting an unsigned area take the
// absolute value.
func (h ConvexHull) Area() float64 {
	var area float64
	for i := 1; i+1 < len(h.Upper); i++ {
		area += h.Upper[i+1].Sub(h.Upper[0]).Cross(h.Upper[i].Sub(h.Upper[0]))
	}
	for i := 1; i+1 < len(h.Lower); i++ {
		area -= h.Lower[i+1].Sub(h.Lower[0]).Cross(h.Lower[i].Sub(h.Lower[0]))
	}
	return area / 2
}

// Points enumerates the boundary counter-clockwise: the lower chain followed
// by the upper chain reversed, with the two shared extremes appearing
// exactly once each. A one-vertex hull yields that single vertex.
func (h ConvexHull) Points() []Point {
	if len(h.Lower) == 1 {
		return []Point{h.Lower[0]}
	}
	pts := make([]Point, 0, len(h.Upper)+len(h.Lower)-2)
	pts = append(pts, h.Lower[:len(h.Lower)-1]...)
	for i := len(h.Upper) - 1; i >= 1; i-- {
		pts = append(pts, h.Upper[i])
	}
	return pts
}

// CircularIndex wraps i into [0, n) so a boundary slice can be walked as a
// ring. Go's % can go negative for negative i; this never does.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Contains reports whether p lies on or inside the hull boundary, within
// Epsilon of distance. For a convex counter-clockwise boundary that means no
// edge sees p strictly on its right side.
func (h ConvexHull) Contains(p Point) bool {
	pts := h.Points()
	switch len(pts) {
	case 1:
		return pts[0].Eq(p)
	case 2:
		seg := NewLine(pts[0], pts[1])
		if math.Abs(seg.Vec().Cross(p.Sub(pts[0])))/seg.Len() >= Epsilon {
			return false
		}
		// The overshoot past either endpoint is measured in distance units,
		// same as the perpendicular check, so endpoint tolerance doesn't
		// grow with segment length.
		along := p.Sub(pts[0]).Dot(seg.Vec()) / seg.Len()
		return along > -Epsilon && along < seg.Len()+Epsilon
	}

	for i, v := range pts {
		edge := pts[CircularIndex(i+1, len(pts))].Sub(v)
		if edge.Cross(p.Sub(v))/edge.Dis() < -Epsilon {
			return false
		}
	}
	return true
}
