package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineValid(t *testing.T) {
	assert.True(t, NewLine(NewPoint(0, 0), NewPoint(1, 1)).Valid())
	assert.False(t, NewLine(NewPoint(1, 1), NewPoint(1, 1)).Valid())
	assert.False(t, NewLine(NewPoint(0, 0), NewPoint(Epsilon/2, 0)).Valid())
}

func TestLineLen(t *testing.T) {
	l := NewLine(NewPoint(0, 0), NewPoint(1, 1))
	assert.True(t, Equal(l.Len(), math.Sqrt2))
	assert.True(t, Equal(l.SqrLen(), 2))
	assert.True(t, l.Vec().Eq(NewPoint(1, 1)))
}

func TestProj(t *testing.T) {
	l := NewLine(NewPoint(0, 0), NewPoint(1, 1))
	proj, err := l.Proj(NewPoint(1, 0))
	assert.NoError(t, err)
	assert.True(t, proj.Eq(NewPoint(0.5, 0.5)))

	// Proj is onto the infinite line, not clamped to the segment
	proj, err = l.Proj(NewPoint(3, 1))
	assert.NoError(t, err)
	assert.True(t, proj.Eq(NewPoint(2, 2)))
}

func TestProjDegenerateLine(t *testing.T) {
	l := NewLine(NewPoint(2, 2), NewPoint(2, 2))
	_, err := l.Proj(NewPoint(0, 0))
	assert.ErrorIs(t, err, ErrDegenerateLine)
}

func TestInter(t *testing.T) {
	la := NewLine(NewPoint(0, 0), NewPoint(1, 1))
	lb := NewLine(NewPoint(1, 0), NewPoint(0, 1))
	p, err := la.Inter(lb)
	assert.NoError(t, err)
	assert.True(t, p.Eq(NewPoint(0.5, 0.5)))

	// The intersection may fall outside both segments
	lc := NewLine(NewPoint(5, 0), NewPoint(5, 1))
	p, err = la.Inter(lc)
	assert.NoError(t, err)
	assert.True(t, p.Eq(NewPoint(5, 5)))
}

func TestInterParallel(t *testing.T) {
	la := NewLine(NewPoint(0, 0), NewPoint(0, 1))
	lb := NewLine(NewPoint(1, 0), NewPoint(1, 1))
	_, err := la.Inter(lb)
	assert.ErrorIs(t, err, ErrNoIntersection)

	// Coincident lines are indistinguishable from parallel ones here
	lc := NewLine(NewPoint(0, -3), NewPoint(0, 7))
	_, err = la.Inter(lc)
	assert.ErrorIs(t, err, ErrNoIntersection)
}

func TestInterDegenerateLine(t *testing.T) {
	la := NewLine(NewPoint(0, 0), NewPoint(1, 1))
	lb := NewLine(NewPoint(3, 3), NewPoint(3, 3))
	_, err := la.Inter(lb)
	assert.ErrorIs(t, err, ErrDegenerateLine)
	_, err = lb.Inter(la)
	assert.ErrorIs(t, err, ErrDegenerateLine)
}

func TestLineString(t *testing.T) {
	l := NewLine(NewPoint(0, 0), NewPoint(1, 0))
	assert.Equal(t, "(0.00000,0.00000)-(1.00000,0.00000)", l.String())
}
