package geom

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/muskox/planar/dbg"
)

// This is for debugging purposes only

const dbgDrawPadding = 10

func (h ConvexHull) dbgDraw(input []Point, scale float64) {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, p := range input {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	// Input points in grey, hull vertices over them in cyan
	c.SetRGB(0.4, 0.4, 0.4)
	for _, p := range input {
		c.DrawCircle(p.X, p.Y, 2/scale)
		c.Fill()
	}

	boundary := h.Points()
	c.SetLineWidth(2)
	c.MoveTo(boundary[0].X, boundary[0].Y)
	for _, p := range boundary[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	c.SetRGB(0, 1, 1)
	for _, p := range boundary {
		c.DrawCircle(p.X, p.Y, 3/scale)
		c.Fill()
	}

	c.SavePNG("/tmp/convex_hull.png")
	imgcat.CatFile("/tmp/convex_hull.png", os.Stdout)
}

// DbgName returns a readable name for a hull vertex, colored by where it
// sits: cyan for the shared extremes, red for upper-chain vertices, green
// for lower-chain ones.
func (h ConvexHull) DbgName(p Point) string {
	name := dbg.Name(p)
	onUpper := chainHas(h.Upper, p)
	onLower := chainHas(h.Lower, p)
	switch {
	case onUpper && onLower:
		name = aurora.Cyan(name).String()
	case onUpper:
		name = aurora.Red(name).String()
	case onLower:
		name = aurora.Green(name).String()
	}
	return name
}

func chainHas(chain []Point, p Point) bool {
	for _, q := range chain {
		if q.Eq(p) {
			return true
		}
	}
	return false
}
