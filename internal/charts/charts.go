// Package charts lays out the dashboard charts as SVG geometry.
// Rendering is left to the views; nothing here performs I/O.
package charts

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"gonum.org/v1/gonum/floats"
)

// Rect is an axis-aligned rectangle in SVG user units.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Point is a position in SVG user units.
type Point struct {
	X, Y float64
}

// Tick is an axis tick at Pos (x for horizontal axes, y for vertical ones).
type Tick struct {
	Pos   float64
	Label string
}

// Num formats a coordinate for an SVG attribute.
func Num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

// FormatTick renders an axis value with thousands separators and no cents.
func FormatTick(v float64) string {
	v = math.Round(v)
	if v == 0 {
		return "0"
	}
	return humanize.Commaf(v)
}

// valueRange returns [lo, hi] covering zero and every value. A degenerate
// range is widened to one unit.
func valueRange(values []float64) (lo, hi float64) {
	if len(values) > 0 {
		lo = math.Min(0, floats.Min(values))
		hi = math.Max(0, floats.Max(values))
	}
	if hi == lo {
		hi = lo + 1
	}
	return lo, hi
}

// evenTicks returns n labels spread evenly from lo to hi, mapped through pos.
func evenTicks(lo, hi float64, n int, pos func(float64) float64) []Tick {
	ticks := make([]Tick, 0, n)
	for i := 0; i < n; i++ {
		v := lo + (hi-lo)*float64(i)/float64(n-1)
		ticks = append(ticks, Tick{Pos: pos(v), Label: FormatTick(v)})
	}
	return ticks
}

// lineColors follows the usual ten-colour categorical cycle.
var lineColors = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// LineColor returns the categorical colour for the i-th series.
func LineColor(i int) string {
	return lineColors[i%len(lineColors)]
}

// coolwarm anchors: cool blue, neutral grey, warm red.
var coolwarm = [3][3]float64{
	{59, 76, 192},
	{221, 220, 220},
	{180, 4, 38},
}

// Coolwarm samples the diverging palette at t in [0, 1].
func Coolwarm(t float64) string {
	t = math.Max(0, math.Min(1, t))
	lo, hi, f := coolwarm[0], coolwarm[1], t*2
	if t > 0.5 {
		lo, hi, f = coolwarm[1], coolwarm[2], (t-0.5)*2
	}

	var rgb [3]int
	for i := range rgb {
		rgb[i] = int(math.Round(lo[i] + (hi[i]-lo[i])*f))
	}
	return fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2])
}

func pointsAttr(points []Point) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = Num(p.X) + "," + Num(p.Y)
	}
	return strings.Join(parts, " ")
}
