package charts

import "strconv"

// Series is one named line of values, x-aligned with the chart's xs.
type Series struct {
	Name   string
	Values []float64
}

// Line is a laid-out series.
type Line struct {
	Name   string
	Color  string
	Points []Point
}

// PointsAttr renders the points for an SVG polyline.
func (l Line) PointsAttr() string { return pointsAttr(l.Points) }

// LineChart is a multi-series line chart with markers.
type LineChart struct {
	Title  string
	XLabel string
	YLabel string
	Width  float64
	Height float64
	Plot   Rect
	Lines  []Line
	XTicks []Tick
	YTicks []Tick
}

const (
	lineWidth  = 720
	lineHeight = 360
	yTickCount = 5
)

// NewLineChart lays out series against xs. Series values beyond len(xs) are
// dropped; series without values are skipped.
func NewLineChart(title, xLabel, yLabel string, xs []float64, series []Series) LineChart {
	c := LineChart{
		Title:  title,
		XLabel: xLabel,
		YLabel: yLabel,
		Width:  lineWidth,
		Height: lineHeight,
		Plot:   Rect{X: 80, Y: 40, W: lineWidth - 80 - 24, H: lineHeight - 40 - 56},
	}

	var all []float64
	for _, s := range series {
		n := min(len(s.Values), len(xs))
		all = append(all, s.Values[:n]...)
	}
	ylo, yhi := valueRange(all)
	xlo, xhi := valueRange(nil)
	if len(xs) > 0 {
		xlo, xhi = xs[0], xs[len(xs)-1]
		if xhi == xlo {
			xlo, xhi = xlo-1, xhi+1
		}
	}

	xpos := func(v float64) float64 { return c.Plot.X + (v-xlo)/(xhi-xlo)*c.Plot.W }
	ypos := func(v float64) float64 { return c.Plot.Bottom() - (v-ylo)/(yhi-ylo)*c.Plot.H }

	color := 0
	for _, s := range series {
		n := min(len(s.Values), len(xs))
		if n == 0 {
			continue
		}
		line := Line{Name: s.Name, Color: LineColor(color), Points: make([]Point, n)}
		for i := 0; i < n; i++ {
			line.Points[i] = Point{X: xpos(xs[i]), Y: ypos(s.Values[i])}
		}
		c.Lines = append(c.Lines, line)
		color++
	}

	for _, x := range xs {
		c.XTicks = append(c.XTicks, Tick{Pos: xpos(x), Label: strconv.FormatFloat(x, 'f', -1, 64)})
	}
	c.YTicks = evenTicks(ylo, yhi, yTickCount, ypos)

	return c
}

// Empty reports whether the chart has nothing to draw.
func (c LineChart) Empty() bool { return len(c.Lines) == 0 }
