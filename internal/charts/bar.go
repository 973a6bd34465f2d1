package charts

import "math"

// Bar is one labelled value. Display overrides the printed value when set.
type Bar struct {
	Label   string
	Value   float64
	Display string
}

// BarShape is a laid-out bar.
type BarShape struct {
	Label      string
	ValueLabel string
	Color      string
	Rect       Rect
	LabelY     float64
}

// BarChart is a horizontal bar chart.
type BarChart struct {
	Title  string
	XLabel string
	Width  float64
	Height float64
	Plot   Rect
	ZeroX  float64
	Bars   []BarShape
	XTicks []Tick
}

const (
	barWidth     = 640
	barBand      = 56
	barFill      = 0.7
	barTickCount = 5
)

// NewBarChart lays out bars top to bottom in the given order. Widths are
// proportional to value; negative values extend left of the zero line.
func NewBarChart(title, xLabel string, bars []Bar) BarChart {
	height := float64(40 + 56 + barBand*max(len(bars), 1))
	c := BarChart{
		Title:  title,
		XLabel: xLabel,
		Width:  barWidth,
		Height: height,
		Plot:   Rect{X: 130, Y: 40, W: barWidth - 130 - 32, H: height - 40 - 56},
	}

	values := make([]float64, len(bars))
	for i, b := range bars {
		values[i] = b.Value
	}
	lo, hi := valueRange(values)
	xpos := func(v float64) float64 { return c.Plot.X + (v-lo)/(hi-lo)*c.Plot.W }
	c.ZeroX = xpos(0)

	band := c.Plot.H / float64(max(len(bars), 1))
	for i, b := range bars {
		x0, x1 := c.ZeroX, xpos(b.Value)
		y := c.Plot.Y + float64(i)*band + band*(1-barFill)/2

		label := b.Display
		if label == "" {
			label = FormatTick(b.Value)
		}

		c.Bars = append(c.Bars, BarShape{
			Label:      b.Label,
			ValueLabel: label,
			Color:      Coolwarm(paletteStep(i, len(bars))),
			Rect:       Rect{X: math.Min(x0, x1), Y: y, W: math.Abs(x1 - x0), H: band * barFill},
			LabelY:     y + band*barFill/2,
		})
	}

	c.XTicks = evenTicks(lo, hi, barTickCount, xpos)

	return c
}

// Empty reports whether the chart has nothing to draw.
func (c BarChart) Empty() bool { return len(c.Bars) == 0 }

func paletteStep(i, n int) float64 {
	if n <= 1 {
		return 0.5
	}
	return float64(i) / float64(n-1)
}
