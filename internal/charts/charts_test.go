package charts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLineChart(t *testing.T) {
	xs := []float64{1, 2, 3}
	c := NewLineChart("Cash Flows Over Time", "Year", "Cash Flow ($)", xs, []Series{
		{Name: "Licensed IP", Values: []float64{1000, 1000, 1000}},
		{Name: "Internal IP"},
		{Name: "Subscription IP", Values: []float64{0, 2000, 4000}},
	})

	require.Len(t, c.Lines, 2)
	assert.False(t, c.Empty())
	assert.Equal(t, "Licensed IP", c.Lines[0].Name)
	assert.Equal(t, LineColor(0), c.Lines[0].Color)
	assert.Equal(t, "Subscription IP", c.Lines[1].Name)
	assert.Equal(t, LineColor(1), c.Lines[1].Color)

	sub := c.Lines[1].Points
	require.Len(t, sub, 3)
	assert.Equal(t, c.Plot.X, sub[0].X)
	assert.Equal(t, c.Plot.Right(), sub[2].X)
	assert.Equal(t, c.Plot.Bottom(), sub[0].Y, "zero sits on the x axis")
	assert.Equal(t, c.Plot.Y, sub[2].Y, "maximum touches the top")

	require.Len(t, c.XTicks, 3)
	assert.Equal(t, "1", c.XTicks[0].Label)
	assert.Equal(t, "3", c.XTicks[2].Label)

	require.Len(t, c.YTicks, 5)
	assert.Equal(t, "0", c.YTicks[0].Label)
	assert.Equal(t, "4,000", c.YTicks[4].Label)
}

func TestNewLineChart_PointsStayInsidePlot(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}
	c := NewLineChart("t", "x", "y", xs, []Series{
		{Name: "a", Values: []float64{5, 1e6, 3, 0, 12}},
		{Name: "b", Values: []float64{7, 7, 7, 7, 7, 7, 7}},
	})

	for _, l := range c.Lines {
		assert.LessOrEqual(t, len(l.Points), len(xs))
		for _, p := range l.Points {
			assert.GreaterOrEqual(t, p.X, c.Plot.X)
			assert.LessOrEqual(t, p.X, c.Plot.Right())
			assert.GreaterOrEqual(t, p.Y, c.Plot.Y)
			assert.LessOrEqual(t, p.Y, c.Plot.Bottom())
		}
	}
}

func TestNewLineChart_Empty(t *testing.T) {
	c := NewLineChart("t", "x", "y", []float64{1, 2, 3}, []Series{{Name: "none"}})
	assert.True(t, c.Empty())
	assert.Len(t, c.YTicks, 5)
}

func TestNewLineChart_AllZero(t *testing.T) {
	c := NewLineChart("t", "x", "y", []float64{1, 2}, []Series{{Name: "z", Values: []float64{0, 0}}})
	require.Len(t, c.Lines, 1)
	assert.Equal(t, c.Plot.Bottom(), c.Lines[0].Points[0].Y)
}

func TestLine_PointsAttr(t *testing.T) {
	l := Line{Points: []Point{{X: 1, Y: 2.5}, {X: 3.333, Y: 4}}}
	assert.Equal(t, "1,2.5 3.33,4", l.PointsAttr())
}

func TestNewBarChart(t *testing.T) {
	c := NewBarChart("NPV by IP Asset", "Value ($)", []Bar{
		{Label: "Licensed IP", Value: 100},
		{Label: "Internal IP", Value: 50, Display: "$50.00"},
		{Label: "Subscription IP", Value: 0},
	})

	require.Len(t, c.Bars, 3)
	assert.Equal(t, c.Plot.X, c.ZeroX)

	assert.Equal(t, c.Plot.W, c.Bars[0].Rect.W)
	assert.InDelta(t, c.Plot.W/2, c.Bars[1].Rect.W, 1e-9)
	assert.Equal(t, 0.0, c.Bars[2].Rect.W)

	assert.Equal(t, "100", c.Bars[0].ValueLabel)
	assert.Equal(t, "$50.00", c.Bars[1].ValueLabel)

	assert.Equal(t, Coolwarm(0), c.Bars[0].Color)
	assert.Equal(t, Coolwarm(0.5), c.Bars[1].Color)
	assert.Equal(t, Coolwarm(1), c.Bars[2].Color)

	assert.Less(t, c.Bars[0].Rect.Y, c.Bars[1].Rect.Y)
	assert.LessOrEqual(t, c.Bars[2].Rect.Bottom(), c.Plot.Bottom())
}

func TestNewBarChart_Negative(t *testing.T) {
	c := NewBarChart("t", "x", []Bar{{Label: "up", Value: 100}, {Label: "down", Value: -100}})

	require.Len(t, c.Bars, 2)
	assert.InDelta(t, c.Plot.X+c.Plot.W/2, c.ZeroX, 1e-9)
	assert.Equal(t, c.ZeroX, c.Bars[0].Rect.X)
	assert.InDelta(t, c.ZeroX, c.Bars[1].Rect.Right(), 1e-9)
}

func TestNewBarChart_Empty(t *testing.T) {
	c := NewBarChart("t", "x", nil)
	assert.True(t, c.Empty())
	assert.Greater(t, c.Height, 0.0)
}

func TestCoolwarm(t *testing.T) {
	assert.Equal(t, "#3b4cc0", Coolwarm(0))
	assert.Equal(t, "#dddcdc", Coolwarm(0.5))
	assert.Equal(t, "#b40426", Coolwarm(1))
	assert.Equal(t, Coolwarm(0), Coolwarm(-3))
	assert.Equal(t, Coolwarm(1), Coolwarm(7))
}

func TestFormatTick(t *testing.T) {
	assert.Equal(t, "0", FormatTick(0))
	assert.Equal(t, "0", FormatTick(0.2))
	assert.Equal(t, "12,500", FormatTick(12499.6))
	assert.Equal(t, "-1,000", FormatTick(-1000))
}

func TestNum(t *testing.T) {
	assert.Equal(t, "12.35", Num(12.345678))
	assert.Equal(t, "80", Num(80))
}
