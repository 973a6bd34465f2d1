package views

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauv0809/ip-portfolio/internal/charts"
	"github.com/mauv0809/ip-portfolio/internal/dashboard"
	"github.com/mauv0809/ip-portfolio/internal/valuation"
)

func renderIndex(t *testing.T, in valuation.Inputs) string {
	t.Helper()

	in = in.Clamp()
	s := dashboard.Summarize(valuation.BuildPortfolio(in), in.Years)

	var buf bytes.Buffer
	require.NoError(t, Index(NewIndexPage(in, s)).Render(context.Background(), &buf))
	return buf.String()
}

func TestIndex_RendersSummaryAndCharts(t *testing.T) {
	html := renderIndex(t, valuation.DefaultInputs(5))

	assert.Contains(t, html, "Total Portfolio Value")
	assert.Contains(t, html, "$122,494.78")
	assert.Contains(t, html, "<strong>Licensed IP</strong>: $39,927.10")
	assert.Contains(t, html, "<strong>Internal IP</strong>: $39,691.61")
	assert.Contains(t, html, "<strong>Subscription IP</strong>: $42,876.07")
	assert.Contains(t, html, dashboard.CashFlowTitle)
	assert.Contains(t, html, dashboard.NPVTitle)
	assert.Equal(t, 2, strings.Count(html, "<polyline"))
	assert.Equal(t, 4, strings.Count(html, "<title>"), "page title plus one tooltip per bar")
}

func TestIndex_FormReflectsInputs(t *testing.T) {
	in := valuation.DefaultInputs(4)
	in.DiscountRate = 0.125
	in.Allocation = 0.35
	html := renderIndex(t, in)

	assert.Equal(t, 4, strings.Count(html, `name="licensed_cf"`))
	assert.Equal(t, 4, strings.Count(html, `name="app_revenue"`))
	assert.Contains(t, html, `name="discount_rate" min="1" max="20" step="0.1" value="12.5"`)
	assert.Contains(t, html, `name="allocation" min="0" max="100" step="0.5" value="35"`)
	assert.Contains(t, html, `name="sale_year" min="1" max="4"`)
	assert.Contains(t, html, `value="56000"`)
}

func TestNewIndexPage(t *testing.T) {
	in := valuation.DefaultInputs(3)
	page := NewIndexPage(in, dashboard.Summary{})

	require.Len(t, page.YearRows, 3)
	assert.Equal(t, YearInput{Year: 3, Licensed: 10000, Revenue: 54000}, page.YearRows[2])
	assert.Equal(t, 8.0, page.RatePercent)
	assert.Equal(t, 20.0, page.AllocationPercent)
	assert.Equal(t, 1.0, page.MinRatePercent)
	assert.Equal(t, 20.0, page.MaxRatePercent)
}

func render(t *testing.T, ctx context.Context, c templ.Component) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, c.Render(ctx, &buf))
	return buf.String()
}

func TestLayout_WrapsChildren(t *testing.T) {
	ctx := templ.WithChildren(context.Background(), templ.Raw("<p>inner</p>"))
	html := render(t, ctx, Layout("R&D <IP>"))

	assert.True(t, strings.HasPrefix(html, "<!doctype html>"))
	assert.Contains(t, html, "<title>R&amp;D &lt;IP&gt;</title>")
	assert.Contains(t, html, `<link rel="stylesheet" href="/assets/app.css">`)
	assert.Contains(t, html, "<body><p>inner</p></body>")
}

func TestLineChart(t *testing.T) {
	c := charts.NewLineChart("Flows", "Year", "Cash Flow ($)", []float64{1, 2, 3}, []charts.Series{
		{Name: "A", Values: []float64{10, 20, 30}},
	})
	html := render(t, context.Background(), LineChart(c))

	assert.Contains(t, html, `<svg viewBox="0 0 720 360"`)
	assert.Equal(t, 1, strings.Count(html, "<polyline"))
	assert.Equal(t, 3, strings.Count(html, "<circle"))
	assert.Contains(t, html, `<text class="legend"`)
	assert.Contains(t, html, "rotate(-90)")
}

func TestCharts_Empty(t *testing.T) {
	line := render(t, context.Background(), LineChart(charts.NewLineChart("Flows", "Year", "$", nil, nil)))
	assert.Contains(t, line, "Flows: no cash flows to plot.")
	assert.NotContains(t, line, "<svg")

	bar := render(t, context.Background(), BarChart(charts.NewBarChart("NPV", "$", nil)))
	assert.Contains(t, bar, "NPV: no assets to plot.")
	assert.NotContains(t, bar, "<svg")
}

func TestBarChart(t *testing.T) {
	c := charts.NewBarChart("NPV", "$", []charts.Bar{
		{Label: "Up", Value: 100, Display: "$100.00"},
		{Label: "Down", Value: -40, Display: "-$40.00"},
	})
	html := render(t, context.Background(), BarChart(c))

	assert.Contains(t, html, "<title>Up: $100.00</title>")
	assert.Contains(t, html, "<title>Down: -$40.00</title>")
	assert.Equal(t, 2, strings.Count(html, "<rect"))
	assert.Contains(t, html, `<line class="axis"`)
}
