// Package dashboard turns a valued portfolio into what the dashboard shows:
// the total, one line per asset and the two charts.
package dashboard

import (
	"math"

	"github.com/dustin/go-humanize"

	"github.com/mauv0809/ip-portfolio/internal/charts"
	"github.com/mauv0809/ip-portfolio/internal/valuation"
)

// Chart titles and axis labels.
const (
	CashFlowTitle  = "Cash Flows Over Time"
	CashFlowXLabel = "Year"
	CashFlowYLabel = "Cash Flow ($)"
	NPVTitle       = "NPV by IP Asset"
	NPVXLabel      = "Value ($)"
)

// Row is one asset line of the summary.
type Row struct {
	Name      string
	Kind      valuation.Kind
	NPV       float64
	Display   string
	CashFlows []float64
}

// Summary is everything the dashboard renders for one portfolio.
type Summary struct {
	Years         int
	Total         float64
	TotalDisplay  string
	Rows          []Row
	CashFlowChart charts.LineChart
	NPVChart      charts.BarChart
}

// Summarize values p and lays out its charts over a horizon of years.
// Assets without cash flows are left out of the cash-flow chart.
func Summarize(p valuation.Portfolio, years int) Summary {
	total := p.TotalNPV()
	s := Summary{
		Years:        years,
		Total:        total,
		TotalDisplay: FormatCurrency(total),
	}

	var (
		series []charts.Series
		bars   []charts.Bar
	)
	for _, v := range p.Valuations() {
		row := Row{
			Name:      v.Name,
			Kind:      v.Kind,
			NPV:       v.NPV,
			Display:   FormatCurrency(v.NPV),
			CashFlows: v.CashFlows,
		}
		s.Rows = append(s.Rows, row)

		if len(v.CashFlows) > 0 {
			series = append(series, charts.Series{Name: v.Name, Values: v.CashFlows})
		}
		bars = append(bars, charts.Bar{Label: v.Name, Value: v.NPV, Display: row.Display})
	}

	xs := make([]float64, max(years, 0))
	for i := range xs {
		xs[i] = float64(i + 1)
	}

	s.CashFlowChart = charts.NewLineChart(CashFlowTitle, CashFlowXLabel, CashFlowYLabel, xs, series)
	s.NPVChart = charts.NewBarChart(NPVTitle, NPVXLabel, bars)

	return s
}

// FormatCurrency renders v as dollars with thousands separators and cents,
// e.g. $1,234.56 or -$1,234.56.
func FormatCurrency(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "n/a"
	}

	v = math.Round(v*100) / 100
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return sign + "$" + humanize.FormatFloat("#,###.##", v)
}
