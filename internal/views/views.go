// Package views renders the dashboard pages.
package views

import (
	"strconv"

	"github.com/mauv0809/ip-portfolio/internal/charts"
	"github.com/mauv0809/ip-portfolio/internal/dashboard"
	"github.com/mauv0809/ip-portfolio/internal/valuation"
)

// PageTitle heads the dashboard.
const PageTitle = "IP Portfolio Valuation Tool"

// legendStep is the vertical distance between legend entries.
const legendStep = 18.0

// YearInput holds the per-year form values.
type YearInput struct {
	Year     int
	Licensed float64
	Revenue  float64
}

// IndexPage is the data behind the dashboard page.
type IndexPage struct {
	Inputs            valuation.Inputs
	Summary           dashboard.Summary
	YearRows          []YearInput
	RatePercent       float64
	AllocationPercent float64
	MinYears          int
	MaxYears          int
	MinRatePercent    float64
	MaxRatePercent    float64
}

// NewIndexPage prepares the dashboard page for clamped inputs and their summary.
func NewIndexPage(in valuation.Inputs, s dashboard.Summary) IndexPage {
	rows := make([]YearInput, in.Years)
	for i := range rows {
		rows[i].Year = i + 1
		if i < len(in.LicensedCashFlows) {
			rows[i].Licensed = in.LicensedCashFlows[i]
		}
		if i < len(in.AppRevenue) {
			rows[i].Revenue = in.AppRevenue[i]
		}
	}

	return IndexPage{
		Inputs:            in,
		Summary:           s,
		YearRows:          rows,
		RatePercent:       toPercent(in.DiscountRate),
		AllocationPercent: toPercent(in.Allocation),
		MinYears:          valuation.MinYears,
		MaxYears:          valuation.MaxYears,
		MinRatePercent:    toPercent(valuation.MinDiscountRate),
		MaxRatePercent:    toPercent(valuation.MaxDiscountRate),
	}
}

// toPercent converts a fraction to a percentage, trimming float noise.
func toPercent(fraction float64) float64 {
	v, _ := strconv.ParseFloat(strconv.FormatFloat(fraction*100, 'f', 6, 64), 64)
	return v
}

func plain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func viewBox(w, h float64) string {
	return "0 0 " + charts.Num(w) + " " + charts.Num(h)
}
