package handlers

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/mauv0809/ip-portfolio/internal/models"
	"github.com/mauv0809/ip-portfolio/internal/valuation"
)

// Query parameter names of the dashboard form. Rates and allocations are
// percentages in the form.
const (
	paramYears        = "years"
	paramDiscountRate = "discount_rate"
	paramLicensedCF   = "licensed_cf"
	paramSaleValue    = "sale_value"
	paramSaleYear     = "sale_year"
	paramAppRevenue   = "app_revenue"
	paramAllocation   = "allocation"
)

// inputsFromQuery merges form values over the defaults and clamps the result.
// Values that do not parse are ignored and keep their default.
func inputsFromQuery(q url.Values, d valuation.Defaults) valuation.Inputs {
	years, _ := parseInt(q.Get(paramYears))
	in := d.Inputs(years)

	if v, ok := parseFloat(q.Get(paramDiscountRate)); ok {
		in.DiscountRate = v / 100
	}
	overlaySequence(in.LicensedCashFlows, q[paramLicensedCF])
	if v, ok := parseFloat(q.Get(paramSaleValue)); ok {
		in.SaleValue = v
	}
	if v, ok := parseInt(q.Get(paramSaleYear)); ok {
		in.YearsUntilSale = v
	}
	overlaySequence(in.AppRevenue, q[paramAppRevenue])
	if v, ok := parseFloat(q.Get(paramAllocation)); ok {
		in.Allocation = v / 100
	}

	return in.ClampWith(d)
}

// inputsFromRequest merges a JSON request over the defaults and clamps the
// result. Rates and allocations are fractions here.
func inputsFromRequest(req models.ValuationRequest, d valuation.Defaults) valuation.Inputs {
	years := 0
	if req.Years != nil {
		years = *req.Years
	}
	in := d.Inputs(years)

	if req.DiscountRate != nil {
		in.DiscountRate = *req.DiscountRate
	}
	if req.LicensedCashFlows != nil {
		in.LicensedCashFlows = req.LicensedCashFlows
	}
	if req.SaleValue != nil {
		in.SaleValue = *req.SaleValue
	}
	if req.YearsUntilSale != nil {
		in.YearsUntilSale = *req.YearsUntilSale
	}
	if req.AppRevenue != nil {
		in.AppRevenue = req.AppRevenue
	}
	if req.Allocation != nil {
		in.Allocation = *req.Allocation
	}

	return in.ClampWith(d)
}

// overlaySequence writes parsable raw values over seq, position by position.
func overlaySequence(seq []float64, raw []string) {
	for i, s := range raw {
		if i >= len(seq) {
			return
		}
		if v, ok := parseFloat(s); ok {
			seq[i] = v
		}
	}
}

func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}
