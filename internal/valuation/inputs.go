package valuation

import "math"

// Input ranges enforced at the presentation boundary.
const (
	MinYears        = 3
	MaxYears        = 10
	MinDiscountRate = 0.01
	MaxDiscountRate = 0.20
	MinAllocation   = 0.0
	MaxAllocation   = 1.0
)

// Inputs are the scalars a portfolio is built from. Rates and allocations are
// fractions, not percentages.
type Inputs struct {
	Years             int       `json:"years" yaml:"years"`
	DiscountRate      float64   `json:"discount_rate" yaml:"discount_rate"`
	LicensedCashFlows []float64 `json:"licensed_cash_flows" yaml:"licensed_cash_flows"`
	SaleValue         float64   `json:"sale_value" yaml:"sale_value"`
	YearsUntilSale    int       `json:"years_until_sale" yaml:"years_until_sale"`
	AppRevenue        []float64 `json:"app_revenue" yaml:"app_revenue"`
	Allocation        float64   `json:"allocation" yaml:"allocation"`
}

// Defaults describe the values pre-filled when an input is not supplied.
// App revenue for year i (1-based) is AppRevenueBase + AppRevenueGrowth*(i-1).
type Defaults struct {
	Years            int     `json:"years" yaml:"years"`
	DiscountRate     float64 `json:"discount_rate" yaml:"discount_rate"`
	LicensedCashFlow float64 `json:"licensed_cash_flow" yaml:"licensed_cash_flow"`
	SaleValue        float64 `json:"sale_value" yaml:"sale_value"`
	YearsUntilSale   int     `json:"years_until_sale" yaml:"years_until_sale"`
	AppRevenueBase   float64 `json:"app_revenue_base" yaml:"app_revenue_base"`
	AppRevenueGrowth float64 `json:"app_revenue_growth" yaml:"app_revenue_growth"`
	Allocation       float64 `json:"allocation" yaml:"allocation"`
}

// StandardDefaults returns the built-in dashboard defaults.
func StandardDefaults() Defaults {
	return Defaults{
		Years:            5,
		DiscountRate:     0.08,
		LicensedCashFlow: 10000,
		SaleValue:        50000,
		YearsUntilSale:   3,
		AppRevenueBase:   50000,
		AppRevenueGrowth: 2000,
		Allocation:       0.20,
	}
}

// Normalize brings every field into its valid range. Fields that are not
// finite fall back to the standard default.
func (d Defaults) Normalize() Defaults {
	std := StandardDefaults()
	d.Years = clampInt(d.Years, MinYears, MaxYears)
	d.DiscountRate = clampFloat(finiteOr(d.DiscountRate, std.DiscountRate), MinDiscountRate, MaxDiscountRate)
	d.LicensedCashFlow = nonNegative(finiteOr(d.LicensedCashFlow, std.LicensedCashFlow))
	d.SaleValue = nonNegative(finiteOr(d.SaleValue, std.SaleValue))
	d.YearsUntilSale = clampInt(d.YearsUntilSale, 1, MaxYears)
	d.AppRevenueBase = nonNegative(finiteOr(d.AppRevenueBase, std.AppRevenueBase))
	d.AppRevenueGrowth = finiteOr(d.AppRevenueGrowth, std.AppRevenueGrowth)
	d.Allocation = clampFloat(finiteOr(d.Allocation, std.Allocation), MinAllocation, MaxAllocation)
	return d
}

// AppRevenueFor returns the default app revenue for a 1-based year.
func (d Defaults) AppRevenueFor(year int) float64 {
	return nonNegative(d.AppRevenueBase + d.AppRevenueGrowth*float64(year-1))
}

// Inputs expands the defaults into a full input set for the horizon.
// A non-positive horizon uses d.Years.
func (d Defaults) Inputs(years int) Inputs {
	if years <= 0 {
		years = d.Years
	}
	years = clampInt(years, MinYears, MaxYears)

	licensed := make([]float64, years)
	revenue := make([]float64, years)
	for i := range licensed {
		licensed[i] = d.LicensedCashFlow
		revenue[i] = d.AppRevenueFor(i + 1)
	}

	return Inputs{
		Years:             years,
		DiscountRate:      d.DiscountRate,
		LicensedCashFlows: licensed,
		SaleValue:         d.SaleValue,
		YearsUntilSale:    clampInt(d.YearsUntilSale, 1, years),
		AppRevenue:        revenue,
		Allocation:        d.Allocation,
	}
}

// DefaultInputs returns the built-in default inputs for the horizon.
func DefaultInputs(years int) Inputs {
	return StandardDefaults().Inputs(years)
}

// Clamp returns a copy of in with every field inside its valid range, filling
// gaps from the built-in defaults.
func (in Inputs) Clamp() Inputs {
	return in.ClampWith(StandardDefaults())
}

// ClampWith returns a copy of in with every field inside its valid range.
// Sequences are truncated or padded to the horizon; padding and non-finite
// values come from d.
func (in Inputs) ClampWith(d Defaults) Inputs {
	d = d.Normalize()

	years := in.Years
	if years == 0 {
		years = d.Years
	}
	years = clampInt(years, MinYears, MaxYears)

	out := Inputs{
		Years:          years,
		DiscountRate:   clampFloat(finiteOr(in.DiscountRate, d.DiscountRate), MinDiscountRate, MaxDiscountRate),
		SaleValue:      nonNegative(finiteOr(in.SaleValue, d.SaleValue)),
		YearsUntilSale: clampInt(in.YearsUntilSale, 1, years),
		Allocation:     clampFloat(finiteOr(in.Allocation, d.Allocation), MinAllocation, MaxAllocation),
	}

	out.LicensedCashFlows = fitSequence(in.LicensedCashFlows, years, func(int) float64 {
		return d.LicensedCashFlow
	})
	out.AppRevenue = fitSequence(in.AppRevenue, years, d.AppRevenueFor)

	return out
}

// fitSequence resizes seq to n entries. Missing or non-finite entries take
// fill(year); negative entries are raised to zero.
func fitSequence(seq []float64, n int, fill func(year int) float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		v := fill(i + 1)
		if i < len(seq) {
			v = finiteOr(seq[i], v)
		}
		out[i] = nonNegative(v)
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func finiteOr(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}
