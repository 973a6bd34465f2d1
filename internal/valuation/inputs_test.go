package valuation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultInputs(t *testing.T) {
	in := DefaultInputs(5)

	assert.Equal(t, 5, in.Years)
	assert.Equal(t, 0.08, in.DiscountRate)
	assert.Equal(t, []float64{10000, 10000, 10000, 10000, 10000}, in.LicensedCashFlows)
	assert.Equal(t, 50000.0, in.SaleValue)
	assert.Equal(t, 3, in.YearsUntilSale)
	assert.Equal(t, []float64{50000, 52000, 54000, 56000, 58000}, in.AppRevenue)
	assert.Equal(t, 0.20, in.Allocation)
}

func TestDefaultInputs_Horizon(t *testing.T) {
	tests := []struct {
		name     string
		years    int
		expected int
	}{
		{"zero uses default horizon", 0, 5},
		{"below minimum", 1, MinYears},
		{"above maximum", 25, MaxYears},
		{"in range", 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := DefaultInputs(tt.years)
			assert.Equal(t, tt.expected, in.Years)
			assert.Len(t, in.LicensedCashFlows, tt.expected)
			assert.Len(t, in.AppRevenue, tt.expected)
			assert.LessOrEqual(t, in.YearsUntilSale, in.Years)
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name  string
		in    Inputs
		check func(t *testing.T, out Inputs)
	}{
		{
			name: "valid inputs are unchanged",
			in:   DefaultInputs(6),
			check: func(t *testing.T, out Inputs) {
				assert.Equal(t, DefaultInputs(6), out)
			},
		},
		{
			name: "discount rate is bounded",
			in:   Inputs{Years: 3, DiscountRate: 0.9},
			check: func(t *testing.T, out Inputs) {
				assert.Equal(t, MaxDiscountRate, out.DiscountRate)
			},
		},
		{
			name: "non-finite rate falls back to default",
			in:   Inputs{Years: 3, DiscountRate: math.Inf(1)},
			check: func(t *testing.T, out Inputs) {
				assert.Equal(t, 0.08, out.DiscountRate)
			},
		},
		{
			name: "short sequences are padded with year defaults",
			in:   Inputs{Years: 4, DiscountRate: 0.1, AppRevenue: []float64{1}},
			check: func(t *testing.T, out Inputs) {
				assert.Equal(t, []float64{1, 52000, 54000, 56000}, out.AppRevenue)
				assert.Equal(t, []float64{10000, 10000, 10000, 10000}, out.LicensedCashFlows)
			},
		},
		{
			name: "long sequences are truncated",
			in:   Inputs{Years: 3, DiscountRate: 0.1, LicensedCashFlows: []float64{1, 2, 3, 4, 5}},
			check: func(t *testing.T, out Inputs) {
				assert.Equal(t, []float64{1, 2, 3}, out.LicensedCashFlows)
			},
		},
		{
			name: "negative money is raised to zero",
			in:   Inputs{Years: 3, DiscountRate: 0.1, SaleValue: -1, LicensedCashFlows: []float64{-1, -2, -3}},
			check: func(t *testing.T, out Inputs) {
				assert.Equal(t, 0.0, out.SaleValue)
				assert.Equal(t, []float64{0, 0, 0}, out.LicensedCashFlows)
			},
		},
		{
			name: "years until sale stays within the horizon",
			in:   Inputs{Years: 4, DiscountRate: 0.1, YearsUntilSale: 9},
			check: func(t *testing.T, out Inputs) {
				assert.Equal(t, 4, out.YearsUntilSale)
			},
		},
		{
			name: "years until sale is at least one",
			in:   Inputs{Years: 4, DiscountRate: 0.1, YearsUntilSale: -2},
			check: func(t *testing.T, out Inputs) {
				assert.Equal(t, 1, out.YearsUntilSale)
			},
		},
		{
			name: "allocation is a fraction",
			in:   Inputs{Years: 3, DiscountRate: 0.1, Allocation: -0.5},
			check: func(t *testing.T, out Inputs) {
				assert.Equal(t, 0.0, out.Allocation)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, tt.in.Clamp())
		})
	}
}

func TestClamp_DoesNotAlias(t *testing.T) {
	in := DefaultInputs(3)
	out := in.Clamp()
	out.LicensedCashFlows[0] = -1
	out.AppRevenue[0] = -1
	assert.Equal(t, 10000.0, in.LicensedCashFlows[0])
	assert.Equal(t, 50000.0, in.AppRevenue[0])
}

func TestClampWith_CustomDefaults(t *testing.T) {
	d := Defaults{
		Years:            8,
		DiscountRate:     0.12,
		LicensedCashFlow: 2500,
		SaleValue:        1000,
		YearsUntilSale:   6,
		AppRevenueBase:   100,
		AppRevenueGrowth: 10,
		Allocation:       0.5,
	}

	out := Inputs{DiscountRate: 0.05, AppRevenue: []float64{7}}.ClampWith(d)

	assert.Equal(t, 8, out.Years)
	assert.Equal(t, 0.05, out.DiscountRate)
	assert.Len(t, out.LicensedCashFlows, 8)
	assert.Equal(t, 2500.0, out.LicensedCashFlows[7])
	assert.Equal(t, []float64{7, 110, 120, 130, 140, 150, 160, 170}, out.AppRevenue)
}

func TestDefaults_Normalize(t *testing.T) {
	d := Defaults{
		Years:            40,
		DiscountRate:     math.NaN(),
		LicensedCashFlow: -10,
		SaleValue:        math.Inf(-1),
		YearsUntilSale:   0,
		AppRevenueBase:   -1,
		AppRevenueGrowth: math.NaN(),
		Allocation:       1.5,
	}.Normalize()

	assert.Equal(t, MaxYears, d.Years)
	assert.Equal(t, 0.08, d.DiscountRate)
	assert.Equal(t, 0.0, d.LicensedCashFlow)
	assert.Equal(t, 50000.0, d.SaleValue)
	assert.Equal(t, 1, d.YearsUntilSale)
	assert.Equal(t, 0.0, d.AppRevenueBase)
	assert.Equal(t, 2000.0, d.AppRevenueGrowth)
	assert.Equal(t, 1.0, d.Allocation)
}

func TestDefaults_AppRevenueForNeverNegative(t *testing.T) {
	d := Defaults{AppRevenueBase: 1000, AppRevenueGrowth: -600}
	assert.Equal(t, 1000.0, d.AppRevenueFor(1))
	assert.Equal(t, 400.0, d.AppRevenueFor(2))
	assert.Equal(t, 0.0, d.AppRevenueFor(3))
}
