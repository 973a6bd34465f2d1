package valuation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresentValue(t *testing.T) {
	tests := []struct {
		name      string
		cashFlows []float64
		rate      float64
		expected  float64
		tolerance float64
	}{
		{
			name:      "empty sequence",
			cashFlows: nil,
			rate:      0.08,
			expected:  0,
			tolerance: 0,
		},
		{
			name:      "zero rate is the raw sum",
			cashFlows: []float64{1000, 2500.5, 0, 42},
			rate:      0,
			expected:  3542.5,
			tolerance: 1e-9,
		},
		{
			name:      "three years at ten percent",
			cashFlows: []float64{1000, 1000, 1000},
			rate:      0.10,
			expected:  2486.85,
			tolerance: 0.01,
		},
		{
			name:      "first year is discounted one period",
			cashFlows: []float64{1100},
			rate:      0.10,
			expected:  1000,
			tolerance: 1e-9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, PresentValue(tt.cashFlows, tt.rate), tt.tolerance)
		})
	}
}

func TestPresentValue_SingleFlowAtYear(t *testing.T) {
	const rate = 0.07
	for year := 1; year <= MaxYears; year++ {
		flows := make([]float64, year)
		flows[year-1] = 12345.67

		expected := 12345.67 / math.Pow(1+rate, float64(year))
		assert.Equal(t, expected, PresentValue(flows, rate), "year %d", year)
	}
}

func TestPresentValue_RateOfMinusOneIsNotFinite(t *testing.T) {
	npv := PresentValue([]float64{1000}, -1)
	assert.True(t, math.IsInf(npv, 0) || math.IsNaN(npv))
}

func TestLicensedIP(t *testing.T) {
	flows := []float64{1000, 1000, 1000}
	asset := NewLicensedIP("Licensed IP", flows, 0.10)

	assert.Equal(t, "Licensed IP", asset.Name())
	assert.Equal(t, KindLicensed, asset.Kind())
	assert.Equal(t, 0.10, asset.DiscountRate())
	assert.InDelta(t, 2486.85, asset.NetPresentValue(), 0.01)

	// Constructor and accessor copy the sequence.
	flows[0] = 999999
	got := asset.CashFlows()
	assert.Equal(t, []float64{1000, 1000, 1000}, got)
	got[1] = -1
	assert.Equal(t, []float64{1000, 1000, 1000}, asset.CashFlows())
}

func TestInternalIP(t *testing.T) {
	asset := NewInternalIP("Internal IP", 50000, 3, 0.08)

	assert.Equal(t, KindInternal, asset.Kind())
	assert.Equal(t, 50000.0, asset.SaleValue())
	assert.Equal(t, 3, asset.YearsUntilSale())
	assert.Empty(t, asset.CashFlows())
	assert.InDelta(t, 39691.61, asset.NetPresentValue(), 0.01)
	assert.Equal(t, 50000/math.Pow(1.08, 3), asset.NetPresentValue())
}

func TestInternalIP_ZeroYearsIsUndiscounted(t *testing.T) {
	asset := NewInternalIP("Internal IP", 50000, 0, 0.08)
	assert.Equal(t, 50000.0, asset.NetPresentValue())
}

func TestInternalIP_DecreasingInYearsUntilSale(t *testing.T) {
	for _, rate := range []float64{0.01, 0.08, 0.20} {
		previous := math.Inf(1)
		for years := 1; years <= MaxYears; years++ {
			npv := NewInternalIP("Internal IP", 50000, years, rate).NetPresentValue()
			assert.Less(t, npv, previous, "rate %v years %d", rate, years)
			previous = npv
		}
	}
}

func TestSubscriptionIP(t *testing.T) {
	revenue := []float64{50000, 52000, 54000}
	asset := NewSubscriptionIP("Subscription IP", revenue, 0.20, 0.08)

	assert.Equal(t, KindSubscription, asset.Kind())
	assert.Equal(t, 0.20, asset.Allocation())
	assert.InDeltaSlice(t, []float64{10000, 10400, 10800}, asset.CashFlows(), 1e-9)

	expected := 10000/1.08 + 10400/math.Pow(1.08, 2) + 10800/math.Pow(1.08, 3)
	assert.InDelta(t, expected, asset.NetPresentValue(), 1e-9)
	assert.InDelta(t, 26748.97, asset.NetPresentValue(), 0.01)

	// The allocated flows are derived once; the source slice is not retained.
	revenue[0] = 0
	assert.InDelta(t, expected, asset.NetPresentValue(), 1e-9)
}

func TestSubscriptionIP_LinearInAllocation(t *testing.T) {
	revenue := []float64{50000, 52000, 54000, 56000, 58000}
	full := NewSubscriptionIP("Subscription IP", revenue, 1.0, 0.08).NetPresentValue()

	for _, alpha := range []float64{0, 0.1, 0.2, 0.5, 0.75, 1} {
		npv := NewSubscriptionIP("Subscription IP", revenue, alpha, 0.08).NetPresentValue()
		assert.InDelta(t, alpha*full, npv, 1e-6, "allocation %v", alpha)
	}
}

func TestNetPresentValue_Idempotent(t *testing.T) {
	assets := []Asset{
		NewLicensedIP("a", []float64{1, 2, 3}, 0.05),
		NewInternalIP("b", 1000, 2, 0.05),
		NewSubscriptionIP("c", []float64{10, 20, 30}, 0.3, 0.05),
	}
	twins := []Asset{
		NewLicensedIP("a", []float64{1, 2, 3}, 0.05),
		NewInternalIP("b", 1000, 2, 0.05),
		NewSubscriptionIP("c", []float64{10, 20, 30}, 0.3, 0.05),
	}

	for i, a := range assets {
		first := a.NetPresentValue()
		require.Equal(t, first, a.NetPresentValue())
		assert.Equal(t, first, twins[i].NetPresentValue())
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "licensed", KindLicensed.String())
	assert.Equal(t, "internal", KindInternal.String())
	assert.Equal(t, "subscription", KindSubscription.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
