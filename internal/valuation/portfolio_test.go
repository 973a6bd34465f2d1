package valuation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPortfolio_Defaults(t *testing.T) {
	p := BuildPortfolio(DefaultInputs(5))
	require.Equal(t, 3, p.Len())

	vals := p.Valuations()
	require.Len(t, vals, 3)

	assert.Equal(t, LicensedName, vals[0].Name)
	assert.Equal(t, KindLicensed, vals[0].Kind)
	assert.InDelta(t, 39927.10, vals[0].NPV, 0.01)
	assert.Len(t, vals[0].CashFlows, 5)

	assert.Equal(t, InternalName, vals[1].Name)
	assert.Equal(t, KindInternal, vals[1].Kind)
	assert.InDelta(t, 39691.61, vals[1].NPV, 0.01)
	assert.Empty(t, vals[1].CashFlows)

	assert.Equal(t, SubscriptionName, vals[2].Name)
	assert.Equal(t, KindSubscription, vals[2].Kind)
	assert.InDelta(t, 42876.07, vals[2].NPV, 0.01)
	assert.InDeltaSlice(t, []float64{10000, 10400, 10800, 11200, 11600}, vals[2].CashFlows, 1e-9)
}

func TestPortfolio_TotalIsSumOfAssets(t *testing.T) {
	inputs := []Inputs{
		DefaultInputs(3),
		DefaultInputs(10),
		{
			Years:             4,
			DiscountRate:      0.15,
			LicensedCashFlows: []float64{0, 500, 12000, 7},
			SaleValue:         1e6,
			YearsUntilSale:    4,
			AppRevenue:        []float64{1, 2, 3, 4},
			Allocation:        0.9,
		},
	}

	for _, in := range inputs {
		p := BuildPortfolio(in)

		var sum float64
		for _, a := range p.Assets() {
			sum += a.NetPresentValue()
		}
		assert.InDelta(t, sum, p.TotalNPV(), 1e-6)
	}
}

func TestPortfolio_EmptyTotal(t *testing.T) {
	assert.Equal(t, 0.0, NewPortfolio().TotalNPV())
	assert.Empty(t, NewPortfolio().Valuations())
}

func TestPortfolio_AssetsIsACopy(t *testing.T) {
	p := BuildPortfolio(DefaultInputs(5))
	assets := p.Assets()
	assets[0] = nil
	assert.NotNil(t, p.Assets()[0])
}

func TestBuildPortfolio_ClampsBeforeBuilding(t *testing.T) {
	p := BuildPortfolio(Inputs{
		Years:             50,
		DiscountRate:      -1,
		LicensedCashFlows: []float64{-5, math.NaN()},
		SaleValue:         -100,
		YearsUntilSale:    99,
		Allocation:        3,
	})

	vals := p.Valuations()
	require.Len(t, vals, 3)
	assert.Len(t, vals[0].CashFlows, MaxYears)
	assert.Equal(t, 0.0, vals[0].CashFlows[0])
	assert.Equal(t, 10000.0, vals[0].CashFlows[1])
	assert.Equal(t, 0.0, vals[1].NPV)
	assert.False(t, math.IsNaN(p.TotalNPV()))

	for _, a := range p.Assets() {
		assert.Equal(t, MinDiscountRate, a.DiscountRate())
	}
	internal, ok := p.Assets()[1].(*InternalIP)
	require.True(t, ok)
	assert.Equal(t, MaxYears, internal.YearsUntilSale())
	sub, ok := p.Assets()[2].(*SubscriptionIP)
	require.True(t, ok)
	assert.Equal(t, MaxAllocation, sub.Allocation())
}
