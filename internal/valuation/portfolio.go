package valuation

import "gonum.org/v1/gonum/floats"

// Display names of the portfolio assets, in portfolio order.
const (
	LicensedName     = "Licensed IP"
	InternalName     = "Internal IP"
	SubscriptionName = "Subscription IP"
)

// AssetValuation is the valuation result for one asset.
type AssetValuation struct {
	Name      string
	Kind      Kind
	NPV       float64
	CashFlows []float64
}

// Portfolio is an ordered, fixed set of assets valued at one discount rate.
type Portfolio struct {
	assets []Asset
}

// NewPortfolio groups assets in the given order.
func NewPortfolio(assets ...Asset) Portfolio {
	return Portfolio{assets: append([]Asset(nil), assets...)}
}

// BuildPortfolio clamps in and builds one asset of each variant from it:
// licensed, internal, subscription.
func BuildPortfolio(in Inputs) Portfolio {
	in = in.Clamp()
	return NewPortfolio(
		NewLicensedIP(LicensedName, in.LicensedCashFlows, in.DiscountRate),
		NewInternalIP(InternalName, in.SaleValue, in.YearsUntilSale, in.DiscountRate),
		NewSubscriptionIP(SubscriptionName, in.AppRevenue, in.Allocation, in.DiscountRate),
	)
}

// Assets returns the assets in portfolio order.
func (p Portfolio) Assets() []Asset {
	return append([]Asset(nil), p.assets...)
}

// Len returns the number of assets.
func (p Portfolio) Len() int { return len(p.assets) }

// TotalNPV is the sum of the individual asset NPVs.
func (p Portfolio) TotalNPV() float64 {
	values := make([]float64, len(p.assets))
	for i, a := range p.assets {
		values[i] = a.NetPresentValue()
	}
	return floats.Sum(values)
}

// Valuations values every asset, in portfolio order.
func (p Portfolio) Valuations() []AssetValuation {
	out := make([]AssetValuation, 0, len(p.assets))
	for _, a := range p.assets {
		out = append(out, AssetValuation{
			Name:      a.Name(),
			Kind:      a.Kind(),
			NPV:       a.NetPresentValue(),
			CashFlows: a.CashFlows(),
		})
	}
	return out
}
