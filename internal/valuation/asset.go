// Package valuation computes the net present value of IP assets.
//
// Three asset variants are supported: licensed IP with an explicit yearly cash
// flow, internal IP realized as a single future sale, and subscription IP whose
// cash flow is a fixed share of a larger revenue stream. All variants are
// immutable once constructed.
package valuation

import "math"

// Kind identifies an asset variant.
type Kind int

const (
	KindLicensed Kind = iota
	KindInternal
	KindSubscription
)

func (k Kind) String() string {
	switch k {
	case KindLicensed:
		return "licensed"
	case KindInternal:
		return "internal"
	case KindSubscription:
		return "subscription"
	}
	return "unknown"
}

// Asset is anything that can produce a net present value.
// The set of implementations is closed to this package.
type Asset interface {
	Name() string
	Kind() Kind
	// CashFlows returns a copy of the yearly cash flows, year 1 first.
	// Lump-sum assets return an empty slice.
	CashFlows() []float64
	DiscountRate() float64
	NetPresentValue() float64

	sealed()
}

// Discount returns the present value of amount received period years from now.
func Discount(amount, rate float64, period int) float64 {
	return amount / math.Pow(1+rate, float64(period))
}

// PresentValue discounts cashFlows at rate. The first entry is treated as
// received at the end of year 1 and is discounted by one full period.
func PresentValue(cashFlows []float64, rate float64) float64 {
	var total float64
	for i, cf := range cashFlows {
		total += Discount(cf, rate, i+1)
	}
	return total
}

// ipAsset holds the state shared by every variant.
type ipAsset struct {
	name         string
	cashFlows    []float64
	discountRate float64
}

func newIPAsset(name string, cashFlows []float64, rate float64) ipAsset {
	return ipAsset{
		name:         name,
		cashFlows:    cloneFloats(cashFlows),
		discountRate: rate,
	}
}

func (a ipAsset) Name() string          { return a.name }
func (a ipAsset) CashFlows() []float64  { return cloneFloats(a.cashFlows) }
func (a ipAsset) DiscountRate() float64 { return a.discountRate }

// NetPresentValue applies the base discounting formula to the stored cash flows.
func (a ipAsset) NetPresentValue() float64 {
	return PresentValue(a.cashFlows, a.discountRate)
}

func (ipAsset) sealed() {}

// LicensedIP is an asset with an externally specified year-by-year cash flow.
type LicensedIP struct {
	ipAsset
}

// NewLicensedIP creates a licensed asset. cashFlows is copied.
func NewLicensedIP(name string, cashFlows []float64, rate float64) *LicensedIP {
	return &LicensedIP{ipAsset: newIPAsset(name, cashFlows, rate)}
}

func (*LicensedIP) Kind() Kind { return KindLicensed }

// InternalIP is an asset realized as one lump sum at a known future year.
type InternalIP struct {
	ipAsset
	saleValue      float64
	yearsUntilSale int
}

// NewInternalIP creates an internal asset valued by an anticipated sale.
func NewInternalIP(name string, saleValue float64, yearsUntilSale int, rate float64) *InternalIP {
	return &InternalIP{
		ipAsset:        newIPAsset(name, nil, rate),
		saleValue:      saleValue,
		yearsUntilSale: yearsUntilSale,
	}
}

func (*InternalIP) Kind() Kind { return KindInternal }

func (a *InternalIP) SaleValue() float64  { return a.saleValue }
func (a *InternalIP) YearsUntilSale() int { return a.yearsUntilSale }

// NetPresentValue discounts the sale value by the number of years until sale.
// A zero-year sale is not discounted.
func (a *InternalIP) NetPresentValue() float64 {
	return Discount(a.saleValue, a.discountRate, a.yearsUntilSale)
}

// SubscriptionIP is an asset whose cash flow is a fixed share of a larger
// revenue stream.
type SubscriptionIP struct {
	ipAsset
	allocation float64
}

// NewSubscriptionIP scales totalRevenue by allocation once and stores the
// result. Later changes to totalRevenue are not observed.
func NewSubscriptionIP(name string, totalRevenue []float64, allocation float64, rate float64) *SubscriptionIP {
	allocated := make([]float64, len(totalRevenue))
	for i, cf := range totalRevenue {
		allocated[i] = cf * allocation
	}
	return &SubscriptionIP{
		ipAsset:    ipAsset{name: name, cashFlows: allocated, discountRate: rate},
		allocation: allocation,
	}
}

func (*SubscriptionIP) Kind() Kind { return KindSubscription }

func (a *SubscriptionIP) Allocation() float64 { return a.allocation }

func cloneFloats(in []float64) []float64 {
	out := make([]float64, len(in))
	copy(out, in)
	return out
}
