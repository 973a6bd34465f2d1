package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Setting is a stored dashboard default override.
type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ValuationRequest is the JSON body of POST /api/valuation. Rates and
// allocations are fractions. Omitted fields take the dashboard defaults.
type ValuationRequest struct {
	Years             *int      `json:"years,omitempty"`
	DiscountRate      *float64  `json:"discount_rate,omitempty"`
	LicensedCashFlows []float64 `json:"licensed_cash_flows,omitempty"`
	SaleValue         *float64  `json:"sale_value,omitempty"`
	YearsUntilSale    *int      `json:"years_until_sale,omitempty"`
	AppRevenue        []float64 `json:"app_revenue,omitempty"`
	Allocation        *float64  `json:"allocation,omitempty"`
}

// AssetValue is one asset of a valuation response.
type AssetValue struct {
	Name      string            `json:"name"`
	Kind      string            `json:"kind"`
	NPV       decimal.Decimal   `json:"npv" swaggertype:"string"`
	Display   string            `json:"display"`
	CashFlows []decimal.Decimal `json:"cash_flows" swaggertype:"array,string"`
}

// ValuationInputs echoes the clamped inputs a valuation was computed from.
type ValuationInputs struct {
	Years             int               `json:"years"`
	DiscountRate      decimal.Decimal   `json:"discount_rate" swaggertype:"string"`
	LicensedCashFlows []decimal.Decimal `json:"licensed_cash_flows" swaggertype:"array,string"`
	SaleValue         decimal.Decimal   `json:"sale_value" swaggertype:"string"`
	YearsUntilSale    int               `json:"years_until_sale"`
	AppRevenue        []decimal.Decimal `json:"app_revenue" swaggertype:"array,string"`
	Allocation        decimal.Decimal   `json:"allocation" swaggertype:"string"`
}

// ValuationResponse is the JSON result of a portfolio valuation.
type ValuationResponse struct {
	RunID        string          `json:"run_id"`
	Total        decimal.Decimal `json:"total" swaggertype:"string"`
	TotalDisplay string          `json:"total_display"`
	Assets       []AssetValue    `json:"assets"`
	Inputs       ValuationInputs `json:"inputs"`
}
