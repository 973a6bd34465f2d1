package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/mauv0809/ip-portfolio/internal/dashboard"
	"github.com/mauv0809/ip-portfolio/internal/models"
	"github.com/mauv0809/ip-portfolio/internal/valuation"
	"github.com/mauv0809/ip-portfolio/internal/views"
)

// DefaultsSource supplies the effective dashboard defaults for a request.
type DefaultsSource interface {
	Defaults(ctx context.Context) valuation.Defaults
}

type Handler struct {
	defaults DefaultsSource
	log      zerolog.Logger
}

func New(defaults DefaultsSource, log zerolog.Logger) *Handler {
	return &Handler{
		defaults: defaults,
		log:      log.With().Str("component", "handlers").Logger(),
	}
}

// Health returns application health status
// @Summary Health check
// @Description Returns the health status of the application
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// Index renders the dashboard for the inputs in the query string.
func (h *Handler) Index(c echo.Context) error {
	d := h.defaults.Defaults(c.Request().Context())
	in := inputsFromQuery(c.QueryParams(), d)

	summary := dashboard.Summarize(valuation.BuildPortfolio(in), in.Years)
	h.log.Debug().
		Int("years", in.Years).
		Float64("discount_rate", in.DiscountRate).
		Float64("total", summary.Total).
		Msg("Rendered dashboard")

	return Render(c, http.StatusOK, views.Index(views.NewIndexPage(in, summary)))
}

// Valuation values a portfolio and returns it as JSON.
// @Summary Value the IP portfolio
// @Description GET reads the dashboard form parameters (percentages); POST reads a JSON body (fractions).
// @Tags valuation
// @Accept json
// @Produce json
// @Param request body models.ValuationRequest false "Valuation inputs"
// @Success 200 {object} models.ValuationResponse
// @Failure 400 {object} Response
// @Router /api/valuation [get]
// @Router /api/valuation [post]
func (h *Handler) Valuation(c echo.Context) error {
	d := h.defaults.Defaults(c.Request().Context())

	var in valuation.Inputs
	if c.Request().Method == http.MethodPost {
		var req models.ValuationRequest
		if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
			return c.JSON(http.StatusBadRequest, Response{
				Success: false,
				Message: "Invalid JSON body: " + err.Error(),
			})
		}
		in = inputsFromRequest(req, d)
	} else {
		in = inputsFromQuery(c.QueryParams(), d)
	}

	summary := dashboard.Summarize(valuation.BuildPortfolio(in), in.Years)
	resp := newValuationResponse(uuid.NewString(), in, summary)

	h.log.Info().
		Str("run_id", resp.RunID).
		Str("total", resp.Total.StringFixed(2)).
		Msg("Portfolio valued")

	return c.JSON(http.StatusOK, resp)
}

func newValuationResponse(runID string, in valuation.Inputs, s dashboard.Summary) models.ValuationResponse {
	resp := models.ValuationResponse{
		RunID:        runID,
		Total:        money(s.Total),
		TotalDisplay: s.TotalDisplay,
		Assets:       make([]models.AssetValue, 0, len(s.Rows)),
		Inputs: models.ValuationInputs{
			Years:             in.Years,
			DiscountRate:      decimal.NewFromFloat(in.DiscountRate),
			LicensedCashFlows: moneySlice(in.LicensedCashFlows),
			SaleValue:         money(in.SaleValue),
			YearsUntilSale:    in.YearsUntilSale,
			AppRevenue:        moneySlice(in.AppRevenue),
			Allocation:        decimal.NewFromFloat(in.Allocation),
		},
	}

	for _, row := range s.Rows {
		resp.Assets = append(resp.Assets, models.AssetValue{
			Name:      row.Name,
			Kind:      row.Kind.String(),
			NPV:       money(row.NPV),
			Display:   row.Display,
			CashFlows: moneySlice(row.CashFlows),
		})
	}

	return resp
}

// money rounds v to cents.
func money(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

func moneySlice(values []float64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = money(v)
	}
	return out
}
