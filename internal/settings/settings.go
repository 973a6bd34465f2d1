// Package settings manages stored overrides of the dashboard defaults.
package settings

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/mauv0809/ip-portfolio/internal/db"
	"github.com/mauv0809/ip-portfolio/internal/models"
	"github.com/mauv0809/ip-portfolio/internal/valuation"
)

// Setting keys, one per dashboard default.
const (
	KeyYears            = "years"
	KeyDiscountRate     = "discount_rate"
	KeyLicensedCashFlow = "licensed_cash_flow"
	KeySaleValue        = "sale_value"
	KeyYearsUntilSale   = "years_until_sale"
	KeyAppRevenueBase   = "app_revenue_base"
	KeyAppRevenueGrowth = "app_revenue_growth"
	KeyAllocation       = "allocation"
)

var (
	ErrUnknownKey   = errors.New("unknown setting")
	ErrInvalidValue = errors.New("invalid setting value")
	ErrNotFound     = errors.New("setting not stored")
	ErrDisabled     = errors.New("settings storage is not configured")
)

type rule struct {
	integer bool
	min     *decimal.Decimal
	max     *decimal.Decimal
	apply   func(d *valuation.Defaults, v decimal.Decimal)
}

func bound(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

var rules = map[string]rule{
	KeyYears: {
		integer: true, min: bound(valuation.MinYears), max: bound(valuation.MaxYears),
		apply: func(d *valuation.Defaults, v decimal.Decimal) { d.Years = int(v.IntPart()) },
	},
	KeyDiscountRate: {
		min: bound(valuation.MinDiscountRate), max: bound(valuation.MaxDiscountRate),
		apply: func(d *valuation.Defaults, v decimal.Decimal) { d.DiscountRate = v.InexactFloat64() },
	},
	KeyLicensedCashFlow: {
		min:   bound(0),
		apply: func(d *valuation.Defaults, v decimal.Decimal) { d.LicensedCashFlow = v.InexactFloat64() },
	},
	KeySaleValue: {
		min:   bound(0),
		apply: func(d *valuation.Defaults, v decimal.Decimal) { d.SaleValue = v.InexactFloat64() },
	},
	KeyYearsUntilSale: {
		integer: true, min: bound(1), max: bound(valuation.MaxYears),
		apply: func(d *valuation.Defaults, v decimal.Decimal) { d.YearsUntilSale = int(v.IntPart()) },
	},
	KeyAppRevenueBase: {
		min:   bound(0),
		apply: func(d *valuation.Defaults, v decimal.Decimal) { d.AppRevenueBase = v.InexactFloat64() },
	},
	KeyAppRevenueGrowth: {
		apply: func(d *valuation.Defaults, v decimal.Decimal) { d.AppRevenueGrowth = v.InexactFloat64() },
	},
	KeyAllocation: {
		min: bound(valuation.MinAllocation), max: bound(valuation.MaxAllocation),
		apply: func(d *valuation.Defaults, v decimal.Decimal) { d.Allocation = v.InexactFloat64() },
	},
}

// Keys returns the known setting keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(rules))
	for k := range rules {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Parse validates value for key and returns its canonical form.
func Parse(key, value string) (string, error) {
	v, err := parse(key, value)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

func parse(key, value string) (decimal.Decimal, error) {
	r, ok := rules[key]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}

	v, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %s=%q is not a number", ErrInvalidValue, key, value)
	}
	if r.integer && !v.IsInteger() {
		return decimal.Decimal{}, fmt.Errorf("%w: %s must be a whole number", ErrInvalidValue, key)
	}
	if r.min != nil && v.LessThan(*r.min) {
		return decimal.Decimal{}, fmt.Errorf("%w: %s must be at least %s", ErrInvalidValue, key, r.min)
	}
	if r.max != nil && v.GreaterThan(*r.max) {
		return decimal.Decimal{}, fmt.Errorf("%w: %s must be at most %s", ErrInvalidValue, key, r.max)
	}

	return v, nil
}

// Apply overlays stored settings on d. Settings that fail validation are
// skipped and their keys returned.
func Apply(d valuation.Defaults, stored []models.Setting) (valuation.Defaults, []string) {
	var skipped []string
	for _, s := range stored {
		v, err := parse(s.Key, s.Value)
		if err != nil {
			skipped = append(skipped, s.Key)
			continue
		}
		rules[s.Key].apply(&d, v)
	}
	return d.Normalize(), skipped
}

// Store persists settings.
type Store interface {
	ListSettings(ctx context.Context) ([]models.Setting, error)
	GetSetting(ctx context.Context, key string) (models.Setting, error)
	UpsertSetting(ctx context.Context, key, value string) (models.Setting, error)
	UpsertSettings(ctx context.Context, values map[string]string) (int, error)
	DeleteSetting(ctx context.Context, key string) error
}

// Service resolves the effective dashboard defaults.
type Service struct {
	store Store
	base  valuation.Defaults
	log   zerolog.Logger
}

// NewService creates a settings service. A nil store disables overrides and
// Defaults always returns base.
func NewService(store Store, base valuation.Defaults, log zerolog.Logger) *Service {
	return &Service{
		store: store,
		base:  base.Normalize(),
		log:   log.With().Str("component", "settings").Logger(),
	}
}

// Enabled reports whether settings are backed by storage.
func (s *Service) Enabled() bool { return s.store != nil }

// Defaults returns the base defaults with stored overrides applied. Storage
// errors are logged and the base defaults returned.
func (s *Service) Defaults(ctx context.Context) valuation.Defaults {
	if s.store == nil {
		return s.base
	}

	stored, err := s.store.ListSettings(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("Failed to load settings, using base defaults")
		return s.base
	}

	d, skipped := Apply(s.base, stored)
	if len(skipped) > 0 {
		s.log.Warn().Strs("keys", skipped).Msg("Ignoring invalid stored settings")
	}
	return d
}

// List returns every stored setting.
func (s *Service) List(ctx context.Context) ([]models.Setting, error) {
	if s.store == nil {
		return nil, ErrDisabled
	}
	return s.store.ListSettings(ctx)
}

// Get returns the stored override for key.
func (s *Service) Get(ctx context.Context, key string) (models.Setting, error) {
	if s.store == nil {
		return models.Setting{}, ErrDisabled
	}
	if _, ok := rules[key]; !ok {
		return models.Setting{}, fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}

	stored, err := s.store.GetSetting(ctx, key)
	if err != nil {
		return models.Setting{}, storeError(key, err)
	}
	return stored, nil
}

// Set validates and stores one setting.
func (s *Service) Set(ctx context.Context, key, value string) (models.Setting, error) {
	if s.store == nil {
		return models.Setting{}, ErrDisabled
	}

	canonical, err := Parse(key, value)
	if err != nil {
		return models.Setting{}, err
	}

	stored, err := s.store.UpsertSetting(ctx, key, canonical)
	if err != nil {
		return models.Setting{}, err
	}

	s.log.Info().Str("key", key).Str("value", canonical).Msg("Setting updated")
	return stored, nil
}

// SetMany validates every value before storing any of them.
func (s *Service) SetMany(ctx context.Context, values map[string]string) (int, error) {
	if s.store == nil {
		return 0, ErrDisabled
	}

	canonical := make(map[string]string, len(values))
	for key, value := range values {
		v, err := Parse(key, value)
		if err != nil {
			return 0, err
		}
		canonical[key] = v
	}

	count, err := s.store.UpsertSettings(ctx, canonical)
	if err != nil {
		return count, err
	}

	s.log.Info().Int("count", count).Msg("Settings updated")
	return count, nil
}

// Delete removes a stored setting, restoring its base default.
func (s *Service) Delete(ctx context.Context, key string) error {
	if s.store == nil {
		return ErrDisabled
	}
	if _, ok := rules[key]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	if err := s.store.DeleteSetting(ctx, key); err != nil {
		return storeError(key, err)
	}

	s.log.Info().Str("key", key).Msg("Setting removed")
	return nil
}

func storeError(key string, err error) error {
	if errors.Is(err, db.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return err
}
