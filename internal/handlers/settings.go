package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mauv0809/ip-portfolio/internal/models"
	"github.com/mauv0809/ip-portfolio/internal/settings"
	"github.com/mauv0809/ip-portfolio/internal/valuation"
)

// SettingsService manages stored dashboard defaults.
type SettingsService interface {
	Defaults(ctx context.Context) valuation.Defaults
	List(ctx context.Context) ([]models.Setting, error)
	Get(ctx context.Context, key string) (models.Setting, error)
	Set(ctx context.Context, key, value string) (models.Setting, error)
	SetMany(ctx context.Context, values map[string]string) (int, error)
	Delete(ctx context.Context, key string) error
}

// SettingsHandler handles the settings admin endpoints.
type SettingsHandler struct {
	service SettingsService
	log     zerolog.Logger
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(service SettingsService, log zerolog.Logger) *SettingsHandler {
	return &SettingsHandler{
		service: service,
		log:     log.With().Str("component", "settings_handler").Logger(),
	}
}

// Response is the JSON envelope for admin endpoints.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
	Elapsed string `json:"elapsed,omitempty"`
}

// SettingsStatus is the body of GET /admin/settings.
type SettingsStatus struct {
	Settings  []models.Setting   `json:"settings"`
	Effective valuation.Defaults `json:"effective"`
	Keys      []string           `json:"keys"`
}

type settingValue struct {
	Value string `json:"value"`
}

// ListSettings handles GET /admin/settings
// @Summary List settings
// @Description Returns stored overrides and the defaults they produce
// @Tags settings
// @Produce json
// @Success 200 {object} SettingsStatus
// @Failure 500 {object} Response
// @Router /admin/settings [get]
func (h *SettingsHandler) ListSettings(c echo.Context) error {
	ctx := c.Request().Context()

	stored, err := h.service.List(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("Error listing settings")
		return c.JSON(http.StatusInternalServerError, Response{
			Success: false,
			Message: fmt.Sprintf("Failed to list settings: %v", err),
		})
	}
	if stored == nil {
		stored = []models.Setting{}
	}

	return c.JSON(http.StatusOK, SettingsStatus{
		Settings:  stored,
		Effective: h.service.Defaults(ctx),
		Keys:      settings.Keys(),
	})
}

// GetSetting handles GET /admin/settings/:key
// @Summary Get one setting
// @Tags settings
// @Produce json
// @Param key path string true "Setting key"
// @Success 200 {object} models.Setting
// @Failure 404 {object} Response
// @Router /admin/settings/{key} [get]
func (h *SettingsHandler) GetSetting(c echo.Context) error {
	stored, err := h.service.Get(c.Request().Context(), c.Param("key"))
	if err != nil {
		return h.settingError(c, err)
	}

	return c.JSON(http.StatusOK, stored)
}

// PutSetting handles PUT /admin/settings/:key
// Body: {"value": "0.1"}
// @Summary Update one setting
// @Tags settings
// @Accept json
// @Produce json
// @Param key path string true "Setting key"
// @Success 200 {object} models.Setting
// @Failure 400 {object} Response
// @Router /admin/settings/{key} [put]
func (h *SettingsHandler) PutSetting(c echo.Context) error {
	key := c.Param("key")

	var body settingValue
	if err := json.NewDecoder(c.Request().Body).Decode(&body); err != nil {
		return c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Message: "Invalid JSON body: " + err.Error(),
		})
	}

	stored, err := h.service.Set(c.Request().Context(), key, body.Value)
	if err != nil {
		return h.settingError(c, err)
	}

	return c.JSON(http.StatusOK, stored)
}

// PutSettings handles PUT /admin/settings
// Body: {"years": "7", "discount_rate": "0.1"}. Nothing is stored unless
// every value is valid.
// @Summary Update several settings
// @Description Validates every value before storing any of them
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body map[string]string true "Key to value map"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Router /admin/settings [put]
func (h *SettingsHandler) PutSettings(c echo.Context) error {
	start := time.Now()

	var values map[string]string
	if err := json.NewDecoder(c.Request().Body).Decode(&values); err != nil {
		return c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Message: "Invalid JSON body: " + err.Error(),
		})
	}

	count, err := h.service.SetMany(c.Request().Context(), values)
	if err != nil {
		return h.settingError(c, err)
	}

	elapsed := time.Since(start)
	return c.JSON(http.StatusOK, Response{
		Success: true,
		Message: fmt.Sprintf("Successfully updated %d settings", count),
		Count:   count,
		Elapsed: elapsed.String(),
	})
}

// DeleteSetting handles DELETE /admin/settings/:key
// Restores the key's base default.
// @Summary Remove a setting
// @Tags settings
// @Produce json
// @Param key path string true "Setting key"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /admin/settings/{key} [delete]
func (h *SettingsHandler) DeleteSetting(c echo.Context) error {
	key := c.Param("key")

	if err := h.service.Delete(c.Request().Context(), key); err != nil {
		return h.settingError(c, err)
	}

	return c.JSON(http.StatusOK, Response{
		Success: true,
		Message: fmt.Sprintf("Setting %s removed", key),
	})
}

func (h *SettingsHandler) settingError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, settings.ErrUnknownKey), errors.Is(err, settings.ErrInvalidValue):
		status = http.StatusBadRequest
	case errors.Is(err, settings.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, settings.ErrDisabled):
		status = http.StatusServiceUnavailable
	default:
		h.log.Error().Err(err).Msg("Settings operation failed")
	}

	return c.JSON(status, Response{
		Success: false,
		Message: err.Error(),
	})
}
