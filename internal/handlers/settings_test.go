package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauv0809/ip-portfolio/internal/db"
	"github.com/mauv0809/ip-portfolio/internal/models"
	"github.com/mauv0809/ip-portfolio/internal/settings"
	"github.com/mauv0809/ip-portfolio/internal/valuation"
)

type memoryStore map[string]string

func (m memoryStore) ListSettings(context.Context) ([]models.Setting, error) {
	out := make([]models.Setting, 0, len(m))
	for k, v := range m {
		out = append(out, models.Setting{Key: k, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

func (m memoryStore) GetSetting(_ context.Context, key string) (models.Setting, error) {
	v, ok := m[key]
	if !ok {
		return models.Setting{}, db.ErrNotFound
	}
	return models.Setting{Key: key, Value: v}, nil
}

func (m memoryStore) UpsertSetting(_ context.Context, key, value string) (models.Setting, error) {
	m[key] = value
	return models.Setting{Key: key, Value: value}, nil
}

func (m memoryStore) UpsertSettings(_ context.Context, values map[string]string) (int, error) {
	for k, v := range values {
		m[k] = v
	}
	return len(values), nil
}

func (m memoryStore) DeleteSetting(_ context.Context, key string) error {
	if _, ok := m[key]; !ok {
		return db.ErrNotFound
	}
	delete(m, key)
	return nil
}

func newSettingsServer(store memoryStore) (*settings.Service, *SettingsHandler) {
	svc := settings.NewService(store, valuation.StandardDefaults(), zerolog.Nop())
	return svc, NewSettingsHandler(svc, zerolog.Nop())
}

func TestSettings_ListEmpty(t *testing.T) {
	_, sh := newSettingsServer(memoryStore{})
	e := newTestServer(valuation.StandardDefaults(), sh)

	rec := do(e, http.MethodGet, "/admin/settings", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var status SettingsStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Empty(t, status.Settings)
	assert.Equal(t, valuation.StandardDefaults(), status.Effective)
	assert.Equal(t, settings.Keys(), status.Keys)
}

func TestSettings_PutAndList(t *testing.T) {
	store := memoryStore{}
	_, sh := newSettingsServer(store)
	e := newTestServer(valuation.StandardDefaults(), sh)

	rec := do(e, http.MethodPut, "/admin/settings/discount_rate", `{"value": "0.120"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0.12", store["discount_rate"])

	rec = do(e, http.MethodGet, "/admin/settings", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var status SettingsStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	require.Len(t, status.Settings, 1)
	assert.Equal(t, 0.12, status.Effective.DiscountRate)
}

func TestSettings_PutMany(t *testing.T) {
	store := memoryStore{}
	_, sh := newSettingsServer(store)
	e := newTestServer(valuation.StandardDefaults(), sh)

	rec := do(e, http.MethodPut, "/admin/settings", `{"years": "7", "allocation": "0.5"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, "7", store["years"])
}

func TestSettings_Errors(t *testing.T) {
	store := memoryStore{}
	_, sh := newSettingsServer(store)
	e := newTestServer(valuation.StandardDefaults(), sh)

	tests := []struct {
		name   string
		method string
		target string
		body   string
		status int
	}{
		{"unknown key", http.MethodPut, "/admin/settings/colour", `{"value": "blue"}`, http.StatusBadRequest},
		{"out of range", http.MethodPut, "/admin/settings/years", `{"value": "12"}`, http.StatusBadRequest},
		{"bad json", http.MethodPut, "/admin/settings/years", `{`, http.StatusBadRequest},
		{"bulk with one bad value", http.MethodPut, "/admin/settings", `{"years": "7", "allocation": "3"}`, http.StatusBadRequest},
		{"delete missing", http.MethodDelete, "/admin/settings/years", "", http.StatusNotFound},
		{"delete unknown", http.MethodDelete, "/admin/settings/colour", "", http.StatusBadRequest},
		{"get missing", http.MethodGet, "/admin/settings/years", "", http.StatusNotFound},
		{"get unknown", http.MethodGet, "/admin/settings/colour", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(e, tt.method, tt.target, tt.body)
			assert.Equal(t, tt.status, rec.Code)

			var resp Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.NotEmpty(t, resp.Message)
		})
	}
	assert.Empty(t, store)
}

func TestSettings_Get(t *testing.T) {
	_, sh := newSettingsServer(memoryStore{"allocation": "0.35"})
	e := newTestServer(valuation.StandardDefaults(), sh)

	rec := do(e, http.MethodGet, "/admin/settings/allocation", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var s models.Setting
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
	assert.Equal(t, "allocation", s.Key)
	assert.Equal(t, "0.35", s.Value)
}

func TestSettings_Delete(t *testing.T) {
	store := memoryStore{"years": "9"}
	_, sh := newSettingsServer(store)
	e := newTestServer(valuation.StandardDefaults(), sh)

	rec := do(e, http.MethodDelete, "/admin/settings/years", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, store)
}

func TestSettings_RoutesAbsentWithoutStorage(t *testing.T) {
	e := newTestServer(valuation.StandardDefaults(), nil)
	rec := do(e, http.MethodGet, "/admin/settings", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSettings_OverridesFlowIntoValuation(t *testing.T) {
	store := memoryStore{"years": "4"}
	svc, sh := newSettingsServer(store)

	e := newTestServer(valuation.StandardDefaults(), sh)
	e.GET("/api/effective", New(svc, zerolog.Nop()).Valuation)

	rec := do(e, http.MethodGet, "/api/effective", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ValuationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.Inputs.Years)
}
