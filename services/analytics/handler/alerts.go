package handler

import (
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/picmoney/dashboard-api/internal/pkg/models"
	"github.com/picmoney/dashboard-api/internal/utils"
)

// alertStore holds the dashboard alerting thresholds. Settings live in
// process memory only; a restart resets them to the configured defaults.
type alertStore struct {
	mu       sync.RWMutex
	settings models.AlertSettings
}

func newAlertStore(defaults models.AlertsConfig) *alertStore {
	return &alertStore{
		settings: models.AlertSettings{
			MinRevenue:            defaults.MinRevenue,
			MaxCouponUsagePercent: defaults.MaxCouponUsagePercent,
		},
	}
}

func (s *alertStore) get() models.AlertSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

func (s *alertStore) update(update alertSettingsUpdate) models.AlertSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	if update.MinRevenue != nil {
		s.settings.MinRevenue = *update.MinRevenue
	}
	if update.MaxCouponUsagePercent != nil {
		s.settings.MaxCouponUsagePercent = *update.MaxCouponUsagePercent
	}
	return s.settings
}

// alertSettingsUpdate is a partial-update payload; absent fields keep their
// current value
type alertSettingsUpdate struct {
	MinRevenue            *float64 `json:"minRevenue"`
	MaxCouponUsagePercent *float64 `json:"maxCouponUsagePercent"`
}

// GetAlertSettings handles the alert threshold read request
func (h *AnalyticsHandler) GetAlertSettings(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Alert settings retrieved successfully", h.alerts.get())
}

// UpdateAlertSettings handles the alert threshold update request
func (h *AnalyticsHandler) UpdateAlertSettings(c echo.Context) error {
	var update alertSettingsUpdate
	if err := c.Bind(&update); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	settings := h.alerts.update(update)
	return utils.SuccessResponse(c, http.StatusOK, "Alert settings updated successfully", settings)
}
