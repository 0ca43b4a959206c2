package http

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/guttosm/storefront-service/internal/domain/dto"
	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/guttosm/storefront-service/internal/middleware"
	"github.com/guttosm/storefront-service/internal/service"
)

// GetSettings handles GET /api/locations/:location_id/settings requests.
//
// @Summary      Get location settings
// @Description  Returns the active settings of a location. Version 0 means no settings were stored and the configured defaults apply.
// @Tags         Settings
// @Produce      json
// @Param        location_id path string true "Store location ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.SettingsResponse} "Active settings"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable - settings storage not configured"
// @Router       /api/locations/{location_id}/settings [get]
func (h *Handler) GetSettings(c *gin.Context) {
	builder := NewResponseBuilder(c)

	settings, err := h.locationSettings(c.Request.Context(), c.Param("location_id"))
	if err != nil {
		builder.Fail(err)
		return
	}

	builder.SuccessOK(dto.NewSettingsResponse(settings))
}

// UpdateSettings handles PUT /api/locations/:location_id/settings requests.
//
// @Summary      Update location settings
// @Description  Stores a new settings version. Omitted fields keep their current value. Requires an admin API key when keys are configured.
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Param        location_id path string true "Store location ID"
// @Param        X-API-Key header string false "Admin API key (required if configured)"
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.UpdateSettingsRequest true "Fields to change"
// @Success      200 {object} dto.SuccessResponse{data=dto.SettingsResponse} "New active settings"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid settings"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable - settings storage not configured"
// @Security     ApiKeyAuth
// @Router       /api/locations/{location_id}/settings [put]
func (h *Handler) UpdateSettings(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if h.settings == nil {
		builder.Fail(service.ErrRepositoryNotConfigured)
		return
	}

	req, ok := bindRequest[dto.UpdateSettingsRequest](c, builder)
	if !ok {
		return
	}

	update := model.SettingsUpdate{Name: req.Name}
	if req.Delivery != nil {
		var threshold decimal.Decimal
		if !req.Delivery.HasThreshold() {
			current, err := h.settings.Get(c.Request.Context(), c.Param("location_id"))
			if err != nil {
				builder.Fail(err)
				return
			}
			threshold = current.Delivery.FreeDeliveryThreshold
		}
		cfg := req.Delivery.ToModel(threshold)
		update.Delivery = &cfg
	}
	if req.Hours != nil {
		hours, err := service.ParseWeeklyHours(req.Hours)
		if err != nil {
			builder.Fail(err)
			return
		}
		update.Hours = hours
	}

	updatedBy := strings.TrimSpace(req.UpdatedBy)
	if updatedBy == "" {
		updatedBy = middleware.GetActor(c)
	}

	locationID := c.Param("location_id")
	saved, err := h.settings.Update(c.Request.Context(), locationID, update, updatedBy)
	if err != nil {
		auditLogError(c, model.ActionUpdateSettings, "Settings update rejected", err, nil)
		builder.Fail(err)
		return
	}

	auditLog(c, model.ActionUpdateSettings, "Settings updated", map[string]interface{}{
		"version":       saved.Version,
		"changed_name":  req.Name != nil,
		"changed_fees":  req.Delivery != nil,
		"changed_hours": req.Hours != nil,
		"updated_by":    updatedBy,
	})

	builder.SuccessOK(dto.NewSettingsResponse(saved))
}

// SettingsHistory handles GET /api/locations/:location_id/settings/history requests.
//
// @Summary      List settings versions
// @Description  Returns stored settings versions of a location, newest first.
// @Tags         Settings
// @Produce      json
// @Param        location_id path string true "Store location ID"
// @Param        limit query int false "Maximum versions to return (default 20, max 100)"
// @Success      200 {object} dto.SuccessResponse{data=dto.SettingsHistoryResponse} "Settings versions"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid limit"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable - settings storage not configured"
// @Router       /api/locations/{location_id}/settings/history [get]
func (h *Handler) SettingsHistory(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if h.settings == nil {
		builder.Fail(service.ErrRepositoryNotConfigured)
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			builder.Fail(&dto.ValidationError{Field: "limit", Message: "must be an integer"})
			return
		}
		limit = n
	}

	locationID := c.Param("location_id")
	versions, err := h.settings.History(c.Request.Context(), locationID, limit)
	if err != nil {
		builder.Fail(err)
		return
	}

	resp := dto.SettingsHistoryResponse{
		LocationID: locationID,
		Versions:   make([]dto.SettingsResponse, len(versions)),
	}
	for i, v := range versions {
		resp.Versions[i] = dto.NewSettingsResponse(v)
	}
	builder.SuccessOK(resp)
}
