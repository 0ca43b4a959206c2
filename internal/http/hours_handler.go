package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/storefront-service/internal/domain/dto"
	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/guttosm/storefront-service/internal/metrics"
	"github.com/guttosm/storefront-service/internal/service"
)

// FormatHours handles POST /api/store-hours/format requests.
//
// @Summary      Format weekly store hours
// @Description  Groups days with identical hours into a compact summary such as "Weekdays: 10:00 AM - 8:00 PM | Weekend: 11:00 AM - 6:00 PM". Day keys are full names or three letter abbreviations in any case. With include_extended_note, Friday and Saturday hours that close later than the rest of the week are called out.
// @Tags         Hours
// @Accept       json
// @Produce      json
// @Param        request body dto.FormatHoursRequest true "Weekly hours"
// @Success      200 {object} dto.SuccessResponse{data=dto.HoursResponse} "Formatted hours"
// @Failure      400 {object} dto.ErrorResponse "Bad request - unknown day"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/store-hours/format [post]
func (h *Handler) FormatHours(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, ok := bindRequest[dto.FormatHoursRequest](c, builder)
	if !ok {
		return
	}

	hours, err := service.ParseWeeklyHours(req.Hours)
	if err != nil {
		metrics.RecordHoursFormat("validation_error")
		builder.Fail(err)
		return
	}

	builder.SuccessOK(newHoursResponse("", hours, req.IncludeExtendedNote))
}

// LocationHours handles GET /api/locations/:location_id/hours requests.
//
// @Summary      Get the formatted hours of a location
// @Description  Formats the weekly hours stored in the location settings, or the configured default hours.
// @Tags         Hours
// @Produce      json
// @Param        location_id path string true "Store location ID"
// @Param        extended query bool false "Include the extended weekend hours note"
// @Success      200 {object} dto.SuccessResponse{data=dto.HoursResponse} "Formatted hours"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid query"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable - settings storage not configured"
// @Router       /api/locations/{location_id}/hours [get]
func (h *Handler) LocationHours(c *gin.Context) {
	builder := NewResponseBuilder(c)

	extended := false
	if raw := c.Query("extended"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			builder.Fail(&dto.ValidationError{Field: "extended", Message: "must be a boolean"})
			return
		}
		extended = v
	}

	settings, err := h.locationSettings(c.Request.Context(), c.Param("location_id"))
	if err != nil {
		builder.Fail(err)
		return
	}

	builder.SuccessOK(newHoursResponse(settings.LocationID, settings.Hours, extended))
}

func newHoursResponse(locationID string, hours model.WeeklyHours, includeNote bool) dto.HoursResponse {
	summary := service.FormatHours(hours, includeNote)
	if summary == service.HoursNotAvailable {
		metrics.RecordHoursFormat("not_available")
	} else {
		metrics.RecordHoursFormat("success")
	}

	resp := dto.HoursResponse{
		LocationID:    locationID,
		Summary:       summary,
		ExtendedHours: service.HasExtendedWeekendHours(hours),
		Hours:         dto.HoursMap(hours),
	}
	if includeNote && resp.ExtendedHours {
		resp.ExtendedNote, _ = service.FormatExtendedHoursNote(hours)
	}
	return resp
}
