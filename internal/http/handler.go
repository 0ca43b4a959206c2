package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/guttosm/storefront-service/internal/domain/dto"
	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/guttosm/storefront-service/internal/i18n"
	"github.com/guttosm/storefront-service/internal/middleware"
	"github.com/guttosm/storefront-service/internal/service"
)

// DefaultLocationID is used when a quote names no location and no default is configured.
const DefaultLocationID = "default"

// Handler serves the storefront pricing, hours and settings endpoints.
type Handler struct {
	pricer          service.DeliveryPricer
	settings        service.SettingsService
	defaultLocation string
	maxBatchSize    int
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithDefaultLocation sets the location whose settings price quotes that name none.
func WithDefaultLocation(locationID string) HandlerOption {
	return func(h *Handler) {
		if loc := strings.TrimSpace(locationID); loc != "" {
			h.defaultLocation = loc
		}
	}
}

// WithMaxBatchSize limits how many quotes one batch request may carry.
func WithMaxBatchSize(n int) HandlerOption {
	return func(h *Handler) {
		if n > 0 {
			h.maxBatchSize = n
		}
	}
}

// NewHandler creates a Handler. settings may be nil, in which case quotes must carry
// their own fee configuration and the location endpoints report storage unavailable.
func NewHandler(pricer service.DeliveryPricer, settings service.SettingsService, opts ...HandlerOption) *Handler {
	h := &Handler{
		pricer:          pricer,
		settings:        settings,
		defaultLocation: DefaultLocationID,
		maxBatchSize:    service.DefaultMaxBatchSize,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// locationSettings loads the settings of locationID, or of the default location when blank.
func (h *Handler) locationSettings(ctx context.Context, locationID string) (model.StoreSettings, error) {
	if h.settings == nil {
		return model.StoreSettings{}, service.ErrRepositoryNotConfigured
	}
	if strings.TrimSpace(locationID) == "" {
		locationID = h.defaultLocation
	}
	return h.settings.Get(ctx, locationID)
}

// settingsResolver memoizes settings lookups for one request.
type settingsResolver struct {
	h    *Handler
	seen map[string]model.StoreSettings
}

func (h *Handler) newSettingsResolver() *settingsResolver {
	return &settingsResolver{h: h, seen: make(map[string]model.StoreSettings)}
}

// feeConfig returns the request override, or the fee config of the request location.
// An override without a threshold takes the threshold of the location settings.
func (r *settingsResolver) feeConfig(ctx context.Context, req *dto.DeliveryQuoteRequest) (model.FeeConfig, string, error) {
	requested := strings.TrimSpace(req.LocationID)
	override := req.FeeConfig
	if override != nil && override.HasThreshold() {
		return override.ToModel(decimal.Zero), requested, nil
	}
	if override != nil && r.h.settings == nil {
		return model.FeeConfig{}, requested, dto.ErrThresholdRequired
	}

	loc := requested
	if loc == "" {
		loc = r.h.defaultLocation
	}
	s, err := r.settings(ctx, loc)
	if err != nil {
		return model.FeeConfig{}, loc, err
	}
	if override != nil {
		return override.ToModel(s.Delivery.FreeDeliveryThreshold), requested, nil
	}
	return s.Delivery, loc, nil
}

func (r *settingsResolver) settings(ctx context.Context, loc string) (model.StoreSettings, error) {
	if s, ok := r.seen[loc]; ok {
		return s, nil
	}
	s, err := r.h.locationSettings(ctx, loc)
	if err != nil {
		return model.StoreSettings{}, err
	}
	r.seen[loc] = s
	return s, nil
}

// subtotal aggregates the request lines, or returns the given subtotal.
func (h *Handler) subtotal(req *dto.DeliveryQuoteRequest) (model.QuoteRequest, error) {
	if len(req.Lines) > 0 {
		sub, err := h.pricer.Aggregate(req.CartLines())
		if err != nil {
			return model.QuoteRequest{}, err
		}
		return model.QuoteRequest{Subtotal: sub, Inputs: req.Inputs()}, nil
	}
	return model.QuoteRequest{Subtotal: *req.Subtotal, Inputs: req.Inputs()}, nil
}

// auditLog records an action through the logging service the router put in the context.
func auditLog(c *gin.Context, actionType, message string, fields map[string]interface{}) {
	if ls, ok := loggingService(c); ok {
		middleware.AuditLog(ls, c, actionType, message, fields)
	}
}

func auditLogError(c *gin.Context, actionType, message string, err error, fields map[string]interface{}) {
	if ls, ok := loggingService(c); ok {
		middleware.AuditLogError(ls, c, actionType, message, err, fields)
	}
}

func loggingService(c *gin.Context) (service.LoggingService, bool) {
	v, exists := c.Get(LoggingServiceKey)
	if !exists {
		return nil, false
	}
	ls, ok := v.(service.LoggingService)
	return ls, ok && ls != nil
}

// bindRequest decodes and validates the body. It writes the error response and
// returns false when either step fails.
func bindRequest[T any](c *gin.Context, builder *ResponseBuilder) (*T, bool) {
	req, err := BuildRequestAndValidate[T](c)
	if err == nil {
		return req, true
	}

	var vErr *dto.ValidationError
	if errors.As(err, &vErr) {
		builder.Fail(err)
	} else {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
	}
	return nil, false
}
