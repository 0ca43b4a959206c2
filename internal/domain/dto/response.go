package dto

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/guttosm/storefront-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInvalidConfig indicates an unusable delivery fee configuration.
	ErrCodeInvalidConfig = "invalid_config"
	// ErrCodeServiceUnavailable indicates a backing store is not available.
	ErrCodeServiceUnavailable = "service_unavailable"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeForbidden indicates insufficient permissions.
	ErrCodeForbidden = "forbidden"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the endpoint specific payload
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2026-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"distance_miles: is required for fee type per_mile"`
	// Details maps the offending field to its problem
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2026-01-28T10:00:00Z"`
	TraceID   string            `json:"trace_id,omitempty" example:"trace-123"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// WithDetails attaches field level details to the error response.
func (e ErrorResponse) WithDetails(details map[string]string) ErrorResponse {
	e.Details = details
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	case http.StatusServiceUnavailable:
		return ErrCodeServiceUnavailable
	default:
		return ErrCodeInternal
	}
}

// Money renders an amount with exactly two decimals, e.g. "67.50".
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// CartSubtotalResponse is the payload of the cart subtotal endpoint.
type CartSubtotalResponse struct {
	Subtotal  string `json:"subtotal" example:"25.00"`
	ItemCount int    `json:"item_count" example:"2"`
} // @name CartSubtotalResponse

// DeliveryQuoteResponse is the price breakdown of one delivery quote.
type DeliveryQuoteResponse struct {
	LocationID            string `json:"location_id,omitempty" example:"store-1"`
	Subtotal              string `json:"subtotal" example:"60.00"`
	DeliveryFee           string `json:"delivery_fee" example:"7.50"`
	Total                 string `json:"total" example:"67.50"`
	FeeType               string `json:"fee_type" example:"per_mile"`
	FreeDelivery          bool   `json:"free_delivery" example:"false"`
	FreeDeliveryRemaining string `json:"free_delivery_remaining" example:"39.00"`
} // @name DeliveryQuoteResponse

// NewDeliveryQuoteResponse converts a pricing result.
func NewDeliveryQuoteResponse(r model.PricingResult) DeliveryQuoteResponse {
	return DeliveryQuoteResponse{
		Subtotal:              Money(r.Subtotal),
		DeliveryFee:           Money(r.DeliveryFee),
		Total:                 Money(r.Total),
		FeeType:               string(r.FeeType),
		FreeDelivery:          r.FreeDelivery,
		FreeDeliveryRemaining: Money(r.FreeDeliveryRemaining),
	}
}

// BatchQuoteResult is the outcome of one quote in a batch. Exactly one of
// Quote and Error is set.
type BatchQuoteResult struct {
	ID    string                 `json:"id" example:"cart-1"`
	Quote *DeliveryQuoteResponse `json:"quote,omitempty"`
	Error *ErrorResponse         `json:"error,omitempty"`
} // @name BatchQuoteResult

// BatchQuoteResponse is the payload of the batch quote endpoint.
type BatchQuoteResponse struct {
	Results   []BatchQuoteResult `json:"results"`
	Succeeded int                `json:"succeeded" example:"2"`
	Failed    int                `json:"failed" example:"0"`
} // @name BatchQuoteResponse

// HoursResponse is a formatted weekly schedule.
type HoursResponse struct {
	LocationID    string            `json:"location_id,omitempty" example:"store-1"`
	Summary       string            `json:"summary" example:"Weekdays: 10:00 AM - 8:00 PM | Weekend: 11:00 AM - 6:00 PM"`
	ExtendedHours bool              `json:"extended_hours" example:"false"`
	ExtendedNote  string            `json:"extended_note,omitempty" example:"Friday 10:00 AM - 2:00 AM & Saturday 10:00 AM - 2:00 AM"`
	Hours         map[string]string `json:"hours"`
} // @name HoursResponse

// FeeConfigResponse is a delivery fee configuration with amounts as strings.
type FeeConfigResponse struct {
	FeeType               string `json:"fee_type" example:"flat"`
	FlatFee               string `json:"flat_fee" example:"4.99"`
	PerMileFee            string `json:"per_mile_fee" example:"0.00"`
	PerItemFee            string `json:"per_item_fee" example:"0.00"`
	FreeDeliveryThreshold string `json:"free_delivery_threshold" example:"50.00"`
} // @name FeeConfigResponse

// NewFeeConfigResponse converts a fee configuration.
func NewFeeConfigResponse(c model.FeeConfig) FeeConfigResponse {
	return FeeConfigResponse{
		FeeType:               string(c.FeeType),
		FlatFee:               Money(c.FlatFee),
		PerMileFee:            Money(c.PerMileFee),
		PerItemFee:            Money(c.PerItemFee),
		FreeDeliveryThreshold: Money(c.FreeDeliveryThreshold),
	}
}

// SettingsResponse is one version of a location's settings. Version 0 means
// the configured defaults are in effect.
type SettingsResponse struct {
	LocationID string            `json:"location_id" example:"store-1"`
	Name       string            `json:"name" example:"Downtown"`
	Delivery   FeeConfigResponse `json:"delivery"`
	Hours      map[string]string `json:"hours"`
	Version    int               `json:"version" example:"3"`
	Active     bool              `json:"active" example:"true"`
	CreatedAt  *time.Time        `json:"created_at,omitempty"`
	UpdatedAt  *time.Time        `json:"updated_at,omitempty"`
	UpdatedBy  string            `json:"updated_by,omitempty" example:"ops@example.com"`
} // @name SettingsResponse

// NewSettingsResponse converts store settings.
func NewSettingsResponse(s model.StoreSettings) SettingsResponse {
	resp := SettingsResponse{
		LocationID: s.LocationID,
		Name:       s.Name,
		Delivery:   NewFeeConfigResponse(s.Delivery),
		Hours:      HoursMap(s.Hours),
		Version:    s.Version,
		Active:     s.Active,
		UpdatedBy:  s.UpdatedBy,
	}
	if !s.CreatedAt.IsZero() {
		created := s.CreatedAt
		resp.CreatedAt = &created
	}
	if !s.UpdatedAt.IsZero() {
		updated := s.UpdatedAt
		resp.UpdatedAt = &updated
	}
	return resp
}

// SettingsHistoryResponse lists settings versions, newest first.
type SettingsHistoryResponse struct {
	LocationID string             `json:"location_id" example:"store-1"`
	Versions   []SettingsResponse `json:"versions"`
} // @name SettingsHistoryResponse

// HoursMap keys hours by full day name. It never returns nil.
func HoursMap(hours model.WeeklyHours) map[string]string {
	out := make(map[string]string, len(hours))
	for _, day := range model.Week {
		if h, ok := hours[day]; ok {
			out[day.String()] = h
		}
	}
	return out
}
