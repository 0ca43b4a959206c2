// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
// Money fields accept JSON numbers or strings.
package dto

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/guttosm/storefront-service/internal/domain/model"
)

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrSubtotalOrLines is returned when a quote has neither or both of lines and subtotal.
	ErrSubtotalOrLines = &ValidationError{
		Field:   "lines",
		Message: "provide either lines or subtotal",
	}
	// ErrEmptyCart is returned when a subtotal request has no lines.
	ErrEmptyCart = &ValidationError{
		Field:   "lines",
		Message: "must contain at least one line",
	}
	// ErrHoursRequired is returned when a format request has no hours map.
	ErrHoursRequired = &ValidationError{
		Field:   "hours",
		Message: "is required",
	}
	// ErrThresholdRequired is returned when a quote overrides the fee config without a
	// threshold and there are no location settings to take it from.
	ErrThresholdRequired = &ValidationError{
		Field:   "fee_config.free_delivery_threshold",
		Message: "is required when location settings are unavailable",
	}
	// ErrNothingToUpdate is returned when a settings update changes no field.
	ErrNothingToUpdate = &ValidationError{
		Field:   "settings",
		Message: "at least one of name, delivery or hours is required",
	}
)

// CartLineRequest is one cart line.
type CartLineRequest struct {
	ProductID int             `json:"product_id" example:"42"`
	UnitPrice decimal.Decimal `json:"unit_price" swaggertype:"string" example:"12.50"`
	Quantity  int             `json:"quantity" example:"2"`
} // @name CartLineRequest

// ToModel converts the request line to a model.CartLine.
func (l CartLineRequest) ToModel() model.CartLine {
	return model.CartLine{ProductID: l.ProductID, UnitPrice: l.UnitPrice, Quantity: l.Quantity}
}

func toCartLines(lines []CartLineRequest) []model.CartLine {
	out := make([]model.CartLine, len(lines))
	for i, l := range lines {
		out[i] = l.ToModel()
	}
	return out
}

// CartSubtotalRequest represents the JSON request body for the cart subtotal endpoint.
//
// @Description Cart lines to aggregate into a subtotal
// @Example {"lines": [{"product_id": 1, "unit_price": "12.50", "quantity": 2}]}
type CartSubtotalRequest struct {
	Lines []CartLineRequest `json:"lines"`
} // @name CartSubtotalRequest

// Validate performs custom validation on the request.
func (r *CartSubtotalRequest) Validate() error {
	if len(r.Lines) == 0 {
		return ErrEmptyCart
	}
	return nil
}

// CartLines returns the request lines as model values.
func (r *CartSubtotalRequest) CartLines() []model.CartLine {
	return toCartLines(r.Lines)
}

// FeeConfigRequest is a delivery fee configuration.
type FeeConfigRequest struct {
	FeeType               string          `json:"fee_type" example:"per_mile" enums:"flat,per_mile,per_item,combined"`
	FlatFee               decimal.Decimal `json:"flat_fee" swaggertype:"string" example:"4.99"`
	PerMileFee            decimal.Decimal `json:"per_mile_fee" swaggertype:"string" example:"1.50"`
	PerItemFee            decimal.Decimal `json:"per_item_fee" swaggertype:"string" example:"0.75"`
	FreeDeliveryThreshold *decimal.Decimal `json:"free_delivery_threshold,omitempty" swaggertype:"string" example:"50.00"`
} // @name FeeConfigRequest

// HasThreshold reports whether the request sets a free delivery threshold.
func (r FeeConfigRequest) HasThreshold() bool {
	return r.FreeDeliveryThreshold != nil
}

// ToModel converts the request to a model.FeeConfig. An omitted threshold takes
// fallbackThreshold. Unknown fee types are kept as given and rejected by pricing.
func (r FeeConfigRequest) ToModel(fallbackThreshold decimal.Decimal) model.FeeConfig {
	threshold := fallbackThreshold
	if r.FreeDeliveryThreshold != nil {
		threshold = *r.FreeDeliveryThreshold
	}
	feeType, ok := model.ParseFeeType(r.FeeType)
	if !ok {
		feeType = model.FeeType(r.FeeType)
	}
	return model.FeeConfig{
		FeeType:               feeType,
		FlatFee:               r.FlatFee,
		PerMileFee:            r.PerMileFee,
		PerItemFee:            r.PerItemFee,
		FreeDeliveryThreshold: threshold,
	}
}

// DeliveryQuoteRequest represents the JSON request body for the delivery quote endpoint.
//
// Either Lines or Subtotal is required. Without FeeConfig the fee configuration of
// the location (or the default location) is used. ItemCount defaults to the sum of
// line quantities when lines are given.
//
// @Description Request to price delivery for a cart
// @Example {"lines": [{"product_id": 1, "unit_price": "12.50", "quantity": 2}], "distance_miles": 3.2}
type DeliveryQuoteRequest struct {
	LocationID    string            `json:"location_id,omitempty" example:"store-1"`
	Lines         []CartLineRequest `json:"lines,omitempty"`
	Subtotal      *decimal.Decimal  `json:"subtotal,omitempty" swaggertype:"string" example:"60.00"`
	FeeConfig     *FeeConfigRequest `json:"fee_config,omitempty"`
	DistanceMiles *decimal.Decimal  `json:"distance_miles,omitempty" swaggertype:"string" example:"3.2"`
	ItemCount     *int              `json:"item_count,omitempty" example:"4"`
} // @name DeliveryQuoteRequest

// Validate performs custom validation on the request.
func (r *DeliveryQuoteRequest) Validate() error {
	hasLines := len(r.Lines) > 0
	if hasLines == (r.Subtotal != nil) {
		return ErrSubtotalOrLines
	}
	return nil
}

// CartLines returns the request lines as model values.
func (r *DeliveryQuoteRequest) CartLines() []model.CartLine {
	return toCartLines(r.Lines)
}

// Inputs returns the delivery inputs. A missing item count is derived from the
// lines when there are any.
func (r *DeliveryQuoteRequest) Inputs() model.DeliveryInputs {
	in := model.DeliveryInputs{DistanceMiles: r.DistanceMiles, ItemCount: r.ItemCount}
	if in.ItemCount == nil && len(r.Lines) > 0 {
		count := 0
		for _, l := range r.Lines {
			count += l.Quantity
		}
		in = in.WithItemCount(count)
	}
	return in
}

// BatchQuoteItem is one quote of a batch, identified by ID in the response.
type BatchQuoteItem struct {
	ID string `json:"id" example:"cart-1"`
	DeliveryQuoteRequest
} // @name BatchQuoteItem

// BatchQuoteRequest represents the JSON request body for the batch quote endpoint.
type BatchQuoteRequest struct {
	Quotes []BatchQuoteItem `json:"quotes" binding:"required,min=1"`
} // @name BatchQuoteRequest

// FormatHoursRequest represents the JSON request body for the hours format endpoint.
//
// @Description Weekly hours keyed by day name
// @Example {"hours": {"Monday": "10:00 AM - 8:00 PM", "Sat": "11:00 AM - 6:00 PM"}, "include_extended_note": true}
type FormatHoursRequest struct {
	Hours               map[string]string `json:"hours"`
	IncludeExtendedNote bool              `json:"include_extended_note"`
} // @name FormatHoursRequest

// Validate performs custom validation on the request.
func (r *FormatHoursRequest) Validate() error {
	if r.Hours == nil {
		return ErrHoursRequired
	}
	return nil
}

// UpdateSettingsRequest represents the JSON request body for updating store settings.
// Omitted fields keep their current value; an empty hours object closes every day.
type UpdateSettingsRequest struct {
	Name      *string           `json:"name,omitempty" example:"Downtown"`
	Delivery  *FeeConfigRequest `json:"delivery,omitempty"`
	Hours     map[string]string `json:"hours,omitempty"`
	UpdatedBy string            `json:"updated_by,omitempty" example:"ops@example.com"`
} // @name UpdateSettingsRequest

// Validate performs custom validation on the request.
func (r *UpdateSettingsRequest) Validate() error {
	if r.Name == nil && r.Delivery == nil && r.Hours == nil {
		return ErrNothingToUpdate
	}
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return &ValidationError{Field: "name", Message: "must not be blank"}
	}
	return nil
}
