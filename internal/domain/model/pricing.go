// Package model defines the core domain entities for the storefront service.
package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FeeType selects which delivery fee formula applies.
type FeeType string

// Supported fee types.
const (
	FeeTypeFlat     FeeType = "flat"
	FeeTypePerMile  FeeType = "per_mile"
	FeeTypePerItem  FeeType = "per_item"
	FeeTypeCombined FeeType = "combined"
)

// FeeTypes lists every supported fee type.
var FeeTypes = []FeeType{FeeTypeFlat, FeeTypePerMile, FeeTypePerItem, FeeTypeCombined}

// Valid reports whether t is a supported fee type.
func (t FeeType) Valid() bool {
	switch t {
	case FeeTypeFlat, FeeTypePerMile, FeeTypePerItem, FeeTypeCombined:
		return true
	}
	return false
}

// NeedsDistance reports whether the formula consumes a delivery distance.
func (t FeeType) NeedsDistance() bool {
	return t == FeeTypePerMile || t == FeeTypeCombined
}

// NeedsItemCount reports whether the formula consumes an item count.
func (t FeeType) NeedsItemCount() bool {
	return t == FeeTypePerItem || t == FeeTypeCombined
}

// ParseFeeType normalizes s and returns the fee type it names.
// The second return value is false for unknown values.
func ParseFeeType(s string) (FeeType, bool) {
	t := FeeType(strings.ToLower(strings.TrimSpace(s)))
	return t, t.Valid()
}

// CartLine is a single product line in a shopping cart.
//
// @Description Cart line item
type CartLine struct {
	ProductID int             `json:"product_id" example:"42"`
	UnitPrice decimal.Decimal `json:"unit_price" swaggertype:"string" example:"12.50"`
	Quantity  int             `json:"quantity" example:"2"`
}

// FeeConfig holds the delivery fee settings of a location.
// Only the fields used by FeeType are read; the others are ignored.
type FeeConfig struct {
	FeeType               FeeType         `json:"fee_type"`
	FlatFee               decimal.Decimal `json:"flat_fee"`
	PerMileFee            decimal.Decimal `json:"per_mile_fee"`
	PerItemFee            decimal.Decimal `json:"per_item_fee"`
	FreeDeliveryThreshold decimal.Decimal `json:"free_delivery_threshold"`
}

// DeliveryInputs carries the per-order values some fee types need.
// A nil field means the value was not supplied.
type DeliveryInputs struct {
	DistanceMiles *decimal.Decimal
	ItemCount     *int
}

// WithDistance returns a copy of in with the distance set.
func (in DeliveryInputs) WithDistance(miles decimal.Decimal) DeliveryInputs {
	in.DistanceMiles = &miles
	return in
}

// WithItemCount returns a copy of in with the item count set.
func (in DeliveryInputs) WithItemCount(n int) DeliveryInputs {
	in.ItemCount = &n
	return in
}

// PricingResult is the price breakdown of a delivery order.
// Total always equals Subtotal + DeliveryFee.
type PricingResult struct {
	Subtotal    decimal.Decimal
	DeliveryFee decimal.Decimal
	Total       decimal.Decimal
	FeeType     FeeType
	// FreeDelivery is true when the threshold waived the fee.
	FreeDelivery bool
	// FreeDeliveryRemaining is how much more the cart needs to qualify
	// for free delivery. Zero once it qualifies.
	FreeDeliveryRemaining decimal.Decimal
}

// QuoteRequest is one entry of a batch pricing call.
type QuoteRequest struct {
	ID       string
	Subtotal decimal.Decimal
	Config   FeeConfig
	Inputs   DeliveryInputs
}

// QuoteOutcome is the result of one QuoteRequest.
// Exactly one of Result and Err is set.
type QuoteOutcome struct {
	ID     string
	Result *PricingResult
	Err    error
}
