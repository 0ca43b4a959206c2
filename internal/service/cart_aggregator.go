package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/guttosm/storefront-service/internal/domain/model"
)

// MoneyPlaces is the number of decimal places money is rounded to.
const MoneyPlaces = 2

// Aggregate returns the cart subtotal: the sum of unit price times quantity over
// all lines, rounded once at the end. An empty cart has a zero subtotal.
func Aggregate(lines []model.CartLine) (decimal.Decimal, error) {
	sum := decimal.Zero
	for i, line := range lines {
		if line.Quantity <= 0 {
			return decimal.Zero, invalidInput(fmt.Sprintf("lines[%d].quantity", i), "must be a positive integer")
		}
		if line.UnitPrice.IsNegative() {
			return decimal.Zero, invalidInput(fmt.Sprintf("lines[%d].unit_price", i), "must not be negative")
		}
		sum = sum.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return sum.Round(MoneyPlaces), nil
}

// CountItems returns the total quantity across lines.
func CountItems(lines []model.CartLine) int {
	n := 0
	for _, line := range lines {
		n += line.Quantity
	}
	return n
}
