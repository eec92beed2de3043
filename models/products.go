package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Product represents one catalog item entered through the entry form.
// The code identifies the product and is unique.
type Product struct {
	Code        string          `gorm:"primaryKey;not null"`
	Category    string          `gorm:"not null;index:idx_product_category"`
	Description string          `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

func (p *Product) TableName() string {
	return "product"
}

// ErrInvalidPrice is returned when a submitted price is not a DECIMAL(10,2) value.
var ErrInvalidPrice = errors.New("invalid price")

var maxPrice = decimal.New(1, 8)

// ParsePrice parses a form price. It accepts at most two fractional digits
// and eight integer digits, matching the price column.
func ParsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, ErrInvalidPrice
	}
	if !price.Equal(price.Truncate(2)) || price.Abs().GreaterThanOrEqual(maxPrice) {
		return decimal.Decimal{}, ErrInvalidPrice
	}
	return price, nil
}
