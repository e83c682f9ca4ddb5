package models

import "github.com/shopspring/decimal"

// Product is an immutable catalog entry.
type Product struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Category  string          `json:"category"`
	Image     string          `json:"image,omitempty"`
}
