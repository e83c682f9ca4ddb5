package models

import "github.com/shopspring/decimal"

// CartLineItem is one row of an in-progress cart.
type CartLineItem struct {
	ID        string          `json:"id"`
	ProductID int             `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Notes     string          `json:"notes"`
}

// Equivalent reports whether two lines describe the same configuration.
// Notes are compared exactly, case included.
func (l CartLineItem) Equivalent(productID int, notes string) bool {
	return l.ProductID == productID && l.Notes == notes
}

// LineTotal returns unit price times quantity.
func (l CartLineItem) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// OrderLineSnapshot is the frozen copy of a cart line kept by a submitted order.
type OrderLineSnapshot struct {
	ID        string          `json:"id"`
	ProductID int             `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Notes     string          `json:"notes,omitempty"`
}

func (s OrderLineSnapshot) LineTotal() decimal.Decimal {
	return s.UnitPrice.Mul(decimal.NewFromInt(int64(s.Quantity)))
}

// Snapshot freezes a cart line.
func (l CartLineItem) Snapshot() OrderLineSnapshot {
	return OrderLineSnapshot{
		ID:        l.ID,
		ProductID: l.ProductID,
		Name:      l.Name,
		UnitPrice: l.UnitPrice,
		Quantity:  l.Quantity,
		Notes:     l.Notes,
	}
}
