package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceFeeRate is the fixed surcharge applied on every subtotal.
var ServiceFeeRate = decimal.RequireFromString("0.05")

type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// TotalsFromSubtotal derives the service fee and grand total. No rounding is applied.
func TotalsFromSubtotal(subtotal decimal.Decimal) Totals {
	tax := subtotal.Mul(ServiceFeeRate)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

// Receipt is what gets printed for the customer once an order is paid.
type Receipt struct {
	Number    string    `json:"number"`
	Order     Order     `json:"order"`
	Totals    Totals    `json:"totals"`
	PrintedAt time.Time `json:"printed_at"`
}

// NewReceipt recomputes the price breakdown from the order snapshot.
func NewReceipt(order Order, at time.Time) Receipt {
	subtotal := decimal.Zero
	for _, item := range order.Items {
		subtotal = subtotal.Add(item.LineTotal())
	}
	return Receipt{
		Number:    "RCP/" + at.Format("20060102") + "/" + order.ID,
		Order:     order.Clone(),
		Totals:    TotalsFromSubtotal(subtotal),
		PrintedAt: at,
	}
}
