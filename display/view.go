package display

import (
	"time"

	"github.com/yeremiapane/lachapa-pdv/models"
	"github.com/yeremiapane/lachapa-pdv/store"
	"github.com/yeremiapane/lachapa-pdv/utils"
)

// OrderCard is an order plus its derived board fields.
type OrderCard struct {
	models.Order
	StatusLabel     string `json:"status_label"`
	StatusClass     string `json:"status_class"`
	PaymentLabel    string `json:"payment_label"`
	PaymentClass    string `json:"payment_class"`
	TotalFormatted  string `json:"total_formatted"`
	WaitTimeMinutes int    `json:"wait_time_minutes"`
}

// Column is one board column, ready for rendering.
type Column struct {
	Status models.Status `json:"status"`
	Label  string        `json:"label"`
	Orders []OrderCard   `json:"orders"`
}

func Card(o models.Order, now time.Time) OrderCard {
	return OrderCard{
		Order:           o,
		StatusLabel:     StatusLabel(string(o.Status)),
		StatusClass:     StatusClass(string(o.Status)),
		PaymentLabel:    PaymentLabel(string(o.PaymentMethod)),
		PaymentClass:    PaymentClass(string(o.PaymentMethod)),
		TotalFormatted:  utils.FormatCurrencyBRL(o.Total),
		WaitTimeMinutes: WaitTimeMinutes(o.SubmittedAt, now),
	}
}

func Cards(orders []models.Order, now time.Time) []OrderCard {
	out := make([]OrderCard, 0, len(orders))
	for _, o := range orders {
		out = append(out, Card(o, now))
	}
	return out
}

// Columns renders a partitioned board in pipeline order.
func Columns(b store.Board, now time.Time) []Column {
	cols := make([]Column, 0, len(models.Statuses))
	for _, s := range models.Statuses {
		cols = append(cols, Column{
			Status: s,
			Label:  StatusLabel(string(s)),
			Orders: Cards(b.Column(s), now),
		})
	}
	return cols
}
