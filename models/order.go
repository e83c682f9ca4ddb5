package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Status is the fulfillment stage of an order on the board.
type Status string

const (
	StatusEmAnalise  Status = "em_analise"
	StatusEmProducao Status = "em_producao"
	StatusEmEntrega  Status = "em_entrega"
)

// Statuses lists the board stages in pipeline order.
var Statuses = []Status{StatusEmAnalise, StatusEmProducao, StatusEmEntrega}

var ErrUnknownStatus = errors.New("unknown order status")

func (s Status) Valid() bool {
	switch s {
	case StatusEmAnalise, StatusEmProducao, StatusEmEntrega:
		return true
	}
	return false
}

// ParseStatus validates a raw status value.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
	}
	return s, nil
}

// Order is a submitted cart. Only Status changes after creation.
type Order struct {
	ID            string              `json:"id"`
	CustomerName  string              `json:"customer_name"`
	Phone         string              `json:"phone"`
	Address       string              `json:"address"`
	Total         decimal.Decimal     `json:"total"`
	PaymentMethod PaymentMethod       `json:"payment_method"`
	Status        Status              `json:"status"`
	SubmittedAt   string              `json:"submitted_at"`
	Items         []OrderLineSnapshot `json:"items"`
	Notes         string              `json:"notes,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
}

// Clone returns a deep copy so callers never share the items slice.
func (o Order) Clone() Order {
	c := o
	if o.Items != nil {
		c.Items = make([]OrderLineSnapshot, len(o.Items))
		copy(c.Items, o.Items)
	}
	return c
}

// OrderFilter narrows a fetch from the order gateway.
type OrderFilter struct {
	Term   string  `form:"q" json:"term,omitempty"`
	Status *Status `json:"status,omitempty"`
}
