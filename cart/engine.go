// Package cart implements the PDV order-entry cart: merging lines, pricing and
// turning a finished cart into a submitted order.
package cart

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/yeremiapane/lachapa-pdv/models"
)

var (
	ErrEmptyCart       = errors.New("cart has no items")
	ErrNoPaymentMethod = errors.New("payment method not selected")
)

// OrderSink receives submitted orders and issues their ticket numbers.
// *store.Store satisfies it.
type OrderSink interface {
	Add(order models.Order)
	NextTicketNumber(now time.Time) string
}

// Cart is a read-only view of the engine state.
type Cart struct {
	Lines         []models.CartLineItem `json:"lines"`
	Customer      *models.Customer      `json:"customer,omitempty"`
	PaymentMethod models.PaymentMethod  `json:"payment_method"`
	Notes         string                `json:"notes"`
	Totals        models.Totals         `json:"totals"`
	CanSubmit     bool                  `json:"can_submit"`
}

// Engine owns one in-progress cart.
type Engine struct {
	mu sync.Mutex

	lines         []models.CartLineItem
	customer      *models.Customer
	paymentMethod models.PaymentMethod
	notes         string

	sink  OrderSink
	now   func() time.Time
	newID func() string
}

func NewEngine(sink OrderSink) *Engine {
	return &Engine{
		sink:  sink,
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
}

// WithClock replaces the time source, used for ticket numbers and "HH:MM" stamps.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// AddItem merges into the line with the same product and notes or appends a new one.
// Quantities below 1 are raised to 1.
func (e *Engine) AddItem(product models.Product, quantity int, notes string) models.CartLineItem {
	if quantity < 1 {
		quantity = 1
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.lines {
		if e.lines[i].Equivalent(product.ID, notes) {
			e.lines[i].Quantity += quantity
			return e.lines[i]
		}
	}

	line := models.CartLineItem{
		ID:        e.newID(),
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.UnitPrice,
		Quantity:  quantity,
		Notes:     notes,
	}
	e.lines = append(e.lines, line)
	return line
}

// RemoveItem deletes the line. Unknown ids are ignored.
func (e *Engine) RemoveItem(lineID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.lines {
		if e.lines[i].ID == lineID {
			e.lines = append(e.lines[:i], e.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity replaces a line quantity. Values below 1 are rejected and
// false is returned; so is an unknown line.
func (e *Engine) SetQuantity(lineID string, quantity int) bool {
	if quantity < 1 {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.lines {
		if e.lines[i].ID == lineID {
			e.lines[i].Quantity = quantity
			return true
		}
	}
	return false
}

func (e *Engine) Increment(lineID string) bool {
	return e.step(lineID, 1)
}

// Decrement never takes a line below 1.
func (e *Engine) Decrement(lineID string) bool {
	return e.step(lineID, -1)
}

func (e *Engine) step(lineID string, delta int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.lines {
		if e.lines[i].ID == lineID {
			if e.lines[i].Quantity+delta < 1 {
				return false
			}
			e.lines[i].Quantity += delta
			return true
		}
	}
	return false
}

func (e *Engine) SetCustomer(c *models.Customer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if c == nil {
		e.customer = nil
		return
	}
	cp := *c
	e.customer = &cp
}

func (e *Engine) SetPaymentMethod(m models.PaymentMethod) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.paymentMethod = m
}

func (e *Engine) SetNotes(notes string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.notes = notes
}

// Totals is recomputed from the lines on every call.
func (e *Engine) Totals() models.Totals {
	e.mu.Lock()
	defer e.mu.Unlock()
	return computeTotals(e.lines)
}

func computeTotals(lines []models.CartLineItem) models.Totals {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.LineTotal())
	}
	return models.TotalsFromSubtotal(subtotal)
}

func (e *Engine) CanSubmit() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.readyErr() == nil
}

func (e *Engine) readyErr() error {
	if len(e.lines) == 0 {
		return ErrEmptyCart
	}
	if e.paymentMethod == models.PaymentNone {
		return ErrNoPaymentMethod
	}
	return nil
}

// Snapshot copies the current cart state.
func (e *Engine) Snapshot() Cart {
	e.mu.Lock()
	defer e.mu.Unlock()

	c := Cart{
		Lines:         append([]models.CartLineItem{}, e.lines...),
		PaymentMethod: e.paymentMethod,
		Notes:         e.notes,
		Totals:        computeTotals(e.lines),
		CanSubmit:     e.readyErr() == nil,
	}
	if e.customer != nil {
		cp := *e.customer
		c.Customer = &cp
	}
	return c
}

// Submit freezes the cart into an order, hands it to the sink and resets the cart.
// Callers are expected to check CanSubmit first; an unready cart yields no order.
func (e *Engine) Submit() (models.Order, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.readyErr(); err != nil {
		return models.Order{}, err
	}

	now := e.now()
	order := models.Order{
		ID:            e.sink.NextTicketNumber(now),
		Total:         computeTotals(e.lines).Total,
		PaymentMethod: e.paymentMethod,
		Status:        models.StatusEmAnalise,
		SubmittedAt:   now.Format("15:04"),
		Notes:         e.notes,
		CreatedAt:     now,
		Items:         make([]models.OrderLineSnapshot, 0, len(e.lines)),
	}
	if e.customer != nil {
		order.CustomerName = e.customer.Name
		order.Phone = e.customer.Phone
		order.Address = e.customer.Address
	}
	for _, l := range e.lines {
		order.Items = append(order.Items, l.Snapshot())
	}

	e.sink.Add(order)
	e.reset()
	return order.Clone(), nil
}

// Clear resets the cart unconditionally.
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reset()
}

func (e *Engine) reset() {
	e.lines = nil
	e.customer = nil
	e.paymentMethod = models.PaymentNone
	e.notes = ""
}
