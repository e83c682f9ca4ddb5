// Package lifecycle moves orders through the fulfillment board:
// em_analise -> em_producao -> em_entrega.
package lifecycle

import (
	"errors"
	"fmt"

	"github.com/yeremiapane/lachapa-pdv/models"
	"github.com/yeremiapane/lachapa-pdv/store"
)

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrFinalStatus       = errors.New("order is already in the last stage")
)

// transitions maps each stage to the only stage it may move to.
var transitions = map[models.Status]models.Status{
	models.StatusEmAnalise:  models.StatusEmProducao,
	models.StatusEmProducao: models.StatusEmEntrega,
}

// Next returns the stage after from. ok is false for the last stage and unknown values.
func Next(from models.Status) (models.Status, bool) {
	to, ok := transitions[from]
	return to, ok
}

// CanTransition allows only the adjacent next stage.
func CanTransition(from, to models.Status) bool {
	next, ok := transitions[from]
	return ok && next == to
}

// Store is the mutation primitive of the order store.
type Store interface {
	Get(id string) (models.Order, error)
	SetStatus(id string, status models.Status) (models.Order, models.Status, error)
	CompareAndSetStatus(id string, from, to models.Status) (models.Order, error)
}

// KitchenPrinter queues a kitchen ticket without waiting for it.
type KitchenPrinter interface {
	KitchenTicket(order models.Order)
}

// Notifier is told about every status change. Implementations must not block.
type Notifier interface {
	OrderStatusChanged(order models.Order, from models.Status)
}

// Machine applies status changes to the store and fires their side effects.
type Machine struct {
	store     Store
	printer   KitchenPrinter
	notifiers []Notifier
}

func NewMachine(store Store, printer KitchenPrinter, notifiers ...Notifier) *Machine {
	return &Machine{store: store, printer: printer, notifiers: notifiers}
}

// MoveOrder sets the status unconditionally, any valid stage is accepted.
// Entering em_producao queues the kitchen ticket; a print failure never
// undoes the move.
func (m *Machine) MoveOrder(id string, status models.Status) (models.Order, error) {
	order, prev, err := m.store.SetStatus(id, status)
	if err != nil {
		return models.Order{}, err
	}
	m.moved(order, prev)
	return order, nil
}

func (m *Machine) moved(order models.Order, prev models.Status) {
	if order.Status == models.StatusEmProducao && m.printer != nil {
		m.printer.KitchenTicket(order)
	}
	for _, n := range m.notifiers {
		n.OrderStatusChanged(order, prev)
	}
}

// Transition moves the order only when to is the adjacent next stage.
func (m *Machine) Transition(id string, to models.Status) (models.Order, error) {
	if !to.Valid() {
		return models.Order{}, fmt.Errorf("%w: %q", models.ErrUnknownStatus, to)
	}
	order, err := m.store.Get(id)
	if err != nil {
		return models.Order{}, err
	}
	if !CanTransition(order.Status, to) {
		return models.Order{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, to)
	}

	// the status may have moved since Get; only one caller wins the step
	moved, err := m.store.CompareAndSetStatus(id, order.Status, to)
	if errors.Is(err, store.ErrStatusChanged) {
		return models.Order{}, fmt.Errorf("%w: %w", ErrInvalidTransition, err)
	}
	if err != nil {
		return models.Order{}, err
	}
	m.moved(moved, order.Status)
	return moved, nil
}

// Advance moves the order to its next stage.
func (m *Machine) Advance(id string) (models.Order, error) {
	order, err := m.store.Get(id)
	if err != nil {
		return models.Order{}, err
	}
	next, ok := Next(order.Status)
	if !ok {
		return models.Order{}, fmt.Errorf("%w: %s", ErrFinalStatus, order.Status)
	}
	return m.Transition(id, next)
}
