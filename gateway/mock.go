package gateway

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/yeremiapane/lachapa-pdv/models"
)

// Mock answers after a fixed delay from its own in-memory list, standing in for
// the real API.
type Mock struct {
	Delay time.Duration

	mu     sync.Mutex
	orders []models.Order
	fail   error
}

func NewMock(delay time.Duration, seed []models.Order) *Mock {
	m := &Mock{Delay: delay}
	for _, o := range seed {
		m.orders = append(m.orders, o.Clone())
	}
	return m
}

// FailWith makes every following call return err; nil restores normal behavior.
func (m *Mock) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fail = err
}

func (m *Mock) wait(ctx context.Context) error {
	if m.Delay > 0 {
		t := time.NewTimer(m.Delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fail
}

func (m *Mock) SubmitOrder(ctx context.Context, order models.Order) error {
	if err := m.wait(ctx); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.orders {
		if m.orders[i].ID == order.ID {
			m.orders[i] = order.Clone()
			return nil
		}
	}
	m.orders = append(m.orders, order.Clone())
	return nil
}

func (m *Mock) UpdateOrderStatus(ctx context.Context, id string, status models.Status) error {
	if err := m.wait(ctx); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.orders {
		if m.orders[i].ID == id {
			m.orders[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}

func (m *Mock) FetchOrders(ctx context.Context, filter models.OrderFilter) ([]models.Order, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	m.mu.Lock()
	all := make([]models.Order, 0, len(m.orders))
	for _, o := range m.orders {
		all = append(all, o.Clone())
	}
	m.mu.Unlock()
	return matches(all, filter), nil
}
