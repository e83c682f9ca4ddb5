// Package store keeps the submitted orders of the outlet in memory.
package store

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/yeremiapane/lachapa-pdv/models"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrStatusChanged = errors.New("order status changed concurrently")
)

// Store owns every submitted order. Orders are handed out as copies.
type Store struct {
	mu     sync.RWMutex
	orders map[string]*models.Order
	order  []string
	seq    map[string]int
}

func New() *Store {
	return &Store{
		orders: make(map[string]*models.Order),
		seq:    make(map[string]int),
	}
}

// Add takes ownership of the order. An existing id is replaced in place.
func (s *Store) Add(order models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(order)
}

func (s *Store) put(order models.Order) {
	o := order.Clone()
	if _, exists := s.orders[o.ID]; !exists {
		s.order = append(s.order, o.ID)
	}
	s.orders[o.ID] = &o
}

// Load merges orders fetched from the gateway, keeping their relative order.
func (s *Store) Load(orders []models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range orders {
		s.put(o)
	}
}

func (s *Store) Get(id string) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return models.Order{}, fmt.Errorf("%w: %s", ErrOrderNotFound, id)
	}
	return o.Clone(), nil
}

// All returns every order in insertion order.
func (s *Store) All() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Order, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.orders[id].Clone())
	}
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// SetStatus is the raw mutation primitive: it accepts any valid status.
// It returns the updated order and the status it had before.
func (s *Store) SetStatus(id string, status models.Status) (models.Order, models.Status, error) {
	if !status.Valid() {
		return models.Order{}, "", fmt.Errorf("%w: %q", models.ErrUnknownStatus, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return models.Order{}, "", fmt.Errorf("%w: %s", ErrOrderNotFound, id)
	}
	prev := o.Status
	o.Status = status
	return o.Clone(), prev, nil
}

// CompareAndSetStatus moves the order to to only while it is still in from.
func (s *Store) CompareAndSetStatus(id string, from, to models.Status) (models.Order, error) {
	if !to.Valid() {
		return models.Order{}, fmt.Errorf("%w: %q", models.ErrUnknownStatus, to)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return models.Order{}, fmt.Errorf("%w: %s", ErrOrderNotFound, id)
	}
	if o.Status != from {
		return models.Order{}, fmt.Errorf("%w: %s is %s, not %s", ErrStatusChanged, id, o.Status, from)
	}
	o.Status = to
	return o.Clone(), nil
}

// Search matches term against id, customer name and phone, ignoring case.
// An empty term returns every order.
func (s *Store) Search(term string) []models.Order {
	return Filter(s.All(), term)
}

// Filter is the search rule applied to an arbitrary slice.
func Filter(orders []models.Order, term string) []models.Order {
	needle := strings.ToLower(term)
	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if needle == "" ||
			strings.Contains(strings.ToLower(o.ID), needle) ||
			strings.Contains(strings.ToLower(o.CustomerName), needle) ||
			strings.Contains(strings.ToLower(o.Phone), needle) {
			out = append(out, o)
		}
	}
	return out
}

// NextTicketNumber issues "YYYYMMDD-NNNN", numbered per calendar day.
func (s *Store) NextTicketNumber(now time.Time) string {
	day := now.Format("20060102")

	s.mu.Lock()
	defer s.mu.Unlock()

	for {
		s.seq[day]++
		id := fmt.Sprintf("%s-%04d", day, s.seq[day])
		if _, taken := s.orders[id]; !taken {
			return id
		}
	}
}
