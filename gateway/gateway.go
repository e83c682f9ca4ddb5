// Package gateway is the boundary to the order API. Calls block until the
// collaborator answers or ctx is done; callers that must not wait run them in
// the background.
package gateway

import (
	"context"
	"errors"

	"github.com/yeremiapane/lachapa-pdv/models"
	"github.com/yeremiapane/lachapa-pdv/store"
)

var ErrNotFound = errors.New("order not found in gateway")

type OrderGateway interface {
	SubmitOrder(ctx context.Context, order models.Order) error
	UpdateOrderStatus(ctx context.Context, id string, status models.Status) error
	FetchOrders(ctx context.Context, filter models.OrderFilter) ([]models.Order, error)
}

// matches applies an OrderFilter the same way the board search does.
func matches(orders []models.Order, filter models.OrderFilter) []models.Order {
	out := store.Filter(orders, filter.Term)
	if filter.Status == nil {
		return out
	}
	kept := out[:0]
	for _, o := range out {
		if o.Status == *filter.Status {
			kept = append(kept, o)
		}
	}
	return kept
}
