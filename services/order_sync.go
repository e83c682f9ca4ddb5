package services

import (
	"context"
	"time"

	"github.com/yeremiapane/lachapa-pdv/gateway"
	"github.com/yeremiapane/lachapa-pdv/models"
	"github.com/yeremiapane/lachapa-pdv/store"
	"github.com/yeremiapane/lachapa-pdv/utils"
)

// PendingChecker tells whether a local change of the order has not reached
// the API yet. *GatewayMonitor satisfies it.
type PendingChecker interface {
	HasPending(id string) bool
}

// OrderSync pulls the order list from the API into the store.
type OrderSync struct {
	Gateway  gateway.OrderGateway
	Store    *store.Store
	Pending  PendingChecker
	Timeout  time.Duration
	Interval time.Duration
	StopChan chan struct{}
}

func NewOrderSync(gw gateway.OrderGateway, st *store.Store, timeout time.Duration) *OrderSync {
	return &OrderSync{
		Gateway:  gw,
		Store:    st,
		Timeout:  timeout,
		StopChan: make(chan struct{}),
	}
}

// Start syncs once right away and then every Interval. Interval 0 means once.
func (s *OrderSync) Start() {
	go func() {
		s.syncLogged()
		if s.Interval <= 0 {
			return
		}

		ticker := time.NewTicker(s.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.syncLogged()
			case <-s.StopChan:
				return
			}
		}
	}()
}

func (s *OrderSync) Stop() {
	close(s.StopChan)
}

func (s *OrderSync) syncLogged() {
	n, err := s.Sync(context.Background())
	if err != nil {
		utils.ErrorLogger.Printf("Failed to load orders from API: %v", err)
		return
	}
	utils.InfoLogger.Debugf("Loaded %d orders from API", n)
}

// Sync merges the API list into the store and returns how many orders it
// merged. Orders only known locally stay where they are, and orders with a
// change still queued for the API keep their local state.
// On error the store is left untouched.
func (s *OrderSync) Sync(ctx context.Context) (int, error) {
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	fetched, err := s.Gateway.FetchOrders(ctx, models.OrderFilter{})
	if err != nil {
		return 0, err
	}
	if s.Pending != nil {
		kept := fetched[:0]
		for _, o := range fetched {
			if s.Pending.HasPending(o.ID) {
				utils.InfoLogger.Debugf("Keeping local state of order %s, API update pending", o.ID)
				continue
			}
			kept = append(kept, o)
		}
		fetched = kept
	}
	s.Store.Load(fetched)
	return len(fetched), nil
}
