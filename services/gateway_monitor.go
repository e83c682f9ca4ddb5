package services

import (
	"context"
	"sync"
	"time"

	"github.com/yeremiapane/lachapa-pdv/gateway"
	"github.com/yeremiapane/lachapa-pdv/models"
	"github.com/yeremiapane/lachapa-pdv/utils"
)

// GatewayMetrics counts calls made to the order API.
type GatewayMetrics struct {
	TotalCalls  int64 `json:"total_calls"`
	FailedCalls int64 `json:"failed_calls"`
	Retried     int64 `json:"retried"`
	Pending     int   `json:"pending"`
}

type pendingCall struct {
	kind    string
	orderID string
	status  models.Status
}

// GatewayMonitor retries order API calls that failed and keeps call metrics.
type GatewayMonitor struct {
	gateway       gateway.OrderGateway
	store         OrderReader
	timeout       time.Duration
	retryInterval time.Duration

	mutex      sync.Mutex
	metrics    GatewayMetrics
	retryQueue []pendingCall
	stopChan   chan struct{}
	stopOnce   sync.Once
}

// OrderReader resolves the current state of an order when a retry runs.
type OrderReader interface {
	Get(id string) (models.Order, error)
}

func NewGatewayMonitor(gw gateway.OrderGateway, store OrderReader, timeout time.Duration) *GatewayMonitor {
	return &GatewayMonitor{
		gateway:       gw,
		store:         store,
		timeout:       timeout,
		retryInterval: 30 * time.Second,
		stopChan:      make(chan struct{}),
	}
}

// Start runs the retry loop until Stop.
func (gm *GatewayMonitor) Start(interval time.Duration) {
	if interval > 0 {
		gm.retryInterval = interval
	}
	go gm.processRetryQueue()
	utils.InfoLogger.Println("Gateway monitor started")
}

func (gm *GatewayMonitor) Stop() {
	gm.stopOnce.Do(func() { close(gm.stopChan) })
}

// SubmitOrder forwards a new order, queueing it for retry on failure.
func (gm *GatewayMonitor) SubmitOrder(ctx context.Context, order models.Order) error {
	err := gm.call(ctx, func(ctx context.Context) error { return gm.gateway.SubmitOrder(ctx, order) })
	if err != nil {
		gm.enqueue(pendingCall{kind: "submit", orderID: order.ID})
		return err
	}
	gm.dequeue("submit", order.ID)
	return nil
}

// UpdateOrderStatus forwards a status change, queueing it for retry on failure.
func (gm *GatewayMonitor) UpdateOrderStatus(ctx context.Context, id string, status models.Status) error {
	err := gm.call(ctx, func(ctx context.Context) error { return gm.gateway.UpdateOrderStatus(ctx, id, status) })
	if err != nil {
		gm.enqueue(pendingCall{kind: "status", orderID: id, status: status})
		return err
	}
	// a newer status reached the API, an older queued one must not overwrite it
	gm.dequeue("status", id)
	return nil
}

// HasPending reports whether a call for the order is waiting to be retried.
func (gm *GatewayMonitor) HasPending(id string) bool {
	gm.mutex.Lock()
	defer gm.mutex.Unlock()
	for _, q := range gm.retryQueue {
		if q.orderID == id {
			return true
		}
	}
	return false
}

func (gm *GatewayMonitor) call(ctx context.Context, fn func(context.Context) error) error {
	if gm.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, gm.timeout)
		defer cancel()
	}
	err := fn(ctx)

	gm.mutex.Lock()
	gm.metrics.TotalCalls++
	if err != nil {
		gm.metrics.FailedCalls++
	}
	gm.mutex.Unlock()
	return err
}

func (gm *GatewayMonitor) enqueue(p pendingCall) {
	gm.mutex.Lock()
	defer gm.mutex.Unlock()

	for i, q := range gm.retryQueue {
		if q.kind == p.kind && q.orderID == p.orderID {
			gm.retryQueue[i] = p
			return
		}
	}
	gm.retryQueue = append(gm.retryQueue, p)
	utils.InfoLogger.Printf("Added %s of order %s to retry queue", p.kind, p.orderID)
}

func (gm *GatewayMonitor) dequeue(kind, id string) {
	gm.mutex.Lock()
	defer gm.mutex.Unlock()

	kept := gm.retryQueue[:0]
	for _, q := range gm.retryQueue {
		if q.kind != kind || q.orderID != id {
			kept = append(kept, q)
		}
	}
	gm.retryQueue = kept
}

func (gm *GatewayMonitor) processRetryQueue() {
	ticker := time.NewTicker(gm.retryInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			gm.RetryPending(context.Background())
		case <-gm.stopChan:
			return
		}
	}
}

// RetryPending replays every queued call once. Calls that fail again go back on the queue.
func (gm *GatewayMonitor) RetryPending(ctx context.Context) {
	gm.mutex.Lock()
	if len(gm.retryQueue) == 0 {
		gm.mutex.Unlock()
		return
	}
	queue := gm.retryQueue
	gm.retryQueue = nil
	gm.mutex.Unlock()

	utils.InfoLogger.Printf("Processing retry queue with %d calls", len(queue))
	for _, p := range queue {
		gm.retry(ctx, p)
	}
}

func (gm *GatewayMonitor) retry(ctx context.Context, p pendingCall) {
	gm.mutex.Lock()
	gm.metrics.Retried++
	gm.mutex.Unlock()

	var err error
	switch p.kind {
	case "submit":
		// the order may have moved on since the first attempt
		order, getErr := gm.store.Get(p.orderID)
		if getErr != nil {
			utils.ErrorLogger.Printf("Dropping retry of order %s: %v", p.orderID, getErr)
			return
		}
		err = gm.SubmitOrder(ctx, order)
	case "status":
		status := p.status
		if order, getErr := gm.store.Get(p.orderID); getErr == nil {
			status = order.Status
		}
		err = gm.UpdateOrderStatus(ctx, p.orderID, status)
	}
	if err != nil {
		utils.ErrorLogger.Printf("Retry of %s for order %s failed: %v", p.kind, p.orderID, err)
		return
	}
	utils.InfoLogger.Printf("Retry of %s for order %s succeeded", p.kind, p.orderID)
}

func (gm *GatewayMonitor) GetMetrics() GatewayMetrics {
	gm.mutex.Lock()
	defer gm.mutex.Unlock()

	m := gm.metrics
	m.Pending = len(gm.retryQueue)
	return m
}
