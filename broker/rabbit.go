// Package broker publishes order events to a RabbitMQ topic exchange so that
// other systems (delivery, back office) can follow the board.
package broker

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/yeremiapane/lachapa-pdv/models"
	"github.com/yeremiapane/lachapa-pdv/utils"
)

const (
	KeyOrderSubmitted     = "pdv.order.submitted"
	KeyOrderStatusChanged = "pdv.order.status_changed"
)

const publishTimeout = 5 * time.Second

type Rabbit struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

// NewRabbit returns a nil *Rabbit when url is empty; a nil Rabbit publishes nothing.
func NewRabbit(url, exchange string) (*Rabbit, error) {
	if url == "" {
		return nil, nil
	}
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, err
	}
	return &Rabbit{conn: conn, ch: ch, exchange: exchange}, nil
}

func (r *Rabbit) Publish(ctx context.Context, key string, body []byte) error {
	if r == nil || r.ch == nil {
		return nil
	}
	return r.ch.PublishWithContext(ctx, r.exchange, key, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
		Timestamp:   time.Now(),
	})
}

func (r *Rabbit) Close() error {
	if r == nil || r.conn == nil {
		return nil
	}
	return r.conn.Close()
}

type statusChangedEvent struct {
	OrderID string        `json:"order_id"`
	From    models.Status `json:"from"`
	To      models.Status `json:"to"`
	At      time.Time     `json:"at"`
}

// OrderSubmitted publishes the full order snapshot.
func (r *Rabbit) OrderSubmitted(order models.Order) {
	r.publishJSON(KeyOrderSubmitted, order)
}

// OrderStatusChanged publishes the transition only.
func (r *Rabbit) OrderStatusChanged(order models.Order, from models.Status) {
	r.publishJSON(KeyOrderStatusChanged, statusChangedEvent{
		OrderID: order.ID,
		From:    from,
		To:      order.Status,
		At:      time.Now(),
	})
}

func (r *Rabbit) publishJSON(key string, payload interface{}) {
	if r == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		utils.ErrorLogger.Printf("[broker] marshal %s: %v", key, err)
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		if err := r.Publish(ctx, key, body); err != nil {
			utils.ErrorLogger.Printf("[broker] publish %s: %v", key, err)
		}
	}()
}
