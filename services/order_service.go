package services

import (
	"context"
	"fmt"
	"time"

	"github.com/yeremiapane/lachapa-pdv/cart"
	"github.com/yeremiapane/lachapa-pdv/catalog"
	"github.com/yeremiapane/lachapa-pdv/display"
	"github.com/yeremiapane/lachapa-pdv/lifecycle"
	"github.com/yeremiapane/lachapa-pdv/models"
	"github.com/yeremiapane/lachapa-pdv/store"
	"github.com/yeremiapane/lachapa-pdv/utils"
)

// OrderAPI is the part of the order gateway the service writes to.
// *GatewayMonitor and every gateway.OrderGateway satisfy it.
type OrderAPI interface {
	SubmitOrder(ctx context.Context, order models.Order) error
	UpdateOrderStatus(ctx context.Context, id string, status models.Status) error
}

// ReceiptPrinter queues a customer receipt. *printer.Spooler satisfies it.
type ReceiptPrinter interface {
	Receipt(order models.Order)
}

// SubmitNotifier is told about every new order. Implementations must not block.
type SubmitNotifier interface {
	OrderSubmitted(order models.Order)
}

// StaffAlerter shows a free-text warning on the staff screens.
type StaffAlerter interface {
	StaffNotification(message string)
}

// OrderService ties the PDV carts, the order store and the board together.
type OrderService struct {
	Catalog   *catalog.Catalog
	Carts     *cart.Registry
	Store     *store.Store
	Machine   *lifecycle.Machine
	API       OrderAPI
	Receipts  ReceiptPrinter
	Notifiers []SubmitNotifier
	Alerts    StaffAlerter
	Now       func() time.Time
}

func NewOrderService(cat *catalog.Catalog, carts *cart.Registry, st *store.Store, machine *lifecycle.Machine, api OrderAPI, receipts ReceiptPrinter, notifiers ...SubmitNotifier) *OrderService {
	return &OrderService{
		Catalog:   cat,
		Carts:     carts,
		Store:     st,
		Machine:   machine,
		API:       api,
		Receipts:  receipts,
		Notifiers: notifiers,
		Now:       time.Now,
	}
}

// Cart returns the view of a PDV session cart.
func (s *OrderService) Cart(session string) cart.Cart {
	return s.Carts.Snapshot(session)
}

// CloseSession discards the session cart and frees the session.
func (s *OrderService) CloseSession(session string) {
	s.Carts.Close(session)
}

// AddItem looks the product up in the catalog and adds it to the session cart.
func (s *OrderService) AddItem(session string, productID, quantity int, notes string) (models.CartLineItem, error) {
	product, err := s.Catalog.Find(productID)
	if err != nil {
		return models.CartLineItem{}, err
	}
	return s.Carts.Session(session).AddItem(product, quantity, notes), nil
}

// Submit turns the session cart into an order and forwards it to the API.
// The returned notice is non-empty when the API call failed; the order is
// kept locally either way.
func (s *OrderService) Submit(ctx context.Context, session string) (models.Order, string, error) {
	e, ok := s.Carts.Lookup(session)
	if !ok {
		return models.Order{}, "", cart.ErrEmptyCart
	}
	order, err := e.Submit()
	if err != nil {
		return models.Order{}, "", err
	}
	utils.InfoLogger.Printf("Order %s submitted, total %s", order.ID, utils.FormatCurrencyBRL(order.Total))

	for _, n := range s.Notifiers {
		n.OrderSubmitted(order)
	}

	var notice string
	if s.API != nil {
		if err := s.API.SubmitOrder(ctx, order); err != nil {
			utils.ErrorLogger.Printf("Failed to send order %s to API: %v", order.ID, err)
			notice = fmt.Sprintf("order %s saved locally, API sync failed", order.ID)
			s.alert(notice)
		}
	}
	return order, notice, nil
}

// ListOrders searches the store by id, customer name or phone.
func (s *OrderService) ListOrders(term string) []display.OrderCard {
	return display.Cards(s.Store.Search(term), s.Now())
}

// Board returns the three Kanban columns for the search term.
func (s *OrderService) Board(term string) []display.Column {
	return display.Columns(store.PartitionByStatus(s.Store.Search(term)), s.Now())
}

func (s *OrderService) GetOrder(id string) (display.OrderCard, error) {
	o, err := s.Store.Get(id)
	if err != nil {
		return display.OrderCard{}, err
	}
	return display.Card(o, s.Now()), nil
}

// MoveOrder sets any valid status, without checking adjacency.
func (s *OrderService) MoveOrder(ctx context.Context, id string, status models.Status) (display.OrderCard, string, error) {
	if !status.Valid() {
		return display.OrderCard{}, "", fmt.Errorf("%w: %q", models.ErrUnknownStatus, status)
	}
	order, err := s.Machine.MoveOrder(id, status)
	if err != nil {
		return display.OrderCard{}, "", err
	}
	return display.Card(order, s.Now()), s.pushStatus(ctx, order), nil
}

// Advance moves the order to its next board column.
func (s *OrderService) Advance(ctx context.Context, id string) (display.OrderCard, string, error) {
	order, err := s.Machine.Advance(id)
	if err != nil {
		return display.OrderCard{}, "", err
	}
	return display.Card(order, s.Now()), s.pushStatus(ctx, order), nil
}

func (s *OrderService) pushStatus(ctx context.Context, order models.Order) string {
	if s.API == nil {
		return ""
	}
	if err := s.API.UpdateOrderStatus(ctx, order.ID, order.Status); err != nil {
		utils.ErrorLogger.Printf("Failed to send status of order %s to API: %v", order.ID, err)
		notice := fmt.Sprintf("status of order %s changed locally, API sync failed", order.ID)
		s.alert(notice)
		return notice
	}
	return ""
}

func (s *OrderService) alert(message string) {
	if s.Alerts != nil {
		s.Alerts.StaffNotification(message)
	}
}

// PrintReceipt queues the customer receipt and returns its breakdown.
func (s *OrderService) PrintReceipt(id string) (models.Receipt, error) {
	order, err := s.Store.Get(id)
	if err != nil {
		return models.Receipt{}, err
	}
	if s.Receipts != nil {
		s.Receipts.Receipt(order)
	}
	return models.NewReceipt(order, s.Now()), nil
}
