package kds

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/yeremiapane/lachapa-pdv/models"
	"github.com/yeremiapane/lachapa-pdv/utils"
)

// Event types
const (
	EventOrderSubmitted     = "order_submitted"
	EventOrderStatusChanged = "order_status_changed"
	EventKitchenTicket      = "kitchen_ticket"
	EventStaffNotif         = "staff_notification"
)

const writeWait = 5 * time.Second

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// StatusChange is the payload of EventOrderStatusChanged.
type StatusChange struct {
	Order models.Order  `json:"order"`
	From  models.Status `json:"from"`
	To    models.Status `json:"to"`
}

// Hub holds every connected board screen (register, kitchen, delivery).
type Hub struct {
	clients map[*websocket.Conn]string // conn -> role
	mutex   sync.Mutex
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]string)}
}

// RegisterClient adds a connection with the role it announced.
func (h *Hub) RegisterClient(conn *websocket.Conn, role string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.clients[conn] = role
}

// UnregisterClient drops and closes the connection.
func (h *Hub) UnregisterClient(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	delete(h.clients, conn)
	conn.Close()
}

func (h *Hub) ClientCount() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients)
}

// OrderSubmitted announces a new card in the first column.
func (h *Hub) OrderSubmitted(order models.Order) {
	h.Broadcast(Message{Event: EventOrderSubmitted, Data: order})
}

// OrderStatusChanged moves a card between columns on every screen.
func (h *Hub) OrderStatusChanged(order models.Order, from models.Status) {
	h.Broadcast(Message{
		Event: EventOrderStatusChanged,
		Data:  StatusChange{Order: order, From: from, To: order.Status},
	})
	if order.Status == models.StatusEmProducao {
		h.Broadcast(Message{Event: EventKitchenTicket, Data: order.ID})
	}
}

// StaffNotification sends a free-text notice to every screen.
func (h *Hub) StaffNotification(message string) {
	h.Broadcast(Message{Event: EventStaffNotif, Data: message})
}

// Broadcast writes msg to every client; broken connections are dropped.
func (h *Hub) Broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.Printf("Error marshaling message: %v", err)
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	utils.InfoLogger.Debugf("Broadcasting %s to %d clients", msg.Event, len(h.clients))

	for conn, role := range h.clients {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Printf("Error sending %s to %s client: %v", msg.Event, role, err)
			delete(h.clients, conn)
			conn.Close()
		}
	}
}
