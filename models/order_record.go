package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderRecord is the gorm row backing an Order in the database gateway.
type OrderRecord struct {
	ID            string            `gorm:"primaryKey;type:varchar(32)"`
	CustomerName  string            `gorm:"type:varchar(255)"`
	Phone         string            `gorm:"type:varchar(50);index"`
	Address       string            `gorm:"type:varchar(255)"`
	Total         decimal.Decimal   `gorm:"type:decimal(14,4);not null"`
	PaymentMethod string            `gorm:"type:varchar(20);not null"`
	Status        string            `gorm:"type:varchar(20);not null;default:'em_analise';index"`
	SubmittedAt   string            `gorm:"type:varchar(5);not null"`
	Notes         string            `gorm:"type:text"`
	Items         []OrderItemRecord `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt     time.Time         `gorm:"not null"`
	UpdatedAt     time.Time         `gorm:"not null"`
}

func (OrderRecord) TableName() string { return "orders" }

type OrderItemRecord struct {
	ID        uint            `gorm:"primaryKey"`
	OrderID   string          `gorm:"type:varchar(32);not null;index"`
	LineID    string          `gorm:"type:varchar(64)"`
	ProductID int             `gorm:"not null"`
	Name      string          `gorm:"type:varchar(255);not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Quantity  int             `gorm:"not null"`
	Notes     string          `gorm:"type:text"`
	Position  int             `gorm:"not null"`
}

func (OrderItemRecord) TableName() string { return "order_items" }

// ToRecord maps an order onto its database row.
func (o Order) ToRecord() OrderRecord {
	rec := OrderRecord{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		Phone:         o.Phone,
		Address:       o.Address,
		Total:         o.Total,
		PaymentMethod: string(o.PaymentMethod),
		Status:        string(o.Status),
		SubmittedAt:   o.SubmittedAt,
		Notes:         o.Notes,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.CreatedAt,
	}
	for i, item := range o.Items {
		rec.Items = append(rec.Items, OrderItemRecord{
			OrderID:   o.ID,
			LineID:    item.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Notes:     item.Notes,
			Position:  i,
		})
	}
	return rec
}

// ToOrder is the inverse of Order.ToRecord. Items are expected in Position order.
func (r OrderRecord) ToOrder() Order {
	o := Order{
		ID:            r.ID,
		CustomerName:  r.CustomerName,
		Phone:         r.Phone,
		Address:       r.Address,
		Total:         r.Total,
		PaymentMethod: PaymentMethod(r.PaymentMethod),
		Status:        Status(r.Status),
		SubmittedAt:   r.SubmittedAt,
		Notes:         r.Notes,
		CreatedAt:     r.CreatedAt,
		Items:         make([]OrderLineSnapshot, 0, len(r.Items)),
	}
	for _, item := range r.Items {
		o.Items = append(o.Items, OrderLineSnapshot{
			ID:        item.LineID,
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Notes:     item.Notes,
		})
	}
	return o
}
