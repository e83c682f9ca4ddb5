package gateway

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yeremiapane/lachapa-pdv/models"
)

// Database keeps orders in a gorm database (sqlite or mysql).
type Database struct {
	DB *gorm.DB
}

func NewDatabase(db *gorm.DB) *Database {
	return &Database{DB: db}
}

func (d *Database) SubmitOrder(ctx context.Context, order models.Order) error {
	rec := order.ToRecord()
	return d.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", rec.ID).Delete(&models.OrderItemRecord{}).Error; err != nil {
			return fmt.Errorf("failed to clear order items: %w", err)
		}
		if err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{UpdateAll: true}).Create(&rec).Error; err != nil {
			return fmt.Errorf("failed to save order: %w", err)
		}
		if len(rec.Items) > 0 {
			if err := tx.Create(&rec.Items).Error; err != nil {
				return fmt.Errorf("failed to save order items: %w", err)
			}
		}
		return nil
	})
}

func (d *Database) UpdateOrderStatus(ctx context.Context, id string, status models.Status) error {
	res := d.DB.WithContext(ctx).Model(&models.OrderRecord{}).Where("id = ?", id).Update("status", string(status))
	if res.Error != nil {
		return fmt.Errorf("failed to update order status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

func (d *Database) FetchOrders(ctx context.Context, filter models.OrderFilter) ([]models.Order, error) {
	var recs []models.OrderRecord
	q := d.DB.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		Order("created_at asc").Order("id asc")
	if filter.Status != nil {
		q = q.Where("status = ?", string(*filter.Status))
	}
	if err := q.Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}

	orders := make([]models.Order, 0, len(recs))
	for _, r := range recs {
		orders = append(orders, r.ToOrder())
	}
	return matches(orders, models.OrderFilter{Term: filter.Term}), nil
}
