package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yeremiapane/lachapa-pdv/models"
	"github.com/yeremiapane/lachapa-pdv/utils"
)

// Migrate creates or updates the tables used by the database order gateway.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.OrderRecord{}, &models.OrderItemRecord{}); err != nil {
		return fmt.Errorf("failed to AutoMigrate: %w", err)
	}

	for _, table := range []string{"orders", "order_items"} {
		if !db.Migrator().HasTable(table) {
			return fmt.Errorf("table %s missing after migration", table)
		}
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
	return nil
}
