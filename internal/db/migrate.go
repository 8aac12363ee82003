package db

import (
	"github.com/furnimart/furnimart-backend/internal/app/model"
	"github.com/furnimart/furnimart-backend/pkg/logger"
)

// Migrate runs database migrations
func Migrate() error {
	logger.Info("Running database migrations...")

	models := []interface{}{
		&model.Admin{},
		&model.Category{},
		&model.Product{},
		&model.ProductImage{},
		&model.Combo{},
		&model.ComboItem{},
		&model.Order{},
		&model.OrderItem{},
		&model.Contact{},
		&model.Banner{},
		&model.Settings{},
	}

	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}
