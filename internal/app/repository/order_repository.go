package repository

import (
	"github.com/furnimart/furnimart-backend/internal/app/model"
	"github.com/furnimart/furnimart-backend/pkg/logger"
	"gorm.io/gorm"
)

var orderSortFields = map[string]string{
	"created_at":   "created_at",
	"createdAt":    "created_at",
	"status":       "status",
	"total_amount": "total_amount",
	"totalAmount":  "total_amount",
}

type OrderFilter struct {
	Status        *model.OrderStatus
	OrderType     *model.OrderType
	SortBy        string
	SortAscending bool
	Limit         int
	Offset        int
}

type OrderRepository interface {
	Create(order *model.Order) error
	FindWithFilter(filter OrderFilter) ([]model.Order, int64, error)
	FindByID(id uint) (*model.Order, error)
	FindAll() ([]model.Order, error)
	Update(order *model.Order) error
	Delete(id uint) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) baseQuery() *gorm.DB {
	return r.db.Model(&model.Order{}).
		Preload("Items.Product").
		Preload("Items.Product.Images").
		Preload("ProcessedBy")
}

func (r *orderRepository) Create(order *model.Order) error {
	logger.Debug("Creating order in database", map[string]interface{}{
		"order_type":  order.OrderType,
		"items_count": len(order.Items),
		"total":       order.TotalAmount,
	})

	if err := r.db.Create(order).Error; err != nil {
		logger.Error("Failed to create order in database", err, map[string]interface{}{
			"order_type": order.OrderType,
		})
		return err
	}
	return nil
}

func (r *orderRepository) FindWithFilter(filter OrderFilter) ([]model.Order, int64, error) {
	query := r.db.Model(&model.Order{})

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.OrderType != nil {
		query = query.Where("order_type = ?", *filter.OrderType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		logger.Error("Failed to count orders", err)
		return nil, 0, err
	}

	column, ok := orderSortFields[filter.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if filter.SortAscending {
		direction = "ASC"
	}
	query = query.Order(column + " " + direction).
		Preload("Items.Product").
		Preload("ProcessedBy")

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var orders []model.Order
	if err := query.Find(&orders).Error; err != nil {
		logger.Error("Failed to find orders with filter", err)
		return nil, 0, err
	}

	return orders, total, nil
}

func (r *orderRepository) FindByID(id uint) (*model.Order, error) {
	var order model.Order
	if err := r.baseQuery().First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// FindAll returns every order, newest first. Used by the XLSX export.
func (r *orderRepository) FindAll() ([]model.Order, error) {
	var orders []model.Order
	err := r.db.Model(&model.Order{}).
		Preload("Items.Product").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		logger.Error("Failed to list all orders", err)
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) Update(order *model.Order) error {
	logger.Debug("Updating order in database", map[string]interface{}{
		"order_id": order.ID,
		"status":   order.Status,
	})

	if err := r.db.Omit("Items").Save(order).Error; err != nil {
		logger.Error("Failed to update order in database", err, map[string]interface{}{
			"order_id": order.ID,
		})
		return err
	}
	return nil
}

func (r *orderRepository) Delete(id uint) error {
	logger.Debug("Deleting order from database", map[string]interface{}{
		"order_id": id,
	})

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&model.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Order{}, id).Error
	})
}
