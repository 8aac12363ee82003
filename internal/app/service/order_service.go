package service

import (
	"errors"
	"time"

	"github.com/furnimart/furnimart-backend/internal/app/model"
	"github.com/furnimart/furnimart-backend/internal/app/repository"
	"github.com/furnimart/furnimart-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrOrderEmpty          = errors.New("order has no items")
	ErrOrderInvalidStatus  = errors.New("invalid order status")
	ErrOrderUnknownProduct = errors.New("order references unknown product")
)

type OrderItemInput struct {
	ProductID uint
	Quantity  int
	Price     float64
}

// OrderInput is the public order intake payload. Prices are taken from the
// submitted payload as snapshots of what the customer saw.
type OrderInput struct {
	OrderType   model.OrderType
	Customer    model.Customer
	Items       []OrderItemInput
	TotalAmount float64
	Notes       string
}

type OrderListOptions struct {
	Status        *model.OrderStatus
	OrderType     *model.OrderType
	SortBy        string
	SortAscending bool
	Page          int
	PerPage       int
}

// OrderUpdateInput carries the admin-editable order fields.
type OrderUpdateInput struct {
	Status       *model.OrderStatus
	WhatsappSent *bool
	Notes        *string
}

type OrderService interface {
	Create(input OrderInput) (*model.Order, error)
	List(opts OrderListOptions) ([]model.Order, int64, error)
	GetByID(id uint) (*model.Order, error)
	Update(id uint, adminID uint, input OrderUpdateInput) (*model.Order, error)
	Delete(id uint) (*model.Order, error)
	ExportAll() ([]model.Order, error)
}

type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

func (s *orderService) Create(input OrderInput) (*model.Order, error) {
	logger.Info("Creating order", map[string]interface{}{
		"order_type":  input.OrderType,
		"items_count": len(input.Items),
		"customer":    input.Customer.Name,
	})

	if len(input.Items) == 0 {
		return nil, ErrOrderEmpty
	}

	orderType := input.OrderType
	if orderType == "" {
		orderType = model.OrderTypeBuyNow
	}

	items := make([]model.OrderItem, 0, len(input.Items))
	for _, in := range input.Items {
		if _, err := s.productRepo.FindByID(in.ProductID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				logger.Warn("Order references unknown product", map[string]interface{}{
					"product_id": in.ProductID,
				})
				return nil, ErrOrderUnknownProduct
			}
			return nil, err
		}
		quantity := in.Quantity
		if quantity < 1 {
			quantity = 1
		}
		items = append(items, model.OrderItem{
			ProductID: in.ProductID,
			Quantity:  quantity,
			Price:     in.Price,
		})
	}

	order := &model.Order{
		OrderType:   orderType,
		Customer:    input.Customer,
		Items:       items,
		TotalAmount: input.TotalAmount,
		Status:      model.OrderStatusPending,
		Notes:       input.Notes,
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	logger.Info("Order created successfully", map[string]interface{}{
		"order_id":     order.ID,
		"total_amount": order.TotalAmount,
	})
	return s.GetByID(order.ID)
}

func (s *orderService) List(opts OrderListOptions) ([]model.Order, int64, error) {
	filter := repository.OrderFilter{
		Status:        opts.Status,
		OrderType:     opts.OrderType,
		SortBy:        opts.SortBy,
		SortAscending: opts.SortAscending,
	}
	if opts.PerPage > 0 {
		filter.Limit = opts.PerPage
		if opts.Page > 1 {
			filter.Offset = (opts.Page - 1) * opts.PerPage
		}
	}

	orders, total, err := s.orderRepo.FindWithFilter(filter)
	if err != nil {
		logger.Error("Failed to list orders", err)
		return nil, 0, err
	}
	return orders, total, nil
}

func (s *orderService) GetByID(id uint) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

// Update applies admin edits. Moving an order out of pending stamps who
// processed it and when; the stamp is refreshed on subsequent changes.
func (s *orderService) Update(id uint, adminID uint, input OrderUpdateInput) (*model.Order, error) {
	order, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if input.Status != nil {
		if !model.ValidOrderStatus(*input.Status) {
			return nil, ErrOrderInvalidStatus
		}
		order.Status = *input.Status
		if order.Status != model.OrderStatusPending {
			now := time.Now()
			order.ProcessedAt = &now
			order.ProcessedByID = &adminID
			order.ProcessedBy = nil
		}
	}
	if input.WhatsappSent != nil {
		order.WhatsappSent = *input.WhatsappSent
	}
	if input.Notes != nil {
		order.Notes = *input.Notes
	}

	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}

	logger.Info("Order updated successfully", map[string]interface{}{
		"order_id": order.ID,
		"status":   order.Status,
		"admin_id": adminID,
	})
	return s.GetByID(id)
}

func (s *orderService) Delete(id uint) (*model.Order, error) {
	order, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.orderRepo.Delete(id); err != nil {
		return nil, err
	}

	logger.Info("Order deleted", map[string]interface{}{
		"order_id": id,
	})
	return order, nil
}

// ExportAll returns every order for the spreadsheet export.
func (s *orderService) ExportAll() ([]model.Order, error) {
	return s.orderRepo.FindAll()
}
