package controller

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/furnimart/furnimart-backend/internal/app/model"
	"github.com/furnimart/furnimart-backend/internal/app/service"
	apperrors "github.com/furnimart/furnimart-backend/internal/errors"
	"github.com/furnimart/furnimart-backend/internal/export"
	"github.com/furnimart/furnimart-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

const defaultOrderPageSize = 20

type OrderController struct {
	orderService service.OrderService
}

func NewOrderController(orderService service.OrderService) *OrderController {
	return &OrderController{
		orderService: orderService,
	}
}

type OrderItemRequest struct {
	ProductID uint    `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,gte=1"`
	Price     float64 `json:"price" binding:"gte=0"`
}

type OrderCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
}

type CreateOrderRequest struct {
	OrderType   string               `json:"order_type" binding:"omitempty,oneof=buy_now cart_checkout"`
	Customer    OrderCustomerRequest `json:"customer" binding:"required"`
	Items       []OrderItemRequest   `json:"items" binding:"required,min=1,dive"`
	TotalAmount float64              `json:"total_amount" binding:"gte=0"`
	Notes       string               `json:"notes"`
}

// CreateOrder records a public order. Prices are stored as submitted.
// POST /api/orders
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid order request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.RespondWithBindingError(c, err)
		return
	}

	input := service.OrderInput{
		OrderType: model.OrderType(req.OrderType),
		Customer: model.Customer{
			Name:    req.Customer.Name,
			Phone:   req.Customer.Phone,
			Address: req.Customer.Address,
			Email:   req.Customer.Email,
		},
		TotalAmount: req.TotalAmount,
		Notes:       req.Notes,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, service.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	order, err := ctrl.orderService.Create(input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderEmpty):
			apperrors.RespondWithValidationError(c, map[string]string{
				"items": "At least one item is required",
			})
		case errors.Is(err, service.ErrOrderUnknownProduct):
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
		default:
			log.Error("Failed to create order", err, nil)
			apperrors.InternalError(c, err)
		}
		return
	}

	log.Info("Order placed", map[string]interface{}{
		"order_id":     order.ID,
		"total_amount": order.TotalAmount,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"order":   order,
	})
}

// ListOrders returns orders with status/type filters (admin)
// GET /api/orders
func (ctrl *OrderController) ListOrders(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	params := parseListParams(c, defaultOrderPageSize)
	opts := service.OrderListOptions{
		SortBy:        params.SortBy,
		SortAscending: params.SortAscending,
		Page:          params.Page,
		PerPage:       params.Limit,
	}

	if v := c.Query("status"); v != "" {
		status := model.OrderStatus(v)
		if !model.ValidOrderStatus(status) {
			apperrors.BadRequest(c, apperrors.OrderInvalidStatus, "Invalid order status")
			return
		}
		opts.Status = &status
	}
	if v := c.Query("orderType"); v != "" {
		if v != string(model.OrderTypeBuyNow) && v != string(model.OrderTypeCartCheckout) {
			apperrors.BadRequest(c, apperrors.OrderInvalidType, "Invalid order type")
			return
		}
		orderType := model.OrderType(v)
		opts.OrderType = &orderType
	}

	orders, total, err := ctrl.orderService.List(opts)
	if err != nil {
		log.Error("Failed to fetch orders", err, nil)
		apperrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders":     orders,
		"pagination": newPagination(params.Page, params.Limit, total),
	})
}

// GetOrder returns one order with items and products (admin)
// GET /api/orders/:id
func (ctrl *OrderController) GetOrder(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid order ID")
		return
	}

	order, err := ctrl.orderService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			apperrors.NotFound(c, apperrors.OrderNotFound, "Order not found")
			return
		}
		log.Error("Failed to fetch order", err, map[string]interface{}{
			"order_id": id,
		})
		apperrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order": order,
	})
}

type UpdateOrderRequest struct {
	Status       *string `json:"status" binding:"omitempty,oneof=pending confirmed processing shipped delivered cancelled"`
	WhatsappSent *bool   `json:"whatsapp_sent"`
	Notes        *string `json:"notes"`
}

// UpdateOrder edits status, notes and the WhatsApp flag (admin)
// PUT /api/orders/:id
func (ctrl *OrderController) UpdateOrder(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid order ID")
		return
	}

	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithBindingError(c, err)
		return
	}

	adminID, _ := middleware.GetAdminID(c)
	input := service.OrderUpdateInput{
		WhatsappSent: req.WhatsappSent,
		Notes:        req.Notes,
	}
	if req.Status != nil {
		status := model.OrderStatus(*req.Status)
		input.Status = &status
	}

	order, err := ctrl.orderService.Update(id, adminID, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			apperrors.NotFound(c, apperrors.OrderNotFound, "Order not found")
		case errors.Is(err, service.ErrOrderInvalidStatus):
			apperrors.BadRequest(c, apperrors.OrderInvalidStatus, "Invalid order status")
		default:
			log.Error("Failed to update order", err, map[string]interface{}{
				"order_id": id,
			})
			apperrors.InternalError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order updated successfully",
		"order":   order,
	})
}

// DeleteOrder removes an order and its items (admin)
// DELETE /api/orders/:id
func (ctrl *OrderController) DeleteOrder(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid order ID")
		return
	}

	if _, err := ctrl.orderService.Delete(id); err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			apperrors.NotFound(c, apperrors.OrderNotFound, "Order not found")
			return
		}
		log.Error("Failed to delete order", err, map[string]interface{}{
			"order_id": id,
		})
		apperrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order deleted successfully",
	})
}

// ExportOrders downloads every order as an XLSX workbook (admin)
// GET /api/orders/export
func (ctrl *OrderController) ExportOrders(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	orders, err := ctrl.orderService.ExportAll()
	if err != nil {
		log.Error("Failed to export orders", err, nil)
		apperrors.InternalError(c, err)
		return
	}

	workbook, err := export.OrdersWorkbook(orders)
	if err != nil {
		log.Error("Failed to build order workbook", err, nil)
		apperrors.InternalError(c, err)
		return
	}
	defer workbook.Close()

	filename := fmt.Sprintf("orders-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := workbook.Write(c.Writer); err != nil {
		log.Error("Failed to stream order workbook", err, nil)
	}

	log.Info("Orders exported", map[string]interface{}{
		"count": len(orders),
	})
}
