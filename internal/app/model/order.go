package model

import (
	"time"
)

type OrderType string

const (
	OrderTypeBuyNow       OrderType = "buy_now"
	OrderTypeCartCheckout OrderType = "cart_checkout"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is a known order status. Transitions
// between valid statuses are unconstrained.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Customer is the contact block submitted with an order. Orders are placed
// without accounts, so this is stored inline with the order.
type Customer struct {
	Name    string `gorm:"not null" json:"name"`
	Phone   string `gorm:"not null" json:"phone"`
	Address string `gorm:"not null" json:"address"`
	Email   string `json:"email"`
}

type Order struct {
	ID            uint        `gorm:"primarykey" json:"id"`
	OrderType     OrderType   `gorm:"type:varchar(30);not null" json:"order_type"`
	Customer      Customer    `gorm:"embedded;embeddedPrefix:customer_" json:"customer"`
	Items         []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount   float64     `gorm:"not null" json:"total_amount"`
	Status        OrderStatus `gorm:"type:varchar(30);default:'pending'" json:"status"`
	WhatsappSent  bool        `gorm:"default:false" json:"whatsapp_sent"`
	Notes         string      `gorm:"type:text" json:"notes"`
	ProcessedAt   *time.Time  `json:"processed_at"`
	ProcessedByID *uint       `json:"-"`
	ProcessedBy   *Admin      `gorm:"foreignKey:ProcessedByID;constraint:OnDelete:NO ACTION" json:"processed_by,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem references a product with the quantity and the price the client
// submitted at order time. The price is a snapshot, never recomputed from
// the live product.
type OrderItem struct {
	ID        uint     `gorm:"primarykey" json:"id"`
	OrderID   uint     `gorm:"index;not null" json:"-"`
	ProductID uint     `gorm:"index;not null" json:"product_id"`
	Product   *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:NO ACTION" json:"product,omitempty"`
	Quantity  int      `gorm:"not null" json:"quantity"`
	Price     float64  `gorm:"not null" json:"price"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
