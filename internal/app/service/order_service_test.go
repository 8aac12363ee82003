package service

import (
	"testing"

	"github.com/furnimart/furnimart-backend/internal/app/model"
	"github.com/furnimart/furnimart-backend/internal/app/repository"
	"github.com/furnimart/furnimart-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupOrderServiceTest(t *testing.T) (OrderService, *gorm.DB, []*model.Product) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	category := &model.Category{Name: "Sofas", Slug: "sofas", IsActive: true}
	require.NoError(t, testDB.Create(category).Error)

	products := []*model.Product{
		{Name: "Sofa", Slug: "sofa", Description: "d", Price: 500, CategoryID: category.ID, IsActive: true},
		{Name: "Table", Slug: "table", Description: "d", Price: 300, CategoryID: category.ID, IsActive: true},
	}
	for _, p := range products {
		require.NoError(t, testDB.Create(p).Error)
	}

	orderRepo := repository.NewOrderRepository(testDB)
	productRepo := repository.NewProductRepository(testDB)
	return NewOrderService(orderRepo, productRepo), testDB, products
}

func validOrderInput(products []*model.Product) OrderInput {
	return OrderInput{
		OrderType: model.OrderTypeBuyNow,
		Customer: model.Customer{
			Name:    "Asha Verma",
			Phone:   "+911234567890",
			Address: "12 MG Road, Pune",
			Email:   "asha@example.com",
		},
		Items: []OrderItemInput{
			{ProductID: products[0].ID, Quantity: 2, Price: 450},
		},
		TotalAmount: 900,
	}
}

func TestOrderService_Create(t *testing.T) {
	orderService, _, products := setupOrderServiceTest(t)

	order, err := orderService.Create(validOrderInput(products))
	require.NoError(t, err)

	assert.Equal(t, model.OrderStatusPending, order.Status)
	assert.Nil(t, order.ProcessedAt)
	assert.Equal(t, float64(900), order.TotalAmount)

	// The submitted price is stored as-is, not recomputed from the product
	require.Len(t, order.Items, 1)
	assert.Equal(t, float64(450), order.Items[0].Price)
	assert.NotNil(t, order.Items[0].Product)
}

func TestOrderService_Create_Validation(t *testing.T) {
	orderService, _, products := setupOrderServiceTest(t)

	empty := validOrderInput(products)
	empty.Items = nil
	_, err := orderService.Create(empty)
	assert.ErrorIs(t, err, ErrOrderEmpty)

	unknown := validOrderInput(products)
	unknown.Items = []OrderItemInput{{ProductID: 9999, Quantity: 1, Price: 100}}
	_, err = orderService.Create(unknown)
	assert.ErrorIs(t, err, ErrOrderUnknownProduct)
}

func TestOrderService_Update_StampsProcessing(t *testing.T) {
	orderService, testDB, products := setupOrderServiceTest(t)

	admin := &model.Admin{Email: "admin@example.com", PasswordHash: "h", Name: "Admin"}
	require.NoError(t, testDB.Create(admin).Error)

	order, err := orderService.Create(validOrderInput(products))
	require.NoError(t, err)

	confirmed := model.OrderStatusConfirmed
	updated, err := orderService.Update(order.ID, admin.ID, OrderUpdateInput{Status: &confirmed})
	require.NoError(t, err)

	assert.Equal(t, model.OrderStatusConfirmed, updated.Status)
	require.NotNil(t, updated.ProcessedAt)
	require.NotNil(t, updated.ProcessedBy)
	assert.Equal(t, admin.ID, updated.ProcessedBy.ID)
}

func TestOrderService_Update_PendingLeavesStampEmpty(t *testing.T) {
	orderService, testDB, products := setupOrderServiceTest(t)

	admin := &model.Admin{Email: "admin@example.com", PasswordHash: "h", Name: "Admin"}
	require.NoError(t, testDB.Create(admin).Error)

	order, err := orderService.Create(validOrderInput(products))
	require.NoError(t, err)

	pending := model.OrderStatusPending
	notes := "called the customer"
	updated, err := orderService.Update(order.ID, admin.ID, OrderUpdateInput{Status: &pending, Notes: &notes})
	require.NoError(t, err)

	assert.Nil(t, updated.ProcessedAt)
	assert.Equal(t, "called the customer", updated.Notes)
}

func TestOrderService_Update_InvalidStatus(t *testing.T) {
	orderService, _, products := setupOrderServiceTest(t)

	order, err := orderService.Create(validOrderInput(products))
	require.NoError(t, err)

	bogus := model.OrderStatus("teleported")
	_, err = orderService.Update(order.ID, 1, OrderUpdateInput{Status: &bogus})
	assert.ErrorIs(t, err, ErrOrderInvalidStatus)
}

func TestOrderService_List_FilterByStatus(t *testing.T) {
	orderService, testDB, products := setupOrderServiceTest(t)

	admin := &model.Admin{Email: "admin@example.com", PasswordHash: "h", Name: "Admin"}
	require.NoError(t, testDB.Create(admin).Error)

	first, err := orderService.Create(validOrderInput(products))
	require.NoError(t, err)
	_, err = orderService.Create(validOrderInput(products))
	require.NoError(t, err)

	confirmed := model.OrderStatusConfirmed
	_, err = orderService.Update(first.ID, admin.ID, OrderUpdateInput{Status: &confirmed})
	require.NoError(t, err)

	orders, total, err := orderService.List(OrderListOptions{Status: &confirmed})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, orders, 1)
	assert.Equal(t, first.ID, orders[0].ID)
}

func TestOrderService_Delete(t *testing.T) {
	orderService, testDB, products := setupOrderServiceTest(t)

	order, err := orderService.Create(validOrderInput(products))
	require.NoError(t, err)

	_, err = orderService.Delete(order.ID)
	require.NoError(t, err)

	_, err = orderService.GetByID(order.ID)
	assert.ErrorIs(t, err, ErrOrderNotFound)

	// Items go with the order
	var itemCount int64
	testDB.Model(&model.OrderItem{}).Where("order_id = ?", order.ID).Count(&itemCount)
	assert.Equal(t, int64(0), itemCount)
}
