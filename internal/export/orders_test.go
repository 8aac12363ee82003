package export

import (
	"testing"
	"time"

	"github.com/furnimart/furnimart-backend/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrdersWorkbook(t *testing.T) {
	created := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	orders := []model.Order{
		{
			ID:        7,
			OrderType: model.OrderTypeBuyNow,
			Customer: model.Customer{
				Name:    "Asha Verma",
				Phone:   "+911234567890",
				Address: "12 Park Street",
			},
			Status:      model.OrderStatusConfirmed,
			TotalAmount: 900,
			Items: []model.OrderItem{
				{
					ProductID: 3,
					Product:   &model.Product{Name: "Velvet Sofa"},
					Quantity:  2,
					Price:     450,
				},
			},
			CreatedAt: created,
		},
	}

	workbook, err := OrdersWorkbook(orders)
	require.NoError(t, err)
	defer workbook.Close()

	assert.Equal(t, []string{"Orders"}, workbook.GetSheetList())

	header, err := workbook.GetCellValue("Orders", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Order ID", header)

	id, err := workbook.GetCellValue("Orders", "A2")
	require.NoError(t, err)
	assert.Equal(t, "7", id)

	status, err := workbook.GetCellValue("Orders", "D2")
	require.NoError(t, err)
	assert.Equal(t, "confirmed", status)

	items, err := workbook.GetCellValue("Orders", "I2")
	require.NoError(t, err)
	assert.Equal(t, "Velvet Sofa x2 @ 450.00", items)
}

func TestOrdersWorkbook_EmptyStillHasHeader(t *testing.T) {
	workbook, err := OrdersWorkbook(nil)
	require.NoError(t, err)
	defer workbook.Close()

	rows, err := workbook.GetRows("Orders")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Len(t, rows[0], len(orderHeaders))
}
