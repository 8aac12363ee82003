package export

import (
	"fmt"
	"strings"

	"github.com/furnimart/furnimart-backend/internal/app/model"
	"github.com/xuri/excelize/v2"
)

const ordersSheet = "Orders"

var orderHeaders = []string{
	"Order ID",
	"Created At",
	"Type",
	"Status",
	"Customer Name",
	"Phone",
	"Address",
	"Email",
	"Items",
	"Total Amount",
	"WhatsApp Sent",
	"Notes",
	"Processed At",
	"Processed By",
}

// OrdersWorkbook builds an XLSX workbook with one row per order. The caller
// owns the returned file and must Close it.
func OrdersWorkbook(orders []model.Order) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(ordersSheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to remove default sheet: %w", err)
	}

	for col, header := range orderHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetCellValue(ordersSheet, cell, header); err != nil {
			f.Close()
			return nil, err
		}
	}

	for rowIdx, order := range orders {
		values := orderRow(order)
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				f.Close()
				return nil, err
			}
			if err := f.SetCellValue(ordersSheet, cell, value); err != nil {
				f.Close()
				return nil, err
			}
		}
	}

	return f, nil
}

func orderRow(order model.Order) []interface{} {
	items := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		name := fmt.Sprintf("#%d", item.ProductID)
		if item.Product != nil {
			name = item.Product.Name
		}
		items = append(items, fmt.Sprintf("%s x%d @ %.2f", name, item.Quantity, item.Price))
	}

	processedAt := ""
	if order.ProcessedAt != nil {
		processedAt = order.ProcessedAt.Format("2006-01-02 15:04:05")
	}
	processedBy := ""
	if order.ProcessedBy != nil {
		processedBy = order.ProcessedBy.Email
	}

	return []interface{}{
		order.ID,
		order.CreatedAt.Format("2006-01-02 15:04:05"),
		string(order.OrderType),
		string(order.Status),
		order.Customer.Name,
		order.Customer.Phone,
		order.Customer.Address,
		order.Customer.Email,
		strings.Join(items, "; "),
		order.TotalAmount,
		order.WhatsappSent,
		order.Notes,
		processedAt,
		processedBy,
	}
}
