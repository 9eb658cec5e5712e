package orders

import (
	"fmt"
	"time"

	"github.com/eluxe/eluxe-backend/internal/models"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Orders"

// BuildWorkbook renders orders into an XLSX workbook for the back office.
// Orders must already have their customer fields decrypted.
func BuildWorkbook(orderList []*models.Order) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	headers := []string{"Reference", "Identity", "Customer", "Email", "Address", "City", "Zip", "Total", "Status", "Placed At"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(exportSheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, order := range orderList {
		values := []interface{}{
			order.Reference,
			order.Identity,
			order.CustomerName,
			order.CustomerEmail,
			order.ShippingAddress,
			order.City,
			order.Zip,
			order.Total,
			order.Status,
			order.CreatedAt.Format(time.RFC3339),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(exportSheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
