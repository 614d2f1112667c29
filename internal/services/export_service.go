package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/NITHINPOLI04/VMEW/internal/models"
)

// ExportService writes the sales/purchase register as an Excel workbook, one
// sheet per transaction type, matching the layout the accountant files with.
type ExportService struct {
	inventory *InventoryService
}

func NewExportService(inventory *InventoryService) *ExportService {
	return &ExportService{inventory: inventory}
}

var registerHeader = []string{
	"#", "Description", "HSN/SAC", "Qty", "Unit", "Rate", "Party Name",
	"Party GST No", "Basic Amt", "SGST", "CGST", "IGST", "Transport", "Total",
}

// ExportInventoryYear builds the workbook for one financial year.
func (s *ExportService) ExportInventoryYear(ctx context.Context, year string) ([]byte, string, error) {
	items, err := s.inventory.ListByYear(ctx, year)
	if err != nil {
		return nil, "", err
	}

	var sales, purchases []*models.InventoryItem
	for _, it := range items {
		if it.TransactionType == models.TransactionPurchase {
			purchases = append(purchases, it)
		} else {
			sales = append(sales, it)
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", "Sales")
	if err := writeRegisterSheet(f, "Sales", sales); err != nil {
		return nil, "", err
	}
	if _, err := f.NewSheet("Purchases"); err != nil {
		return nil, "", err
	}
	if err := writeRegisterSheet(f, "Purchases", purchases); err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("inventory_%s.xlsx", year)
	return buf.Bytes(), filename, nil
}

func writeRegisterSheet(f *excelize.File, sheet string, items []*models.InventoryItem) error {
	for col, title := range registerHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return err
		}
	}

	var totalBasic, totalSGST, totalCGST, totalIGST, totalTransport, totalAmt float64
	for i, it := range items {
		row := i + 2
		values := []interface{}{
			i + 1, it.Description, it.HSNSACCode, it.Quantity, it.Unit, it.Rate,
			it.PartyName, it.PartyGSTNo, it.BasicAmt, it.SGST, it.CGST, it.IGST,
			it.Transport, it.Total,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
		totalBasic += it.BasicAmt
		totalSGST += it.SGST
		totalCGST += it.CGST
		totalIGST += it.IGST
		totalTransport += it.Transport
		totalAmt += it.Total
	}

	// Totals row
	row := len(items) + 2
	totals := map[int]interface{}{
		2: "Total", 9: totalBasic, 10: totalSGST, 11: totalCGST,
		12: totalIGST, 13: totalTransport, 14: totalAmt,
	}
	for col, v := range totals {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}
