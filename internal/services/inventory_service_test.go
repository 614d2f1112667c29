package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NITHINPOLI04/VMEW/internal/models"
)

func TestCalculateInventoryAmountsIntraState(t *testing.T) {
	it := &models.InventoryItem{
		Quantity:      10,
		Rate:          100,
		GSTPercentage: 18,
		TaxType:       models.TaxTypeSGSTCGST,
	}
	CalculateInventoryAmounts(it)

	assert.Equal(t, 1000.0, it.BasicAmt)
	assert.Equal(t, 90.0, it.SGST)
	assert.Equal(t, 90.0, it.CGST)
	assert.Equal(t, 0.0, it.IGST)
	assert.Equal(t, 1180.0, it.Total)
}

func TestCalculateInventoryAmountsInterState(t *testing.T) {
	it := &models.InventoryItem{
		Quantity:      5,
		Rate:          200,
		GSTPercentage: 18,
		TaxType:       models.TaxTypeIGST,
		Transport:     50,
	}
	CalculateInventoryAmounts(it)

	assert.Equal(t, 1000.0, it.BasicAmt)
	assert.Equal(t, 0.0, it.SGST)
	assert.Equal(t, 0.0, it.CGST)
	assert.Equal(t, 180.0, it.IGST)
	assert.Equal(t, 1230.0, it.Total)
}

func TestCalculateInventoryAmountsSwitchingRegimeClearsOther(t *testing.T) {
	it := &models.InventoryItem{
		Quantity:      1,
		Rate:          100,
		GSTPercentage: 18,
		TaxType:       models.TaxTypeSGSTCGST,
		// Stale figures from a previous regime.
		IGST: 18,
	}
	CalculateInventoryAmounts(it)
	assert.Equal(t, 0.0, it.IGST)

	it.TaxType = models.TaxTypeIGST
	CalculateInventoryAmounts(it)
	assert.Equal(t, 0.0, it.SGST)
	assert.Equal(t, 0.0, it.CGST)
	assert.Equal(t, 18.0, it.IGST)
}

func TestCalculateInventoryAmountsSanitizesInput(t *testing.T) {
	it := &models.InventoryItem{
		Quantity:      math.NaN(),
		Rate:          -50,
		GSTPercentage: math.Inf(1),
		TaxType:       models.TaxTypeIGST,
	}
	CalculateInventoryAmounts(it)

	assert.Equal(t, 0.0, it.BasicAmt)
	assert.Equal(t, 0.0, it.IGST)
	assert.Equal(t, 0.0, it.Total)
}

func TestInventoryPrepareValidation(t *testing.T) {
	s := &InventoryService{}

	it := &models.InventoryItem{TransactionType: "Trade", TaxType: models.TaxTypeIGST}
	assert.ErrorIs(t, s.prepare(it), ErrInvalidTransaction)

	it = &models.InventoryItem{TransactionType: models.TransactionSales, TaxType: "vat"}
	assert.ErrorIs(t, s.prepare(it), ErrInvalidTaxType)

	it = &models.InventoryItem{TransactionType: models.TransactionSales, TaxType: models.TaxTypeIGST, FinancialYear: "2024-2026"}
	assert.Error(t, s.prepare(it))

	it = &models.InventoryItem{TransactionType: models.TransactionPurchase, TaxType: models.TaxTypeIGST}
	assert.NoError(t, s.prepare(it))
	assert.NotEmpty(t, it.FinancialYear)
}
