package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NITHINPOLI04/VMEW/internal/models"
)

func TestInvoiceNumberPrefix(t *testing.T) {
	tests := []struct {
		number string
		want   int
	}{
		{"9/VMEW", 9},
		{"12/VMEW", 12},
		{"104/VMEW/24-25", 104},
		{"7", 7},
		{" 15 /VMEW", 15},
		{"VMEW/12", int(^uint(0) >> 1)},
		{"", int(^uint(0) >> 1)},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, invoiceNumberPrefix(tt.number), "number %q", tt.number)
	}
}

func TestPrepareRecomputesTotals(t *testing.T) {
	s := &InvoiceService{}

	inv := &models.Invoice{
		InvoiceNumber: "1/VMEW",
		Date:          "2024-06-15",
		TaxType:       models.TaxTypeSGSTCGST,
		// Client-sent figures are garbage on purpose; prepare must replace them.
		GrandTotal:   999999,
		TotalInWords: "bogus",
		Items: []models.InvoiceItem{
			{Quantity: 10, Rate: 50, SGSTPercentage: 9, CGSTPercentage: 9,
				TaxableAmount: 1, SGSTAmount: 2, CGSTAmount: 3},
		},
	}

	require.NoError(t, s.prepare(inv, nil))

	assert.Equal(t, 500.0, inv.Items[0].TaxableAmount)
	assert.Equal(t, 45.0, inv.Items[0].SGSTAmount)
	assert.Equal(t, 45.0, inv.Items[0].CGSTAmount)
	assert.Equal(t, 590.0, inv.GrandTotal)
	assert.Equal(t, "Five hundred ninety Rupees only", inv.TotalInWords)
	assert.Equal(t, "2024-2025", inv.FinancialYear)
	assert.Equal(t, models.Unpaid, inv.PaymentStatus)
	assert.Equal(t, 0.0, inv.ReceivedAmount)
}

func TestPrepareAppliesAggregateOverride(t *testing.T) {
	s := &InvoiceService{}

	total := 900.0
	inv := &models.Invoice{
		Date:    "2024-06-15",
		TaxType: models.TaxTypeIGST,
		Items: []models.InvoiceItem{
			{Quantity: 1, Rate: 100, IGSTPercentage: 18},
			{Quantity: 1, Rate: 200, IGSTPercentage: 18},
			{Quantity: 1, Rate: 300, IGSTPercentage: 18},
		},
	}

	require.NoError(t, s.prepare(inv, &models.TaxableOverrideRequest{TotalAmount: &total}))

	for _, item := range inv.Items {
		assert.Equal(t, 300.0, item.TaxableAmount)
		assert.Equal(t, 54.0, item.IGSTAmount)
	}
	assert.Equal(t, 1062.0, inv.GrandTotal)
}

func TestPrepareAppliesPerItemOverride(t *testing.T) {
	s := &InvoiceService{}

	inv := &models.Invoice{
		Date:    "2024-06-15",
		TaxType: models.TaxTypeIGST,
		Items: []models.InvoiceItem{
			{Quantity: 2, Rate: 100, IGSTPercentage: 18},
			{Quantity: 1, Rate: 500, IGSTPercentage: 18},
		},
	}

	override := &models.TaxableOverrideRequest{
		ItemAmounts: map[int]float64{1: 450, 5: 999},
	}
	require.NoError(t, s.prepare(inv, override))

	// Untouched line keeps quantity x rate.
	assert.Equal(t, 200.0, inv.Items[0].TaxableAmount)
	// Overridden line ignores quantity x rate; out-of-range index is dropped.
	assert.Equal(t, 450.0, inv.Items[1].TaxableAmount)
	assert.Equal(t, 81.0, inv.Items[1].IGSTAmount)
}

func TestPrepareClampsReceivedAmount(t *testing.T) {
	s := &InvoiceService{}

	inv := &models.Invoice{
		Date:           "2024-06-15",
		TaxType:        models.TaxTypeIGST,
		PaymentStatus:  models.PartiallyPaid,
		ReceivedAmount: 5000,
		Items: []models.InvoiceItem{
			{Quantity: 1, Rate: 1000, IGSTPercentage: 18},
		},
	}

	require.NoError(t, s.prepare(inv, nil))
	assert.Equal(t, 1180.0, inv.GrandTotal)
	assert.Equal(t, 1180.0, inv.ReceivedAmount)
}

func TestPrepareClearsReceivedWhenNotPartial(t *testing.T) {
	s := &InvoiceService{}

	inv := &models.Invoice{
		Date:           "2024-06-15",
		TaxType:        models.TaxTypeIGST,
		PaymentStatus:  models.PaymentComplete,
		ReceivedAmount: 400,
		Items:          []models.InvoiceItem{{Quantity: 1, Rate: 1000}},
	}

	require.NoError(t, s.prepare(inv, nil))
	assert.Equal(t, 0.0, inv.ReceivedAmount)
}

func TestPrepareRejectsBadInput(t *testing.T) {
	s := &InvoiceService{}

	inv := &models.Invoice{Date: "2024-06-15", TaxType: "vat"}
	assert.ErrorIs(t, s.prepare(inv, nil), ErrInvalidTaxType)

	inv = &models.Invoice{Date: "2024-06-15", TaxType: models.TaxTypeIGST, PaymentStatus: "Maybe"}
	assert.ErrorIs(t, s.prepare(inv, nil), ErrInvalidStatus)

	inv = &models.Invoice{Date: "15-06-2024", TaxType: models.TaxTypeIGST}
	assert.Error(t, s.prepare(inv, nil))
}

func TestPrepareFinancialYearBoundary(t *testing.T) {
	s := &InvoiceService{}

	inv := &models.Invoice{Date: "2024-03-31", TaxType: models.TaxTypeIGST}
	require.NoError(t, s.prepare(inv, nil))
	assert.Equal(t, "2023-2024", inv.FinancialYear)

	inv = &models.Invoice{Date: "2024-04-01", TaxType: models.TaxTypeIGST}
	require.NoError(t, s.prepare(inv, nil))
	assert.Equal(t, "2024-2025", inv.FinancialYear)
}
