package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NITHINPOLI04/VMEW/internal/models"
)

func TestClassifyPayment(t *testing.T) {
	tests := []struct {
		name       string
		grandTotal float64
		status     string
		received   float64
		wantPaid   float64
		wantUnpaid float64
	}{
		{"complete", 1000, models.PaymentComplete, 0, 1000, 0},
		{"unpaid", 1000, models.Unpaid, 0, 0, 1000},
		{"partial", 1000, models.PartiallyPaid, 400, 400, 600},
		{"partial over-receipt counts as fully paid", 1000, models.PartiallyPaid, 1200, 1000, 0},
		{"partial negative received floors at zero", 1000, models.PartiallyPaid, -50, 0, 1000},
		{"unknown status treated as unpaid", 1000, "Pending", 0, 0, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			split := ClassifyPayment(tt.grandTotal, tt.status, tt.received)
			assert.Equal(t, tt.wantPaid, split.Paid)
			assert.Equal(t, tt.wantUnpaid, split.Unpaid)
		})
	}
}

func TestClampReceived(t *testing.T) {
	assert.Equal(t, 400.0, ClampReceived(400, 1000))
	assert.Equal(t, 1000.0, ClampReceived(1200, 1000))
	assert.Equal(t, 0.0, ClampReceived(-5, 1000))
}

func TestBalanceDue(t *testing.T) {
	// The balance rounds independently of the grand total's own rounding:
	// 1000 was already rounded at creation, yet 1000 - 499.5 = 500.5 rounds
	// up again here.
	assert.Equal(t, 501.0, BalanceDue(1000, 499.5))
	assert.Equal(t, 500.0, BalanceDue(1000, 500.4))
	assert.Equal(t, 0.0, BalanceDue(1000, 1200))
}

func TestAggregate(t *testing.T) {
	invoices := []models.Invoice{
		{
			GrandTotal:    1000,
			PaymentStatus: models.PaymentComplete,
			TaxType:       models.TaxTypeSGSTCGST,
			Items: []models.InvoiceItem{
				{TaxableAmount: 847, SGSTAmount: 76.5, CGSTAmount: 76.5, IGSTAmount: 153},
			},
		},
		{
			GrandTotal:     500,
			PaymentStatus:  models.PartiallyPaid,
			ReceivedAmount: 200,
			TaxType:        models.TaxTypeIGST,
			Items: []models.InvoiceItem{
				{TaxableAmount: 424, IGSTAmount: 76.32},
			},
		},
		{
			GrandTotal:    250,
			PaymentStatus: models.Unpaid,
			TaxType:       models.TaxTypeSGSTCGST,
		},
	}

	s := Aggregate(invoices)

	assert.Equal(t, 3, s.InvoiceCount)
	assert.Equal(t, 1750.0, s.NetRevenue)
	assert.Equal(t, 1200.0, s.TotalPaid)
	assert.Equal(t, 550.0, s.TotalUnpaid)
	assert.Equal(t, 1271.0, s.TotalTaxable)
	// sgstcgst invoice contributes SGST+CGST, igst invoice contributes IGST.
	assert.Equal(t, 76.5+76.5+76.32, s.TotalTax)
	assert.Equal(t, 1, s.PaidInvoices)
	assert.Equal(t, 2, s.OpenInvoices)
	assert.Equal(t, 750.0, s.Receivables)
}

func TestAggregateEmpty(t *testing.T) {
	s := Aggregate(nil)
	assert.Zero(t, s.InvoiceCount)
	assert.Zero(t, s.NetRevenue)
}
