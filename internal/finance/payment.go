package finance

import (
	"github.com/NITHINPOLI04/VMEW/internal/models"
)

// PaymentSplit is an invoice's paid/unpaid breakdown for reporting.
type PaymentSplit struct {
	Paid   float64
	Unpaid float64
}

// ClassifyPayment splits an invoice's grand total into paid and unpaid per
// its payment status. An over-receipt on a partially paid invoice counts as
// fully paid for aggregation even though the stored status stays
// "Partially Paid" until changed.
func ClassifyPayment(grandTotal float64, status string, received float64) PaymentSplit {
	grandTotal = sanitize(grandTotal)
	switch status {
	case models.PaymentComplete:
		return PaymentSplit{Paid: grandTotal}
	case models.PartiallyPaid:
		paid := ClampReceived(received, grandTotal)
		return PaymentSplit{Paid: paid, Unpaid: grandTotal - paid}
	default: // Unpaid
		return PaymentSplit{Unpaid: grandTotal}
	}
}

// ClampReceived bounds a candidate received amount to [0, grandTotal].
func ClampReceived(amount, grandTotal float64) float64 {
	amount = sanitize(amount)
	if amount > grandTotal {
		return grandTotal
	}
	return amount
}

// BalanceDue is the library view's outstanding figure: grand total minus
// received, rounded with the same half-up rule as the grand total. The
// rounding happens freshly here each time, independent of the rounding
// already applied to the grand total at creation.
func BalanceDue(grandTotal, received float64) float64 {
	return RoundRupee(sanitize(grandTotal) - ClampReceived(received, sanitize(grandTotal)))
}

// YearSummary aggregates a filtered invoice set for the dashboard.
type YearSummary struct {
	InvoiceCount int     `json:"invoiceCount"`
	NetRevenue   float64 `json:"netRevenue"`
	TotalPaid    float64 `json:"totalPaid"`
	TotalUnpaid  float64 `json:"totalUnpaid"`
	TotalTaxable float64 `json:"totalTaxable"`
	TotalTax     float64 `json:"totalTax"`
	Receivables  float64 `json:"receivables"`
	PaidInvoices int     `json:"paidInvoices"`
	OpenInvoices int     `json:"openInvoices"`
}

// Aggregate sums paid/unpaid and the per-item taxable and tax figures across
// an invoice set. Tax sums respect each invoice's own regime.
func Aggregate(invoices []models.Invoice) YearSummary {
	var s YearSummary
	s.InvoiceCount = len(invoices)
	for _, inv := range invoices {
		split := ClassifyPayment(inv.GrandTotal, inv.PaymentStatus, inv.ReceivedAmount)
		s.NetRevenue += inv.GrandTotal
		s.TotalPaid += split.Paid
		s.TotalUnpaid += split.Unpaid
		if inv.PaymentStatus == models.PaymentComplete {
			s.PaidInvoices++
		} else {
			s.OpenInvoices++
			s.Receivables += inv.GrandTotal
		}

		t := CalculateTotals(inv.Items, inv.TaxType)
		s.TotalTaxable += t.TotalTaxable
		s.TotalTax += t.TotalTax
	}
	return s
}
