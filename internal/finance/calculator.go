// Package finance is the single home of the invoice tax, rounding and
// payment arithmetic. The invoice editor, the preview/PDF exporter and the
// dashboard all call into this package instead of re-deriving the rules.
// Everything here is pure: inputs in, derived figures out, no I/O.
package finance

import (
	"math"
	"strconv"

	"github.com/NITHINPOLI04/VMEW/internal/models"
)

// InvoiceTotals holds the invoice-level figures derived from the line items.
// The per-regime subtotals keep full decimal precision; only GrandTotal is
// rounded.
type InvoiceTotals struct {
	TotalTaxable float64
	TotalSGST    float64
	TotalCGST    float64
	TotalIGST    float64
	TotalTax     float64
	GrandTotal   float64
	TotalInWords string
}

// sanitize coerces non-finite or negative numeric input to 0. The forms feed
// raw user input straight through, and a bad keystroke must never produce a
// NaN invoice.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// ParseAmount parses a decimal string, coercing anything unparsable to 0.
func ParseAmount(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return sanitize(v)
}

// RoundRupee applies the grand-total rounding rule: a fractional part of
// 0.50 or more rounds up to the next rupee, anything less is dropped.
func RoundRupee(v float64) float64 {
	if v-math.Floor(v) >= 0.50 {
		return math.Ceil(v)
	}
	return math.Floor(v)
}

// RecalculateItem derives taxableAmount and the three tax amounts from the
// item's quantity, rate and percentages. Called on every field edit; safe to
// call repeatedly.
func RecalculateItem(item models.InvoiceItem) models.InvoiceItem {
	item.Quantity = sanitize(item.Quantity)
	item.Rate = sanitize(item.Rate)
	item.SGSTPercentage = sanitize(item.SGSTPercentage)
	item.CGSTPercentage = sanitize(item.CGSTPercentage)
	item.IGSTPercentage = sanitize(item.IGSTPercentage)

	item.TaxableAmount = item.Quantity * item.Rate
	item.SGSTAmount = item.TaxableAmount * item.SGSTPercentage / 100
	item.CGSTAmount = item.TaxableAmount * item.CGSTPercentage / 100
	item.IGSTAmount = item.TaxableAmount * item.IGSTPercentage / 100
	return item
}

// RecalculateItems runs RecalculateItem over a whole invoice.
func RecalculateItems(items []models.InvoiceItem) []models.InvoiceItem {
	out := make([]models.InvoiceItem, len(items))
	for i, item := range items {
		out[i] = RecalculateItem(item)
	}
	return out
}

// CalculateTotals sums the line items and derives the grand total under the
// selected tax regime. SGST/CGST and IGST are mutually exclusive: whichever
// regime is not selected is excluded from the total even if its per-item
// amounts are nonzero. Rounding applies to the grand total only.
func CalculateTotals(items []models.InvoiceItem, taxType string) InvoiceTotals {
	var t InvoiceTotals
	for _, item := range items {
		t.TotalTaxable += item.TaxableAmount
		t.TotalSGST += item.SGSTAmount
		t.TotalCGST += item.CGSTAmount
		t.TotalIGST += item.IGSTAmount
	}

	if taxType == models.TaxTypeSGSTCGST {
		t.TotalTax = t.TotalSGST + t.TotalCGST
	} else {
		t.TotalTax = t.TotalIGST
	}

	t.GrandTotal = RoundRupee(t.TotalTaxable + t.TotalTax)
	t.TotalInWords = ConvertToWords(t.GrandTotal)
	return t
}

// OverrideItemTaxable overwrites one line's taxable amount and recomputes its
// tax amounts from the new figure. This is the preview-screen correction
// path: quantity x rate is deliberately NOT reapplied.
func OverrideItemTaxable(item models.InvoiceItem, taxable float64) models.InvoiceItem {
	item.TaxableAmount = sanitize(taxable)
	item.SGSTAmount = item.TaxableAmount * item.SGSTPercentage / 100
	item.CGSTAmount = item.TaxableAmount * item.CGSTPercentage / 100
	item.IGSTAmount = item.TaxableAmount * item.IGSTPercentage / 100
	return item
}

// RedistributeTaxable divides an aggregate taxable override evenly across all
// line items and recomputes each item's tax amounts from its share. With no
// items there is nothing to divide and the input is returned untouched.
func RedistributeTaxable(items []models.InvoiceItem, total float64) []models.InvoiceItem {
	if len(items) == 0 {
		return items
	}
	share := sanitize(total) / float64(len(items))
	out := make([]models.InvoiceItem, len(items))
	for i, item := range items {
		out[i] = OverrideItemTaxable(item, share)
	}
	return out
}
