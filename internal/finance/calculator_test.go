package finance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NITHINPOLI04/VMEW/internal/models"
)

func TestRecalculateItem(t *testing.T) {
	item := RecalculateItem(models.InvoiceItem{
		Quantity:       4,
		Rate:           250.25,
		SGSTPercentage: 9,
		CGSTPercentage: 9,
		IGSTPercentage: 18,
	})

	assert.Equal(t, 4*250.25, item.TaxableAmount)
	assert.Equal(t, item.TaxableAmount*9/100, item.SGSTAmount)
	assert.Equal(t, item.TaxableAmount*9/100, item.CGSTAmount)
	assert.Equal(t, item.TaxableAmount*18/100, item.IGSTAmount)
}

func TestRecalculateItemCoercesBadInput(t *testing.T) {
	item := RecalculateItem(models.InvoiceItem{
		Quantity:       math.NaN(),
		Rate:           -10,
		SGSTPercentage: math.Inf(1),
	})

	assert.Zero(t, item.TaxableAmount)
	assert.Zero(t, item.SGSTAmount)
	assert.Zero(t, item.CGSTAmount)
	assert.Zero(t, item.IGSTAmount)
}

func TestCalculateTotalsGrandTotalRounding(t *testing.T) {
	tests := []struct {
		name    string
		taxable float64
		want    float64
	}{
		{"fraction below half floors", 1000.49, 1000},
		{"fraction at half rounds up", 1000.50, 1001},
		{"fraction above half rounds up", 1000.999, 1001},
		{"whole stays", 1000, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := []models.InvoiceItem{{TaxableAmount: tt.taxable}}
			totals := CalculateTotals(items, models.TaxTypeSGSTCGST)
			assert.Equal(t, tt.want, totals.GrandTotal)
			// Subtotals keep full precision.
			assert.Equal(t, tt.taxable, totals.TotalTaxable)
		})
	}
}

func TestCalculateTotalsRegimeExclusivity(t *testing.T) {
	items := []models.InvoiceItem{
		{TaxableAmount: 1000, SGSTAmount: 90, CGSTAmount: 90, IGSTAmount: 180},
		{TaxableAmount: 500, SGSTAmount: 45, CGSTAmount: 45, IGSTAmount: 90},
	}

	intra := CalculateTotals(items, models.TaxTypeSGSTCGST)
	assert.Equal(t, 270.0, intra.TotalTax)
	assert.Equal(t, 1770.0, intra.GrandTotal)

	// IGST amounts are present on every item but must be ignored under
	// sgstcgst, and vice versa.
	inter := CalculateTotals(items, models.TaxTypeIGST)
	assert.Equal(t, 270.0, inter.TotalTax)
	assert.Equal(t, 1770.0, inter.GrandTotal)
	assert.Equal(t, 135.0, inter.TotalSGST)
}

func TestCalculateTotalsWords(t *testing.T) {
	items := []models.InvoiceItem{{TaxableAmount: 1000}}
	totals := CalculateTotals(items, models.TaxTypeIGST)
	assert.Equal(t, "One thousand Rupees only", totals.TotalInWords)
}

func TestCalculateTotalsIdempotent(t *testing.T) {
	items := RecalculateItems([]models.InvoiceItem{
		{Quantity: 3, Rate: 333.33, SGSTPercentage: 9, CGSTPercentage: 9},
		{Quantity: 7, Rate: 12.5, SGSTPercentage: 2.5, CGSTPercentage: 2.5},
	})

	first := CalculateTotals(items, models.TaxTypeSGSTCGST)
	second := CalculateTotals(RecalculateItems(items), models.TaxTypeSGSTCGST)
	assert.Equal(t, first, second)
}

func TestOverrideItemTaxable(t *testing.T) {
	item := RecalculateItem(models.InvoiceItem{
		Quantity:       2,
		Rate:           100,
		SGSTPercentage: 9,
		CGSTPercentage: 9,
		IGSTPercentage: 18,
	})

	overridden := OverrideItemTaxable(item, 500)

	assert.Equal(t, 500.0, overridden.TaxableAmount)
	assert.Equal(t, 45.0, overridden.SGSTAmount)
	assert.Equal(t, 45.0, overridden.CGSTAmount)
	assert.Equal(t, 90.0, overridden.IGSTAmount)
	// Quantity and rate are untouched; the override wins over qty x rate.
	assert.Equal(t, 2.0, overridden.Quantity)
	assert.Equal(t, 100.0, overridden.Rate)
}

func TestRedistributeTaxable(t *testing.T) {
	items := []models.InvoiceItem{
		{SGSTPercentage: 9, CGSTPercentage: 9, TaxableAmount: 100},
		{SGSTPercentage: 6, CGSTPercentage: 6, TaxableAmount: 200},
		{IGSTPercentage: 18, TaxableAmount: 300},
	}

	out := RedistributeTaxable(items, 900)
	require.Len(t, out, 3)

	for _, item := range out {
		assert.Equal(t, 300.0, item.TaxableAmount)
	}
	// Each item's taxes recompute from its own percentages.
	assert.Equal(t, 27.0, out[0].SGSTAmount)
	assert.Equal(t, 18.0, out[1].CGSTAmount)
	assert.Equal(t, 54.0, out[2].IGSTAmount)
}

func TestRedistributeTaxableNoItems(t *testing.T) {
	assert.Empty(t, RedistributeTaxable(nil, 900))
}

func TestParseAmount(t *testing.T) {
	assert.Equal(t, 12.5, ParseAmount("12.5"))
	assert.Zero(t, ParseAmount("not a number"))
	assert.Zero(t, ParseAmount(""))
	assert.Zero(t, ParseAmount("-3"))
}
