package services

import (
	"context"
	"time"

	"github.com/NITHINPOLI04/VMEW/internal/finance"
	"github.com/NITHINPOLI04/VMEW/internal/models"
	"github.com/NITHINPOLI04/VMEW/internal/timeutil"
)

type DashboardService struct {
	invoices *InvoiceService
}

func NewDashboardService(invoices *InvoiceService) *DashboardService {
	return &DashboardService{invoices: invoices}
}

// Summary aggregates a financial year's invoices. A month filter (1-12,
// calendar month) narrows the set to invoices dated in that month before
// aggregation.
func (s *DashboardService) Summary(ctx context.Context, year string, month int) (*finance.YearSummary, error) {
	invoices, err := s.invoices.ListByYear(ctx, year)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if month >= 1 && month <= 12 {
			date, err := time.Parse(timeutil.DateLayout, inv.Date)
			if err != nil || int(date.Month()) != month {
				continue
			}
		}
		filtered = append(filtered, *inv)
	}

	summary := finance.Aggregate(filtered)
	return &summary, nil
}
