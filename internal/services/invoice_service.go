package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/NITHINPOLI04/VMEW/internal/cache"
	"github.com/NITHINPOLI04/VMEW/internal/finance"
	"github.com/NITHINPOLI04/VMEW/internal/metrics"
	"github.com/NITHINPOLI04/VMEW/internal/models"
	"github.com/NITHINPOLI04/VMEW/internal/repositories"
	"github.com/NITHINPOLI04/VMEW/internal/timeutil"
)

var (
	ErrInvoiceNotFound = errors.New("invoice not found")
	ErrInvalidStatus   = errors.New("invalid payment status")
	ErrInvalidTaxType  = errors.New("invalid tax type")
)

const listCacheTTL = 5 * time.Minute

type InvoiceService struct {
	invoices *repositories.InvoiceRepository
}

func NewInvoiceService(invoices *repositories.InvoiceRepository) *InvoiceService {
	return &InvoiceService{invoices: invoices}
}

// prepare recomputes the derived figures on an incoming invoice. The client's
// own totals are never trusted; the stored invoice always reflects a fresh
// server-side calculation. Per-line or aggregate taxable overrides from the
// preview screen are applied after the base recalculation.
func (s *InvoiceService) prepare(inv *models.Invoice, override *models.TaxableOverrideRequest) error {
	if inv.TaxType != models.TaxTypeSGSTCGST && inv.TaxType != models.TaxTypeIGST {
		return ErrInvalidTaxType
	}

	inv.Items = finance.RecalculateItems(inv.Items)

	if override != nil {
		if override.TotalAmount != nil {
			inv.Items = finance.RedistributeTaxable(inv.Items, *override.TotalAmount)
		} else {
			for idx, amount := range override.ItemAmounts {
				if idx >= 0 && idx < len(inv.Items) {
					inv.Items[idx] = finance.OverrideItemTaxable(inv.Items[idx], amount)
				}
			}
		}
	}

	totals := finance.CalculateTotals(inv.Items, inv.TaxType)
	inv.GrandTotal = totals.GrandTotal
	inv.TotalInWords = totals.TotalInWords

	switch inv.PaymentStatus {
	case models.PaymentComplete, models.PartiallyPaid, models.Unpaid:
	case "":
		inv.PaymentStatus = models.Unpaid
	default:
		return ErrInvalidStatus
	}

	if inv.PaymentStatus == models.PartiallyPaid {
		inv.ReceivedAmount = finance.ClampReceived(inv.ReceivedAmount, inv.GrandTotal)
	} else {
		inv.ReceivedAmount = 0
	}

	if inv.Date == "" {
		inv.Date = timeutil.Now().Format(timeutil.DateLayout)
	}
	date, err := time.Parse(timeutil.DateLayout, inv.Date)
	if err != nil {
		return fmt.Errorf("invalid invoice date %q: %w", inv.Date, err)
	}
	inv.FinancialYear = finance.FinancialYearOf(date)
	return nil
}

// CreateInvoiceRequest wraps a new invoice with the optional preview-screen
// taxable override.
type CreateInvoiceRequest struct {
	models.Invoice
	Override *models.TaxableOverrideRequest `json:"override,omitempty"`
}

func (s *InvoiceService) Create(ctx context.Context, req *CreateInvoiceRequest) (*models.Invoice, error) {
	inv := &req.Invoice
	if err := s.prepare(inv, req.Override); err != nil {
		return nil, err
	}

	if err := s.invoices.Create(ctx, inv); err != nil {
		return nil, err
	}

	metrics.InvoicesCreated.Inc()
	cache.InvalidateInvoiceCaches(ctx)
	log.Printf("[Invoice] Created %s (%s), grand total %.2f", inv.InvoiceNumber, inv.FinancialYear, inv.GrandTotal)
	return inv, nil
}

func (s *InvoiceService) Update(ctx context.Context, id int, req *CreateInvoiceRequest) (*models.Invoice, error) {
	inv := &req.Invoice
	inv.ID = id
	if err := s.prepare(inv, req.Override); err != nil {
		return nil, err
	}

	if err := s.invoices.Update(ctx, inv); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}

	cache.InvalidateInvoiceCaches(ctx)
	return inv, nil
}

func (s *InvoiceService) Get(ctx context.Context, id int) (*models.Invoice, error) {
	inv, err := s.invoices.Get(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	return inv, nil
}

// ListByYear returns the invoices of a financial year sorted by the numeric
// prefix of the invoice number ("12/VMEW" sorts after "9/VMEW"). The list is
// cached per year.
func (s *InvoiceService) ListByYear(ctx context.Context, year string) ([]*models.Invoice, error) {
	if _, err := finance.ParseFinancialYear(year); err != nil {
		return nil, err
	}

	key := fmt.Sprintf(cache.InvoiceYearKeyFmt, year)
	if data, ok := cache.GetCached(ctx, key); ok {
		var invoices []*models.Invoice
		if err := json.Unmarshal(data, &invoices); err == nil {
			return invoices, nil
		}
	}

	invoices, err := s.invoices.ListByYear(ctx, year)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(invoices, func(i, j int) bool {
		return invoiceNumberPrefix(invoices[i].InvoiceNumber) < invoiceNumberPrefix(invoices[j].InvoiceNumber)
	})

	if data, err := json.Marshal(invoices); err == nil {
		cache.SetCached(ctx, key, data, listCacheTTL)
	}
	return invoices, nil
}

// invoiceNumberPrefix extracts the leading number of an invoice number for
// sorting. Numbers without a parsable prefix sort last.
func invoiceNumberPrefix(number string) int {
	prefix, _, _ := strings.Cut(number, "/")
	n, err := strconv.Atoi(strings.TrimSpace(prefix))
	if err != nil {
		return int(^uint(0) >> 1)
	}
	return n
}

// UpdatePaymentStatus changes the payment status. Leaving "Partially Paid"
// clears the stored received amount so a stale figure never resurfaces.
func (s *InvoiceService) UpdatePaymentStatus(ctx context.Context, id int, status string) (*models.Invoice, error) {
	switch status {
	case models.PaymentComplete, models.PartiallyPaid, models.Unpaid:
	default:
		return nil, ErrInvalidStatus
	}

	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	if err := s.invoices.UpdatePaymentStatus(ctx, id, status); err != nil {
		return nil, err
	}

	cache.InvalidateInvoiceCaches(ctx)
	return s.Get(ctx, id)
}

// UpdateReceivedAmount records a payment against a partially paid invoice.
// The amount is clamped to [0, grandTotal] before it is stored.
func (s *InvoiceService) UpdateReceivedAmount(ctx context.Context, id int, amount float64) (*models.Invoice, error) {
	inv, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	clamped := finance.ClampReceived(amount, inv.GrandTotal)
	if err := s.invoices.UpdateReceivedAmount(ctx, id, clamped); err != nil {
		return nil, err
	}

	cache.InvalidateInvoiceCaches(ctx)
	inv.ReceivedAmount = clamped
	return inv, nil
}

func (s *InvoiceService) Delete(ctx context.Context, id int) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.invoices.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateInvoiceCaches(ctx)
	return nil
}
