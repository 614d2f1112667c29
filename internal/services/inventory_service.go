package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/NITHINPOLI04/VMEW/internal/cache"
	"github.com/NITHINPOLI04/VMEW/internal/finance"
	"github.com/NITHINPOLI04/VMEW/internal/models"
	"github.com/NITHINPOLI04/VMEW/internal/repositories"
	"github.com/NITHINPOLI04/VMEW/internal/timeutil"
)

var (
	ErrItemNotFound       = errors.New("inventory item not found")
	ErrInvalidTransaction = errors.New("invalid transaction type")
)

type InventoryService struct {
	inventory *repositories.InventoryRepository
}

func NewInventoryService(inventory *repositories.InventoryRepository) *InventoryService {
	return &InventoryService{inventory: inventory}
}

// CalculateInventoryAmounts derives the register's money columns. The GST
// percentage is split in half between SGST and CGST for intra-state entries
// or applied whole as IGST; transport is added on top of the taxed amount.
func CalculateInventoryAmounts(it *models.InventoryItem) {
	qty := it.Quantity
	rate := it.Rate
	pct := it.GSTPercentage
	if math.IsNaN(qty) || math.IsInf(qty, 0) || qty < 0 {
		qty = 0
	}
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate < 0 {
		rate = 0
	}
	if math.IsNaN(pct) || math.IsInf(pct, 0) || pct < 0 {
		pct = 0
	}

	it.BasicAmt = qty * rate
	if it.TaxType == models.TaxTypeSGSTCGST {
		half := it.BasicAmt * (pct / 2) / 100
		it.SGST = half
		it.CGST = half
		it.IGST = 0
	} else {
		it.IGST = it.BasicAmt * pct / 100
		it.SGST = 0
		it.CGST = 0
	}
	it.Total = it.BasicAmt + it.SGST + it.CGST + it.IGST + it.Transport
}

func (s *InventoryService) prepare(it *models.InventoryItem) error {
	if it.TransactionType != models.TransactionSales && it.TransactionType != models.TransactionPurchase {
		return ErrInvalidTransaction
	}
	if it.TaxType != models.TaxTypeSGSTCGST && it.TaxType != models.TaxTypeIGST {
		return ErrInvalidTaxType
	}

	CalculateInventoryAmounts(it)

	if it.FinancialYear == "" {
		it.FinancialYear = finance.FinancialYearOf(timeutil.Now())
	} else if _, err := finance.ParseFinancialYear(it.FinancialYear); err != nil {
		return err
	}
	return nil
}

func (s *InventoryService) Create(ctx context.Context, it *models.InventoryItem) error {
	if err := s.prepare(it); err != nil {
		return err
	}
	if err := s.inventory.Create(ctx, it); err != nil {
		return err
	}
	cache.InvalidateInventoryCaches(ctx)
	return nil
}

func (s *InventoryService) Update(ctx context.Context, id int, it *models.InventoryItem) error {
	it.ID = id
	if err := s.prepare(it); err != nil {
		return err
	}
	if err := s.inventory.Update(ctx, it); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrItemNotFound
		}
		return err
	}
	cache.InvalidateInventoryCaches(ctx)
	return nil
}

func (s *InventoryService) Get(ctx context.Context, id int) (*models.InventoryItem, error) {
	it, err := s.inventory.Get(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return it, nil
}

// ListByYear returns the register rows of a financial year, cached per year.
func (s *InventoryService) ListByYear(ctx context.Context, year string) ([]*models.InventoryItem, error) {
	if _, err := finance.ParseFinancialYear(year); err != nil {
		return nil, err
	}

	key := fmt.Sprintf(cache.InventoryYearKeyFmt, year)
	if data, ok := cache.GetCached(ctx, key); ok {
		var items []*models.InventoryItem
		if err := json.Unmarshal(data, &items); err == nil {
			return items, nil
		}
	}

	items, err := s.inventory.ListByYear(ctx, year)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(items); err == nil {
		cache.SetCached(ctx, key, data, 5*time.Minute)
	}
	return items, nil
}

func (s *InventoryService) Delete(ctx context.Context, id int) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.inventory.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateInventoryCaches(ctx)
	return nil
}
