package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/NITHINPOLI04/VMEW/internal/models"
)

type InventoryRepository struct {
	DB *pgxpool.Pool
}

func NewInventoryRepository(db *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{DB: db}
}

const inventoryColumns = `id, description, hsn_sac_code, quantity, unit, rate,
	transaction_type, party_name, party_gst_no, basic_amt, igst, cgst, sgst,
	total, transport, gst_percentage, tax_type, financial_year, created_at, updated_at`

func scanInventoryItem(row interface{ Scan(...any) error }) (*models.InventoryItem, error) {
	var it models.InventoryItem
	err := row.Scan(&it.ID, &it.Description, &it.HSNSACCode, &it.Quantity, &it.Unit,
		&it.Rate, &it.TransactionType, &it.PartyName, &it.PartyGSTNo, &it.BasicAmt,
		&it.IGST, &it.CGST, &it.SGST, &it.Total, &it.Transport, &it.GSTPercentage,
		&it.TaxType, &it.FinancialYear, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *InventoryRepository) Create(ctx context.Context, it *models.InventoryItem) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO inventory_items(description, hsn_sac_code, quantity, unit, rate,
			transaction_type, party_name, party_gst_no, basic_amt, igst, cgst, sgst,
			total, transport, gst_percentage, tax_type, financial_year)
		 VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		 RETURNING id, created_at, updated_at`,
		it.Description, it.HSNSACCode, it.Quantity, it.Unit, it.Rate,
		it.TransactionType, it.PartyName, it.PartyGSTNo, it.BasicAmt, it.IGST,
		it.CGST, it.SGST, it.Total, it.Transport, it.GSTPercentage, it.TaxType,
		it.FinancialYear,
	).Scan(&it.ID, &it.CreatedAt, &it.UpdatedAt)
}

func (r *InventoryRepository) Update(ctx context.Context, it *models.InventoryItem) error {
	return r.DB.QueryRow(ctx,
		`UPDATE inventory_items SET description=$1, hsn_sac_code=$2, quantity=$3,
			unit=$4, rate=$5, transaction_type=$6, party_name=$7, party_gst_no=$8,
			basic_amt=$9, igst=$10, cgst=$11, sgst=$12, total=$13, transport=$14,
			gst_percentage=$15, tax_type=$16, financial_year=$17, updated_at=NOW()
		 WHERE id=$18
		 RETURNING created_at, updated_at`,
		it.Description, it.HSNSACCode, it.Quantity, it.Unit, it.Rate,
		it.TransactionType, it.PartyName, it.PartyGSTNo, it.BasicAmt, it.IGST,
		it.CGST, it.SGST, it.Total, it.Transport, it.GSTPercentage, it.TaxType,
		it.FinancialYear, it.ID,
	).Scan(&it.CreatedAt, &it.UpdatedAt)
}

func (r *InventoryRepository) Get(ctx context.Context, id int) (*models.InventoryItem, error) {
	return scanInventoryItem(r.DB.QueryRow(ctx,
		`SELECT `+inventoryColumns+` FROM inventory_items WHERE id=$1`, id))
}

// ListByYear returns the register rows of a financial year, newest first.
func (r *InventoryRepository) ListByYear(ctx context.Context, year string) ([]*models.InventoryItem, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+inventoryColumns+` FROM inventory_items
		 WHERE financial_year=$1 ORDER BY created_at DESC`, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.InventoryItem
	for rows.Next() {
		it, err := scanInventoryItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *InventoryRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM inventory_items WHERE id=$1`, id)
	return err
}
