package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/NITHINPOLI04/VMEW/internal/models"
	"github.com/NITHINPOLI04/VMEW/internal/timeutil"
)

type InvoiceRepository struct {
	DB *pgxpool.Pool
}

func NewInvoiceRepository(db *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{DB: db}
}

const invoiceColumns = `id, invoice_number, invoice_date, buyer_name, buyer_address,
	buyer_gst, buyer_pan, buyer_msme, vessel, po_number, dc_number, eway_bill_no,
	tax_type, grand_total, total_in_words, payment_status, received_amount,
	financial_year, created_at, updated_at`

func scanInvoice(row interface{ Scan(...any) error }) (*models.Invoice, error) {
	var inv models.Invoice
	var date time.Time
	err := row.Scan(&inv.ID, &inv.InvoiceNumber, &date, &inv.BuyerName, &inv.BuyerAddress,
		&inv.BuyerGST, &inv.BuyerPAN, &inv.BuyerMSME, &inv.Vessel, &inv.PONumber,
		&inv.DCNumber, &inv.EwayBillNo, &inv.TaxType, &inv.GrandTotal, &inv.TotalInWords,
		&inv.PaymentStatus, &inv.ReceivedAmount, &inv.FinancialYear,
		&inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	inv.Date = date.Format(timeutil.DateLayout)
	return &inv, nil
}

// Create inserts an invoice with its line items in one transaction. Item
// order is preserved through the position column.
func (r *InvoiceRepository) Create(ctx context.Context, inv *models.Invoice) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO invoices(invoice_number, invoice_date, buyer_name, buyer_address,
			buyer_gst, buyer_pan, buyer_msme, vessel, po_number, dc_number, eway_bill_no,
			tax_type, grand_total, total_in_words, payment_status, received_amount, financial_year)
		 VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		 RETURNING id, created_at, updated_at`,
		inv.InvoiceNumber, inv.Date, inv.BuyerName, inv.BuyerAddress,
		inv.BuyerGST, inv.BuyerPAN, inv.BuyerMSME, inv.Vessel, inv.PONumber,
		inv.DCNumber, inv.EwayBillNo, inv.TaxType, inv.GrandTotal, inv.TotalInWords,
		inv.PaymentStatus, inv.ReceivedAmount, inv.FinancialYear,
	).Scan(&inv.ID, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return err
	}

	for i, item := range inv.Items {
		_, err = tx.Exec(ctx,
			`INSERT INTO invoice_items(invoice_id, position, description, hsn_sac_code,
				quantity, unit, rate, taxable_amount, sgst_percentage, sgst_amount,
				cgst_percentage, cgst_amount, igst_percentage, igst_amount)
			 VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
			inv.ID, i, item.Description, item.HSNSACCode,
			item.Quantity, item.Unit, item.Rate, item.TaxableAmount,
			item.SGSTPercentage, item.SGSTAmount, item.CGSTPercentage, item.CGSTAmount,
			item.IGSTPercentage, item.IGSTAmount,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// Update rewrites the invoice row and replaces its line items.
func (r *InvoiceRepository) Update(ctx context.Context, inv *models.Invoice) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`UPDATE invoices SET invoice_number=$1, invoice_date=$2, buyer_name=$3,
			buyer_address=$4, buyer_gst=$5, buyer_pan=$6, buyer_msme=$7, vessel=$8,
			po_number=$9, dc_number=$10, eway_bill_no=$11, tax_type=$12, grand_total=$13,
			total_in_words=$14, payment_status=$15, received_amount=$16,
			financial_year=$17, updated_at=NOW()
		 WHERE id=$18
		 RETURNING created_at, updated_at`,
		inv.InvoiceNumber, inv.Date, inv.BuyerName, inv.BuyerAddress,
		inv.BuyerGST, inv.BuyerPAN, inv.BuyerMSME, inv.Vessel, inv.PONumber,
		inv.DCNumber, inv.EwayBillNo, inv.TaxType, inv.GrandTotal, inv.TotalInWords,
		inv.PaymentStatus, inv.ReceivedAmount, inv.FinancialYear, inv.ID,
	).Scan(&inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return err
	}

	if _, err = tx.Exec(ctx, `DELETE FROM invoice_items WHERE invoice_id=$1`, inv.ID); err != nil {
		return err
	}

	for i, item := range inv.Items {
		_, err = tx.Exec(ctx,
			`INSERT INTO invoice_items(invoice_id, position, description, hsn_sac_code,
				quantity, unit, rate, taxable_amount, sgst_percentage, sgst_amount,
				cgst_percentage, cgst_amount, igst_percentage, igst_amount)
			 VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
			inv.ID, i, item.Description, item.HSNSACCode,
			item.Quantity, item.Unit, item.Rate, item.TaxableAmount,
			item.SGSTPercentage, item.SGSTAmount, item.CGSTPercentage, item.CGSTAmount,
			item.IGSTPercentage, item.IGSTAmount,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// Get retrieves an invoice by ID with its line items in display order.
func (r *InvoiceRepository) Get(ctx context.Context, id int) (*models.Invoice, error) {
	inv, err := scanInvoice(r.DB.QueryRow(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE id=$1`, id))
	if err != nil {
		return nil, err
	}

	items, err := r.getItems(ctx, []int{id})
	if err != nil {
		return nil, err
	}
	inv.Items = items[id]
	return inv, nil
}

// ListByYear returns all invoices of a financial year, items included.
func (r *InvoiceRepository) ListByYear(ctx context.Context, year string) ([]*models.Invoice, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+invoiceColumns+` FROM invoices
		 WHERE financial_year=$1 ORDER BY created_at DESC`, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []*models.Invoice
	var ids []int
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
		ids = append(ids, inv.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return invoices, nil
	}

	items, err := r.getItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, inv := range invoices {
		inv.Items = items[inv.ID]
	}
	return invoices, nil
}

func (r *InvoiceRepository) getItems(ctx context.Context, invoiceIDs []int) (map[int][]models.InvoiceItem, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT invoice_id, id, description, hsn_sac_code, quantity, unit, rate,
			taxable_amount, sgst_percentage, sgst_amount, cgst_percentage, cgst_amount,
			igst_percentage, igst_amount
		 FROM invoice_items WHERE invoice_id = ANY($1)
		 ORDER BY invoice_id, position`, invoiceIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[int][]models.InvoiceItem)
	for rows.Next() {
		var invoiceID int
		var item models.InvoiceItem
		err := rows.Scan(&invoiceID, &item.ID, &item.Description, &item.HSNSACCode,
			&item.Quantity, &item.Unit, &item.Rate, &item.TaxableAmount,
			&item.SGSTPercentage, &item.SGSTAmount, &item.CGSTPercentage, &item.CGSTAmount,
			&item.IGSTPercentage, &item.IGSTAmount)
		if err != nil {
			return nil, err
		}
		items[invoiceID] = append(items[invoiceID], item)
	}
	return items, rows.Err()
}

// UpdatePaymentStatus sets the payment status. Moving away from
// "Partially Paid" clears the stored received amount.
func (r *InvoiceRepository) UpdatePaymentStatus(ctx context.Context, id int, status string) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE invoices SET payment_status=$1,
			received_amount=CASE WHEN $1 = 'Partially Paid' THEN received_amount ELSE 0 END,
			updated_at=NOW()
		 WHERE id=$2`, status, id)
	return err
}

// UpdateReceivedAmount stores the (already clamped) received amount.
func (r *InvoiceRepository) UpdateReceivedAmount(ctx context.Context, id int, amount float64) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE invoices SET received_amount=$1, updated_at=NOW() WHERE id=$2`, amount, id)
	return err
}

// Delete removes an invoice; items cascade.
func (r *InvoiceRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM invoices WHERE id=$1`, id)
	return err
}
