package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf/v2"

	"github.com/NITHINPOLI04/VMEW/internal/finance"
	"github.com/NITHINPOLI04/VMEW/internal/metrics"
	"github.com/NITHINPOLI04/VMEW/internal/models"
	"github.com/NITHINPOLI04/VMEW/internal/timeutil"
)

// PDFService renders a stored invoice as the printable tax invoice. The
// letterhead and bank/terms blocks come from the saved templates.
type PDFService struct {
	invoices  *InvoiceService
	templates *TemplateService
}

func NewPDFService(invoices *InvoiceService, templates *TemplateService) *PDFService {
	return &PDFService{invoices: invoices, templates: templates}
}

// GenerateInvoicePDF renders one invoice as an A4 portrait PDF.
func (s *PDFService) GenerateInvoicePDF(ctx context.Context, id int) ([]byte, string, error) {
	inv, err := s.invoices.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}

	letterhead, err := s.templates.GetLetterhead(ctx)
	if err != nil {
		return nil, "", err
	}
	defaultInfo, err := s.templates.GetDefaultInfo(ctx)
	if err != nil {
		return nil, "", err
	}

	data, err := renderInvoice(inv, letterhead, defaultInfo)
	if err != nil {
		return nil, "", err
	}

	metrics.PDFsGenerated.Inc()
	filename := fmt.Sprintf("invoice_%s.pdf", sanitizeFilename(inv.InvoiceNumber))
	return data, filename, nil
}

func sanitizeFilename(s string) string {
	out := []rune(s)
	for i, r := range out {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', ' ':
			out[i] = '_'
		}
	}
	return string(out)
}

func renderInvoice(inv *models.Invoice, lh *models.Letterhead, di *models.DefaultInfo) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Letterhead
	pdf.SetFont("Arial", "B", 16)
	companyName := lh.CompanyName
	if companyName == "" {
		companyName = "Tax Invoice"
	}
	pdf.CellFormat(190, 10, companyName, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	if lh.Address != "" {
		pdf.CellFormat(190, 5, lh.Address, "", 1, "C", false, 0, "")
	}
	if lh.Workshop != "" {
		pdf.CellFormat(190, 5, fmt.Sprintf("Workshop: %s", lh.Workshop), "", 1, "C", false, 0, "")
	}
	contact := ""
	if lh.Email != "" {
		contact = fmt.Sprintf("Email: %s", lh.Email)
	}
	if lh.Cell != "" {
		if contact != "" {
			contact += "  |  "
		}
		contact += fmt.Sprintf("Cell: %s", lh.Cell)
	}
	if contact != "" {
		pdf.CellFormat(190, 5, contact, "", 1, "C", false, 0, "")
	}
	if lh.GSTNo != "" {
		pdf.SetFont("Arial", "B", 9)
		pdf.CellFormat(190, 5, fmt.Sprintf("GST No: %s", lh.GSTNo), "", 1, "C", false, 0, "")
	}
	pdf.Ln(2)

	pdf.SetFont("Arial", "B", 12)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(190, 8, "TAX INVOICE", "1", 1, "C", true, 0, "")

	// Invoice meta + buyer block
	displayDate := inv.Date
	if d, err := time.Parse(timeutil.DateLayout, inv.Date); err == nil {
		displayDate = d.Format(timeutil.DisplayLayout)
	}

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(95, 7, fmt.Sprintf("Invoice No: %s", inv.InvoiceNumber), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Date: %s", displayDate), "RB", 1, "L", false, 0, "")

	meta := [][2]string{
		{"Vessel", inv.Vessel},
		{"P.O. No", inv.PONumber},
		{"D.C. No", inv.DCNumber},
		{"E-Way Bill No", inv.EwayBillNo},
	}
	left := true
	for _, m := range meta {
		if m[1] == "" {
			continue
		}
		border, ln := "LB", 0
		if !left {
			border, ln = "RB", 1
		}
		pdf.CellFormat(95, 7, fmt.Sprintf("%s: %s", m[0], m[1]), border, ln, "L", false, 0, "")
		left = !left
	}
	if !left {
		pdf.CellFormat(95, 7, "", "RB", 1, "L", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(190, 7, "Buyer", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, inv.BuyerName, "LR", 1, "L", false, 0, "")
	if inv.BuyerAddress != "" {
		pdf.MultiCell(190, 5, inv.BuyerAddress, "LR", "L", false)
	}
	pdf.CellFormat(95, 6, fmt.Sprintf("GST No: %s", inv.BuyerGST), "LB", 0, "L", false, 0, "")
	pan := inv.BuyerPAN
	if inv.BuyerMSME != "" {
		pan += fmt.Sprintf("  MSME: %s", inv.BuyerMSME)
	}
	pdf.CellFormat(95, 6, fmt.Sprintf("PAN: %s", pan), "RB", 1, "L", false, 0, "")
	pdf.Ln(2)

	// Items table
	intraState := inv.TaxType == models.TaxTypeSGSTCGST

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(10, 7, "Sl", "1", 0, "C", true, 0, "")
	pdf.CellFormat(60, 7, "Description", "1", 0, "C", true, 0, "")
	pdf.CellFormat(18, 7, "HSN/SAC", "1", 0, "C", true, 0, "")
	pdf.CellFormat(14, 7, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(12, 7, "Unit", "1", 0, "C", true, 0, "")
	pdf.CellFormat(18, 7, "Rate", "1", 0, "C", true, 0, "")
	pdf.CellFormat(22, 7, "Taxable", "1", 0, "C", true, 0, "")
	if intraState {
		pdf.CellFormat(18, 7, "SGST", "1", 0, "C", true, 0, "")
		pdf.CellFormat(18, 7, "CGST", "1", 1, "C", true, 0, "")
	} else {
		pdf.CellFormat(36, 7, "IGST", "1", 1, "C", true, 0, "")
	}

	pdf.SetFont("Arial", "", 9)
	for i, item := range inv.Items {
		desc := item.Description
		if len(desc) > 32 {
			desc = desc[:29] + "..."
		}
		pdf.CellFormat(10, 6, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(60, 6, desc, "1", 0, "L", false, 0, "")
		pdf.CellFormat(18, 6, item.HSNSACCode, "1", 0, "C", false, 0, "")
		pdf.CellFormat(14, 6, fmt.Sprintf("%g", item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(12, 6, item.Unit, "1", 0, "C", false, 0, "")
		pdf.CellFormat(18, 6, fmt.Sprintf("%.2f", item.Rate), "1", 0, "R", false, 0, "")
		pdf.CellFormat(22, 6, fmt.Sprintf("%.2f", item.TaxableAmount), "1", 0, "R", false, 0, "")
		if intraState {
			pdf.CellFormat(18, 6, fmt.Sprintf("%.2f", item.SGSTAmount), "1", 0, "R", false, 0, "")
			pdf.CellFormat(18, 6, fmt.Sprintf("%.2f", item.CGSTAmount), "1", 1, "R", false, 0, "")
		} else {
			pdf.CellFormat(36, 6, fmt.Sprintf("%.2f", item.IGSTAmount), "1", 1, "R", false, 0, "")
		}
	}

	// Totals
	totals := finance.CalculateTotals(inv.Items, inv.TaxType)
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(132, 6, "Total Taxable", "1", 0, "R", false, 0, "")
	pdf.CellFormat(22, 6, fmt.Sprintf("%.2f", totals.TotalTaxable), "1", 0, "R", false, 0, "")
	if intraState {
		pdf.CellFormat(18, 6, fmt.Sprintf("%.2f", totals.TotalSGST), "1", 0, "R", false, 0, "")
		pdf.CellFormat(18, 6, fmt.Sprintf("%.2f", totals.TotalCGST), "1", 1, "R", false, 0, "")
	} else {
		pdf.CellFormat(36, 6, fmt.Sprintf("%.2f", totals.TotalIGST), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(154, 8, "Grand Total", "1", 0, "R", true, 0, "")
	pdf.CellFormat(36, 8, fmt.Sprintf("Rs. %.0f", inv.GrandTotal), "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(190, 6, inv.TotalInWords, "1", 1, "L", false, 0, "")
	pdf.Ln(3)

	// Bank details
	if di.BankName != "" || di.AccountNo != "" {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(190, 7, "Bank Details", "1", 1, "L", true, 0, "")
		pdf.SetFont("Arial", "", 9)
		pdf.CellFormat(95, 6, fmt.Sprintf("Bank: %s, %s", di.BankName, di.Branch), "LB", 0, "L", false, 0, "")
		pdf.CellFormat(95, 6, fmt.Sprintf("A/C No: %s  IFSC: %s", di.AccountNo, di.IFSCCode), "RB", 1, "L", false, 0, "")
		if di.PANNo != "" || di.MSMENo != "" {
			pdf.CellFormat(95, 6, fmt.Sprintf("PAN: %s", di.PANNo), "LB", 0, "L", false, 0, "")
			pdf.CellFormat(95, 6, fmt.Sprintf("MSME: %s", di.MSMENo), "RB", 1, "L", false, 0, "")
		}
		pdf.Ln(2)
	}

	// Terms
	if len(di.Terms) > 0 {
		pdf.SetFont("Arial", "B", 9)
		pdf.CellFormat(190, 6, "Terms & Conditions", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 8)
		for i, term := range di.Terms {
			pdf.CellFormat(190, 4.5, fmt.Sprintf("%d. %s", i+1, term), "", 1, "L", false, 0, "")
		}
	}

	pdf.Ln(8)
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(95, 6, "Receiver's Signature", "T", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, fmt.Sprintf("For %s", companyName), "T", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
