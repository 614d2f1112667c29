package models

import "time"

// Tax regimes. An invoice charges either the SGST+CGST pair (intra-state)
// or IGST alone (inter-state), never both.
const (
	TaxTypeSGSTCGST = "sgstcgst"
	TaxTypeIGST     = "igst"
)

// Payment statuses as shown in the invoice library.
const (
	PaymentComplete = "Payment Complete"
	PartiallyPaid   = "Partially Paid"
	Unpaid          = "Unpaid"
)

// InvoiceItem is one line of a tax invoice. TaxableAmount and the three tax
// amounts are derived from quantity, rate and the percentages; they are only
// independently authoritative after a preview-screen override.
type InvoiceItem struct {
	ID             int     `json:"id,omitempty"`
	Description    string  `json:"description"`
	HSNSACCode     string  `json:"hsnSacCode"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"` // Nos | Mts | Lts | Pkt | Kgs
	Rate           float64 `json:"rate"`
	TaxableAmount  float64 `json:"taxableAmount"`
	SGSTPercentage float64 `json:"sgstPercentage"`
	SGSTAmount     float64 `json:"sgstAmount"`
	CGSTPercentage float64 `json:"cgstPercentage"`
	CGSTAmount     float64 `json:"cgstAmount"`
	IGSTPercentage float64 `json:"igstPercentage"`
	IGSTAmount     float64 `json:"igstAmount"`
}

// Invoice is a GST tax invoice. Item order is meaningful (serial numbering on
// the printed document). JSON keys are camelCase to match the web client.
type Invoice struct {
	ID             int           `json:"id"`
	InvoiceNumber  string        `json:"invoiceNumber"` // "<number>/<suffix>", sorted by numeric prefix
	Date           string        `json:"date"`          // YYYY-MM-DD
	BuyerName      string        `json:"buyerName"`
	BuyerAddress   string        `json:"buyerAddress"`
	BuyerGST       string        `json:"buyerGst"`
	BuyerPAN       string        `json:"buyerPan"`
	BuyerMSME      string        `json:"buyerMsme"`
	Vessel         string        `json:"vessel"`
	PONumber       string        `json:"poNumber"`
	DCNumber       string        `json:"dcNumber"`
	EwayBillNo     string        `json:"ewayBillNo"`
	Items          []InvoiceItem `json:"items"`
	TaxType        string        `json:"taxType"` // sgstcgst | igst
	GrandTotal     float64       `json:"grandTotal"`
	TotalInWords   string        `json:"totalInWords"`
	PaymentStatus  string        `json:"paymentStatus"`
	ReceivedAmount float64       `json:"receivedAmount"` // meaningful only when Partially Paid
	FinancialYear  string        `json:"financialYear"`  // "2024-2025"
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

// UpdatePaymentStatusRequest is the body of PATCH /api/invoices/{id}/payment-status.
type UpdatePaymentStatusRequest struct {
	Status string `json:"status"`
}

// UpdateReceivedAmountRequest is the body of PATCH /api/invoices/{id}/received-amount.
type UpdateReceivedAmountRequest struct {
	Amount float64 `json:"amount"`
}

// TaxableOverrideRequest carries the preview-screen correction: either
// per-line taxable amounts (keyed by item index) or a single aggregate total
// redistributed evenly across all lines.
type TaxableOverrideRequest struct {
	ItemAmounts map[int]float64 `json:"itemAmounts,omitempty"`
	TotalAmount *float64        `json:"totalAmount,omitempty"`
}
