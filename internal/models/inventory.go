package models

import "time"

// Transaction types for the inventory register.
const (
	TransactionSales    = "Sales"
	TransactionPurchase = "Purchase"
)

// InventoryItem is one row of the sales/purchase register. BasicAmt and the
// tax figures are derived: basicAmt = quantity x rate, and the GST percentage
// is split in half between SGST and CGST for intra-state entries or applied
// whole as IGST for inter-state ones.
type InventoryItem struct {
	ID              int       `json:"id"`
	Description     string    `json:"description"`
	HSNSACCode      string    `json:"hsnSacCode"`
	Quantity        float64   `json:"quantity"`
	Unit            string    `json:"unit"`
	Rate            float64   `json:"rate"`
	TransactionType string    `json:"transactionType"` // Sales | Purchase
	PartyName       string    `json:"partyName"`
	PartyGSTNo      string    `json:"partyGstNo"`
	BasicAmt        float64   `json:"basicAmt"`
	IGST            float64   `json:"igst"`
	CGST            float64   `json:"cgst"`
	SGST            float64   `json:"sgst"`
	Total           float64   `json:"total"`
	Transport       float64   `json:"transport"`
	GSTPercentage   float64   `json:"gstPercentage"`
	TaxType         string    `json:"taxType"` // sgstcgst | igst
	FinancialYear   string    `json:"financialYear"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
