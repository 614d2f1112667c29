package models

// Template types stored as singleton rows keyed by type.
const (
	TemplateLetterhead  = "letterhead"
	TemplateDefaultInfo = "defaultInfo"
)

// Letterhead holds the company header printed on every invoice.
type Letterhead struct {
	CompanyName string `json:"companyName"`
	GSTNo       string `json:"gstNo"`
	Address     string `json:"address"`
	Workshop    string `json:"workshop"`
	Email       string `json:"email"`
	Cell        string `json:"cell"`
}

// DefaultInfo holds the bank details and standard terms printed in the
// invoice footer.
type DefaultInfo struct {
	BankName  string   `json:"bankName"`
	AccountNo string   `json:"accountNo"`
	IFSCCode  string   `json:"ifscCode"`
	Branch    string   `json:"branch"`
	PANNo     string   `json:"panNo"`
	MSMENo    string   `json:"msmeNo"`
	Terms     []string `json:"terms"`
}
