package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "asset"
	Liability AccountType = "liability"
	Equity    AccountType = "equity"
	Revenue   AccountType = "revenue"
	Expense   AccountType = "expense"
)

// Account is the minimal account projection used to populate filter choices.
type Account struct {
	ID            string      `json:"id"`
	CompanyID     string      `json:"companyID"`
	AccountNumber string      `json:"accountNumber"`
	Name          string      `json:"name"`
	Type          AccountType `json:"type"`
	Class         *int        `json:"class"` // Nullable chart-of-accounts class
	IsActive      bool        `json:"isActive"`
}

// Journal is a named book grouping related entries (sales, purchases, bank...).
type Journal struct {
	ID        string `json:"id"`
	CompanyID string `json:"companyID"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	IsActive  bool   `json:"isActive"`
}
