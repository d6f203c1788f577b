package models

// Account represents a row of the chart of accounts.
type Account struct {
	AccountID     string `db:"account_id"`
	CompanyID     string `db:"company_id"`
	AccountNumber string `db:"account_number"`
	Name          string `db:"name"`
	AccountType   string `db:"account_type"`
	Class         *int   `db:"class"` // Nullable
	IsActive      bool   `db:"is_active"`
}
