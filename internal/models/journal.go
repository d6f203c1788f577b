package models

// Journal represents a book of entries (sales, purchases, bank...).
type Journal struct {
	JournalID   string `db:"journal_id"`
	CompanyID   string `db:"company_id"`
	Code        string `db:"code"`
	Name        string `db:"name"`
	JournalType string `db:"journal_type"`
	IsActive    bool   `db:"is_active"`
}
