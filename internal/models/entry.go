package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry mirrors a row of journal_entries.
type JournalEntry struct {
	EntryID         string    `db:"entry_id"`
	CompanyID       string    `db:"company_id"`
	EntryNumber     *string   `db:"entry_number"` // Nullable until posted
	EntryDate       time.Time `db:"entry_date"`
	JournalID       string    `db:"journal_id"`
	Description     string    `db:"description"`
	ReferenceNumber string    `db:"reference_number"`
	Status          string    `db:"status"`
	AuditFields
}

// JournalEntryItem mirrors a row of journal_entry_items.
type JournalEntryItem struct {
	ItemID       string          `db:"item_id"`
	EntryID      string          `db:"entry_id"`
	AccountID    string          `db:"account_id"`
	Description  string          `db:"description"`
	DebitAmount  decimal.Decimal `db:"debit_amount"`
	CreditAmount decimal.Decimal `db:"credit_amount"`
}
