package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus indicates the lifecycle state of a ledger entry.
type EntryStatus string

const (
	StatusDraft     EntryStatus = "draft"
	StatusPosted    EntryStatus = "posted"
	StatusCancelled EntryStatus = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s EntryStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPosted, StatusCancelled:
		return true
	}
	return false
}

// LineItem is a single debit or credit posting against one account within an entry.
type LineItem struct {
	ID           string          `json:"id"`
	EntryID      string          `json:"entryID"`
	AccountID    string          `json:"accountID"`
	Description  string          `json:"description"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
}

// LedgerEntry is a journal entry header together with its line items.
type LedgerEntry struct {
	ID              string      `json:"id"`
	CompanyID       string      `json:"companyID"`
	EntryNumber     *string     `json:"entryNumber"` // Nullable, assigned on posting
	EntryDate       time.Time   `json:"entryDate"`
	JournalID       string      `json:"journalID"`
	Description     string      `json:"description"`
	ReferenceNumber string      `json:"referenceNumber"`
	Status          EntryStatus `json:"status"`
	Lines           []LineItem  `json:"lines"` // Loaded separately from the header
	AuditFields
}

// TotalDebit sums the debit side of all lines. Computed on every call.
func (e LedgerEntry) TotalDebit() decimal.Decimal {
	total := decimal.Zero
	for _, line := range e.Lines {
		total = total.Add(line.DebitAmount)
	}
	return total
}

// TotalCredit sums the credit side of all lines. Computed on every call.
func (e LedgerEntry) TotalCredit() decimal.Decimal {
	total := decimal.Zero
	for _, line := range e.Lines {
		total = total.Add(line.CreditAmount)
	}
	return total
}

// IsBalanced reports whether both sides add up to the same amount.
// Display helper only; entries are not validated against it.
func (e LedgerEntry) IsBalanced() bool {
	return e.TotalDebit().Equal(e.TotalCredit())
}

// EntryPage is one page of entries plus the total number of matches.
type EntryPage struct {
	Entries    []LedgerEntry
	TotalCount int
}

// EntryStats summarises the entries of one company.
type EntryStats struct {
	TotalEntries     int             `json:"totalEntries"`
	DraftEntries     int             `json:"draftEntries"`
	PostedEntries    int             `json:"postedEntries"`
	CancelledEntries int             `json:"cancelledEntries"`
	TotalDebit       decimal.Decimal `json:"totalDebit"`
	TotalCredit      decimal.Decimal `json:"totalCredit"`
}
