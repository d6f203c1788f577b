package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/journal_entries_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LineItemResponse defines the data returned for one entry line.
type LineItemResponse struct {
	ID           string          `json:"id"`
	AccountID    string          `json:"account_id"`
	Description  string          `json:"description,omitempty"`
	DebitAmount  decimal.Decimal `json:"debit_amount"`
	CreditAmount decimal.Decimal `json:"credit_amount"`
}

// EntryResponse defines the data returned for a ledger entry.
type EntryResponse struct {
	ID              string             `json:"id"`
	EntryNumber     *string            `json:"entry_number"`
	EntryDate       string             `json:"entry_date"` // YYYY-MM-DD
	JournalID       string             `json:"journal_id"`
	Description     string             `json:"description"`
	ReferenceNumber string             `json:"reference_number"`
	Status          domain.EntryStatus `json:"status"`
	LineItems       []LineItemResponse `json:"lineItems"`
	TotalDebit      decimal.Decimal    `json:"totalDebit"`
	TotalCredit     decimal.Decimal    `json:"totalCredit"`
	CreatedAt       time.Time          `json:"createdAt"`
	CreatedBy       string             `json:"createdBy"`
}

// ListEntriesResponse wraps one page of entries and the total match count.
type ListEntriesResponse struct {
	Data  []EntryResponse `json:"data"`
	Count int             `json:"count"`
}

// UpdateEntryStatusRequest defines the body of a status change.
type UpdateEntryStatusRequest struct {
	Status domain.EntryStatus `json:"status" binding:"required,entrystatus"`
}

// EntryStatsResponse defines the statistics returned for a company.
type EntryStatsResponse struct {
	TotalEntries     int             `json:"totalEntries"`
	DraftEntries     int             `json:"draftEntries"`
	PostedEntries    int             `json:"postedEntries"`
	CancelledEntries int             `json:"cancelledEntries"`
	TotalDebit       decimal.Decimal `json:"totalDebit"`
	TotalCredit      decimal.Decimal `json:"totalCredit"`
}

// ToEntryResponse converts a domain.LedgerEntry to EntryResponse DTO.
func ToEntryResponse(e *domain.LedgerEntry) EntryResponse {
	lines := make([]LineItemResponse, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = LineItemResponse{
			ID:           l.ID,
			AccountID:    l.AccountID,
			Description:  l.Description,
			DebitAmount:  l.DebitAmount,
			CreditAmount: l.CreditAmount,
		}
	}
	return EntryResponse{
		ID:              e.ID,
		EntryNumber:     e.EntryNumber,
		EntryDate:       e.EntryDate.Format(domain.DateLayout),
		JournalID:       e.JournalID,
		Description:     e.Description,
		ReferenceNumber: e.ReferenceNumber,
		Status:          e.Status,
		LineItems:       lines,
		TotalDebit:      e.TotalDebit(),
		TotalCredit:     e.TotalCredit(),
		CreatedAt:       e.CreatedAt,
		CreatedBy:       e.CreatedBy,
	}
}

// ToListEntriesResponse converts a domain page to its wire form.
func ToListEntriesResponse(page *domain.EntryPage) ListEntriesResponse {
	data := make([]EntryResponse, len(page.Entries))
	for i := range page.Entries {
		data[i] = ToEntryResponse(&page.Entries[i])
	}
	return ListEntriesResponse{Data: data, Count: page.TotalCount}
}

// ToDomain converts a received entry back into a domain.LedgerEntry.
// Totals are dropped; the domain recomputes them from the lines.
func (r EntryResponse) ToDomain() (domain.LedgerEntry, error) {
	date, err := time.Parse(domain.DateLayout, r.EntryDate)
	if err != nil {
		return domain.LedgerEntry{}, fmt.Errorf("entry %s: invalid entry_date %q: %w", r.ID, r.EntryDate, err)
	}
	lines := make([]domain.LineItem, len(r.LineItems))
	for i, l := range r.LineItems {
		lines[i] = domain.LineItem{
			ID:           l.ID,
			EntryID:      r.ID,
			AccountID:    l.AccountID,
			Description:  l.Description,
			DebitAmount:  l.DebitAmount,
			CreditAmount: l.CreditAmount,
		}
	}
	return domain.LedgerEntry{
		ID:              r.ID,
		EntryNumber:     r.EntryNumber,
		EntryDate:       date,
		JournalID:       r.JournalID,
		Description:     r.Description,
		ReferenceNumber: r.ReferenceNumber,
		Status:          r.Status,
		Lines:           lines,
		AuditFields: domain.AuditFields{
			CreatedAt: r.CreatedAt,
			CreatedBy: r.CreatedBy,
		},
	}, nil
}

// ToDomain converts a received list response into a domain page.
func (r ListEntriesResponse) ToDomain() (*domain.EntryPage, error) {
	entries := make([]domain.LedgerEntry, 0, len(r.Data))
	for _, e := range r.Data {
		entry, err := e.ToDomain()
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return &domain.EntryPage{Entries: entries, TotalCount: r.Count}, nil
}

// ToEntryStatsResponse converts domain.EntryStats to its wire form.
func ToEntryStatsResponse(s *domain.EntryStats) EntryStatsResponse {
	return EntryStatsResponse{
		TotalEntries:     s.TotalEntries,
		DraftEntries:     s.DraftEntries,
		PostedEntries:    s.PostedEntries,
		CancelledEntries: s.CancelledEntries,
		TotalDebit:       s.TotalDebit,
		TotalCredit:      s.TotalCredit,
	}
}
