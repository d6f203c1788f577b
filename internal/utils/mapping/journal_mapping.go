package mapping

import (
	"github.com/SscSPs/journal_entries_app/internal/core/domain"
	"github.com/SscSPs/journal_entries_app/internal/models"
)

// ToModelJournalEntry converts a domain LedgerEntry header to a model JournalEntry
func ToModelJournalEntry(d domain.LedgerEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:         d.ID,
		CompanyID:       d.CompanyID,
		EntryNumber:     d.EntryNumber,
		EntryDate:       d.EntryDate,
		JournalID:       d.JournalID,
		Description:     d.Description,
		ReferenceNumber: d.ReferenceNumber,
		Status:          string(d.Status),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLedgerEntry converts a model JournalEntry to a domain LedgerEntry without lines
func ToDomainLedgerEntry(m models.JournalEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		ID:              m.EntryID,
		CompanyID:       m.CompanyID,
		EntryNumber:     m.EntryNumber,
		EntryDate:       m.EntryDate,
		JournalID:       m.JournalID,
		Description:     m.Description,
		ReferenceNumber: m.ReferenceNumber,
		Status:          domain.EntryStatus(m.Status),
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLineItem converts a model JournalEntryItem to a domain LineItem
func ToDomainLineItem(m models.JournalEntryItem) domain.LineItem {
	return domain.LineItem{
		ID:           m.ItemID,
		EntryID:      m.EntryID,
		AccountID:    m.AccountID,
		Description:  m.Description,
		DebitAmount:  m.DebitAmount,
		CreditAmount: m.CreditAmount,
	}
}

// GroupLineItems converts item rows and groups them by entry ID, keeping row order.
func GroupLineItems(ms []models.JournalEntryItem) map[string][]domain.LineItem {
	grouped := make(map[string][]domain.LineItem)
	for _, m := range ms {
		grouped[m.EntryID] = append(grouped[m.EntryID], ToDomainLineItem(m))
	}
	return grouped
}
