package services

import (
	"context"

	"github.com/SscSPs/journal_entries_app/internal/core/domain"
)

// EntryReaderSvc defines read operations for ledger entries
type EntryReaderSvc interface {
	// ListEntries returns one page of entries, with lines, matching the query.
	ListEntries(ctx context.Context, companyID, userID string, query domain.EntryListQuery) (*domain.EntryPage, error)

	// GetEntryByID retrieves a single entry with its lines.
	GetEntryByID(ctx context.Context, companyID, entryID, userID string) (*domain.LedgerEntry, error)

	// GetEntryStats summarises a company's entries.
	GetEntryStats(ctx context.Context, companyID, userID string) (*domain.EntryStats, error)
}

// EntryWriterSvc defines write operations for ledger entries
type EntryWriterSvc interface {
	// DeleteEntry removes an entry and its lines.
	DeleteEntry(ctx context.Context, companyID, entryID, userID string) error

	// UpdateEntryStatus moves an entry to a new status.
	UpdateEntryStatus(ctx context.Context, companyID, entryID, userID string, status domain.EntryStatus) error
}

// EntrySvcFacade combines all entry-related service interfaces
type EntrySvcFacade interface {
	EntryReaderSvc
	EntryWriterSvc
}
