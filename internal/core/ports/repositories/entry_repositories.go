package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/journal_entries_app/internal/core/domain"
)

// EntryReader defines read operations for ledger entry data
type EntryReader interface {
	// FindEntryByID retrieves one entry header of a company. Lines are not loaded.
	FindEntryByID(ctx context.Context, companyID, entryID string) (*domain.LedgerEntry, error)

	// ListEntries returns one page of entry headers matching the query plus the total number of matches.
	ListEntries(ctx context.Context, companyID string, query domain.EntryListQuery) ([]domain.LedgerEntry, int, error)

	// GetEntryStats aggregates status counts and debit/credit totals for a company.
	GetEntryStats(ctx context.Context, companyID string) (*domain.EntryStats, error)
}

// LineItemReader defines read operations for entry lines
type LineItemReader interface {
	// FindLinesByEntryIDs retrieves lines for multiple entries, grouped by entry ID.
	FindLinesByEntryIDs(ctx context.Context, entryIDs []string) (map[string][]domain.LineItem, error)
}

// EntryWriter defines write operations for ledger entry data
type EntryWriter interface {
	// DeleteEntry removes an entry and its lines atomically.
	DeleteEntry(ctx context.Context, companyID, entryID string) error

	// UpdateEntryStatus changes the status of an entry.
	UpdateEntryStatus(ctx context.Context, companyID, entryID string, status domain.EntryStatus, updatedBy string, updatedAt time.Time) error
}

// EntryRepositoryFacade combines all entry-related repository interfaces
type EntryRepositoryFacade interface {
	EntryReader
	LineItemReader
	EntryWriter
}

// EntryRepositoryWithTx extends EntryRepositoryFacade with transaction capabilities
type EntryRepositoryWithTx interface {
	EntryRepositoryFacade
	TransactionManager
}
