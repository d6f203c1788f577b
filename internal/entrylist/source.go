package entrylist

import (
	"context"

	"github.com/SscSPs/journal_entries_app/internal/core/domain"
	"github.com/SscSPs/journal_entries_app/internal/dto"
)

// Source is the data-access collaborator the controller reads from and deletes through.
type Source interface {
	ListEntries(ctx context.Context, params dto.ListEntriesParams) (*domain.EntryPage, error)
	DeleteEntry(ctx context.Context, entryID string) error
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	ListJournals(ctx context.Context) ([]domain.Journal, error)
}
