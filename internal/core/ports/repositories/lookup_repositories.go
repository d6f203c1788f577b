package repositories

import (
	"context"

	"github.com/SscSPs/journal_entries_app/internal/core/domain"
)

// LookupReader lists the reference data used to build entry filters.
type LookupReader interface {
	// ListActiveAccounts returns a company's active accounts ordered by account number.
	ListActiveAccounts(ctx context.Context, companyID string) ([]domain.Account, error)

	// ListActiveJournals returns a company's active journals ordered by code.
	ListActiveJournals(ctx context.Context, companyID string) ([]domain.Journal, error)
}
