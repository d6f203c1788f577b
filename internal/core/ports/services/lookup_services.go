package services

import (
	"context"

	"github.com/SscSPs/journal_entries_app/internal/core/domain"
)

// LookupSvc serves the account and journal choices of the entry filters.
type LookupSvc interface {
	ListAccounts(ctx context.Context, companyID, userID string) ([]domain.Account, error)
	ListJournals(ctx context.Context, companyID, userID string) ([]domain.Journal, error)
}
