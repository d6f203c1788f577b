package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/journal_entries_app/internal/core/domain"
	portsrepo "github.com/SscSPs/journal_entries_app/internal/core/ports/repositories"
	"github.com/SscSPs/journal_entries_app/internal/models"
	"github.com/SscSPs/journal_entries_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLookupRepository struct {
	pool *pgxpool.Pool
}

// newPgxLookupRepository creates a repository for accounts and journals reference data.
func newPgxLookupRepository(pool *pgxpool.Pool) portsrepo.LookupReader {
	return &PgxLookupRepository{pool: pool}
}

var _ portsrepo.LookupReader = (*PgxLookupRepository)(nil)

// ListActiveAccounts retrieves the active accounts of a company.
func (r *PgxLookupRepository) ListActiveAccounts(ctx context.Context, companyID string) ([]domain.Account, error) {
	query := `
		SELECT account_id, company_id, account_number, name, account_type, class, is_active
		FROM accounts
		WHERE company_id = $1 AND is_active = TRUE
		ORDER BY account_number;
	`
	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts for company %s: %w", companyID, err)
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		var m models.Account
		if err := rows.Scan(&m.AccountID, &m.CompanyID, &m.AccountNumber, &m.Name, &m.AccountType, &m.Class, &m.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan account row for company %s: %w", companyID, err)
		}
		accounts = append(accounts, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows for company %s: %w", companyID, err)
	}
	return mapping.ToDomainAccountSlice(accounts), nil
}

// ListActiveJournals retrieves the active journals of a company.
func (r *PgxLookupRepository) ListActiveJournals(ctx context.Context, companyID string) ([]domain.Journal, error) {
	query := `
		SELECT journal_id, company_id, code, name, journal_type, is_active
		FROM journals
		WHERE company_id = $1 AND is_active = TRUE
		ORDER BY code;
	`
	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query journals for company %s: %w", companyID, err)
	}
	defer rows.Close()

	var journals []models.Journal
	for rows.Next() {
		var m models.Journal
		if err := rows.Scan(&m.JournalID, &m.CompanyID, &m.Code, &m.Name, &m.JournalType, &m.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan journal row for company %s: %w", companyID, err)
		}
		journals = append(journals, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal rows for company %s: %w", companyID, err)
	}
	return mapping.ToDomainJournalSlice(journals), nil
}
