package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/journal_entries_app/internal/apperrors"
	"github.com/SscSPs/journal_entries_app/internal/core/domain"
	portsrepo "github.com/SscSPs/journal_entries_app/internal/core/ports/repositories"
	"github.com/SscSPs/journal_entries_app/internal/models"
	"github.com/SscSPs/journal_entries_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxEntryRepository struct {
	BaseRepository
}

// newPgxEntryRepository creates a new repository for journal entries and their lines.
func newPgxEntryRepository(pool *pgxpool.Pool) portsrepo.EntryRepositoryWithTx {
	return &PgxEntryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.EntryRepositoryWithTx = (*PgxEntryRepository)(nil)

func scanEntry(row pgx.Row) (models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.EntryID,
		&m.CompanyID,
		&m.EntryNumber,
		&m.EntryDate,
		&m.JournalID,
		&m.Description,
		&m.ReferenceNumber,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindEntryByID retrieves an entry header scoped to a company.
func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, companyID, entryID string) (*domain.LedgerEntry, error) {
	query := "SELECT " + entryColumns + " FROM journal_entries e WHERE e.company_id = $1 AND e.entry_id = $2;"

	m, err := scanEntry(r.Pool.QueryRow(ctx, query, companyID, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("journal entry not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find journal entry "+entryID, err)
	}
	entry := mapping.ToDomainLedgerEntry(m)
	return &entry, nil
}

// ListEntries runs the filtered count and the page query.
// The count ignores pagination so callers can compute the number of pages.
func (r *PgxEntryRepository) ListEntries(ctx context.Context, companyID string, query domain.EntryListQuery) ([]domain.LedgerEntry, int, error) {
	q := buildEntryListQuery(companyID, query)

	var total int
	if err := r.Pool.QueryRow(ctx, q.countSQL, q.countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count entries for company %s: %w", companyID, err)
	}
	if total == 0 {
		return []domain.LedgerEntry{}, 0, nil
	}

	rows, err := r.Pool.Query(ctx, q.pageSQL, q.pageArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query entries for company %s: %w", companyID, err)
	}
	defer rows.Close()

	entries := []domain.LedgerEntry{}
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan entry row for company %s: %w", companyID, err)
		}
		entries = append(entries, mapping.ToDomainLedgerEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating entry rows for company %s: %w", companyID, err)
	}
	return entries, total, nil
}

// FindLinesByEntryIDs loads the lines of several entries in one round trip.
func (r *PgxEntryRepository) FindLinesByEntryIDs(ctx context.Context, entryIDs []string) (map[string][]domain.LineItem, error) {
	if len(entryIDs) == 0 {
		return map[string][]domain.LineItem{}, nil
	}
	query := `
		SELECT item_id, entry_id, account_id, description, debit_amount, credit_amount
		FROM journal_entry_items
		WHERE entry_id = ANY($1)
		ORDER BY entry_id, line_order, item_id;
	`
	rows, err := r.Pool.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines for %d entries: %w", len(entryIDs), err)
	}
	defer rows.Close()

	var items []models.JournalEntryItem
	for rows.Next() {
		var m models.JournalEntryItem
		if err := rows.Scan(&m.ItemID, &m.EntryID, &m.AccountID, &m.Description, &m.DebitAmount, &m.CreditAmount); err != nil {
			return nil, fmt.Errorf("failed to scan entry line: %w", err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entry lines: %w", err)
	}
	return mapping.GroupLineItems(items), nil
}

// DeleteEntry removes the lines and then the entry inside one DB transaction.
func (r *PgxEntryRepository) DeleteEntry(ctx context.Context, companyID, entryID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx,
		`DELETE FROM journal_entry_items WHERE entry_id = $1 AND company_id = $2;`,
		entryID, companyID); err != nil {
		return apperrors.NewAppError(500, "failed to delete lines of entry "+entryID, err)
	}

	tag, err := tx.Exec(ctx,
		`DELETE FROM journal_entries WHERE entry_id = $1 AND company_id = $2;`,
		entryID, companyID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete entry "+entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("journal entry not found")
	}

	return r.Commit(ctx, tx)
}

// UpdateEntryStatus sets the status and the last-updated audit columns.
func (r *PgxEntryRepository) UpdateEntryStatus(ctx context.Context, companyID, entryID string, status domain.EntryStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE journal_entries
		SET status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE entry_id = $4 AND company_id = $5;
	`
	tag, err := r.Pool.Exec(ctx, query, string(status), updatedAt, updatedBy, entryID, companyID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status of entry "+entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("journal entry not found")
	}
	return nil
}

// GetEntryStats counts entries per status and sums all line amounts of a company.
func (r *PgxEntryRepository) GetEntryStats(ctx context.Context, companyID string) (*domain.EntryStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE e.status = 'draft'),
			COUNT(*) FILTER (WHERE e.status = 'posted'),
			COUNT(*) FILTER (WHERE e.status = 'cancelled'),
			(SELECT COALESCE(SUM(i.debit_amount), 0) FROM journal_entry_items i WHERE i.company_id = $1),
			(SELECT COALESCE(SUM(i.credit_amount), 0) FROM journal_entry_items i WHERE i.company_id = $1)
		FROM journal_entries e
		WHERE e.company_id = $1;
	`
	var stats domain.EntryStats
	err := r.Pool.QueryRow(ctx, query, companyID).Scan(
		&stats.TotalEntries,
		&stats.DraftEntries,
		&stats.PostedEntries,
		&stats.CancelledEntries,
		&stats.TotalDebit,
		&stats.TotalCredit,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to compute entry stats for company "+companyID, err)
	}
	return &stats, nil
}
