package pgsql

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/journal_entries_app/internal/apperrors"
	"github.com/SscSPs/journal_entries_app/internal/core/domain"
	"github.com/SscSPs/journal_entries_app/pkg/database"
)

// setupTestDB connects to TEST_DATABASE_URL, migrates it and seeds one company.
func setupTestDB(t *testing.T) (*pgxpool.Pool, string) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	require.NoError(t, database.RunMigrations(dsn, "file://../../../../migrations", nil))

	ctx := context.Background()
	pool, err := database.NewPgxPool(ctx, dsn, true)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	companyID := uuid.NewString()
	_, err = pool.Exec(ctx, `INSERT INTO companies (company_id, name, created_by, last_updated_by) VALUES ($1, 'Test Co', 'seed', 'seed')`, companyID)
	require.NoError(t, err)
	t.Cleanup(func() {
		bg := context.Background()
		_, _ = pool.Exec(bg, `DELETE FROM journal_entry_items WHERE company_id = $1`, companyID)
		_, _ = pool.Exec(bg, `DELETE FROM journal_entries WHERE company_id = $1`, companyID)
		_, _ = pool.Exec(bg, `DELETE FROM companies WHERE company_id = $1`, companyID)
	})

	seed := []string{
		`INSERT INTO company_members (user_id, company_id, role) VALUES ('u-admin', $1, 'ADMIN')`,
		`INSERT INTO accounts (account_id, company_id, account_number, name, account_type, class) VALUES ($1 || '-cash', $1, '512', 'Bank', 'asset', 5)`,
		`INSERT INTO accounts (account_id, company_id, account_number, name, account_type, is_active) VALUES ($1 || '-old', $1, '999', 'Old', 'expense', FALSE)`,
		`INSERT INTO accounts (account_id, company_id, account_number, name, account_type) VALUES ($1 || '-sales', $1, '706', 'Sales', 'revenue')`,
		`INSERT INTO journals (journal_id, company_id, code, name) VALUES ($1 || '-VT', $1, 'VT', 'Sales')`,
	}
	for _, stmt := range seed {
		_, err := pool.Exec(ctx, stmt, companyID)
		require.NoError(t, err)
	}
	return pool, companyID
}

func insertEntry(t *testing.T, pool *pgxpool.Pool, companyID, ref, desc, status string, date time.Time, amount int64) string {
	t.Helper()
	ctx := context.Background()
	entryID := uuid.NewString()
	_, err := pool.Exec(ctx, `
		INSERT INTO journal_entries (entry_id, company_id, entry_date, journal_id, description, reference_number, status, created_by, last_updated_by)
		VALUES ($1, $2, $3, $2 || '-VT', $4, $5, $6, 'seed', 'seed')`,
		entryID, companyID, date, desc, ref, status)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `
		INSERT INTO journal_entry_items (item_id, entry_id, company_id, account_id, line_order, debit_amount, credit_amount)
		VALUES ($1, $2, $3, $3 || '-cash', 1, $4, 0), ($5, $2, $3, $3 || '-sales', 2, 0, $4)`,
		uuid.NewString(), entryID, companyID, amount, uuid.NewString())
	require.NoError(t, err)
	return entryID
}

func TestEntryRepository_Integration(t *testing.T) {
	pool, companyID := setupTestDB(t)
	ctx := context.Background()
	repo := newPgxEntryRepository(pool)

	day := func(d int) time.Time { return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC) }
	first := insertEntry(t, pool, companyID, "INV_001", "March rent", "posted", day(1), 100)
	insertEntry(t, pool, companyID, "INV%002", "Office supplies", "draft", day(5), 40)
	insertEntry(t, pool, companyID, "CRN-003", "Refund rent", "cancelled", day(9), 10)

	t.Run("lists with filter, sort and count", func(t *testing.T) {
		entries, total, err := repo.ListEntries(ctx, companyID, domain.EntryListQuery{
			Criteria: domain.FilterCriteria{Description: "rent"},
			Sort:     domain.SortSpec{Column: domain.SortByEntryDate, Direction: domain.SortAsc},
			Page:     1,
			Limit:    1,
		})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		require.Len(t, entries, 1)
		assert.Equal(t, first, entries[0].ID)
	})

	t.Run("wildcards in reference are literal", func(t *testing.T) {
		entries, total, err := repo.ListEntries(ctx, companyID, domain.EntryListQuery{
			Criteria: domain.FilterCriteria{Reference: "%"},
			Page:     1,
			Limit:    20,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, "INV%002", entries[0].ReferenceNumber)
	})

	t.Run("lines are grouped by entry", func(t *testing.T) {
		lines, err := repo.FindLinesByEntryIDs(ctx, []string{first})
		require.NoError(t, err)
		require.Len(t, lines[first], 2)
		assert.True(t, lines[first][0].DebitAmount.Equal(decimal.NewFromInt(100)))
	})

	t.Run("stats", func(t *testing.T) {
		stats, err := repo.GetEntryStats(ctx, companyID)
		require.NoError(t, err)
		assert.Equal(t, 3, stats.TotalEntries)
		assert.Equal(t, 1, stats.DraftEntries)
		assert.True(t, stats.TotalDebit.Equal(decimal.NewFromInt(150)))
	})

	t.Run("status update and delete", func(t *testing.T) {
		require.NoError(t, repo.UpdateEntryStatus(ctx, companyID, first, domain.StatusCancelled, "u-admin", time.Now()))
		entry, err := repo.FindEntryByID(ctx, companyID, first)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCancelled, entry.Status)

		require.NoError(t, repo.DeleteEntry(ctx, companyID, first))
		_, err = repo.FindEntryByID(ctx, companyID, first)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.ErrorIs(t, repo.DeleteEntry(ctx, companyID, first), apperrors.ErrNotFound)
	})
}

func TestLookupAndMembership_Integration(t *testing.T) {
	pool, companyID := setupTestDB(t)
	ctx := context.Background()

	lookups := newPgxLookupRepository(pool)
	accounts, err := lookups.ListActiveAccounts(ctx, companyID)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "512", accounts[0].AccountNumber)
	require.NotNil(t, accounts[0].Class)
	assert.Equal(t, 5, *accounts[0].Class)

	journals, err := lookups.ListActiveJournals(ctx, companyID)
	require.NoError(t, err)
	require.Len(t, journals, 1)
	assert.Equal(t, "VT", journals[0].Code)

	members := newPgxMembershipRepository(pool)
	m, err := members.FindCompanyMembership(ctx, "u-admin", companyID)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, m.Role)

	_, err = members.FindCompanyMembership(ctx, "stranger", companyID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
