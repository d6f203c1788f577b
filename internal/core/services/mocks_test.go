package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/journal_entries_app/internal/core/domain"
	portsrepo "github.com/SscSPs/journal_entries_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/journal_entries_app/internal/core/ports/services"
)

// --- Mock EntryRepository ---
type MockEntryRepository struct {
	mock.Mock
}

var _ portsrepo.EntryRepositoryWithTx = (*MockEntryRepository)(nil)

func (m *MockEntryRepository) FindEntryByID(ctx context.Context, companyID, entryID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, companyID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockEntryRepository) ListEntries(ctx context.Context, companyID string, query domain.EntryListQuery) ([]domain.LedgerEntry, int, error) {
	args := m.Called(ctx, companyID, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Int(1), args.Error(2)
}

func (m *MockEntryRepository) GetEntryStats(ctx context.Context, companyID string) (*domain.EntryStats, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EntryStats), args.Error(1)
}

func (m *MockEntryRepository) FindLinesByEntryIDs(ctx context.Context, entryIDs []string) (map[string][]domain.LineItem, error) {
	args := m.Called(ctx, entryIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]domain.LineItem), args.Error(1)
}

func (m *MockEntryRepository) DeleteEntry(ctx context.Context, companyID, entryID string) error {
	args := m.Called(ctx, companyID, entryID)
	return args.Error(0)
}

func (m *MockEntryRepository) UpdateEntryStatus(ctx context.Context, companyID, entryID string, status domain.EntryStatus, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, companyID, entryID, status, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockEntryRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockEntryRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockEntryRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

// --- Mock LookupRepository ---
type MockLookupRepository struct {
	mock.Mock
}

var _ portsrepo.LookupReader = (*MockLookupRepository)(nil)

func (m *MockLookupRepository) ListActiveAccounts(ctx context.Context, companyID string) ([]domain.Account, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockLookupRepository) ListActiveJournals(ctx context.Context, companyID string) ([]domain.Journal, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Journal), args.Error(1)
}

// --- Mock membership repository ---
type MockMembershipRepository struct {
	mock.Mock
}

var _ portsrepo.CompanyMembershipReader = (*MockMembershipRepository)(nil)

func (m *MockMembershipRepository) FindCompanyMembership(ctx context.Context, userID, companyID string) (*domain.CompanyMembership, error) {
	args := m.Called(ctx, userID, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyMembership), args.Error(1)
}

// --- Mock company authorizer ---
type MockCompanyAuthorizer struct {
	mock.Mock
}

var _ portssvc.CompanyAuthorizerSvc = (*MockCompanyAuthorizer)(nil)

func (m *MockCompanyAuthorizer) AuthorizeUserAction(ctx context.Context, userID, companyID string, requiredRole domain.CompanyRole) error {
	args := m.Called(ctx, userID, companyID, requiredRole)
	return args.Error(0)
}
