package entrylist

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"

	"github.com/SscSPs/journal_entries_app/internal/apperrors"
	"github.com/SscSPs/journal_entries_app/internal/core/domain"
	"github.com/SscSPs/journal_entries_app/internal/dto"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// MockSource is a mock implementation of Source.
type MockSource struct {
	mock.Mock
}

func (m *MockSource) ListEntries(ctx context.Context, params dto.ListEntriesParams) (*domain.EntryPage, error) {
	args := m.Called(ctx, params)
	var page *domain.EntryPage
	if v := args.Get(0); v != nil {
		page = v.(*domain.EntryPage)
	}
	return page, args.Error(1)
}

func (m *MockSource) DeleteEntry(ctx context.Context, entryID string) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

func (m *MockSource) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	var accounts []domain.Account
	if v := args.Get(0); v != nil {
		accounts = v.([]domain.Account)
	}
	return accounts, args.Error(1)
}

func (m *MockSource) ListJournals(ctx context.Context) ([]domain.Journal, error) {
	args := m.Called(ctx)
	var journals []domain.Journal
	if v := args.Get(0); v != nil {
		journals = v.([]domain.Journal)
	}
	return journals, args.Error(1)
}

func makeEntries(prefix string, n int) []domain.LedgerEntry {
	out := make([]domain.LedgerEntry, n)
	for i := range out {
		out[i] = domain.LedgerEntry{ID: fmt.Sprintf("%s-%d", prefix, i+1), JournalID: "J1", Status: domain.StatusDraft}
	}
	return out
}

func pageOf(prefix string, rows, total int) *domain.EntryPage {
	return &domain.EntryPage{Entries: makeEntries(prefix, rows), TotalCount: total}
}

func onPage(n int) interface{} {
	return mock.MatchedBy(func(p dto.ListEntriesParams) bool { return p.Page == n })
}

type ControllerTestSuite struct {
	suite.Suite
	source *MockSource
	ctrl   *Controller
	ctx    context.Context
}

func (s *ControllerTestSuite) SetupTest() {
	s.source = new(MockSource)
	s.ctx = context.Background()
	s.ctrl = NewController(s.source, Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
}

func (s *ControllerTestSuite) TearDownTest() {
	s.source.AssertExpectations(s.T())
}

// loadTo lands the controller on page with the given total, using one list call per step.
func (s *ControllerTestSuite) loadTo(page, total int) {
	s.source.On("ListEntries", s.ctx, onPage(1)).Return(pageOf("p1", DefaultPageSize, total), nil).Once()
	s.Require().NoError(s.ctrl.Refresh(s.ctx, 0))
	if page > 1 {
		rows := DefaultPageSize
		if rest := total - (page-1)*DefaultPageSize; rest < rows {
			rows = rest
		}
		s.source.On("ListEntries", s.ctx, onPage(page)).Return(pageOf(fmt.Sprintf("p%d", page), rows, total), nil).Once()
		s.Require().NoError(s.ctrl.GoToPage(s.ctx, page))
	}
}

func TestControllerTestSuite(t *testing.T) {
	suite.Run(t, new(ControllerTestSuite))
}

func (s *ControllerTestSuite) TestLoad_Success() {
	accounts := []domain.Account{{ID: "A1", AccountNumber: "1000", Name: "Cash"}}
	journals := []domain.Journal{{ID: "J1", Code: "SAL", Name: "Sales"}}

	s.source.On("ListEntries", s.ctx, dto.ListEntriesParams{SortBy: "entry_date", SortOrder: "desc", Page: 1, Limit: 20}).
		Return(pageOf("e", 20, 45), nil).Once()
	s.source.On("ListAccounts", s.ctx).Return(accounts, nil).Once()
	s.source.On("ListJournals", s.ctx).Return(journals, nil).Once()

	s.Require().NoError(s.ctrl.Load(s.ctx))

	v := s.ctrl.Snapshot()
	s.Len(v.Rows, 20)
	s.Equal(1, v.Page.CurrentPage)
	s.Equal(45, v.Page.TotalCount)
	s.Equal(3, v.Page.TotalPages())
	s.True(v.Page.HasMoreAfterCurrent)
	s.True(v.Page.HasNextPage())
	s.False(v.Page.HasPreviousPage())
	s.False(v.Loading)
	s.NoError(v.LoadError)
	s.Equal(accounts, v.Accounts)
	s.Equal(journals, v.Journals)
	s.Empty(v.Notifications)
}

func (s *ControllerTestSuite) TestLoad_FirstFailureShowsFullPageError() {
	boom := errors.New("service unavailable")
	s.source.On("ListEntries", s.ctx, onPage(1)).Return(nil, boom).Once()
	s.source.On("ListAccounts", s.ctx).Return([]domain.Account{}, nil).Once()
	s.source.On("ListJournals", s.ctx).Return([]domain.Journal{}, nil).Once()

	err := s.ctrl.Load(s.ctx)
	s.ErrorIs(err, boom)

	v := s.ctrl.Snapshot()
	s.ErrorIs(v.LoadError, boom)
	s.Empty(v.Rows)
	s.Require().Len(v.Notifications, 1)
	s.Equal(LevelError, v.Notifications[0].Level)
	s.NotEmpty(v.Notifications[0].ID)

	// A later success clears the full-page error.
	s.source.On("ListEntries", s.ctx, onPage(1)).Return(pageOf("e", 3, 3), nil).Once()
	s.Require().NoError(s.ctrl.Apply(s.ctx))
	s.NoError(s.ctrl.Snapshot().LoadError)
}

func (s *ControllerTestSuite) TestFetchFailureAfterRowsKeepsRowsWithoutFullPageError() {
	s.loadTo(1, 30)
	boom := errors.New("timeout")
	s.source.On("ListEntries", s.ctx, onPage(1)).Return(nil, boom).Once()

	s.ErrorIs(s.ctrl.Apply(s.ctx), boom)

	v := s.ctrl.Snapshot()
	s.NoError(v.LoadError)
	s.Len(v.Rows, 20)
	s.Equal(30, v.Page.TotalCount)
	s.Len(v.Notifications, 1)
}

func (s *ControllerTestSuite) TestApplyThenClear() {
	s.Require().NoError(s.ctrl.SetFilter(FieldJournal, "J1"))
	s.Require().NoError(s.ctrl.SetFilter(FieldReference, "INV-1"))

	var sent []dto.ListEntriesParams
	s.source.On("ListEntries", s.ctx, mock.Anything).
		Run(func(args mock.Arguments) { sent = append(sent, args.Get(1).(dto.ListEntriesParams)) }).
		Return(pageOf("e", 1, 1), nil).Twice()

	s.Require().NoError(s.ctrl.Apply(s.ctx))
	s.Require().NoError(s.ctrl.Clear(s.ctx))

	s.Require().Len(sent, 2)
	s.Equal(1, sent[0].Page)
	s.Require().NotNil(sent[0].JournalID)
	s.Equal("J1", *sent[0].JournalID)
	s.Require().NotNil(sent[0].Reference)
	s.Equal("INV-1", *sent[0].Reference)

	s.Equal(1, sent[1].Page)
	s.Nil(sent[1].JournalID)
	s.Nil(sent[1].Reference)
	s.True(s.ctrl.Snapshot().Pending.IsEmpty())
}

func (s *ControllerTestSuite) TestSetFilterDoesNotFetch() {
	s.Require().NoError(s.ctrl.SetFilter(FieldDescription, "rent"))
	s.ErrorIs(s.ctrl.SetFilter(FieldDateTo, "tomorrow"), apperrors.ErrValidation)

	v := s.ctrl.Snapshot()
	s.Equal("rent", v.Pending.Description)
	s.Equal("", v.Applied.Description)
	s.source.AssertNotCalled(s.T(), "ListEntries", mock.Anything, mock.Anything)
}

func (s *ControllerTestSuite) TestApplyResetsToFirstPage() {
	s.loadTo(3, 60)
	s.Require().NoError(s.ctrl.SetFilter(FieldAccount, "A1"))
	s.source.On("ListEntries", s.ctx, mock.MatchedBy(func(p dto.ListEntriesParams) bool {
		return p.Page == 1 && p.AccountID != nil && *p.AccountID == "A1"
	})).Return(pageOf("a", 2, 2), nil).Once()

	s.Require().NoError(s.ctrl.Apply(s.ctx))
	s.Equal(1, s.ctrl.Snapshot().Page.CurrentPage)
}

func (s *ControllerTestSuite) TestRefreshTrigger() {
	s.Require().NoError(s.ctrl.SetFilter(FieldReference, "X"))
	s.source.On("ListEntries", s.ctx, onPage(1)).Return(pageOf("x", 20, 60), nil).Once()
	s.Require().NoError(s.ctrl.Apply(s.ctx))
	s.source.On("ListEntries", s.ctx, onPage(3)).Return(pageOf("x3", 20, 60), nil).Once()
	s.Require().NoError(s.ctrl.GoToPage(s.ctx, 3))
	s.True(s.ctrl.ToggleRowExpansion("x3-1"))

	s.source.On("ListEntries", s.ctx, mock.MatchedBy(func(p dto.ListEntriesParams) bool {
		return p.Page == 1 && p.Reference != nil && *p.Reference == "X"
	})).Return(pageOf("fresh", 20, 61), nil).Once()

	s.Require().NoError(s.ctrl.Refresh(s.ctx, 7))

	v := s.ctrl.Snapshot()
	s.Equal(1, v.Page.CurrentPage)
	s.Equal(61, v.Page.TotalCount)
	s.Empty(v.Expanded)
	s.Equal("X", v.Applied.Reference)

	// Same token again: nothing happens.
	s.Require().NoError(s.ctrl.Refresh(s.ctx, 7))
	s.source.AssertNumberOfCalls(s.T(), "ListEntries", 3)
}

func (s *ControllerTestSuite) TestRefreshFirstTokenAlwaysFetches() {
	s.source.On("ListEntries", s.ctx, onPage(1)).Return(pageOf("e", 0, 0), nil).Once()
	s.Require().NoError(s.ctrl.Refresh(s.ctx, 0))
	s.Require().NoError(s.ctrl.Refresh(s.ctx, 0))
	s.source.AssertNumberOfCalls(s.T(), "ListEntries", 1)
}

func (s *ControllerTestSuite) TestNavigationGuard() {
	s.loadTo(1, 40)

	s.ErrorIs(s.ctrl.GoToPage(s.ctx, 0), ErrPageOutOfRange)
	s.ErrorIs(s.ctrl.GoToPage(s.ctx, 3), ErrPageOutOfRange)
	s.ErrorIs(s.ctrl.PreviousPage(s.ctx), ErrPageOutOfRange)

	v := s.ctrl.Snapshot()
	s.Equal(1, v.Page.CurrentPage)
	s.source.AssertNumberOfCalls(s.T(), "ListEntries", 1)
}

func (s *ControllerTestSuite) TestGoToPageBeyondLastPageIsANoOp() {
	// Page 2 of 40 entries is the last page, so page 3 is never requested.
	s.loadTo(2, 40)

	s.ErrorIs(s.ctrl.GoToPage(s.ctx, 3), ErrPageOutOfRange)
	s.ErrorIs(s.ctrl.NextPage(s.ctx), ErrPageOutOfRange)

	v := s.ctrl.Snapshot()
	s.Equal(2, v.Page.CurrentPage)
	s.Equal(40, v.Page.TotalCount)
	s.source.AssertNumberOfCalls(s.T(), "ListEntries", 2)
}

func (s *ControllerTestSuite) TestFailedPageFetchPreservesState() {
	s.loadTo(2, 45)
	before := s.ctrl.Snapshot()
	boom := errors.New("connection reset")
	s.source.On("ListEntries", s.ctx, onPage(3)).Return(nil, boom).Once()

	err := s.ctrl.GoToPage(s.ctx, 3)
	s.ErrorIs(err, boom)

	v := s.ctrl.Snapshot()
	s.Equal(2, v.Page.CurrentPage)
	s.Equal(45, v.Page.TotalCount)
	s.Equal(before.Rows, v.Rows)
	s.False(v.Loading)
	s.NoError(v.LoadError)
	s.Require().Len(v.Notifications, 1)
	s.Contains(v.Notifications[0].Message, "connection reset")
}

func (s *ControllerTestSuite) TestNextAndPreviousPage() {
	s.loadTo(1, 45)
	s.source.On("ListEntries", s.ctx, onPage(2)).Return(pageOf("p2", 20, 45), nil).Once()
	s.Require().NoError(s.ctrl.NextPage(s.ctx))
	s.Equal(2, s.ctrl.Snapshot().Page.CurrentPage)

	s.source.On("ListEntries", s.ctx, onPage(1)).Return(pageOf("p1", 20, 45), nil).Once()
	s.Require().NoError(s.ctrl.PreviousPage(s.ctx))
	s.Equal(1, s.ctrl.Snapshot().Page.CurrentPage)
}

func (s *ControllerTestSuite) TestHasMoreAfterCurrentIsAHeuristic() {
	// The count says one page, but the page came back full.
	s.source.On("ListEntries", s.ctx, onPage(1)).Return(pageOf("e", 20, 20), nil).Once()
	s.Require().NoError(s.ctrl.Refresh(s.ctx, 1))

	v := s.ctrl.Snapshot()
	s.True(v.Page.HasMoreAfterCurrent)
	s.False(v.Page.HasNextPage())
}

func (s *ControllerTestSuite) TestToggleSort() {
	s.loadTo(2, 45)

	var sent []dto.ListEntriesParams
	s.source.On("ListEntries", s.ctx, mock.Anything).
		Run(func(args mock.Arguments) { sent = append(sent, args.Get(1).(dto.ListEntriesParams)) }).
		Return(pageOf("s", 20, 45), nil).Times(3)

	s.Require().NoError(s.ctrl.ToggleSort(s.ctx, domain.SortByEntryDate))
	s.Require().NoError(s.ctrl.ToggleSort(s.ctx, domain.SortByEntryDate))
	s.Require().NoError(s.ctrl.ToggleSort(s.ctx, domain.SortByJournalID))

	s.Require().Len(sent, 3)
	s.Equal(domain.SortAsc, sent[0].SortOrder, "default is desc, so the first toggle flips to asc")
	s.Equal(domain.SortDesc, sent[1].SortOrder)
	s.Equal(domain.SortByJournalID, sent[2].SortBy)
	s.Equal(domain.SortAsc, sent[2].SortOrder)
	for _, p := range sent {
		s.Equal(1, p.Page)
	}
	s.Equal(domain.SortSpec{Column: domain.SortByJournalID, Direction: domain.SortAsc}, s.ctrl.Snapshot().Sort)
}

func (s *ControllerTestSuite) TestToggleSortRejectsUnknownColumn() {
	s.ErrorIs(s.ctrl.ToggleSort(s.ctx, "amount"), apperrors.ErrValidation)
	s.source.AssertNotCalled(s.T(), "ListEntries", mock.Anything, mock.Anything)
}

func (s *ControllerTestSuite) TestDeleteLastRowStepsBackAPage() {
	s.loadTo(3, 41)
	s.Require().Len(s.ctrl.Snapshot().Rows, 1)

	s.Require().NoError(s.ctrl.RequestDelete("p3-1"))
	s.Equal("p3-1", s.ctrl.Snapshot().PendingDeleteID)

	s.source.On("DeleteEntry", s.ctx, "p3-1").Return(nil).Once()
	s.source.On("ListEntries", s.ctx, onPage(2)).Return(pageOf("p2", 20, 40), nil).Once()

	s.Require().NoError(s.ctrl.ConfirmDelete(s.ctx))

	v := s.ctrl.Snapshot()
	s.Equal(2, v.Page.CurrentPage)
	s.Equal(40, v.Page.TotalCount)
	s.Empty(v.PendingDeleteID)
	s.Require().Len(v.Notifications, 1)
	s.Equal(LevelInfo, v.Notifications[0].Level)
}

func (s *ControllerTestSuite) TestDeleteOnFirstPageStays() {
	s.source.On("ListEntries", s.ctx, onPage(1)).Return(pageOf("only", 1, 1), nil).Once()
	s.Require().NoError(s.ctrl.Refresh(s.ctx, 1))
	s.Require().NoError(s.ctrl.RequestDelete("only-1"))

	s.source.On("DeleteEntry", s.ctx, "only-1").Return(nil).Once()
	s.source.On("ListEntries", s.ctx, onPage(1)).Return(pageOf("none", 0, 0), nil).Once()
	s.Require().NoError(s.ctrl.ConfirmDelete(s.ctx))

	v := s.ctrl.Snapshot()
	s.Equal(1, v.Page.CurrentPage)
	s.Empty(v.Rows)
}

func (s *ControllerTestSuite) TestDeleteCollapsesAllRows() {
	s.source.On("ListEntries", s.ctx, onPage(1)).Return(pageOf("a", 3, 3), nil).Once()
	s.Require().NoError(s.ctrl.Refresh(s.ctx, 1))
	s.ctrl.ToggleRowExpansion("a-1")
	s.ctrl.ToggleRowExpansion("a-2")
	s.Require().NoError(s.ctrl.RequestDelete("a-1"))

	s.source.On("DeleteEntry", s.ctx, "a-1").Return(nil).Once()
	s.source.On("ListEntries", s.ctx, onPage(1)).Return(pageOf("a", 2, 2), nil).Once()
	s.Require().NoError(s.ctrl.ConfirmDelete(s.ctx))

	s.Empty(s.ctrl.Snapshot().Expanded)
}

func (s *ControllerTestSuite) TestDeleteFailureClosesDialogWithoutRemovingRow() {
	s.loadTo(1, 5)
	s.Require().NoError(s.ctrl.RequestDelete("p1-2"))
	boom := errors.New("entry is posted")
	s.source.On("DeleteEntry", s.ctx, "p1-2").Return(boom).Once()

	s.ErrorIs(s.ctrl.ConfirmDelete(s.ctx), boom)

	v := s.ctrl.Snapshot()
	s.Empty(v.PendingDeleteID)
	s.Len(v.Rows, 20)
	s.Require().Len(v.Notifications, 1)
	s.Equal(LevelError, v.Notifications[0].Level)
	s.source.AssertNumberOfCalls(s.T(), "ListEntries", 1)
}

func (s *ControllerTestSuite) TestDeleteDialogGuards() {
	s.ErrorIs(s.ctrl.ConfirmDelete(s.ctx), ErrNoPendingDelete)
	s.ErrorIs(s.ctrl.RequestDelete("missing"), apperrors.ErrNotFound)

	s.loadTo(1, 2)
	s.Require().NoError(s.ctrl.RequestDelete("p1-1"))
	s.ctrl.CancelDelete()
	s.Empty(s.ctrl.Snapshot().PendingDeleteID)
	s.ErrorIs(s.ctrl.ConfirmDelete(s.ctx), ErrNoPendingDelete)
	s.source.AssertNotCalled(s.T(), "DeleteEntry", mock.Anything, mock.Anything)
}

func (s *ControllerTestSuite) TestDropdownFailureKeepsStaleValues() {
	accounts := []domain.Account{{ID: "A1"}}
	journals := []domain.Journal{{ID: "J1"}}
	s.source.On("ListAccounts", s.ctx).Return(accounts, nil).Once()
	s.source.On("ListJournals", s.ctx).Return(journals, nil).Once()
	s.Require().NoError(s.ctrl.LoadDropdowns(s.ctx))

	boom := errors.New("accounts down")
	s.source.On("ListAccounts", s.ctx).Return(nil, boom).Once()
	s.source.On("ListJournals", s.ctx).Return([]domain.Journal{{ID: "J1"}, {ID: "J2"}}, nil).Once()

	s.ErrorIs(s.ctrl.LoadDropdowns(s.ctx), boom)

	v := s.ctrl.Snapshot()
	s.Equal(accounts, v.Accounts)
	s.Len(v.Journals, 2)
	s.Require().Len(v.Notifications, 1)
	s.Contains(v.Notifications[0].Title, "accounts")
}

func (s *ControllerTestSuite) TestRowExpansion() {
	s.True(s.ctrl.ToggleRowExpansion("e1"))
	s.True(s.ctrl.ToggleRowExpansion("e2"))
	s.False(s.ctrl.ToggleRowExpansion("e1"))
	s.Equal(map[string]bool{"e2": true}, s.ctrl.Snapshot().Expanded)
}

func (s *ControllerTestSuite) TestSortToggleKeepsExpandedRows() {
	s.loadTo(1, 5)
	s.ctrl.ToggleRowExpansion("p1-1")
	s.source.On("ListEntries", s.ctx, onPage(1)).Return(pageOf("p1", 5, 5), nil).Once()
	s.Require().NoError(s.ctrl.ToggleSort(s.ctx, domain.SortByDescription))
	s.True(s.ctrl.Snapshot().Expanded["p1-1"])
}

func (s *ControllerTestSuite) TestDismissNotification() {
	s.source.On("ListEntries", s.ctx, onPage(1)).Return(nil, errors.New("nope")).Once()
	_ = s.ctrl.Refresh(s.ctx, 1)

	notes := s.ctrl.Snapshot().Notifications
	s.Require().Len(notes, 1)
	s.True(s.ctrl.DismissNotification(notes[0].ID))
	s.False(s.ctrl.DismissNotification(notes[0].ID))
	s.Empty(s.ctrl.Snapshot().Notifications)
}

func (s *ControllerTestSuite) TestCancelledFetchIsNotNotified() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.source.On("ListEntries", ctx, onPage(1)).Return(nil, context.Canceled).Once()

	s.ErrorIs(s.ctrl.Refresh(ctx, 1), context.Canceled)
	s.Empty(s.ctrl.Snapshot().Notifications)
}

func TestController_DateRangePolicies(t *testing.T) {
	t.Run("reject", func(t *testing.T) {
		source := new(MockSource)
		ctrl := NewController(source, Options{DateRangePolicy: domain.DateRangeReject})
		require.NoError(t, ctrl.SetFilter(FieldDateFrom, "2024-05-01"))
		require.NoError(t, ctrl.SetFilter(FieldDateTo, "2024-04-01"))

		assert.ErrorIs(t, ctrl.Apply(context.Background()), ErrInvalidDateRange)
		assert.Len(t, ctrl.Snapshot().Notifications, 1)
		assert.False(t, ctrl.Snapshot().Loading)
		source.AssertNotCalled(t, "ListEntries", mock.Anything, mock.Anything)
	})

	t.Run("rejected apply commits nothing", func(t *testing.T) {
		source := new(MockSource)
		ctrl := NewController(source, Options{DateRangePolicy: domain.DateRangeReject})
		ctx := context.Background()
		source.On("ListEntries", ctx, onPage(1)).Return(pageOf("e", 3, 3), nil)
		require.NoError(t, ctrl.Refresh(ctx, 1))
		ctrl.ToggleRowExpansion("e-1")

		require.NoError(t, ctrl.SetFilter(FieldDateFrom, "2024-05-01"))
		require.NoError(t, ctrl.SetFilter(FieldDateTo, "2024-04-01"))
		assert.ErrorIs(t, ctrl.Apply(ctx), ErrInvalidDateRange)

		v := ctrl.Snapshot()
		assert.Equal(t, domain.FilterCriteria{}, v.Applied)
		assert.NotNil(t, v.Pending.DateTo)
		assert.Equal(t, domain.DefaultSortSpec(), v.Sort)
		assert.True(t, v.Expanded["e-1"])
		assert.Len(t, v.Rows, 3)

		// the applied criteria are still valid, so later reloads go through
		require.NoError(t, ctrl.ToggleSort(ctx, domain.SortByDescription))
		assert.Equal(t, domain.SortSpec{Column: domain.SortByDescription, Direction: domain.SortAsc}, ctrl.Snapshot().Sort)

		require.NoError(t, ctrl.SetFilter(FieldDateTo, ""))
		require.NoError(t, ctrl.Refresh(ctx, 2))
		require.NoError(t, ctrl.Refresh(ctx, 2))
		source.AssertNumberOfCalls(t, "ListEntries", 3)
		assert.Empty(t, ctrl.Snapshot().Expanded)
	})

	t.Run("swap", func(t *testing.T) {
		source := new(MockSource)
		ctrl := NewController(source, Options{DateRangePolicy: domain.DateRangeSwap})
		require.NoError(t, ctrl.SetFilter(FieldDateFrom, "2024-05-01"))
		require.NoError(t, ctrl.SetFilter(FieldDateTo, "2024-04-01"))
		source.On("ListEntries", mock.Anything, mock.MatchedBy(func(p dto.ListEntriesParams) bool {
			return p.DateRange != nil && *p.DateRange.From == "2024-04-01" && *p.DateRange.To == "2024-05-01"
		})).Return(pageOf("e", 0, 0), nil).Once()

		require.NoError(t, ctrl.Apply(context.Background()))
		source.AssertExpectations(t)
	})

	t.Run("pass through", func(t *testing.T) {
		source := new(MockSource)
		ctrl := NewController(source, Options{})
		require.NoError(t, ctrl.SetFilter(FieldDateFrom, "2024-05-01"))
		require.NoError(t, ctrl.SetFilter(FieldDateTo, "2024-04-01"))
		source.On("ListEntries", mock.Anything, mock.MatchedBy(func(p dto.ListEntriesParams) bool {
			return p.DateRange != nil && *p.DateRange.From == "2024-05-01" && *p.DateRange.To == "2024-04-01"
		})).Return(pageOf("e", 0, 0), nil).Once()

		require.NoError(t, ctrl.Apply(context.Background()))
		source.AssertExpectations(t)
	})
}

func TestController_StaleResponseIsDiscarded(t *testing.T) {
	source := new(MockSource)
	ctrl := NewController(source, Options{})
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})

	isRef := func(ref string) interface{} {
		return mock.MatchedBy(func(p dto.ListEntriesParams) bool { return p.Reference != nil && *p.Reference == ref })
	}
	source.On("ListEntries", ctx, isRef("slow")).
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Return(pageOf("slow", 20, 100), nil).Once()
	source.On("ListEntries", ctx, isRef("fast")).Return(pageOf("fast", 3, 3), nil).Once()

	require.NoError(t, ctrl.SetFilter(FieldReference, "slow"))

	var wg sync.WaitGroup
	var slowErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		slowErr = ctrl.Apply(ctx)
	}()
	<-started
	assert.True(t, ctrl.Snapshot().Loading)

	require.NoError(t, ctrl.SetFilter(FieldReference, "fast"))
	require.NoError(t, ctrl.Apply(ctx))

	close(release)
	wg.Wait()

	assert.ErrorIs(t, slowErr, ErrSuperseded)
	v := ctrl.Snapshot()
	assert.False(t, v.Loading)
	require.Len(t, v.Rows, 3)
	assert.Equal(t, "fast-1", v.Rows[0].ID)
	assert.Equal(t, 3, v.Page.TotalCount)
	source.AssertExpectations(t)
}

func TestController_LoadingWhileLatestInFlight(t *testing.T) {
	source := new(MockSource)
	ctrl := NewController(source, Options{})
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	source.On("ListEntries", ctx, onPage(1)).
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Return(pageOf("new", 2, 2), nil).Once()

	done := make(chan error, 1)
	go func() { done <- ctrl.Refresh(ctx, 1) }()
	<-started

	v := ctrl.Snapshot()
	assert.True(t, v.Loading)
	assert.Empty(t, v.Rows)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, ctrl.Snapshot().Loading)
	assert.Len(t, ctrl.Snapshot().Rows, 2)
	source.AssertExpectations(t)
}

func TestController_InitialSortOption(t *testing.T) {
	source := new(MockSource)
	ctx := context.Background()
	ctrl := NewController(source, Options{
		PageSize: 5,
		Sort:     domain.SortSpec{Column: domain.SortByReferenceNumber, Direction: domain.SortAsc},
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	source.On("ListEntries", ctx, dto.ListEntriesParams{SortBy: "reference_number", SortOrder: "asc", Page: 1, Limit: 5}).
		Return(pageOf("e", 5, 5), nil).Once()
	require.NoError(t, ctrl.Apply(ctx))
	source.AssertExpectations(t)

	// an incomplete spec falls back to newest first
	assert.Equal(t, domain.DefaultSortSpec(), NewController(source, Options{Sort: domain.SortSpec{Column: "amount"}}).Snapshot().Sort)
}
