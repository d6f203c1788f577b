package entrylist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/SscSPs/journal_entries_app/internal/apperrors"
	"github.com/SscSPs/journal_entries_app/internal/core/domain"
	"github.com/SscSPs/journal_entries_app/internal/dto"
)

// RefreshToken is an opaque value set by whoever commits new entries elsewhere.
// A change of value makes the list reload.
type RefreshToken uint64

// Options configures a Controller. Zero values select the defaults.
type Options struct {
	PageSize        int
	DateRangePolicy domain.DateRangePolicy
	Sort            domain.SortSpec // initial sort; zero means newest first
	Logger          *slog.Logger
	Now             func() time.Time
}

// View is a consistent copy of everything a renderer needs.
type View struct {
	Rows            []domain.LedgerEntry
	Page            domain.PageState
	Sort            domain.SortSpec
	Pending         domain.FilterCriteria
	Applied         domain.FilterCriteria
	Loading         bool
	LoadError       error // set only when the very first load failed with nothing to show
	Notifications   []Notification
	Expanded        map[string]bool
	Accounts        []domain.Account
	Journals        []domain.Journal
	PendingDeleteID string
}

// Controller owns the list state: filters, sort, page, rows, expanded rows,
// the delete dialog, dropdown data and notifications. All methods are safe
// for concurrent use. Every fetch carries a sequence number and only the
// response to the most recently issued fetch is ever committed.
type Controller struct {
	source   Source
	logger   *slog.Logger
	policy   domain.DateRangePolicy
	pageSize int

	mu            sync.Mutex
	filters       *FilterState
	sort          domain.SortSpec
	page          domain.PageState
	rows          []domain.LedgerEntry
	loaded        bool
	loadErr       error
	issued        uint64
	settled       uint64
	expanded      map[string]bool
	pendingDelete string
	accounts      []domain.Account
	journals      []domain.Journal
	notes         notifications
	refreshSeen   bool
	lastRefresh   RefreshToken
}

// NewController returns a Controller reading from source. Nothing is fetched
// until Load or Refresh is called.
func NewController(source Source, opts Options) *Controller {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.DateRangePolicy == "" {
		opts.DateRangePolicy = domain.DateRangePassThrough
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if !opts.Sort.Column.Valid() || !opts.Sort.Direction.Valid() {
		opts.Sort = domain.DefaultSortSpec()
	}
	return &Controller{
		source:   source,
		logger:   opts.Logger.With("component", "entrylist"),
		policy:   opts.DateRangePolicy,
		pageSize: opts.PageSize,
		filters:  NewFilterState(),
		sort:     opts.Sort,
		page:     domain.PageState{PageSize: opts.PageSize, CurrentPage: 1},
		expanded: make(map[string]bool),
		notes:    notifications{now: opts.Now},
	}
}

type fetchRequest struct {
	seq    uint64
	page   int
	params dto.ListEntriesParams
}

// Load performs the initial page-1 fetch and the dropdown loads concurrently.
func (c *Controller) Load(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error {
		c.mu.Lock()
		req, err := c.beginFetchLocked(c.filters.Applied(), c.sort, 1)
		c.mu.Unlock()
		if err != nil {
			return err
		}
		return c.runFetch(ctx, req)
	})
	g.Go(func() error {
		return c.LoadDropdowns(ctx)
	})
	return g.Wait()
}

// SetFilter buffers a pending edit. It never fetches.
func (c *Controller) SetFilter(field FilterField, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filters.SetField(field, value)
}

// Apply commits the pending filters and fetches page 1. Filters refused by
// the date range policy are not committed.
func (c *Controller) Apply(ctx context.Context) error {
	c.mu.Lock()
	req, err := c.beginFetchLocked(c.filters.Pending(), c.sort, 1)
	if err == nil {
		c.filters.Apply()
		c.expanded = make(map[string]bool)
	}
	c.mu.Unlock()
	if err != nil {
		return err
	}
	return c.runFetch(ctx, req)
}

// Clear drops every filter and fetches page 1.
func (c *Controller) Clear(ctx context.Context) error {
	c.mu.Lock()
	c.filters.Clear()
	c.expanded = make(map[string]bool)
	req, err := c.beginFetchLocked(domain.FilterCriteria{}, c.sort, 1)
	c.mu.Unlock()
	if err != nil {
		return err
	}
	return c.runFetch(ctx, req)
}

// GoToPage fetches page n with the applied filters. Pages outside
// 1..TotalPages are rejected with ErrPageOutOfRange and nothing is fetched.
func (c *Controller) GoToPage(ctx context.Context, n int) error {
	c.mu.Lock()
	total := c.page.TotalPages()
	if n < 1 || n > total {
		c.mu.Unlock()
		return fmt.Errorf("%w: page %d of %d", ErrPageOutOfRange, n, total)
	}
	req, err := c.beginFetchLocked(c.filters.Applied(), c.sort, n)
	c.mu.Unlock()
	if err != nil {
		return err
	}
	return c.runFetch(ctx, req)
}

// NextPage fetches the page after the current one.
func (c *Controller) NextPage(ctx context.Context) error {
	c.mu.Lock()
	next := c.page.CurrentPage + 1
	c.mu.Unlock()
	return c.GoToPage(ctx, next)
}

// PreviousPage fetches the page before the current one.
func (c *Controller) PreviousPage(ctx context.Context) error {
	c.mu.Lock()
	prev := c.page.CurrentPage - 1
	c.mu.Unlock()
	return c.GoToPage(ctx, prev)
}

// ToggleSort flips the direction of the active column, or switches to a new
// column ascending, and fetches page 1.
func (c *Controller) ToggleSort(ctx context.Context, column domain.SortColumn) error {
	if !column.Valid() {
		return apperrors.NewValidationError(fmt.Sprintf("unknown sort column %q", column))
	}
	c.mu.Lock()
	next := c.sort.Toggle(column)
	req, err := c.beginFetchLocked(c.filters.Applied(), next, 1)
	if err == nil {
		c.sort = next
	}
	c.mu.Unlock()
	if err != nil {
		return err
	}
	return c.runFetch(ctx, req)
}

// Refresh reloads page 1 with the applied filters and collapses expanded rows
// when token differs from the last one seen. The first token always counts as
// a change. An unchanged token is a no-op. A token whose reload was refused
// is not recorded, so it still counts as a change next time.
func (c *Controller) Refresh(ctx context.Context, token RefreshToken) error {
	c.mu.Lock()
	if c.refreshSeen && c.lastRefresh == token {
		c.mu.Unlock()
		return nil
	}
	req, err := c.beginFetchLocked(c.filters.Applied(), c.sort, 1)
	if err == nil {
		c.refreshSeen = true
		c.lastRefresh = token
		c.expanded = make(map[string]bool)
	}
	c.mu.Unlock()
	if err != nil {
		return err
	}
	return c.runFetch(ctx, req)
}

// ToggleRowExpansion flips the detail view of one row and reports the new state.
func (c *Controller) ToggleRowExpansion(entryID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.expanded[entryID] {
		delete(c.expanded, entryID)
		return false
	}
	c.expanded[entryID] = true
	return true
}

// RequestDelete opens the confirmation dialog for one of the displayed rows.
func (c *Controller) RequestDelete(entryID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.indexOfLocked(entryID) < 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("entry %s is not on the current page", entryID))
	}
	c.pendingDelete = entryID
	return nil
}

// CancelDelete closes the confirmation dialog without deleting.
func (c *Controller) CancelDelete() {
	c.mu.Lock()
	c.pendingDelete = ""
	c.mu.Unlock()
}

// ConfirmDelete deletes the entry awaiting confirmation. The dialog closes
// whatever the outcome. Rows are never removed locally: on success the list
// is re-fetched, stepping back a page when the current one would be empty.
func (c *Controller) ConfirmDelete(ctx context.Context) error {
	c.mu.Lock()
	id := c.pendingDelete
	if id == "" {
		c.mu.Unlock()
		return ErrNoPendingDelete
	}
	c.pendingDelete = ""
	c.mu.Unlock()

	if err := c.source.DeleteEntry(ctx, id); err != nil {
		c.logger.ErrorContext(ctx, "Failed to delete entry", "entryID", id, "error", err)
		c.mu.Lock()
		c.notes.push(LevelError, "Delete failed", err.Error())
		c.mu.Unlock()
		return fmt.Errorf("delete entry %s: %w", id, err)
	}
	c.logger.InfoContext(ctx, "Entry deleted", "entryID", id)

	c.mu.Lock()
	c.notes.push(LevelInfo, "Entry deleted", "The journal entry was deleted.")
	c.expanded = make(map[string]bool)
	deleted := 0
	if c.indexOfLocked(id) >= 0 {
		deleted = 1
	}
	next := PageAfterDeletion(c.page.CurrentPage, len(c.rows), deleted)
	req, err := c.beginFetchLocked(c.filters.Applied(), c.sort, next)
	c.mu.Unlock()
	if err != nil {
		return err
	}
	return c.runFetch(ctx, req)
}

// LoadDropdowns fetches the account and journal choices concurrently. A
// failed list keeps its previous values.
func (c *Controller) LoadDropdowns(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error {
		accounts, err := c.source.ListAccounts(ctx)
		c.mu.Lock()
		defer c.mu.Unlock()
		if err != nil {
			c.logger.ErrorContext(ctx, "Failed to load accounts", "error", err)
			c.notes.push(LevelError, "Could not load accounts", err.Error())
			return fmt.Errorf("list accounts: %w", err)
		}
		c.accounts = accounts
		return nil
	})
	g.Go(func() error {
		journals, err := c.source.ListJournals(ctx)
		c.mu.Lock()
		defer c.mu.Unlock()
		if err != nil {
			c.logger.ErrorContext(ctx, "Failed to load journals", "error", err)
			c.notes.push(LevelError, "Could not load journals", err.Error())
			return fmt.Errorf("list journals: %w", err)
		}
		c.journals = journals
		return nil
	})
	return g.Wait()
}

// DismissNotification removes a notification and reports whether it existed.
func (c *Controller) DismissNotification(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.notes.dismiss(id)
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	rows := make([]domain.LedgerEntry, len(c.rows))
	copy(rows, c.rows)
	expanded := make(map[string]bool, len(c.expanded))
	for id := range c.expanded {
		expanded[id] = true
	}
	accounts := make([]domain.Account, len(c.accounts))
	copy(accounts, c.accounts)
	journals := make([]domain.Journal, len(c.journals))
	copy(journals, c.journals)

	return View{
		Rows:            rows,
		Page:            c.page,
		Sort:            c.sort,
		Pending:         c.filters.Pending(),
		Applied:         c.filters.Applied(),
		Loading:         c.issued != c.settled,
		LoadError:       c.loadErr,
		Notifications:   c.notes.list(),
		Expanded:        expanded,
		Accounts:        accounts,
		Journals:        journals,
		PendingDeleteID: c.pendingDelete,
	}
}

// beginFetchLocked checks criteria against the date range policy, then issues
// the next sequence number and composes the request. It changes no list state
// on refusal, so callers commit their edits only once it succeeds.
// c.mu must be held.
func (c *Controller) beginFetchLocked(criteria domain.FilterCriteria, sort domain.SortSpec, page int) (fetchRequest, error) {
	criteria, ok := applyDateRangePolicy(c.policy, criteria)
	if !ok {
		c.notes.push(LevelError, "Invalid date range", ErrInvalidDateRange.Error())
		return fetchRequest{}, ErrInvalidDateRange
	}
	c.issued++
	return fetchRequest{
		seq:    c.issued,
		page:   page,
		params: Compose(criteria, sort, page, c.pageSize),
	}, nil
}

// runFetch calls the source without holding the lock and commits the result
// only if no newer fetch was issued meanwhile. A failure leaves rows, page
// and count as they were.
func (c *Controller) runFetch(ctx context.Context, req fetchRequest) error {
	c.logger.DebugContext(ctx, "Fetching entries", "seq", req.seq, "page", req.page)
	result, err := c.source.ListEntries(ctx, req.params)

	c.mu.Lock()
	defer c.mu.Unlock()

	if req.seq != c.issued {
		c.logger.DebugContext(ctx, "Discarding superseded response", "seq", req.seq, "latest", c.issued)
		return ErrSuperseded
	}
	c.settled = req.seq

	if err != nil {
		c.logger.ErrorContext(ctx, "Failed to fetch entries", "page", req.page, "error", err)
		if !c.loaded && len(c.rows) == 0 {
			c.loadErr = err
		}
		if !errors.Is(err, context.Canceled) {
			c.notes.push(LevelError, "Could not load journal entries", err.Error())
		}
		return fmt.Errorf("list entries page %d: %w", req.page, err)
	}

	if result == nil {
		result = &domain.EntryPage{}
	}
	c.rows = result.Entries
	c.page = domain.PageState{
		PageSize:            c.pageSize,
		CurrentPage:         req.page,
		TotalCount:          result.TotalCount,
		HasMoreAfterCurrent: len(result.Entries) == c.pageSize,
	}
	c.loaded = true
	c.loadErr = nil
	return nil
}

func (c *Controller) indexOfLocked(entryID string) int {
	for i := range c.rows {
		if c.rows[i].ID == entryID {
			return i
		}
	}
	return -1
}
