package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/journal_entries_app/internal/apperrors"
	"github.com/SscSPs/journal_entries_app/internal/core/domain"
	portsrepo "github.com/SscSPs/journal_entries_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/journal_entries_app/internal/core/ports/services"
	"github.com/SscSPs/journal_entries_app/internal/utils/pagination"
)

// DefaultMaxPageLimit caps page sizes when no limit is configured.
const DefaultMaxPageLimit = 100

// entryService lists, reads and mutates ledger entries of a company.
type entryService struct {
	BaseService
	entryRepo    portsrepo.EntryRepositoryFacade
	maxPageLimit int
	now          func() time.Time
}

// EntryServiceOption configures an entryService.
type EntryServiceOption func(*entryService)

// WithMaxPageLimit overrides the largest page size a caller may request.
func WithMaxPageLimit(limit int) EntryServiceOption {
	return func(s *entryService) {
		if limit > 0 {
			s.maxPageLimit = limit
		}
	}
}

// WithClock replaces time.Now for audit timestamps.
func WithClock(now func() time.Time) EntryServiceOption {
	return func(s *entryService) {
		s.now = now
	}
}

// NewEntryService creates a new entry service.
func NewEntryService(entryRepo portsrepo.EntryRepositoryFacade, authorizer portssvc.CompanyAuthorizerSvc, opts ...EntryServiceOption) portssvc.EntrySvcFacade {
	s := &entryService{
		BaseService:  BaseService{CompanyAuthorizer: authorizer},
		entryRepo:    entryRepo,
		maxPageLimit: DefaultMaxPageLimit,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.EntrySvcFacade = (*entryService)(nil)

// ListEntries retrieves one page of entries with their lines.
func (s *entryService) ListEntries(ctx context.Context, companyID, userID string, query domain.EntryListQuery) (*domain.EntryPage, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	query, err := s.normalizeQuery(query)
	if err != nil {
		return nil, err
	}

	entries, total, err := s.entryRepo.ListEntries(ctx, companyID, query)
	if err != nil {
		s.LogError(ctx, err, "Failed to list entries from repository", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to retrieve entries: %w", err)
	}

	if err := s.attachLines(ctx, entries); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Entries listed successfully",
		slog.String("company_id", companyID),
		slog.Int("count", len(entries)),
		slog.Int("total", total),
		slog.Int("page", query.Page))
	return &domain.EntryPage{Entries: entries, TotalCount: total}, nil
}

// GetEntryByID retrieves a single entry with its lines.
func (s *entryService) GetEntryByID(ctx context.Context, companyID, entryID, userID string) (*domain.LedgerEntry, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}

	entry, err := s.findEntry(ctx, companyID, entryID)
	if err != nil {
		return nil, err
	}

	entries := []domain.LedgerEntry{*entry}
	if err := s.attachLines(ctx, entries); err != nil {
		return nil, err
	}
	return &entries[0], nil
}

func (s *entryService) GetEntryStats(ctx context.Context, companyID, userID string) (*domain.EntryStats, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	stats, err := s.entryRepo.GetEntryStats(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute entry stats", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to compute entry stats: %w", err)
	}
	return stats, nil
}

// DeleteEntry removes an entry and its lines. Members and admins only.
func (s *entryService) DeleteEntry(ctx context.Context, companyID, entryID, userID string) error {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleMember); err != nil {
		return err
	}
	if _, err := s.findEntry(ctx, companyID, entryID); err != nil {
		return err
	}

	if err := s.entryRepo.DeleteEntry(ctx, companyID, entryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.LogError(ctx, err, "Failed to delete entry", slog.String("entry_id", entryID))
		return fmt.Errorf("failed to delete entry %s: %w", entryID, err)
	}

	s.LogInfo(ctx, "Entry deleted", slog.String("entry_id", entryID), slog.String("company_id", companyID))
	return nil
}

// UpdateEntryStatus moves an entry to a new status. Members and admins only.
func (s *entryService) UpdateEntryStatus(ctx context.Context, companyID, entryID, userID string, status domain.EntryStatus) error {
	if !status.Valid() {
		return apperrors.NewValidationError(fmt.Sprintf("invalid status %q", status))
	}
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleMember); err != nil {
		return err
	}
	entry, err := s.findEntry(ctx, companyID, entryID)
	if err != nil {
		return err
	}
	if entry.Status == status {
		return nil
	}

	if err := s.entryRepo.UpdateEntryStatus(ctx, companyID, entryID, status, userID, s.now().UTC()); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.LogError(ctx, err, "Failed to update entry status", slog.String("entry_id", entryID))
		return fmt.Errorf("failed to update entry status: %w", err)
	}

	s.LogInfo(ctx, "Entry status updated",
		slog.String("entry_id", entryID),
		slog.String("from", string(entry.Status)),
		slog.String("to", string(status)))
	return nil
}

func (s *entryService) findEntry(ctx context.Context, companyID, entryID string) (*domain.LedgerEntry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, companyID, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find entry", slog.String("entry_id", entryID))
		}
		return nil, fmt.Errorf("failed to find entry %s: %w", entryID, err)
	}
	// Entries of other companies are reported as missing.
	if entry.CompanyID != companyID {
		return nil, apperrors.NewNotFoundError("journal entry not found")
	}
	return entry, nil
}

// attachLines loads lines for all entries in one query.
func (s *entryService) attachLines(ctx context.Context, entries []domain.LedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	linesByEntry, err := s.entryRepo.FindLinesByEntryIDs(ctx, ids)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch lines for entries", slog.Int("entry_count", len(ids)))
		return fmt.Errorf("failed to retrieve entry lines: %w", err)
	}
	for i := range entries {
		entries[i].Lines = linesByEntry[entries[i].ID]
	}
	return nil
}

// normalizeQuery fills defaults and rejects values the repository cannot use.
func (s *entryService) normalizeQuery(q domain.EntryListQuery) (domain.EntryListQuery, error) {
	if q.Sort.Column == "" {
		q.Sort.Column = domain.DefaultSortSpec().Column
	}
	if q.Sort.Direction == "" {
		q.Sort.Direction = domain.DefaultSortSpec().Direction
	}
	if !q.Sort.Column.Valid() {
		return q, apperrors.NewValidationError(fmt.Sprintf("invalid sort column %q", q.Sort.Column))
	}
	if !q.Sort.Direction.Valid() {
		return q, apperrors.NewValidationError(fmt.Sprintf("invalid sort order %q", q.Sort.Direction))
	}
	if q.Page == 0 {
		q.Page = 1
	}
	if q.Page < 1 {
		return q, apperrors.NewValidationError("page must be at least 1")
	}
	if q.Limit < 0 {
		return q, apperrors.NewValidationError("limit must be positive")
	}
	q.Limit = pagination.ClampLimit(q.Limit, s.maxPageLimit)
	if q.Criteria.Status != nil && !q.Criteria.Status.Valid() {
		return q, apperrors.NewValidationError(fmt.Sprintf("invalid status %q", *q.Criteria.Status))
	}
	return q, nil
}
