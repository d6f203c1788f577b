package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/journal_entries_app/internal/core/domain"
	portsrepo "github.com/SscSPs/journal_entries_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/journal_entries_app/internal/core/ports/services"
)

type lookupService struct {
	BaseService
	lookupRepo portsrepo.LookupReader
}

func NewLookupService(lookupRepo portsrepo.LookupReader, authorizer portssvc.CompanyAuthorizerSvc) portssvc.LookupSvc {
	return &lookupService{
		BaseService: BaseService{CompanyAuthorizer: authorizer},
		lookupRepo:  lookupRepo,
	}
}

var _ portssvc.LookupSvc = (*lookupService)(nil)

func (s *lookupService) ListAccounts(ctx context.Context, companyID, userID string) ([]domain.Account, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	accounts, err := s.lookupRepo.ListActiveAccounts(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	s.LogDebug(ctx, "Accounts listed", slog.Int("count", len(accounts)))
	return accounts, nil
}

func (s *lookupService) ListJournals(ctx context.Context, companyID, userID string) ([]domain.Journal, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	journals, err := s.lookupRepo.ListActiveJournals(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journals", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to list journals: %w", err)
	}
	s.LogDebug(ctx, "Journals listed", slog.Int("count", len(journals)))
	return journals, nil
}
