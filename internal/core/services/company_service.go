package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/journal_entries_app/internal/apperrors"
	"github.com/SscSPs/journal_entries_app/internal/core/domain"
	portsrepo "github.com/SscSPs/journal_entries_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/journal_entries_app/internal/core/ports/services"
)

var errNoAuthorizer = errors.New("no company authorizer configured")

// companyService checks company membership roles.
type companyService struct {
	BaseService
	membershipRepo portsrepo.CompanyMembershipReader
}

// NewCompanyService creates a new company authorizer.
func NewCompanyService(membershipRepo portsrepo.CompanyMembershipReader) portssvc.CompanyAuthorizerSvc {
	return &companyService{membershipRepo: membershipRepo}
}

var _ portssvc.CompanyAuthorizerSvc = (*companyService)(nil)

// AuthorizeUserAction checks if a user has at least requiredRole in a company.
// Non-members get ErrForbidden so that company existence is not revealed.
func (s *companyService) AuthorizeUserAction(ctx context.Context, userID, companyID string, requiredRole domain.CompanyRole) error {
	if userID == "" {
		return apperrors.ErrUnauthorized
	}
	membership, err := s.membershipRepo.FindCompanyMembership(ctx, userID, companyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "User not a member of company",
				slog.String("user_id", userID),
				slog.String("company_id", companyID))
			return apperrors.ErrForbidden
		}
		s.LogError(ctx, err, "Failed to find company membership",
			slog.String("user_id", userID),
			slog.String("company_id", companyID))
		return fmt.Errorf("failed to check company membership: %w", err)
	}

	if !membership.Role.Satisfies(requiredRole) {
		s.LogDebug(ctx, "User does not have required role",
			slog.String("user_id", userID),
			slog.String("company_id", companyID),
			slog.String("user_role", string(membership.Role)),
			slog.String("required_role", string(requiredRole)))
		return apperrors.ErrForbidden
	}
	return nil
}
