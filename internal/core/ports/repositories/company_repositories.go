package repositories

import (
	"context"

	"github.com/SscSPs/journal_entries_app/internal/core/domain"
)

// CompanyMembershipReader defines read operations for company memberships
type CompanyMembershipReader interface {
	// FindCompanyMembership retrieves the role of a user in a company.
	FindCompanyMembership(ctx context.Context, userID, companyID string) (*domain.CompanyMembership, error)
}
