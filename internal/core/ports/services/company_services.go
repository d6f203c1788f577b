package services

import (
	"context"

	"github.com/SscSPs/journal_entries_app/internal/core/domain"
)

// CompanyAuthorizerSvc defines operations for company authorization
type CompanyAuthorizerSvc interface {
	// AuthorizeUserAction checks if a user has at least requiredRole in a company.
	AuthorizeUserAction(ctx context.Context, userID, companyID string, requiredRole domain.CompanyRole) error
}
