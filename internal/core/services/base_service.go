package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/journal_entries_app/internal/core/domain"
	portssvc "github.com/SscSPs/journal_entries_app/internal/core/ports/services"
	"github.com/SscSPs/journal_entries_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	CompanyAuthorizer portssvc.CompanyAuthorizerSvc
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeUser checks if a user has the required role in a company.
// Without an authorizer every request is rejected.
func (s *BaseService) AuthorizeUser(ctx context.Context, userID, companyID string, requiredRole domain.CompanyRole) error {
	if s.CompanyAuthorizer == nil {
		s.LogError(ctx, errNoAuthorizer, "Authorization unavailable",
			slog.String("user_id", userID),
			slog.String("company_id", companyID))
		return errNoAuthorizer
	}
	if err := s.CompanyAuthorizer.AuthorizeUserAction(ctx, userID, companyID, requiredRole); err != nil {
		s.GetLogger(ctx).Warn("Authorization failed",
			slog.String("user_id", userID),
			slog.String("company_id", companyID),
			slog.String("required_role", string(requiredRole)),
			slog.String("error", err.Error()))
		return err
	}
	return nil
}
