package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/journal_entries_app/internal/apperrors"
	"github.com/SscSPs/journal_entries_app/internal/core/domain"
	portsrepo "github.com/SscSPs/journal_entries_app/internal/core/ports/repositories"
	"github.com/SscSPs/journal_entries_app/internal/models"
	"github.com/SscSPs/journal_entries_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxMembershipRepository struct {
	BaseRepository
}

func newPgxMembershipRepository(pool *pgxpool.Pool) portsrepo.CompanyMembershipReader {
	return &PgxMembershipRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CompanyMembershipReader = (*PgxMembershipRepository)(nil)

func (r *PgxMembershipRepository) FindCompanyMembership(ctx context.Context, userID, companyID string) (*domain.CompanyMembership, error) {
	query := `
		SELECT user_id, company_id, role, joined_at
		FROM company_members
		WHERE user_id = $1 AND company_id = $2;
	`
	var m models.CompanyMember
	err := r.Pool.QueryRow(ctx, query, userID, companyID).Scan(
		&m.UserID,
		&m.CompanyID,
		&m.Role,
		&m.JoinedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("company membership not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find role of user "+userID+" in company "+companyID, err)
	}
	membership := mapping.ToDomainCompanyMembership(m)
	return &membership, nil
}
