package pgsql

import (
	portsrepo "github.com/SscSPs/journal_entries_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	entryRepo := newPgxEntryRepository(dbPool)
	lookupRepo := newPgxLookupRepository(dbPool)
	membershipRepo := newPgxMembershipRepository(dbPool)

	return portsrepo.RepositoryProvider{
		EntryRepo:      entryRepo,
		LookupRepo:     lookupRepo,
		MembershipRepo: membershipRepo,
	}
}
