package services

import (
	portsrepo "github.com/SscSPs/journal_entries_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/journal_entries_app/internal/core/ports/services"
	"github.com/SscSPs/journal_entries_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The company authorizer comes first since every other service depends on it
	container.Company = NewCompanyService(repos.MembershipRepo)

	container.Entry = NewEntryService(repos.EntryRepo, container.Company, WithMaxPageLimit(cfg.MaxPageLimit))
	container.Lookup = NewLookupService(repos.LookupRepo, container.Company)

	return container
}
