package mapping

import (
	"github.com/SscSPs/journal_entries_app/internal/core/domain"
	"github.com/SscSPs/journal_entries_app/internal/models"
)

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		ID:            m.AccountID,
		CompanyID:     m.CompanyID,
		AccountNumber: m.AccountNumber,
		Name:          m.Name,
		Type:          domain.AccountType(m.AccountType),
		Class:         m.Class,
		IsActive:      m.IsActive,
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}

// ToDomainJournal converts a model Journal to a domain Journal
func ToDomainJournal(m models.Journal) domain.Journal {
	return domain.Journal{
		ID:        m.JournalID,
		CompanyID: m.CompanyID,
		Code:      m.Code,
		Name:      m.Name,
		Type:      m.JournalType,
		IsActive:  m.IsActive,
	}
}

// ToDomainJournalSlice converts a slice of model Journals to a slice of domain Journals
func ToDomainJournalSlice(ms []models.Journal) []domain.Journal {
	ds := make([]domain.Journal, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournal(m)
	}
	return ds
}

// ToDomainCompanyMembership converts a model CompanyMember to a domain CompanyMembership
func ToDomainCompanyMembership(m models.CompanyMember) domain.CompanyMembership {
	return domain.CompanyMembership{
		UserID:    m.UserID,
		CompanyID: m.CompanyID,
		Role:      domain.CompanyRole(m.Role),
		JoinedAt:  m.JoinedAt,
	}
}
