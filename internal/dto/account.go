package dto

import "github.com/SscSPs/journal_entries_app/internal/core/domain"

// AccountResponse defines the data returned for an account in the filter list.
type AccountResponse struct {
	ID            string             `json:"id"`
	AccountNumber string             `json:"account_number"`
	Name          string             `json:"name"`
	Type          domain.AccountType `json:"type"`
	Class         *int               `json:"class,omitempty"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		ID:            acc.ID,
		AccountNumber: acc.AccountNumber,
		Name:          acc.Name,
		Type:          acc.Type,
		Class:         acc.Class,
	}
}

func ToListAccountsResponse(accounts []domain.Account) ListAccountsResponse {
	out := make([]AccountResponse, len(accounts))
	for i := range accounts {
		out[i] = ToAccountResponse(&accounts[i])
	}
	return ListAccountsResponse{Accounts: out}
}

// ToDomain converts the wire form back into domain accounts. The company is not
// part of the payload and is filled in by the caller if needed.
func (r ListAccountsResponse) ToDomain() []domain.Account {
	out := make([]domain.Account, len(r.Accounts))
	for i, a := range r.Accounts {
		out[i] = domain.Account{
			ID:            a.ID,
			AccountNumber: a.AccountNumber,
			Name:          a.Name,
			Type:          a.Type,
			Class:         a.Class,
			IsActive:      true,
		}
	}
	return out
}
