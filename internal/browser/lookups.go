package browser

import (
	"strings"

	"github.com/SscSPs/journal_entries_app/internal/core/domain"
)

// Names resolves the codes people type and read to and from IDs.
type Names struct {
	Accounts []domain.Account
	Journals []domain.Journal
}

func (n Names) JournalCode(id string) string {
	for _, j := range n.Journals {
		if j.ID == id {
			return j.Code
		}
	}
	return id
}

func (n Names) AccountNumber(id string) string {
	for _, a := range n.Accounts {
		if a.ID == id {
			return a.AccountNumber
		}
	}
	return id
}

// JournalID returns the ID of the journal with the given code, or value unchanged.
func (n Names) JournalID(value string) string {
	v := strings.TrimSpace(value)
	for _, j := range n.Journals {
		if strings.EqualFold(j.Code, v) {
			return j.ID
		}
	}
	return value
}

// AccountID returns the ID of the account with the given number, or value unchanged.
func (n Names) AccountID(value string) string {
	v := strings.TrimSpace(value)
	for _, a := range n.Accounts {
		if a.AccountNumber == v {
			return a.ID
		}
	}
	return value
}
