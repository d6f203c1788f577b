package dto

import "github.com/SscSPs/journal_entries_app/internal/core/domain"

// JournalResponse defines the data returned for a journal in the filter list.
type JournalResponse struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// ListJournalsResponse wraps the list of journals.
type ListJournalsResponse struct {
	Journals []JournalResponse `json:"journals"`
}

// ToJournalResponse converts a domain.Journal to JournalResponse DTO.
func ToJournalResponse(j *domain.Journal) JournalResponse {
	return JournalResponse{ID: j.ID, Code: j.Code, Name: j.Name, Type: j.Type}
}

func ToListJournalsResponse(journals []domain.Journal) ListJournalsResponse {
	out := make([]JournalResponse, len(journals))
	for i := range journals {
		out[i] = ToJournalResponse(&journals[i])
	}
	return ListJournalsResponse{Journals: out}
}

func (r ListJournalsResponse) ToDomain() []domain.Journal {
	out := make([]domain.Journal, len(r.Journals))
	for i, j := range r.Journals {
		out[i] = domain.Journal{ID: j.ID, Code: j.Code, Name: j.Name, Type: j.Type, IsActive: true}
	}
	return out
}
