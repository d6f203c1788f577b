package dto

import (
	"net/url"
	"strconv"
	"time"

	"github.com/SscSPs/journal_entries_app/internal/core/domain"
)

// DateRange carries optional inclusive date bounds as YYYY-MM-DD strings.
// An absent bound means unbounded on that side.
type DateRange struct {
	From *string `json:"from,omitempty"`
	To   *string `json:"to,omitempty"`
}

// ListEntriesParams is the normalized list request handed to the data source.
// Optional keys are omitted entirely when they carry no constraint.
type ListEntriesParams struct {
	SortBy      domain.SortColumn    `json:"sort_by"`
	SortOrder   domain.SortDirection `json:"sort_order"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	DateRange   *DateRange           `json:"dateRange,omitempty"`
	JournalID   *string              `json:"journalId,omitempty"`
	AccountID   *string              `json:"accountId,omitempty"`
	Reference   *string              `json:"reference,omitempty"`
	Description *string              `json:"description,omitempty"`
	Status      *domain.EntryStatus  `json:"status,omitempty"`
}

// Values encodes the params as the backend's list query string.
func (p ListEntriesParams) Values() url.Values {
	v := url.Values{}
	v.Set("sort_by", string(p.SortBy))
	v.Set("sort_order", string(p.SortOrder))
	v.Set("page", strconv.Itoa(p.Page))
	v.Set("limit", strconv.Itoa(p.Limit))
	if p.DateRange != nil {
		if p.DateRange.From != nil {
			v.Set("date_from", *p.DateRange.From)
		}
		if p.DateRange.To != nil {
			v.Set("date_to", *p.DateRange.To)
		}
	}
	if p.JournalID != nil {
		v.Set("journal_id", *p.JournalID)
	}
	if p.AccountID != nil {
		v.Set("account_id", *p.AccountID)
	}
	if p.Reference != nil {
		v.Set("reference", *p.Reference)
	}
	if p.Description != nil {
		v.Set("description", *p.Description)
	}
	if p.Status != nil {
		v.Set("status", string(*p.Status))
	}
	return v
}

// ListEntriesQuery defines query parameters for listing entries.
type ListEntriesQuery struct {
	SortBy      string `form:"sort_by,default=entry_date" binding:"sortcolumn"`
	SortOrder   string `form:"sort_order,default=desc" binding:"oneof=asc desc"`
	Page        int    `form:"page,default=1" binding:"min=1"`
	Limit       int    `form:"limit,default=20" binding:"min=1,max=100"`
	DateFrom    string `form:"date_from" binding:"omitempty,datetime=2006-01-02"`
	DateTo      string `form:"date_to" binding:"omitempty,datetime=2006-01-02"`
	JournalID   string `form:"journal_id"`
	AccountID   string `form:"account_id"`
	Reference   string `form:"reference"`
	Description string `form:"description"`
	Status      string `form:"status" binding:"omitempty,entrystatus"`
}

// ToDomain resolves the bound query into a domain list request.
// Dates are expected to have passed binding validation already.
func (q ListEntriesQuery) ToDomain() (domain.EntryListQuery, error) {
	out := domain.EntryListQuery{
		Sort: domain.SortSpec{
			Column:    domain.SortColumn(q.SortBy),
			Direction: domain.SortDirection(q.SortOrder),
		},
		Page:  q.Page,
		Limit: q.Limit,
		Criteria: domain.FilterCriteria{
			Reference:   q.Reference,
			Description: q.Description,
		},
	}
	if q.DateFrom != "" {
		t, err := time.Parse(domain.DateLayout, q.DateFrom)
		if err != nil {
			return out, err
		}
		out.Criteria.DateFrom = &t
	}
	if q.DateTo != "" {
		t, err := time.Parse(domain.DateLayout, q.DateTo)
		if err != nil {
			return out, err
		}
		out.Criteria.DateTo = &t
	}
	if q.JournalID != "" {
		id := q.JournalID
		out.Criteria.JournalID = &id
	}
	if q.AccountID != "" {
		id := q.AccountID
		out.Criteria.AccountID = &id
	}
	if q.Status != "" {
		s := domain.EntryStatus(q.Status)
		out.Criteria.Status = &s
	}
	return out, nil
}
