package entrylist

import (
	"github.com/SscSPs/journal_entries_app/internal/core/domain"
	"github.com/SscSPs/journal_entries_app/internal/dto"
)

// Compose builds the list request for criteria, sort and page. Keys with no
// constraint are left out rather than sent empty.
func Compose(criteria domain.FilterCriteria, sort domain.SortSpec, page, pageSize int) dto.ListEntriesParams {
	params := dto.ListEntriesParams{
		SortBy:    sort.Column,
		SortOrder: sort.Direction,
		Page:      page,
		Limit:     pageSize,
	}

	if criteria.DateFrom != nil || criteria.DateTo != nil {
		params.DateRange = &dto.DateRange{}
		if criteria.DateFrom != nil {
			from := criteria.DateFrom.Format(domain.DateLayout)
			params.DateRange.From = &from
		}
		if criteria.DateTo != nil {
			to := criteria.DateTo.Format(domain.DateLayout)
			params.DateRange.To = &to
		}
	}
	if criteria.JournalID != nil {
		id := *criteria.JournalID
		params.JournalID = &id
	}
	if criteria.AccountID != nil {
		id := *criteria.AccountID
		params.AccountID = &id
	}
	if criteria.Reference != "" {
		ref := criteria.Reference
		params.Reference = &ref
	}
	if criteria.Description != "" {
		desc := criteria.Description
		params.Description = &desc
	}
	if criteria.Status != nil {
		status := *criteria.Status
		params.Status = &status
	}
	return params
}

// applyDateRangePolicy resolves an inverted range. ok is false only under DateRangeReject.
func applyDateRangePolicy(policy domain.DateRangePolicy, criteria domain.FilterCriteria) (domain.FilterCriteria, bool) {
	if !criteria.DateRangeInverted() {
		return criteria, true
	}
	switch policy {
	case domain.DateRangeReject:
		return criteria, false
	case domain.DateRangeSwap:
		criteria.DateFrom, criteria.DateTo = criteria.DateTo, criteria.DateFrom
	}
	return criteria, true
}
