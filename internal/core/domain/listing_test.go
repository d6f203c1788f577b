package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/journal_entries_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortSpec_Toggle(t *testing.T) {
	start := domain.SortSpec{Column: domain.SortByDescription, Direction: domain.SortAsc}

	first := start.Toggle(domain.SortByEntryDate)
	second := first.Toggle(domain.SortByEntryDate)
	assert.Equal(t, []domain.SortDirection{domain.SortAsc, domain.SortDesc}, []domain.SortDirection{first.Direction, second.Direction})

	switched := first.Toggle(domain.SortByJournalID)
	assert.Equal(t, domain.SortSpec{Column: domain.SortByJournalID, Direction: domain.SortAsc}, switched)

	// Switching away from a descending column still resets to asc.
	assert.Equal(t, domain.SortAsc, second.Toggle(domain.SortByReferenceNumber).Direction)
}

func TestDefaultSortSpec(t *testing.T) {
	def := domain.DefaultSortSpec()
	assert.Equal(t, domain.SortByEntryDate, def.Column)
	assert.Equal(t, domain.SortDesc, def.Direction)
	assert.Equal(t, domain.SortAsc, def.Toggle(domain.SortByEntryDate).Direction)
}

func TestSortColumn_Valid(t *testing.T) {
	for _, c := range domain.SortColumns {
		assert.True(t, c.Valid(), string(c))
	}
	assert.False(t, domain.SortColumn("amount").Valid())
	assert.False(t, domain.SortColumn("entry_date; DROP TABLE x").Valid())
}

func TestFilterCriteria_CloneIsDeep(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	journal := "J1"
	status := domain.StatusPosted
	orig := domain.FilterCriteria{DateFrom: &from, JournalID: &journal, Status: &status, Reference: "INV"}

	cp := orig.Clone()
	require.NotNil(t, cp.DateFrom)
	require.NotNil(t, cp.JournalID)
	assert.NotSame(t, orig.DateFrom, cp.DateFrom)
	assert.NotSame(t, orig.JournalID, cp.JournalID)

	*cp.JournalID = "J2"
	*cp.Status = domain.StatusDraft
	assert.Equal(t, "J1", *orig.JournalID)
	assert.Equal(t, domain.StatusPosted, *orig.Status)
	assert.Equal(t, "INV", cp.Reference)
	assert.Nil(t, cp.AccountID)
}

func TestFilterCriteria_DateRangeInverted(t *testing.T) {
	early := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	assert.False(t, domain.FilterCriteria{}.DateRangeInverted())
	assert.False(t, domain.FilterCriteria{DateFrom: &late}.DateRangeInverted())
	assert.False(t, domain.FilterCriteria{DateFrom: &early, DateTo: &late}.DateRangeInverted())
	assert.False(t, domain.FilterCriteria{DateFrom: &early, DateTo: &early}.DateRangeInverted())
	assert.True(t, domain.FilterCriteria{DateFrom: &late, DateTo: &early}.DateRangeInverted())
}

func TestPageState(t *testing.T) {
	p := domain.PageState{PageSize: 20, CurrentPage: 2, TotalCount: 40}
	assert.Equal(t, 2, p.TotalPages())
	assert.False(t, p.HasNextPage())
	assert.True(t, p.HasPreviousPage())

	p = domain.PageState{PageSize: 20, CurrentPage: 1, TotalCount: 21}
	assert.Equal(t, 2, p.TotalPages())
	assert.True(t, p.HasNextPage())
	assert.False(t, p.HasPreviousPage())

	empty := domain.PageState{PageSize: 20, CurrentPage: 1}
	assert.Equal(t, 0, empty.TotalPages())
	assert.False(t, empty.HasNextPage())
}
