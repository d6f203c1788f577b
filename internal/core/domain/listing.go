package domain

import (
	"time"

	"github.com/SscSPs/journal_entries_app/internal/utils/pagination"
)

// SortColumn is one of the closed set of columns entries can be ordered by.
type SortColumn string

const (
	SortByEntryDate       SortColumn = "entry_date"
	SortByJournalID       SortColumn = "journal_id"
	SortByDescription     SortColumn = "description"
	SortByReferenceNumber SortColumn = "reference_number"
)

// SortColumns lists the valid sort columns in display order.
var SortColumns = []SortColumn{SortByEntryDate, SortByJournalID, SortByDescription, SortByReferenceNumber}

func (c SortColumn) Valid() bool {
	switch c {
	case SortByEntryDate, SortByJournalID, SortByDescription, SortByReferenceNumber:
		return true
	}
	return false
}

// SortDirection is asc or desc.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

func (d SortDirection) Valid() bool {
	return d == SortAsc || d == SortDesc
}

// Flip returns the opposite direction.
func (d SortDirection) Flip() SortDirection {
	if d == SortAsc {
		return SortDesc
	}
	return SortAsc
}

// SortSpec is the active sort column and direction.
type SortSpec struct {
	Column    SortColumn    `json:"column"`
	Direction SortDirection `json:"direction"`
}

// DefaultSortSpec shows the newest entries first.
func DefaultSortSpec() SortSpec {
	return SortSpec{Column: SortByEntryDate, Direction: SortDesc}
}

// Toggle flips the direction when column is already active, otherwise
// switches to column in ascending order.
func (s SortSpec) Toggle(column SortColumn) SortSpec {
	if s.Column == column {
		return SortSpec{Column: column, Direction: s.Direction.Flip()}
	}
	return SortSpec{Column: column, Direction: SortAsc}
}

// FilterCriteria narrows which entries are listed. Nil pointers and empty
// strings mean "no constraint".
type FilterCriteria struct {
	DateFrom    *time.Time
	DateTo      *time.Time
	JournalID   *string
	AccountID   *string
	Reference   string
	Description string
	Status      *EntryStatus
}

// Clone returns a deep copy so callers never share pointers.
func (f FilterCriteria) Clone() FilterCriteria {
	out := FilterCriteria{Reference: f.Reference, Description: f.Description}
	if f.DateFrom != nil {
		v := *f.DateFrom
		out.DateFrom = &v
	}
	if f.DateTo != nil {
		v := *f.DateTo
		out.DateTo = &v
	}
	if f.JournalID != nil {
		v := *f.JournalID
		out.JournalID = &v
	}
	if f.AccountID != nil {
		v := *f.AccountID
		out.AccountID = &v
	}
	if f.Status != nil {
		v := *f.Status
		out.Status = &v
	}
	return out
}

// IsEmpty reports whether no constraint is set.
func (f FilterCriteria) IsEmpty() bool {
	return f.DateFrom == nil && f.DateTo == nil && f.JournalID == nil && f.AccountID == nil &&
		f.Reference == "" && f.Description == "" && f.Status == nil
}

// DateRangeInverted reports whether both bounds are set and from is after to.
func (f FilterCriteria) DateRangeInverted() bool {
	return f.DateFrom != nil && f.DateTo != nil && f.DateFrom.After(*f.DateTo)
}

// PageState is the pagination bookkeeping of the last successful fetch.
type PageState struct {
	PageSize    int `json:"pageSize"`
	CurrentPage int `json:"currentPage"`
	TotalCount  int `json:"totalCount"`
	// HasMoreAfterCurrent is true when the last fetch came back full. It can
	// disagree with TotalPages while rows are being inserted concurrently.
	HasMoreAfterCurrent bool `json:"hasMoreAfterCurrent"`
}

func (p PageState) TotalPages() int {
	return pagination.TotalPages(p.TotalCount, p.PageSize)
}

func (p PageState) HasNextPage() bool {
	return p.CurrentPage < p.TotalPages()
}

func (p PageState) HasPreviousPage() bool {
	return p.CurrentPage > 1
}

// DateRangePolicy decides what happens to a filter whose from date is after its to date.
type DateRangePolicy string

const (
	DateRangePassThrough DateRangePolicy = "pass_through"
	DateRangeReject      DateRangePolicy = "reject"
	DateRangeSwap        DateRangePolicy = "swap"
)

func (p DateRangePolicy) Valid() bool {
	switch p {
	case DateRangePassThrough, DateRangeReject, DateRangeSwap:
		return true
	}
	return false
}

// EntryListQuery is a fully resolved list request for one company.
type EntryListQuery struct {
	Criteria FilterCriteria
	Sort     SortSpec
	Page     int
	Limit    int
}
