package entrylist

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/journal_entries_app/internal/apperrors"
	"github.com/SscSPs/journal_entries_app/internal/core/domain"
)

// FilterField names one editable filter input.
type FilterField string

const (
	FieldDateFrom    FilterField = "date_from"
	FieldDateTo      FilterField = "date_to"
	FieldJournal     FilterField = "journal"
	FieldAccount     FilterField = "account"
	FieldReference   FilterField = "reference"
	FieldDescription FilterField = "description"
	FieldStatus      FilterField = "status"
)

// FilterFields lists the editable inputs in form order.
var FilterFields = []FilterField{
	FieldDateFrom, FieldDateTo, FieldJournal, FieldAccount, FieldReference, FieldDescription, FieldStatus,
}

// AllOption is the UI value meaning "no constraint" for choice inputs.
const AllOption = "all"

// FilterState buffers pending filter edits separately from the criteria last applied.
// It is not safe for concurrent use; Controller guards it with its own lock.
type FilterState struct {
	pending domain.FilterCriteria
	applied domain.FilterCriteria
}

// NewFilterState returns a FilterState with no constraints pending or applied.
func NewFilterState() *FilterState {
	return &FilterState{}
}

// SetField stores a pending edit. Dates use YYYY-MM-DD, and an empty value
// or AllOption clears a choice input. On error the pending value is unchanged.
func (f *FilterState) SetField(field FilterField, value string) error {
	switch field {
	case FieldDateFrom, FieldDateTo:
		d, err := parseDate(value)
		if err != nil {
			return err
		}
		if field == FieldDateFrom {
			f.pending.DateFrom = d
		} else {
			f.pending.DateTo = d
		}
	case FieldJournal:
		f.pending.JournalID = choice(value)
	case FieldAccount:
		f.pending.AccountID = choice(value)
	case FieldStatus:
		id := choice(value)
		if id == nil {
			f.pending.Status = nil
			return nil
		}
		status := domain.EntryStatus(*id)
		if !status.Valid() {
			return apperrors.NewValidationError(fmt.Sprintf("unknown status %q", value))
		}
		f.pending.Status = &status
	case FieldReference:
		f.pending.Reference = value
	case FieldDescription:
		f.pending.Description = value
	default:
		return apperrors.NewValidationError(fmt.Sprintf("unknown filter field %q", field))
	}
	return nil
}

// Apply snapshots the pending edits as the applied criteria and returns a copy.
func (f *FilterState) Apply() domain.FilterCriteria {
	f.applied = f.pending.Clone()
	return f.applied.Clone()
}

// Clear resets both pending and applied criteria to no constraints.
func (f *FilterState) Clear() domain.FilterCriteria {
	f.pending = domain.FilterCriteria{}
	f.applied = domain.FilterCriteria{}
	return domain.FilterCriteria{}
}

// Pending returns a copy of the edits not yet applied.
func (f *FilterState) Pending() domain.FilterCriteria {
	return f.pending.Clone()
}

// Applied returns a copy of the criteria the current rows were fetched with.
func (f *FilterState) Applied() domain.FilterCriteria {
	return f.applied.Clone()
}

func parseDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", value))
	}
	return &t, nil
}

func choice(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, AllOption) {
		return nil
	}
	return &value
}
