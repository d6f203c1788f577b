package entrylist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/journal_entries_app/internal/apperrors"
	"github.com/SscSPs/journal_entries_app/internal/core/domain"
)

func TestFilterState_SetFieldDoesNotApply(t *testing.T) {
	f := NewFilterState()
	require.NoError(t, f.SetField(FieldReference, "INV-1"))

	assert.Equal(t, "INV-1", f.Pending().Reference)
	assert.Equal(t, "", f.Applied().Reference)

	applied := f.Apply()
	assert.Equal(t, "INV-1", applied.Reference)
	assert.Equal(t, "INV-1", f.Applied().Reference)
}

func TestFilterState_AllSentinelClearsChoice(t *testing.T) {
	f := NewFilterState()
	require.NoError(t, f.SetField(FieldJournal, "J1"))
	require.NoError(t, f.SetField(FieldAccount, "A1"))
	require.NotNil(t, f.Pending().JournalID)

	require.NoError(t, f.SetField(FieldJournal, AllOption))
	require.NoError(t, f.SetField(FieldAccount, ""))
	assert.Nil(t, f.Pending().JournalID)
	assert.Nil(t, f.Pending().AccountID)
}

func TestFilterState_Dates(t *testing.T) {
	f := NewFilterState()
	require.NoError(t, f.SetField(FieldDateFrom, "2024-02-29"))
	require.NotNil(t, f.Pending().DateFrom)
	assert.Equal(t, "2024-02-29", f.Pending().DateFrom.Format(domain.DateLayout))

	err := f.SetField(FieldDateFrom, "29/02/2024")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, "2024-02-29", f.Pending().DateFrom.Format(domain.DateLayout), "invalid input keeps the previous value")

	require.NoError(t, f.SetField(FieldDateFrom, ""))
	assert.Nil(t, f.Pending().DateFrom)
}

func TestFilterState_Status(t *testing.T) {
	f := NewFilterState()
	require.NoError(t, f.SetField(FieldStatus, "posted"))
	require.NotNil(t, f.Pending().Status)
	assert.Equal(t, domain.StatusPosted, *f.Pending().Status)

	assert.ErrorIs(t, f.SetField(FieldStatus, "archived"), apperrors.ErrValidation)
	assert.Equal(t, domain.StatusPosted, *f.Pending().Status)

	require.NoError(t, f.SetField(FieldStatus, "all"))
	assert.Nil(t, f.Pending().Status)
}

func TestFilterState_UnknownField(t *testing.T) {
	assert.ErrorIs(t, NewFilterState().SetField("amount", "10"), apperrors.ErrValidation)
}

func TestFilterState_ClearResetsPendingAndApplied(t *testing.T) {
	f := NewFilterState()
	require.NoError(t, f.SetField(FieldJournal, "J1"))
	require.NoError(t, f.SetField(FieldDescription, "rent"))
	f.Apply()

	cleared := f.Clear()
	assert.True(t, cleared.IsEmpty())
	assert.True(t, f.Pending().IsEmpty())
	assert.True(t, f.Applied().IsEmpty())
}

func TestFilterState_AppliedIsACopy(t *testing.T) {
	f := NewFilterState()
	require.NoError(t, f.SetField(FieldJournal, "J1"))
	applied := f.Apply()

	*applied.JournalID = "J2"
	require.NoError(t, f.SetField(FieldJournal, "J3"))
	assert.Equal(t, "J1", *f.Applied().JournalID)
}
