package browser

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/SscSPs/journal_entries_app/internal/core/domain"
	"github.com/SscSPs/journal_entries_app/internal/entrylist"
)

var fieldLabels = map[entrylist.FilterField]string{
	entrylist.FieldDateFrom:    "Date from",
	entrylist.FieldDateTo:      "Date to",
	entrylist.FieldJournal:     "Journal",
	entrylist.FieldAccount:     "Account",
	entrylist.FieldReference:   "Reference",
	entrylist.FieldDescription: "Description",
	entrylist.FieldStatus:      "Status",
}

var fieldPlaceholders = map[entrylist.FilterField]string{
	entrylist.FieldDateFrom:    "YYYY-MM-DD",
	entrylist.FieldDateTo:      "YYYY-MM-DD",
	entrylist.FieldJournal:     "journal code, id or all",
	entrylist.FieldAccount:     "account number, id or all",
	entrylist.FieldReference:   "contains...",
	entrylist.FieldDescription: "contains...",
	entrylist.FieldStatus:      "draft, posted, cancelled or all",
}

// filterForm edits the pending filters, one text input per field.
type filterForm struct {
	inputs []textinput.Model
	focus  int
	err    error
}

func newFilterForm() filterForm {
	inputs := make([]textinput.Model, len(entrylist.FilterFields))
	for i, field := range entrylist.FilterFields {
		ti := textinput.New()
		ti.Prompt = fmt.Sprintf("%-12s ", fieldLabels[field])
		ti.Placeholder = fieldPlaceholders[field]
		ti.CharLimit = 64
		inputs[i] = ti
	}
	return filterForm{inputs: inputs}
}

// open fills the inputs from the pending criteria and focuses the first field.
func (f filterForm) open(pending domain.FilterCriteria, names Names) filterForm {
	for i, field := range entrylist.FilterFields {
		f.inputs[i].SetValue(criteriaValue(field, pending, names))
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.err = nil
	f.inputs[0].Focus()
	return f
}

func (f filterForm) move(delta int) filterForm {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
	return f
}

func (f filterForm) update(msg tea.Msg) (filterForm, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

// submit pushes every input into the controller's pending filters. Journal
// and account inputs accept a code or number and are resolved to IDs.
func (f filterForm) submit(ctrl *entrylist.Controller, names Names) error {
	var errs []error
	for i, field := range entrylist.FilterFields {
		value := f.inputs[i].Value()
		switch field {
		case entrylist.FieldJournal:
			value = names.JournalID(value)
		case entrylist.FieldAccount:
			value = names.AccountID(value)
		}
		if err := ctrl.SetFilter(field, value); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", fieldLabels[field], err))
		}
	}
	return errors.Join(errs...)
}

func (f filterForm) view(theme Theme) string {
	out := theme.Subtitle.Render("Filters") + "\n"
	for i := range f.inputs {
		out += f.inputs[i].View() + "\n"
	}
	if f.err != nil {
		out += theme.StatusError.Render(f.err.Error()) + "\n"
	}
	return theme.FocusedForm.Render(out)
}

func criteriaValue(field entrylist.FilterField, c domain.FilterCriteria, names Names) string {
	switch field {
	case entrylist.FieldDateFrom:
		if c.DateFrom != nil {
			return c.DateFrom.Format(domain.DateLayout)
		}
	case entrylist.FieldDateTo:
		if c.DateTo != nil {
			return c.DateTo.Format(domain.DateLayout)
		}
	case entrylist.FieldJournal:
		if c.JournalID != nil {
			return names.JournalCode(*c.JournalID)
		}
	case entrylist.FieldAccount:
		if c.AccountID != nil {
			return names.AccountNumber(*c.AccountID)
		}
	case entrylist.FieldReference:
		return c.Reference
	case entrylist.FieldDescription:
		return c.Description
	case entrylist.FieldStatus:
		if c.Status != nil {
			return string(*c.Status)
		}
	}
	return ""
}
