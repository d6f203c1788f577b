package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SscSPs/journal_entries_app/internal/core/domain"
	"github.com/SscSPs/journal_entries_app/internal/entrylist"
)

type column struct {
	title  string
	width  int
	sortBy domain.SortColumn
}

var columns = []column{
	{title: "Date", width: 10, sortBy: domain.SortByEntryDate},
	{title: "Number", width: 10},
	{title: "Journal", width: 8, sortBy: domain.SortByJournalID},
	{title: "Reference", width: 14, sortBy: domain.SortByReferenceNumber},
	{title: "Description", width: 30, sortBy: domain.SortByDescription},
	{title: "Status", width: 9},
	{title: "Debit", width: 12},
	{title: "Credit", width: 12},
}

// View renders the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	view := m.ctrl.Snapshot()
	names := Names{Accounts: view.Accounts, Journals: view.Journals}

	sections := []string{m.renderTitle(view)}

	if view.LoadError != nil && len(view.Rows) == 0 {
		sections = append(sections, m.theme.StatusError.Render("Could not load journal entries: "+view.LoadError.Error()))
	} else {
		sections = append(sections, m.renderTable(view, names), m.renderFooter(view))
	}

	switch m.mode {
	case modeFilter:
		sections = append(sections, m.form.view(m.theme))
	case modeConfirmDelete:
		sections = append(sections, m.renderConfirm(view))
	}

	if n := m.renderNotifications(view.Notifications); n != "" {
		sections = append(sections, n)
	}
	if m.status != "" {
		sections = append(sections, m.theme.StatusError.Render(m.status))
	}
	sections = append(sections, m.help.View(m.keymap))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTitle(view entrylist.View) string {
	title := m.theme.Title.Render("Journal entries")
	if view.Loading {
		title += " " + m.spinner.View()
	}
	if !view.Applied.IsEmpty() {
		title += " " + m.theme.Subtitle.Render("(filtered)")
	}
	return title
}

func (m Model) renderTable(view entrylist.View, names Names) string {
	var b strings.Builder

	headers := make([]string, len(columns))
	for i, col := range columns {
		title := col.title
		if col.sortBy != "" && col.sortBy == view.Sort.Column {
			if view.Sort.Direction == domain.SortAsc {
				title += " ▲"
			} else {
				title += " ▼"
			}
		}
		headers[i] = pad(title, col.width)
	}
	b.WriteString(m.theme.Header.Render("  " + strings.Join(headers, " ")))
	b.WriteString("\n")

	if len(view.Rows) == 0 {
		if view.Loading {
			b.WriteString(m.theme.Muted.Render("  Loading..."))
		} else {
			b.WriteString(m.theme.Muted.Render("  No journal entries found."))
		}
		return b.String()
	}

	for i, row := range view.Rows {
		cursor := "  "
		style := m.theme.Normal
		if i == m.cursor {
			cursor = "> "
			style = m.theme.Selected
		}
		b.WriteString(style.Render(cursor + m.renderRow(row, names)))
		b.WriteString("\n")

		if view.Expanded[row.ID] {
			b.WriteString(m.renderLines(row, names))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderRow(row domain.LedgerEntry, names Names) string {
	number := ""
	if row.EntryNumber != nil {
		number = *row.EntryNumber
	}
	cells := []string{
		row.EntryDate.Format(domain.DateLayout),
		number,
		names.JournalCode(row.JournalID),
		row.ReferenceNumber,
		row.Description,
		m.statusStyle(row.Status).Render(pad(string(row.Status), columns[5].width)),
		padLeft(row.TotalDebit().StringFixed(2), columns[6].width),
		padLeft(row.TotalCredit().StringFixed(2), columns[7].width),
	}
	for i := 0; i < 5; i++ {
		cells[i] = pad(cells[i], columns[i].width)
	}
	return strings.Join(cells, " ")
}

func (m Model) renderLines(row domain.LedgerEntry, names Names) string {
	if len(row.Lines) == 0 {
		return m.theme.Line.Render("no lines") + "\n"
	}
	var b strings.Builder
	for _, line := range row.Lines {
		text := fmt.Sprintf("%s %s %s %s",
			pad(names.AccountNumber(line.AccountID), 10),
			pad(line.Description, 30),
			padLeft(line.DebitAmount.StringFixed(2), 12),
			padLeft(line.CreditAmount.StringFixed(2), 12),
		)
		b.WriteString(m.theme.Line.Render(text))
		b.WriteString("\n")
	}
	if !row.IsBalanced() {
		b.WriteString(m.theme.Line.Render(m.theme.StatusError.Render("unbalanced")))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderFooter(view entrylist.View) string {
	total := view.Page.TotalPages()
	if total == 0 {
		return m.theme.Muted.Render("Page 0 of 0")
	}
	return m.theme.Muted.Render(fmt.Sprintf("Page %d of %d (%d entries)", view.Page.CurrentPage, total, view.Page.TotalCount))
}

func (m Model) renderConfirm(view entrylist.View) string {
	label := view.PendingDeleteID
	for _, row := range view.Rows {
		if row.ID == view.PendingDeleteID {
			if row.EntryNumber != nil {
				label = *row.EntryNumber
			} else if row.ReferenceNumber != "" {
				label = row.ReferenceNumber
			}
			break
		}
	}
	return m.theme.Dialog.Render(fmt.Sprintf("Delete journal entry %s and all its lines? (y/n)", label))
}

func (m Model) renderNotifications(notes []entrylist.Notification) string {
	if len(notes) == 0 {
		return ""
	}
	lines := make([]string, 0, len(notes))
	for _, n := range notes {
		style := m.theme.StatusInfo
		if n.Level == entrylist.LevelError {
			style = m.theme.StatusError
		}
		lines = append(lines, style.Render(n.Title)+" "+n.Message)
	}
	return strings.Join(lines, "\n")
}

func (m Model) statusStyle(status domain.EntryStatus) lipgloss.Style {
	switch status {
	case domain.StatusPosted:
		return m.theme.Posted
	case domain.StatusCancelled:
		return m.theme.Cancelled
	default:
		return m.theme.Draft
	}
}

func pad(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		if width <= 1 {
			return string(r[:width])
		}
		return string(r[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(r))
}

func padLeft(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}
