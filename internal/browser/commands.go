package browser

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/SscSPs/journal_entries_app/internal/core/domain"
	"github.com/SscSPs/journal_entries_app/internal/entrylist"
)

// run wraps a blocking controller call so it executes off the update loop.
func (m Model) run(op string, fn func(ctx context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return opDoneMsg{op: op, err: fn(ctx)}
	}
}

func (m Model) load() tea.Cmd {
	return m.run("load", m.ctrl.Load)
}

func (m Model) goNext() tea.Cmd {
	return m.run("next page", m.ctrl.NextPage)
}

func (m Model) goPrevious() tea.Cmd {
	return m.run("previous page", m.ctrl.PreviousPage)
}

func (m Model) applyFilters() tea.Cmd {
	return m.run("apply filters", m.ctrl.Apply)
}

func (m Model) clearFilters() tea.Cmd {
	return m.run("clear filters", m.ctrl.Clear)
}

func (m Model) toggleSort(column domain.SortColumn) tea.Cmd {
	return m.run("sort", func(ctx context.Context) error {
		return m.ctrl.ToggleSort(ctx, column)
	})
}

func (m Model) refresh(token entrylist.RefreshToken) tea.Cmd {
	return m.run("refresh", func(ctx context.Context) error {
		return m.ctrl.Refresh(ctx, token)
	})
}

func (m Model) confirmDelete() tea.Cmd {
	return m.run("delete", m.ctrl.ConfirmDelete)
}
