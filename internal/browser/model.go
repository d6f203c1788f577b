package browser

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/SscSPs/journal_entries_app/internal/core/domain"
	"github.com/SscSPs/journal_entries_app/internal/entrylist"
)

// mode is what the keyboard currently drives.
type mode int

const (
	modeList mode = iota
	modeFilter
	modeConfirmDelete
)

// Model is the bubbletea host of an entrylist.Controller. All list state
// lives in the controller; the model keeps only cursor, form and layout.
type Model struct {
	ctx     context.Context
	ctrl    *entrylist.Controller
	keymap  KeyMap
	theme   Theme
	spinner spinner.Model
	help    help.Model
	form    filterForm
	status  string
	mode    mode
	cursor  int
	width   int
	height  int
	token   entrylist.RefreshToken

	quitting bool
}

// New creates a model for ctrl. ctx bounds every request the model issues.
func New(ctx context.Context, ctrl *entrylist.Controller) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return Model{
		ctx:     ctx,
		ctrl:    ctrl,
		keymap:  DefaultKeyMap(),
		theme:   DefaultTheme,
		spinner: s,
		help:    help.New(),
		form:    newFilterForm(),
		mode:    modeList,
	}
}

// Init starts the initial load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load())
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case opDoneMsg:
		m.handleOpDone(msg)
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeFilter:
			return m.updateFilter(msg)
		case modeConfirmDelete:
			return m.updateConfirm(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m *Model) handleOpDone(msg opDoneMsg) {
	m.clampCursor()
	switch {
	case msg.err == nil:
		m.status = ""
	case errors.Is(msg.err, entrylist.ErrSuperseded):
		// a newer request owns the state
	default:
		m.status = msg.op + ": " + msg.err.Error()
	}
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	view := m.ctrl.Snapshot()

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keymap.Down):
		if m.cursor < len(view.Rows)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keymap.NextPage):
		if !view.Page.HasNextPage() {
			return m, nil
		}
		m.cursor = 0
		return m, m.goNext()

	case key.Matches(msg, m.keymap.PrevPage):
		if !view.Page.HasPreviousPage() {
			return m, nil
		}
		m.cursor = 0
		return m, m.goPrevious()

	case key.Matches(msg, m.keymap.Expand):
		if row, ok := m.selected(view); ok {
			m.ctrl.ToggleRowExpansion(row.ID)
		}

	case key.Matches(msg, m.keymap.Delete):
		row, ok := m.selected(view)
		if !ok {
			return m, nil
		}
		if err := m.ctrl.RequestDelete(row.ID); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.mode = modeConfirmDelete

	case key.Matches(msg, m.keymap.Filter):
		m.form = m.form.open(view.Pending, Names{Accounts: view.Accounts, Journals: view.Journals})
		m.mode = modeFilter

	case key.Matches(msg, m.keymap.ClearFilters):
		m.cursor = 0
		return m, m.clearFilters()

	case key.Matches(msg, m.keymap.Refresh):
		m.token++
		m.cursor = 0
		return m, m.refresh(m.token)

	case key.Matches(msg, m.keymap.Dismiss):
		if len(view.Notifications) > 0 {
			m.ctrl.DismissNotification(view.Notifications[0].ID)
		} else {
			m.status = ""
		}

	default:
		for i, b := range m.keymap.sortBindings() {
			if key.Matches(msg, b) {
				m.cursor = 0
				return m, m.toggleSort(domain.SortColumns[i])
			}
		}
	}
	return m, nil
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Close):
		m.mode = modeList
		return m, nil

	case key.Matches(msg, m.keymap.NextField):
		m.form = m.form.move(1)
		return m, nil

	case key.Matches(msg, m.keymap.PrevField):
		m.form = m.form.move(-1)
		return m, nil

	case key.Matches(msg, m.keymap.Submit):
		view := m.ctrl.Snapshot()
		if err := m.form.submit(m.ctrl, Names{Accounts: view.Accounts, Journals: view.Journals}); err != nil {
			m.form.err = err
			return m, nil
		}
		m.mode = modeList
		m.cursor = 0
		return m, m.applyFilters()
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Confirm):
		m.mode = modeList
		return m, m.confirmDelete()
	case key.Matches(msg, m.keymap.Cancel):
		m.ctrl.CancelDelete()
		m.mode = modeList
	case msg.Type == tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) selected(view entrylist.View) (domain.LedgerEntry, bool) {
	if m.cursor < 0 || m.cursor >= len(view.Rows) {
		return domain.LedgerEntry{}, false
	}
	return view.Rows[m.cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.ctrl.Snapshot().Rows)
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
