package browser

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	NextPage key.Binding
	PrevPage key.Binding

	// Actions
	Expand       key.Binding
	Delete       key.Binding
	Confirm      key.Binding
	Cancel       key.Binding
	Filter       key.Binding
	ClearFilters key.Binding
	Refresh      key.Binding
	Dismiss      key.Binding

	// Sorting
	SortDate        key.Binding
	SortJournal     key.Binding
	SortDescription key.Binding
	SortReference   key.Binding

	// Filter form
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
	Close     key.Binding

	// Application
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("l", "right", "pgdown"),
			key.WithHelp("→/l", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("h", "left", "pgup"),
			key.WithHelp("←/h", "previous page"),
		),

		Expand: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("Enter", "show lines"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete entry"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n/Esc", "cancel"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f", "/"),
			key.WithHelp("f", "filters"),
		),
		ClearFilters: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear filters"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r", "ctrl+r"),
			key.WithHelp("r", "refresh"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "dismiss message"),
		),

		SortDate: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "sort by date"),
		),
		SortJournal: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "sort by journal"),
		),
		SortDescription: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "sort by description"),
		),
		SortReference: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "sort by reference"),
		),

		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("Tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("Shift+Tab", "previous field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "apply"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "close"),
		),

		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextPage, k.PrevPage, k.Filter, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextPage, k.PrevPage},
		{k.Expand, k.Delete, k.Refresh, k.Dismiss},
		{k.Filter, k.ClearFilters, k.SortDate, k.SortJournal, k.SortDescription, k.SortReference},
		{k.Help, k.Quit},
	}
}

// sortBindings is ordered like domain.SortColumns.
func (k KeyMap) sortBindings() []key.Binding {
	return []key.Binding{k.SortDate, k.SortJournal, k.SortDescription, k.SortReference}
}
