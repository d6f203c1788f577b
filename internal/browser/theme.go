package browser

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style of the browser.
type Theme struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Header      lipgloss.Style
	Selected    lipgloss.Style
	Normal      lipgloss.Style
	Muted       lipgloss.Style
	Line        lipgloss.Style
	StatusError lipgloss.Style
	StatusInfo  lipgloss.Style
	Dialog      lipgloss.Style
	FocusedForm lipgloss.Style
	Draft       lipgloss.Style
	Posted      lipgloss.Style
	Cancelled   lipgloss.Style
}

var (
	primary = lipgloss.Color("#7c3aed")
	muted   = lipgloss.Color("#737373")
	errorC  = lipgloss.Color("#ef4444")
	info    = lipgloss.Color("#3b82f6")
	success = lipgloss.Color("#10b981")
	warning = lipgloss.Color("#f59e0b")
	border  = lipgloss.Color("#404040")
)

// DefaultTheme is the default theme.
var DefaultTheme = Theme{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")).
		Background(primary).
		Padding(0, 1),
	Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("#a3a3a3")),
	Header: lipgloss.NewStyle().
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(border),
	Selected:    lipgloss.NewStyle().Bold(true).Foreground(primary),
	Normal:      lipgloss.NewStyle(),
	Muted:       lipgloss.NewStyle().Foreground(muted),
	Line:        lipgloss.NewStyle().Foreground(muted).PaddingLeft(4),
	StatusError: lipgloss.NewStyle().Foreground(errorC).Bold(true),
	StatusInfo:  lipgloss.NewStyle().Foreground(info),
	Dialog: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(errorC).
		Padding(0, 1),
	FocusedForm: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(primary).
		Padding(0, 1),
	Draft:     lipgloss.NewStyle().Foreground(warning),
	Posted:    lipgloss.NewStyle().Foreground(success),
	Cancelled: lipgloss.NewStyle().Foreground(muted).Strikethrough(true),
}
