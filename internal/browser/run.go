package browser

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/SscSPs/journal_entries_app/internal/entrylist"
)

// Run starts the full-screen browser and blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, ctrl *entrylist.Controller, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(New(ctx, ctrl), opts...)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("browser: %w", err)
	}
	return nil
}
