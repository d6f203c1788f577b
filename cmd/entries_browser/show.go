package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/SscSPs/journal_entries_app/internal/core/domain"
)

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <entry-id>",
		Short: "Print one journal entry with its lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := newSession(nil)
			if err != nil {
				return err
			}
			entry, err := s.client.GetEntry(ctx, args[0])
			if err != nil {
				return checkCancelled(ctx, err)
			}
			writeEntry(cmd.OutOrStdout(), entry)
			return nil
		},
	}
}

func writeEntry(w io.Writer, e *domain.LedgerEntry) {
	number := "-"
	if e.EntryNumber != nil {
		number = *e.EntryNumber
	}
	fmt.Fprintf(w, "Entry %s (%s)\n", e.ID, e.Status)
	fmt.Fprintf(w, "  Number:      %s\n", number)
	fmt.Fprintf(w, "  Date:        %s\n", e.EntryDate.Format(domain.DateLayout))
	fmt.Fprintf(w, "  Journal:     %s\n", e.JournalID)
	fmt.Fprintf(w, "  Reference:   %s\n", e.ReferenceNumber)
	fmt.Fprintf(w, "  Description: %s\n", e.Description)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Account", "Description", "Debit", "Credit").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, line := range e.Lines {
		t.Row(line.AccountID, line.Description, line.DebitAmount.StringFixed(2), line.CreditAmount.StringFixed(2))
	}
	t.Row("", "Total", e.TotalDebit().StringFixed(2), e.TotalCredit().StringFixed(2))
	fmt.Fprintln(w, t.Render())
	if !e.IsBalanced() {
		fmt.Fprintln(w, "Warning: debits and credits do not balance.")
	}
}
