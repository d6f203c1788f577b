package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/SscSPs/journal_entries_app/internal/browser"
	"github.com/SscSPs/journal_entries_app/internal/core/domain"
	"github.com/SscSPs/journal_entries_app/internal/entrylist"
)

type listOptions struct {
	filters map[entrylist.FilterField]*string
	sortBy  string
	order   string
	page    int
	output  string
}

func listCmd() *cobra.Command {
	opts := listOptions{filters: make(map[entrylist.FilterField]*string)}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of journal entries",
		Long: `List prints one page of journal entries, filtered and sorted.

Journals may be given by code and accounts by number.`,
		Example: `  entries list --date-from 2024-01-01 --journal SAL --status posted
  entries list --sort description --order asc --page 2 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, opts)
		},
	}

	flagNames := map[entrylist.FilterField]string{
		entrylist.FieldDateFrom:    "date-from",
		entrylist.FieldDateTo:      "date-to",
		entrylist.FieldJournal:     "journal",
		entrylist.FieldAccount:     "account",
		entrylist.FieldReference:   "reference",
		entrylist.FieldDescription: "description",
		entrylist.FieldStatus:      "status",
	}
	usage := map[entrylist.FilterField]string{
		entrylist.FieldDateFrom:    "earliest entry date (YYYY-MM-DD)",
		entrylist.FieldDateTo:      "latest entry date (YYYY-MM-DD)",
		entrylist.FieldJournal:     "journal code or ID",
		entrylist.FieldAccount:     "account number or ID; entries with a line on it",
		entrylist.FieldReference:   "reference number contains",
		entrylist.FieldDescription: "description contains",
		entrylist.FieldStatus:      "draft, posted or cancelled",
	}
	for _, field := range entrylist.FilterFields {
		opts.filters[field] = cmd.Flags().String(flagNames[field], "", usage[field])
	}
	cmd.Flags().StringVar(&opts.sortBy, "sort", string(domain.SortByEntryDate), "sort column (entry_date, journal_id, description, reference_number)")
	cmd.Flags().StringVar(&opts.order, "order", string(domain.SortDesc), "sort direction (asc, desc)")
	cmd.Flags().IntVar(&opts.page, "page", 1, "page to print")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "table", "output format (table, json)")

	return cmd
}

func runList(cmd *cobra.Command, opts listOptions) error {
	ctx := cmd.Context()

	sortSpec := domain.SortSpec{Column: domain.SortColumn(opts.sortBy), Direction: domain.SortDirection(opts.order)}
	if !sortSpec.Column.Valid() {
		return fmt.Errorf("invalid --sort %q", opts.sortBy)
	}
	if !sortSpec.Direction.Valid() {
		return fmt.Errorf("invalid --order %q", opts.order)
	}
	if opts.output != "table" && opts.output != "json" {
		return fmt.Errorf("invalid --output %q", opts.output)
	}

	s, err := newSession(nil)
	if err != nil {
		return err
	}
	ctrl := entrylistController(s, sortSpec)

	// Codes can only be resolved when the dropdowns loaded; raw IDs still work.
	if err := ctrl.LoadDropdowns(ctx); err != nil {
		s.logger.Warn("Could not load journals or accounts", "error", err)
	}
	view := ctrl.Snapshot()
	names := browser.Names{Accounts: view.Accounts, Journals: view.Journals}

	for _, field := range entrylist.FilterFields {
		value := *opts.filters[field]
		if value == "" {
			continue
		}
		switch field {
		case entrylist.FieldJournal:
			value = names.JournalID(value)
		case entrylist.FieldAccount:
			value = names.AccountID(value)
		}
		if err := ctrl.SetFilter(field, value); err != nil {
			return err
		}
	}

	if err := ctrl.Apply(ctx); err != nil {
		return checkCancelled(ctx, err)
	}
	if opts.page != 1 {
		if err := ctrl.GoToPage(ctx, opts.page); err != nil {
			return checkCancelled(ctx, err)
		}
	}

	view = ctrl.Snapshot()
	if opts.output == "json" {
		return writeJSON(cmd.OutOrStdout(), view)
	}
	writeTable(cmd.OutOrStdout(), view, names)
	return nil
}

func entrylistController(s *session, sort domain.SortSpec) *entrylist.Controller {
	return entrylist.NewController(s.client, entrylist.Options{
		PageSize:        s.cfg.PageSize,
		DateRangePolicy: s.cfg.DateRangePolicy,
		Sort:            sort,
		Logger:          s.logger,
	})
}

type listOutput struct {
	Entries []domain.LedgerEntry `json:"entries"`
	Page    domain.PageState     `json:"page"`
	Sort    domain.SortSpec      `json:"sort"`
}

func writeJSON(w io.Writer, view entrylist.View) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(listOutput{Entries: view.Rows, Page: view.Page, Sort: view.Sort})
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func writeTable(w io.Writer, view entrylist.View, names browser.Names) {
	if len(view.Rows) == 0 {
		fmt.Fprintln(w, "No journal entries found.")
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Date", "Number", "Journal", "Reference", "Description", "Status", "Debit", "Credit").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, e := range view.Rows {
		number := ""
		if e.EntryNumber != nil {
			number = *e.EntryNumber
		}
		t.Row(
			e.ID,
			e.EntryDate.Format(domain.DateLayout),
			number,
			names.JournalCode(e.JournalID),
			e.ReferenceNumber,
			e.Description,
			string(e.Status),
			e.TotalDebit().StringFixed(2),
			e.TotalCredit().StringFixed(2),
		)
	}

	fmt.Fprintln(w, t.Render())
	fmt.Fprintf(w, "Page %d of %d (%d entries)\n",
		view.Page.CurrentPage, view.Page.TotalPages(), view.Page.TotalCount)
}
