package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print entry counts per status and debit/credit totals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			s, err := newSession(nil)
			if err != nil {
				return err
			}
			stats, err := s.client.GetEntryStats(ctx)
			if err != nil {
				return checkCancelled(ctx, err)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Entries:   %d\n", stats.TotalEntries)
			fmt.Fprintf(w, "  draft:     %d\n", stats.DraftEntries)
			fmt.Fprintf(w, "  posted:    %d\n", stats.PostedEntries)
			fmt.Fprintf(w, "  cancelled: %d\n", stats.CancelledEntries)
			fmt.Fprintf(w, "Debit:     %s\n", stats.TotalDebit.StringFixed(2))
			fmt.Fprintf(w, "Credit:    %s\n", stats.TotalCredit.StringFixed(2))
			return nil
		},
	}
}
