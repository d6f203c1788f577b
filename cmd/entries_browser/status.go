package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SscSPs/journal_entries_app/internal/core/domain"
)

func setStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "set-status <entry-id> <draft|posted|cancelled>",
		Short:     "Change the status of a journal entry",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{string(domain.StatusDraft), string(domain.StatusPosted), string(domain.StatusCancelled)},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			status := domain.EntryStatus(args[1])
			if !status.Valid() {
				return fmt.Errorf("invalid status %q", args[1])
			}
			s, err := newSession(nil)
			if err != nil {
				return err
			}
			if err := s.client.UpdateEntryStatus(ctx, args[0], status); err != nil {
				return checkCancelled(ctx, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Entry %s is now %s.\n", args[0], status)
			return nil
		},
	}
}
