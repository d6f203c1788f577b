package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func deleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <entry-id>",
		Short: "Delete a journal entry and all its lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			entryID := args[0]

			if !yes {
				fmt.Fprintf(cmd.OutOrStdout(), "Delete journal entry %s and all its lines? [y/N] ", entryID)
				answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}

			s, err := newSession(nil)
			if err != nil {
				return err
			}
			if err := s.client.DeleteEntry(ctx, entryID); err != nil {
				return checkCancelled(ctx, err)
			}
			s.logger.Info("Entry deleted", "entryID", entryID)
			fmt.Fprintf(cmd.OutOrStdout(), "Entry %s deleted.\n", entryID)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
