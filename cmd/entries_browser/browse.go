package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/SscSPs/journal_entries_app/internal/browser"
	"github.com/SscSPs/journal_entries_app/internal/core/domain"
)

func browseCmd() *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse journal entries interactively",
		Long: `Browse opens a full-screen list of journal entries with filters,
sorting, paging, line details and deletion.

Logs would corrupt the screen, so they are discarded unless --log-file is given.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var w io.Writer = io.Discard
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
				if err != nil {
					return fmt.Errorf("failed to open log file: %w", err)
				}
				defer f.Close()
				w = f
			}
			logger, err := newLogger(w, viper.GetString("logging.level"), viper.GetString("logging.format"))
			if err != nil {
				return err
			}
			slog.SetDefault(logger)

			s, err := newSession(logger)
			if err != nil {
				return err
			}
			return browser.Run(cmd.Context(), entrylistController(s, domain.DefaultSortSpec()))
		},
	}
	cmd.Flags().StringVar(&logFile, "log-file", "", "append logs to this file")
	return cmd
}
