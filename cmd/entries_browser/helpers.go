package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/SscSPs/journal_entries_app/internal/client"
	"github.com/SscSPs/journal_entries_app/internal/platform/config"
)

// session bundles what every command needs to talk to the API.
type session struct {
	cfg    *config.BrowserConfig
	client *client.EntriesClient
	logger *slog.Logger
}

func newSession(logger *slog.Logger) (*session, error) {
	cfg, err := config.LoadBrowserConfig(viper.GetViper())
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	c, err := client.NewEntriesClient(cfg.APIURL.String(), cfg.APIToken, cfg.CompanyID, cfg.RequestTimeout, logger)
	if err != nil {
		return nil, err
	}
	return &session{cfg: cfg, client: c, logger: logger}, nil
}

// checkCancelled turns a cancelled context into a short message.
func checkCancelled(ctx context.Context, err error) error {
	if err != nil && ctx.Err() != nil {
		return fmt.Errorf("interrupted")
	}
	return err
}
