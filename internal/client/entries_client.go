package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/SscSPs/journal_entries_app/internal/apperrors"
	"github.com/SscSPs/journal_entries_app/internal/core/domain"
	"github.com/SscSPs/journal_entries_app/internal/dto"
)

const apiPrefix = "/api/v1"

// EntriesClient talks to the entries backend for one company. It satisfies entrylist.Source.
type EntriesClient struct {
	baseURL   *url.URL
	companyID string
	http      *http.Client
	logger    *slog.Logger
}

// NewEntriesClient builds a client that sends token as a bearer credential on every request.
func NewEntriesClient(baseURL, token, companyID string, timeout time.Duration, logger *slog.Logger) (*EntriesClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid api url %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid api url %q: scheme and host are required", baseURL)
	}
	if companyID == "" {
		return nil, apperrors.NewValidationError("company id is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
	httpClient := oauth2.NewClient(context.Background(), ts)
	httpClient.Timeout = timeout

	return &EntriesClient{
		baseURL:   u,
		companyID: companyID,
		http:      httpClient,
		logger:    logger.With("component", "entries_client"),
	}, nil
}

func (c *EntriesClient) ListEntries(ctx context.Context, params dto.ListEntriesParams) (*domain.EntryPage, error) {
	var resp dto.ListEntriesResponse
	if err := c.do(ctx, http.MethodGet, c.companyPath("entries"), params.Values(), nil, &resp); err != nil {
		return nil, err
	}
	return resp.ToDomain()
}

func (c *EntriesClient) GetEntry(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	var resp dto.EntryResponse
	if err := c.do(ctx, http.MethodGet, c.companyPath("entries", entryID), nil, nil, &resp); err != nil {
		return nil, err
	}
	entry, err := resp.ToDomain()
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (c *EntriesClient) DeleteEntry(ctx context.Context, entryID string) error {
	return c.do(ctx, http.MethodDelete, c.companyPath("entries", entryID), nil, nil, nil)
}

func (c *EntriesClient) UpdateEntryStatus(ctx context.Context, entryID string, status domain.EntryStatus) error {
	body := dto.UpdateEntryStatusRequest{Status: status}
	return c.do(ctx, http.MethodPatch, c.companyPath("entries", entryID, "status"), nil, body, nil)
}

func (c *EntriesClient) GetEntryStats(ctx context.Context) (*domain.EntryStats, error) {
	var resp dto.EntryStatsResponse
	if err := c.do(ctx, http.MethodGet, c.companyPath("entry-stats"), nil, nil, &resp); err != nil {
		return nil, err
	}
	return &domain.EntryStats{
		TotalEntries:     resp.TotalEntries,
		DraftEntries:     resp.DraftEntries,
		PostedEntries:    resp.PostedEntries,
		CancelledEntries: resp.CancelledEntries,
		TotalDebit:       resp.TotalDebit,
		TotalCredit:      resp.TotalCredit,
	}, nil
}

func (c *EntriesClient) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	var resp dto.ListAccountsResponse
	if err := c.do(ctx, http.MethodGet, c.companyPath("accounts"), nil, nil, &resp); err != nil {
		return nil, err
	}
	accounts := resp.ToDomain()
	for i := range accounts {
		accounts[i].CompanyID = c.companyID
	}
	return accounts, nil
}

func (c *EntriesClient) ListJournals(ctx context.Context) ([]domain.Journal, error) {
	var resp dto.ListJournalsResponse
	if err := c.do(ctx, http.MethodGet, c.companyPath("journals"), nil, nil, &resp); err != nil {
		return nil, err
	}
	journals := resp.ToDomain()
	for i := range journals {
		journals[i].CompanyID = c.companyID
	}
	return journals, nil
}

func (c *EntriesClient) companyPath(parts ...string) string {
	escaped := make([]string, 0, len(parts)+2)
	escaped = append(escaped, "companies", url.PathEscape(c.companyID))
	for _, p := range parts {
		escaped = append(escaped, url.PathEscape(p))
	}
	return apiPrefix + "/" + strings.Join(escaped, "/")
}

func (c *EntriesClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	target := c.baseURL.String() + path
	if q := query.Encode(); q != "" {
		target += "?" + q
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "API call", "method", method, "path", path, "status", resp.StatusCode, "latency", time.Since(start))

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

type errorBody struct {
	Error string `json:"error"`
}

// decodeError maps an error response onto the apperrors sentinels.
func decodeError(resp *http.Response) error {
	var eb errorBody
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err := json.Unmarshal(raw, &eb); err != nil || eb.Error == "" {
		eb.Error = strings.TrimSpace(string(raw))
		if eb.Error == "" {
			eb.Error = http.StatusText(resp.StatusCode)
		}
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return apperrors.NewNotFoundError(eb.Error)
	case http.StatusBadRequest:
		return apperrors.NewValidationError(eb.Error)
	case http.StatusForbidden:
		return apperrors.NewAppError(resp.StatusCode, eb.Error, apperrors.ErrForbidden)
	case http.StatusUnauthorized:
		return apperrors.NewAppError(resp.StatusCode, eb.Error, apperrors.ErrUnauthorized)
	}
	return apperrors.NewAppError(resp.StatusCode, eb.Error, errors.New(http.StatusText(resp.StatusCode)))
}
