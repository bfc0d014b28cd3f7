// Package gsheets reads worksheet values through the Google Sheets v4 REST API.
package gsheets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"utopian_syncer/internal/source/sheet"
)

// Config holds the spreadsheet client configuration.
type Config struct {
	BaseURL        string
	APIKey         string
	SpreadsheetID  string
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Client implements sheet.Worksheets against one spreadsheet.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	spreadsheetID  string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        cfg.BaseURL,
		apiKey:         cfg.APIKey,
		spreadsheetID:  cfg.SpreadsheetID,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("component", "gsheets"),
	}
}

type valueRange struct {
	Range  string     `json:"range"`
	Values [][]string `json:"values"`
}

// Values returns all rows of the titled worksheet. A title the API cannot
// resolve maps to sheet.ErrWorksheetNotFound.
func (c *Client) Values(ctx context.Context, title string) ([][]string, error) {
	reqURL := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s?majorDimension=ROWS&key=%s",
		c.baseURL, c.spreadsheetID, url.PathEscape(title), url.QueryEscape(c.apiKey))

	var vr *valueRange
	var err error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		vr, err = c.doRequest(ctx, reqURL)
		if err == nil {
			return vr.Values, nil
		}
		if !retryable(err) || attempt == c.maxAttempts {
			break
		}

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("request failed, retrying",
			"title", title,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, err
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status: %d", e.code)
}

func retryable(err error) bool {
	if errors.Is(err, sheet.ErrWorksheetNotFound) {
		return false
	}
	if se, ok := err.(*statusError); ok {
		return se.code >= http.StatusInternalServerError || se.code == http.StatusTooManyRequests
	}
	return true // transport errors
}

func (c *Client) doRequest(ctx context.Context, reqURL string) (*valueRange, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	// The API answers 400 for a range whose sheet does not exist and 404 for a
	// missing spreadsheet; both mean there is no page to read.
	if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusNotFound {
		return nil, sheet.ErrWorksheetNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &statusError{code: resp.StatusCode}
	}

	var vr valueRange
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &vr, nil
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}
