// Package wakatime fetches coding activity statistics from the WakaTime API.
package wakatime

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/j-veylop/waka-box/internal/logger"
	"github.com/j-veylop/waka-box/internal/models"
)

// DefaultBaseURL is the public WakaTime API root.
const DefaultBaseURL = "https://wakatime.com/api/v1"

const (
	statsPath     = "/users/current/stats/last_7_days"
	summariesPath = "/users/current/summaries?range=last_7_days"
)

// ErrSourceUnavailable is returned when stats cannot be fetched.
var ErrSourceUnavailable = errors.New("wakatime: source unavailable")

// Client is a minimal WakaTime API client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// New creates a client. A nil httpClient gets a default client with a 30s timeout.
func New(httpClient *http.Client, baseURL, apiKey string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
	}
}

// statsResponse is the subset of the stats endpoint used here.
type statsResponse struct {
	Data struct {
		Languages []models.LanguageStat `json:"languages"`
		Range     string                `json:"range"`
		Status    string                `json:"status"`
	} `json:"data"`
}

// summariesResponse is the subset of the summaries endpoint used here.
type summariesResponse struct {
	Data []struct {
		GrandTotal struct {
			TotalSeconds float64 `json:"total_seconds"`
		} `json:"grand_total"`
		Range struct {
			Date string `json:"date"`
		} `json:"range"`
	} `json:"data"`
}

// FetchWeeklyReport returns the per-language stats for the last 7 days.
func (c *Client) FetchWeeklyReport(ctx context.Context) (models.StatsReport, error) {
	var resp statsResponse
	if err := c.get(ctx, statsPath, &resp); err != nil {
		return nil, err
	}

	logger.Debug("fetched weekly stats",
		"languages", len(resp.Data.Languages),
		"status", resp.Data.Status)

	return models.StatsReport(resp.Data.Languages), nil
}

// FetchDailyTotals returns the tracked time for each of the last 7 days.
func (c *Client) FetchDailyTotals(ctx context.Context) ([]models.DailyTotal, error) {
	var resp summariesResponse
	if err := c.get(ctx, summariesPath, &resp); err != nil {
		return nil, err
	}

	days := make([]models.DailyTotal, 0, len(resp.Data))
	for _, d := range resp.Data {
		date, err := time.Parse("2006-01-02", d.Range.Date)
		if err != nil {
			logger.Warn("skipping summary with invalid date", "date", d.Range.Date, "error", err)
			continue
		}
		days = append(days, models.DailyTotal{
			Date:         date,
			TotalSeconds: d.GrandTotal.TotalSeconds,
		})
	}

	return days, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	if c.apiKey == "" {
		return fmt.Errorf("%w: api key is empty", ErrSourceUnavailable)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %w", ErrSourceUnavailable, err)
	}
	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(c.apiKey)))
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: request failed: %w", ErrSourceUnavailable, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Error("failed to close response body", "error", err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response: %w", ErrSourceUnavailable, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: unauthorized: check WAKATIME_API_KEY", ErrSourceUnavailable)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d: %s", ErrSourceUnavailable, resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: failed to parse response: %w", ErrSourceUnavailable, err)
	}

	return nil
}
