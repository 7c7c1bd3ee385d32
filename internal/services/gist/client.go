// Package gist reads and updates GitHub gists.
package gist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/j-veylop/waka-box/internal/logger"
	"github.com/j-veylop/waka-box/internal/models"
)

// DefaultBaseURL is the public GitHub REST API root.
const DefaultBaseURL = "https://api.github.com"

// ErrStoreUnavailable is returned when a gist cannot be read or written.
var ErrStoreUnavailable = errors.New("gist: store unavailable")

// Client is a minimal GitHub gists client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// New creates a client. A nil httpClient gets a default client with a 30s timeout.
func New(httpClient *http.Client, baseURL, token string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
	}
}

// gistFile mirrors one entry of a gist's "files" object.
type gistFile struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

type gistResponse struct {
	ID    string              `json:"id"`
	Files map[string]gistFile `json:"files"`
}

type updateRequest struct {
	Files map[string]gistFile `json:"files"`
}

// GetDocument returns the gist's first file, ordered by name.
func (c *Client) GetDocument(ctx context.Context, id string) (models.Document, error) {
	body, err := c.do(ctx, http.MethodGet, id, nil)
	if err != nil {
		return models.Document{}, err
	}

	var resp gistResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return models.Document{}, fmt.Errorf("%w: failed to parse gist: %w", ErrStoreUnavailable, err)
	}
	if len(resp.Files) == 0 {
		return models.Document{}, fmt.Errorf("%w: gist %s has no files", ErrStoreUnavailable, id)
	}

	names := make([]string, 0, len(resp.Files))
	for name := range resp.Files {
		names = append(names, name)
	}
	sort.Strings(names)

	return models.Document{
		ID:       id,
		Filename: names[0],
		Content:  resp.Files[names[0]].Content,
	}, nil
}

// UpdateDocument replaces the content of filename and renames it to title.
func (c *Client) UpdateDocument(ctx context.Context, id, filename, title, content string) error {
	payload, err := json.Marshal(updateRequest{
		Files: map[string]gistFile{
			filename: {Filename: title, Content: content},
		},
	})
	if err != nil {
		return fmt.Errorf("%w: failed to encode update: %w", ErrStoreUnavailable, err)
	}

	_, err = c.do(ctx, http.MethodPatch, id, payload)
	return err
}

func (c *Client) do(ctx context.Context, method, id string, payload []byte) ([]byte, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: gist id is empty", ErrStoreUnavailable)
	}
	if c.token == "" {
		return nil, fmt.Errorf("%w: token is empty", ErrStoreUnavailable)
	}

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	endpoint := c.baseURL + "/gists/" + url.PathEscape(id)
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %w", ErrStoreUnavailable, err)
	}
	req.Header.Set("Authorization", "token "+c.token)
	req.Header.Set("Accept", "application/vnd.github+json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s request failed: %w", ErrStoreUnavailable, method, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Error("failed to close response body", "error", err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %w", ErrStoreUnavailable, err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return body, nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, fmt.Errorf("%w: access denied (status %d): check GH_TOKEN gist scope",
			ErrStoreUnavailable, resp.StatusCode)
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: gist %s not found", ErrStoreUnavailable, id)
	default:
		return nil, fmt.Errorf("%w: %s failed (status %d): %s",
			ErrStoreUnavailable, method, resp.StatusCode, string(body))
	}
}
