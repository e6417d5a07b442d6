package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/repoboard/repoboard/internal/model"
)

const DefaultBaseURL = "https://api.github.com"

const acceptHeader = "application/vnd.github.v3+json"

// Client talks to the GitHub REST API. Every successful GET is cached by
// its endpoint path (query string included) for the configured TTL, so
// repeated board refreshes inside the TTL window cost no network calls.
// Construct one per dashboard; there is no shared global state.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	cache   *responseCache
}

type Options struct {
	// BaseURL defaults to the public GitHub API.
	BaseURL string
	// Token is optional; unauthenticated requests work with lower rate
	// limits.
	Token      string
	CacheTTL   time.Duration
	HTTPClient *http.Client
}

func NewClient(opts Options) *Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   opts.Token,
		http:    httpClient,
		cache:   newResponseCache(opts.CacheTTL),
	}
}

func repoPath(ref model.RepoRef, path string) string {
	base := fmt.Sprintf("repos/%s/%s", ref.Owner, ref.Repo)
	if path == "" {
		return base
	}
	return base + "/" + path
}

// getJSON fetches path and decodes the response into out. A cache hit is
// served without touching the network. Failed requests are never cached:
// a follow-up call for the same path retries immediately.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	if body, ok := c.cache.Get(path); ok {
		return json.Unmarshal(body, out)
	}

	url := c.baseURL + "/" + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &RequestError{URL: url, Err: err}
	}
	req.Header.Set("Accept", acceptHeader)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &RequestError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &RequestError{URL: url, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Message: apiMessage(body)}
	}

	// Decode before caching so a malformed body cannot occupy the slot
	// for a whole TTL.
	if err := json.Unmarshal(body, out); err != nil {
		return &RequestError{URL: url, Err: err}
	}
	c.cache.Put(path, body)
	return nil
}

// apiMessage pulls the "message" field out of a GitHub error body.
func apiMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Message
}
