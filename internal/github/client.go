// Package github is a thin client for the GitHub repository listing used by
// the profile API.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/beingscholar/devconnector/internal/cache"
	"github.com/beingscholar/devconnector/internal/middleware"
)

const requestTimeout = 10 * time.Second

// Client fetches a user's repositories from the GitHub REST API.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

// NewClient returns a Client against baseURL. token is optional; when set it
// is sent as a bearer credential to raise the rate limit.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpc:   &http.Client{Timeout: requestTimeout},
	}
}

// Repos returns the five most recent repositories for username as the raw
// upstream JSON, plus the upstream status code. Successful responses are
// cached; a non-200 status is returned without error so the caller can
// forward it. A non-nil error means the request never completed.
func (c *Client) Repos(ctx context.Context, username string) (json.RawMessage, int, error) {
	key := cache.GithubReposKey(username)

	var cached json.RawMessage
	if found, err := cache.GetJSON(ctx, key, &cached); err == nil && found {
		middleware.GithubRequests.WithLabelValues("cache_hit").Inc()
		return cached, http.StatusOK, nil
	}

	reqURL := fmt.Sprintf("%s/users/%s/repos?per_page=5&sort=created:asc",
		c.baseURL, url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("User-Agent", "devconnector")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		middleware.GithubRequests.WithLabelValues("transport_error").Inc()
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		middleware.GithubRequests.WithLabelValues("transport_error").Inc()
		return nil, 0, err
	}

	if resp.StatusCode != http.StatusOK {
		middleware.GithubRequests.WithLabelValues("upstream_error").Inc()
		return nil, resp.StatusCode, nil
	}

	middleware.GithubRequests.WithLabelValues("success").Inc()
	cache.SetJSON(ctx, key, json.RawMessage(body), cache.GithubReposTTL)
	return body, http.StatusOK, nil
}
