// Package client is a Go SDK for the DevConnector API. It mirrors the
// server's REST surface with typed actions that dispatch results into a
// central store, plus an auto-expiring alert queue for surfacing failures.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

const defaultTimeout = 15 * time.Second

// Client talks to a DevConnector API server. The auth token is held on the
// client instance and sent explicitly with each request; nothing global is
// mutated, so independent clients can act as different users concurrently.
type Client struct {
	baseURL string
	httpc   *http.Client
	store   *Store
	alerts  *Alerts

	mu    sync.RWMutex
	token string
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) { c.httpc = httpc }
}

// WithAlertTimeout changes how long alerts stay visible before auto-dismissal.
func WithAlertTimeout(d time.Duration) Option {
	return func(c *Client) { c.alerts = NewAlerts(d) }
}

// New creates a Client against baseURL (e.g. "http://localhost:5000").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: defaultTimeout},
		store:   NewStore(),
		alerts:  NewAlerts(defaultAlertTimeout),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Store exposes the client's state store.
func (c *Client) Store() *Store { return c.store }

// Alerts exposes the client's alert queue.
func (c *Client) Alerts() *Alerts { return c.alerts }

// Token returns the current auth token, empty when logged out.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetToken installs a previously-issued token, e.g. one restored from disk.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// do performs one JSON round-trip. A non-2xx response is returned as an
// *APIError normalized from the server's error envelope.
func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.Token(); token != "" {
		req.Header.Set("x-auth-token", token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return normalizeError(resp.StatusCode, raw)
	}
	if dest != nil {
		if err := json.Unmarshal(raw, dest); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// normalizeError maps both server error shapes — {"errors":[{"msg":...}]}
// and {"msg":...} — onto an *APIError.
func normalizeError(status int, raw []byte) *APIError {
	var envelope struct {
		Errors []struct {
			Msg string `json:"msg"`
		} `json:"errors"`
		Msg string `json:"msg"`
	}
	apiErr := &APIError{Status: status, Msg: http.StatusText(status)}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return apiErr
	}
	for _, item := range envelope.Errors {
		apiErr.Msgs = append(apiErr.Msgs, item.Msg)
	}
	switch {
	case len(apiErr.Msgs) > 0:
		apiErr.Msg = apiErr.Msgs[0]
	case envelope.Msg != "":
		apiErr.Msg = envelope.Msg
		apiErr.Msgs = []string{envelope.Msg}
	}
	return apiErr
}

// alertFailure surfaces every message from a failed request as a danger alert.
func (c *Client) alertFailure(err error) {
	apiErr, ok := err.(*APIError)
	if !ok {
		c.alerts.Add(err.Error(), AlertDanger)
		return
	}
	if len(apiErr.Msgs) == 0 {
		c.alerts.Add(apiErr.Msg, AlertDanger)
		return
	}
	for _, msg := range apiErr.Msgs {
		c.alerts.Add(msg, AlertDanger)
	}
}
