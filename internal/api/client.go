package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the production backend.
const DefaultBaseURL = "https://api.exampartner.app"

// TokenSource returns the current bearer token, or "" when logged out.
// It is consulted on every request so a token change (login, logout,
// another process) takes effect without restarting the client.
type TokenSource func(ctx context.Context) string

// Client issues authenticated requests against the ExamPartner backend.
// It performs no retries and no caching; every failure surfaces
// immediately as one of the errors in errors.go.
type Client struct {
	base  string
	token TokenSource
	http  *http.Client
	log   zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying *http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger sets a request logger. Default is a no-op logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New creates a Client for the given base URL. A nil token source is
// treated as permanently logged out.
func New(baseURL string, token TokenSource, opts ...Option) *Client {
	if token == nil {
		token = func(context.Context) string { return "" }
	}
	c := &Client{
		base:  strings.TrimRight(baseURL, "/"),
		token: token,
		http:  &http.Client{Timeout: 30 * time.Second},
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.base
}

// SetBaseURL points the client at a different backend.
func (c *Client) SetBaseURL(baseURL string) {
	c.base = strings.TrimRight(baseURL, "/")
}

// DiagramURL resolves a diagram filename against the backend's static
// diagram directory.
func (c *Client) DiagramURL(name string) string {
	return c.base + "/static/diagrams/" + name
}

// do performs a request and normalizes the outcome. On success the raw
// JSON body is returned (empty bodies yield `{"ok":true}` so callers can
// always decode). Non-2xx responses become *HTTPError carrying the
// server's "detail" message when the body is JSON, or the raw body text
// otherwise. Transport failures become ErrNetwork.
func (c *Client) do(ctx context.Context, method, path string, payload any, headers map[string]string) (json.RawMessage, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.token(ctx); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Str("method", method).Str("path", path).Err(err).Msg("request failed")
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	c.log.Debug().Str("method", method).Str("path", path).Int("status", resp.StatusCode).Msg("request")

	isJSON := strings.Contains(resp.Header.Get("Content-Type"), "application/json")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := strings.TrimSpace(string(raw))
		if isJSON {
			var e struct {
				Detail string `json:"detail"`
				Error  string `json:"error"`
			}
			if json.Unmarshal(raw, &e) == nil {
				if e.Detail != "" {
					msg = e.Detail
				} else if e.Error != "" {
					msg = e.Error
				}
			}
		}
		if msg == "" {
			msg = "request failed"
		}
		if resp.StatusCode == http.StatusPaymentRequired {
			return nil, fmt.Errorf("%w: %s", ErrPaywall, msg)
		}
		return nil, &HTTPError{Status: resp.StatusCode, Message: msg}
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return json.RawMessage(`{"ok":true}`), nil
	}
	if !isJSON {
		// Plain-text success bodies are wrapped so callers still get JSON.
		b, _ := json.Marshal(map[string]any{"ok": true, "text": string(raw)})
		return json.RawMessage(b), nil
	}
	return json.RawMessage(raw), nil
}

// get decodes a GET response into out.
func (c *Client) get(ctx context.Context, path string, out any, headers map[string]string) error {
	raw, err := c.do(ctx, http.MethodGet, path, nil, headers)
	if err != nil {
		return err
	}
	return decode(raw, out)
}

// post decodes a POST response into out. out may be nil when the caller
// only cares about success.
func (c *Client) post(ctx context.Context, path string, payload, out any, headers map[string]string) error {
	raw, err := c.do(ctx, http.MethodPost, path, payload, headers)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return decode(raw, out)
}

func decode(raw json.RawMessage, out any) error {
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
