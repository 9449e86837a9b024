package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Credentials is the slice of the session the transport needs: read the
// current token, and clear it best-effort when the backend rejects it.
type Credentials interface {
	Token() (string, bool)
	ClearToken(ctx context.Context)
}

// Navigator receives the redirect side effect of a 401 response. Current
// returns the route name currently shown; Go requests a route change.
type Navigator interface {
	Current() string
	Go(route string)
}

// Observer is notified of transport events for metrics and audit. All
// methods may be called concurrently and must not block.
type Observer interface {
	RequestSent(requestID string, authorized bool)
	UnauthorizedObserved(requestID, path string)
}

// Config holds the fixed parameters of the outbound channel.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	UserAgent  string
	LoginRoute string
}

// Client is the shared request channel to the backend. Safe for concurrent
// use.
type Client struct {
	base       *url.URL
	http       *http.Client
	creds      Credentials
	nav        Navigator
	obs        Observer
	userAgent  string
	loginRoute string
}

// Option customizes a Client beyond its Config.
type Option func(*Client)

// WithHTTPClient substitutes the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithObserver attaches an event observer.
func WithObserver(obs Observer) Option {
	return func(c *Client) { c.obs = obs }
}

// New creates the outbound channel. creds may be nil (all requests go out
// unauthenticated); nav may be nil (401 still clears, nobody is redirected).
func New(cfg Config, creds Credentials, nav Navigator, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("base URL required")
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	c := &Client{
		base:       base,
		http:       &http.Client{Timeout: cfg.Timeout},
		creds:      creds,
		nav:        nav,
		userAgent:  cfg.UserAgent,
		loginRoute: cfg.LoginRoute,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Get issues a GET and decodes the JSON response into out when out != nil.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST with an optional JSON body.
func (c *Client) Post(ctx context.Context, path string, query url.Values, body, out any) error {
	return c.do(ctx, http.MethodPost, path, query, body, out)
}

// Put issues a PUT with an optional JSON body.
func (c *Client) Put(ctx context.Context, path string, query url.Values, body, out any) error {
	return c.do(ctx, http.MethodPut, path, query, body, out)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string, query url.Values) error {
	return c.do(ctx, http.MethodDelete, path, query, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	target := c.resolve(path, query)

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	authorized := false
	if c.creds != nil {
		if token, ok := c.creds.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
			authorized = true
		}
	}
	if c.obs != nil {
		c.obs.RequestSent(requestID, authorized)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.onUnauthorized(ctx, requestID, path)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{
			Method:    method,
			Path:      path,
			Status:    resp.StatusCode,
			RequestID: requestID,
			Detail:    errorDetail(resp.Body),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// onUnauthorized runs the centralized 401 policy: clear the token
// best-effort, then steer to the login route unless it is already showing.
// The rejected response itself still propagates to the caller.
func (c *Client) onUnauthorized(ctx context.Context, requestID, path string) {
	if c.creds != nil {
		c.creds.ClearToken(ctx)
	}
	if c.obs != nil {
		c.obs.UnauthorizedObserved(requestID, path)
	}
	if c.nav != nil && c.loginRoute != "" && c.nav.Current() != c.loginRoute {
		c.nav.Go(c.loginRoute)
	}
}

func (c *Client) resolve(path string, query url.Values) string {
	ref := &url.URL{Path: strings.TrimLeft(path, "/")}
	target := c.base.ResolveReference(ref)

	// Keep the base path prefix: /api + ingredients/ → /api/ingredients/.
	if basePath := strings.TrimRight(c.base.Path, "/"); basePath != "" {
		target.Path = basePath + "/" + strings.TrimLeft(path, "/")
	}
	if len(query) > 0 {
		target.RawQuery = query.Encode()
	}
	return target.String()
}

func errorDetail(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(data) == 0 {
		return ""
	}
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(data, &payload); err != nil || payload.Detail == "" {
		return strings.TrimSpace(string(data))
	}
	return payload.Detail
}
