package http

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/fwojciec/chirp"
)

// Interface compliance check.
var _ chirp.Streamer = (*Client)(nil)

// Authorizer signs an outgoing stream request, typically by setting an
// OAuth Authorization header.
type Authorizer func(*http.Request) error

// Client implements [chirp.Streamer] for the streaming HTTP endpoints.
type Client struct {
	httpClient *http.Client
	baseURL    string
	endpoints  map[chirp.StreamKind]string
	authorize  Authorizer
	userAgent  string
	gzip       bool
	logger     *slog.Logger
}

// Option configures a [Client].
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client. It must not set a response
// timeout, since streams stay open indefinitely.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithBaseURL replaces the scheme and host of every default endpoint while
// keeping its path. Useful for testing with httptest.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(u, "/") }
}

// WithEndpoint overrides the URL of a single stream kind.
func WithEndpoint(kind chirp.StreamKind, u string) Option {
	return func(c *Client) { c.endpoints[kind] = u }
}

// WithAuthorizer sets the function that signs each stream request.
func WithAuthorizer(a Authorizer) Option {
	return func(c *Client) { c.authorize = a }
}

// WithBearerToken authorizes requests with an app-only bearer token.
func WithBearerToken(token string) Option {
	return WithAuthorizer(func(r *http.Request) error {
		r.Header.Set("Authorization", "Bearer "+token)
		return nil
	})
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithCompression controls whether gzip-encoded bodies are requested.
// Enabled by default.
func WithCompression(enabled bool) Option {
	return func(c *Client) { c.gzip = enabled }
}

// WithLogger sets the logger for connection lifecycle and parse fallbacks.
// By default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a new [Client] with the given options.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: http.DefaultClient,
		endpoints:  make(map[chirp.StreamKind]string),
		userAgent:  defaultUserAgent,
		gzip:       true,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Open connects to the stream selected by req and returns its lines.
// Connection failures, including non-200 responses, are returned before
// any line is read. The caller must Close the returned Lines.
func (c *Client) Open(ctx context.Context, req chirp.Request) (*Lines, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}

	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}

	c.logger.Debug("opening stream", "kind", req.Kind, "method", httpReq.Method, "url", httpReq.URL.Redacted())

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		err := parseHTTPError(resp)
		c.logger.Warn("stream rejected", "kind", req.Kind, "status", resp.StatusCode)
		return nil, err
	}

	gzipped := strings.EqualFold(resp.Header.Get("Content-Encoding"), "gzip")
	return NewLines(resp.Body, gzipped), nil
}

// Stream opens the stream selected by req and returns a [chirp.Stream] that
// decodes one message per line.
func (c *Client) Stream(ctx context.Context, req chirp.Request) (chirp.Stream, error) {
	lines, err := c.Open(ctx, req)
	if err != nil {
		return nil, err
	}
	return newStream(lines, req.Kind, c.logger), nil
}

func (c *Client) endpoint(kind chirp.StreamKind) (string, error) {
	if u, ok := c.endpoints[kind]; ok {
		return u, nil
	}
	if c.baseURL == "" {
		return kind.URL(), nil
	}
	def, err := url.Parse(kind.URL())
	if err != nil {
		return "", err
	}
	return c.baseURL + def.Path, nil
}

func (c *Client) newRequest(ctx context.Context, req chirp.Request) (*http.Request, error) {
	endpoint, err := c.endpoint(req.Kind)
	if err != nil {
		return nil, err
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, err
	}

	method := req.Kind.Method()
	var body io.Reader
	if method == http.MethodPost {
		body = strings.NewReader(req.Params.Encode())
	} else if len(req.Params) > 0 {
		q := u.Query()
		for k, vs := range req.Params {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, err
	}
	if method == http.MethodPost {
		httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	httpReq.Header.Set("User-Agent", c.userAgent)
	if c.gzip {
		// Setting the header disables the transport's transparent
		// decompression; Lines decodes the body instead.
		httpReq.Header.Set("Accept-Encoding", "gzip")
	}
	if c.authorize != nil {
		if err := c.authorize(httpReq); err != nil {
			return nil, fmt.Errorf("authorize: %w", err)
		}
	}
	return httpReq, nil
}

func parseHTTPError(resp *http.Response) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return fmt.Errorf("http: %d (failed to read body: %w)", resp.StatusCode, err)
	}
	return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
}
