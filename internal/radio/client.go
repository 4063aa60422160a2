package radio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// API is the surface of the playout server the rest of the application talks
// to. It is implemented by *Client and can be replaced in tests.
type API interface {
	Now(ctx context.Context) (*NowResponse, error)
	Skip(ctx context.Context) error
	Pause(ctx context.Context) error
	Repeat(ctx context.Context) error
	Search(ctx context.Context, query string) ([]SearchResult, error)
	Schedule(ctx context.Context, fileID string) error
	ScheduleNews(ctx context.Context) error
	Config(ctx context.Context) (Flags, error)
}

// Ensure Client implements API at compile time.
var _ API = (*Client)(nil)

// Client talks to the playout server's HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	stream    *http.Client
	userAgent string
}

const (
	defaultHost      = "127.0.0.1:8080"
	defaultUserAgent = "dial/0.1"
	requestTimeout   = 10 * time.Second
	apiPrefix        = "/api"
)

// NewClient builds a Client using the provided host:port or URL value.
func NewClient(host string) (*Client, error) {
	base, err := parseBaseURL(host)
	if err != nil {
		return nil, err
	}
	// Redirects are never followed; a 3xx response falls through to
	// envelope decoding and surfaces as a protocol error.
	noRedirect := func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout:       requestTimeout,
			CheckRedirect: noRedirect,
		},
		stream: &http.Client{
			// No timeout: the event stream stays open indefinitely.
			CheckRedirect: noRedirect,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// Now retrieves the full playout snapshot.
func (c *Client) Now(ctx context.Context) (*NowResponse, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload NowResponse
	if err := c.call(ctx, http.MethodGet, "/now", nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Skip asks the server to skip the clip currently airing.
func (c *Client) Skip(ctx context.Context) error {
	return c.call(ctx, http.MethodPut, "/skip", nil, nil)
}

// Pause toggles the server's pause state. The resulting state is not part of
// the response; callers observe it through the next snapshot read.
func (c *Client) Pause(ctx context.Context) error {
	return c.call(ctx, http.MethodPost, "/pause", nil, nil)
}

// Repeat queues the current clip to play again.
func (c *Client) Repeat(ctx context.Context) error {
	return c.call(ctx, http.MethodPut, "/repeat", nil, nil)
}

// Search queries the server's clip library. A blank query short-circuits to
// an empty result list without issuing a request.
func (c *Client) Search(ctx context.Context, query string) ([]SearchResult, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return []SearchResult{}, nil
	}
	values := url.Values{}
	values.Set("query", trimmed)
	rel := "/library/search?" + values.Encode()
	var payload struct {
		Results []SearchResult `json:"results"`
	}
	if err := c.call(ctx, http.MethodGet, rel, nil, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

// Schedule enqueues a library clip by id. Unknown ids surface as business
// errors from the server.
func (c *Client) Schedule(ctx context.Context, fileID string) error {
	form := url.Values{}
	form.Set("file", fileID)
	return c.call(ctx, http.MethodPost, "/schedule", form, nil)
}

// ScheduleNews schedules the news clip. The server rejects this when the
// feature is disabled; see Config.
func (c *Client) ScheduleNews(ctx context.Context) error {
	return c.call(ctx, http.MethodPost, "/schedule/news", nil, nil)
}

// Config retrieves server feature flags.
func (c *Client) Config(ctx context.Context) (Flags, error) {
	var payload Flags
	if err := c.call(ctx, http.MethodPost, "/config", nil, &payload); err != nil {
		return Flags{}, err
	}
	return payload, nil
}

// DownloadURL constructs the download link for a library clip. The file is
// fetched by the user's tooling, not by this client.
func (c *Client) DownloadURL(fileID string) string {
	values := url.Values{}
	values.Set("file", fileID)
	rel := &url.URL{Path: apiPrefix + "/library/download", RawQuery: values.Encode()}
	return c.baseURL.ResolveReference(rel).String()
}

// OpenEvents opens the persistent server push stream and returns its body.
// The caller owns the stream and must close it; frame parsing lives in the
// stream package.
func (c *Client) OpenEvents(ctx context.Context) (io.ReadCloser, error) {
	rel := &url.URL{Path: apiPrefix + "/events"}
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, transportError(err)
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.stream.Do(req)
	if err != nil {
		return nil, transportError(err)
	}
	if resp.StatusCode != http.StatusOK {
		defer func() { _ = resp.Body.Close() }()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
		return nil, decodeEnvelopeError(body)
	}
	return resp.Body, nil
}

// call issues a single request and decodes the JSON envelope. No retries
// happen here; retry policy belongs to the refresh scheduler.
func (c *Client) call(ctx context.Context, method, path string, form url.Values, dest any) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	rel, err := url.Parse(apiPrefix + path)
	if err != nil {
		return protocolError(err)
	}
	reqURL := c.baseURL.ResolveReference(rel)

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), body)
	if err != nil {
		return transportError(err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("User-Agent", c.userAgent)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return transportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	// The envelope is decoded regardless of HTTP status: the server reports
	// business failures with non-2xx codes and an error envelope.
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportError(err)
	}
	if apiErr := decodeEnvelopeError(raw); apiErr != nil {
		return apiErr
	}
	if dest == nil {
		return nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return protocolError(err)
	}
	return nil
}

// decodeEnvelopeError inspects the response envelope and returns a non-nil
// error for error envelopes and undecodable bodies.
func decodeEnvelopeError(raw []byte) *Error {
	var envelope struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return protocolError(err)
	}
	if envelope.Status == "error" {
		return businessError(envelope.Message)
	}
	return nil
}

func parseBaseURL(host string) (*url.URL, error) {
	trimmed := strings.TrimSpace(host)
	if trimmed == "" {
		trimmed = defaultHost
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse host %q: %w", host, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
