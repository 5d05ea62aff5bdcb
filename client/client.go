// file: client/client.go

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/OndrejKutil/budgeting-dashboard-sub000/common"
	"github.com/OndrejKutil/budgeting-dashboard-sub000/logger"
)

const (
	headerAPIKey       = "X-API-KEY"
	headerRefreshToken = "X-Refresh-Token"
	headerRequestID    = "X-Request-ID"

	defaultTimeout = 15 * time.Second
)

// Client is the authenticated API client for the budgeting dashboard.
// It attaches the service API key and the stored bearer token to every
// request, detects session expiry, refreshes the session at most once per
// expiry event, and retries the original request exactly once.
type Client struct {
	baseURL      string
	apiKey       string
	store        ICredentialStore
	httpClient   *http.Client
	refreshGroup singleflight.Group
}

// NewClient creates a client against the given base URL. A zero timeout
// falls back to the default.
func NewClient(baseURL, apiKey string, store ICredentialStore, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		store:      store,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Store exposes the credential store so callers can check authentication
// state without going through the network.
func (c *Client) Store() ICredentialStore {
	return c.store
}

// Response is the envelope returned to callers on success. Data is the raw
// JSON body; typed services decode it further.
type Response struct {
	Data   json.RawMessage
	Status int
}

// RequestOptions carries the per-call parts of a request. Body must be
// fully materialized so the executor can re-issue the identical request
// after a token refresh.
type RequestOptions struct {
	Method  string
	Body    []byte
	Headers map[string]string
}

// Request performs one logical API call. When the server answers with the
// token-expired status and retryOnExpired is set, it refreshes the session
// and re-issues the identical request once with the retry disabled, so a
// second rejection surfaces as an ordinary API error rather than a loop.
//
// Transport-level failures propagate to the caller as-is; only the refresh
// path interprets them (see refresh.go).
func (c *Client) Request(ctx context.Context, endpoint string, opts RequestOptions, retryOnExpired bool) (*Response, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if opts.Body != nil {
		body = bytes.NewReader(opts.Body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	c.setHeaders(req, opts.Headers)
	req.Header.Set(headerRequestID, uuid.NewString())

	log := logger.Log.WithFields(logrus.Fields{
		"method":     method,
		"endpoint":   endpoint,
		"request_id": req.Header.Get(headerRequestID),
	})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode == common.StatusTokenExpired && retryOnExpired {
		log.Info("Access token expired, refreshing session")
		if refreshErr := c.refreshSession(ctx); refreshErr != nil {
			return nil, &common.SessionExpiredError{Reason: refreshErr}
		}
		return c.Request(ctx, endpoint, opts, false)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail := parseErrorDetail(raw)
		log.WithField("status", resp.StatusCode).Warn("Request failed")
		return nil, common.NewAPIError(resp.StatusCode, errorMessage(detail), detail)
	}

	log.WithField("status", resp.StatusCode).Debug("Request completed")
	return &Response{Data: raw, Status: resp.StatusCode}, nil
}

// setHeaders builds the request headers. Caller-supplied headers win over
// the defaults, except Authorization, which is always derived from storage.
func (c *Client) setHeaders(req *http.Request, extra map[string]string) {
	req.Header.Set(headerAPIKey, c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range extra {
		req.Header.Set(k, v)
	}
	req.Header.Del("Authorization")
	if token := c.store.GetAccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// parseErrorDetail pulls the "detail" field out of an error body. Detail
// may be a string, a list of field errors, or an arbitrary object; an
// unparsable body yields a fixed placeholder.
func parseErrorDetail(raw []byte) any {
	var body struct {
		Detail any `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || body.Detail == nil {
		return "Unknown error"
	}
	return body.Detail
}

func errorMessage(detail any) string {
	if s, ok := detail.(string); ok {
		return s
	}
	return "Request failed"
}

// Param is one query-string entry. A nil Value is omitted from the query;
// insertion order of the remaining entries is preserved.
type Param struct {
	Key   string
	Value any
}

func encodeParams(params []Param) string {
	var sb strings.Builder
	for _, p := range params {
		if p.Value == nil {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(fmt.Sprint(p.Value)))
	}
	return sb.String()
}

func marshalBody(body any) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}
	return raw, nil
}

// Get issues a GET request with the given query parameters appended to the
// endpoint.
func (c *Client) Get(ctx context.Context, endpoint string, params ...Param) (*Response, error) {
	if q := encodeParams(params); q != "" {
		endpoint += "?" + q
	}
	return c.Request(ctx, endpoint, RequestOptions{Method: http.MethodGet}, true)
}

// Post issues a POST request with the JSON-encoded body, if any.
func (c *Client) Post(ctx context.Context, endpoint string, body any) (*Response, error) {
	raw, err := marshalBody(body)
	if err != nil {
		return nil, err
	}
	return c.Request(ctx, endpoint, RequestOptions{Method: http.MethodPost, Body: raw}, true)
}

// Put issues a PUT request with the JSON-encoded body, if any.
func (c *Client) Put(ctx context.Context, endpoint string, body any) (*Response, error) {
	raw, err := marshalBody(body)
	if err != nil {
		return nil, err
	}
	return c.Request(ctx, endpoint, RequestOptions{Method: http.MethodPut, Body: raw}, true)
}

// Delete issues a DELETE request with no body.
func (c *Client) Delete(ctx context.Context, endpoint string) (*Response, error) {
	return c.Request(ctx, endpoint, RequestOptions{Method: http.MethodDelete}, true)
}
