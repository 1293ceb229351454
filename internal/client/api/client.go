package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/staffdesk/internal/common"
	"github.com/dmitrijs2005/staffdesk/internal/logging"
	"github.com/google/uuid"
)

// TokenSource yields the credential to attach to the next request, or "".
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a function to TokenSource.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }

type noToken struct{}

func (noToken) Token() string { return "" }

// Client talks JSON over HTTP to the staffdesk service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     atomic.Value // holds tokenHolder
	log        logging.Logger
}

type tokenHolder struct{ TokenSource }

type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout bounds every call end to end.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.SetTokenSource(ts) }
}

// NewClient returns a Client rooted at baseURL (e.g. "http://host:5000/api").
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logging.Nop(),
	}
	c.tokens.Store(tokenHolder{noToken{}})
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetTokenSource swaps the credential provider. The session store is wired
// in after construction because it depends on the client itself.
func (c *Client) SetTokenSource(ts TokenSource) {
	if ts == nil {
		ts = noToken{}
	}
	c.tokens.Store(tokenHolder{ts})
}

func (c *Client) token() string {
	return c.tokens.Load().(tokenHolder).Token()
}

// Do performs one call. body, when non-nil, is sent as JSON; a 2xx response
// is decoded into out unless out is nil or the body is empty. Every failure
// is an *Error.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &Error{Message: fmt.Sprintf("encode request: %v", err)}
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &Error{Message: fmt.Sprintf("build request: %v", err)}
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.token(); token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+token)
	}

	log := c.log.With("request_id", requestID, "method", method, "path", path)
	log.Debug(ctx, "request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn(ctx, "transport failure", "err", err)
		return &Error{Message: err.Error(), transport: true}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Message: fmt.Sprintf("read response: %v", err), StatusCode: resp.StatusCode}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := normalize(resp.StatusCode, data)
		log.Warn(ctx, "request rejected", "status", resp.StatusCode, "message", apiErr.Message)
		return apiErr
	}

	log.Debug(ctx, "response", "status", resp.StatusCode)

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &Error{Message: fmt.Sprintf("decode response: %v", err), StatusCode: resp.StatusCode}
	}
	return nil
}

// normalize builds the failure from an error body, preferring the server's
// message and falling back to a status-derived one.
func normalize(status int, data []byte) *Error {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Message != "" {
			return &Error{Message: body.Message, StatusCode: status}
		}
		if body.Error != "" {
			return &Error{Message: body.Error, StatusCode: status}
		}
	}
	return &Error{Message: fmt.Sprintf("request failed with status code %d", status), StatusCode: status}
}

func invalidResponse(what string, err error) *Error {
	return &Error{Message: fmt.Sprintf("invalid %s in response: %v", what, err)}
}
