package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/mapmotion/geocore-go/internal/constants"
	"github.com/mapmotion/geocore-go/pkg/geocore"
)

// Session supplies the base URL and access token at send time.
type Session interface {
	BaseURL() string
	Token() string
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request describes one call. Path is relative to the session base URL and
// may carry a query string.
type Request struct {
	Method      string
	Path        string
	Headers     map[string]string
	Body        interface{}
	RawBody     []byte
	ContentType string
}

// Response is a completed HTTP exchange.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client is the transport adapter. It issues exactly one HTTP request per
// call; retries are disabled.
type Client struct {
	session      Session
	httpClient   *retryablehttp.Client
	logger       Logger
	debug        bool
	userAgent    string
	interceptors *geocore.InterceptorChain
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
		c.httpClient.Logger = &leveledLogger{logger: logger}
	}
}

// WithDebug enables request and response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout bounds every request.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient.HTTPClient = httpClient
		}
	}
}

// WithInterceptors runs chain around every request.
func WithInterceptors(chain *geocore.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a transport bound to session.
func NewClient(session Session, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.CheckRetry = noRetry
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout

	client := &Client{
		session:    session,
		httpClient: retryClient,
		userAgent:  constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

func noRetry(_ context.Context, _ *http.Response, err error) (bool, error) {
	return false, err
}

// Do performs the request. A non-nil error is returned only when no response
// was obtained: geocore.ErrBaseURLRequired, an interceptor failure, or a
// *geocore.TransportError.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	baseURL := c.session.BaseURL()
	if baseURL == "" {
		return nil, geocore.ErrBaseURLRequired
	}

	body, contentType, err := encodeBody(req)
	if err != nil {
		return nil, err
	}

	intercepted := &geocore.Request{
		Method:  req.Method,
		Path:    req.Path,
		Headers: make(http.Header),
	}

	intercepted.Headers.Set("Accept", constants.ContentTypeJSON)
	intercepted.Headers.Set("User-Agent", c.userAgent)

	if contentType != "" {
		intercepted.Headers.Set("Content-Type", contentType)
	}

	for key, value := range req.Headers {
		intercepted.Headers.Set(key, value)
	}

	err = c.interceptors.ExecuteRequestInterceptors(ctx, intercepted)
	if err != nil {
		return nil, err
	}

	var rawBody interface{}
	if body != nil {
		rawBody = body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, baseURL+req.Path, rawBody)
	if err != nil {
		return nil, &geocore.TransportError{Err: err}
	}

	httpReq.Header = intercepted.Headers.Clone()

	if token := c.session.Token(); token != "" {
		httpReq.Header.Set(constants.AccessTokenHeader, token)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method":        req.Method,
			"url":           geocore.RedactPassword(baseURL + req.Path),
			"authenticated": httpReq.Header.Get(constants.AccessTokenHeader) != "",
		})
	}

	start := time.Now()

	resp, err := c.execute(httpReq)
	if err != nil {
		_ = c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, &geocore.Response{Error: err})

		return nil, err
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":   req.Method,
			"url":      geocore.RedactPassword(baseURL + req.Path),
			"status":   resp.StatusCode,
			"duration": time.Since(start).String(),
		})
	}

	err = c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, &geocore.Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
	})
	if err != nil {
		return resp, err
	}

	return resp, nil
}

func (c *Client) execute(httpReq *retryablehttp.Request) (*Response, error) {
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if httpResp != nil && httpResp.Body != nil {
			_ = httpResp.Body.Close()
		}

		return nil, &geocore.TransportError{Err: err}
	}

	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &geocore.TransportError{Err: fmt.Errorf("reading response body: %w", err)}
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}, nil
}

func encodeBody(req *Request) ([]byte, string, error) {
	if req.RawBody != nil {
		return req.RawBody, req.ContentType, nil
	}

	if req.Body == nil {
		return nil, "", nil
	}

	var buf bytes.Buffer

	err := json.NewEncoder(&buf).Encode(req.Body)
	if err != nil {
		return nil, "", fmt.Errorf("encoding request body: %w", err)
	}

	return buf.Bytes(), constants.ContentTypeJSON, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path})
}

// Post performs a POST request with a JSON body. A nil body sends none.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request with a JSON body. A nil body sends none.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// PostRaw performs a POST request with a pre-encoded body.
func (c *Client) PostRaw(ctx context.Context, path string, body []byte, contentType string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, RawBody: body, ContentType: contentType})
}

// leveledLogger routes go-retryablehttp logs to Logger.
type leveledLogger struct {
	logger Logger
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, fieldsOf(keysAndValues))
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, fieldsOf(keysAndValues))
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, fieldsOf(keysAndValues))
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, fieldsOf(keysAndValues))
}

func fieldsOf(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2)

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key := fmt.Sprint(keysAndValues[i])
		value := keysAndValues[i+1]

		if key == "url" {
			value = geocore.RedactPassword(fmt.Sprint(value))
		}

		fields[key] = value
	}

	return fields
}
