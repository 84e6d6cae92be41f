package geocore

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/mapmotion/geocore-go/internal/constants"
)

// Request is the view of an outgoing call handed to interceptors. Path is
// relative to the base URL and may carry a query string.
type Request struct {
	Method   string
	Path     string
	Headers  http.Header
	Metadata map[string]interface{}
}

// Endpoint returns "METHOD path" with the query string removed.
func (r *Request) Endpoint() string {
	path, _, _ := strings.Cut(r.Path, "?")

	return r.Method + " " + path
}

// RedactedPath returns Path with the login password masked.
func (r *Request) RedactedPath() string {
	return RedactPassword(r.Path)
}

// Response is the outcome of a call handed to interceptors. Error is set
// when no response was obtained.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	Error      error
}

// EnvelopeStatus returns the "status" member of a JSON envelope body, or ""
// when the body is not an envelope.
func (r *Response) EnvelopeStatus() string {
	var head struct {
		Status string `json:"status"`
	}

	if len(r.Body) == 0 || json.Unmarshal(r.Body, &head) != nil {
		return ""
	}

	return head.Status
}

// Failed reports whether the call produced no response or a non-2xx status.
func (r *Response) Failed() bool {
	return r.Error != nil || r.StatusCode < http.StatusOK || r.StatusCode >= http.StatusMultipleChoices
}

// RequestInterceptor runs before a request is sent. An error aborts the call.
type RequestInterceptor func(ctx context.Context, req *Request) error

// ResponseInterceptor runs after the response is read or the transport
// failed.
type ResponseInterceptor func(ctx context.Context, req *Request, resp *Response) error

// InterceptorChain holds interceptors run in insertion order. A nil chain
// runs nothing.
type InterceptorChain struct {
	before []RequestInterceptor
	after  []ResponseInterceptor
}

// NewInterceptorChain creates an empty chain.
func NewInterceptorChain() *InterceptorChain {
	return &InterceptorChain{}
}

// AddRequestInterceptor appends a request interceptor.
func (c *InterceptorChain) AddRequestInterceptor(interceptor RequestInterceptor) *InterceptorChain {
	c.before = append(c.before, interceptor)

	return c
}

// AddResponseInterceptor appends a response interceptor.
func (c *InterceptorChain) AddResponseInterceptor(interceptor ResponseInterceptor) *InterceptorChain {
	c.after = append(c.after, interceptor)

	return c
}

// ExecuteRequestInterceptors runs the request interceptors, stopping at the
// first error.
func (c *InterceptorChain) ExecuteRequestInterceptors(ctx context.Context, req *Request) error {
	if c == nil {
		return nil
	}

	for i, interceptor := range c.before {
		err := interceptor(ctx, req)
		if err != nil {
			return fmt.Errorf("request interceptor %d on %s: %w", i, req.Endpoint(), err)
		}
	}

	return nil
}

// ExecuteResponseInterceptors runs the response interceptors, stopping at
// the first error.
func (c *InterceptorChain) ExecuteResponseInterceptors(ctx context.Context, req *Request, resp *Response) error {
	if c == nil {
		return nil
	}

	for i, interceptor := range c.after {
		err := interceptor(ctx, req, resp)
		if err != nil {
			return fmt.Errorf("response interceptor %d on %s: %w", i, req.Endpoint(), err)
		}
	}

	return nil
}

// LoggingInterceptor logs every outgoing call at debug level. The login
// password never reaches the log.
func LoggingInterceptor(logger Logger) RequestInterceptor {
	return func(_ context.Context, req *Request) error {
		logger.Debug("Geocore request", map[string]interface{}{
			"method": req.Method,
			"path":   req.RedactedPath(),
		})

		return nil
	}
}

// LoggingResponseInterceptor logs every completed call. Transport failures
// and non-2xx statuses are logged as errors, service errors as warnings.
func LoggingResponseInterceptor(logger Logger) ResponseInterceptor {
	return func(_ context.Context, req *Request, resp *Response) error {
		fields := map[string]interface{}{
			"method": req.Method,
			"path":   req.RedactedPath(),
		}

		switch {
		case resp.Error != nil:
			fields["error"] = resp.Error.Error()
			logger.Error("Geocore transport error", fields)
		case resp.Failed():
			fields["status_code"] = resp.StatusCode
			logger.Error("Geocore HTTP error", fields)
		default:
			fields["status_code"] = resp.StatusCode
			fields["envelope_status"] = resp.EnvelopeStatus()

			if resp.EnvelopeStatus() == constants.EnvelopeStatusError {
				logger.Warn("Geocore service error", fields)
			} else {
				logger.Debug("Geocore response", fields)
			}
		}

		return nil
	}
}

// HeaderInterceptor sets fixed headers on every request.
func HeaderInterceptor(headers map[string]string) RequestInterceptor {
	return func(_ context.Context, req *Request) error {
		if req.Headers == nil {
			req.Headers = make(http.Header)
		}

		for key, value := range headers {
			req.Headers.Set(key, value)
		}

		return nil
	}
}

// Metrics holds the counters of one endpoint. Failures count transport
// errors and non-2xx statuses; ServiceErrors count 2xx responses whose
// envelope reports an error.
type Metrics struct {
	TotalRequests   int64
	TotalErrors     int64
	ServiceErrors   int64
	TotalLatency    time.Duration
	AverageLatency  time.Duration
	LastRequestTime time.Time
}

// MetricsCollector aggregates Metrics per endpoint (see Request.Endpoint).
type MetricsCollector struct {
	mu       sync.Mutex
	byRoute  map[string]*Metrics
	onChange func(endpoint string, metrics Metrics)
}

// NewMetricsCollector creates an empty collector.
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{byRoute: make(map[string]*Metrics)}
}

// SetOnChange registers fn, called with a snapshot after every update.
func (m *MetricsCollector) SetOnChange(fn func(endpoint string, metrics Metrics)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.onChange = fn
}

// GetMetrics returns a snapshot of the metrics of endpoint, or nil.
func (m *MetricsCollector) GetMetrics(endpoint string) *Metrics {
	m.mu.Lock()
	defer m.mu.Unlock()

	metrics, ok := m.byRoute[endpoint]
	if !ok {
		return nil
	}

	snapshot := *metrics

	return &snapshot
}

// Install adds the collector's interceptors to chain.
func (m *MetricsCollector) Install(chain *InterceptorChain) *InterceptorChain {
	return chain.
		AddRequestInterceptor(MetricsRequestInterceptor(m)).
		AddResponseInterceptor(MetricsResponseInterceptor(m))
}

func (m *MetricsCollector) record(endpoint string, latency time.Duration, resp *Response) {
	m.mu.Lock()

	metrics, ok := m.byRoute[endpoint]
	if !ok {
		metrics = &Metrics{}
		m.byRoute[endpoint] = metrics
	}

	metrics.TotalRequests++
	metrics.LastRequestTime = time.Now()

	if latency > 0 {
		metrics.TotalLatency += latency
		metrics.AverageLatency = metrics.TotalLatency / time.Duration(metrics.TotalRequests)
	}

	switch {
	case resp.Failed():
		metrics.TotalErrors++
	case resp.EnvelopeStatus() == constants.EnvelopeStatusError:
		metrics.ServiceErrors++
	}

	snapshot := *metrics
	onChange := m.onChange

	m.mu.Unlock()

	if onChange != nil {
		onChange(endpoint, snapshot)
	}
}

const metadataStartTime = "start_time"

// MetricsRequestInterceptor stamps the request start time.
func MetricsRequestInterceptor(_ *MetricsCollector) RequestInterceptor {
	return func(_ context.Context, req *Request) error {
		if req.Metadata == nil {
			req.Metadata = make(map[string]interface{})
		}

		req.Metadata[metadataStartTime] = time.Now()

		return nil
	}
}

// MetricsResponseInterceptor records the outcome of a call in collector.
func MetricsResponseInterceptor(collector *MetricsCollector) ResponseInterceptor {
	return func(_ context.Context, req *Request, resp *Response) error {
		var latency time.Duration

		if start, ok := req.Metadata[metadataStartTime].(time.Time); ok {
			latency = time.Since(start)
		}

		collector.record(req.Endpoint(), latency, resp)

		return nil
	}
}

// RedactPassword masks the password query parameter of a URL or path.
// Inputs without one are returned unchanged.
func RedactPassword(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	query := parsed.Query()
	if !query.Has(constants.ParamPassword) {
		return raw
	}

	query.Set(constants.ParamPassword, constants.MaskedSecret)
	parsed.RawQuery = query.Encode()

	return parsed.String()
}
