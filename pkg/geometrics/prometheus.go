// Package geometrics exports Geocore client call metrics to Prometheus.
//
// Install the collector's interceptors into the chain passed as
// geocore.Config.Interceptors:
//
//	collector, err := geometrics.NewCollector(prometheus.DefaultRegisterer, "myapp")
//	chain := collector.Install(geocore.NewInterceptorChain())
package geometrics

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mapmotion/geocore-go/internal/constants"
	"github.com/mapmotion/geocore-go/pkg/geocore"
)

// Outcome label values.
const (
	OutcomeSuccess      = "success"
	OutcomeServiceError = "service_error"
	OutcomeHTTPError    = "http_error"
	OutcomeTransport    = "transport_error"
)

const metadataStart = "geometrics_start"

// Collector counts calls and observes their latency, labelled by method,
// resource and outcome.
type Collector struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewCollector creates the metrics under namespace and registers them with
// reg. Metrics already registered by an earlier collector are reused.
func NewCollector(reg prometheus.Registerer, namespace string) (*Collector, error) {
	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "geocore",
			Name:      "requests_total",
			Help:      "Geocore API calls by method, resource and outcome.",
		},
		[]string{"method", "resource", "outcome"},
	)

	latency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "geocore",
			Name:      "request_duration_seconds",
			Help:      "Geocore API call latency.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "resource"},
	)

	var err error

	requests, err = register(reg, requests)
	if err != nil {
		return nil, err
	}

	latency, err = register(reg, latency)
	if err != nil {
		return nil, err
	}

	return &Collector{requests: requests, latency: latency}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}

	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		if existing, ok := already.ExistingCollector.(C); ok {
			return existing, nil
		}
	}

	return c, fmt.Errorf("registering geocore metrics: %w", err)
}

// Requests returns the request counter.
func (c *Collector) Requests() *prometheus.CounterVec {
	return c.requests
}

// Install adds the collector's interceptors to chain.
func (c *Collector) Install(chain *geocore.InterceptorChain) *geocore.InterceptorChain {
	return chain.
		AddRequestInterceptor(c.before).
		AddResponseInterceptor(c.after)
}

func (c *Collector) before(_ context.Context, req *geocore.Request) error {
	if req.Metadata == nil {
		req.Metadata = make(map[string]interface{})
	}

	req.Metadata[metadataStart] = time.Now()

	return nil
}

func (c *Collector) after(_ context.Context, req *geocore.Request, resp *geocore.Response) error {
	resource := Resource(req.Path)

	c.requests.WithLabelValues(req.Method, resource, Outcome(resp)).Inc()

	if start, ok := req.Metadata[metadataStart].(time.Time); ok {
		c.latency.WithLabelValues(req.Method, resource).Observe(time.Since(start).Seconds())
	}

	return nil
}

// Resource returns the low-cardinality resource label of a request path:
// its first segment, plus the search kind for place searches. Entity ids
// never appear in the label.
//
//	/places/PLA-1/tags?tag_names=a  -> places
//	/places/search/nearest?lat=1    -> places/search/nearest
//	/places/search/within/rect      -> places/search/within/rect
//	/public/ref/gadm/JPN            -> public/ref/gadm
func Resource(path string) string {
	path, _, _ = strings.Cut(path, "?")
	segments := strings.Split(strings.Trim(path, "/"), "/")

	switch {
	case len(segments) == 0 || segments[0] == "":
		return "root"
	case strings.HasPrefix(path, constants.APIPathGADM):
		return strings.TrimPrefix(constants.APIPathGADM, "/")
	case segments[0] == "places" && len(segments) > 3 && segments[2] == "within":
		return strings.Join(segments[:4], "/")
	case segments[0] == "places" && len(segments) > 2 && segments[1] == "search":
		return strings.Join(segments[:3], "/")
	default:
		return segments[0]
	}
}

// Outcome classifies a call for the outcome label.
func Outcome(resp *geocore.Response) string {
	switch {
	case resp.Error != nil:
		return OutcomeTransport
	case resp.Failed():
		return OutcomeHTTPError
	case resp.EnvelopeStatus() == constants.EnvelopeStatusError:
		return OutcomeServiceError
	default:
		return OutcomeSuccess
	}
}
