package geocore

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/mapmotion/geocore-go/internal/constants"
)

// ServiceError is returned when the service answers with an "error" envelope.
type ServiceError struct {
	Code    interface{} `json:"code"    yaml:"code"`
	Message string      `json:"message" yaml:"message"`
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("geocore service error (code: %v): %s", e.Code, e.Message)
}

// HTTPError is returned when the service answers with a non-2xx status.
type HTTPError struct {
	StatusCode int
	Body       []byte
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP status: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// MalformedEnvelopeError is returned when a successful HTTP response does not
// carry a recognizable envelope.
type MalformedEnvelopeError struct {
	Status string
	Body   []byte
}

// Error implements the error interface.
func (e *MalformedEnvelopeError) Error() string {
	switch e.Status {
	case "":
		return "unexpected result: response envelope has no status"
	case constants.EnvelopeStatusSuccess:
		return "unexpected result: success envelope carries no usable result"
	}

	return fmt.Sprintf("unexpected result: unknown envelope status %q", e.Status)
}

// TransportError is returned when the request failed before any response
// was obtained.
type TransportError struct {
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return "transport error: " + e.Err.Error()
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// MissingParameterError is returned by a builder terminal method invoked
// without a required prior setter call. It is raised before any network call.
type MissingParameterError struct {
	Name string
}

// Error implements the error interface.
func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing required parameter: %s", e.Name)
}

// Is reports whether target is ErrMissingParameter.
func (e *MissingParameterError) Is(target error) bool {
	return target == ErrMissingParameter
}

// Common static errors that can be wrapped with context.
var (
	ErrMissingParameter = errors.New("missing required parameter")
	ErrNotImplemented   = errors.New("not implemented")
	ErrBaseURLRequired  = errors.New("base URL is required")
	ErrConfigRequired   = errors.New("config is required")
)

func missing(name string) error {
	return &MissingParameterError{Name: name}
}

// IsServiceError checks if the error is an error envelope from the service.
func IsServiceError(err error) bool {
	svcErr := &ServiceError{}

	return errors.As(err, &svcErr)
}

// IsHTTPStatus checks if the error is an HTTP error with the given status code.
func IsHTTPStatus(err error, statusCode int) bool {
	httpErr := &HTTPError{}
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == statusCode
	}

	return false
}

// IsTransportError checks if the request failed before a response arrived.
func IsTransportError(err error) bool {
	transportErr := &TransportError{}

	return errors.As(err, &transportErr)
}

// IsMalformedEnvelope checks if the response could not be read as an envelope.
func IsMalformedEnvelope(err error) bool {
	malformed := &MalformedEnvelopeError{}

	return errors.As(err, &malformed)
}

// IsMissingParameter checks if a builder was invoked without a required setter.
func IsMissingParameter(err error) bool {
	return errors.Is(err, ErrMissingParameter)
}
